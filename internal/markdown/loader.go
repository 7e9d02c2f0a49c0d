package markdown

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/pkg/interfaces"
	"github.com/goliatone/go-recipes/recipe"
)

// recipeNamespace seeds stable document IDs so re-importing the same slug
// yields the same identifier.
var recipeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/goliatone/go-recipes"))

// LoaderConfig configures how recipe files are discovered within a base
// directory.
type LoaderConfig struct {
	// BasePath is the root directory where recipe documents live.
	BasePath string
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// IncludeDrafts keeps documents whose frontmatter marks them as drafts.
	IncludeDrafts bool
	// Renderer converts description Markdown into HTML. When nil the
	// description is left unrendered.
	Renderer interfaces.MarkdownRenderer
	// Logger receives per-document debug entries. Defaults to a no-op.
	Logger interfaces.Logger
}

// Loader turns filesystem paths into parsed recipe documents.
type Loader struct {
	fs            fs.FS
	basePath      string
	pattern       string
	recursive     bool
	includeDrafts bool
	renderer      interfaces.MarkdownRenderer
	logger        interfaces.Logger
}

// NewLoader constructs a Loader using the provided filesystem and
// configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Loader{
		fs:            filesystem,
		basePath:      filepath.Clean(cfg.BasePath),
		pattern:       pattern,
		recursive:     cfg.Recursive,
		includeDrafts: cfg.IncludeDrafts,
		renderer:      cfg.Renderer,
		logger:        logger,
	}
}

// LoadFile reads and parses a single recipe document.
func (l *Loader) LoadFile(ctx context.Context, path string) (*recipe.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel, err := l.makeRelative(path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("recipe loader read %s: %w", rel, err)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("recipe loader stat %s: %w", rel, err)
	}

	doc, err := l.buildDocument(rel, data)
	if err != nil {
		return nil, err
	}
	doc.LastModified = info.ModTime()

	l.logger.Debug("loaded recipe document",
		"path", rel,
		"ingredients", len(doc.Ingredients),
		"instructions", len(doc.Instructions),
	)
	return doc, nil
}

// LoadDirectory discovers recipe files under dir and returns parsed
// documents sorted by path. Draft documents are skipped unless the loader
// was configured to include them.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*recipe.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	root, err := l.makeRelative(dir)
	if err != nil {
		return nil, err
	}
	root = filepath.ToSlash(filepath.Clean(root))

	var paths []string
	walkErr := fs.WalkDir(l.fs, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !l.recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}
		matched, err := filepath.Match(l.pattern, d.Name())
		if err != nil {
			return err
		}
		if matched {
			paths = append(paths, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("recipe loader walk %s: %w", root, walkErr)
	}

	sort.Strings(paths)

	var docs []*recipe.Document
	for _, path := range paths {
		doc, err := l.LoadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		if doc.Metadata.Draft && !l.includeDrafts {
			l.logger.Debug("skipped draft recipe", "path", path)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (l *Loader) buildDocument(path string, data []byte) (*recipe.Document, error) {
	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "recipe document metadata invalid").
			WithTextCode("RECIPE_FRONTMATTER_INVALID")
	}

	if strings.TrimSpace(meta.Slug) == "" {
		source := meta.Title
		if strings.TrimSpace(source) == "" {
			source = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		normalized, err := slug.Normalize(source)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "recipe document slug invalid").
				WithTextCode("RECIPE_SLUG_INVALID")
		}
		meta.Slug = normalized
	}

	sections := SplitSections(body)

	doc := &recipe.Document{
		ID:           uuid.NewSHA1(recipeNamespace, []byte(meta.Slug)),
		Path:         path,
		Metadata:     meta,
		Description:  []byte(sections.Description),
		Ingredients:  recipe.ParseIngredients(sections.Ingredients()),
		Instructions: recipe.ParseInstructions(sections.Instructions()),
	}

	if l.renderer != nil && len(doc.Description) > 0 {
		html, err := l.renderer.Render(doc.Description)
		if err != nil {
			return nil, fmt.Errorf("recipe loader render %s: %w", path, err)
		}
		doc.DescriptionHTML = html
	}

	sum := sha256.Sum256(data)
	doc.Checksum = sum[:]
	return doc, nil
}

func (l *Loader) makeRelative(path string) (string, error) {
	cleaned := filepath.Clean(path)
	if cleaned == "." || cleaned == l.basePath {
		return ".", nil
	}
	if l.basePath != "." && l.basePath != "" {
		if rel, err := filepath.Rel(l.basePath, cleaned); err == nil && !strings.HasPrefix(rel, "..") {
			return rel, nil
		}
	}
	return cleaned, nil
}
