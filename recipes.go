// Package recipes is the top level façade of the recipe toolkit: it wires
// the markdown content source, the recipe parsers, and the scaling service
// together behind a single Module value.
package recipes

import (
	"context"
	"io/fs"
	"os"

	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/internal/markdown"
	"github.com/goliatone/go-recipes/recipe"
	"github.com/goliatone/go-recipes/units"
)

// RecipeService exports the recipe service contract for consumers of the
// recipes package.
type RecipeService = recipe.Service

// Ingredient exports the parsed ingredient record.
type Ingredient = recipe.Ingredient

// ScaledIngredient exports the scaled ingredient record.
type ScaledIngredient = recipe.ScaledIngredient

// Instruction exports the parsed instruction record.
type Instruction = recipe.Instruction

// Document exports the loaded recipe document.
type Document = recipe.Document

// ScaleRequest exports the scale request payload.
type ScaleRequest = recipe.ScaleRequest

// ConvertRequest exports the convert request payload.
type ConvertRequest = recipe.ConvertRequest

// Conversion exports the unit conversion result.
type Conversion = units.Conversion

// Module represents the top level recipes runtime façade.
type Module struct {
	cfg     Config
	service recipe.Service
	loader  *markdown.Loader
}

// Option overrides pieces of the module wiring.
type Option func(*moduleDeps)

type moduleDeps struct {
	fsys fs.FS
}

// WithFS substitutes the filesystem used for document discovery, which is
// how tests supply an fstest.MapFS.
func WithFS(fsys fs.FS) Option {
	return func(deps *moduleDeps) {
		deps.fsys = fsys
	}
}

// New constructs a recipes module using the provided configuration. The
// content source defaults to an os.DirFS rooted at Markdown.BasePath.
func New(cfg Config, opts ...Option) (*Module, error) {
	deps := &moduleDeps{}
	for _, opt := range opts {
		opt(deps)
	}

	if deps.fsys == nil {
		base := cfg.Markdown.BasePath
		if base == "" {
			base = "."
		}
		deps.fsys = os.DirFS(base)
	}

	renderer := markdown.NewRenderer(cfg.Markdown.Parser)
	loader := markdown.NewLoader(deps.fsys, markdown.LoaderConfig{
		BasePath:      cfg.Markdown.BasePath,
		Pattern:       cfg.Markdown.Pattern,
		Recursive:     cfg.Markdown.Recursive,
		IncludeDrafts: cfg.Markdown.IncludeDrafts,
		Renderer:      renderer,
		Logger:        logging.MarkdownLogger(cfg.Logging.Provider),
	})

	service := recipe.NewService(recipe.ServiceConfig{
		Logger: logging.ParserLogger(cfg.Logging.Provider),
	})

	return &Module{cfg: cfg, service: service, loader: loader}, nil
}

// Recipes returns the configured recipe service.
func (m *Module) Recipes() RecipeService {
	return m.service
}

// Load reads and parses a single recipe document.
func (m *Module) Load(ctx context.Context, path string) (*Document, error) {
	return m.loader.LoadFile(ctx, path)
}

// LoadDirectory discovers and parses every recipe document under dir.
func (m *Module) LoadDirectory(ctx context.Context, dir string) ([]*Document, error) {
	return m.loader.LoadDirectory(ctx, dir)
}
