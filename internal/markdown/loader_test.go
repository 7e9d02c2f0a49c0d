package markdown

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-recipes/pkg/interfaces"
)

func newTestLoader(tb testing.TB, cfg LoaderConfig) *Loader {
	tb.Helper()
	if cfg.Renderer == nil {
		cfg.Renderer = NewRenderer(interfaces.ParseOptions{})
	}
	return NewLoader(os.DirFS("."), cfg)
}

func TestLoadFile(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})

	doc, err := loader.LoadFile(context.Background(), "testdata/pancakes.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.Metadata.Title != "Buttermilk Pancakes" {
		t.Fatalf("title = %q", doc.Metadata.Title)
	}
	if doc.Metadata.Slug != "buttermilk-pancakes" {
		t.Fatalf("slug = %q", doc.Metadata.Slug)
	}
	if doc.Metadata.Servings != 4 {
		t.Fatalf("servings = %d, want 4", doc.Metadata.Servings)
	}
	if len(doc.Metadata.Tags) != 2 || doc.Metadata.Tags[0] != "breakfast" {
		t.Fatalf("tags = %#v", doc.Metadata.Tags)
	}

	if !strings.Contains(string(doc.Description), "Fluffy pancakes") {
		t.Fatalf("description = %q", doc.Description)
	}
	if !strings.Contains(string(doc.DescriptionHTML), "<strong>crisp edge</strong>") {
		t.Fatalf("description HTML = %q", doc.DescriptionHTML)
	}

	if len(doc.Ingredients) != 6 {
		t.Fatalf("expected 6 ingredients, got %d: %#v", len(doc.Ingredients), doc.Ingredients)
	}
	if doc.Ingredients[3].Notes != "shaken" {
		t.Fatalf("buttermilk notes = %q, want shaken", doc.Ingredients[3].Notes)
	}
	if doc.Ingredients[4].Unit != "eggs" {
		t.Fatalf("egg unit = %q, want eggs", doc.Ingredients[4].Unit)
	}

	if len(doc.Instructions) != 4 {
		t.Fatalf("expected 4 instructions, got %d: %#v", len(doc.Instructions), doc.Instructions)
	}
	if doc.Instructions[1].Temperature == nil || doc.Instructions[1].Temperature.Value != 375 {
		t.Fatalf("step 2 temperature = %#v", doc.Instructions[1].Temperature)
	}
	if doc.Instructions[2].Duration == nil || doc.Instructions[2].Duration.Value != 2 {
		t.Fatalf("step 3 duration = %#v", doc.Instructions[2].Duration)
	}
	if doc.Instructions[3].Temperature == nil || doc.Instructions[3].Temperature.Unit != "C" {
		t.Fatalf("step 4 temperature = %#v", doc.Instructions[3].Temperature)
	}

	if len(doc.Checksum) != 32 {
		t.Fatalf("checksum length = %d, want 32", len(doc.Checksum))
	}
	if doc.LastModified.IsZero() {
		t.Fatalf("expected LastModified to be set")
	}
}

func TestLoadFileStableID(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})
	ctx := context.Background()

	first, err := loader.LoadFile(ctx, "testdata/pancakes.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	second, err := loader.LoadFile(ctx, "testdata/pancakes.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected stable IDs, got %s and %s", first.ID, second.ID)
	}
	if !bytes.Equal(first.Checksum, second.Checksum) {
		t.Fatalf("expected identical checksums for identical content")
	}
}

func TestLoadDirectorySkipsDrafts(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})

	docs, err := loader.LoadDirectory(context.Background(), "testdata")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	for _, doc := range docs {
		if doc.Metadata.Draft {
			t.Fatalf("draft document %q should have been skipped", doc.Path)
		}
	}

	withDrafts := newTestLoader(t, LoaderConfig{IncludeDrafts: true})
	all, err := withDrafts.LoadDirectory(context.Background(), "testdata")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(all) != len(docs)+1 {
		t.Fatalf("expected exactly one draft, got %d vs %d documents", len(all), len(docs))
	}
}

func TestLoadFileMissing(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})
	if _, err := loader.LoadFile(context.Background(), "testdata/missing.md"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadFileCancelledContext(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := loader.LoadFile(ctx, "testdata/pancakes.md"); err == nil {
		t.Fatalf("expected context cancellation error")
	}
}
