package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-recipes/pkg/interfaces"
)

func TestRendererRender(t *testing.T) {
	renderer := NewRenderer(interfaces.ParseOptions{})

	html, err := renderer.Render([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestRendererRenderWithOptions(t *testing.T) {
	renderer := NewRenderer(interfaces.ParseOptions{})

	html, err := renderer.RenderWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("RenderWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}
