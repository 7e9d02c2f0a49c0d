package markdown

import (
	"context"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	source := []byte(`---
title: Herb Focaccia
slug: herb-focaccia
servings: 8
tags:
  - bread
oven: deck
---
Body text.
`)

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta.Title != "Herb Focaccia" {
		t.Fatalf("title = %q", meta.Title)
	}
	if meta.Servings != 8 {
		t.Fatalf("servings = %d, want 8", meta.Servings)
	}
	if meta.Custom["oven"] != "deck" {
		t.Fatalf("custom oven = %#v", meta.Custom["oven"])
	}
	if !strings.Contains(string(body), "Body text.") {
		t.Fatalf("body = %q", body)
	}
}

func TestSlugFallsBackToTitle(t *testing.T) {
	// draft.md carries no slug; the loader derives one from the title.
	loader := newTestLoader(t, LoaderConfig{IncludeDrafts: true})

	doc, err := loader.LoadFile(context.Background(), "testdata/draft.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.Metadata.Slug != "experimental-galette" {
		t.Fatalf("slug = %q, want experimental-galette", doc.Metadata.Slug)
	}
}
