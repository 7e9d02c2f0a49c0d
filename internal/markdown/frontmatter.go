package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-recipes/recipe"
)

// ParseFrontMatter extracts recipe metadata and the Markdown body from the
// provided source bytes. It returns the structured metadata, the body
// without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (recipe.Metadata, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return recipe.Metadata{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToMetadata(meta), body, nil
}

type frontMatterEnvelope struct {
	Title    string         `yaml:"title"`
	Slug     string         `yaml:"slug"`
	Summary  string         `yaml:"summary"`
	Servings int            `yaml:"servings"`
	Tags     []string       `yaml:"tags"`
	Author   string         `yaml:"author"`
	Date     time.Time      `yaml:"date"`
	Draft    bool           `yaml:"draft"`
	Custom   map[string]any `yaml:",inline"`
}

func envelopeToMetadata(env frontMatterEnvelope) recipe.Metadata {
	custom := env.Custom
	if custom == nil {
		custom = map[string]any{}
	}

	return recipe.Metadata{
		Title:    env.Title,
		Slug:     env.Slug,
		Summary:  env.Summary,
		Servings: env.Servings,
		Tags:     append([]string(nil), env.Tags...),
		Author:   env.Author,
		Date:     env.Date,
		Draft:    env.Draft,
		Custom:   custom,
	}
}
