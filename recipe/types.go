// Package recipe turns loosely structured recipe text into typed records:
// ingredient lines become Ingredient values, numbered instruction lines
// become Instruction values, and parsed ingredient lists can be scaled to a
// new servings count. Parsing is best-effort by design; lines the parsers
// cannot confidently read are dropped without diagnostics.
package recipe

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-recipes/units"
)

// Ingredient is one successfully parsed ingredient line. Values are created
// by a single parse call and never mutated afterwards.
type Ingredient struct {
	// Raw preserves the original line as written.
	Raw string `json:"raw"`
	// Quantity is strictly positive; non-positive amounts fail the parse.
	Quantity float64 `json:"quantity"`
	// Unit is the canonical unit name from the units registry.
	Unit string `json:"unit"`
	// Category is the measurement family the unit belongs to.
	Category units.Category `json:"category"`
	// Name is the free-text ingredient description following the unit.
	Name string `json:"name"`
	// Notes carries the contents of a trailing parenthesized group, when
	// present ("(about 2 sticks)" -> "about 2 sticks").
	Notes string `json:"notes,omitempty"`
}

// ScaledIngredient pairs an Ingredient with its scaled quantity and a
// display string. Scaling produces new records; the source list is never
// modified in place.
type ScaledIngredient struct {
	Ingredient
	ScaledQuantity float64 `json:"scaled_quantity"`
	// ScaledUnit always equals the source unit; scaling never converts.
	ScaledUnit string `json:"scaled_unit"`
	// Display is the cook-friendly rendering of ScaledQuantity ("2 1/4").
	Display string `json:"display"`
}

// Temperature is an oven or cooking temperature extracted from an
// instruction line. Unit is "F" or "C".
type Temperature struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// Duration is a cooking time extracted from an instruction line. Unit is
// the lowercase singular unit word as written ("minute", "hr").
type Duration struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// Instruction is one numbered instruction step. Number is author-supplied,
// not derived from position. Temperature and Duration are independent and
// optional; only the first match of each is kept per line.
type Instruction struct {
	Number      int          `json:"number"`
	Text        string       `json:"text"`
	Temperature *Temperature `json:"temperature,omitempty"`
	Duration    *Duration    `json:"duration,omitempty"`
}

// Metadata is the frontmatter of a recipe document.
type Metadata struct {
	Title    string         `json:"title"`
	Slug     string         `json:"slug"`
	Summary  string         `json:"summary,omitempty"`
	Servings int            `json:"servings,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Author   string         `json:"author,omitempty"`
	Date     time.Time      `json:"date,omitzero"`
	Draft    bool           `json:"draft,omitempty"`
	Custom   map[string]any `json:"custom,omitempty"`
}

// Document is a fully loaded recipe page: metadata, the description that
// precedes the first section heading, and the parsed ingredient and
// instruction lists.
type Document struct {
	ID              uuid.UUID     `json:"id"`
	Path            string        `json:"path"`
	Metadata        Metadata      `json:"metadata"`
	Description     []byte        `json:"description,omitempty"`
	DescriptionHTML []byte        `json:"description_html,omitempty"`
	Ingredients     []Ingredient  `json:"ingredients"`
	Instructions    []Instruction `json:"instructions"`
	// Checksum is a SHA-256 digest of the source file so sync workflows can
	// detect changes without re-importing unchanged documents.
	Checksum     []byte    `json:"checksum,omitempty"`
	LastModified time.Time `json:"last_modified"`
}
