package recipe

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-recipes/quantity"
	"github.com/goliatone/go-recipes/units"
)

var (
	// bulletPattern strips a single leading list marker ("- 2 cups ...").
	bulletPattern = regexp.MustCompile(`^[-*•]\s*`)

	// notesPattern captures a trailing parenthesized group. Notes extraction
	// is parenthesis-only: "1 cup butter (softened)" yields notes
	// "softened", while "1 tbsp butter, softened" keeps the comma tail as
	// part of the ingredient name.
	notesPattern = regexp.MustCompile(`\(([^)]*)\)\s*$`)

	// linePattern anchors at the line start: a quantity token (integer,
	// decimal, bare fraction, or mixed number), a candidate unit word, and
	// optional free text for the ingredient name.
	linePattern = regexp.MustCompile(`^((?:\d+(?:\.\d+)?\s+)?\d+/\d+|\d+(?:\.\d+)?)\s+([A-Za-z]+)(?:\s+(.+))?$`)
)

// ParseLine parses a single ingredient line. ok is false when the line does
// not start with a quantity token, the token itself fails to parse, or the
// candidate unit word is not in the units registry; callers treat such
// lines as non-ingredient text. An ingredient with no text after the unit
// word ("2 eggs") uses the unit word as its name.
func ParseLine(line string) (*Ingredient, bool) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return nil, false
	}

	working := bulletPattern.ReplaceAllString(raw, "")

	notes := ""
	if match := notesPattern.FindStringSubmatchIndex(working); match != nil {
		notes = strings.TrimSpace(working[match[2]:match[3]])
		working = strings.TrimSpace(working[:match[0]])
	}

	match := linePattern.FindStringSubmatch(working)
	if match == nil {
		return nil, false
	}

	qty, ok := quantity.Parse(match[1])
	if !ok {
		return nil, false
	}

	unit, ok := units.Normalize(match[2])
	if !ok {
		return nil, false
	}
	category, ok := units.CategoryOf(unit)
	if !ok {
		return nil, false
	}

	name := strings.TrimSpace(match[3])
	if name == "" {
		name = match[2]
	}

	return &Ingredient{
		Raw:      raw,
		Quantity: qty,
		Unit:     unit,
		Category: category,
		Name:     name,
		Notes:    notes,
	}, true
}

// ParseIngredients parses a multi-line text block. Blank lines and heading
// lines are skipped, and lines that fail to parse are silently dropped; the
// batch never fails as a whole. Recipe text intermixes headings, narrative,
// and data lines, and the parser's job is to extract what it confidently
// can.
func ParseIngredients(text string) []Ingredient {
	var out []Ingredient
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if ingredient, ok := ParseLine(trimmed); ok {
			out = append(out, *ingredient)
		}
	}
	return out
}
