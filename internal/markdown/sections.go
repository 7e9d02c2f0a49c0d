package markdown

import (
	"regexp"
	"strings"
)

var headingPattern = regexp.MustCompile(`^#{1,6}\s+(.+?)\s*$`)

// ingredientSectionNames and instructionSectionNames are the lowercased
// heading titles recognized as the two data sections of a recipe document.
var (
	ingredientSectionNames  = []string{"ingredients"}
	instructionSectionNames = []string{"instructions", "directions", "method", "steps"}
)

// Sections is a recipe body divided by its headings. Description holds
// everything before the first heading; the map keys are lowercased heading
// titles and the values are the raw text beneath them, headings excluded.
type Sections struct {
	Description string
	ByName      map[string]string
}

// SplitSections divides a Markdown body by its heading lines. Duplicate
// heading titles are concatenated in document order.
func SplitSections(body []byte) Sections {
	sections := Sections{ByName: map[string]string{}}

	current := ""
	var buf strings.Builder

	flush := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if current == "" {
			sections.Description = text
			return
		}
		if existing, ok := sections.ByName[current]; ok && existing != "" {
			text = existing + "\n" + text
		}
		sections.ByName[current] = text
	}

	for _, line := range strings.Split(string(body), "\n") {
		if match := headingPattern.FindStringSubmatch(line); match != nil {
			flush()
			current = strings.ToLower(strings.TrimSpace(match[1]))
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	flush()

	return sections
}

// Ingredients returns the raw text of the ingredients section, or "".
func (s Sections) Ingredients() string {
	return s.first(ingredientSectionNames)
}

// Instructions returns the raw text of the first recognized instruction
// section ("instructions", "directions", "method", or "steps"), or "".
func (s Sections) Instructions() string {
	return s.first(instructionSectionNames)
}

func (s Sections) first(names []string) string {
	for _, name := range names {
		if text, ok := s.ByName[name]; ok {
			return text
		}
	}
	return ""
}
