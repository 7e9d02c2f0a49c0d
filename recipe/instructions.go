package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// stepPattern anchors at the line start: an author-supplied step number
	// followed by ". " and the instruction text.
	stepPattern = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

	// temperaturePattern matches a digit sequence, an optional degree mark,
	// and a case-insensitive F/C letter.
	temperaturePattern = regexp.MustCompile(`(?i)(\d+)\s*°?\s*([FC])\b`)

	// durationPattern matches a digit sequence (optionally a dash range, of
	// which only the first number is kept) followed by a time unit word.
	durationPattern = regexp.MustCompile(`(?i)(\d+)(?:\s*-\s*\d+)?\s*(minutes?|mins?|seconds?|secs?|hours?|hrs?)\b`)
)

// ParseInstructions parses a multi-line text block into numbered steps.
// Blank lines and heading lines are skipped; lines without a leading
// "N. " marker are silently dropped, including wrapped continuation text
// that logically belongs to the previous step. At most one temperature and
// one duration are extracted per line, each from its first match.
func ParseInstructions(text string) []Instruction {
	var out []Instruction
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		match := stepPattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		number, err := strconv.Atoi(match[1])
		if err != nil || number <= 0 {
			continue
		}

		body := match[2]
		out = append(out, Instruction{
			Number:      number,
			Text:        body,
			Temperature: extractTemperature(body),
			Duration:    extractDuration(body),
		})
	}
	return out
}

func extractTemperature(text string) *Temperature {
	match := temperaturePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &Temperature{Value: value, Unit: strings.ToUpper(match[2])}
}

func extractDuration(text string) *Duration {
	match := durationPattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	unit := strings.ToLower(match[2])
	unit = strings.TrimSuffix(unit, "s")
	return &Duration{Value: value, Unit: unit}
}
