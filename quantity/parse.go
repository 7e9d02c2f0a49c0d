// Package quantity parses and formats the numeric amounts that appear in
// recipe text: integers, decimals, vulgar fractions, and mixed numbers such
// as "2 1/4". Both directions are pure functions with no shared state.
package quantity

import (
	"strconv"
	"strings"
)

// Parse converts a numeric token into a float. The token may be a plain
// number ("2", "2.5"), a fraction ("1/4"), or a mixed number ("2 1/4").
// ok is false when any part is non-numeric, a fraction has a zero
// denominator, or the total is not strictly positive. Zero and negative
// amounts are rejected on purpose: recipes never call for zero of an
// ingredient, so a non-positive total indicates a parse error upstream.
func Parse(token string) (float64, bool) {
	parts := strings.Fields(strings.TrimSpace(token))
	if len(parts) == 0 || len(parts) > 2 {
		return 0, false
	}

	var total float64
	for _, part := range parts {
		value, ok := parsePart(part)
		if !ok {
			return 0, false
		}
		total += value
	}

	if total <= 0 {
		return 0, false
	}
	return total, true
}

func parsePart(part string) (float64, bool) {
	if numerator, denominator, found := strings.Cut(part, "/"); found {
		num, err := strconv.ParseFloat(numerator, 64)
		if err != nil {
			return 0, false
		}
		den, err := strconv.ParseFloat(denominator, 64)
		if err != nil || den == 0 {
			return 0, false
		}
		return num / den, true
	}

	value, err := strconv.ParseFloat(part, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
