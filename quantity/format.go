package quantity

import (
	"fmt"
	"math"
	"strconv"
)

// maxDenominator bounds the fraction search. Cooking fractions do not get
// finer than sixteenths.
const maxDenominator = 16

// fractionTolerance is the absolute error below which a fraction is close
// enough to display. Values that no simple fraction approximates fall back
// to a two-decimal string instead of showing something like "13/16".
const fractionTolerance = 0.01

// Format renders a quantity as a cook-friendly string: whole numbers as
// plain integers ("3"), everything else as a whole-plus-fraction string
// ("2 1/4", "1/2") when a denominator between 1 and 16 approximates the
// remainder closely, and a fixed two-decimal string otherwise.
func Format(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatInt(int64(value), 10)
	}

	whole := int64(math.Floor(value))
	remainder := value - math.Floor(value)

	bestNumerator := int64(0)
	bestDenominator := int64(1)
	bestError := math.MaxFloat64

	// Ascending search with a strict comparison, so ties keep the smallest
	// denominator.
	for denominator := int64(1); denominator <= maxDenominator; denominator++ {
		numerator := int64(math.Round(remainder * float64(denominator)))
		err := math.Abs(remainder - float64(numerator)/float64(denominator))
		if err < bestError {
			bestError = err
			bestNumerator = numerator
			bestDenominator = denominator
		}
	}

	// Rounding can push the remainder up to a whole unit.
	if bestNumerator == bestDenominator {
		return strconv.FormatInt(whole+1, 10)
	}

	if bestError < fractionTolerance {
		if bestNumerator == 0 {
			return strconv.FormatInt(whole, 10)
		}
		if whole == 0 {
			return fmt.Sprintf("%d/%d", bestNumerator, bestDenominator)
		}
		return fmt.Sprintf("%d %d/%d", whole, bestNumerator, bestDenominator)
	}

	return strconv.FormatFloat(value, 'f', 2, 64)
}
