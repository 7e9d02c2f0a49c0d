// Package units holds the measurement taxonomy used across the recipe
// toolkit: unit categories, canonical unit names with their multipliers
// into a per-category base unit, and an alias table mapping human-written
// spellings onto canonical names. The tables are built once at package
// initialization and never mutated, so concurrent reads need no locking.
package units

import "strings"

// Category identifies a measurement family. Two units are convertible only
// when they belong to the same category.
type Category string

const (
	Volume Category = "volume"
	Weight Category = "weight"
	Count  Category = "count"
)

// Definition describes one measurement category: its base unit and the
// multiplier that carries each canonical unit into that base. The base unit
// always maps to 1.
type Definition struct {
	Category    Category
	Base        string
	Multipliers map[string]float64
}

// definitions is the fixed registry. Multipliers are toward the category
// base: milliliters for volume, grams for weight, an abstract count unit
// for count.
var definitions = map[Category]Definition{
	Volume: {
		Category: Volume,
		Base:     "ml",
		Multipliers: map[string]float64{
			"ml":     1,
			"l":      1000,
			"tsp":    4.92892,
			"tbsp":   14.7868,
			"floz":   29.5735,
			"cup":    236.588,
			"pint":   473.176,
			"quart":  946.353,
			"gallon": 3785.41,
		},
	},
	Weight: {
		Category: Weight,
		Base:     "g",
		Multipliers: map[string]float64{
			"g":  1,
			"kg": 1000,
			"oz": 28.3495,
			"lb": 453.592,
		},
	},
	Count: {
		Category: Count,
		Base:     "count",
		Multipliers: map[string]float64{
			"count":   1,
			"piece":   1,
			"clove":   1,
			"slice":   1,
			"stick":   1,
			"can":     1,
			"package": 1,
			"pinch":   1,
			"dash":    1,
			"eggs":    1,
		},
	},
}

// aliases maps lowercase plural and abbreviated spellings onto canonical
// unit names. Every target must exist in some Definition above; lookup is
// case-insensitive because Normalize lowercases before consulting it.
// Aliases are single words: the ingredient parser captures one unit word,
// so multi-word spellings such as "fl oz" are not reachable here.
var aliases = map[string]string{
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tsps":        "tsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"tbs":         "tbsp",
	"tbsps":       "tbsp",
	"cups":        "cup",
	"flozs":       "floz",
	"fluidounce":  "floz",
	"fluidounces": "floz",
	"milliliter":  "ml",
	"milliliters": "ml",
	"millilitre":  "ml",
	"millilitres": "ml",
	"liter":       "l",
	"liters":      "l",
	"litre":       "l",
	"litres":      "l",
	"pints":       "pint",
	"quarts":      "quart",
	"gallons":     "gallon",
	"gram":        "g",
	"grams":       "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"kgs":         "kg",
	"ounce":       "oz",
	"ounces":      "oz",
	"pound":       "lb",
	"pounds":      "lb",
	"lbs":         "lb",
	"egg":         "eggs",
	"cloves":      "clove",
	"pieces":      "piece",
	"slices":      "slice",
	"sticks":      "stick",
	"cans":        "can",
	"packages":    "package",
	"pinches":     "pinch",
	"dashes":      "dash",
}

// Normalize resolves a human-written unit spelling to its canonical name.
// Input is trimmed and lowercased, the alias table is consulted first, and
// the spelling is accepted as-is when it is already a canonical unit name.
// The second return value is false for unknown units.
func Normalize(raw string) (string, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return "", false
	}
	if canonical, ok := aliases[cleaned]; ok {
		return canonical, true
	}
	if _, ok := definitionFor(cleaned); ok {
		return cleaned, true
	}
	return "", false
}

// CategoryOf returns the measurement category that owns the canonical unit.
// Unknown units report ok=false rather than defaulting to a category; the
// caller is expected to have resolved the unit through Normalize first.
func CategoryOf(unit string) (Category, bool) {
	def, ok := definitionFor(unit)
	if !ok {
		return "", false
	}
	return def.Category, true
}

// DefinitionFor exposes the owning definition for a canonical unit, mainly
// so tests and converters can walk the registry.
func DefinitionFor(unit string) (Definition, bool) {
	return definitionFor(unit)
}

// Definitions returns the category registry. The returned map is the live
// table; callers must treat it as read-only.
func Definitions() map[Category]Definition {
	return definitions
}

func definitionFor(unit string) (Definition, bool) {
	for _, def := range definitions {
		if _, ok := def.Multipliers[unit]; ok {
			return def, true
		}
	}
	return Definition{}, false
}
