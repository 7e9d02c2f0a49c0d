package units

// Conversion captures the result of converting a quantity between two units
// of the same category, including the intermediate base-unit quantity so
// callers can audit the conversion bridge.
type Conversion struct {
	Quantity     float64
	Unit         string
	BaseQuantity float64
	BaseUnit     string
}

// Convert translates quantity from one unit to another. Both unit names are
// normalized first, so aliases such as "Tablespoons" are accepted. The
// second return value is false when either unit is unknown or when the two
// units do not share a base unit (cross-category conversions such as volume
// to weight require a density model this package does not provide).
func Convert(quantity float64, from, to string) (*Conversion, bool) {
	fromUnit, ok := Normalize(from)
	if !ok {
		return nil, false
	}
	toUnit, ok := Normalize(to)
	if !ok {
		return nil, false
	}

	fromDef, ok := definitionFor(fromUnit)
	if !ok {
		return nil, false
	}
	toDef, ok := definitionFor(toUnit)
	if !ok {
		return nil, false
	}
	if fromDef.Base != toDef.Base {
		return nil, false
	}

	base := quantity * fromDef.Multipliers[fromUnit]
	return &Conversion{
		Quantity:     base / toDef.Multipliers[toUnit],
		Unit:         toUnit,
		BaseQuantity: base,
		BaseUnit:     fromDef.Base,
	}, true
}
