package units

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"cups", "cup", true},
		{"cup", "cup", true},
		{"Tablespoons", "tbsp", true},
		{" TSP ", "tsp", true},
		{"grams", "g", true},
		{"fluidounces", "floz", true},
		{"flozs", "floz", true},
		{"Lbs", "lb", true},
		{"egg", "eggs", true},
		{"eggs", "eggs", true},
		{"pinch", "pinch", true},
		{"smidgen", "", false},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tc := range cases {
		got, ok := Normalize(tc.raw)
		if ok != tc.ok {
			t.Fatalf("Normalize(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeAliasTargetsAreCanonical(t *testing.T) {
	for alias, target := range aliases {
		if _, ok := definitionFor(target); !ok {
			t.Fatalf("alias %q points at %q, which is not a canonical unit", alias, target)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		unit string
		want Category
		ok   bool
	}{
		{"cup", Volume, true},
		{"ml", Volume, true},
		{"kg", Weight, true},
		{"eggs", Count, true},
		{"parsec", "", false},
	}

	for _, tc := range cases {
		got, ok := CategoryOf(tc.unit)
		if ok != tc.ok {
			t.Fatalf("CategoryOf(%q) ok = %v, want %v", tc.unit, ok, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("CategoryOf(%q) = %q, want %q", tc.unit, got, tc.want)
		}
	}
}

func TestBaseUnitsMapToOne(t *testing.T) {
	for category, def := range Definitions() {
		multiplier, ok := def.Multipliers[def.Base]
		if !ok {
			t.Fatalf("category %q base unit %q missing from its own multipliers", category, def.Base)
		}
		if multiplier != 1 {
			t.Fatalf("category %q base unit %q multiplier = %v, want 1", category, def.Base, multiplier)
		}
		for unit, m := range def.Multipliers {
			if m <= 0 {
				t.Fatalf("unit %q has non-positive multiplier %v", unit, m)
			}
		}
	}
}
