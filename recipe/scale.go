package recipe

import "github.com/goliatone/go-recipes/quantity"

// ScaleIngredients multiplies every ingredient quantity by the servings
// ratio desired/original. Order and cardinality are preserved: no
// filtering, no merging of duplicate ingredient names. Units are never
// converted; a recipe scaled from 24 to 48 servings calls for 4 cups of
// flour, not a quart. originalServings must be positive; the call returns
// nil otherwise.
func ScaleIngredients(ingredients []Ingredient, originalServings, desiredServings int) []ScaledIngredient {
	if originalServings <= 0 {
		return nil
	}

	factor := float64(desiredServings) / float64(originalServings)

	out := make([]ScaledIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		scaled := ingredient.Quantity * factor
		out = append(out, ScaledIngredient{
			Ingredient:     ingredient,
			ScaledQuantity: scaled,
			ScaledUnit:     ingredient.Unit,
			Display:        quantity.Format(scaled),
		})
	}
	return out
}
