package recipe

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-recipes/pkg/interfaces"
	"github.com/goliatone/go-recipes/units"
)

// Service exposes the recipe parsing and scaling use cases. Parsing is
// best-effort and never fails; scaling and conversion validate their
// requests and return errors the render layer can act on. The expected
// repeated call pattern is re-invoking Scale with a new desired servings
// count against the same parsed ingredient list.
type Service interface {
	ParseIngredients(ctx context.Context, text string) []Ingredient
	ParseInstructions(ctx context.Context, text string) []Instruction
	Scale(ctx context.Context, req ScaleRequest) ([]ScaledIngredient, error)
	Convert(ctx context.Context, req ConvertRequest) (*units.Conversion, error)
}

// ScaleRequest asks for an ingredient list scaled to a new servings count.
type ScaleRequest struct {
	Ingredients      []Ingredient `json:"ingredients"`
	OriginalServings int          `json:"original_servings"`
	DesiredServings  int          `json:"desired_servings"`
}

// Validate ensures the request carries the required fields before scaling.
func (r ScaleRequest) Validate() error {
	errs := validation.Errors{}
	if len(r.Ingredients) == 0 {
		errs["ingredients"] = validation.NewError("recipes.scale.ingredients_required", "at least one ingredient is required")
	}
	if r.OriginalServings <= 0 {
		errs["original_servings"] = validation.NewError("recipes.scale.original_servings_invalid", "original servings must be greater than zero")
	}
	if r.DesiredServings <= 0 {
		errs["desired_servings"] = validation.NewError("recipes.scale.desired_servings_invalid", "desired servings must be greater than zero")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ConvertRequest asks for a quantity translated between two units.
type ConvertRequest struct {
	Quantity float64 `json:"quantity"`
	From     string  `json:"from"`
	To       string  `json:"to"`
}

// Validate ensures the request carries the required fields before converting.
func (r ConvertRequest) Validate() error {
	errs := validation.Errors{}
	if r.Quantity <= 0 {
		errs["quantity"] = validation.NewError("recipes.convert.quantity_invalid", "quantity must be greater than zero")
	}
	if r.From == "" {
		errs["from"] = validation.NewError("recipes.convert.from_required", "source unit is required")
	}
	if r.To == "" {
		errs["to"] = validation.NewError("recipes.convert.to_required", "target unit is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type service struct {
	logger interfaces.Logger
}

// ServiceConfig carries optional service dependencies.
type ServiceConfig struct {
	Logger interfaces.Logger
}

// NewService constructs the recipe service. A nil logger disables logging.
func NewService(cfg ServiceConfig) Service {
	return &service{logger: cfg.Logger}
}

func (s *service) ParseIngredients(ctx context.Context, text string) []Ingredient {
	ingredients := ParseIngredients(text)
	s.debug(ctx, "parsed ingredient block", "ingredients", len(ingredients))
	return ingredients
}

func (s *service) ParseInstructions(ctx context.Context, text string) []Instruction {
	instructions := ParseInstructions(text)
	s.debug(ctx, "parsed instruction block", "instructions", len(instructions))
	return instructions
}

func (s *service) Scale(ctx context.Context, req ScaleRequest) ([]ScaledIngredient, error) {
	if err := req.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "scale request validation failed").
			WithTextCode("RECIPE_SCALE_INVALID")
	}

	scaled := ScaleIngredients(req.Ingredients, req.OriginalServings, req.DesiredServings)
	s.debug(ctx, "scaled ingredients",
		"count", len(scaled),
		"original_servings", req.OriginalServings,
		"desired_servings", req.DesiredServings,
	)
	return scaled, nil
}

func (s *service) Convert(ctx context.Context, req ConvertRequest) (*units.Conversion, error) {
	if err := req.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "convert request validation failed").
			WithTextCode("RECIPE_CONVERT_INVALID")
	}

	from, ok := units.Normalize(req.From)
	if !ok {
		return nil, ErrUnknownUnit
	}
	to, ok := units.Normalize(req.To)
	if !ok {
		return nil, ErrUnknownUnit
	}

	result, ok := units.Convert(req.Quantity, from, to)
	if !ok {
		// Both units resolved, so the only remaining failure is a
		// cross-category conversion. This is a designed rejection, not a
		// condition to retry.
		return nil, ErrNotConvertible
	}

	s.debug(ctx, "converted quantity", "from", from, "to", to, "base_unit", result.BaseUnit)
	return result, nil
}

func (s *service) debug(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	logger := s.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	logger.Debug(msg, args...)
}
