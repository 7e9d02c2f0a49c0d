package recipe

import "errors"

var (
	ErrUnknownUnit    = errors.New("recipe: unknown unit")
	ErrNotConvertible = errors.New("recipe: units do not share a measurement category")
)
