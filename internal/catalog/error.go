package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyName    = errors.New("product name is required")
	ErrInvalidPrice = errors.New("product price must be greater than 0")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
