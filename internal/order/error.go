package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyCart = errors.New("cart has no items")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
)
