package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrUserRequired    = errors.New("user ID is required")

	// -- Resource State --
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrProductNotFound  = errors.New("product not found")
)
