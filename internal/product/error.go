package product

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidStatus      = errors.New("invalid availability status")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidStock       = errors.New("stock must not be negative")
	ErrInvalidMinOrderQty = errors.New("minimum order quantity must be at least 1")
	ErrMissingTitle       = errors.New("product title is required")
)
