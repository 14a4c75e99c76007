package order

import "errors"

var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrOrderNotFound  = errors.New("order not found")
	ErrUserRequired   = errors.New("user ID is required")
	ErrMissingAddress = errors.New("shipping and billing address are required")
	ErrMissingPayment = errors.New("payment method is required")
)
