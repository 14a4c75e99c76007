package address

import "errors"

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrUserRequired    = errors.New("user ID is required")
)
