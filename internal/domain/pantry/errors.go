package pantry

import "errors"

// Domain errors for stock item operations

var (
	// Validation errors
	ErrEmptyName         = errors.New("item name must not be empty")
	ErrQuantityRequired  = errors.New("item quantity is required")
	ErrNegativeQuantity  = errors.New("item quantity must not be negative")
	ErrNegativeThreshold = errors.New("low-stock threshold must not be negative")
	ErrNegativePrice     = errors.New("estimated price must not be negative")
	ErrInvalidPriority   = errors.New("priority must be low, medium or high")

	// Lookup errors
	ErrItemNotFound = errors.New("stock item not found")
)
