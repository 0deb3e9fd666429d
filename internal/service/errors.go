package service

import "errors"

// Common sentinel errors returned by the inventory services.
var (
	// ErrInvalidStockQuantity indicates that a stock adjustment was requested
	// with a zero or negative delta. Deltas must be positive integers; the
	// direction of the adjustment is chosen by the operation, not the sign.
	ErrInvalidStockQuantity = errors.New("stock quantity must be a positive integer")

	// ErrInvalidProductInput indicates that product fields failed the
	// server-side validation contract.
	ErrInvalidProductInput = errors.New("invalid product input")

	// ErrInvalidUserInput indicates that user fields failed validation.
	ErrInvalidUserInput = errors.New("invalid user input")
)
