package lpo

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStation        = errors.New("invalid station")
	ErrInvalidTruckNo        = errors.New("invalid truck number")
	ErrInvalidLiters         = errors.New("liters must be positive")
	ErrInvalidCheckpoint     = errors.New("invalid cancellation checkpoint")

	ErrEntryNotFound = errors.New("purchase order not found")
	// ErrDuplicateAllocation fires only on an exact liter match. A new
	// entry with a different amount at the same truck+station is a
	// top-up and goes through.
	ErrDuplicateAllocation = errors.New("duplicate allocation for truck at station")
	ErrAlreadyCancelled    = errors.New("purchase order already cancelled")
)
