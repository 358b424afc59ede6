package fuelconfig

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidLiters         = errors.New("invalid liters value")
	ErrInvalidCheckpoint     = errors.New("invalid checkpoint")
	ErrInvalidDirection      = errors.New("invalid checkpoint direction")
)
