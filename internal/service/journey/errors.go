package journey

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTruckNo        = errors.New("invalid truck number")
	ErrInvalidStation        = errors.New("invalid station")
)
