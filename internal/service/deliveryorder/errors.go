package deliveryorder

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderNo        = errors.New("invalid order number")
	ErrInvalidOrderType      = errors.New("invalid order type")
	ErrInvalidTruckNo        = errors.New("invalid truck number")
	ErrInvalidDirection      = errors.New("invalid direction")

	ErrOrderNotFound = errors.New("delivery order not found")
	ErrConflict      = errors.New("order number already exists")
	// ErrActiveOrderExists guards the one-active-order-per-leg rule: a
	// truck holds at most one going and one returning order per open
	// journey cycle.
	ErrActiveOrderExists = errors.New("truck already has an active order for this leg")
	ErrAlreadyCancelled  = errors.New("delivery order already cancelled")
)
