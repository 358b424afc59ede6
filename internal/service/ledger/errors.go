package ledger

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCheckpoint     = errors.New("invalid checkpoint")
	ErrInvalidLiters         = errors.New("invalid liters value")

	ErrFuelRecordNotFound = errors.New("fuel record not found")
	ErrRecordCancelled    = errors.New("fuel record is cancelled")
	// ErrBalanceInconsistent means the stored balance disagrees with the
	// checkpoint fields. Further debits are refused until the record is
	// reconciled; retrying would compound the error.
	ErrBalanceInconsistent = errors.New("stored balance inconsistent with checkpoint fields")
	// ErrStaleRecord is returned when a concurrent writer bumped the
	// record version first. The caller re-reads and retries the request.
	ErrStaleRecord = errors.New("fuel record modified concurrently")

	ErrReturnAlreadyAttached = errors.New("a different returning order is already attached")
	ErrNotReturningOrder     = errors.New("order is not a returning order")
	ErrNoOpenRecord          = errors.New("no open fuel record for truck")
)
