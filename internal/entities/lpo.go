package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DriversAccountDO is shown instead of a delivery order number when the
// liters are charged to the driver and never touch the truck's ledger.
const DriversAccountDO = "NIL"

// LPOEntry is a fuel purchase instruction at a named station.
type LPOEntry struct {
	ID      int64
	Station string
	TruckNo string
	Liters  decimal.Decimal
	Rate    decimal.Decimal
	DONo    string
	// CancellationPoint names the checkpoint whose pending order this
	// cash-mode purchase replaces. Empty for plan-mode purchases.
	CancellationPoint string
	DriversAccount    bool
	Cancelled         bool
	CancelReason      string
	CreatedAt         time.Time
}

type LPOEntryModify struct {
	ID                *int64
	Station           *string
	TruckNo           *string
	Liters            *decimal.Decimal
	Rate              *decimal.Decimal
	DONo              *string
	CancellationPoint *string
	DriversAccount    *bool
	Cancelled         *bool
	CancelReason      *string
}
