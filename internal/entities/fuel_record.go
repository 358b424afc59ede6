package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelRecord is the fuel ledger for one truck's round trip. Checkpoint
// allocations are stored as negative quantities; the balance invariant
// is Balance = TotalLiters + Extra + sum of all checkpoint fields.
type FuelRecord struct {
	ID          int64
	TruckNo     string
	GoingDO     string
	ReturnDO    string // empty while the journey is still outbound
	Checkpoints map[Checkpoint]decimal.Decimal
	TotalLiters decimal.Decimal
	Extra       decimal.Decimal
	// ReturnAdditional is the return-leg top-up folded into TotalLiters
	// when the returning order is attached. Kept separately so that
	// cancelling the returning order can reverse exactly what was added.
	ReturnAdditional decimal.Decimal
	Balance          decimal.Decimal
	State            FuelRecordState
	Locked           bool
	LockReason       LockReason
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CheckpointSum adds up every checkpoint field (all non-positive in a
// consistent record).
func (r *FuelRecord) CheckpointSum() decimal.Decimal {
	sum := decimal.Zero
	for _, cp := range Checkpoints() {
		if v, ok := r.Checkpoints[cp]; ok {
			sum = sum.Add(v)
		}
	}
	return sum
}

// ComputedBalance evaluates the invariant sum from the stored fields.
func (r *FuelRecord) ComputedBalance() decimal.Decimal {
	return r.TotalLiters.Add(r.Extra).Add(r.CheckpointSum())
}

type FuelRecordState string

const (
	// RecordOpen: no returning order attached yet.
	RecordOpen FuelRecordState = "OPEN"
	// RecordClosed: returning order attached, journey complete.
	RecordClosed FuelRecordState = "CLOSED"
	// RecordCancelled is terminal; records are archived, never deleted.
	RecordCancelled FuelRecordState = "CANCELLED"
)

func (s FuelRecordState) String() string {
	return string(s)
}

// LockReason explains why a record is locked pending administrator
// action. Locked overlays OPEN and CLOSED rather than replacing them.
type LockReason string

const (
	LockMissingTotalLiters LockReason = "missing_total_liters"
	LockMissingExtraFuel   LockReason = "missing_extra_fuel"
	LockMissingBoth        LockReason = "both"
	// LockOverdrawn covers a negative balance with full configuration
	// present: more fuel dispensed than the route allocation allows.
	LockOverdrawn LockReason = "overdrawn"
)

func (r LockReason) String() string {
	return string(r)
}

type FuelRecordModify struct {
	ID               *int64
	TruckNo          *string
	GoingDO          *string
	ReturnDO         *string
	Checkpoints      map[Checkpoint]*decimal.Decimal
	TotalLiters      *decimal.Decimal
	Extra            *decimal.Decimal
	ReturnAdditional *decimal.Decimal
	Balance          *decimal.Decimal
	State            *FuelRecordState
	Locked           *bool
	LockReason       *LockReason
}
