package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TruckBatch assigns a truck-number suffix to an extra-fuel allowance
// tier. Batches are disjoint by construction.
type TruckBatch struct {
	ID        int64
	Suffix    string
	Batch     string
	Liters    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Route holds the total-liters allocation for a destination.
type Route struct {
	ID          int64
	Destination string
	Liters      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Surcharge is an extra allowance tied to a special loading point or
// destination. Synonyms for the same place are separate rows carrying
// the same liters.
type Surcharge struct {
	ID        int64
	Location  string
	Liters    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StationCheckpoint maps a fueling station onto its ledger checkpoint
// and the leg(s) it serves.
type StationCheckpoint struct {
	ID         int64
	Station    string
	Checkpoint Checkpoint
	Direction  CheckpointDirection
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TruckBatchModify struct {
	ID     *int64
	Suffix *string
	Batch  *string
	Liters *decimal.Decimal
}

type RouteModify struct {
	ID          *int64
	Destination *string
	Liters      *decimal.Decimal
}

type SurchargeModify struct {
	ID       *int64
	Location *string
	Liters   *decimal.Decimal
}

type StationCheckpointModify struct {
	ID         *int64
	Station    *string
	Checkpoint *Checkpoint
	Direction  *CheckpointDirection
}
