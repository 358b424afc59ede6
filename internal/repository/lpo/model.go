package lpo

import "time"

type LPOEntryDB struct {
	ID                int64
	Station           string
	TruckNo           string
	Liters            float64
	Rate              float64
	DONo              string
	CancellationPoint string
	DriversAccount    bool
	Cancelled         bool
	CancelReason      string
	CreatedAt         time.Time
}
