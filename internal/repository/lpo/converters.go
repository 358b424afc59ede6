package lpo

import (
	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
)

func ToDomain(e *LPOEntryDB) *entities.LPOEntry {
	if e == nil {
		return nil
	}
	return &entities.LPOEntry{
		ID:                e.ID,
		Station:           e.Station,
		TruckNo:           e.TruckNo,
		Liters:            decimal.NewFromFloat(e.Liters),
		Rate:              decimal.NewFromFloat(e.Rate),
		DONo:              e.DONo,
		CancellationPoint: e.CancellationPoint,
		DriversAccount:    e.DriversAccount,
		Cancelled:         e.Cancelled,
		CancelReason:      e.CancelReason,
		CreatedAt:         e.CreatedAt,
	}
}
