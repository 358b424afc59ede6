package fuelrecord

import (
	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
)

func ToDomain(r *FuelRecordDB) *entities.FuelRecord {
	if r == nil {
		return nil
	}
	return &entities.FuelRecord{
		ID:       r.ID,
		TruckNo:  r.TruckNo,
		GoingDO:  r.GoingDO,
		ReturnDO: r.ReturnDO,
		Checkpoints: map[entities.Checkpoint]decimal.Decimal{
			entities.CheckpointYard:        decimal.NewFromFloat(r.Yard),
			entities.CheckpointKitwe:       decimal.NewFromFloat(r.Kitwe),
			entities.CheckpointChingola:    decimal.NewFromFloat(r.Chingola),
			entities.CheckpointKasumbalesa: decimal.NewFromFloat(r.Kasumbalesa),
			entities.CheckpointLikasi:      decimal.NewFromFloat(r.Likasi),
			entities.CheckpointFungurume:   decimal.NewFromFloat(r.Fungurume),
			entities.CheckpointNdolaReturn: decimal.NewFromFloat(r.NdolaReturn),
			entities.CheckpointKapiri:      decimal.NewFromFloat(r.KapiriReturn),
		},
		TotalLiters:      decimal.NewFromFloat(r.TotalLiters),
		Extra:            decimal.NewFromFloat(r.Extra),
		ReturnAdditional: decimal.NewFromFloat(r.ReturnAdditional),
		Balance:          decimal.NewFromFloat(r.Balance),
		State:            entities.FuelRecordState(r.State),
		Locked:           r.Locked,
		LockReason:       entities.LockReason(r.LockReason),
		Version:          r.Version,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// checkpointColumn maps a checkpoint onto its fuel_records column.
// Column names come from the migration and never contain user input.
func checkpointColumn(cp entities.Checkpoint) string {
	return "cp_" + cp.String()
}
