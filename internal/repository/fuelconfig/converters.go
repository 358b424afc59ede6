package fuelconfig

import (
	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
)

func ToBatchDomain(b *TruckBatchDB) *entities.TruckBatch {
	if b == nil {
		return nil
	}
	return &entities.TruckBatch{
		ID:        b.ID,
		Suffix:    b.Suffix,
		Batch:     b.Batch,
		Liters:    decimal.NewFromFloat(b.Liters),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func ToRouteDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}
	return &entities.Route{
		ID:          r.ID,
		Destination: r.Destination,
		Liters:      decimal.NewFromFloat(r.Liters),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func ToSurchargeDomain(s *SurchargeDB) *entities.Surcharge {
	if s == nil {
		return nil
	}
	return &entities.Surcharge{
		ID:        s.ID,
		Location:  s.Location,
		Liters:    decimal.NewFromFloat(s.Liters),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func ToStationCheckpointDomain(m *StationCheckpointDB) *entities.StationCheckpoint {
	if m == nil {
		return nil
	}
	return &entities.StationCheckpoint{
		ID:         m.ID,
		Station:    m.Station,
		Checkpoint: entities.Checkpoint(m.Checkpoint),
		Direction:  entities.CheckpointDirection(m.Direction),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
