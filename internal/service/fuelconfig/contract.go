//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fuelconfig_test
package fuelconfig

import (
	"context"

	"fuelops/internal/entities"
)

type Repository interface {
	ListTruckBatches(ctx context.Context) ([]entities.TruckBatch, error)
	ListRoutes(ctx context.Context) ([]entities.Route, error)
	ListSurcharges(ctx context.Context) ([]entities.Surcharge, error)
	ListStationCheckpoints(ctx context.Context) ([]entities.StationCheckpoint, error)

	UpsertTruckBatch(ctx context.Context, modify entities.TruckBatchModify) (*entities.TruckBatch, error)
	UpsertRoute(ctx context.Context, modify entities.RouteModify) (*entities.Route, error)
	UpsertSurcharge(ctx context.Context, modify entities.SurchargeModify) (*entities.Surcharge, error)
	UpsertStationCheckpoint(ctx context.Context, modify entities.StationCheckpointModify) (*entities.StationCheckpoint, error)
}
