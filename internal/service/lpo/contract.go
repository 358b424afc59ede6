//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lpo_test
package lpo

import (
	"context"

	"fuelops/internal/entities"
	"fuelops/internal/service/fuelconfig"
)

type Repository interface {
	Create(ctx context.Context, modify entities.LPOEntryModify) (*entities.LPOEntry, error)
	GetByID(ctx context.Context, id int64) (*entities.LPOEntry, error)
	ListActiveByTruckAndStation(ctx context.Context, truckNo, station string) ([]entities.LPOEntry, error)
	ListActiveByTruck(ctx context.Context, truckNo string) ([]entities.LPOEntry, error)
	ListActiveByStation(ctx context.Context, station string) ([]entities.LPOEntry, error)
	Cancel(ctx context.Context, id int64, reason string) (*entities.LPOEntry, error)
}

type ConfigService interface {
	Snapshot(ctx context.Context) (*fuelconfig.Snapshot, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
