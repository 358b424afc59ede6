//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"
	"time"

	"fuelops/internal/entities"
	"fuelops/internal/service/fuelconfig"
)

type Repository interface {
	Create(ctx context.Context, modify entities.FuelRecordModify) (*entities.FuelRecord, error)
	GetByID(ctx context.Context, id int64) (*entities.FuelRecord, error)
	GetByGoingDO(ctx context.Context, goingDO string) (*entities.FuelRecord, error)
	GetByReturnDO(ctx context.Context, returnDO string) (*entities.FuelRecord, error)
	// GetOpenByTruck returns the truck's most recent non-cancelled OPEN
	// record dated on or after since.
	GetOpenByTruck(ctx context.Context, truckNo string, since time.Time) (*entities.FuelRecord, error)
	ListActive(ctx context.Context, since time.Time) ([]entities.FuelRecord, error)
	// UpdateVersioned applies modify only when the stored version equals
	// expectedVersion, bumping it by one.
	UpdateVersioned(ctx context.Context, modify entities.FuelRecordModify, expectedVersion int64) (*entities.FuelRecord, error)
}

type DeliveryOrderRepository interface {
	GetByOrderNo(ctx context.Context, orderNo string) (*entities.DeliveryOrder, error)
}

// DirectionResolver classifies a fill against the truck's active
// orders; nil result means unresolvable.
type DirectionResolver interface {
	ResolveDirection(ctx context.Context, truckNo, station string) (*entities.DirectionResult, error)
}

type ConfigService interface {
	Snapshot(ctx context.Context) (*fuelconfig.Snapshot, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
