//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journey_test
package journey

import (
	"context"
	"time"

	"fuelops/internal/entities"
	"fuelops/internal/service/fuelconfig"
)

type DeliveryOrderRepository interface {
	// GetActiveByTruck returns non-cancelled orders for the truck dated
	// on or after since, ordered by order date then order number.
	GetActiveByTruck(ctx context.Context, truckNo string, since time.Time) ([]entities.DeliveryOrder, error)
}

type FuelRecordRepository interface {
	GetByGoingDO(ctx context.Context, goingDO string) (*entities.FuelRecord, error)
}

type ConfigService interface {
	Snapshot(ctx context.Context) (*fuelconfig.Snapshot, error)
}
