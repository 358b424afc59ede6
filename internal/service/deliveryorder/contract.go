//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryorder_test
package deliveryorder

import (
	"context"
	"time"

	"fuelops/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*entities.DeliveryOrder, error)
	GetActiveByTruck(ctx context.Context, truckNo string, since time.Time) ([]entities.DeliveryOrder, error)
	Update(ctx context.Context, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error)
}
