//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cascade_test
package cascade

import (
	"context"

	"fuelops/internal/entities"
)

type OrderService interface {
	GetByOrderNo(ctx context.Context, orderNo string) (*entities.DeliveryOrder, error)
	Update(ctx context.Context, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error)
	Cancel(ctx context.Context, orderNo, reason string) (*entities.DeliveryOrder, error)
}

type LedgerService interface {
	RepointTruckNo(ctx context.Context, goingDO, newTruckNo string) (*entities.FuelRecord, error)
	RebalanceForDestination(ctx context.Context, goingDO, destination string) (*entities.FuelRecord, error)
	CancelByGoingDO(ctx context.Context, goingDO string) (*entities.FuelRecord, error)
	DetachReturnOrder(ctx context.Context, returnDO string) (*entities.FuelRecord, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecuteFn runs the ordered ledger effects for one change event.
type ExecuteFn func(ctx context.Context, event entities.DOChangeEvent) error

type HandlerFactory interface {
	GetHandler(kind entities.DOChangeKind) (ExecuteFn, error)
}
