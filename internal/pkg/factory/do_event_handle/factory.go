package do_event_handle

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"

	"fuelops/internal/entities"
	"fuelops/internal/service/cascade"
	"fuelops/internal/service/ledger"
)

// ChangeHandlerFactory maps each delivery-order change kind onto its
// ordered ledger effects. Handlers run inside the cascade transaction.
type ChangeHandlerFactory struct {
	orderService  cascade.OrderService
	ledgerService cascade.LedgerService
}

func NewChangeHandlerFactory(orderService cascade.OrderService, ledgerService cascade.LedgerService) *ChangeHandlerFactory {
	return &ChangeHandlerFactory{
		orderService:  orderService,
		ledgerService: ledgerService,
	}
}

func (f *ChangeHandlerFactory) GetHandler(kind entities.DOChangeKind) (cascade.ExecuteFn, error) {
	switch kind {
	case entities.DOTruckNoChanged:
		return f.truckNoChangedHandler, nil
	case entities.DODestinationChanged:
		return f.destinationChangedHandler, nil
	case entities.DOCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", cascade.ErrUndefinedChangeKind, kind)
	}
}

// truckNoChangedHandler rewrites the order's truck number and, for a
// going order, re-points the open fuel record to the corrected truck.
// A missing record surfaces so the caller can open a fresh one.
func (f *ChangeHandlerFactory) truckNoChangedHandler(ctx context.Context, event entities.DOChangeEvent) error {
	order, err := f.orderService.Update(ctx, entities.DeliveryOrderModify{
		OrderNo: pointer.To(event.OrderNo),
		TruckNo: pointer.To(event.NewTruckNo),
	})
	if err != nil {
		return fmt.Errorf("update truck for order %s: %w", event.OrderNo, err)
	}

	if order.Direction != entities.DirectionGoing {
		return nil
	}

	if _, err := f.ledgerService.RepointTruckNo(ctx, event.OrderNo, order.TruckNo); err != nil {
		return fmt.Errorf("repoint fuel record for order %s: %w", event.OrderNo, err)
	}
	return nil
}

// destinationChangedHandler rewrites the destination and re-resolves the
// route allocation for the going leg.
func (f *ChangeHandlerFactory) destinationChangedHandler(ctx context.Context, event entities.DOChangeEvent) error {
	order, err := f.orderService.Update(ctx, entities.DeliveryOrderModify{
		OrderNo:     pointer.To(event.OrderNo),
		Destination: pointer.To(event.Destination),
	})
	if err != nil {
		return fmt.Errorf("update destination for order %s: %w", event.OrderNo, err)
	}

	if order.Direction != entities.DirectionGoing {
		return nil
	}

	_, err = f.ledgerService.RebalanceForDestination(ctx, event.OrderNo, event.Destination)
	if err != nil && !errors.Is(err, ledger.ErrFuelRecordNotFound) {
		return fmt.Errorf("rebalance fuel record for order %s: %w", event.OrderNo, err)
	}
	return nil
}

// cancelledHandler cancels the order, then either cancels the linked
// fuel record (going leg) or reverts the attached return top-up
// (returning leg). Orders that never produced a record pass through.
func (f *ChangeHandlerFactory) cancelledHandler(ctx context.Context, event entities.DOChangeEvent) error {
	order, err := f.orderService.Cancel(ctx, event.OrderNo, event.Reason)
	if err != nil {
		return fmt.Errorf("cancel order %s: %w", event.OrderNo, err)
	}

	switch order.Direction {
	case entities.DirectionGoing:
		_, err = f.ledgerService.CancelByGoingDO(ctx, event.OrderNo)
	case entities.DirectionReturning:
		_, err = f.ledgerService.DetachReturnOrder(ctx, event.OrderNo)
	}
	if err != nil && !errors.Is(err, ledger.ErrFuelRecordNotFound) {
		return fmt.Errorf("unwind fuel record for order %s: %w", event.OrderNo, err)
	}
	return nil
}
