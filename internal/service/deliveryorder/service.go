package deliveryorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"fuelops/internal/entities"
	"fuelops/pkg/logger"
)

// activeWindow bounds how far back an order still counts toward the
// one-active-order-per-leg rule. Matches the journey resolver window.
const activeWindow = 120 * 24 * time.Hour

type Service struct {
	repository Repository
	log        logger.Logger
}

func NewService(repository Repository, log logger.Logger) *Service {
	return &Service{
		repository: repository,
		log:        log,
	}
}

// Create registers a new delivery order. A truck may carry at most one
// active (not cancelled) order per direction inside the active window, so
// a second going order for the same truck is rejected until the first is
// cancelled or the cycle closes.
func (s *Service) Create(ctx context.Context, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	if modify.OrderNo == nil || modify.TruckNo == nil || modify.OrderType == nil || modify.Direction == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidOrderNo(*modify.OrderNo) {
		return nil, ErrInvalidOrderNo
	}
	if !isValidTruckNo(*modify.TruckNo) {
		return nil, ErrInvalidTruckNo
	}
	if !isValidOrderType(*modify.OrderType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderType, *modify.OrderType)
	}
	if !isValidDirection(*modify.Direction) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, *modify.Direction)
	}

	modify.TruckNo = pointer.To(NormalizeTruckNo(*modify.TruckNo))

	existing, err := s.repository.GetByOrderNo(ctx, *modify.OrderNo)
	if err != nil && !errors.Is(err, ErrOrderNotFound) {
		return nil, fmt.Errorf("deliveryorder.Create: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrConflict, *modify.OrderNo)
	}

	active, err := s.repository.GetActiveByTruck(ctx, *modify.TruckNo, time.Now().Add(-activeWindow))
	if err != nil {
		return nil, fmt.Errorf("deliveryorder.Create: %w", err)
	}
	for _, order := range active {
		if order.Direction == *modify.Direction {
			return nil, fmt.Errorf("%w: %s already holds %s", ErrActiveOrderExists, *modify.TruckNo, order.OrderNo)
		}
	}

	created, err := s.repository.Create(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("deliveryorder.Create: %w", err)
	}

	s.log.Info("delivery order created",
		logger.NewField("order_no", created.OrderNo),
		logger.NewField("truck_no", created.TruckNo),
		logger.NewField("direction", created.Direction.String()),
	)

	return created, nil
}

// Update applies a partial update to an existing order. Cancellation goes
// through Cancel; the ledger cascades depend on seeing the old values, so
// callers emit the matching change event after a successful update.
func (s *Service) Update(ctx context.Context, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	if modify.OrderNo == nil {
		return nil, ErrMissingRequiredFields
	}

	current, err := s.repository.GetByOrderNo(ctx, *modify.OrderNo)
	if err != nil {
		return nil, fmt.Errorf("deliveryorder.Update: %w", err)
	}
	if current.Cancelled {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCancelled, current.OrderNo)
	}

	if modify.TruckNo != nil {
		if !isValidTruckNo(*modify.TruckNo) {
			return nil, ErrInvalidTruckNo
		}
		modify.TruckNo = pointer.To(NormalizeTruckNo(*modify.TruckNo))
	}
	if modify.OrderType != nil && !isValidOrderType(*modify.OrderType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderType, *modify.OrderType)
	}
	if modify.Direction != nil && !isValidDirection(*modify.Direction) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, *modify.Direction)
	}
	// Cancel flag is owned by Cancel, drop it from blind updates.
	modify.Cancelled = nil
	modify.CancelReason = nil

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("deliveryorder.Update: %w", err)
	}

	return updated, nil
}

// Cancel marks an order cancelled with the given reason. Idempotence is
// deliberate here: cancelling twice returns ErrAlreadyCancelled so the
// caller knows no new cascade should run.
func (s *Service) Cancel(ctx context.Context, orderNo, reason string) (*entities.DeliveryOrder, error) {
	if !isValidOrderNo(orderNo) {
		return nil, ErrInvalidOrderNo
	}

	current, err := s.repository.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, fmt.Errorf("deliveryorder.Cancel: %w", err)
	}
	if current.Cancelled {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCancelled, orderNo)
	}

	updated, err := s.repository.Update(ctx, entities.DeliveryOrderModify{
		OrderNo:      pointer.To(orderNo),
		Cancelled:    pointer.To(true),
		CancelReason: pointer.To(reason),
	})
	if err != nil {
		return nil, fmt.Errorf("deliveryorder.Cancel: %w", err)
	}

	s.log.Info("delivery order cancelled",
		logger.NewField("order_no", orderNo),
		logger.NewField("reason", reason),
	)

	return updated, nil
}

func (s *Service) GetByOrderNo(ctx context.Context, orderNo string) (*entities.DeliveryOrder, error) {
	if !isValidOrderNo(orderNo) {
		return nil, ErrInvalidOrderNo
	}
	order, err := s.repository.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, fmt.Errorf("deliveryorder.GetByOrderNo: %w", err)
	}
	return order, nil
}

func (s *Service) GetActiveByTruck(ctx context.Context, truckNo string) ([]entities.DeliveryOrder, error) {
	if !isValidTruckNo(truckNo) {
		return nil, ErrInvalidTruckNo
	}
	orders, err := s.repository.GetActiveByTruck(ctx, NormalizeTruckNo(truckNo), time.Now().Add(-activeWindow))
	if err != nil {
		return nil, fmt.Errorf("deliveryorder.GetActiveByTruck: %w", err)
	}
	return orders, nil
}
