package cascade

import (
	"context"
	"fmt"

	"fuelops/internal/entities"
	"fuelops/pkg/logger"
)

// Service routes delivery-order change events through the effect table
// so an edit to an order and its ledger fallout land in one transaction.
type Service struct {
	orderService OrderService
	factory      HandlerFactory
	txManager    TxManager
	log          logger.Logger
}

func NewService(orderService OrderService, factory HandlerFactory, txManager TxManager, log logger.Logger) *Service {
	return &Service{
		orderService: orderService,
		factory:      factory,
		txManager:    txManager,
		log:          log,
	}
}

// ApplyChange verifies the order exists, looks up the effect handler for
// the event kind and runs it transactionally. Handlers are the only
// place that knows which ledger calls a given kind implies.
func (s *Service) ApplyChange(ctx context.Context, event entities.DOChangeEvent) error {
	if event.OrderNo == "" || event.Kind == "" {
		return ErrMissingRequiredFields
	}

	if _, err := s.orderService.GetByOrderNo(ctx, event.OrderNo); err != nil {
		return fmt.Errorf("cascade.ApplyChange: %w", err)
	}

	handler, err := s.factory.GetHandler(event.Kind)
	if err != nil {
		return fmt.Errorf("cascade.ApplyChange: %w", err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return handler(ctx, event)
	})
	if err != nil {
		return fmt.Errorf("cascade.ApplyChange %s on %s: %w", event.Kind, event.OrderNo, err)
	}

	s.log.Info("change cascade applied",
		logger.NewField("order_no", event.OrderNo),
		logger.NewField("kind", event.Kind.String()),
	)

	return nil
}
