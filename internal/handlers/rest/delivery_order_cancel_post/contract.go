//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_order_cancel_post_test
package delivery_order_cancel_post

import (
	"context"

	"fuelops/internal/entities"
	"fuelops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type CascadeService interface {
	ApplyChange(ctx context.Context, event entities.DOChangeEvent) error
}
