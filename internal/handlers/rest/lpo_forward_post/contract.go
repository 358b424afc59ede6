//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lpo_forward_post_test
package lpo_forward_post

import (
	"context"

	"github.com/shopspring/decimal"

	"fuelops/internal/entities"
	"fuelops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Forward(ctx context.Context, sourceStation, targetStation string, liters, rate decimal.Decimal) ([]entities.LPOEntry, error)
}
