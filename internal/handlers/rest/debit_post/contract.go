//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=debit_post_test
package debit_post

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
	RecordFill(ctx context.Context, truckNo, station string, liters decimal.Decimal) (*entities.FuelRecord, *entities.DirectionResult, error)
}
