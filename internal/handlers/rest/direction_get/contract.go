//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=direction_get_test
package direction_get

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

type Service interface {
	ResolveDirection(ctx context.Context, truckNo, station string) (*entities.DirectionResult, error)
}
