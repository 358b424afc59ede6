//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=autofill_post_test
package autofill_post

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
	ComputeAutoFill(ctx context.Context, truckNo, station string) (*entities.AutoFillResult, error)
}
