//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=batch_put_test
package batch_put

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
	UpsertTruckBatch(ctx context.Context, modify entities.TruckBatchModify) (*entities.TruckBatch, error)
}
