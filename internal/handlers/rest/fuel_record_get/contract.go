//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fuel_record_get_test
package fuel_record_get

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
	GetRecordByGoingDO(ctx context.Context, goingDO string) (*entities.FuelRecord, error)
}
