//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_put_test
package route_put

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
	UpsertRoute(ctx context.Context, modify entities.RouteModify) (*entities.Route, error)
}
