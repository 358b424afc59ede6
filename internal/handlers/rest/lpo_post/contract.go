//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lpo_post_test
package lpo_post

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
	Create(ctx context.Context, modify entities.LPOEntryModify) (*entities.LPOEntry, error)
}
