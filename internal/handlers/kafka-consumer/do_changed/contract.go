package do_changed

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
	ApplyChange(ctx context.Context, event entities.DOChangeEvent) error
}
