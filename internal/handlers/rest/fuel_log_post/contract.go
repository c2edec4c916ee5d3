//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fuel_log_post_test
package fuel_log_post

import (
	"context"

	"fleetops/internal/entities"
	"fleetops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateFuelLog(ctx context.Context, create entities.FuelLogCreate, actorID *int64) (*entities.FuelLog, error)
}
