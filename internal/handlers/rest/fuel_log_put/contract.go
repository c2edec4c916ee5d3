//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fuel_log_put_test
package fuel_log_put

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
	UpdateFuelLog(ctx context.Context, fuelLogModify entities.FuelLogModify) (*entities.FuelLog, error)
}
