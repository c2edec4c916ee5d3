//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fuel_logs_get_test
package fuel_logs_get

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
	GetFuelLogs(ctx context.Context, filter entities.FuelLogFilter, page entities.Page) ([]entities.FuelLog, int64, error)
}
