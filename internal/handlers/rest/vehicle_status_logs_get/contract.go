//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_status_logs_get_test
package vehicle_status_logs_get

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
	GetVehicleLogs(ctx context.Context, filter entities.VehicleStatusLogFilter, page entities.Page) ([]entities.VehicleStatusLog, int64, error)
}
