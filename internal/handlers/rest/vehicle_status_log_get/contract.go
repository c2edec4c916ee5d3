//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_status_log_get_test
package vehicle_status_log_get

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
	GetVehicleLog(ctx context.Context, id int64) (*entities.VehicleStatusLog, error)
}
