//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_status_log_post_test
package vehicle_status_log_post

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
	RecordVehicleStatusChange(ctx context.Context, change entities.VehicleStatusChange) (*entities.VehicleStatusLog, error)
}
