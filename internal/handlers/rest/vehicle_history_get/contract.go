//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_history_get_test
package vehicle_history_get

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
	GetVehicleHistory(ctx context.Context, vehicleID int64, page entities.Page) ([]entities.VehicleStatusLog, int64, error)
}
