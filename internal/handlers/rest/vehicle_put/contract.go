//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_put_test
package vehicle_put

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
	UpdateVehicle(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error)
}
