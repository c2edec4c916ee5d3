//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_history_get_test
package driver_history_get

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
	GetDriverHistory(ctx context.Context, driverID int64, page entities.Page) ([]entities.DriverStatusLog, int64, error)
}
