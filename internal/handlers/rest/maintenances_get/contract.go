//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenances_get_test
package maintenances_get

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
	GetMaintenances(ctx context.Context, filter entities.MaintenanceFilter, page entities.Page) ([]entities.MaintenanceLog, int64, error)
}
