//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_put_test
package maintenance_put

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
	UpdateMaintenance(ctx context.Context, maintenanceModify entities.MaintenanceModify) (*entities.MaintenanceLog, error)
}
