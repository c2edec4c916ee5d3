//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_status_patch_test
package maintenance_status_patch

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
	TransitionMaintenance(ctx context.Context, id int64, newStatus entities.MaintenanceStatusType, completion entities.MaintenanceCompletion, actorID *int64) (*entities.MaintenanceLog, error)
}
