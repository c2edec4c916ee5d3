//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_status_log_delete_test
package vehicle_status_log_delete

import (
	"context"

	"fleetops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteVehicleLog(ctx context.Context, id int64, actorID *int64) error
}
