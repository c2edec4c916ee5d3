//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_status_log_post_test
package driver_status_log_post

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
	RecordDriverStatusChange(ctx context.Context, change entities.DriverStatusChange) (*entities.DriverStatusLog, error)
}
