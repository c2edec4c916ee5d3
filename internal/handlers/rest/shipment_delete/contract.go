//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_delete_test
package shipment_delete

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
	DeleteShipment(ctx context.Context, id int64, actorID *int64) error
}
