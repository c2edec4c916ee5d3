//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_put_test
package shipment_put

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
	UpdateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
}
