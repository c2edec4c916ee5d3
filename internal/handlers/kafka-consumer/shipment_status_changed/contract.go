package shipment_status_changed

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
	ProcessShipmentStatusChange(ctx context.Context, shipmentID int64, status entities.ShipmentStatusType) (*entities.Shipment, error)
}
