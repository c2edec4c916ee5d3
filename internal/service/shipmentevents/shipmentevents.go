package shipmentevents

import (
	"context"
	"errors"
	"fmt"

	"fleetops/internal/entities"
)

type Service struct {
	shipmentService ShipmentService
	statusFactory   HandlerFactory
}

func New(shipmentService ShipmentService, statusFactory HandlerFactory) *Service {
	return &Service{
		shipmentService: shipmentService,
		statusFactory:   statusFactory,
	}
}

// ProcessShipmentStatusChange реагирует на внешнее событие статуса груза.
// Событие сверяется с живой строкой груза; уже совпавший статус
// означает повторную доставку сообщения и пропускается.
func (s *Service) ProcessShipmentStatusChange(ctx context.Context, shipmentID int64, status entities.ShipmentStatusType) (*entities.Shipment, error) {
	if shipmentID <= 0 || status == "" {
		return nil, ErrMissingRequiredFields
	}

	shipment, err := s.shipmentService.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	if shipment.Status == status {
		return shipment, nil
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return shipment, nil
		}
		return shipment, err
	}

	if err := executeFn(ctx, shipmentID); err != nil {
		return nil, err
	}

	return shipment, nil
}
