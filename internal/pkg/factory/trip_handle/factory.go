package trip_handle

import (
	"context"
	"fmt"

	"fleetops/internal/entities"
	"fleetops/internal/service/shipmentevents"
)

type StatusHandlerFactory struct {
	tripService shipmentevents.TripService
}

func NewStatusHandlerFactory(tripService shipmentevents.TripService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		tripService: tripService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.ShipmentStatusType) (shipmentevents.ExecuteFn, error) {
	switch status {
	case entities.ShipmentDelivered:
		return f.deliveredHandler, nil
	case entities.ShipmentCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", shipmentevents.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, shipmentID int64) error {
	trip, err := f.tripService.GetTripByShipmentID(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("get trip for delivered shipment %d: %w", shipmentID, err)
	}

	_, err = f.tripService.CompleteTrip(ctx, trip.ID, entities.TripCompletion{}, nil)
	if err != nil {
		return fmt.Errorf("complete trip for delivered shipment %d: %w", shipmentID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, shipmentID int64) error {
	trip, err := f.tripService.GetTripByShipmentID(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("get trip for cancelled shipment %d: %w", shipmentID, err)
	}

	_, err = f.tripService.CancelTrip(ctx, trip.ID, "Shipment cancelled", nil)
	if err != nil {
		return fmt.Errorf("cancel trip for cancelled shipment %d: %w", shipmentID, err)
	}
	return nil
}
