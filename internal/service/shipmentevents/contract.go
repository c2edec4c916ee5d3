//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipmentevents_test
package shipmentevents

import (
	"context"

	"fleetops/internal/entities"
)

type ShipmentService interface {
	GetShipment(ctx context.Context, id int64) (*entities.Shipment, error)
}

type TripService interface {
	GetTripByShipmentID(ctx context.Context, shipmentID int64) (*entities.Trip, error)
	CompleteTrip(ctx context.Context, tripID int64, completion entities.TripCompletion, actorID *int64) (*entities.Trip, error)
	CancelTrip(ctx context.Context, tripID int64, reason string, actorID *int64) (*entities.Trip, error)
}

type (
	ExecuteFn      func(ctx context.Context, shipmentID int64) error
	HandlerFactory interface {
		GetHandler(status entities.ShipmentStatusType) (ExecuteFn, error)
	}
)
