//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"fleetops/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModify entities.ShipmentModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	GetAll(ctx context.Context, includeDeleted bool) ([]entities.Shipment, error)
	Update(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	// UpdateStatus меняет статус только если текущий равен from.
	UpdateStatus(ctx context.Context, id int64, from, to entities.ShipmentStatusType, actorID *int64) error
	SoftDelete(ctx context.Context, id int64, actorID *int64) error
}
