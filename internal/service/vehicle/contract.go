//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_test
package vehicle

import (
	"context"

	"fleetops/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Vehicle, error)
	GetAll(ctx context.Context, includeDeleted bool) ([]entities.Vehicle, error)
	Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error)

	// UpdateStatus меняет живой статус только если он равен from,
	// иначе возвращает ErrStatusConflict.
	UpdateStatus(ctx context.Context, id int64, from, to entities.VehicleStatusType, actorID *int64) error

	SoftDelete(ctx context.Context, id int64, actorID *int64) error
}
