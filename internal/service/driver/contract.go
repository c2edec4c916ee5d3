//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"fleetops/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	GetAll(ctx context.Context, includeDeleted bool) ([]entities.Driver, error)
	GetExpiredLicenses(ctx context.Context) ([]entities.Driver, error)
	Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)

	// UpdateStatus меняет живой статус только если он равен from,
	// иначе возвращает ErrStatusConflict. safetyScore nil — счёт не трогаем.
	UpdateStatus(ctx context.Context, id int64, from, to entities.DriverStatusType, safetyScore *float64, actorID *int64) error

	IncrementTotalTrips(ctx context.Context, id int64) error
	IncrementCompletedTrips(ctx context.Context, id int64) error
	InvalidateExpiredLicenses(ctx context.Context) (int64, error)

	SoftDelete(ctx context.Context, id int64, actorID *int64) error
}
