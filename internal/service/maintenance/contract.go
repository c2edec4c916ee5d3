//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_test
package maintenance

import (
	"context"

	"fleetops/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, code string, create entities.MaintenanceCreate, actorID *int64) (*entities.MaintenanceLog, error)
	GetByID(ctx context.Context, id int64) (*entities.MaintenanceLog, error)
	GetAll(ctx context.Context, filter entities.MaintenanceFilter, page entities.Page) ([]entities.MaintenanceLog, int64, error)
	Update(ctx context.Context, maintenanceModify entities.MaintenanceModify) (*entities.MaintenanceLog, error)
	// UpdateStatus меняет статус только если текущий равен from;
	// поля completion применяются той же записью.
	UpdateStatus(ctx context.Context, id int64, from, to entities.MaintenanceStatusType, completion entities.MaintenanceCompletion, actorID *int64) error
	CodeExists(ctx context.Context, code string) (bool, error)
	SoftDelete(ctx context.Context, id int64, actorID *int64) error
}

type VehicleService interface {
	GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error)
	UpdateVehicleStatus(ctx context.Context, id int64, from, to entities.VehicleStatusType, actorID *int64) error
}

type VehicleLogger interface {
	CreateVehicleLog(ctx context.Context, logModify entities.VehicleStatusLogModify) (int64, error)
}

type CodeFactory interface {
	NewCode(prefix string) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
