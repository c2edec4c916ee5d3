//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statuslog_test
package statuslog

import (
	"context"

	"fleetops/internal/entities"
)

type Repository interface {
	CreateVehicleLog(ctx context.Context, logModify entities.VehicleStatusLogModify) (int64, error)
	GetVehicleLogByID(ctx context.Context, id int64) (*entities.VehicleStatusLog, error)
	GetVehicleLogs(ctx context.Context, filter entities.VehicleStatusLogFilter, page entities.Page) ([]entities.VehicleStatusLog, int64, error)
	SoftDeleteVehicleLog(ctx context.Context, id int64, actorID *int64) error

	CreateDriverLog(ctx context.Context, logModify entities.DriverStatusLogModify) (int64, error)
	GetDriverLogByID(ctx context.Context, id int64) (*entities.DriverStatusLog, error)
	GetDriverLogs(ctx context.Context, filter entities.DriverStatusLogFilter, page entities.Page) ([]entities.DriverStatusLog, int64, error)
	SoftDeleteDriverLog(ctx context.Context, id int64, actorID *int64) error

	TripExists(ctx context.Context, id int64) (bool, error)
	MaintenanceExists(ctx context.Context, id int64) (bool, error)
}

type VehicleService interface {
	GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error)
	UpdateVehicleStatus(ctx context.Context, id int64, from, to entities.VehicleStatusType, actorID *int64) error
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
	UpdateDriverStatus(ctx context.Context, id int64, from, to entities.DriverStatusType, safetyScore *float64, actorID *int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
