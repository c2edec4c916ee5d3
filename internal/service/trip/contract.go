//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_test
package trip

import (
	"context"

	"fleetops/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, tripModify entities.TripModify) (*entities.Trip, error)
	GetByID(ctx context.Context, id int64) (*entities.Trip, error)
	GetByShipmentID(ctx context.Context, shipmentID int64) (*entities.Trip, error)
	GetAll(ctx context.Context, includeDeleted bool) ([]entities.Trip, error)
	Update(ctx context.Context, tripModify entities.TripModify) (*entities.Trip, error)
	// UpdateStatus меняет статус только если текущий равен from.
	UpdateStatus(ctx context.Context, id int64, from, to entities.TripStatusType, actorID *int64) error
	CodeExists(ctx context.Context, code string) (bool, error)

	// RecalcFuelCost и RecalcExpenseCost пересчитывают агрегаты рейса
	// одним UPDATE по неудалённым дочерним записям.
	RecalcFuelCost(ctx context.Context, tripID int64) error
	RecalcExpenseCost(ctx context.Context, tripID int64) error

	SoftDelete(ctx context.Context, id int64, actorID *int64) error
}

type VehicleService interface {
	GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error)
	UpdateVehicleStatus(ctx context.Context, id int64, from, to entities.VehicleStatusType, actorID *int64) error
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
	UpdateDriverStatus(ctx context.Context, id int64, from, to entities.DriverStatusType, safetyScore *float64, actorID *int64) error
	IncrementTotalTrips(ctx context.Context, id int64) error
	IncrementCompletedTrips(ctx context.Context, id int64) error
}

type ShipmentService interface {
	GetShipment(ctx context.Context, id int64) (*entities.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, id int64, from, to entities.ShipmentStatusType, actorID *int64) error
}

type VehicleLogger interface {
	CreateVehicleLog(ctx context.Context, logModify entities.VehicleStatusLogModify) (int64, error)
}

type DriverLogger interface {
	CreateDriverLog(ctx context.Context, logModify entities.DriverStatusLogModify) (int64, error)
}

type CodeFactory interface {
	NewCode(prefix string) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
