//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fuellog_test
package fuellog

import (
	"context"

	"fleetops/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, code string, create entities.FuelLogCreate, actorID *int64) (*entities.FuelLog, error)
	GetByID(ctx context.Context, id int64) (*entities.FuelLog, error)
	GetAll(ctx context.Context, filter entities.FuelLogFilter, page entities.Page) ([]entities.FuelLog, int64, error)
	Update(ctx context.Context, fuelLogModify entities.FuelLogModify) (*entities.FuelLog, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	SoftDelete(ctx context.Context, id int64, actorID *int64) error
}

// TripService пересчитывает total_fuel_cost рейса в той же транзакции,
// где меняются топливные записи.
type TripService interface {
	GetTrip(ctx context.Context, id int64) (*entities.Trip, error)
	RecomputeFuelCost(ctx context.Context, tripID int64) error
}

type CodeFactory interface {
	NewCode(prefix string) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
