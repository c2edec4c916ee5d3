package vehicle

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type VehicleDB struct {
	ID              int64
	LicensePlate    string
	Make            string
	Model           string
	Year            int
	Type            string
	MaxLoadKg       float64
	FuelTankLiters  float64
	OdometerKm      float64
	AcquisitionCost float64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       *int64
	UpdatedBy       *int64
	IsDeleted       bool
}

type VehicleModifyDB struct {
	ID              *int64
	LicensePlate    *string
	Make            *string
	Model           *string
	Year            *int
	Type            *string
	MaxLoadKg       *float64
	FuelTankLiters  *float64
	OdometerKm      *float64
	AcquisitionCost *float64
	Status          *string
	UpdatedBy       *int64
}
