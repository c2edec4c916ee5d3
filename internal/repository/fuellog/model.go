package fuellog

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

type FuelLogDB struct {
	ID              int64
	FuelLogCode     string
	VehicleID       int64
	TripID          int64
	DriverID        int64
	FuelType        string
	LitersFilled    float64
	PricePerLiter   float64
	TotalFuelCost   float64
	OdometerAtFuel  float64
	FuelStationName *string
	FuelStationCity *string
	ReceiptNumber   *string
	FueledAt        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       *int64
	UpdatedBy       *int64
	IsDeleted       bool
}
