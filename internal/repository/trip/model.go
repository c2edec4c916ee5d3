package trip

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

type TripDB struct {
	ID                 int64
	TripCode           string
	VehicleID          int64
	DriverID           int64
	ShipmentID         int64
	OriginAddress      string
	DestinationAddress string
	EstimatedDistKm    *float64
	ActualDistKm       *float64
	OdometerStartKm    float64
	OdometerEndKm      *float64
	CargoWeightKg      float64
	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
	ActualStart        *time.Time
	ActualEnd          *time.Time
	TotalFuelCost      float64
	TotalExpenseCost   float64
	Status             string
	CancelledReason    *string
	CancelledAt        *time.Time
	CancelledBy        *int64
	CompletedAt        *time.Time
	CompletionNotes    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedBy          *int64
	UpdatedBy          *int64
	IsDeleted          bool
}

type TripModifyDB struct {
	ID                 *int64
	TripCode           *string
	VehicleID          *int64
	DriverID           *int64
	ShipmentID         *int64
	OriginAddress      *string
	DestinationAddress *string
	EstimatedDistKm    *float64
	ActualDistKm       *float64
	OdometerStartKm    *float64
	OdometerEndKm      *float64
	CargoWeightKg      *float64
	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
	ActualStart        *time.Time
	ActualEnd          *time.Time
	Status             *string
	CancelledReason    *string
	CancelledAt        *time.Time
	CancelledBy        *int64
	CompletedAt        *time.Time
	CompletionNotes    *string
	CreatedBy          *int64
	UpdatedBy          *int64
}
