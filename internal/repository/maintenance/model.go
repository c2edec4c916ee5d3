package maintenance

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

type MaintenanceLogDB struct {
	ID                   int64
	MaintenanceCode      string
	VehicleID            int64
	ServiceType          string
	ServiceDescription   *string
	ServiceProvider      *string
	ServiceProviderPhone *string
	ServiceDate          time.Time
	ExpectedCompletion   time.Time
	ActualCompletion     *time.Time
	LabourCost           float64
	PartsCost            float64
	OdometerAtService    float64
	Status               string
	CompletionNotes      *string
	NextServiceDueKm     *float64
	NextServiceDueDate   *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
	CreatedBy            *int64
	UpdatedBy            *int64
	IsDeleted            bool
}
