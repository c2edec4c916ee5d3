package statuslog

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

type VehicleStatusLogDB struct {
	ID               int64
	VehicleID        int64
	TripID           *int64
	MaintenanceID    *int64
	PreviousStatus   string
	NewStatus        string
	ChangedReason    string
	Remarks          *string
	OdometerAtChange float64
	ChangedAt        time.Time
	CreatedBy        *int64
	UpdatedBy        *int64
	IsDeleted        bool
}

type DriverStatusLogDB struct {
	ID                  int64
	DriverID            int64
	TripID              *int64
	PreviousStatus      string
	NewStatus           string
	ChangedReason       string
	Remarks             *string
	IncidentType        *string
	IncidentDescription *string
	SafetyScoreBefore   *float64
	SafetyScoreAfter    *float64
	ChangedAt           time.Time
	CreatedBy           *int64
	UpdatedBy           *int64
	IsDeleted           bool
}
