package driver

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

type DriverDB struct {
	ID                int64
	FullName          string
	Phone             string
	Email             *string
	LicenseNumber     string
	LicenseType       string
	LicenseExpiryDate time.Time
	IsLicenseValid    bool
	TotalTrips        int64
	CompletedTrips    int64
	SafetyScore       float64
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CreatedBy         *int64
	UpdatedBy         *int64
	IsDeleted         bool
}

type DriverModifyDB struct {
	ID                *int64
	FullName          *string
	Phone             *string
	Email             *string
	LicenseNumber     *string
	LicenseType       *string
	LicenseExpiryDate *time.Time
	IsLicenseValid    *bool
	SafetyScore       *float64
	Status            *string
	UpdatedBy         *int64
}
