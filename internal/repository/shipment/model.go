package shipment

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

type ShipmentDB struct {
	ID                 int64
	ShipmentCode       string
	Description        *string
	CargoWeightKg      float64
	CargoVolumeM3      *float64
	CargoType          *string
	OriginAddress      string
	DestinationAddress string
	SenderName         *string
	SenderPhone        *string
	ReceiverName       *string
	ReceiverPhone      *string
	DeclaredValue      *float64
	DeliveryCharge     *float64
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedBy          *int64
	UpdatedBy          *int64
	IsDeleted          bool
}

type ShipmentModifyDB struct {
	ID                 *int64
	ShipmentCode       *string
	Description        *string
	CargoWeightKg      *float64
	CargoVolumeM3      *float64
	CargoType          *string
	OriginAddress      *string
	DestinationAddress *string
	SenderName         *string
	SenderPhone        *string
	ReceiverName       *string
	ReceiverPhone      *string
	DeclaredValue      *float64
	DeliveryCharge     *float64
	Status             *string
	UpdatedBy          *int64
}
