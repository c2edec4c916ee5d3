package entities

import "time"

type Shipment struct {
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
	Status             ShipmentStatusType
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedBy          *int64
	UpdatedBy          *int64
	IsDeleted          bool
}

type ShipmentStatusType string

const (
	ShipmentPending   ShipmentStatusType = "Pending"
	ShipmentAssigned  ShipmentStatusType = "Assigned"
	ShipmentInTransit ShipmentStatusType = "In Transit"
	ShipmentDelivered ShipmentStatusType = "Delivered"
	ShipmentCancelled ShipmentStatusType = "Cancelled"
)

const DefaultShipmentStatus = ShipmentPending

func (t ShipmentStatusType) String() string {
	return string(t)
}

type ShipmentModify struct {
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
	Status             *ShipmentStatusType
	UpdatedBy          *int64
}
