package entities

import "time"

type Trip struct {
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
	Status             TripStatusType
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

type TripStatusType string

const (
	TripDraft      TripStatusType = "Draft"
	TripDispatched TripStatusType = "Dispatched"
	TripOnTrip     TripStatusType = "On Trip"
	TripCompleted  TripStatusType = "Completed"
	TripCancelled  TripStatusType = "Cancelled"
)

func (t TripStatusType) String() string {
	return string(t)
}

type TripModify struct {
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
	Status             *TripStatusType
	CancelledReason    *string
	CancelledAt        *time.Time
	CancelledBy        *int64
	CompletedAt        *time.Time
	CompletionNotes    *string
	CreatedBy          *int64
	UpdatedBy          *int64
}

// TripCreate — входные данные ассайнмент-валидатора.
// CargoWeightKg nil означает "взять вес из shipment".
type TripCreate struct {
	VehicleID          int64
	DriverID           int64
	ShipmentID         int64
	OriginAddress      string
	DestinationAddress string
	EstimatedDistKm    *float64
	CargoWeightKg      *float64
	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
}

// TripCompletion — данные закрытия рейса.
type TripCompletion struct {
	OdometerEndKm   *float64
	ActualDistKm    *float64
	CompletionNotes *string
}
