package dto

import "time"

type Trip struct {
	ID                 int64      `json:"id"`
	TripCode           string     `json:"trip_code"`
	VehicleID          int64      `json:"vehicle_id"`
	DriverID           int64      `json:"driver_id"`
	ShipmentID         int64      `json:"shipment_id"`
	OriginAddress      string     `json:"origin_address"`
	DestinationAddress string     `json:"destination_address"`
	EstimatedDistKm    *float64   `json:"estimated_dist_km,omitempty"`
	ActualDistKm       *float64   `json:"actual_dist_km,omitempty"`
	OdometerStartKm    float64    `json:"odometer_start_km"`
	OdometerEndKm      *float64   `json:"odometer_end_km,omitempty"`
	CargoWeightKg      float64    `json:"cargo_weight_kg"`
	ScheduledStart     *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time `json:"scheduled_end,omitempty"`
	ActualStart        *time.Time `json:"actual_start,omitempty"`
	ActualEnd          *time.Time `json:"actual_end,omitempty"`
	TotalFuelCost      float64    `json:"total_fuel_cost"`
	TotalExpenseCost   float64    `json:"total_expense_cost"`
	Status             string     `json:"status"`
	CancelledReason    *string    `json:"cancelled_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CompletionNotes    *string    `json:"completion_notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type TripCreate struct {
	VehicleID          int64      `json:"vehicle_id"`
	DriverID           int64      `json:"driver_id"`
	ShipmentID         int64      `json:"shipment_id"`
	OriginAddress      string     `json:"origin_address"`
	DestinationAddress string     `json:"destination_address"`
	EstimatedDistKm    *float64   `json:"estimated_dist_km,omitempty"`
	CargoWeightKg      *float64   `json:"cargo_weight_kg,omitempty"`
	ScheduledStart     *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time `json:"scheduled_end,omitempty"`
	ActorID            *int64     `json:"actor_id,omitempty"`
}

type TripUpdate struct {
	ID                 int64      `json:"id"`
	OriginAddress      *string    `json:"origin_address,omitempty"`
	DestinationAddress *string    `json:"destination_address,omitempty"`
	EstimatedDistKm    *float64   `json:"estimated_dist_km,omitempty"`
	CargoWeightKg      *float64   `json:"cargo_weight_kg,omitempty"`
	ScheduledStart     *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time `json:"scheduled_end,omitempty"`
	ActorID            *int64     `json:"actor_id,omitempty"`
}

type TripDispatchRequest struct {
	ActorID *int64 `json:"actor_id,omitempty"`
}

type TripCompleteRequest struct {
	OdometerEndKm   *float64 `json:"odometer_end_km,omitempty"`
	ActualDistKm    *float64 `json:"actual_dist_km,omitempty"`
	CompletionNotes *string  `json:"completion_notes,omitempty"`
	ActorID         *int64   `json:"actor_id,omitempty"`
}

type TripCancelRequest struct {
	Reason  string `json:"reason"`
	ActorID *int64 `json:"actor_id,omitempty"`
}
