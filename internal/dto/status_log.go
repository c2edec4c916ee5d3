package dto

import "time"

type VehicleStatusLog struct {
	ID               int64     `json:"id"`
	VehicleID        int64     `json:"vehicle_id"`
	TripID           *int64    `json:"trip_id,omitempty"`
	MaintenanceID    *int64    `json:"maintenance_id,omitempty"`
	PreviousStatus   string    `json:"previous_status"`
	NewStatus        string    `json:"new_status"`
	ChangedReason    string    `json:"changed_reason"`
	Remarks          *string   `json:"remarks,omitempty"`
	OdometerAtChange float64   `json:"odometer_at_change"`
	ChangedAt        time.Time `json:"changed_at"`
}

type VehicleStatusLogCreate struct {
	VehicleID        int64      `json:"vehicle_id"`
	TripID           *int64     `json:"trip_id,omitempty"`
	MaintenanceID    *int64     `json:"maintenance_id,omitempty"`
	PreviousStatus   string     `json:"previous_status"`
	NewStatus        string     `json:"new_status"`
	ChangedReason    string     `json:"changed_reason"`
	Remarks          *string    `json:"remarks,omitempty"`
	OdometerAtChange *float64   `json:"odometer_at_change,omitempty"`
	ChangedAt        *time.Time `json:"changed_at,omitempty"`
	ActorID          *int64     `json:"actor_id,omitempty"`
}

type VehicleStatusLogList struct {
	Success bool               `json:"success"`
	Data    []VehicleStatusLog `json:"data"`
	Meta    ListMeta           `json:"meta"`
}

type DriverStatusLog struct {
	ID                  int64     `json:"id"`
	DriverID            int64     `json:"driver_id"`
	TripID              *int64    `json:"trip_id,omitempty"`
	PreviousStatus      string    `json:"previous_status"`
	NewStatus           string    `json:"new_status"`
	ChangedReason       string    `json:"changed_reason"`
	Remarks             *string   `json:"remarks,omitempty"`
	IncidentType        *string   `json:"incident_type,omitempty"`
	IncidentDescription *string   `json:"incident_description,omitempty"`
	SafetyScoreBefore   *float64  `json:"safety_score_before,omitempty"`
	SafetyScoreAfter    *float64  `json:"safety_score_after,omitempty"`
	ChangedAt           time.Time `json:"changed_at"`
}

type DriverStatusLogCreate struct {
	DriverID            int64      `json:"driver_id"`
	TripID              *int64     `json:"trip_id,omitempty"`
	PreviousStatus      string     `json:"previous_status"`
	NewStatus           string     `json:"new_status"`
	ChangedReason       string     `json:"changed_reason"`
	Remarks             *string    `json:"remarks,omitempty"`
	IncidentType        *string    `json:"incident_type,omitempty"`
	IncidentDescription *string    `json:"incident_description,omitempty"`
	SafetyScoreBefore   *float64   `json:"safety_score_before,omitempty"`
	SafetyScoreAfter    *float64   `json:"safety_score_after,omitempty"`
	ChangedAt           *time.Time `json:"changed_at,omitempty"`
	ActorID             *int64     `json:"actor_id,omitempty"`
}

type DriverStatusLogList struct {
	Success bool              `json:"success"`
	Data    []DriverStatusLog `json:"data"`
	Meta    ListMeta          `json:"meta"`
}
