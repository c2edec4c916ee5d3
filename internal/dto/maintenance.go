package dto

import "time"

type MaintenanceLog struct {
	ID                   int64      `json:"id"`
	MaintenanceCode      string     `json:"maintenance_code"`
	VehicleID            int64      `json:"vehicle_id"`
	ServiceType          string     `json:"service_type"`
	ServiceDescription   *string    `json:"service_description,omitempty"`
	ServiceProvider      *string    `json:"service_provider,omitempty"`
	ServiceProviderPhone *string    `json:"service_provider_phone,omitempty"`
	ServiceDate          time.Time  `json:"service_date"`
	ExpectedCompletion   time.Time  `json:"expected_completion"`
	ActualCompletion     *time.Time `json:"actual_completion,omitempty"`
	LabourCost           float64    `json:"labour_cost"`
	PartsCost            float64    `json:"parts_cost"`
	OdometerAtService    float64    `json:"odometer_at_service"`
	Status               string     `json:"status"`
	CompletionNotes      *string    `json:"completion_notes,omitempty"`
	NextServiceDueKm     *float64   `json:"next_service_due_km,omitempty"`
	NextServiceDueDate   *time.Time `json:"next_service_due_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type MaintenanceCreate struct {
	VehicleID            int64      `json:"vehicle_id"`
	ServiceType          string     `json:"service_type"`
	ServiceDescription   *string    `json:"service_description,omitempty"`
	ServiceProvider      *string    `json:"service_provider,omitempty"`
	ServiceProviderPhone *string    `json:"service_provider_phone,omitempty"`
	ServiceDate          time.Time  `json:"service_date"`
	ExpectedCompletion   time.Time  `json:"expected_completion"`
	LabourCost           *float64   `json:"labour_cost,omitempty"`
	PartsCost            *float64   `json:"parts_cost,omitempty"`
	OdometerAtService    *float64   `json:"odometer_at_service,omitempty"`
	NextServiceDueKm     *float64   `json:"next_service_due_km,omitempty"`
	NextServiceDueDate   *time.Time `json:"next_service_due_date,omitempty"`
	ActorID              *int64     `json:"actor_id,omitempty"`
}

type MaintenanceUpdate struct {
	ID                   int64      `json:"id"`
	ServiceType          *string    `json:"service_type,omitempty"`
	ServiceDescription   *string    `json:"service_description,omitempty"`
	ServiceProvider      *string    `json:"service_provider,omitempty"`
	ServiceProviderPhone *string    `json:"service_provider_phone,omitempty"`
	ServiceDate          *time.Time `json:"service_date,omitempty"`
	ExpectedCompletion   *time.Time `json:"expected_completion,omitempty"`
	LabourCost           *float64   `json:"labour_cost,omitempty"`
	PartsCost            *float64   `json:"parts_cost,omitempty"`
	OdometerAtService    *float64   `json:"odometer_at_service,omitempty"`
	CompletionNotes      *string    `json:"completion_notes,omitempty"`
	NextServiceDueKm     *float64   `json:"next_service_due_km,omitempty"`
	NextServiceDueDate   *time.Time `json:"next_service_due_date,omitempty"`
	ActorID              *int64     `json:"actor_id,omitempty"`
}

type MaintenanceStatusUpdate struct {
	Status           string     `json:"status"`
	ActualCompletion *time.Time `json:"actual_completion,omitempty"`
	CompletionNotes  *string    `json:"completion_notes,omitempty"`
	ActorID          *int64     `json:"actor_id,omitempty"`
}

type MaintenanceLogList struct {
	Success bool             `json:"success"`
	Data    []MaintenanceLog `json:"data"`
	Meta    ListMeta         `json:"meta"`
}
