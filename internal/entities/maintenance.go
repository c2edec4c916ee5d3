package entities

import "time"

type MaintenanceLog struct {
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
	Status               MaintenanceStatusType
	CompletionNotes      *string
	NextServiceDueKm     *float64
	NextServiceDueDate   *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
	CreatedBy            *int64
	UpdatedBy            *int64
	IsDeleted            bool
}

type MaintenanceStatusType string

const (
	MaintenanceScheduled  MaintenanceStatusType = "Scheduled"
	MaintenanceInProgress MaintenanceStatusType = "In Progress"
	MaintenanceCompleted  MaintenanceStatusType = "Completed"
	MaintenanceCancelled  MaintenanceStatusType = "Cancelled"
)

func (t MaintenanceStatusType) String() string {
	return string(t)
}

// IsTerminal сообщает, допускает ли статус дальнейшие переходы.
func (t MaintenanceStatusType) IsTerminal() bool {
	return t == MaintenanceCompleted || t == MaintenanceCancelled
}

type MaintenanceModify struct {
	ID                   *int64
	ServiceType          *string
	ServiceDescription   *string
	ServiceProvider      *string
	ServiceProviderPhone *string
	ServiceDate          *time.Time
	ExpectedCompletion   *time.Time
	ActualCompletion     *time.Time
	LabourCost           *float64
	PartsCost            *float64
	OdometerAtService    *float64
	CompletionNotes      *string
	NextServiceDueKm     *float64
	NextServiceDueDate   *time.Time
	UpdatedBy            *int64
}

type MaintenanceCreate struct {
	VehicleID            int64
	ServiceType          string
	ServiceDescription   *string
	ServiceProvider      *string
	ServiceProviderPhone *string
	ServiceDate          time.Time
	ExpectedCompletion   time.Time
	LabourCost           float64
	PartsCost            float64
	OdometerAtService    float64
	NextServiceDueKm     *float64
	NextServiceDueDate   *time.Time
}

// MaintenanceCompletion — опциональные поля, сопровождающие переход статуса.
type MaintenanceCompletion struct {
	ActualCompletion *time.Time
	CompletionNotes  *string
}

type MaintenanceFilter struct {
	VehicleID   *int64
	Status      *MaintenanceStatusType
	ServiceType *string
	FromDate    *time.Time
	ToDate      *time.Time
}
