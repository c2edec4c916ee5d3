package entities

import "time"

// VehicleStatusLog — строка аудита одного перехода статуса ТС.
// Записи append-only: после вставки поля перехода не меняются,
// "удаление" только скрывает строку из выборок.
type VehicleStatusLog struct {
	ID               int64
	VehicleID        int64
	TripID           *int64
	MaintenanceID    *int64
	PreviousStatus   VehicleStatusType
	NewStatus        VehicleStatusType
	ChangedReason    VehicleChangeReason
	Remarks          *string
	OdometerAtChange float64
	ChangedAt        time.Time
	CreatedBy        *int64
	UpdatedBy        *int64
	IsDeleted        bool
}

type VehicleChangeReason string

const (
	VehicleReasonTripDispatched       VehicleChangeReason = "Trip Dispatched"
	VehicleReasonTripCompleted        VehicleChangeReason = "Trip Completed"
	VehicleReasonTripCancelled        VehicleChangeReason = "Trip Cancelled"
	VehicleReasonMaintenanceStarted   VehicleChangeReason = "Maintenance Started"
	VehicleReasonMaintenanceCompleted VehicleChangeReason = "Maintenance Completed"
	VehicleReasonMaintenanceCancelled VehicleChangeReason = "Maintenance Cancelled"
	VehicleReasonManuallyRetired      VehicleChangeReason = "Manually Retired"
	VehicleReasonManuallyReinstated   VehicleChangeReason = "Manually Reinstated"
	VehicleReasonOther                VehicleChangeReason = "Other"
)

func (r VehicleChangeReason) String() string {
	return string(r)
}

// VehicleStatusChange — запрос на регистрацию перехода через
// optimistic-concurrency gate: PreviousStatus обязан совпадать
// с живым статусом ТС на момент записи.
type VehicleStatusChange struct {
	VehicleID        int64
	TripID           *int64
	MaintenanceID    *int64
	PreviousStatus   VehicleStatusType
	NewStatus        VehicleStatusType
	ChangedReason    VehicleChangeReason
	Remarks          *string
	OdometerAtChange float64
	ChangedAt        *time.Time
	ActorID          *int64
}

// VehicleStatusLogModify — вставка строки аудита изнутри координатора
// (gate уже пройден вызывающей стороной в той же транзакции).
type VehicleStatusLogModify struct {
	VehicleID        int64
	TripID           *int64
	MaintenanceID    *int64
	PreviousStatus   VehicleStatusType
	NewStatus        VehicleStatusType
	ChangedReason    VehicleChangeReason
	Remarks          *string
	OdometerAtChange float64
	ChangedAt        *time.Time
	CreatedBy        *int64
}

type VehicleStatusLogFilter struct {
	VehicleID     *int64
	TripID        *int64
	MaintenanceID *int64
	ChangedReason *VehicleChangeReason
	FromDate      *time.Time
	ToDate        *time.Time
}
