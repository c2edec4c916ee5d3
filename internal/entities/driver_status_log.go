package entities

import "time"

type DriverStatusLog struct {
	ID                  int64
	DriverID            int64
	TripID              *int64
	PreviousStatus      DriverStatusType
	NewStatus           DriverStatusType
	ChangedReason       DriverChangeReason
	Remarks             *string
	IncidentType        *IncidentType
	IncidentDescription *string
	SafetyScoreBefore   *float64
	SafetyScoreAfter    *float64
	ChangedAt           time.Time
	CreatedBy           *int64
	UpdatedBy           *int64
	IsDeleted           bool
}

type DriverChangeReason string

const (
	DriverReasonTripDispatched     DriverChangeReason = "Trip Dispatched"
	DriverReasonTripCompleted      DriverChangeReason = "Trip Completed"
	DriverReasonTripCancelled      DriverChangeReason = "Trip Cancelled"
	DriverReasonLicenseExpired     DriverChangeReason = "License Expired"
	DriverReasonSafetyViolation    DriverChangeReason = "Safety Violation"
	DriverReasonMedicalLeave       DriverChangeReason = "Medical Leave"
	DriverReasonDisciplinary       DriverChangeReason = "Disciplinary Action"
	DriverReasonManuallySet        DriverChangeReason = "Manually Set by Manager"
	DriverReasonReinstated         DriverChangeReason = "Reinstated"
	DriverReasonOther              DriverChangeReason = "Other"
)

func (r DriverChangeReason) String() string {
	return string(r)
}

type IncidentType string

const (
	IncidentAccident         IncidentType = "Accident"
	IncidentTrafficViolation IncidentType = "Traffic Violation"
	IncidentCargoDamage      IncidentType = "Cargo Damage"
	IncidentLateDelivery     IncidentType = "Late Delivery"
	IncidentUnauthorizedStop IncidentType = "Unauthorized Stop"
	IncidentOther            IncidentType = "Other"
)

func (t IncidentType) String() string {
	return string(t)
}

type DriverStatusChange struct {
	DriverID            int64
	TripID              *int64
	PreviousStatus      DriverStatusType
	NewStatus           DriverStatusType
	ChangedReason       DriverChangeReason
	Remarks             *string
	IncidentType        *IncidentType
	IncidentDescription *string
	SafetyScoreBefore   *float64
	SafetyScoreAfter    *float64
	ChangedAt           *time.Time
	ActorID             *int64
}

type DriverStatusLogModify struct {
	DriverID            int64
	TripID              *int64
	PreviousStatus      DriverStatusType
	NewStatus           DriverStatusType
	ChangedReason       DriverChangeReason
	Remarks             *string
	IncidentType        *IncidentType
	IncidentDescription *string
	SafetyScoreBefore   *float64
	SafetyScoreAfter    *float64
	ChangedAt           *time.Time
	CreatedBy           *int64
}

type DriverStatusLogFilter struct {
	DriverID      *int64
	TripID        *int64
	ChangedReason *DriverChangeReason
	IncidentType  *IncidentType
	FromDate      *time.Time
	ToDate        *time.Time
}
