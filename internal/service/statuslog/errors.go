package statuslog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid status value")
	ErrInvalidReason         = errors.New("invalid change reason")
	ErrInvalidIncidentType   = errors.New("invalid incident type")

	// ErrStatusConflict: заявленный previous status разошёлся с живым
	// статусом сущности. Оборачивается обоими значениями.
	ErrStatusConflict = errors.New("status conflict")

	ErrVehicleLogNotFound  = errors.New("vehicle status log not found")
	ErrDriverLogNotFound   = errors.New("driver status log not found")
	ErrTripNotFound        = errors.New("trip not found")
	ErrMaintenanceNotFound = errors.New("maintenance log not found")
)
