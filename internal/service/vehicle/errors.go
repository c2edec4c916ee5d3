package vehicle

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidLicensePlate   = errors.New("invalid license plate")
	ErrInvalidType           = errors.New("invalid vehicle type")
	ErrInvalidStatus         = errors.New("invalid vehicle status")
	ErrInvalidMaxLoad        = errors.New("invalid max load")
	ErrInvalidOdometer       = errors.New("invalid odometer value")

	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrConflict        = errors.New("vehicle already exists")
	ErrStatusConflict  = errors.New("vehicle status conflict")
)
