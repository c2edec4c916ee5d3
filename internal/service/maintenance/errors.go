package maintenance

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid maintenance status")

	ErrMaintenanceNotFound = errors.New("maintenance log not found")
	ErrConflict            = errors.New("maintenance log already exists")

	ErrMaintenanceTerminal = errors.New("maintenance log is in terminal status")
	ErrInvalidTransition   = errors.New("invalid maintenance status transition")
	ErrVehicleOutOfService = errors.New("vehicle is out of service")

	ErrCodeGeneration = errors.New("failed to generate unique maintenance code")
)
