package trip

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid trip status")
	ErrInvalidOdometer       = errors.New("invalid odometer value")

	ErrTripNotFound = errors.New("trip not found")
	ErrConflict     = errors.New("trip already exists")

	ErrTripNotDraft  = errors.New("trip is not in draft status")
	ErrTripNotActive = errors.New("trip is not active")
	ErrTripFinished  = errors.New("trip is already finished")

	ErrCargoTooHeavy       = errors.New("cargo weight exceeds vehicle max load")
	ErrVehicleNotAvailable = errors.New("vehicle is not available")
	ErrDriverNotEligible   = errors.New("driver is not eligible for assignment")

	ErrCodeGeneration = errors.New("failed to generate unique trip code")
)
