package fuellog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidLiters         = errors.New("invalid liters filled")
	ErrInvalidPrice          = errors.New("invalid price per liter")

	ErrFuelLogNotFound = errors.New("fuel log not found")
	ErrConflict        = errors.New("fuel log already exists")

	ErrCodeGeneration = errors.New("failed to generate unique fuel log code")
)
