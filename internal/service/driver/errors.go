package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid full name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidLicenseNumber  = errors.New("invalid license number")
	ErrInvalidLicenseType    = errors.New("invalid license type")
	ErrInvalidStatus         = errors.New("invalid driver status")
	ErrInvalidSafetyScore    = errors.New("invalid safety score")

	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("driver already exists")
	ErrStatusConflict = errors.New("driver status conflict")
)
