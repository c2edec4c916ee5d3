package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCargoWeight    = errors.New("invalid cargo weight")
	ErrInvalidStatus         = errors.New("invalid shipment status")

	ErrShipmentNotFound = errors.New("shipment not found")
	ErrConflict         = errors.New("shipment already exists")
	ErrStatusConflict   = errors.New("shipment status conflict")
)
