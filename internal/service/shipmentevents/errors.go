package shipmentevents

import "errors"

var (
	ErrMissingRequiredFields = errors.New("shipment id and status are required")
	ErrUndefinedStatus       = errors.New("undefined shipment status")
)
