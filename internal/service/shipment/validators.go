package shipment

import "fleetops/internal/entities"

func isValidCargoWeight(weight float64) bool {
	return weight > 0
}

func isValidStatus(status entities.ShipmentStatusType) bool {
	switch status {
	case entities.ShipmentPending,
		entities.ShipmentAssigned,
		entities.ShipmentInTransit,
		entities.ShipmentDelivered,
		entities.ShipmentCancelled:
		return true
	default:
		return false
	}
}
