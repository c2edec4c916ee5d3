package vehicle

import (
	"strings"

	"fleetops/internal/entities"
)

func isValidLicensePlate(plate string) bool {
	return strings.TrimSpace(plate) != ""
}

func isValidType(t entities.VehicleType) bool {
	switch t {
	case entities.VehicleTruck, entities.VehicleVan, entities.VehicleBike:
		return true
	default:
		return false
	}
}

func isValidStatus(s entities.VehicleStatusType) bool {
	switch s {
	case entities.VehicleAvailable, entities.VehicleOnTrip,
		entities.VehicleInShop, entities.VehicleOutOfService:
		return true
	default:
		return false
	}
}
