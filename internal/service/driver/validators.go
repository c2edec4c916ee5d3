package driver

import (
	"strings"

	"fleetops/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return len(phone) > 1
}

func isValidLicenseType(t entities.VehicleType) bool {
	switch t {
	case entities.VehicleTruck, entities.VehicleVan, entities.VehicleBike:
		return true
	default:
		return false
	}
}

func isValidStatus(s entities.DriverStatusType) bool {
	switch s {
	case entities.DriverAvailable, entities.DriverOnTrip,
		entities.DriverOffDuty, entities.DriverSuspended:
		return true
	default:
		return false
	}
}

func isValidSafetyScore(score float64) bool {
	return score >= 0 && score <= 100
}
