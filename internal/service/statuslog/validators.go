package statuslog

import "fleetops/internal/entities"

func isValidVehicleStatus(status entities.VehicleStatusType) bool {
	switch status {
	case entities.VehicleAvailable,
		entities.VehicleOnTrip,
		entities.VehicleInShop,
		entities.VehicleOutOfService:
		return true
	default:
		return false
	}
}

func isValidDriverStatus(status entities.DriverStatusType) bool {
	switch status {
	case entities.DriverAvailable,
		entities.DriverOnTrip,
		entities.DriverOffDuty,
		entities.DriverSuspended:
		return true
	default:
		return false
	}
}

func isValidVehicleReason(reason entities.VehicleChangeReason) bool {
	switch reason {
	case entities.VehicleReasonTripDispatched,
		entities.VehicleReasonTripCompleted,
		entities.VehicleReasonTripCancelled,
		entities.VehicleReasonMaintenanceStarted,
		entities.VehicleReasonMaintenanceCompleted,
		entities.VehicleReasonMaintenanceCancelled,
		entities.VehicleReasonManuallyRetired,
		entities.VehicleReasonManuallyReinstated,
		entities.VehicleReasonOther:
		return true
	default:
		return false
	}
}

func isValidDriverReason(reason entities.DriverChangeReason) bool {
	switch reason {
	case entities.DriverReasonTripDispatched,
		entities.DriverReasonTripCompleted,
		entities.DriverReasonTripCancelled,
		entities.DriverReasonLicenseExpired,
		entities.DriverReasonSafetyViolation,
		entities.DriverReasonMedicalLeave,
		entities.DriverReasonDisciplinary,
		entities.DriverReasonManuallySet,
		entities.DriverReasonReinstated,
		entities.DriverReasonOther:
		return true
	default:
		return false
	}
}

func isValidIncidentType(incidentType entities.IncidentType) bool {
	switch incidentType {
	case entities.IncidentAccident,
		entities.IncidentTrafficViolation,
		entities.IncidentCargoDamage,
		entities.IncidentLateDelivery,
		entities.IncidentUnauthorizedStop,
		entities.IncidentOther:
		return true
	default:
		return false
	}
}
