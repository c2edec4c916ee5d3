package trip

import "fleetops/internal/entities"

func isValidStatus(status entities.TripStatusType) bool {
	switch status {
	case entities.TripDraft,
		entities.TripDispatched,
		entities.TripOnTrip,
		entities.TripCompleted,
		entities.TripCancelled:
		return true
	default:
		return false
	}
}

func isTerminalStatus(status entities.TripStatusType) bool {
	return status == entities.TripCompleted || status == entities.TripCancelled
}
