package maintenance

import "fleetops/internal/entities"

// Разрешённые переходы между статусами обслуживания.
// Терминальные статусы отсутствуют в карте и переходов не допускают.
var allowedTransitions = map[entities.MaintenanceStatusType][]entities.MaintenanceStatusType{
	entities.MaintenanceScheduled:  {entities.MaintenanceInProgress, entities.MaintenanceCancelled},
	entities.MaintenanceInProgress: {entities.MaintenanceCompleted, entities.MaintenanceCancelled},
}

func isValidStatus(status entities.MaintenanceStatusType) bool {
	switch status {
	case entities.MaintenanceScheduled,
		entities.MaintenanceInProgress,
		entities.MaintenanceCompleted,
		entities.MaintenanceCancelled:
		return true
	default:
		return false
	}
}

func canTransition(from, to entities.MaintenanceStatusType) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
