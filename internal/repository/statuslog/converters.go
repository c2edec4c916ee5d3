package statuslog

import (
	"fleetops/internal/entities"
)

func VehicleLogToDomain(l *VehicleStatusLogDB) *entities.VehicleStatusLog {
	if l == nil {
		return nil
	}

	return &entities.VehicleStatusLog{
		ID:               l.ID,
		VehicleID:        l.VehicleID,
		TripID:           l.TripID,
		MaintenanceID:    l.MaintenanceID,
		PreviousStatus:   entities.VehicleStatusType(l.PreviousStatus),
		NewStatus:        entities.VehicleStatusType(l.NewStatus),
		ChangedReason:    entities.VehicleChangeReason(l.ChangedReason),
		Remarks:          l.Remarks,
		OdometerAtChange: l.OdometerAtChange,
		ChangedAt:        l.ChangedAt,
		CreatedBy:        l.CreatedBy,
		UpdatedBy:        l.UpdatedBy,
		IsDeleted:        l.IsDeleted,
	}
}

func VehicleLogToDomainList(logsDB []VehicleStatusLogDB) []entities.VehicleStatusLog {
	if len(logsDB) == 0 {
		return []entities.VehicleStatusLog{}
	}

	result := make([]entities.VehicleStatusLog, len(logsDB))
	for i, logDB := range logsDB {
		result[i] = *VehicleLogToDomain(&logDB)
	}
	return result
}

func DriverLogToDomain(l *DriverStatusLogDB) *entities.DriverStatusLog {
	if l == nil {
		return nil
	}

	log := &entities.DriverStatusLog{
		ID:                  l.ID,
		DriverID:            l.DriverID,
		TripID:              l.TripID,
		PreviousStatus:      entities.DriverStatusType(l.PreviousStatus),
		NewStatus:           entities.DriverStatusType(l.NewStatus),
		ChangedReason:       entities.DriverChangeReason(l.ChangedReason),
		Remarks:             l.Remarks,
		IncidentDescription: l.IncidentDescription,
		SafetyScoreBefore:   l.SafetyScoreBefore,
		SafetyScoreAfter:    l.SafetyScoreAfter,
		ChangedAt:           l.ChangedAt,
		CreatedBy:           l.CreatedBy,
		UpdatedBy:           l.UpdatedBy,
		IsDeleted:           l.IsDeleted,
	}

	if l.IncidentType != nil {
		incidentType := entities.IncidentType(*l.IncidentType)
		log.IncidentType = &incidentType
	}

	return log
}

func DriverLogToDomainList(logsDB []DriverStatusLogDB) []entities.DriverStatusLog {
	if len(logsDB) == 0 {
		return []entities.DriverStatusLog{}
	}

	result := make([]entities.DriverStatusLog, len(logsDB))
	for i, logDB := range logsDB {
		result[i] = *DriverLogToDomain(&logDB)
	}
	return result
}
