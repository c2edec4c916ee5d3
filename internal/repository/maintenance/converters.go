package maintenance

import (
	"fleetops/internal/entities"
)

func ToDomain(m *MaintenanceLogDB) *entities.MaintenanceLog {
	if m == nil {
		return nil
	}

	return &entities.MaintenanceLog{
		ID:                   m.ID,
		MaintenanceCode:      m.MaintenanceCode,
		VehicleID:            m.VehicleID,
		ServiceType:          m.ServiceType,
		ServiceDescription:   m.ServiceDescription,
		ServiceProvider:      m.ServiceProvider,
		ServiceProviderPhone: m.ServiceProviderPhone,
		ServiceDate:          m.ServiceDate,
		ExpectedCompletion:   m.ExpectedCompletion,
		ActualCompletion:     m.ActualCompletion,
		LabourCost:           m.LabourCost,
		PartsCost:            m.PartsCost,
		OdometerAtService:    m.OdometerAtService,
		Status:               entities.MaintenanceStatusType(m.Status),
		CompletionNotes:      m.CompletionNotes,
		NextServiceDueKm:     m.NextServiceDueKm,
		NextServiceDueDate:   m.NextServiceDueDate,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
		CreatedBy:            m.CreatedBy,
		UpdatedBy:            m.UpdatedBy,
		IsDeleted:            m.IsDeleted,
	}
}

func ToDomainList(logsDB []MaintenanceLogDB) []entities.MaintenanceLog {
	if len(logsDB) == 0 {
		return []entities.MaintenanceLog{}
	}

	result := make([]entities.MaintenanceLog, len(logsDB))
	for i, logDB := range logsDB {
		result[i] = *ToDomain(&logDB)
	}
	return result
}
