package trip

import (
	"fleetops/internal/entities"
)

func ToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}

	return &entities.Trip{
		ID:                 t.ID,
		TripCode:           t.TripCode,
		VehicleID:          t.VehicleID,
		DriverID:           t.DriverID,
		ShipmentID:         t.ShipmentID,
		OriginAddress:      t.OriginAddress,
		DestinationAddress: t.DestinationAddress,
		EstimatedDistKm:    t.EstimatedDistKm,
		ActualDistKm:       t.ActualDistKm,
		OdometerStartKm:    t.OdometerStartKm,
		OdometerEndKm:      t.OdometerEndKm,
		CargoWeightKg:      t.CargoWeightKg,
		ScheduledStart:     t.ScheduledStart,
		ScheduledEnd:       t.ScheduledEnd,
		ActualStart:        t.ActualStart,
		ActualEnd:          t.ActualEnd,
		TotalFuelCost:      t.TotalFuelCost,
		TotalExpenseCost:   t.TotalExpenseCost,
		Status:             entities.TripStatusType(t.Status),
		CancelledReason:    t.CancelledReason,
		CancelledAt:        t.CancelledAt,
		CancelledBy:        t.CancelledBy,
		CompletedAt:        t.CompletedAt,
		CompletionNotes:    t.CompletionNotes,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
		CreatedBy:          t.CreatedBy,
		UpdatedBy:          t.UpdatedBy,
		IsDeleted:          t.IsDeleted,
	}
}

func FromDomainModify(tripModify *entities.TripModify) *TripModifyDB {
	if tripModify == nil {
		return nil
	}
	tripDB := &TripModifyDB{
		ID:                 tripModify.ID,
		TripCode:           tripModify.TripCode,
		VehicleID:          tripModify.VehicleID,
		DriverID:           tripModify.DriverID,
		ShipmentID:         tripModify.ShipmentID,
		OriginAddress:      tripModify.OriginAddress,
		DestinationAddress: tripModify.DestinationAddress,
		EstimatedDistKm:    tripModify.EstimatedDistKm,
		ActualDistKm:       tripModify.ActualDistKm,
		OdometerStartKm:    tripModify.OdometerStartKm,
		OdometerEndKm:      tripModify.OdometerEndKm,
		CargoWeightKg:      tripModify.CargoWeightKg,
		ScheduledStart:     tripModify.ScheduledStart,
		ScheduledEnd:       tripModify.ScheduledEnd,
		ActualStart:        tripModify.ActualStart,
		ActualEnd:          tripModify.ActualEnd,
		CancelledReason:    tripModify.CancelledReason,
		CancelledAt:        tripModify.CancelledAt,
		CancelledBy:        tripModify.CancelledBy,
		CompletedAt:        tripModify.CompletedAt,
		CompletionNotes:    tripModify.CompletionNotes,
		CreatedBy:          tripModify.CreatedBy,
		UpdatedBy:          tripModify.UpdatedBy,
	}

	if tripModify.Status != nil {
		statusType := tripModify.Status.String()
		tripDB.Status = &statusType
	}

	return tripDB
}

func ToDomainList(tripsDB []TripDB) []entities.Trip {
	if len(tripsDB) == 0 {
		return []entities.Trip{}
	}

	result := make([]entities.Trip, len(tripsDB))
	for i, tripDB := range tripsDB {
		result[i] = *ToDomain(&tripDB)
	}
	return result
}
