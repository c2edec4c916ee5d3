package fuellog

import (
	"fleetops/internal/entities"
)

func ToDomain(f *FuelLogDB) *entities.FuelLog {
	if f == nil {
		return nil
	}

	return &entities.FuelLog{
		ID:              f.ID,
		FuelLogCode:     f.FuelLogCode,
		VehicleID:       f.VehicleID,
		TripID:          f.TripID,
		DriverID:        f.DriverID,
		FuelType:        f.FuelType,
		LitersFilled:    f.LitersFilled,
		PricePerLiter:   f.PricePerLiter,
		TotalFuelCost:   f.TotalFuelCost,
		OdometerAtFuel:  f.OdometerAtFuel,
		FuelStationName: f.FuelStationName,
		FuelStationCity: f.FuelStationCity,
		ReceiptNumber:   f.ReceiptNumber,
		FueledAt:        f.FueledAt,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
		CreatedBy:       f.CreatedBy,
		UpdatedBy:       f.UpdatedBy,
		IsDeleted:       f.IsDeleted,
	}
}

func ToDomainList(logsDB []FuelLogDB) []entities.FuelLog {
	if len(logsDB) == 0 {
		return []entities.FuelLog{}
	}

	result := make([]entities.FuelLog, len(logsDB))
	for i, logDB := range logsDB {
		result[i] = *ToDomain(&logDB)
	}
	return result
}
