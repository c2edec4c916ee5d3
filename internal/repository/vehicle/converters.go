package vehicle

import (
	"fleetops/internal/entities"
)

func ToDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}

	return &entities.Vehicle{
		ID:              v.ID,
		LicensePlate:    v.LicensePlate,
		Make:            v.Make,
		Model:           v.Model,
		Year:            v.Year,
		Type:            entities.VehicleType(v.Type),
		MaxLoadKg:       v.MaxLoadKg,
		FuelTankLiters:  v.FuelTankLiters,
		OdometerKm:      v.OdometerKm,
		AcquisitionCost: v.AcquisitionCost,
		Status:          entities.VehicleStatusType(v.Status),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
		CreatedBy:       v.CreatedBy,
		UpdatedBy:       v.UpdatedBy,
		IsDeleted:       v.IsDeleted,
	}
}

func FromDomainModify(vehicleModify *entities.VehicleModify) *VehicleModifyDB {
	if vehicleModify == nil {
		return nil
	}
	vehicleDB := &VehicleModifyDB{}

	if vehicleModify.ID != nil {
		vehicleDB.ID = vehicleModify.ID
	}
	if vehicleModify.LicensePlate != nil {
		vehicleDB.LicensePlate = vehicleModify.LicensePlate
	}
	if vehicleModify.Make != nil {
		vehicleDB.Make = vehicleModify.Make
	}
	if vehicleModify.Model != nil {
		vehicleDB.Model = vehicleModify.Model
	}
	if vehicleModify.Year != nil {
		vehicleDB.Year = vehicleModify.Year
	}
	if vehicleModify.Type != nil {
		vehicleType := vehicleModify.Type.String()
		vehicleDB.Type = &vehicleType
	}
	if vehicleModify.MaxLoadKg != nil {
		vehicleDB.MaxLoadKg = vehicleModify.MaxLoadKg
	}
	if vehicleModify.FuelTankLiters != nil {
		vehicleDB.FuelTankLiters = vehicleModify.FuelTankLiters
	}
	if vehicleModify.OdometerKm != nil {
		vehicleDB.OdometerKm = vehicleModify.OdometerKm
	}
	if vehicleModify.AcquisitionCost != nil {
		vehicleDB.AcquisitionCost = vehicleModify.AcquisitionCost
	}
	if vehicleModify.Status != nil {
		statusType := vehicleModify.Status.String()
		vehicleDB.Status = &statusType
	}
	if vehicleModify.UpdatedBy != nil {
		vehicleDB.UpdatedBy = vehicleModify.UpdatedBy
	}

	return vehicleDB
}

func ToDomainList(vehiclesDB []VehicleDB) []entities.Vehicle {
	if len(vehiclesDB) == 0 {
		return []entities.Vehicle{}
	}

	result := make([]entities.Vehicle, len(vehiclesDB))
	for i, vehicleDB := range vehiclesDB {
		result[i] = *ToDomain(&vehicleDB)
	}
	return result
}
