package driver

import (
	"fleetops/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:                d.ID,
		FullName:          d.FullName,
		Phone:             d.Phone,
		Email:             d.Email,
		LicenseNumber:     d.LicenseNumber,
		LicenseType:       entities.VehicleType(d.LicenseType),
		LicenseExpiryDate: d.LicenseExpiryDate,
		IsLicenseValid:    d.IsLicenseValid,
		TotalTrips:        d.TotalTrips,
		CompletedTrips:    d.CompletedTrips,
		SafetyScore:       d.SafetyScore,
		Status:            entities.DriverStatusType(d.Status),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		CreatedBy:         d.CreatedBy,
		UpdatedBy:         d.UpdatedBy,
		IsDeleted:         d.IsDeleted,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{}

	if driverModify.ID != nil {
		driverDB.ID = driverModify.ID
	}
	if driverModify.FullName != nil {
		driverDB.FullName = driverModify.FullName
	}
	if driverModify.Phone != nil {
		driverDB.Phone = driverModify.Phone
	}
	if driverModify.Email != nil {
		driverDB.Email = driverModify.Email
	}
	if driverModify.LicenseNumber != nil {
		driverDB.LicenseNumber = driverModify.LicenseNumber
	}
	if driverModify.LicenseType != nil {
		licenseType := driverModify.LicenseType.String()
		driverDB.LicenseType = &licenseType
	}
	if driverModify.LicenseExpiryDate != nil {
		driverDB.LicenseExpiryDate = driverModify.LicenseExpiryDate
	}
	if driverModify.IsLicenseValid != nil {
		driverDB.IsLicenseValid = driverModify.IsLicenseValid
	}
	if driverModify.SafetyScore != nil {
		driverDB.SafetyScore = driverModify.SafetyScore
	}
	if driverModify.Status != nil {
		statusType := driverModify.Status.String()
		driverDB.Status = &statusType
	}
	if driverModify.UpdatedBy != nil {
		driverDB.UpdatedBy = driverModify.UpdatedBy
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
