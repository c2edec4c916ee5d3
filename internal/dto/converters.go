package dto

import "fleetops/internal/entities"

func NewVehicle(e entities.Vehicle) Vehicle {
	return Vehicle{
		ID:              e.ID,
		LicensePlate:    e.LicensePlate,
		Make:            e.Make,
		Model:           e.Model,
		Year:            e.Year,
		Type:            e.Type.String(),
		MaxLoadKg:       e.MaxLoadKg,
		FuelTankLiters:  e.FuelTankLiters,
		OdometerKm:      e.OdometerKm,
		AcquisitionCost: e.AcquisitionCost,
		Status:          e.Status.String(),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func NewDriver(e entities.Driver) Driver {
	return Driver{
		ID:                e.ID,
		FullName:          e.FullName,
		Phone:             e.Phone,
		Email:             e.Email,
		LicenseNumber:     e.LicenseNumber,
		LicenseType:       e.LicenseType.String(),
		LicenseExpiryDate: e.LicenseExpiryDate,
		IsLicenseValid:    e.IsLicenseValid,
		TotalTrips:        e.TotalTrips,
		CompletedTrips:    e.CompletedTrips,
		SafetyScore:       e.SafetyScore,
		Status:            e.Status.String(),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func NewShipment(e entities.Shipment) Shipment {
	return Shipment{
		ID:                 e.ID,
		ShipmentCode:       e.ShipmentCode,
		Description:        e.Description,
		CargoWeightKg:      e.CargoWeightKg,
		CargoVolumeM3:      e.CargoVolumeM3,
		CargoType:          e.CargoType,
		OriginAddress:      e.OriginAddress,
		DestinationAddress: e.DestinationAddress,
		SenderName:         e.SenderName,
		SenderPhone:        e.SenderPhone,
		ReceiverName:       e.ReceiverName,
		ReceiverPhone:      e.ReceiverPhone,
		DeclaredValue:      e.DeclaredValue,
		DeliveryCharge:     e.DeliveryCharge,
		Status:             e.Status.String(),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func NewTrip(e entities.Trip) Trip {
	return Trip{
		ID:                 e.ID,
		TripCode:           e.TripCode,
		VehicleID:          e.VehicleID,
		DriverID:           e.DriverID,
		ShipmentID:         e.ShipmentID,
		OriginAddress:      e.OriginAddress,
		DestinationAddress: e.DestinationAddress,
		EstimatedDistKm:    e.EstimatedDistKm,
		ActualDistKm:       e.ActualDistKm,
		OdometerStartKm:    e.OdometerStartKm,
		OdometerEndKm:      e.OdometerEndKm,
		CargoWeightKg:      e.CargoWeightKg,
		ScheduledStart:     e.ScheduledStart,
		ScheduledEnd:       e.ScheduledEnd,
		ActualStart:        e.ActualStart,
		ActualEnd:          e.ActualEnd,
		TotalFuelCost:      e.TotalFuelCost,
		TotalExpenseCost:   e.TotalExpenseCost,
		Status:             e.Status.String(),
		CancelledReason:    e.CancelledReason,
		CancelledAt:        e.CancelledAt,
		CompletedAt:        e.CompletedAt,
		CompletionNotes:    e.CompletionNotes,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func NewMaintenanceLog(e entities.MaintenanceLog) MaintenanceLog {
	return MaintenanceLog{
		ID:                   e.ID,
		MaintenanceCode:      e.MaintenanceCode,
		VehicleID:            e.VehicleID,
		ServiceType:          e.ServiceType,
		ServiceDescription:   e.ServiceDescription,
		ServiceProvider:      e.ServiceProvider,
		ServiceProviderPhone: e.ServiceProviderPhone,
		ServiceDate:          e.ServiceDate,
		ExpectedCompletion:   e.ExpectedCompletion,
		ActualCompletion:     e.ActualCompletion,
		LabourCost:           e.LabourCost,
		PartsCost:            e.PartsCost,
		OdometerAtService:    e.OdometerAtService,
		Status:               e.Status.String(),
		CompletionNotes:      e.CompletionNotes,
		NextServiceDueKm:     e.NextServiceDueKm,
		NextServiceDueDate:   e.NextServiceDueDate,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func NewFuelLog(e entities.FuelLog) FuelLog {
	return FuelLog{
		ID:              e.ID,
		FuelLogCode:     e.FuelLogCode,
		VehicleID:       e.VehicleID,
		TripID:          e.TripID,
		DriverID:        e.DriverID,
		FuelType:        e.FuelType,
		LitersFilled:    e.LitersFilled,
		PricePerLiter:   e.PricePerLiter,
		TotalFuelCost:   e.TotalFuelCost,
		OdometerAtFuel:  e.OdometerAtFuel,
		FuelStationName: e.FuelStationName,
		FuelStationCity: e.FuelStationCity,
		ReceiptNumber:   e.ReceiptNumber,
		FueledAt:        e.FueledAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func NewExpense(e entities.Expense) Expense {
	return Expense{
		ID:            e.ID,
		TripID:        e.TripID,
		ExpenseType:   e.ExpenseType,
		Amount:        e.Amount,
		Description:   e.Description,
		ExpenseDate:   e.ExpenseDate,
		ReceiptNumber: e.ReceiptNumber,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func NewVehicleStatusLog(e entities.VehicleStatusLog) VehicleStatusLog {
	return VehicleStatusLog{
		ID:               e.ID,
		VehicleID:        e.VehicleID,
		TripID:           e.TripID,
		MaintenanceID:    e.MaintenanceID,
		PreviousStatus:   e.PreviousStatus.String(),
		NewStatus:        e.NewStatus.String(),
		ChangedReason:    e.ChangedReason.String(),
		Remarks:          e.Remarks,
		OdometerAtChange: e.OdometerAtChange,
		ChangedAt:        e.ChangedAt,
	}
}

func NewDriverStatusLog(e entities.DriverStatusLog) DriverStatusLog {
	var incidentType *string
	if e.IncidentType != nil {
		s := e.IncidentType.String()
		incidentType = &s
	}

	return DriverStatusLog{
		ID:                  e.ID,
		DriverID:            e.DriverID,
		TripID:              e.TripID,
		PreviousStatus:      e.PreviousStatus.String(),
		NewStatus:           e.NewStatus.String(),
		ChangedReason:       e.ChangedReason.String(),
		Remarks:             e.Remarks,
		IncidentType:        incidentType,
		IncidentDescription: e.IncidentDescription,
		SafetyScoreBefore:   e.SafetyScoreBefore,
		SafetyScoreAfter:    e.SafetyScoreAfter,
		ChangedAt:           e.ChangedAt,
	}
}
