package vehicle

import (
	"context"
	"fmt"

	"fleetops/internal/entities"
)

type Vehicle struct {
	repository Repository
}

func New(repository Repository) *Vehicle {
	return &Vehicle{
		repository: repository,
	}
}

func (s *Vehicle) CreateVehicle(ctx context.Context, vehicleModify entities.VehicleModify) (int64, error) {
	if vehicleModify.LicensePlate == nil ||
		vehicleModify.Type == nil ||
		vehicleModify.MaxLoadKg == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidLicensePlate(*vehicleModify.LicensePlate) {
		return 0, ErrInvalidLicensePlate
	}
	if !isValidType(*vehicleModify.Type) {
		return 0, ErrInvalidType
	}
	if *vehicleModify.MaxLoadKg <= 0 {
		return 0, ErrInvalidMaxLoad
	}
	if vehicleModify.Status != nil && !isValidStatus(*vehicleModify.Status) {
		return 0, ErrInvalidStatus
	}
	if vehicleModify.OdometerKm != nil && *vehicleModify.OdometerKm < 0 {
		return 0, ErrInvalidOdometer
	}

	id, err := s.repository.Create(ctx, vehicleModify)
	if err != nil {
		return 0, fmt.Errorf("create vehicle: %w", err)
	}

	return id, nil
}

func (s *Vehicle) UpdateVehicle(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error) {
	if vehicleModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}

	if vehicleModify.LicensePlate != nil && !isValidLicensePlate(*vehicleModify.LicensePlate) {
		return nil, ErrInvalidLicensePlate
	}
	if vehicleModify.Type != nil && !isValidType(*vehicleModify.Type) {
		return nil, ErrInvalidType
	}
	if vehicleModify.MaxLoadKg != nil && *vehicleModify.MaxLoadKg <= 0 {
		return nil, ErrInvalidMaxLoad
	}
	if vehicleModify.Status != nil && !isValidStatus(*vehicleModify.Status) {
		return nil, ErrInvalidStatus
	}
	if vehicleModify.OdometerKm != nil && *vehicleModify.OdometerKm < 0 {
		return nil, ErrInvalidOdometer
	}

	vehicle, err := s.repository.Update(ctx, vehicleModify)
	if err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return vehicle, nil
}

// UpdateVehicleStatus — защищённая смена живого статуса, используется
// координатором изнутри транзакции бизнес-события.
func (s *Vehicle) UpdateVehicleStatus(ctx context.Context, id int64, from, to entities.VehicleStatusType, actorID *int64) error {
	if !isValidStatus(from) || !isValidStatus(to) {
		return ErrInvalidStatus
	}

	err := s.repository.UpdateStatus(ctx, id, from, to, actorID)
	if err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}
	return nil
}

func (s *Vehicle) GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error) {
	vehicle, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	return vehicle, nil
}

func (s *Vehicle) GetVehicles(ctx context.Context, includeDeleted bool) ([]entities.Vehicle, error) {
	vehicles, err := s.repository.GetAll(ctx, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	return vehicles, nil
}

func (s *Vehicle) DeleteVehicle(ctx context.Context, id int64, actorID *int64) error {
	err := s.repository.SoftDelete(ctx, id, actorID)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}
