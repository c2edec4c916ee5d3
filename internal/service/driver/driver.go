package driver

import (
	"context"
	"fmt"
	"strings"

	"fleetops/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if driverModify.FullName == nil ||
		driverModify.Phone == nil ||
		driverModify.LicenseNumber == nil ||
		driverModify.LicenseType == nil ||
		driverModify.LicenseExpiryDate == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.FullName) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if strings.TrimSpace(*driverModify.LicenseNumber) == "" {
		return 0, ErrInvalidLicenseNumber
	}
	if !isValidLicenseType(*driverModify.LicenseType) {
		return 0, ErrInvalidLicenseType
	}
	if driverModify.Status != nil && !isValidStatus(*driverModify.Status) {
		return 0, ErrInvalidStatus
	}
	if driverModify.SafetyScore != nil && !isValidSafetyScore(*driverModify.SafetyScore) {
		return 0, ErrInvalidSafetyScore
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}

	if driverModify.FullName != nil && !isValidName(*driverModify.FullName) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.LicenseType != nil && !isValidLicenseType(*driverModify.LicenseType) {
		return nil, ErrInvalidLicenseType
	}
	if driverModify.Status != nil && !isValidStatus(*driverModify.Status) {
		return nil, ErrInvalidStatus
	}
	if driverModify.SafetyScore != nil && !isValidSafetyScore(*driverModify.SafetyScore) {
		return nil, ErrInvalidSafetyScore
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("update driver: %w", err)
	}
	return driver, nil
}

// UpdateDriverStatus — защищённая смена живого статуса; safetyScore,
// если задан, применяется той же записью.
func (s *Driver) UpdateDriverStatus(ctx context.Context, id int64, from, to entities.DriverStatusType, safetyScore *float64, actorID *int64) error {
	if !isValidStatus(from) || !isValidStatus(to) {
		return ErrInvalidStatus
	}
	if safetyScore != nil && !isValidSafetyScore(*safetyScore) {
		return ErrInvalidSafetyScore
	}

	err := s.repository.UpdateStatus(ctx, id, from, to, safetyScore, actorID)
	if err != nil {
		return fmt.Errorf("update driver status: %w", err)
	}
	return nil
}

func (s *Driver) IncrementTotalTrips(ctx context.Context, id int64) error {
	err := s.repository.IncrementTotalTrips(ctx, id)
	if err != nil {
		return fmt.Errorf("increment total trips: %w", err)
	}
	return nil
}

func (s *Driver) IncrementCompletedTrips(ctx context.Context, id int64) error {
	err := s.repository.IncrementCompletedTrips(ctx, id)
	if err != nil {
		return fmt.Errorf("increment completed trips: %w", err)
	}
	return nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context, includeDeleted bool) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}

	return drivers, nil
}

func (s *Driver) GetExpiredLicenseDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetExpiredLicenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("get expired license drivers: %w", err)
	}

	return drivers, nil
}

// InvalidateExpiredLicenses снимает флаг is_license_valid у водителей
// с истёкшим сроком прав. Возвращает число затронутых строк.
func (s *Driver) InvalidateExpiredLicenses(ctx context.Context) (int64, error) {
	affected, err := s.repository.InvalidateExpiredLicenses(ctx)
	if err != nil {
		return 0, fmt.Errorf("invalidate expired licenses: %w", err)
	}
	return affected, nil
}

func (s *Driver) DeleteDriver(ctx context.Context, id int64, actorID *int64) error {
	err := s.repository.SoftDelete(ctx, id, actorID)
	if err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}
	return nil
}
