package statuslog

import (
	"context"
	"fmt"

	"fleetops/internal/entities"
)

type StatusLog struct {
	repository     Repository
	vehicleService VehicleService
	driverService  DriverService
	txManager      TxManager
}

func New(
	repository Repository,
	vehicleService VehicleService,
	driverService DriverService,
	txManager TxManager,
) *StatusLog {
	return &StatusLog{
		repository:     repository,
		vehicleService: vehicleService,
		driverService:  driverService,
		txManager:      txManager,
	}
}

// RecordVehicleStatusChange регистрирует ручной переход статуса ТС.
// Заявленный previous status обязан совпасть с живым статусом,
// иначе конфликт с обоими значениями в сообщении. Смена живого
// статуса и строка аудита пишутся одной транзакцией.
func (s *StatusLog) RecordVehicleStatusChange(ctx context.Context, change entities.VehicleStatusChange) (*entities.VehicleStatusLog, error) {
	if change.VehicleID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidVehicleStatus(change.PreviousStatus) || !isValidVehicleStatus(change.NewStatus) {
		return nil, ErrInvalidStatus
	}
	if !isValidVehicleReason(change.ChangedReason) {
		return nil, ErrInvalidReason
	}

	var created *entities.VehicleStatusLog
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		vehicle, err := s.vehicleService.GetVehicle(ctx, change.VehicleID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}
		if vehicle.Status != change.PreviousStatus {
			return fmt.Errorf("%w: vehicle status is %q, supplied previous status %q",
				ErrStatusConflict, vehicle.Status, change.PreviousStatus)
		}

		if change.TripID != nil {
			exists, err := s.repository.TripExists(ctx, *change.TripID)
			if err != nil {
				return fmt.Errorf("check trip: %w", err)
			}
			if !exists {
				return ErrTripNotFound
			}
		}
		if change.MaintenanceID != nil {
			exists, err := s.repository.MaintenanceExists(ctx, *change.MaintenanceID)
			if err != nil {
				return fmt.Errorf("check maintenance log: %w", err)
			}
			if !exists {
				return ErrMaintenanceNotFound
			}
		}

		err = s.vehicleService.UpdateVehicleStatus(ctx,
			vehicle.ID, vehicle.Status, change.NewStatus, change.ActorID)
		if err != nil {
			return fmt.Errorf("update vehicle status: %w", err)
		}

		odometer := change.OdometerAtChange
		if odometer == 0 {
			odometer = vehicle.OdometerKm
		}

		id, err := s.repository.CreateVehicleLog(ctx, entities.VehicleStatusLogModify{
			VehicleID:        change.VehicleID,
			TripID:           change.TripID,
			MaintenanceID:    change.MaintenanceID,
			PreviousStatus:   change.PreviousStatus,
			NewStatus:        change.NewStatus,
			ChangedReason:    change.ChangedReason,
			Remarks:          change.Remarks,
			OdometerAtChange: odometer,
			ChangedAt:        change.ChangedAt,
			CreatedBy:        change.ActorID,
		})
		if err != nil {
			return fmt.Errorf("create vehicle status log: %w", err)
		}

		created, err = s.repository.GetVehicleLogByID(ctx, id)
		if err != nil {
			return fmt.Errorf("reload vehicle status log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordDriverStatusChange — водительский вариант гейта. Если задан
// safety_score_after, живой рейтинг обновляется той же транзакцией;
// safety_score_before по умолчанию берётся из живой строки.
func (s *StatusLog) RecordDriverStatusChange(ctx context.Context, change entities.DriverStatusChange) (*entities.DriverStatusLog, error) {
	if change.DriverID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidDriverStatus(change.PreviousStatus) || !isValidDriverStatus(change.NewStatus) {
		return nil, ErrInvalidStatus
	}
	if !isValidDriverReason(change.ChangedReason) {
		return nil, ErrInvalidReason
	}
	if change.IncidentType != nil && !isValidIncidentType(*change.IncidentType) {
		return nil, ErrInvalidIncidentType
	}

	var created *entities.DriverStatusLog
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := s.driverService.GetDriver(ctx, change.DriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if driver.Status != change.PreviousStatus {
			return fmt.Errorf("%w: driver status is %q, supplied previous status %q",
				ErrStatusConflict, driver.Status, change.PreviousStatus)
		}

		if change.TripID != nil {
			exists, err := s.repository.TripExists(ctx, *change.TripID)
			if err != nil {
				return fmt.Errorf("check trip: %w", err)
			}
			if !exists {
				return ErrTripNotFound
			}
		}

		err = s.driverService.UpdateDriverStatus(ctx,
			driver.ID, driver.Status, change.NewStatus, change.SafetyScoreAfter, change.ActorID)
		if err != nil {
			return fmt.Errorf("update driver status: %w", err)
		}

		scoreBefore := change.SafetyScoreBefore
		if scoreBefore == nil {
			scoreBefore = &driver.SafetyScore
		}

		id, err := s.repository.CreateDriverLog(ctx, entities.DriverStatusLogModify{
			DriverID:            change.DriverID,
			TripID:              change.TripID,
			PreviousStatus:      change.PreviousStatus,
			NewStatus:           change.NewStatus,
			ChangedReason:       change.ChangedReason,
			Remarks:             change.Remarks,
			IncidentType:        change.IncidentType,
			IncidentDescription: change.IncidentDescription,
			SafetyScoreBefore:   scoreBefore,
			SafetyScoreAfter:    change.SafetyScoreAfter,
			ChangedAt:           change.ChangedAt,
			CreatedBy:           change.ActorID,
		})
		if err != nil {
			return fmt.Errorf("create driver status log: %w", err)
		}

		created, err = s.repository.GetDriverLogByID(ctx, id)
		if err != nil {
			return fmt.Errorf("reload driver status log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *StatusLog) GetVehicleLog(ctx context.Context, id int64) (*entities.VehicleStatusLog, error) {
	log, err := s.repository.GetVehicleLogByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle status log: %w", err)
	}
	return log, nil
}

func (s *StatusLog) GetVehicleLogs(ctx context.Context, filter entities.VehicleStatusLogFilter, page entities.Page) ([]entities.VehicleStatusLog, int64, error) {
	if filter.ChangedReason != nil && !isValidVehicleReason(*filter.ChangedReason) {
		return nil, 0, ErrInvalidReason
	}

	logs, total, err := s.repository.GetVehicleLogs(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("get vehicle status logs: %w", err)
	}
	return logs, total, nil
}

// GetVehicleHistory — история переходов одного ТС, новые сверху.
func (s *StatusLog) GetVehicleHistory(ctx context.Context, vehicleID int64, page entities.Page) ([]entities.VehicleStatusLog, int64, error) {
	filter := entities.VehicleStatusLogFilter{VehicleID: &vehicleID}
	logs, total, err := s.repository.GetVehicleLogs(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("get vehicle history: %w", err)
	}
	return logs, total, nil
}

// DeleteVehicleLog скрывает строку аудита. Живой статус ТС не трогается.
func (s *StatusLog) DeleteVehicleLog(ctx context.Context, id int64, actorID *int64) error {
	err := s.repository.SoftDeleteVehicleLog(ctx, id, actorID)
	if err != nil {
		return fmt.Errorf("delete vehicle status log: %w", err)
	}
	return nil
}

func (s *StatusLog) GetDriverLog(ctx context.Context, id int64) (*entities.DriverStatusLog, error) {
	log, err := s.repository.GetDriverLogByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver status log: %w", err)
	}
	return log, nil
}

func (s *StatusLog) GetDriverLogs(ctx context.Context, filter entities.DriverStatusLogFilter, page entities.Page) ([]entities.DriverStatusLog, int64, error) {
	if filter.ChangedReason != nil && !isValidDriverReason(*filter.ChangedReason) {
		return nil, 0, ErrInvalidReason
	}
	if filter.IncidentType != nil && !isValidIncidentType(*filter.IncidentType) {
		return nil, 0, ErrInvalidIncidentType
	}

	logs, total, err := s.repository.GetDriverLogs(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("get driver status logs: %w", err)
	}
	return logs, total, nil
}

func (s *StatusLog) GetDriverHistory(ctx context.Context, driverID int64, page entities.Page) ([]entities.DriverStatusLog, int64, error) {
	filter := entities.DriverStatusLogFilter{DriverID: &driverID}
	logs, total, err := s.repository.GetDriverLogs(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("get driver history: %w", err)
	}
	return logs, total, nil
}

func (s *StatusLog) DeleteDriverLog(ctx context.Context, id int64, actorID *int64) error {
	err := s.repository.SoftDeleteDriverLog(ctx, id, actorID)
	if err != nil {
		return fmt.Errorf("delete driver status log: %w", err)
	}
	return nil
}
