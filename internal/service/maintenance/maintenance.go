package maintenance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetops/internal/entities"
	"fleetops/internal/pkg/factory/entity_code"
)

type Maintenance struct {
	repository     Repository
	vehicleService VehicleService
	vehicleLogger  VehicleLogger
	codeFactory    CodeFactory
	txManager      TxManager
}

func New(
	repository Repository,
	vehicleService VehicleService,
	vehicleLogger VehicleLogger,
	codeFactory CodeFactory,
	txManager TxManager,
) *Maintenance {
	return &Maintenance{
		repository:     repository,
		vehicleService: vehicleService,
		vehicleLogger:  vehicleLogger,
		codeFactory:    codeFactory,
		txManager:      txManager,
	}
}

// StartMaintenance создаёт запись обслуживания в статусе Scheduled и
// ставит ТС в In Shop, если оно ещё не там. ТС в Out of Service
// на обслуживание не принимается.
func (m *Maintenance) StartMaintenance(ctx context.Context, create entities.MaintenanceCreate, actorID *int64) (*entities.MaintenanceLog, error) {
	if create.VehicleID <= 0 ||
		strings.TrimSpace(create.ServiceType) == "" ||
		create.ServiceDate.IsZero() ||
		create.ExpectedCompletion.IsZero() {
		return nil, ErrMissingRequiredFields
	}

	var created *entities.MaintenanceLog
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		vehicle, err := m.vehicleService.GetVehicle(ctx, create.VehicleID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}
		if vehicle.Status == entities.VehicleOutOfService {
			return ErrVehicleOutOfService
		}

		code, err := m.uniqueMaintenanceCode(ctx)
		if err != nil {
			return err
		}

		created, err = m.repository.Create(ctx, code, create, actorID)
		if err != nil {
			return fmt.Errorf("create maintenance log: %w", err)
		}

		if vehicle.Status != entities.VehicleInShop {
			err = m.vehicleService.UpdateVehicleStatus(ctx,
				vehicle.ID, vehicle.Status, entities.VehicleInShop, actorID)
			if err != nil {
				return fmt.Errorf("update vehicle status: %w", err)
			}

			remarks := fmt.Sprintf("Maintenance %s scheduled", code)
			_, err = m.vehicleLogger.CreateVehicleLog(ctx, entities.VehicleStatusLogModify{
				VehicleID:        vehicle.ID,
				MaintenanceID:    &created.ID,
				PreviousStatus:   vehicle.Status,
				NewStatus:        entities.VehicleInShop,
				ChangedReason:    entities.VehicleReasonMaintenanceStarted,
				Remarks:          &remarks,
				OdometerAtChange: create.OdometerAtService,
				CreatedBy:        actorID,
			})
			if err != nil {
				return fmt.Errorf("log vehicle status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// TransitionMaintenance проводит переход по таблице допустимых статусов.
// Терминальный переход возвращает ТС из In Shop в Available.
func (m *Maintenance) TransitionMaintenance(ctx context.Context, id int64, newStatus entities.MaintenanceStatusType, completion entities.MaintenanceCompletion, actorID *int64) (*entities.MaintenanceLog, error) {
	if !isValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.MaintenanceLog
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		log, err := m.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get maintenance log: %w", err)
		}
		if log.Status.IsTerminal() {
			return fmt.Errorf("%w: status %s", ErrMaintenanceTerminal, log.Status)
		}
		if !canTransition(log.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, log.Status, newStatus)
		}

		if newStatus == entities.MaintenanceCompleted && completion.ActualCompletion == nil {
			now := time.Now().UTC()
			completion.ActualCompletion = &now
		}

		err = m.repository.UpdateStatus(ctx, id, log.Status, newStatus, completion, actorID)
		if err != nil {
			return fmt.Errorf("update maintenance status: %w", err)
		}

		if newStatus.IsTerminal() {
			err = m.releaseVehicle(ctx, log, newStatus, actorID)
			if err != nil {
				return err
			}
		}

		updated, err = m.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("reload maintenance log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (m *Maintenance) GetMaintenance(ctx context.Context, id int64) (*entities.MaintenanceLog, error) {
	log, err := m.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get maintenance log: %w", err)
	}
	return log, nil
}

func (m *Maintenance) GetMaintenances(ctx context.Context, filter entities.MaintenanceFilter, page entities.Page) ([]entities.MaintenanceLog, int64, error) {
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return nil, 0, ErrInvalidStatus
	}

	logs, total, err := m.repository.GetAll(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("get maintenance logs: %w", err)
	}
	return logs, total, nil
}

// UpdateMaintenance правит незакрытую запись. Статус этим путём
// не меняется, только TransitionMaintenance.
func (m *Maintenance) UpdateMaintenance(ctx context.Context, maintenanceModify entities.MaintenanceModify) (*entities.MaintenanceLog, error) {
	if maintenanceModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.MaintenanceLog
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		log, err := m.repository.GetByID(ctx, *maintenanceModify.ID)
		if err != nil {
			return fmt.Errorf("get maintenance log: %w", err)
		}
		if log.Status.IsTerminal() {
			return fmt.Errorf("%w: status %s", ErrMaintenanceTerminal, log.Status)
		}

		updated, err = m.repository.Update(ctx, maintenanceModify)
		if err != nil {
			return fmt.Errorf("update maintenance log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (m *Maintenance) DeleteMaintenance(ctx context.Context, id int64, actorID *int64) error {
	err := m.repository.SoftDelete(ctx, id, actorID)
	if err != nil {
		return fmt.Errorf("delete maintenance log: %w", err)
	}
	return nil
}

func (m *Maintenance) uniqueMaintenanceCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < entity_code.MaxAttempts; attempt++ {
		code := m.codeFactory.NewCode(entity_code.PrefixMaintenance)
		exists, err := m.repository.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check maintenance code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeGeneration
}

func (m *Maintenance) releaseVehicle(ctx context.Context, log *entities.MaintenanceLog, newStatus entities.MaintenanceStatusType, actorID *int64) error {
	vehicle, err := m.vehicleService.GetVehicle(ctx, log.VehicleID)
	if err != nil {
		return fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle.Status != entities.VehicleInShop {
		return nil
	}

	err = m.vehicleService.UpdateVehicleStatus(ctx,
		vehicle.ID, entities.VehicleInShop, entities.VehicleAvailable, actorID)
	if err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}

	reason := entities.VehicleReasonMaintenanceCompleted
	if newStatus == entities.MaintenanceCancelled {
		reason = entities.VehicleReasonMaintenanceCancelled
	}

	remarks := fmt.Sprintf("Maintenance %s %s", log.MaintenanceCode, strings.ToLower(newStatus.String()))
	_, err = m.vehicleLogger.CreateVehicleLog(ctx, entities.VehicleStatusLogModify{
		VehicleID:        vehicle.ID,
		MaintenanceID:    &log.ID,
		PreviousStatus:   entities.VehicleInShop,
		NewStatus:        entities.VehicleAvailable,
		ChangedReason:    reason,
		Remarks:          &remarks,
		OdometerAtChange: vehicle.OdometerKm,
		CreatedBy:        actorID,
	})
	if err != nil {
		return fmt.Errorf("log vehicle status: %w", err)
	}
	return nil
}
