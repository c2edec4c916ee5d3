package fuellog

import (
	"context"
	"fmt"
	"strings"

	"fleetops/internal/entities"
	"fleetops/internal/pkg/factory/entity_code"
)

type FuelLog struct {
	repository  Repository
	tripService TripService
	codeFactory CodeFactory
	txManager   TxManager
}

func New(
	repository Repository,
	tripService TripService,
	codeFactory CodeFactory,
	txManager TxManager,
) *FuelLog {
	return &FuelLog{
		repository:  repository,
		tripService: tripService,
		codeFactory: codeFactory,
		txManager:   txManager,
	}
}

// CreateFuelLog пишет топливную запись и в той же транзакции
// пересчитывает total_fuel_cost рейса.
func (f *FuelLog) CreateFuelLog(ctx context.Context, create entities.FuelLogCreate, actorID *int64) (*entities.FuelLog, error) {
	if create.VehicleID <= 0 || create.TripID <= 0 || create.DriverID <= 0 ||
		strings.TrimSpace(create.FuelType) == "" || create.FueledAt.IsZero() {
		return nil, ErrMissingRequiredFields
	}
	if create.LitersFilled <= 0 {
		return nil, ErrInvalidLiters
	}
	if create.PricePerLiter <= 0 {
		return nil, ErrInvalidPrice
	}

	var created *entities.FuelLog
	err := f.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := f.tripService.GetTrip(ctx, create.TripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}

		code, err := f.uniqueFuelLogCode(ctx)
		if err != nil {
			return err
		}

		created, err = f.repository.Create(ctx, code, create, actorID)
		if err != nil {
			return fmt.Errorf("create fuel log: %w", err)
		}

		err = f.tripService.RecomputeFuelCost(ctx, create.TripID)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateFuelLog правит запись; пересчёт запускается только если
// менялись литры или цена.
func (f *FuelLog) UpdateFuelLog(ctx context.Context, fuelLogModify entities.FuelLogModify) (*entities.FuelLog, error) {
	if fuelLogModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if fuelLogModify.LitersFilled != nil && *fuelLogModify.LitersFilled <= 0 {
		return nil, ErrInvalidLiters
	}
	if fuelLogModify.PricePerLiter != nil && *fuelLogModify.PricePerLiter <= 0 {
		return nil, ErrInvalidPrice
	}

	var updated *entities.FuelLog
	err := f.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = f.repository.Update(ctx, fuelLogModify)
		if err != nil {
			return fmt.Errorf("update fuel log: %w", err)
		}

		if fuelLogModify.PricingChanged() {
			err = f.tripService.RecomputeFuelCost(ctx, updated.TripID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (f *FuelLog) GetFuelLog(ctx context.Context, id int64) (*entities.FuelLog, error) {
	log, err := f.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get fuel log: %w", err)
	}
	return log, nil
}

func (f *FuelLog) GetFuelLogs(ctx context.Context, filter entities.FuelLogFilter, page entities.Page) ([]entities.FuelLog, int64, error) {
	logs, total, err := f.repository.GetAll(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("get fuel logs: %w", err)
	}
	return logs, total, nil
}

// DeleteFuelLog скрывает запись и убирает её вклад из агрегата рейса.
func (f *FuelLog) DeleteFuelLog(ctx context.Context, id int64, actorID *int64) error {
	return f.txManager.Do(ctx, func(ctx context.Context) error {
		log, err := f.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get fuel log: %w", err)
		}

		err = f.repository.SoftDelete(ctx, id, actorID)
		if err != nil {
			return fmt.Errorf("delete fuel log: %w", err)
		}

		err = f.tripService.RecomputeFuelCost(ctx, log.TripID)
		if err != nil {
			return err
		}
		return nil
	})
}

func (f *FuelLog) uniqueFuelLogCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < entity_code.MaxAttempts; attempt++ {
		code := f.codeFactory.NewCode(entity_code.PrefixFuelLog)
		exists, err := f.repository.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check fuel log code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeGeneration
}
