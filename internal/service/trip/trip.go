package trip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetops/internal/entities"
	"fleetops/internal/pkg/factory/entity_code"
)

type Trip struct {
	repository      Repository
	vehicleService  VehicleService
	driverService   DriverService
	shipmentService ShipmentService
	vehicleLogger   VehicleLogger
	driverLogger    DriverLogger
	codeFactory     CodeFactory
	txManager       TxManager
}

func New(
	repository Repository,
	vehicleService VehicleService,
	driverService DriverService,
	shipmentService ShipmentService,
	vehicleLogger VehicleLogger,
	driverLogger DriverLogger,
	codeFactory CodeFactory,
	txManager TxManager,
) *Trip {
	return &Trip{
		repository:      repository,
		vehicleService:  vehicleService,
		driverService:   driverService,
		shipmentService: shipmentService,
		vehicleLogger:   vehicleLogger,
		driverLogger:    driverLogger,
		codeFactory:     codeFactory,
		txManager:       txManager,
	}
}

// CreateTrip проводит назначение рейса: проверки идут строго по порядку,
// первая провалившаяся прерывает операцию. Проверки по водителю
// агрегируются в одно сообщение.
func (t *Trip) CreateTrip(ctx context.Context, create entities.TripCreate, actorID *int64) (*entities.Trip, error) {
	if create.VehicleID <= 0 || create.DriverID <= 0 || create.ShipmentID <= 0 ||
		strings.TrimSpace(create.OriginAddress) == "" ||
		strings.TrimSpace(create.DestinationAddress) == "" {
		return nil, ErrMissingRequiredFields
	}

	var createdTrip *entities.Trip
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := t.shipmentService.GetShipment(ctx, create.ShipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		vehicle, err := t.vehicleService.GetVehicle(ctx, create.VehicleID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}

		driver, err := t.driverService.GetDriver(ctx, create.DriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}

		cargoWeight := shipment.CargoWeightKg
		if create.CargoWeightKg != nil {
			cargoWeight = *create.CargoWeightKg
		}
		if cargoWeight <= 0 {
			return ErrMissingRequiredFields
		}
		if cargoWeight > vehicle.MaxLoadKg {
			return fmt.Errorf("%w: cargo %.2f kg, max load %.2f kg",
				ErrCargoTooHeavy, cargoWeight, vehicle.MaxLoadKg)
		}

		if vehicle.Status != entities.VehicleAvailable {
			return fmt.Errorf("%w: status %s", ErrVehicleNotAvailable, vehicle.Status)
		}

		if reasons := driverEligibilityFailures(driver, vehicle.Type); len(reasons) > 0 {
			return fmt.Errorf("%w: %s", ErrDriverNotEligible, strings.Join(reasons, "; "))
		}

		code, err := t.uniqueTripCode(ctx)
		if err != nil {
			return err
		}

		draftStatus := entities.TripDraft
		tripModify := entities.TripModify{
			TripCode:           &code,
			VehicleID:          &create.VehicleID,
			DriverID:           &create.DriverID,
			ShipmentID:         &create.ShipmentID,
			OriginAddress:      &create.OriginAddress,
			DestinationAddress: &create.DestinationAddress,
			EstimatedDistKm:    create.EstimatedDistKm,
			OdometerStartKm:    &vehicle.OdometerKm,
			CargoWeightKg:      &cargoWeight,
			ScheduledStart:     create.ScheduledStart,
			ScheduledEnd:       create.ScheduledEnd,
			Status:             &draftStatus,
			CreatedBy:          actorID,
		}

		createdTrip, err = t.repository.Create(ctx, tripModify)
		if err != nil {
			return fmt.Errorf("create trip: %w", err)
		}

		err = t.shipmentService.UpdateShipmentStatus(ctx,
			shipment.ID, shipment.Status, entities.ShipmentAssigned, actorID)
		if err != nil {
			return fmt.Errorf("assign shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return createdTrip, nil
}

// DispatchTrip переводит рейс Draft -> Dispatched и синхронно
// выводит ТС и водителя в On Trip с записями аудита.
func (t *Trip) DispatchTrip(ctx context.Context, tripID int64, actorID *int64) (*entities.Trip, error) {
	var dispatched *entities.Trip
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := t.repository.GetByID(ctx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		if trip.Status != entities.TripDraft {
			return fmt.Errorf("%w: status %s", ErrTripNotDraft, trip.Status)
		}

		vehicle, err := t.vehicleService.GetVehicle(ctx, trip.VehicleID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}
		if vehicle.Status != entities.VehicleAvailable {
			return fmt.Errorf("%w: status %s", ErrVehicleNotAvailable, vehicle.Status)
		}

		driver, err := t.driverService.GetDriver(ctx, trip.DriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if driver.Status != entities.DriverAvailable {
			return fmt.Errorf("%w: status %s", ErrDriverNotEligible, driver.Status)
		}

		err = t.repository.UpdateStatus(ctx, tripID, entities.TripDraft, entities.TripDispatched, actorID)
		if err != nil {
			return fmt.Errorf("update trip status: %w", err)
		}

		err = t.vehicleService.UpdateVehicleStatus(ctx,
			vehicle.ID, entities.VehicleAvailable, entities.VehicleOnTrip, actorID)
		if err != nil {
			return fmt.Errorf("update vehicle status: %w", err)
		}

		_, err = t.vehicleLogger.CreateVehicleLog(ctx, entities.VehicleStatusLogModify{
			VehicleID:        vehicle.ID,
			TripID:           &tripID,
			PreviousStatus:   entities.VehicleAvailable,
			NewStatus:        entities.VehicleOnTrip,
			ChangedReason:    entities.VehicleReasonTripDispatched,
			OdometerAtChange: vehicle.OdometerKm,
			CreatedBy:        actorID,
		})
		if err != nil {
			return fmt.Errorf("log vehicle status: %w", err)
		}

		err = t.driverService.UpdateDriverStatus(ctx,
			driver.ID, entities.DriverAvailable, entities.DriverOnTrip, nil, actorID)
		if err != nil {
			return fmt.Errorf("update driver status: %w", err)
		}

		_, err = t.driverLogger.CreateDriverLog(ctx, entities.DriverStatusLogModify{
			DriverID:       driver.ID,
			TripID:         &tripID,
			PreviousStatus: entities.DriverAvailable,
			NewStatus:      entities.DriverOnTrip,
			ChangedReason:  entities.DriverReasonTripDispatched,
			CreatedBy:      actorID,
		})
		if err != nil {
			return fmt.Errorf("log driver status: %w", err)
		}

		err = t.driverService.IncrementTotalTrips(ctx, driver.ID)
		if err != nil {
			return fmt.Errorf("increment total trips: %w", err)
		}

		shipment, err := t.shipmentService.GetShipment(ctx, trip.ShipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}
		err = t.shipmentService.UpdateShipmentStatus(ctx,
			shipment.ID, shipment.Status, entities.ShipmentInTransit, actorID)
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		dispatched, err = t.repository.GetByID(ctx, tripID)
		if err != nil {
			return fmt.Errorf("reload trip: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dispatched, nil
}

// CompleteTrip закрывает рейс, возвращает ТС и водителя в Available,
// доводит одометр ТС до конечного значения и помечает груз доставленным.
func (t *Trip) CompleteTrip(ctx context.Context, tripID int64, completion entities.TripCompletion, actorID *int64) (*entities.Trip, error) {
	var completed *entities.Trip
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := t.repository.GetByID(ctx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		if trip.Status != entities.TripDispatched && trip.Status != entities.TripOnTrip {
			return fmt.Errorf("%w: status %s", ErrTripNotActive, trip.Status)
		}

		vehicle, err := t.vehicleService.GetVehicle(ctx, trip.VehicleID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}

		odometerEnd := vehicle.OdometerKm
		if completion.OdometerEndKm != nil {
			odometerEnd = *completion.OdometerEndKm
		}
		if odometerEnd < trip.OdometerStartKm {
			return fmt.Errorf("%w: end %.2f km before start %.2f km",
				ErrInvalidOdometer, odometerEnd, trip.OdometerStartKm)
		}

		actualDist := completion.ActualDistKm
		if actualDist == nil {
			dist := odometerEnd - trip.OdometerStartKm
			actualDist = &dist
		}

		now := time.Now().UTC()
		completedStatus := entities.TripCompleted
		_, err = t.repository.Update(ctx, entities.TripModify{
			ID:              &tripID,
			Status:          &completedStatus,
			OdometerEndKm:   &odometerEnd,
			ActualDistKm:    actualDist,
			ActualEnd:       &now,
			CompletedAt:     &now,
			CompletionNotes: completion.CompletionNotes,
			UpdatedBy:       actorID,
		})
		if err != nil {
			return fmt.Errorf("update trip: %w", err)
		}

		if odometerEnd > vehicle.OdometerKm {
			_, err = t.vehicleService.UpdateVehicle(ctx, entities.VehicleModify{
				ID:         &vehicle.ID,
				OdometerKm: &odometerEnd,
				UpdatedBy:  actorID,
			})
			if err != nil {
				return fmt.Errorf("advance vehicle odometer: %w", err)
			}
		}

		err = t.releaseVehicle(ctx, vehicle, tripID, entities.VehicleReasonTripCompleted, odometerEnd, actorID)
		if err != nil {
			return err
		}

		driver, err := t.driverService.GetDriver(ctx, trip.DriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		err = t.releaseDriver(ctx, driver, tripID, entities.DriverReasonTripCompleted, actorID)
		if err != nil {
			return err
		}

		err = t.driverService.IncrementCompletedTrips(ctx, driver.ID)
		if err != nil {
			return fmt.Errorf("increment completed trips: %w", err)
		}

		shipment, err := t.shipmentService.GetShipment(ctx, trip.ShipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}
		err = t.shipmentService.UpdateShipmentStatus(ctx,
			shipment.ID, shipment.Status, entities.ShipmentDelivered, actorID)
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		completed, err = t.repository.GetByID(ctx, tripID)
		if err != nil {
			return fmt.Errorf("reload trip: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// CancelTrip отменяет рейс на любой нетерминальной стадии. Если рейс уже
// был отправлен, ТС и водитель возвращаются в Available, груз снова Pending.
func (t *Trip) CancelTrip(ctx context.Context, tripID int64, reason string, actorID *int64) (*entities.Trip, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrMissingRequiredFields
	}

	var cancelled *entities.Trip
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := t.repository.GetByID(ctx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		if isTerminalStatus(trip.Status) {
			return fmt.Errorf("%w: status %s", ErrTripFinished, trip.Status)
		}

		wasDispatched := trip.Status != entities.TripDraft

		now := time.Now().UTC()
		cancelledStatus := entities.TripCancelled
		_, err = t.repository.Update(ctx, entities.TripModify{
			ID:              &tripID,
			Status:          &cancelledStatus,
			CancelledReason: &reason,
			CancelledAt:     &now,
			CancelledBy:     actorID,
			UpdatedBy:       actorID,
		})
		if err != nil {
			return fmt.Errorf("update trip: %w", err)
		}

		if wasDispatched {
			vehicle, err := t.vehicleService.GetVehicle(ctx, trip.VehicleID)
			if err != nil {
				return fmt.Errorf("get vehicle: %w", err)
			}
			err = t.releaseVehicle(ctx, vehicle, tripID, entities.VehicleReasonTripCancelled, vehicle.OdometerKm, actorID)
			if err != nil {
				return err
			}

			driver, err := t.driverService.GetDriver(ctx, trip.DriverID)
			if err != nil {
				return fmt.Errorf("get driver: %w", err)
			}
			err = t.releaseDriver(ctx, driver, tripID, entities.DriverReasonTripCancelled, actorID)
			if err != nil {
				return err
			}
		}

		shipment, err := t.shipmentService.GetShipment(ctx, trip.ShipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}
		err = t.shipmentService.UpdateShipmentStatus(ctx,
			shipment.ID, shipment.Status, entities.ShipmentPending, actorID)
		if err != nil {
			return fmt.Errorf("release shipment: %w", err)
		}

		cancelled, err = t.repository.GetByID(ctx, tripID)
		if err != nil {
			return fmt.Errorf("reload trip: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// RecomputeFuelCost пересчитывает total_fuel_cost рейса. Операция
// идемпотентна и вызывается в транзакции мутации топливной записи.
func (t *Trip) RecomputeFuelCost(ctx context.Context, tripID int64) error {
	err := t.repository.RecalcFuelCost(ctx, tripID)
	if err != nil {
		return fmt.Errorf("recalc fuel cost: %w", err)
	}
	return nil
}

func (t *Trip) RecomputeExpenseCost(ctx context.Context, tripID int64) error {
	err := t.repository.RecalcExpenseCost(ctx, tripID)
	if err != nil {
		return fmt.Errorf("recalc expense cost: %w", err)
	}
	return nil
}

func (t *Trip) GetTrip(ctx context.Context, id int64) (*entities.Trip, error) {
	trip, err := t.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}

func (t *Trip) GetTripByShipmentID(ctx context.Context, shipmentID int64) (*entities.Trip, error) {
	trip, err := t.repository.GetByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get trip by shipment: %w", err)
	}
	return trip, nil
}

func (t *Trip) GetTrips(ctx context.Context, includeDeleted bool) ([]entities.Trip, error) {
	trips, err := t.repository.GetAll(ctx, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("get trips: %w", err)
	}
	return trips, nil
}

// UpdateTrip правит только черновик: после отправки рейс меняется
// координатором, а не ручным патчем.
func (t *Trip) UpdateTrip(ctx context.Context, tripModify entities.TripModify) (*entities.Trip, error) {
	if tripModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if tripModify.Status != nil && !isValidStatus(*tripModify.Status) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Trip
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := t.repository.GetByID(ctx, *tripModify.ID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		if trip.Status != entities.TripDraft {
			return fmt.Errorf("%w: status %s", ErrTripNotDraft, trip.Status)
		}

		updated, err = t.repository.Update(ctx, tripModify)
		if err != nil {
			return fmt.Errorf("update trip: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (t *Trip) DeleteTrip(ctx context.Context, id int64, actorID *int64) error {
	err := t.repository.SoftDelete(ctx, id, actorID)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}

func (t *Trip) uniqueTripCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < entity_code.MaxAttempts; attempt++ {
		code := t.codeFactory.NewCode(entity_code.PrefixTrip)
		exists, err := t.repository.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check trip code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeGeneration
}

func (t *Trip) releaseVehicle(ctx context.Context, vehicle *entities.Vehicle, tripID int64, reason entities.VehicleChangeReason, odometer float64, actorID *int64) error {
	if vehicle.Status != entities.VehicleOnTrip {
		return nil
	}

	err := t.vehicleService.UpdateVehicleStatus(ctx,
		vehicle.ID, entities.VehicleOnTrip, entities.VehicleAvailable, actorID)
	if err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}

	_, err = t.vehicleLogger.CreateVehicleLog(ctx, entities.VehicleStatusLogModify{
		VehicleID:        vehicle.ID,
		TripID:           &tripID,
		PreviousStatus:   entities.VehicleOnTrip,
		NewStatus:        entities.VehicleAvailable,
		ChangedReason:    reason,
		OdometerAtChange: odometer,
		CreatedBy:        actorID,
	})
	if err != nil {
		return fmt.Errorf("log vehicle status: %w", err)
	}
	return nil
}

func (t *Trip) releaseDriver(ctx context.Context, driver *entities.Driver, tripID int64, reason entities.DriverChangeReason, actorID *int64) error {
	if driver.Status != entities.DriverOnTrip {
		return nil
	}

	err := t.driverService.UpdateDriverStatus(ctx,
		driver.ID, entities.DriverOnTrip, entities.DriverAvailable, nil, actorID)
	if err != nil {
		return fmt.Errorf("update driver status: %w", err)
	}

	_, err = t.driverLogger.CreateDriverLog(ctx, entities.DriverStatusLogModify{
		DriverID:       driver.ID,
		TripID:         &tripID,
		PreviousStatus: entities.DriverOnTrip,
		NewStatus:      entities.DriverAvailable,
		ChangedReason:  reason,
		CreatedBy:      actorID,
	})
	if err != nil {
		return fmt.Errorf("log driver status: %w", err)
	}
	return nil
}

func driverEligibilityFailures(driver *entities.Driver, vehicleType entities.VehicleType) []string {
	var reasons []string

	if driver.Status != entities.DriverAvailable {
		reasons = append(reasons, fmt.Sprintf("driver status is %s", driver.Status))
	}
	if !driver.IsLicenseValid || driver.LicenseExpiryDate.Before(time.Now().UTC()) {
		reasons = append(reasons, "driver license is expired or invalid")
	}
	if driver.LicenseType != vehicleType {
		reasons = append(reasons, fmt.Sprintf("license type %s does not match vehicle type %s",
			driver.LicenseType, vehicleType))
	}

	return reasons
}
