package trip

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleetops/internal/entities"
	"fleetops/internal/repository"
	"fleetops/internal/service/trip"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const tripColumns = `id, trip_code, vehicle_id, driver_id, shipment_id, origin_address,
	destination_address, estimated_dist_km, actual_dist_km, odometer_start_km,
	odometer_end_km, cargo_weight_kg, scheduled_start, scheduled_end, actual_start,
	actual_end, total_fuel_cost, total_expense_cost, status, cancelled_reason,
	cancelled_at, cancelled_by, completed_at, completion_notes,
	created_at, updated_at, created_by, updated_by, is_deleted`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)
	query := `INSERT INTO trips (trip_code, vehicle_id, driver_id, shipment_id, origin_address,
			destination_address, estimated_dist_km, odometer_start_km, cargo_weight_kg,
			scheduled_start, scheduled_end, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, 'Draft'), $13)
		RETURNING ` + tripColumns

	tripModel, err := r.scanOne(r.querier.QueryRow(
		ctx,
		query,
		tripModifyModel.TripCode,
		tripModifyModel.VehicleID,
		tripModifyModel.DriverID,
		tripModifyModel.ShipmentID,
		tripModifyModel.OriginAddress,
		tripModifyModel.DestinationAddress,
		tripModifyModel.EstimatedDistKm,
		tripModifyModel.OdometerStartKm,
		tripModifyModel.CargoWeightKg,
		tripModifyModel.ScheduledStart,
		tripModifyModel.ScheduledEnd,
		tripModifyModel.Status,
		tripModifyModel.CreatedBy,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, trip.ErrConflict
		}
		return nil, fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	return ToDomain(tripModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1 AND is_deleted = FALSE`

	tripModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}

		return nil, fmt.Errorf("unexpected trip repository getbyid error: %w", err)
	}

	return ToDomain(tripModel), nil
}

// GetByShipmentID находит последний нетерминальный рейс груза.
func (r *Repository) GetByShipmentID(ctx context.Context, shipmentID int64) (*entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE shipment_id = $1
			AND status NOT IN ('Completed', 'Cancelled')
			AND is_deleted = FALSE
		ORDER BY id DESC
		LIMIT 1`

	tripModel, err := r.scanOne(r.querier.QueryRow(ctx, query, shipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}

		return nil, fmt.Errorf("unexpected trip repository getbyshipmentid error: %w", err)
	}

	return ToDomain(tripModel), nil
}

func (r *Repository) GetAll(ctx context.Context, includeDeleted bool) ([]entities.Trip, error) {
	builder := qb.
		Select(tripColumns).
		From("trips").
		OrderBy("id")

	if !includeDeleted {
		builder = builder.Where(sq.Eq{"is_deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}
	defer rows.Close()

	tripModels := make([]TripDB, 0, 8)
	for rows.Next() {
		var tripModel TripDB
		err := scanInto(rows, &tripModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
		}
		tripModels = append(tripModels, tripModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}

	return ToDomainList(tripModels), nil
}

func (r *Repository) Update(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)

	builder := qb.
		Update("trips")

	// опциональные поля
	if tripModifyModel.OriginAddress != nil {
		builder = builder.Set("origin_address", tripModifyModel.OriginAddress)
	}
	if tripModifyModel.DestinationAddress != nil {
		builder = builder.Set("destination_address", tripModifyModel.DestinationAddress)
	}
	if tripModifyModel.EstimatedDistKm != nil {
		builder = builder.Set("estimated_dist_km", tripModifyModel.EstimatedDistKm)
	}
	if tripModifyModel.ActualDistKm != nil {
		builder = builder.Set("actual_dist_km", tripModifyModel.ActualDistKm)
	}
	if tripModifyModel.OdometerEndKm != nil {
		builder = builder.Set("odometer_end_km", tripModifyModel.OdometerEndKm)
	}
	if tripModifyModel.CargoWeightKg != nil {
		builder = builder.Set("cargo_weight_kg", tripModifyModel.CargoWeightKg)
	}
	if tripModifyModel.ScheduledStart != nil {
		builder = builder.Set("scheduled_start", tripModifyModel.ScheduledStart)
	}
	if tripModifyModel.ScheduledEnd != nil {
		builder = builder.Set("scheduled_end", tripModifyModel.ScheduledEnd)
	}
	if tripModifyModel.ActualStart != nil {
		builder = builder.Set("actual_start", tripModifyModel.ActualStart)
	}
	if tripModifyModel.ActualEnd != nil {
		builder = builder.Set("actual_end", tripModifyModel.ActualEnd)
	}
	if tripModifyModel.Status != nil {
		builder = builder.Set("status", tripModifyModel.Status)
	}
	if tripModifyModel.CancelledReason != nil {
		builder = builder.Set("cancelled_reason", tripModifyModel.CancelledReason)
	}
	if tripModifyModel.CancelledAt != nil {
		builder = builder.Set("cancelled_at", tripModifyModel.CancelledAt)
	}
	if tripModifyModel.CancelledBy != nil {
		builder = builder.Set("cancelled_by", tripModifyModel.CancelledBy)
	}
	if tripModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", tripModifyModel.CompletedAt)
	}
	if tripModifyModel.CompletionNotes != nil {
		builder = builder.Set("completion_notes", tripModifyModel.CompletionNotes)
	}
	if tripModifyModel.UpdatedBy != nil {
		builder = builder.Set("updated_by", tripModifyModel.UpdatedBy)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": tripModifyModel.ID, "is_deleted": false}).
		Suffix("RETURNING " + tripColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	tripModel, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, trip.ErrConflict
		}

		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	return ToDomain(tripModel), nil
}

// UpdateStatus меняет статус, только если живая строка всё ещё в from.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.TripStatusType, actorID *int64) error {
	query := `UPDATE trips
		SET status = $3, updated_at = NOW(), updated_by = COALESCE($4, updated_by)
		WHERE id = $1 AND status = $2 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String(), actorID)
	if err != nil {
		return fmt.Errorf("unexpected trip repository updatestatus error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM trips WHERE trip_code = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected trip repository codeexists error: %w", err)
	}

	return exists, nil
}

// RecalcFuelCost приводит total_fuel_cost к сумме живых топливных записей.
// Повторный вызов ничего не меняет.
func (r *Repository) RecalcFuelCost(ctx context.Context, tripID int64) error {
	query := `UPDATE trips
		SET total_fuel_cost = COALESCE(
				(SELECT SUM(total_fuel_cost) FROM fuel_logs
					WHERE trip_id = $1 AND is_deleted = FALSE), 0),
			updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, tripID)
	if err != nil {
		return fmt.Errorf("unexpected trip repository recalcfuelcost error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

// RecalcExpenseCost приводит total_expense_cost к сумме живых расходов.
func (r *Repository) RecalcExpenseCost(ctx context.Context, tripID int64) error {
	query := `UPDATE trips
		SET total_expense_cost = COALESCE(
				(SELECT SUM(amount) FROM expenses
					WHERE trip_id = $1 AND is_deleted = FALSE), 0),
			updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, tripID)
	if err != nil {
		return fmt.Errorf("unexpected trip repository recalcexpensecost error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64, actorID *int64) error {
	query := `UPDATE trips
		SET is_deleted = TRUE, updated_at = NOW(), updated_by = COALESCE($2, updated_by)
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, actorID)
	if err != nil {
		return fmt.Errorf("unexpected trip repository softdelete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*TripDB, error) {
	var tripModel TripDB
	err := scanInto(row, &tripModel)
	if err != nil {
		return nil, err
	}
	return &tripModel, nil
}

func scanInto(row pgx.Row, tripModel *TripDB) error {
	return row.Scan(
		&tripModel.ID,
		&tripModel.TripCode,
		&tripModel.VehicleID,
		&tripModel.DriverID,
		&tripModel.ShipmentID,
		&tripModel.OriginAddress,
		&tripModel.DestinationAddress,
		&tripModel.EstimatedDistKm,
		&tripModel.ActualDistKm,
		&tripModel.OdometerStartKm,
		&tripModel.OdometerEndKm,
		&tripModel.CargoWeightKg,
		&tripModel.ScheduledStart,
		&tripModel.ScheduledEnd,
		&tripModel.ActualStart,
		&tripModel.ActualEnd,
		&tripModel.TotalFuelCost,
		&tripModel.TotalExpenseCost,
		&tripModel.Status,
		&tripModel.CancelledReason,
		&tripModel.CancelledAt,
		&tripModel.CancelledBy,
		&tripModel.CompletedAt,
		&tripModel.CompletionNotes,
		&tripModel.CreatedAt,
		&tripModel.UpdatedAt,
		&tripModel.CreatedBy,
		&tripModel.UpdatedBy,
		&tripModel.IsDeleted,
	)
}
