package fuellog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleetops/internal/entities"
	"fleetops/internal/repository"
	"fleetops/internal/service/fuellog"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// total_fuel_cost — генерируемая колонка (liters_filled * price_per_liter),
// напрямую не пишется.
const fuelLogColumns = `id, fuel_log_code, vehicle_id, trip_id, driver_id, fuel_type,
	liters_filled, price_per_liter, total_fuel_cost, odometer_at_fuel,
	fuel_station_name, fuel_station_city, receipt_number, fueled_at,
	created_at, updated_at, created_by, updated_by, is_deleted`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, code string, create entities.FuelLogCreate, actorID *int64) (*entities.FuelLog, error) {
	query := `INSERT INTO fuel_logs (fuel_log_code, vehicle_id, trip_id, driver_id, fuel_type,
			liters_filled, price_per_liter, odometer_at_fuel, fuel_station_name,
			fuel_station_city, receipt_number, fueled_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + fuelLogColumns

	logModel, err := r.scanOne(r.querier.QueryRow(
		ctx,
		query,
		code,
		create.VehicleID,
		create.TripID,
		create.DriverID,
		create.FuelType,
		create.LitersFilled,
		create.PricePerLiter,
		create.OdometerAtFuel,
		create.FuelStationName,
		create.FuelStationCity,
		create.ReceiptNumber,
		create.FueledAt,
		actorID,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fuellog.ErrConflict
		}
		return nil, fmt.Errorf("unexpected fuellog repository create error: %w", err)
	}

	return ToDomain(logModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.FuelLog, error) {
	query := `SELECT ` + fuelLogColumns + `
		FROM fuel_logs
		WHERE id = $1 AND is_deleted = FALSE`

	logModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fuellog.ErrFuelLogNotFound
		}

		return nil, fmt.Errorf("unexpected fuellog repository getbyid error: %w", err)
	}

	return ToDomain(logModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.FuelLogFilter, page entities.Page) ([]entities.FuelLog, int64, error) {
	where := sq.And{sq.Eq{"is_deleted": false}}

	if filter.VehicleID != nil {
		where = append(where, sq.Eq{"vehicle_id": *filter.VehicleID})
	}
	if filter.TripID != nil {
		where = append(where, sq.Eq{"trip_id": *filter.TripID})
	}
	if filter.DriverID != nil {
		where = append(where, sq.Eq{"driver_id": *filter.DriverID})
	}
	if filter.FuelType != nil {
		where = append(where, sq.Eq{"fuel_type": *filter.FuelType})
	}
	if filter.FromDate != nil {
		where = append(where, sq.GtOrEq{"fueled_at": *filter.FromDate})
	}
	if filter.ToDate != nil {
		where = append(where, sq.LtOrEq{"fueled_at": *filter.ToDate})
	}

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("fuel_logs").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
	}

	query, args, err := qb.
		Select(fuelLogColumns).
		From("fuel_logs").
		Where(where).
		OrderBy("fueled_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
	}
	defer rows.Close()

	logModels := make([]FuelLogDB, 0, 8)
	for rows.Next() {
		var logModel FuelLogDB
		err := scanInto(rows, &logModel)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
		}
		logModels = append(logModels, logModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
	}

	return ToDomainList(logModels), total, nil
}

func (r *Repository) Update(ctx context.Context, fuelLogModifyEntity entities.FuelLogModify) (*entities.FuelLog, error) {
	builder := qb.
		Update("fuel_logs")

	// опциональные поля
	if fuelLogModifyEntity.FuelType != nil {
		builder = builder.Set("fuel_type", fuelLogModifyEntity.FuelType)
	}
	if fuelLogModifyEntity.LitersFilled != nil {
		builder = builder.Set("liters_filled", fuelLogModifyEntity.LitersFilled)
	}
	if fuelLogModifyEntity.PricePerLiter != nil {
		builder = builder.Set("price_per_liter", fuelLogModifyEntity.PricePerLiter)
	}
	if fuelLogModifyEntity.OdometerAtFuel != nil {
		builder = builder.Set("odometer_at_fuel", fuelLogModifyEntity.OdometerAtFuel)
	}
	if fuelLogModifyEntity.FuelStationName != nil {
		builder = builder.Set("fuel_station_name", fuelLogModifyEntity.FuelStationName)
	}
	if fuelLogModifyEntity.FuelStationCity != nil {
		builder = builder.Set("fuel_station_city", fuelLogModifyEntity.FuelStationCity)
	}
	if fuelLogModifyEntity.ReceiptNumber != nil {
		builder = builder.Set("receipt_number", fuelLogModifyEntity.ReceiptNumber)
	}
	if fuelLogModifyEntity.FueledAt != nil {
		builder = builder.Set("fueled_at", fuelLogModifyEntity.FueledAt)
	}
	if fuelLogModifyEntity.UpdatedBy != nil {
		builder = builder.Set("updated_by", fuelLogModifyEntity.UpdatedBy)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": fuelLogModifyEntity.ID, "is_deleted": false}).
		Suffix("RETURNING " + fuelLogColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fuellog repository update error: %w", err)
	}

	logModel, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fuellog.ErrFuelLogNotFound
		}

		return nil, fmt.Errorf("unexpected fuellog repository update error: %w", err)
	}

	return ToDomain(logModel), nil
}

func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM fuel_logs WHERE fuel_log_code = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected fuellog repository codeexists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64, actorID *int64) error {
	query := `UPDATE fuel_logs
		SET is_deleted = TRUE, updated_at = NOW(), updated_by = COALESCE($2, updated_by)
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, actorID)
	if err != nil {
		return fmt.Errorf("unexpected fuellog repository softdelete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fuellog.ErrFuelLogNotFound
	}

	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*FuelLogDB, error) {
	var logModel FuelLogDB
	err := scanInto(row, &logModel)
	if err != nil {
		return nil, err
	}
	return &logModel, nil
}

func scanInto(row pgx.Row, logModel *FuelLogDB) error {
	return row.Scan(
		&logModel.ID,
		&logModel.FuelLogCode,
		&logModel.VehicleID,
		&logModel.TripID,
		&logModel.DriverID,
		&logModel.FuelType,
		&logModel.LitersFilled,
		&logModel.PricePerLiter,
		&logModel.TotalFuelCost,
		&logModel.OdometerAtFuel,
		&logModel.FuelStationName,
		&logModel.FuelStationCity,
		&logModel.ReceiptNumber,
		&logModel.FueledAt,
		&logModel.CreatedAt,
		&logModel.UpdatedAt,
		&logModel.CreatedBy,
		&logModel.UpdatedBy,
		&logModel.IsDeleted,
	)
}
