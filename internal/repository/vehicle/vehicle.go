package vehicle

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleetops/internal/entities"
	"fleetops/internal/repository"
	"fleetops/internal/service/vehicle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const vehicleColumns = `id, license_plate, make, model, year, type, max_load_kg,
	fuel_tank_liters, odometer_km, acquisition_cost, status,
	created_at, updated_at, created_by, updated_by, is_deleted`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)
	query := `INSERT INTO vehicles (license_plate, make, model, year, type, max_load_kg,
			fuel_tank_liters, odometer_km, acquisition_cost, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, 0), COALESCE($8, 0), COALESCE($9, 0), COALESCE($10, 'Available'), $11)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		vehicleModifyModel.LicensePlate,
		vehicleModifyModel.Make,
		vehicleModifyModel.Model,
		vehicleModifyModel.Year,
		vehicleModifyModel.Type,
		vehicleModifyModel.MaxLoadKg,
		vehicleModifyModel.FuelTankLiters,
		vehicleModifyModel.OdometerKm,
		vehicleModifyModel.AcquisitionCost,
		vehicleModifyModel.Status,
		vehicleModifyModel.UpdatedBy,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, vehicle.ErrConflict
		}
		return 0, fmt.Errorf("unexpected vehicle repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = $1 AND is_deleted = FALSE`

	vehicleModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}

		return nil, fmt.Errorf("unexpected vehicle repository getbyid error: %w", err)
	}

	return ToDomain(vehicleModel), nil
}

func (r *Repository) GetAll(ctx context.Context, includeDeleted bool) ([]entities.Vehicle, error) {
	builder := qb.
		Select(vehicleColumns).
		From("vehicles").
		OrderBy("id")

	if !includeDeleted {
		builder = builder.Where(sq.Eq{"is_deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}
	defer rows.Close()

	vehicleModels := make([]VehicleDB, 0, 8)
	for rows.Next() {
		var vehicleModel VehicleDB
		err := rows.Scan(
			&vehicleModel.ID,
			&vehicleModel.LicensePlate,
			&vehicleModel.Make,
			&vehicleModel.Model,
			&vehicleModel.Year,
			&vehicleModel.Type,
			&vehicleModel.MaxLoadKg,
			&vehicleModel.FuelTankLiters,
			&vehicleModel.OdometerKm,
			&vehicleModel.AcquisitionCost,
			&vehicleModel.Status,
			&vehicleModel.CreatedAt,
			&vehicleModel.UpdatedAt,
			&vehicleModel.CreatedBy,
			&vehicleModel.UpdatedBy,
			&vehicleModel.IsDeleted,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
		}
		vehicleModels = append(vehicleModels, vehicleModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}

	return ToDomainList(vehicleModels), nil
}

func (r *Repository) Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)

	builder := qb.
		Update("vehicles")

	// опциональные поля
	if vehicleModifyModel.LicensePlate != nil {
		builder = builder.Set("license_plate", vehicleModifyModel.LicensePlate)
	}
	if vehicleModifyModel.Make != nil {
		builder = builder.Set("make", vehicleModifyModel.Make)
	}
	if vehicleModifyModel.Model != nil {
		builder = builder.Set("model", vehicleModifyModel.Model)
	}
	if vehicleModifyModel.Year != nil {
		builder = builder.Set("year", vehicleModifyModel.Year)
	}
	if vehicleModifyModel.Type != nil {
		builder = builder.Set("type", vehicleModifyModel.Type)
	}
	if vehicleModifyModel.MaxLoadKg != nil {
		builder = builder.Set("max_load_kg", vehicleModifyModel.MaxLoadKg)
	}
	if vehicleModifyModel.FuelTankLiters != nil {
		builder = builder.Set("fuel_tank_liters", vehicleModifyModel.FuelTankLiters)
	}
	if vehicleModifyModel.OdometerKm != nil {
		builder = builder.Set("odometer_km", vehicleModifyModel.OdometerKm)
	}
	if vehicleModifyModel.AcquisitionCost != nil {
		builder = builder.Set("acquisition_cost", vehicleModifyModel.AcquisitionCost)
	}
	if vehicleModifyModel.Status != nil {
		builder = builder.Set("status", vehicleModifyModel.Status)
	}
	if vehicleModifyModel.UpdatedBy != nil {
		builder = builder.Set("updated_by", vehicleModifyModel.UpdatedBy)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": vehicleModifyModel.ID, "is_deleted": false}).
		Suffix("RETURNING " + vehicleColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	vehicleModel, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, vehicle.ErrConflict
		}

		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	return ToDomain(vehicleModel), nil
}

// UpdateStatus меняет статус, только если живая строка всё ещё в from.
// Ноль затронутых строк означает, что статус успел уйти: конфликт.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.VehicleStatusType, actorID *int64) error {
	query := `UPDATE vehicles
		SET status = $3, updated_at = NOW(), updated_by = COALESCE($4, updated_by)
		WHERE id = $1 AND status = $2 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String(), actorID)
	if err != nil {
		return fmt.Errorf("unexpected vehicle repository updatestatus error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return vehicle.ErrStatusConflict
	}

	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64, actorID *int64) error {
	query := `UPDATE vehicles
		SET is_deleted = TRUE, updated_at = NOW(), updated_by = COALESCE($2, updated_by)
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, actorID)
	if err != nil {
		return fmt.Errorf("unexpected vehicle repository softdelete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*VehicleDB, error) {
	var vehicleModel VehicleDB
	err := row.Scan(
		&vehicleModel.ID,
		&vehicleModel.LicensePlate,
		&vehicleModel.Make,
		&vehicleModel.Model,
		&vehicleModel.Year,
		&vehicleModel.Type,
		&vehicleModel.MaxLoadKg,
		&vehicleModel.FuelTankLiters,
		&vehicleModel.OdometerKm,
		&vehicleModel.AcquisitionCost,
		&vehicleModel.Status,
		&vehicleModel.CreatedAt,
		&vehicleModel.UpdatedAt,
		&vehicleModel.CreatedBy,
		&vehicleModel.UpdatedBy,
		&vehicleModel.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &vehicleModel, nil
}
