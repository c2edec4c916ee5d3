package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleetops/internal/entities"
	"fleetops/internal/repository"
	"fleetops/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, full_name, phone, email, license_number, license_type,
	license_expiry_date, is_license_valid, total_trips, completed_trips, safety_score,
	status, created_at, updated_at, created_by, updated_by, is_deleted`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO drivers (full_name, phone, email, license_number, license_type,
			license_expiry_date, safety_score, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, 100), COALESCE($8, 'Available'), $9)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.FullName,
		driverModifyModel.Phone,
		driverModifyModel.Email,
		driverModifyModel.LicenseNumber,
		driverModifyModel.LicenseType,
		driverModifyModel.LicenseExpiryDate,
		driverModifyModel.SafetyScore,
		driverModifyModel.Status,
		driverModifyModel.UpdatedBy,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, driver.ErrConflict
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1 AND is_deleted = FALSE`

	driverModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) GetAll(ctx context.Context, includeDeleted bool) ([]entities.Driver, error) {
	builder := qb.
		Select(driverColumns).
		From("drivers").
		OrderBy("id")

	if !includeDeleted {
		builder = builder.Where(sq.Eq{"is_deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	return r.queryList(ctx, query, args...)
}

func (r *Repository) GetExpiredLicenses(ctx context.Context) ([]entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE license_expiry_date < NOW() AND is_deleted = FALSE
		ORDER BY license_expiry_date`

	return r.queryList(ctx, query)
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyModel.FullName != nil {
		builder = builder.Set("full_name", driverModifyModel.FullName)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.Email != nil {
		builder = builder.Set("email", driverModifyModel.Email)
	}
	if driverModifyModel.LicenseNumber != nil {
		builder = builder.Set("license_number", driverModifyModel.LicenseNumber)
	}
	if driverModifyModel.LicenseType != nil {
		builder = builder.Set("license_type", driverModifyModel.LicenseType)
	}
	if driverModifyModel.LicenseExpiryDate != nil {
		builder = builder.Set("license_expiry_date", driverModifyModel.LicenseExpiryDate)
	}
	if driverModifyModel.IsLicenseValid != nil {
		builder = builder.Set("is_license_valid", driverModifyModel.IsLicenseValid)
	}
	if driverModifyModel.SafetyScore != nil {
		builder = builder.Set("safety_score", driverModifyModel.SafetyScore)
	}
	if driverModifyModel.Status != nil {
		builder = builder.Set("status", driverModifyModel.Status)
	}
	if driverModifyModel.UpdatedBy != nil {
		builder = builder.Set("updated_by", driverModifyModel.UpdatedBy)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID, "is_deleted": false}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverModel, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(driverModel), nil
}

// UpdateStatus меняет статус, только если живая строка всё ещё в from.
// Ноль затронутых строк означает, что статус успел уйти: конфликт.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.DriverStatusType, safetyScore *float64, actorID *int64) error {
	query := `UPDATE drivers
		SET status = $3,
			safety_score = COALESCE($4, safety_score),
			updated_at = NOW(),
			updated_by = COALESCE($5, updated_by)
		WHERE id = $1 AND status = $2 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String(), safetyScore, actorID)
	if err != nil {
		return fmt.Errorf("unexpected driver repository updatestatus error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return driver.ErrStatusConflict
	}

	return nil
}

func (r *Repository) IncrementTotalTrips(ctx context.Context, id int64) error {
	query := `UPDATE drivers
		SET total_trips = total_trips + 1, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected driver repository incrementtotaltrips error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return driver.ErrDriverNotFound
	}

	return nil
}

func (r *Repository) IncrementCompletedTrips(ctx context.Context, id int64) error {
	query := `UPDATE drivers
		SET completed_trips = completed_trips + 1, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected driver repository incrementcompletedtrips error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return driver.ErrDriverNotFound
	}

	return nil
}

func (r *Repository) InvalidateExpiredLicenses(ctx context.Context) (int64, error) {
	query := `UPDATE drivers
		SET is_license_valid = FALSE, updated_at = NOW()
		WHERE license_expiry_date < NOW() AND is_license_valid = TRUE AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected driver repository invalidateexpiredlicenses error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64, actorID *int64) error {
	query := `UPDATE drivers
		SET is_deleted = TRUE, updated_at = NOW(), updated_by = COALESCE($2, updated_by)
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, actorID)
	if err != nil {
		return fmt.Errorf("unexpected driver repository softdelete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return driver.ErrDriverNotFound
	}

	return nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Driver, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := rows.Scan(
			&driverModel.ID,
			&driverModel.FullName,
			&driverModel.Phone,
			&driverModel.Email,
			&driverModel.LicenseNumber,
			&driverModel.LicenseType,
			&driverModel.LicenseExpiryDate,
			&driverModel.IsLicenseValid,
			&driverModel.TotalTrips,
			&driverModel.CompletedTrips,
			&driverModel.SafetyScore,
			&driverModel.Status,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
			&driverModel.CreatedBy,
			&driverModel.UpdatedBy,
			&driverModel.IsDeleted,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
		}
		driverModels = append(driverModels, driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
	}

	return ToDomainList(driverModels), nil
}

func (r *Repository) scanOne(row pgx.Row) (*DriverDB, error) {
	var driverModel DriverDB
	err := row.Scan(
		&driverModel.ID,
		&driverModel.FullName,
		&driverModel.Phone,
		&driverModel.Email,
		&driverModel.LicenseNumber,
		&driverModel.LicenseType,
		&driverModel.LicenseExpiryDate,
		&driverModel.IsLicenseValid,
		&driverModel.TotalTrips,
		&driverModel.CompletedTrips,
		&driverModel.SafetyScore,
		&driverModel.Status,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
		&driverModel.CreatedBy,
		&driverModel.UpdatedBy,
		&driverModel.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &driverModel, nil
}
