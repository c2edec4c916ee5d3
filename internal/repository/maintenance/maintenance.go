package maintenance

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleetops/internal/entities"
	"fleetops/internal/repository"
	"fleetops/internal/service/maintenance"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const maintenanceColumns = `id, maintenance_code, vehicle_id, service_type, service_description,
	service_provider, service_provider_phone, service_date, expected_completion,
	actual_completion, labour_cost, parts_cost, odometer_at_service, status,
	completion_notes, next_service_due_km, next_service_due_date,
	created_at, updated_at, created_by, updated_by, is_deleted`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, code string, create entities.MaintenanceCreate, actorID *int64) (*entities.MaintenanceLog, error) {
	query := `INSERT INTO maintenance_logs (maintenance_code, vehicle_id, service_type,
			service_description, service_provider, service_provider_phone, service_date,
			expected_completion, labour_cost, parts_cost, odometer_at_service, status,
			next_service_due_km, next_service_due_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'Scheduled', $12, $13, $14)
		RETURNING ` + maintenanceColumns

	logModel, err := r.scanOne(r.querier.QueryRow(
		ctx,
		query,
		code,
		create.VehicleID,
		create.ServiceType,
		create.ServiceDescription,
		create.ServiceProvider,
		create.ServiceProviderPhone,
		create.ServiceDate,
		create.ExpectedCompletion,
		create.LabourCost,
		create.PartsCost,
		create.OdometerAtService,
		create.NextServiceDueKm,
		create.NextServiceDueDate,
		actorID,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, maintenance.ErrConflict
		}
		return nil, fmt.Errorf("unexpected maintenance repository create error: %w", err)
	}

	return ToDomain(logModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceColumns + `
		FROM maintenance_logs
		WHERE id = $1 AND is_deleted = FALSE`

	logModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, maintenance.ErrMaintenanceNotFound
		}

		return nil, fmt.Errorf("unexpected maintenance repository getbyid error: %w", err)
	}

	return ToDomain(logModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.MaintenanceFilter, page entities.Page) ([]entities.MaintenanceLog, int64, error) {
	where := sq.And{sq.Eq{"is_deleted": false}}

	if filter.VehicleID != nil {
		where = append(where, sq.Eq{"vehicle_id": *filter.VehicleID})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": filter.Status.String()})
	}
	if filter.ServiceType != nil {
		where = append(where, sq.Eq{"service_type": *filter.ServiceType})
	}
	if filter.FromDate != nil {
		where = append(where, sq.GtOrEq{"service_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		where = append(where, sq.LtOrEq{"service_date": *filter.ToDate})
	}

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("maintenance_logs").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected maintenance repository getall error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected maintenance repository getall error: %w", err)
	}

	query, args, err := qb.
		Select(maintenanceColumns).
		From("maintenance_logs").
		Where(where).
		OrderBy("service_date DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected maintenance repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected maintenance repository getall error: %w", err)
	}
	defer rows.Close()

	logModels := make([]MaintenanceLogDB, 0, 8)
	for rows.Next() {
		var logModel MaintenanceLogDB
		err := scanInto(rows, &logModel)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected maintenance repository getall error: %w", err)
		}
		logModels = append(logModels, logModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected maintenance repository getall error: %w", err)
	}

	return ToDomainList(logModels), total, nil
}

func (r *Repository) Update(ctx context.Context, maintenanceModifyEntity entities.MaintenanceModify) (*entities.MaintenanceLog, error) {
	builder := qb.
		Update("maintenance_logs")

	// опциональные поля
	if maintenanceModifyEntity.ServiceType != nil {
		builder = builder.Set("service_type", maintenanceModifyEntity.ServiceType)
	}
	if maintenanceModifyEntity.ServiceDescription != nil {
		builder = builder.Set("service_description", maintenanceModifyEntity.ServiceDescription)
	}
	if maintenanceModifyEntity.ServiceProvider != nil {
		builder = builder.Set("service_provider", maintenanceModifyEntity.ServiceProvider)
	}
	if maintenanceModifyEntity.ServiceProviderPhone != nil {
		builder = builder.Set("service_provider_phone", maintenanceModifyEntity.ServiceProviderPhone)
	}
	if maintenanceModifyEntity.ServiceDate != nil {
		builder = builder.Set("service_date", maintenanceModifyEntity.ServiceDate)
	}
	if maintenanceModifyEntity.ExpectedCompletion != nil {
		builder = builder.Set("expected_completion", maintenanceModifyEntity.ExpectedCompletion)
	}
	if maintenanceModifyEntity.ActualCompletion != nil {
		builder = builder.Set("actual_completion", maintenanceModifyEntity.ActualCompletion)
	}
	if maintenanceModifyEntity.LabourCost != nil {
		builder = builder.Set("labour_cost", maintenanceModifyEntity.LabourCost)
	}
	if maintenanceModifyEntity.PartsCost != nil {
		builder = builder.Set("parts_cost", maintenanceModifyEntity.PartsCost)
	}
	if maintenanceModifyEntity.OdometerAtService != nil {
		builder = builder.Set("odometer_at_service", maintenanceModifyEntity.OdometerAtService)
	}
	if maintenanceModifyEntity.CompletionNotes != nil {
		builder = builder.Set("completion_notes", maintenanceModifyEntity.CompletionNotes)
	}
	if maintenanceModifyEntity.NextServiceDueKm != nil {
		builder = builder.Set("next_service_due_km", maintenanceModifyEntity.NextServiceDueKm)
	}
	if maintenanceModifyEntity.NextServiceDueDate != nil {
		builder = builder.Set("next_service_due_date", maintenanceModifyEntity.NextServiceDueDate)
	}
	if maintenanceModifyEntity.UpdatedBy != nil {
		builder = builder.Set("updated_by", maintenanceModifyEntity.UpdatedBy)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": maintenanceModifyEntity.ID, "is_deleted": false}).
		Suffix("RETURNING " + maintenanceColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected maintenance repository update error: %w", err)
	}

	logModel, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, maintenance.ErrMaintenanceNotFound
		}

		return nil, fmt.Errorf("unexpected maintenance repository update error: %w", err)
	}

	return ToDomain(logModel), nil
}

// UpdateStatus меняет статус, только если живая строка всё ещё в from.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.MaintenanceStatusType, completion entities.MaintenanceCompletion, actorID *int64) error {
	query := `UPDATE maintenance_logs
		SET status = $3,
			actual_completion = COALESCE($4, actual_completion),
			completion_notes = COALESCE($5, completion_notes),
			updated_at = NOW(),
			updated_by = COALESCE($6, updated_by)
		WHERE id = $1 AND status = $2 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query,
		id, from.String(), to.String(),
		completion.ActualCompletion, completion.CompletionNotes, actorID)
	if err != nil {
		return fmt.Errorf("unexpected maintenance repository updatestatus error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return maintenance.ErrMaintenanceNotFound
	}

	return nil
}

func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM maintenance_logs WHERE maintenance_code = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected maintenance repository codeexists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64, actorID *int64) error {
	query := `UPDATE maintenance_logs
		SET is_deleted = TRUE, updated_at = NOW(), updated_by = COALESCE($2, updated_by)
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, actorID)
	if err != nil {
		return fmt.Errorf("unexpected maintenance repository softdelete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return maintenance.ErrMaintenanceNotFound
	}

	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*MaintenanceLogDB, error) {
	var logModel MaintenanceLogDB
	err := scanInto(row, &logModel)
	if err != nil {
		return nil, err
	}
	return &logModel, nil
}

func scanInto(row pgx.Row, logModel *MaintenanceLogDB) error {
	return row.Scan(
		&logModel.ID,
		&logModel.MaintenanceCode,
		&logModel.VehicleID,
		&logModel.ServiceType,
		&logModel.ServiceDescription,
		&logModel.ServiceProvider,
		&logModel.ServiceProviderPhone,
		&logModel.ServiceDate,
		&logModel.ExpectedCompletion,
		&logModel.ActualCompletion,
		&logModel.LabourCost,
		&logModel.PartsCost,
		&logModel.OdometerAtService,
		&logModel.Status,
		&logModel.CompletionNotes,
		&logModel.NextServiceDueKm,
		&logModel.NextServiceDueDate,
		&logModel.CreatedAt,
		&logModel.UpdatedAt,
		&logModel.CreatedBy,
		&logModel.UpdatedBy,
		&logModel.IsDeleted,
	)
}
