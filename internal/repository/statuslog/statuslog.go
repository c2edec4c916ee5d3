package statuslog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleetops/internal/entities"
	"fleetops/internal/service/statuslog"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const vehicleLogColumns = `id, vehicle_id, trip_id, maintenance_id, previous_status,
	new_status, changed_reason, remarks, odometer_at_change, changed_at,
	created_by, updated_by, is_deleted`

const driverLogColumns = `id, driver_id, trip_id, previous_status, new_status,
	changed_reason, remarks, incident_type, incident_description,
	safety_score_before, safety_score_after, changed_at,
	created_by, updated_by, is_deleted`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateVehicleLog(ctx context.Context, logModify entities.VehicleStatusLogModify) (int64, error) {
	query := `INSERT INTO vehicle_status_logs (vehicle_id, trip_id, maintenance_id,
			previous_status, new_status, changed_reason, remarks, odometer_at_change,
			changed_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, NOW()), $10)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		logModify.VehicleID,
		logModify.TripID,
		logModify.MaintenanceID,
		logModify.PreviousStatus.String(),
		logModify.NewStatus.String(),
		logModify.ChangedReason.String(),
		logModify.Remarks,
		logModify.OdometerAtChange,
		logModify.ChangedAt,
		logModify.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected statuslog repository createvehiclelog error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetVehicleLogByID(ctx context.Context, id int64) (*entities.VehicleStatusLog, error) {
	query := `SELECT ` + vehicleLogColumns + `
		FROM vehicle_status_logs
		WHERE id = $1 AND is_deleted = FALSE`

	var logModel VehicleStatusLogDB
	err := scanVehicleLog(r.querier.QueryRow(ctx, query, id), &logModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, statuslog.ErrVehicleLogNotFound
		}

		return nil, fmt.Errorf("unexpected statuslog repository getvehiclelogbyid error: %w", err)
	}

	return VehicleLogToDomain(&logModel), nil
}

// GetVehicleLogs отдаёт страницу аудита, новые записи первыми.
// Порядок стабильный: changed_at DESC, id DESC.
func (r *Repository) GetVehicleLogs(ctx context.Context, filter entities.VehicleStatusLogFilter, page entities.Page) ([]entities.VehicleStatusLog, int64, error) {
	where := sq.And{sq.Eq{"is_deleted": false}}

	if filter.VehicleID != nil {
		where = append(where, sq.Eq{"vehicle_id": *filter.VehicleID})
	}
	if filter.TripID != nil {
		where = append(where, sq.Eq{"trip_id": *filter.TripID})
	}
	if filter.MaintenanceID != nil {
		where = append(where, sq.Eq{"maintenance_id": *filter.MaintenanceID})
	}
	if filter.ChangedReason != nil {
		where = append(where, sq.Eq{"changed_reason": filter.ChangedReason.String()})
	}
	if filter.FromDate != nil {
		where = append(where, sq.GtOrEq{"changed_at": *filter.FromDate})
	}
	if filter.ToDate != nil {
		where = append(where, sq.LtOrEq{"changed_at": *filter.ToDate})
	}

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("vehicle_status_logs").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getvehiclelogs error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getvehiclelogs error: %w", err)
	}

	query, args, err := qb.
		Select(vehicleLogColumns).
		From("vehicle_status_logs").
		Where(where).
		OrderBy("changed_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getvehiclelogs error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getvehiclelogs error: %w", err)
	}
	defer rows.Close()

	logModels := make([]VehicleStatusLogDB, 0, 8)
	for rows.Next() {
		var logModel VehicleStatusLogDB
		err := scanVehicleLog(rows, &logModel)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected statuslog repository getvehiclelogs error: %w", err)
		}
		logModels = append(logModels, logModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getvehiclelogs error: %w", err)
	}

	return VehicleLogToDomainList(logModels), total, nil
}

// SoftDeleteVehicleLog скрывает строку аудита из выборок.
// Переход, который она фиксировала, не откатывается.
func (r *Repository) SoftDeleteVehicleLog(ctx context.Context, id int64, actorID *int64) error {
	query := `UPDATE vehicle_status_logs
		SET is_deleted = TRUE, updated_by = COALESCE($2, updated_by)
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, actorID)
	if err != nil {
		return fmt.Errorf("unexpected statuslog repository softdeletevehiclelog error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return statuslog.ErrVehicleLogNotFound
	}

	return nil
}

func (r *Repository) CreateDriverLog(ctx context.Context, logModify entities.DriverStatusLogModify) (int64, error) {
	query := `INSERT INTO driver_status_logs (driver_id, trip_id, previous_status,
			new_status, changed_reason, remarks, incident_type, incident_description,
			safety_score_before, safety_score_after, changed_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, NOW()), $12)
		RETURNING id`

	var incidentType *string
	if logModify.IncidentType != nil {
		value := logModify.IncidentType.String()
		incidentType = &value
	}

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		logModify.DriverID,
		logModify.TripID,
		logModify.PreviousStatus.String(),
		logModify.NewStatus.String(),
		logModify.ChangedReason.String(),
		logModify.Remarks,
		incidentType,
		logModify.IncidentDescription,
		logModify.SafetyScoreBefore,
		logModify.SafetyScoreAfter,
		logModify.ChangedAt,
		logModify.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected statuslog repository createdriverlog error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetDriverLogByID(ctx context.Context, id int64) (*entities.DriverStatusLog, error) {
	query := `SELECT ` + driverLogColumns + `
		FROM driver_status_logs
		WHERE id = $1 AND is_deleted = FALSE`

	var logModel DriverStatusLogDB
	err := scanDriverLog(r.querier.QueryRow(ctx, query, id), &logModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, statuslog.ErrDriverLogNotFound
		}

		return nil, fmt.Errorf("unexpected statuslog repository getdriverlogbyid error: %w", err)
	}

	return DriverLogToDomain(&logModel), nil
}

func (r *Repository) GetDriverLogs(ctx context.Context, filter entities.DriverStatusLogFilter, page entities.Page) ([]entities.DriverStatusLog, int64, error) {
	where := sq.And{sq.Eq{"is_deleted": false}}

	if filter.DriverID != nil {
		where = append(where, sq.Eq{"driver_id": *filter.DriverID})
	}
	if filter.TripID != nil {
		where = append(where, sq.Eq{"trip_id": *filter.TripID})
	}
	if filter.ChangedReason != nil {
		where = append(where, sq.Eq{"changed_reason": filter.ChangedReason.String()})
	}
	if filter.IncidentType != nil {
		where = append(where, sq.Eq{"incident_type": filter.IncidentType.String()})
	}
	if filter.FromDate != nil {
		where = append(where, sq.GtOrEq{"changed_at": *filter.FromDate})
	}
	if filter.ToDate != nil {
		where = append(where, sq.LtOrEq{"changed_at": *filter.ToDate})
	}

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("driver_status_logs").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getdriverlogs error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getdriverlogs error: %w", err)
	}

	query, args, err := qb.
		Select(driverLogColumns).
		From("driver_status_logs").
		Where(where).
		OrderBy("changed_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getdriverlogs error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getdriverlogs error: %w", err)
	}
	defer rows.Close()

	logModels := make([]DriverStatusLogDB, 0, 8)
	for rows.Next() {
		var logModel DriverStatusLogDB
		err := scanDriverLog(rows, &logModel)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected statuslog repository getdriverlogs error: %w", err)
		}
		logModels = append(logModels, logModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected statuslog repository getdriverlogs error: %w", err)
	}

	return DriverLogToDomainList(logModels), total, nil
}

func (r *Repository) SoftDeleteDriverLog(ctx context.Context, id int64, actorID *int64) error {
	query := `UPDATE driver_status_logs
		SET is_deleted = TRUE, updated_by = COALESCE($2, updated_by)
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, actorID)
	if err != nil {
		return fmt.Errorf("unexpected statuslog repository softdeletedriverlog error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return statuslog.ErrDriverLogNotFound
	}

	return nil
}

func (r *Repository) TripExists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM trips WHERE id = $1 AND is_deleted = FALSE)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected statuslog repository tripexists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) MaintenanceExists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM maintenance_logs WHERE id = $1 AND is_deleted = FALSE)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected statuslog repository maintenanceexists error: %w", err)
	}

	return exists, nil
}

func scanVehicleLog(row pgx.Row, logModel *VehicleStatusLogDB) error {
	return row.Scan(
		&logModel.ID,
		&logModel.VehicleID,
		&logModel.TripID,
		&logModel.MaintenanceID,
		&logModel.PreviousStatus,
		&logModel.NewStatus,
		&logModel.ChangedReason,
		&logModel.Remarks,
		&logModel.OdometerAtChange,
		&logModel.ChangedAt,
		&logModel.CreatedBy,
		&logModel.UpdatedBy,
		&logModel.IsDeleted,
	)
}

func scanDriverLog(row pgx.Row, logModel *DriverStatusLogDB) error {
	return row.Scan(
		&logModel.ID,
		&logModel.DriverID,
		&logModel.TripID,
		&logModel.PreviousStatus,
		&logModel.NewStatus,
		&logModel.ChangedReason,
		&logModel.Remarks,
		&logModel.IncidentType,
		&logModel.IncidentDescription,
		&logModel.SafetyScoreBefore,
		&logModel.SafetyScoreAfter,
		&logModel.ChangedAt,
		&logModel.CreatedBy,
		&logModel.UpdatedBy,
		&logModel.IsDeleted,
	)
}
