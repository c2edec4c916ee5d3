package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleetops/internal/entities"
	"fleetops/internal/repository"
	"fleetops/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, shipment_code, description, cargo_weight_kg, cargo_volume_m3,
	cargo_type, origin_address, destination_address, sender_name, sender_phone,
	receiver_name, receiver_phone, declared_value, delivery_charge, status,
	created_at, updated_at, created_by, updated_by, is_deleted`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (int64, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)
	query := `INSERT INTO shipments (shipment_code, description, cargo_weight_kg, cargo_volume_m3,
			cargo_type, origin_address, destination_address, sender_name, sender_phone,
			receiver_name, receiver_phone, declared_value, delivery_charge, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, COALESCE($14, 'Pending'), $15)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyModel.ShipmentCode,
		shipmentModifyModel.Description,
		shipmentModifyModel.CargoWeightKg,
		shipmentModifyModel.CargoVolumeM3,
		shipmentModifyModel.CargoType,
		shipmentModifyModel.OriginAddress,
		shipmentModifyModel.DestinationAddress,
		shipmentModifyModel.SenderName,
		shipmentModifyModel.SenderPhone,
		shipmentModifyModel.ReceiverName,
		shipmentModifyModel.ReceiverPhone,
		shipmentModifyModel.DeclaredValue,
		shipmentModifyModel.DeliveryCharge,
		shipmentModifyModel.Status,
		shipmentModifyModel.UpdatedBy,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, shipment.ErrConflict
		}
		return 0, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1 AND is_deleted = FALSE`

	shipmentModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) GetAll(ctx context.Context, includeDeleted bool) ([]entities.Shipment, error) {
	builder := qb.
		Select(shipmentColumns).
		From("shipments").
		OrderBy("id")

	if !includeDeleted {
		builder = builder.Where(sq.Eq{"is_deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentModel ShipmentDB
		err := rows.Scan(
			&shipmentModel.ID,
			&shipmentModel.ShipmentCode,
			&shipmentModel.Description,
			&shipmentModel.CargoWeightKg,
			&shipmentModel.CargoVolumeM3,
			&shipmentModel.CargoType,
			&shipmentModel.OriginAddress,
			&shipmentModel.DestinationAddress,
			&shipmentModel.SenderName,
			&shipmentModel.SenderPhone,
			&shipmentModel.ReceiverName,
			&shipmentModel.ReceiverPhone,
			&shipmentModel.DeclaredValue,
			&shipmentModel.DeliveryCharge,
			&shipmentModel.Status,
			&shipmentModel.CreatedAt,
			&shipmentModel.UpdatedAt,
			&shipmentModel.CreatedBy,
			&shipmentModel.UpdatedBy,
			&shipmentModel.IsDeleted,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("shipments")

	// опциональные поля
	if shipmentModifyModel.ShipmentCode != nil {
		builder = builder.Set("shipment_code", shipmentModifyModel.ShipmentCode)
	}
	if shipmentModifyModel.Description != nil {
		builder = builder.Set("description", shipmentModifyModel.Description)
	}
	if shipmentModifyModel.CargoWeightKg != nil {
		builder = builder.Set("cargo_weight_kg", shipmentModifyModel.CargoWeightKg)
	}
	if shipmentModifyModel.CargoVolumeM3 != nil {
		builder = builder.Set("cargo_volume_m3", shipmentModifyModel.CargoVolumeM3)
	}
	if shipmentModifyModel.CargoType != nil {
		builder = builder.Set("cargo_type", shipmentModifyModel.CargoType)
	}
	if shipmentModifyModel.OriginAddress != nil {
		builder = builder.Set("origin_address", shipmentModifyModel.OriginAddress)
	}
	if shipmentModifyModel.DestinationAddress != nil {
		builder = builder.Set("destination_address", shipmentModifyModel.DestinationAddress)
	}
	if shipmentModifyModel.SenderName != nil {
		builder = builder.Set("sender_name", shipmentModifyModel.SenderName)
	}
	if shipmentModifyModel.SenderPhone != nil {
		builder = builder.Set("sender_phone", shipmentModifyModel.SenderPhone)
	}
	if shipmentModifyModel.ReceiverName != nil {
		builder = builder.Set("receiver_name", shipmentModifyModel.ReceiverName)
	}
	if shipmentModifyModel.ReceiverPhone != nil {
		builder = builder.Set("receiver_phone", shipmentModifyModel.ReceiverPhone)
	}
	if shipmentModifyModel.DeclaredValue != nil {
		builder = builder.Set("declared_value", shipmentModifyModel.DeclaredValue)
	}
	if shipmentModifyModel.DeliveryCharge != nil {
		builder = builder.Set("delivery_charge", shipmentModifyModel.DeliveryCharge)
	}
	if shipmentModifyModel.Status != nil {
		builder = builder.Set("status", shipmentModifyModel.Status)
	}
	if shipmentModifyModel.UpdatedBy != nil {
		builder = builder.Set("updated_by", shipmentModifyModel.UpdatedBy)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyModel.ID, "is_deleted": false}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	shipmentModel, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}

		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

// UpdateStatus меняет статус, только если живая строка всё ещё в from.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.ShipmentStatusType, actorID *int64) error {
	query := `UPDATE shipments
		SET status = $3, updated_at = NOW(), updated_by = COALESCE($4, updated_by)
		WHERE id = $1 AND status = $2 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String(), actorID)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrStatusConflict
	}

	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64, actorID *int64) error {
	query := `UPDATE shipments
		SET is_deleted = TRUE, updated_at = NOW(), updated_by = COALESCE($2, updated_by)
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, actorID)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository softdelete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*ShipmentDB, error) {
	var shipmentModel ShipmentDB
	err := row.Scan(
		&shipmentModel.ID,
		&shipmentModel.ShipmentCode,
		&shipmentModel.Description,
		&shipmentModel.CargoWeightKg,
		&shipmentModel.CargoVolumeM3,
		&shipmentModel.CargoType,
		&shipmentModel.OriginAddress,
		&shipmentModel.DestinationAddress,
		&shipmentModel.SenderName,
		&shipmentModel.SenderPhone,
		&shipmentModel.ReceiverName,
		&shipmentModel.ReceiverPhone,
		&shipmentModel.DeclaredValue,
		&shipmentModel.DeliveryCharge,
		&shipmentModel.Status,
		&shipmentModel.CreatedAt,
		&shipmentModel.UpdatedAt,
		&shipmentModel.CreatedBy,
		&shipmentModel.UpdatedBy,
		&shipmentModel.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &shipmentModel, nil
}
