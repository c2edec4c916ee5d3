package expense

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleetops/internal/entities"
	"fleetops/internal/service/expense"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const expenseColumns = `id, trip_id, expense_type, amount, description, expense_date,
	receipt_number, created_at, updated_at, created_by, updated_by, is_deleted`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, create entities.ExpenseCreate, actorID *int64) (*entities.Expense, error) {
	query := `INSERT INTO expenses (trip_id, expense_type, amount, description, expense_date,
			receipt_number, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + expenseColumns

	expenseModel, err := r.scanOne(r.querier.QueryRow(
		ctx,
		query,
		create.TripID,
		create.ExpenseType,
		create.Amount,
		create.Description,
		create.ExpenseDate,
		create.ReceiptNumber,
		actorID,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected expense repository create error: %w", err)
	}

	return ToDomain(expenseModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE id = $1 AND is_deleted = FALSE`

	expenseModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, expense.ErrExpenseNotFound
		}

		return nil, fmt.Errorf("unexpected expense repository getbyid error: %w", err)
	}

	return ToDomain(expenseModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.ExpenseFilter, page entities.Page) ([]entities.Expense, int64, error) {
	where := sq.And{sq.Eq{"is_deleted": false}}

	if filter.TripID != nil {
		where = append(where, sq.Eq{"trip_id": *filter.TripID})
	}
	if filter.ExpenseType != nil {
		where = append(where, sq.Eq{"expense_type": *filter.ExpenseType})
	}
	if filter.FromDate != nil {
		where = append(where, sq.GtOrEq{"expense_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		where = append(where, sq.LtOrEq{"expense_date": *filter.ToDate})
	}

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("expenses").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected expense repository getall error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected expense repository getall error: %w", err)
	}

	query, args, err := qb.
		Select(expenseColumns).
		From("expenses").
		Where(where).
		OrderBy("expense_date DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected expense repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected expense repository getall error: %w", err)
	}
	defer rows.Close()

	expenseModels := make([]ExpenseDB, 0, 8)
	for rows.Next() {
		var expenseModel ExpenseDB
		err := scanInto(rows, &expenseModel)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected expense repository getall error: %w", err)
		}
		expenseModels = append(expenseModels, expenseModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected expense repository getall error: %w", err)
	}

	return ToDomainList(expenseModels), total, nil
}

func (r *Repository) Update(ctx context.Context, expenseModifyEntity entities.ExpenseModify) (*entities.Expense, error) {
	builder := qb.
		Update("expenses")

	// опциональные поля
	if expenseModifyEntity.ExpenseType != nil {
		builder = builder.Set("expense_type", expenseModifyEntity.ExpenseType)
	}
	if expenseModifyEntity.Amount != nil {
		builder = builder.Set("amount", expenseModifyEntity.Amount)
	}
	if expenseModifyEntity.Description != nil {
		builder = builder.Set("description", expenseModifyEntity.Description)
	}
	if expenseModifyEntity.ExpenseDate != nil {
		builder = builder.Set("expense_date", expenseModifyEntity.ExpenseDate)
	}
	if expenseModifyEntity.ReceiptNumber != nil {
		builder = builder.Set("receipt_number", expenseModifyEntity.ReceiptNumber)
	}
	if expenseModifyEntity.UpdatedBy != nil {
		builder = builder.Set("updated_by", expenseModifyEntity.UpdatedBy)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": expenseModifyEntity.ID, "is_deleted": false}).
		Suffix("RETURNING " + expenseColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected expense repository update error: %w", err)
	}

	expenseModel, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, expense.ErrExpenseNotFound
		}

		return nil, fmt.Errorf("unexpected expense repository update error: %w", err)
	}

	return ToDomain(expenseModel), nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int64, actorID *int64) error {
	query := `UPDATE expenses
		SET is_deleted = TRUE, updated_at = NOW(), updated_by = COALESCE($2, updated_by)
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.querier.Exec(ctx, query, id, actorID)
	if err != nil {
		return fmt.Errorf("unexpected expense repository softdelete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*ExpenseDB, error) {
	var expenseModel ExpenseDB
	err := scanInto(row, &expenseModel)
	if err != nil {
		return nil, err
	}
	return &expenseModel, nil
}

func scanInto(row pgx.Row, expenseModel *ExpenseDB) error {
	return row.Scan(
		&expenseModel.ID,
		&expenseModel.TripID,
		&expenseModel.ExpenseType,
		&expenseModel.Amount,
		&expenseModel.Description,
		&expenseModel.ExpenseDate,
		&expenseModel.ReceiptNumber,
		&expenseModel.CreatedAt,
		&expenseModel.UpdatedAt,
		&expenseModel.CreatedBy,
		&expenseModel.UpdatedBy,
		&expenseModel.IsDeleted,
	)
}
