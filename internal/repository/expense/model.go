package expense

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type ExpenseDB struct {
	ID            int64
	TripID        *int64
	ExpenseType   string
	Amount        float64
	Description   *string
	ExpenseDate   time.Time
	ReceiptNumber *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     *int64
	UpdatedBy     *int64
	IsDeleted     bool
}
