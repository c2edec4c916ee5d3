//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=expense_test
package expense

import (
	"context"

	"fleetops/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, create entities.ExpenseCreate, actorID *int64) (*entities.Expense, error)
	GetByID(ctx context.Context, id int64) (*entities.Expense, error)
	GetAll(ctx context.Context, filter entities.ExpenseFilter, page entities.Page) ([]entities.Expense, int64, error)
	Update(ctx context.Context, expenseModify entities.ExpenseModify) (*entities.Expense, error)
	SoftDelete(ctx context.Context, id int64, actorID *int64) error
}

type TripService interface {
	GetTrip(ctx context.Context, id int64) (*entities.Trip, error)
	RecomputeExpenseCost(ctx context.Context, tripID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
