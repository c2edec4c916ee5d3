package expense

import (
	"context"
	"fmt"
	"strings"

	"fleetops/internal/entities"
)

type Expense struct {
	repository  Repository
	tripService TripService
	txManager   TxManager
}

func New(repository Repository, tripService TripService, txManager TxManager) *Expense {
	return &Expense{
		repository:  repository,
		tripService: tripService,
		txManager:   txManager,
	}
}

// CreateExpense пишет расход; для расходов рейса total_expense_cost
// пересчитывается той же транзакцией.
func (e *Expense) CreateExpense(ctx context.Context, create entities.ExpenseCreate, actorID *int64) (*entities.Expense, error) {
	if strings.TrimSpace(create.ExpenseType) == "" || create.ExpenseDate.IsZero() {
		return nil, ErrMissingRequiredFields
	}
	if create.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var created *entities.Expense
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		if create.TripID != nil {
			_, err := e.tripService.GetTrip(ctx, *create.TripID)
			if err != nil {
				return fmt.Errorf("get trip: %w", err)
			}
		}

		var err error
		created, err = e.repository.Create(ctx, create, actorID)
		if err != nil {
			return fmt.Errorf("create expense: %w", err)
		}

		if create.TripID != nil {
			err = e.tripService.RecomputeExpenseCost(ctx, *create.TripID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (e *Expense) UpdateExpense(ctx context.Context, expenseModify entities.ExpenseModify) (*entities.Expense, error) {
	if expenseModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if expenseModify.Amount != nil && *expenseModify.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var updated *entities.Expense
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = e.repository.Update(ctx, expenseModify)
		if err != nil {
			return fmt.Errorf("update expense: %w", err)
		}

		if expenseModify.Amount != nil && updated.TripID != nil {
			err = e.tripService.RecomputeExpenseCost(ctx, *updated.TripID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (e *Expense) GetExpense(ctx context.Context, id int64) (*entities.Expense, error) {
	expense, err := e.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return expense, nil
}

func (e *Expense) GetExpenses(ctx context.Context, filter entities.ExpenseFilter, page entities.Page) ([]entities.Expense, int64, error) {
	expenses, total, err := e.repository.GetAll(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("get expenses: %w", err)
	}
	return expenses, total, nil
}

func (e *Expense) DeleteExpense(ctx context.Context, id int64, actorID *int64) error {
	return e.txManager.Do(ctx, func(ctx context.Context) error {
		expense, err := e.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get expense: %w", err)
		}

		err = e.repository.SoftDelete(ctx, id, actorID)
		if err != nil {
			return fmt.Errorf("delete expense: %w", err)
		}

		if expense.TripID != nil {
			err = e.tripService.RecomputeExpenseCost(ctx, *expense.TripID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
