//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=expense_put_test
package expense_put

import (
	"context"

	"fleetops/internal/entities"
	"fleetops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateExpense(ctx context.Context, expenseModify entities.ExpenseModify) (*entities.Expense, error)
}
