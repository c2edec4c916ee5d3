//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=expenses_get_test
package expenses_get

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
	GetExpenses(ctx context.Context, filter entities.ExpenseFilter, page entities.Page) ([]entities.Expense, int64, error)
}
