//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=expense_delete_test
package expense_delete

import (
	"context"

	"fleetops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteExpense(ctx context.Context, id int64, actorID *int64) error
}
