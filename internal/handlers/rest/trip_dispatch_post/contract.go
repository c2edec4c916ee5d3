//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_dispatch_post_test
package trip_dispatch_post

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
	DispatchTrip(ctx context.Context, tripID int64, actorID *int64) (*entities.Trip, error)
}
