package license_expiry

import (
	"context"
	"time"

	"fleetops/pkg/logger"
)

type Service interface {
	InvalidateExpiredLicenses(ctx context.Context) (int64, error)
}

type LicenseExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewLicenseExpiry(log logger.Logger, service Service, interval time.Duration) *LicenseExpiry {
	return &LicenseExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (l *LicenseExpiry) TTL() time.Duration {
	return l.interval
}

func (l *LicenseExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	rowsAffected, err := l.service.InvalidateExpiredLicenses(ctxWithTimeout)

	if rowsAffected > 0 {
		l.log.With(
			logger.NewField("expired_licenses", rowsAffected),
		).Info("license expiry sweep")
	}

	return err
}

func (l *LicenseExpiry) Info() string {
	return "license expiry sweep"
}
