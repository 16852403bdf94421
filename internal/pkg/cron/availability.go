package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/availability"
)

// NewPatternExpiryJob deactivates availability patterns whose
// valid_until date has passed, across all tenants.
func NewPatternExpiryJob(patternRepo availability.PatternRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		expired, err := patternRepo.DeactivateExpired(ctx, time.Now())
		if err != nil {
			return err
		}
		if expired > 0 {
			slog.Info("expired availability patterns deactivated", "count", expired)
		}
		return nil
	}
}
