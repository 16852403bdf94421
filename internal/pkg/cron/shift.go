package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/shift"
)

// NewShiftCompletionJob moves published and closed shifts whose date
// has passed to COMPLETED, across all tenants.
func NewShiftCompletionJob(shiftRepo shift.ShiftRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		completed, err := shiftRepo.CompleteElapsed(ctx, time.Now())
		if err != nil {
			return err
		}
		if completed > 0 {
			slog.Info("elapsed shifts completed", "count", completed)
		}
		return nil
	}
}
