package jobs

import (
	"context"
	"time"

	"farmrent-backend/internal/logger"
)

const snapshotTimeout = 5 * time.Minute

// SnapshotBookingStats stores today's per-owner booking counts and confirmed revenue.
// Running it twice on the same UTC day replaces the earlier rows.
func (jr *JobRunner) SnapshotBookingStats() {
	jr.runWithRecovery("SnapshotBookingStats", func() {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		now := jr.now().UTC()
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		owners, err := jr.stats.SnapshotAll(ctx, day)
		if err != nil {
			logger.Error("Failed to snapshot booking stats", "date", day.Format("2006-01-02"), "error", err)
			return
		}

		logger.Info("Booking stats snapshot stored", "date", day.Format("2006-01-02"), "owners", owners)
	})
}
