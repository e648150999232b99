package jobs

import (
	"time"

	"farmrent-backend/internal/config"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	stats  repository.BookingStatsRepository
	config *config.Config
	now    func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(stats repository.BookingStatsRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		stats:  stats,
		config: cfg,
		now:    time.Now,
	}
}

// Config exposes the configuration the scheduler reads its cron specs from.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	log := logger.WithService("jobs").With("job", jobName)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Job panicked", "panic", r)
		}
	}()

	start := time.Now()
	log.Info("Starting job")
	jobFunc()
	log.Info("Job completed", "elapsed", time.Since(start))
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SnapshotBookingStats()
}
