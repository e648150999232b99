package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"farmrent-backend/internal/config"
	"farmrent-backend/internal/jobs"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository/postgres"
	"farmrent-backend/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'snapshot-booking-stats', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting FarmRent Cronjob Runner...", "log_level", cfg.Log.Level)

	db, err := postgres.Open(context.Background(), cfg)
	if err != nil {
		logger.Error("Database unavailable", "error", err)
		log.Fatalf("Database unavailable: %v", err)
	}
	defer db.Close()

	store := postgres.NewStore(db)
	jobRunner := jobs.NewJobRunner(store.BookingStatsRepository, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	if !cronScheduler.IsRunning() {
		log.Fatalf("No cron jobs registered; check scheduler.snapshot_booking_stats (%q)", cfg.Scheduler.SnapshotBookingStats)
	}

	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.", "next_run", cronScheduler.NextRun())

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "snapshot-booking-stats":
		jobRunner.SnapshotBookingStats()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - snapshot-booking-stats\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
