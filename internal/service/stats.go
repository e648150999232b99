package service

import (
	"context"
	"fmt"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository"
)

type statsService struct {
	bookingRepo repository.BookingRepository
	snapshots   repository.BookingStatsRepository
}

func NewStatsService(bookingRepo repository.BookingRepository, snapshots repository.BookingStatsRepository) StatsService {
	return &statsService{bookingRepo: bookingRepo, snapshots: snapshots}
}

// GetOwnerStats counts the owner's bookings per status. Revenue sums the frozen totals of confirmed bookings.
func (s *statsService) GetOwnerStats(ctx context.Context, actor, owner domain.AccountID) (*domain.OwnerStats, error) {
	if actor != owner {
		return nil, fmt.Errorf("stats for %s: %w", owner, domain.ErrForbidden)
	}
	return s.bookingRepo.OwnerStats(ctx, owner)
}

// GetLatestSnapshot returns the most recent nightly snapshot for owner.
func (s *statsService) GetLatestSnapshot(ctx context.Context, actor, owner domain.AccountID) (*domain.OwnerStats, error) {
	logger.EnterMethod("statsService.GetLatestSnapshot", "owner", owner)
	if actor != owner {
		err := fmt.Errorf("stats for %s: %w", owner, domain.ErrForbidden)
		exitWithError("statsService.GetLatestSnapshot", err)
		return nil, err
	}
	stats, err := s.snapshots.GetLatest(ctx, owner)
	if err != nil {
		exitWithError("statsService.GetLatestSnapshot", err, "owner", owner)
		return nil, err
	}
	logger.ExitMethod("statsService.GetLatestSnapshot", "snapshotDate", stats.SnapshotDate)
	return stats, nil
}
