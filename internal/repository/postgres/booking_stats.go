package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository"
)

type bookingStatsRepository struct {
	db *sql.DB
}

func NewBookingStatsRepository(db *sql.DB) repository.BookingStatsRepository {
	return &bookingStatsRepository{db: db}
}

func (r *bookingStatsRepository) SnapshotAll(ctx context.Context, snapshotDate time.Time) (int64, error) {
	query := `INSERT INTO booking_stats (owner_account_id, snapshot_date, pending, confirmed, cancelled, confirmed_revenue, created_on)
	          SELECT owner_account_id, $1,
	                 COUNT(*) FILTER (WHERE status = 'PENDING'),
	                 COUNT(*) FILTER (WHERE status = 'CONFIRMED'),
	                 COUNT(*) FILTER (WHERE status = 'CANCELLED'),
	                 COALESCE(SUM(total_price) FILTER (WHERE status = 'CONFIRMED'), 0),
	                 $2
	          FROM bookings
	          GROUP BY owner_account_id
	          ON CONFLICT (owner_account_id, snapshot_date) DO UPDATE SET
	                 pending = EXCLUDED.pending,
	                 confirmed = EXCLUDED.confirmed,
	                 cancelled = EXCLUDED.cancelled,
	                 confirmed_revenue = EXCLUDED.confirmed_revenue,
	                 created_on = EXCLUDED.created_on`
	logger.DatabaseCall("SnapshotBookingStats", query, "snapshot_date", snapshotDate.Format("2006-01-02"))
	res, err := r.db.ExecContext(ctx, query, snapshotDate, time.Now().UTC())
	if err != nil {
		logger.DatabaseResult("SnapshotBookingStats", 0, err)
		return 0, err
	}
	n, err := res.RowsAffected()
	logger.DatabaseResult("SnapshotBookingStats", n, err)
	return n, err
}

func (r *bookingStatsRepository) GetLatest(ctx context.Context, owner domain.AccountID) (*domain.OwnerStats, error) {
	query := `SELECT pending, confirmed, cancelled, confirmed_revenue, snapshot_date
	          FROM booking_stats WHERE owner_account_id = $1 ORDER BY snapshot_date DESC LIMIT 1`
	logger.DatabaseCall("GetLatestBookingStats", query, "owner", owner)
	stats := &domain.OwnerStats{OwnerAccountID: owner}
	err := r.db.QueryRowContext(ctx, query, string(owner)).Scan(&stats.Pending, &stats.Confirmed, &stats.Cancelled, &stats.ConfirmedRevenue, &stats.SnapshotDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking stats for %s: %w", owner, domain.ErrNotFound)
	}
	logger.DatabaseResult("GetLatestBookingStats", 1, err)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
