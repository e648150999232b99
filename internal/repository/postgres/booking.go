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

const bookingColumns = `id, equipment_ref, equipment_mode, equipment_name, renter_account_id, owner_account_id, start_date,
	duration_hours, end_date, location, status, price_per_hour, total_price, created_on, updated_on`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, equipment_ref, equipment_mode, equipment_name, renter_account_id, owner_account_id, start_date,
	          duration_hours, location, status, price_per_hour, total_price, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var hours sql.NullInt32
	if b.DurationHours != nil {
		hours = sql.NullInt32{Int32: *b.DurationHours, Valid: true}
	}

	logger.DatabaseCall("CreateBooking", query, "booking_id", b.ID)
	res, err := r.db.ExecContext(ctx, query, b.ID, b.EquipmentRef, string(b.EquipmentMode), b.EquipmentName,
		string(b.RenterAccountID), string(b.OwnerAccountID), b.StartDate, hours, b.Location, string(b.Status),
		b.PricePerHour, b.TotalPrice, b.CreatedOn, b.UpdatedOn)
	logger.DatabaseResult("CreateBooking", rowsAffected(res), err)
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	logger.DatabaseCall("GetBooking", query, "booking_id", id)
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		logger.DatabaseResult("GetBooking", 0, err)
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) UpdateStatusIfPending(ctx context.Context, id string, status domain.BookingStatus, updatedOn time.Time) (bool, error) {
	query := `UPDATE bookings SET status=$1, updated_on=$2 WHERE id=$3 AND status='PENDING'`
	logger.DatabaseCall("UpdateBookingStatus", query, "booking_id", id, "status", status)
	res, err := r.db.ExecContext(ctx, query, string(status), updatedOn, id)
	if err != nil {
		logger.DatabaseResult("UpdateBookingStatus", 0, err)
		return false, err
	}
	n, err := res.RowsAffected()
	logger.DatabaseResult("UpdateBookingStatus", n, err)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *bookingRepository) ListByRenter(ctx context.Context, renter domain.AccountID) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE renter_account_id = $1 ORDER BY created_on ASC, id ASC`
	return r.list(ctx, "ListBookingsByRenter", query, string(renter))
}

func (r *bookingRepository) ListByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE owner_account_id = $1 ORDER BY created_on ASC, id ASC`
	return r.list(ctx, "ListBookingsByOwner", query, string(owner))
}

func (r *bookingRepository) OwnerStats(ctx context.Context, owner domain.AccountID) (*domain.OwnerStats, error) {
	query := `SELECT
	            COUNT(*) FILTER (WHERE status = 'PENDING'),
	            COUNT(*) FILTER (WHERE status = 'CONFIRMED'),
	            COUNT(*) FILTER (WHERE status = 'CANCELLED'),
	            COALESCE(SUM(total_price) FILTER (WHERE status = 'CONFIRMED'), 0)
	          FROM bookings WHERE owner_account_id = $1`
	logger.DatabaseCall("OwnerBookingStats", query, "owner", owner)
	stats := &domain.OwnerStats{OwnerAccountID: owner}
	err := r.db.QueryRowContext(ctx, query, string(owner)).Scan(&stats.Pending, &stats.Confirmed, &stats.Cancelled, &stats.ConfirmedRevenue)
	logger.DatabaseResult("OwnerBookingStats", 1, err)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *bookingRepository) list(ctx context.Context, operation, query string, args ...any) ([]domain.Booking, error) {
	logger.DatabaseCall(operation, query)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult(operation, 0, err)
		return nil, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult(operation, int64(len(bookings)), nil)
	return bookings, nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                   domain.Booking
		mode, renter, owner string
		status              string
		hours               sql.NullInt32
		endDate             sql.NullTime
		equipmentName       sql.NullString
	)
	err := row.Scan(&b.ID, &b.EquipmentRef, &mode, &equipmentName, &renter, &owner, &b.StartDate,
		&hours, &endDate, &b.Location, &status, &b.PricePerHour, &b.TotalPrice, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	b.EquipmentMode = domain.EquipmentMode(mode)
	b.EquipmentName = equipmentName.String
	b.RenterAccountID = domain.AccountID(renter)
	b.OwnerAccountID = domain.AccountID(owner)
	b.Status = domain.BookingStatus(status)
	if hours.Valid {
		h := hours.Int32
		b.DurationHours = &h
	}
	if endDate.Valid {
		end := endDate.Time
		b.EndDate = &end
	}
	return &b, nil
}
