package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository"
)

const listingColumns = `id, owner_account_id, name, description, price_per_day, price_per_hour, image, created_on, updated_on`

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, owner_account_id, name, description, price_per_day, price_per_hour, image, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	logger.DatabaseCall("CreateListing", query, "listing_id", l.ID)
	res, err := r.db.ExecContext(ctx, query, l.ID, string(l.OwnerAccountID), l.Name, l.Description,
		nullFloat(l.PricePerDay), nullFloat(l.PricePerHour), nullString(l.Image), l.CreatedOn, l.UpdatedOn)
	logger.DatabaseResult("CreateListing", rowsAffected(res), err)
	return err
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	logger.DatabaseCall("GetListing", query, "listing_id", id)
	l, err := scanListing(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		logger.DatabaseResult("GetListing", 0, err)
		return nil, err
	}
	return l, nil
}

func (r *listingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings SET name=$1, description=$2, price_per_day=$3, price_per_hour=$4, image=$5, updated_on=$6 WHERE id=$7`
	logger.DatabaseCall("UpdateListing", query, "listing_id", l.ID)
	res, err := r.db.ExecContext(ctx, query, l.Name, l.Description, nullFloat(l.PricePerDay), nullFloat(l.PricePerHour),
		nullString(l.Image), l.UpdatedOn, l.ID)
	n := rowsAffected(res)
	logger.DatabaseResult("UpdateListing", n, err)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("listing %s: %w", l.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the listing row only. Bookings keep their equipment_ref.
func (r *listingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM listings WHERE id = $1`
	logger.DatabaseCall("DeleteListing", query, "listing_id", id)
	res, err := r.db.ExecContext(ctx, query, id)
	n := rowsAffected(res)
	logger.DatabaseResult("DeleteListing", n, err)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *listingRepository) ListByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE owner_account_id = $1 ORDER BY created_on ASC, id ASC`
	return r.list(ctx, "ListListingsByOwner", query, string(owner))
}

func (r *listingRepository) ListExcludingOwner(ctx context.Context, owner domain.AccountID) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE owner_account_id <> $1 ORDER BY created_on DESC, id ASC`
	return r.list(ctx, "ListListingsExcludingOwner", query, string(owner))
}

func (r *listingRepository) list(ctx context.Context, operation, query string, args ...any) ([]domain.Listing, error) {
	logger.DatabaseCall(operation, query)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult(operation, 0, err)
		return nil, err
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult(operation, int64(len(listings)), nil)
	return listings, nil
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var (
		l       domain.Listing
		owner   string
		perDay  sql.NullFloat64
		perHour sql.NullFloat64
		image   sql.NullString
	)
	if err := row.Scan(&l.ID, &owner, &l.Name, &l.Description, &perDay, &perHour, &image, &l.CreatedOn, &l.UpdatedOn); err != nil {
		return nil, err
	}
	l.OwnerAccountID = domain.AccountID(owner)
	if perDay.Valid {
		l.PricePerDay = &perDay.Float64
	}
	if perHour.Valid {
		l.PricePerHour = &perHour.Float64
	}
	if image.Valid {
		l.Image = &image.String
	}
	return &l, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}
