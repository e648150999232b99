package repository

import (
	"context"
	"time"

	"farmrent-backend/internal/domain"
)

// Lookups by id return an error wrapping domain.ErrNotFound when nothing matches.

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Listing, error)
	ListExcludingOwner(ctx context.Context, owner domain.AccountID) ([]domain.Listing, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatusIfPending writes status only while the stored status is still
	// PENDING and reports whether a row was changed.
	UpdateStatusIfPending(ctx context.Context, id string, status domain.BookingStatus, updatedOn time.Time) (bool, error)
	ListByRenter(ctx context.Context, renter domain.AccountID) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Booking, error)
	OwnerStats(ctx context.Context, owner domain.AccountID) (*domain.OwnerStats, error)
}

type BookingStatsRepository interface {
	// SnapshotAll stores one row per owner for snapshotDate, replacing an earlier
	// snapshot for the same day, and returns the number of owners written.
	SnapshotAll(ctx context.Context, snapshotDate time.Time) (int64, error)
	GetLatest(ctx context.Context, owner domain.AccountID) (*domain.OwnerStats, error)
}

// QuoteStore keeps issued quotes until they expire.
type QuoteStore interface {
	Save(ctx context.Context, quote *domain.Quote, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Quote, error)
}
