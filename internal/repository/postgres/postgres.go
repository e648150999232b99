package postgres

import (
	"database/sql"

	"farmrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ListingRepository
	repository.BookingRepository
	repository.BookingStatsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ListingRepository:      NewListingRepository(db),
		BookingRepository:      NewBookingRepository(db),
		BookingStatsRepository: NewBookingStatsRepository(db),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}
