package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listingRowColumns = []string{"id", "owner_account_id", "name", "description", "price_per_day", "price_per_hour", "image", "created_on", "updated_on"}

func TestListingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewListingRepository(db)
	ctx := context.Background()

	perDay := 2400.0
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	listing := &domain.Listing{
		ID:             "lst-1",
		OwnerAccountID: "owner-1",
		Name:           "Old tractor",
		Description:    "Runs fine",
		PricePerDay:    &perDay,
		CreatedOn:      now,
		UpdatedOn:      now,
	}

	mock.ExpectExec("INSERT INTO listings").
		WithArgs("lst-1", "owner-1", "Old tractor", "Runs fine", 2400.0, nil, nil, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, listing)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewListingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows(listingRowColumns).
			AddRow("lst-1", "owner-1", "Sprayer", "", nil, 60.0, "/images/sprayer.jpg", now, now)
		mock.ExpectQuery("SELECT (.+) FROM listings WHERE id = \\$1").
			WithArgs("lst-1").
			WillReturnRows(rows)

		l, err := repo.GetByID(ctx, "lst-1")
		require.NoError(t, err)
		assert.Equal(t, domain.AccountID("owner-1"), l.OwnerAccountID)
		assert.Nil(t, l.PricePerDay)
		require.NotNil(t, l.PricePerHour)
		assert.Equal(t, 60.0, *l.PricePerHour)
		require.NotNil(t, l.Image)
		assert.Equal(t, "/images/sprayer.jpg", *l.Image)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM listings WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(listingRowColumns))

		l, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, l)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_UpdateDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewListingRepository(db)
	ctx := context.Background()
	perHour := 75.0
	listing := &domain.Listing{ID: "lst-1", Name: "Baler", PricePerHour: &perHour, UpdatedOn: time.Now().UTC()}

	t.Run("Update", func(t *testing.T) {
		mock.ExpectExec("UPDATE listings SET").
			WithArgs("Baler", "", nil, 75.0, nil, sqlmock.AnyArg(), "lst-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.Update(ctx, listing))
	})

	t.Run("Update Missing Row", func(t *testing.T) {
		mock.ExpectExec("UPDATE listings SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		err := repo.Update(ctx, listing)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM listings WHERE id = \\$1").
			WithArgs("lst-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.Delete(ctx, "lst-1"))
	})

	t.Run("Delete Missing Row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM listings WHERE id = \\$1").
			WithArgs("lst-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		err := repo.Delete(ctx, "lst-1")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Lists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewListingRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("By Owner", func(t *testing.T) {
		rows := sqlmock.NewRows(listingRowColumns).
			AddRow("a", "owner-1", "A", "", 100.0, nil, nil, now, now).
			AddRow("b", "owner-1", "B", "", nil, 10.0, nil, now, now)
		mock.ExpectQuery("FROM listings WHERE owner_account_id = \\$1 ORDER BY created_on ASC, id ASC").
			WithArgs("owner-1").
			WillReturnRows(rows)

		listings, err := repo.ListByOwner(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, listings, 2)
		assert.Equal(t, "a", listings[0].ID)
		assert.Equal(t, "b", listings[1].ID)
	})

	t.Run("Excluding Owner Empty", func(t *testing.T) {
		mock.ExpectQuery("FROM listings WHERE owner_account_id <> \\$1").
			WithArgs("owner-1").
			WillReturnRows(sqlmock.NewRows(listingRowColumns))

		listings, err := repo.ListExcludingOwner(ctx, "owner-1")
		require.NoError(t, err)
		assert.NotNil(t, listings)
		assert.Empty(t, listings)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
