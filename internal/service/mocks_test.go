package service

import (
	"context"
	"io"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/events"

	"github.com/stretchr/testify/mock"
)

// MockListingRepo
type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingRepo) Update(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockListingRepo) ListByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Listing, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *MockListingRepo) ListExcludingOwner(ctx context.Context, owner domain.AccountID) ([]domain.Listing, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.Listing), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatusIfPending(ctx context.Context, id string, status domain.BookingStatus, updatedOn time.Time) (bool, error) {
	args := m.Called(ctx, id, status, updatedOn)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) ListByRenter(ctx context.Context, renter domain.AccountID) ([]domain.Booking, error) {
	args := m.Called(ctx, renter)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Booking, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) OwnerStats(ctx context.Context, owner domain.AccountID) (*domain.OwnerStats, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnerStats), args.Error(1)
}

// MockQuoteStore
type MockQuoteStore struct {
	mock.Mock
}

func (m *MockQuoteStore) Save(ctx context.Context, quote *domain.Quote, ttl time.Duration) error {
	args := m.Called(ctx, quote, ttl)
	return args.Error(0)
}
func (m *MockQuoteStore) Get(ctx context.Context, id string) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

// MockImageStorage
type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Save(ctx context.Context, key, contentType string, body io.Reader) (int64, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockImageStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}
func (m *MockImageStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockImageStorage) URL(key string) string {
	return "http://localhost:8081/images/" + key
}

// MockBookingStatsRepo
type MockBookingStatsRepo struct {
	mock.Mock
}

func (m *MockBookingStatsRepo) SnapshotAll(ctx context.Context, snapshotDate time.Time) (int64, error) {
	args := m.Called(ctx, snapshotDate)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockBookingStatsRepo) GetLatest(ctx context.Context, owner domain.AccountID) (*domain.OwnerStats, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnerStats), args.Error(1)
}
