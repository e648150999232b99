package http_test

import (
	"context"
	"io"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/location"
	"farmrent-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockLocationService
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Resolve(ctx context.Context, req location.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) quote(args mock.Arguments) (*domain.Quote, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteService) BuildQuote(ctx context.Context, req service.QuoteRequest) (*domain.Quote, error) {
	return m.quote(m.Called(ctx, req))
}
func (m *MockQuoteService) IssueQuote(ctx context.Context, req service.QuoteRequest) (*domain.Quote, error) {
	return m.quote(m.Called(ctx, req))
}
func (m *MockQuoteService) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	return m.quote(m.Called(ctx, id))
}

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) booking(args mock.Arguments) (*domain.Booking, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) Create(ctx context.Context, quote *domain.Quote, renter domain.AccountID) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, quote, renter))
}
func (m *MockBookingService) CreateFromQuoteID(ctx context.Context, quoteID string, renter domain.AccountID) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, quoteID, renter))
}
func (m *MockBookingService) CreateFromRequest(ctx context.Context, req service.QuoteRequest, renter domain.AccountID) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, req, renter))
}
func (m *MockBookingService) Get(ctx context.Context, actor domain.AccountID, id string) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, id))
}
func (m *MockBookingService) Accept(ctx context.Context, actor domain.AccountID, id string) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, id))
}
func (m *MockBookingService) Reject(ctx context.Context, actor domain.AccountID, id string) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, id))
}
func (m *MockBookingService) SetStatus(ctx context.Context, actor domain.AccountID, id string, target domain.BookingStatus) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, actor, id, target))
}
func (m *MockBookingService) ListForRenter(ctx context.Context, renter domain.AccountID) ([]domain.Booking, error) {
	args := m.Called(ctx, renter)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListForOwner(ctx context.Context, owner domain.AccountID) ([]domain.Booking, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockListingService
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) listing(args mock.Arguments) (*domain.Listing, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingService) Create(ctx context.Context, actor domain.AccountID, input service.ListingInput) (*domain.Listing, error) {
	return m.listing(m.Called(ctx, actor, input))
}
func (m *MockListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return m.listing(m.Called(ctx, id))
}
func (m *MockListingService) ListByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Listing, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *MockListingService) ListOthers(ctx context.Context, actor domain.AccountID) ([]domain.Listing, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *MockListingService) Update(ctx context.Context, actor domain.AccountID, id string, input service.ListingInput) (*domain.Listing, error) {
	return m.listing(m.Called(ctx, actor, id, input))
}
func (m *MockListingService) Delete(ctx context.Context, actor domain.AccountID, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
func (m *MockListingService) AttachImage(ctx context.Context, actor domain.AccountID, id, filename, contentType string, body io.Reader) (*domain.Listing, error) {
	return m.listing(m.Called(ctx, actor, id, filename, contentType, body))
}

// MockStatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetOwnerStats(ctx context.Context, actor, owner domain.AccountID) (*domain.OwnerStats, error) {
	args := m.Called(ctx, actor, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnerStats), args.Error(1)
}
func (m *MockStatsService) GetLatestSnapshot(ctx context.Context, actor, owner domain.AccountID) (*domain.OwnerStats, error) {
	args := m.Called(ctx, actor, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnerStats), args.Error(1)
}
