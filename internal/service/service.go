package service

import (
	"context"
	"errors"
	"io"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/location"
	"farmrent-backend/internal/logger"
)

// Every method taking an actor expects the verified account id of the caller.

type LocationService interface {
	Resolve(ctx context.Context, req location.Request) (string, error)
}

// QuoteRequest is the raw booking input: what, when, for how long and where.
type QuoteRequest struct {
	EquipmentRef    string
	StartDate       string
	Hours           int
	Location        string
	RequireLocation bool
}

type QuoteService interface {
	BuildQuote(ctx context.Context, req QuoteRequest) (*domain.Quote, error)
	IssueQuote(ctx context.Context, req QuoteRequest) (*domain.Quote, error)
	GetQuote(ctx context.Context, id string) (*domain.Quote, error)
}

type BookingService interface {
	Create(ctx context.Context, quote *domain.Quote, renter domain.AccountID) (*domain.Booking, error)
	CreateFromQuoteID(ctx context.Context, quoteID string, renter domain.AccountID) (*domain.Booking, error)
	CreateFromRequest(ctx context.Context, req QuoteRequest, renter domain.AccountID) (*domain.Booking, error)
	Get(ctx context.Context, actor domain.AccountID, bookingID string) (*domain.Booking, error)
	Accept(ctx context.Context, actor domain.AccountID, bookingID string) (*domain.Booking, error)
	Reject(ctx context.Context, actor domain.AccountID, bookingID string) (*domain.Booking, error)
	SetStatus(ctx context.Context, actor domain.AccountID, bookingID string, target domain.BookingStatus) (*domain.Booking, error)
	ListForRenter(ctx context.Context, renter domain.AccountID) ([]domain.Booking, error)
	ListForOwner(ctx context.Context, owner domain.AccountID) ([]domain.Booking, error)
}

// ListingInput carries the mutable fields of a listing.
type ListingInput struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=4000"`
	PricePerDay  *float64 `json:"price_per_day" validate:"omitempty,gt=0"`
	PricePerHour *float64 `json:"price_per_hour" validate:"omitempty,gt=0"`
	Image        *string  `json:"image" validate:"omitempty,uri"`
}

type ListingService interface {
	Create(ctx context.Context, actor domain.AccountID, input ListingInput) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	ListByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Listing, error)
	ListOthers(ctx context.Context, actor domain.AccountID) ([]domain.Listing, error)
	Update(ctx context.Context, actor domain.AccountID, id string, input ListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, actor domain.AccountID, id string) error
	AttachImage(ctx context.Context, actor domain.AccountID, id, filename, contentType string, body io.Reader) (*domain.Listing, error)
}

type StatsService interface {
	GetOwnerStats(ctx context.Context, actor, owner domain.AccountID) (*domain.OwnerStats, error)
	GetLatestSnapshot(ctx context.Context, actor, owner domain.AccountID) (*domain.OwnerStats, error)
}

// exitWithError logs the failed exit of method. Errors the caller caused are
// expected traffic and stay at debug level.
func exitWithError(method string, err error, args ...any) {
	if isClientError(err) {
		logger.ExitMethod(method, append(args, "error", err.Error())...)
		return
	}
	logger.ExitMethodWithError(method, err, args...)
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrLocationUnresolvable)
}
