package service

import (
	"context"
	"fmt"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/events"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	quotes      QuoteService
	publisher   events.Publisher
	now         func() time.Time
}

func NewBookingService(bookingRepo repository.BookingRepository, quotes QuoteService, publisher events.Publisher) BookingService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &bookingService{
		bookingRepo: bookingRepo,
		quotes:      quotes,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Create turns a still valid quote into a PENDING booking. The quoted price is copied
// onto the booking and never recomputed.
func (s *bookingService) Create(ctx context.Context, quote *domain.Quote, renter domain.AccountID) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.Create", "renter", renter)

	if renter.IsZero() {
		err := fmt.Errorf("%w: renter account is required", domain.ErrValidation)
		exitWithError("bookingService.Create", err)
		return nil, err
	}
	now := s.now().UTC()
	if err := quote.Validate(now); err != nil {
		exitWithError("bookingService.Create", err, "renter", renter)
		return nil, err
	}

	hours := quote.DurationHours
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		EquipmentRef:    quote.EquipmentRef,
		EquipmentMode:   quote.EquipmentMode,
		EquipmentName:   quote.EquipmentName,
		RenterAccountID: renter,
		OwnerAccountID:  quote.OwnerAccountID,
		StartDate:       quote.StartDate,
		DurationHours:   &hours,
		Location:        quote.Location,
		Status:          domain.BookingStatusPending,
		PricePerHour:    quote.PricePerHour,
		TotalPrice:      quote.TotalPrice,
		CreatedOn:       now,
		UpdatedOn:       now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		logger.ExitMethodWithError("bookingService.Create", err, "renter", renter)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, booking)
	logger.ExitMethod("bookingService.Create", "bookingID", booking.ID, "totalPrice", booking.TotalPrice)
	return booking, nil
}

func (s *bookingService) CreateFromQuoteID(ctx context.Context, quoteID string, renter domain.AccountID) (*domain.Booking, error) {
	quote, err := s.quotes.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, quote, renter)
}

// CreateFromRequest quotes and books in one step. Location is mandatory here.
func (s *bookingService) CreateFromRequest(ctx context.Context, req QuoteRequest, renter domain.AccountID) (*domain.Booking, error) {
	req.RequireLocation = true
	quote, err := s.quotes.BuildQuote(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, quote, renter)
}

func (s *bookingService) Get(ctx context.Context, actor domain.AccountID, bookingID string) (*domain.Booking, error) {
	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, fmt.Errorf("booking %q: %w", bookingID, domain.ErrNotFound)
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsParty(actor) {
		return nil, fmt.Errorf("booking %s: %w", bookingID, domain.ErrForbidden)
	}
	return booking, nil
}

func (s *bookingService) Accept(ctx context.Context, actor domain.AccountID, bookingID string) (*domain.Booking, error) {
	return s.decide(ctx, "bookingService.Accept", actor, bookingID, domain.BookingStatusConfirmed)
}

func (s *bookingService) Reject(ctx context.Context, actor domain.AccountID, bookingID string) (*domain.Booking, error) {
	return s.decide(ctx, "bookingService.Reject", actor, bookingID, domain.BookingStatusCancelled)
}

func (s *bookingService) SetStatus(ctx context.Context, actor domain.AccountID, bookingID string, target domain.BookingStatus) (*domain.Booking, error) {
	switch target {
	case domain.BookingStatusConfirmed:
		return s.Accept(ctx, actor, bookingID)
	case domain.BookingStatusCancelled:
		return s.Reject(ctx, actor, bookingID)
	case domain.BookingStatusPending:
		return nil, fmt.Errorf("booking %s cannot move back to %s: %w", bookingID, target, domain.ErrInvalidTransition)
	default:
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, target)
	}
}

// decide moves a PENDING booking to target on behalf of its owner. Ownership is checked
// before status, so a stranger always gets Forbidden.
func (s *bookingService) decide(ctx context.Context, method string, actor domain.AccountID, bookingID string, target domain.BookingStatus) (*domain.Booking, error) {
	logger.EnterMethod(method, "bookingID", bookingID, "actor", actor)

	if _, err := uuid.Parse(bookingID); err != nil {
		err := fmt.Errorf("booking %q: %w", bookingID, domain.ErrNotFound)
		exitWithError(method, err, "bookingID", bookingID)
		return nil, err
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		exitWithError(method, err, "bookingID", bookingID)
		return nil, err
	}
	if booking.OwnerAccountID != actor {
		err := fmt.Errorf("booking %s: only the owner may change its status: %w", bookingID, domain.ErrForbidden)
		exitWithError(method, err, "bookingID", bookingID)
		return nil, err
	}
	if !booking.Status.CanTransitionTo(target) {
		err := fmt.Errorf("booking %s is %s: %w", bookingID, booking.Status, domain.ErrInvalidTransition)
		exitWithError(method, err, "bookingID", bookingID)
		return nil, err
	}

	now := s.now().UTC()
	updated, err := s.bookingRepo.UpdateStatusIfPending(ctx, bookingID, target, now)
	if err != nil {
		logger.ExitMethodWithError(method, err, "bookingID", bookingID)
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if !updated {
		// Another request decided the booking between our read and write.
		err := fmt.Errorf("booking %s is no longer pending: %w", bookingID, domain.ErrInvalidTransition)
		exitWithError(method, err, "bookingID", bookingID)
		return nil, err
	}

	booking.Status = target
	booking.UpdatedOn = now
	s.publish(ctx, booking)
	logger.ExitMethod(method, "bookingID", bookingID, "status", target)
	return booking, nil
}

func (s *bookingService) ListForRenter(ctx context.Context, renter domain.AccountID) ([]domain.Booking, error) {
	return s.bookingRepo.ListByRenter(ctx, renter)
}

func (s *bookingService) ListForOwner(ctx context.Context, owner domain.AccountID) ([]domain.Booking, error) {
	return s.bookingRepo.ListByOwner(ctx, owner)
}

// publish is best effort. A broker failure never fails the booking operation.
func (s *bookingService) publish(ctx context.Context, booking *domain.Booking) {
	event := events.NewBookingEvent(booking, s.now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish booking event", "bookingID", booking.ID, "type", event.Type, "error", err)
	}
}
