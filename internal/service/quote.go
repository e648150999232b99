package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository"
	"farmrent-backend/internal/utils"

	"github.com/google/uuid"
)

type quoteService struct {
	equipment EquipmentResolver
	quotes    repository.QuoteStore
	ttl       time.Duration
	now       func() time.Time
}

func NewQuoteService(equipment EquipmentResolver, quotes repository.QuoteStore, ttl time.Duration) QuoteService {
	return &quoteService{
		equipment: equipment,
		quotes:    quotes,
		ttl:       ttl,
		now:       time.Now,
	}
}

// BuildQuote validates req and prices it. Checks run in a fixed order and the first
// failure is returned: unknown equipment, bad hours, bad date, missing location.
func (s *quoteService) BuildQuote(ctx context.Context, req QuoteRequest) (*domain.Quote, error) {
	logger.EnterMethod("quoteService.BuildQuote", "equipmentRef", req.EquipmentRef, "hours", req.Hours, "startDate", req.StartDate)

	src, err := s.equipment.Resolve(ctx, req.EquipmentRef)
	if err != nil {
		exitWithError("quoteService.BuildQuote", err, "equipmentRef", req.EquipmentRef)
		return nil, err
	}
	if req.Hours <= 0 || req.Hours > math.MaxInt32 {
		exitWithError("quoteService.BuildQuote", domain.ErrInvalidDuration, "hours", req.Hours)
		return nil, domain.ErrInvalidDuration
	}
	start, err := utils.ParseStartDate(req.StartDate)
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
		exitWithError("quoteService.BuildQuote", err)
		return nil, err
	}
	loc := strings.TrimSpace(req.Location)
	if req.RequireLocation && loc == "" {
		exitWithError("quoteService.BuildQuote", domain.ErrMissingLocation)
		return nil, domain.ErrMissingLocation
	}

	rate, err := src.HourlyRate()
	if err != nil {
		err = fmt.Errorf("%w: %s has no usable rate: %v", domain.ErrInvalidInput, src.EquipmentID(), err)
		exitWithError("quoteService.BuildQuote", err)
		return nil, err
	}
	total, err := utils.ComputeTotal(rate, req.Hours)
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		exitWithError("quoteService.BuildQuote", err)
		return nil, err
	}

	now := s.now().UTC()
	quote := &domain.Quote{
		ID:             uuid.New().String(),
		EquipmentRef:   src.EquipmentID(),
		EquipmentMode:  src.Mode(),
		EquipmentName:  src.DisplayName(),
		OwnerAccountID: src.Owner(),
		StartDate:      start,
		DurationHours:  int32(req.Hours),
		Location:       loc,
		PricePerHour:   rate,
		TotalPrice:     total,
		IssuedAt:       now,
		ExpiresAt:      now.Add(s.ttl),
	}

	logger.ExitMethod("quoteService.BuildQuote", "quoteID", quote.ID, "totalPrice", total)
	return quote, nil
}

func (s *quoteService) IssueQuote(ctx context.Context, req QuoteRequest) (*domain.Quote, error) {
	quote, err := s.BuildQuote(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.quotes.Save(ctx, quote, s.ttl); err != nil {
		logger.ExitMethodWithError("quoteService.IssueQuote", err, "quoteID", quote.ID)
		return nil, fmt.Errorf("failed to store quote: %w", err)
	}
	return quote, nil
}

func (s *quoteService) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	quote, err := s.quotes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// The cache may outlive the quote by a little; expiry is decided here.
	if quote.Expired(s.now()) {
		return nil, fmt.Errorf("quote %s: %w", id, domain.ErrNotFound)
	}
	return quote, nil
}
