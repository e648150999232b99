package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository"
	"farmrent-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type listingService struct {
	listingRepo repository.ListingRepository
	images      storage.ImageStorage
	validate    *validator.Validate
	now         func() time.Time
}

func NewListingService(listingRepo repository.ListingRepository, images storage.ImageStorage) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		images:      images,
		validate:    newListingValidator(),
		now:         time.Now,
	}
}

func newListingValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(ListingInput)
		if in.PricePerDay == nil && in.PricePerHour == nil {
			sl.ReportError(in.PricePerHour, "PricePerHour", "price_per_hour", "rate_required", "")
		}
	}, ListingInput{})
	return v
}

// check normalises input and reports every rule it breaks as one validation error.
func (s *listingService) check(input *ListingInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Image != nil && strings.TrimSpace(*input.Image) == "" {
		input.Image = nil
	}
	err := s.validate.Struct(*input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "uri":
		return fe.Field() + " must be a URI"
	case "rate_required":
		return "at least one of PricePerDay or PricePerHour is required"
	}
	return fe.Field() + " is invalid"
}

func (s *listingService) Create(ctx context.Context, actor domain.AccountID, input ListingInput) (*domain.Listing, error) {
	logger.EnterMethod("listingService.Create", "actor", actor)

	if actor.IsZero() {
		err := fmt.Errorf("%w: owner account is required", domain.ErrValidation)
		exitWithError("listingService.Create", err)
		return nil, err
	}
	if err := s.check(&input); err != nil {
		exitWithError("listingService.Create", err, "actor", actor)
		return nil, err
	}

	now := s.now().UTC()
	listing := &domain.Listing{
		ID:             uuid.New().String(),
		OwnerAccountID: actor,
		CreatedOn:      now,
	}
	applyInput(listing, input, now)

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		logger.ExitMethodWithError("listingService.Create", err, "actor", actor)
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	logger.ExitMethod("listingService.Create", "listingID", listing.ID)
	return listing, nil
}

func (s *listingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("listing %q: %w", id, domain.ErrNotFound)
	}
	return s.listingRepo.GetByID(ctx, id)
}

func (s *listingService) ListByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Listing, error) {
	return s.listingRepo.ListByOwner(ctx, owner)
}

// ListOthers returns what the actor can rent: every listing somebody else owns.
func (s *listingService) ListOthers(ctx context.Context, actor domain.AccountID) ([]domain.Listing, error) {
	return s.listingRepo.ListExcludingOwner(ctx, actor)
}

// Update replaces all mutable fields. An input that fails validation leaves the stored listing untouched.
func (s *listingService) Update(ctx context.Context, actor domain.AccountID, id string, input ListingInput) (*domain.Listing, error) {
	logger.EnterMethod("listingService.Update", "listingID", id, "actor", actor)

	listing, err := s.ownedListing(ctx, actor, id)
	if err != nil {
		exitWithError("listingService.Update", err, "listingID", id)
		return nil, err
	}
	if err := s.check(&input); err != nil {
		exitWithError("listingService.Update", err, "listingID", id)
		return nil, err
	}

	updated := *listing
	applyInput(&updated, input, s.now().UTC())
	if err := s.listingRepo.Update(ctx, &updated); err != nil {
		exitWithError("listingService.Update", err, "listingID", id)
		return nil, err
	}
	logger.ExitMethod("listingService.Update", "listingID", id)
	return &updated, nil
}

// Delete removes the listing. Bookings that reference it are kept as they are.
func (s *listingService) Delete(ctx context.Context, actor domain.AccountID, id string) error {
	logger.EnterMethod("listingService.Delete", "listingID", id, "actor", actor)

	listing, err := s.ownedListing(ctx, actor, id)
	if err != nil {
		exitWithError("listingService.Delete", err, "listingID", id)
		return err
	}
	if err := s.listingRepo.Delete(ctx, id); err != nil {
		exitWithError("listingService.Delete", err, "listingID", id)
		return err
	}
	s.removeStoredImage(ctx, listing.Image)
	logger.ExitMethod("listingService.Delete", "listingID", id)
	return nil
}

// AttachImage stores body as the listing's picture and points the listing's image at it.
func (s *listingService) AttachImage(ctx context.Context, actor domain.AccountID, id, filename, contentType string, body io.Reader) (*domain.Listing, error) {
	logger.EnterMethod("listingService.AttachImage", "listingID", id, "filename", filename, "contentType", contentType)

	if s.images == nil {
		err := errors.New("image storage is not configured")
		logger.ExitMethodWithError("listingService.AttachImage", err)
		return nil, err
	}
	listing, err := s.ownedListing(ctx, actor, id)
	if err != nil {
		exitWithError("listingService.AttachImage", err, "listingID", id)
		return nil, err
	}

	key, err := storage.ListingImageKey(id, contentType)
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrValidation, err)
		exitWithError("listingService.AttachImage", err, "listingID", id)
		return nil, err
	}
	size, err := s.images.Save(ctx, key, contentType, body)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) || errors.Is(err, storage.ErrFileTooLarge) {
			err = fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		exitWithError("listingService.AttachImage", err, "listingID", id)
		return nil, err
	}

	previous := listing.Image
	updated := *listing
	url := s.images.URL(key)
	updated.Image = &url
	updated.UpdatedOn = s.now().UTC()
	if err := s.listingRepo.Update(ctx, &updated); err != nil {
		_ = s.images.Delete(ctx, key)
		exitWithError("listingService.AttachImage", err, "listingID", id)
		return nil, err
	}
	s.removeStoredImage(ctx, previous)

	logger.ExitMethod("listingService.AttachImage", "listingID", id, "key", key, "bytes", size)
	return &updated, nil
}

func (s *listingService) ownedListing(ctx context.Context, actor domain.AccountID, id string) (*domain.Listing, error) {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.OwnerAccountID != actor {
		return nil, fmt.Errorf("listing %s: %w", id, domain.ErrForbidden)
	}
	return listing, nil
}

// removeStoredImage deletes an image this service stored earlier. External URLs are left alone.
func (s *listingService) removeStoredImage(ctx context.Context, image *string) {
	if s.images == nil || image == nil {
		return
	}
	prefix := s.images.URL("")
	if !strings.HasPrefix(*image, prefix) {
		return
	}
	key := strings.TrimPrefix(*image, prefix)
	if err := s.images.Delete(ctx, key); err != nil {
		logger.Warn("Failed to delete listing image", "key", key, "error", err)
	}
}

func applyInput(l *domain.Listing, input ListingInput, now time.Time) {
	l.Name = input.Name
	l.Description = input.Description
	l.PricePerDay = input.PricePerDay
	l.PricePerHour = input.PricePerHour
	l.Image = input.Image
	l.UpdatedOn = now
}
