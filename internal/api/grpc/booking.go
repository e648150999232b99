package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

var _ BookingServiceServer = (*BookingHandler)(nil)

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

func (h *BookingHandler) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingResponse, error) {
	accountID, err := GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var b *domain.Booking
	if req.QuoteID != "" {
		b, err = h.bookingSvc.CreateFromQuoteID(ctx, req.QuoteID, accountID)
	} else {
		b, err = h.bookingSvc.CreateFromRequest(ctx, service.QuoteRequest{
			EquipmentRef: req.EquipmentRef,
			StartDate:    req.StartDate,
			Hours:        req.Hours,
			Location:     req.Location,
		}, accountID)
	}
	if err != nil {
		return nil, toStatus("CreateBooking", err)
	}
	return &BookingResponse{Booking: MapDomainBookingToMessage(b)}, nil
}

func (h *BookingHandler) GetBooking(ctx context.Context, req *BookingIDRequest) (*BookingResponse, error) {
	accountID, err := GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	b, err := h.bookingSvc.Get(ctx, accountID, req.BookingID)
	if err != nil {
		return nil, toStatus("GetBooking", err)
	}
	return &BookingResponse{Booking: MapDomainBookingToMessage(b)}, nil
}

func (h *BookingHandler) AcceptBooking(ctx context.Context, req *BookingIDRequest) (*BookingResponse, error) {
	accountID, err := GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	b, err := h.bookingSvc.Accept(ctx, accountID, req.BookingID)
	if err != nil {
		return nil, toStatus("AcceptBooking", err)
	}
	return &BookingResponse{Booking: MapDomainBookingToMessage(b)}, nil
}

func (h *BookingHandler) RejectBooking(ctx context.Context, req *BookingIDRequest) (*BookingResponse, error) {
	accountID, err := GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	b, err := h.bookingSvc.Reject(ctx, accountID, req.BookingID)
	if err != nil {
		return nil, toStatus("RejectBooking", err)
	}
	return &BookingResponse{Booking: MapDomainBookingToMessage(b)}, nil
}

func (h *BookingHandler) ListRenterBookings(ctx context.Context, req *ListBookingsRequest) (*ListBookingsResponse, error) {
	accountID, err := h.callerFor(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	bookings, err := h.bookingSvc.ListForRenter(ctx, accountID)
	if err != nil {
		return nil, toStatus("ListRenterBookings", err)
	}
	return &ListBookingsResponse{Bookings: MapDomainBookingsToMessages(bookings)}, nil
}

func (h *BookingHandler) ListOwnerBookings(ctx context.Context, req *ListBookingsRequest) (*ListBookingsResponse, error) {
	accountID, err := h.callerFor(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	bookings, err := h.bookingSvc.ListForOwner(ctx, accountID)
	if err != nil {
		return nil, toStatus("ListOwnerBookings", err)
	}
	return &ListBookingsResponse{Bookings: MapDomainBookingsToMessages(bookings)}, nil
}

// callerFor returns the caller's account id. An explicit account id must name the caller.
func (h *BookingHandler) callerFor(ctx context.Context, requested string) (domain.AccountID, error) {
	accountID, err := GetAccountIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	if requested != "" && domain.AccountID(requested) != accountID {
		return "", status.Error(codes.PermissionDenied, "Forbidden: bookings of another account")
	}
	return accountID, nil
}
