// Package events publishes booking lifecycle notifications to the message broker.
package events

import (
	"context"
	"time"

	"farmrent-backend/internal/domain"
)

const (
	BookingCreated   = "booking.created"
	BookingConfirmed = "booking.confirmed"
	BookingCancelled = "booking.cancelled"
)

// BookingEvent is the JSON body sent for every booking lifecycle change.
type BookingEvent struct {
	Type            string               `json:"type"`
	BookingID       string               `json:"booking_id"`
	EquipmentRef    string               `json:"equipment_ref"`
	EquipmentName   string               `json:"equipment_name,omitempty"`
	RenterAccountID domain.AccountID     `json:"renter_account_id"`
	OwnerAccountID  domain.AccountID     `json:"owner_account_id"`
	Status          domain.BookingStatus `json:"status"`
	StartDate       string               `json:"start_date"`
	DurationHours   int                  `json:"duration_hours"`
	TotalPrice      int64                `json:"total_price"`
	OccurredAt      time.Time            `json:"occurred_at"`
}

// NewBookingEvent derives the routing key from the booking status.
func NewBookingEvent(b *domain.Booking, occurredAt time.Time) BookingEvent {
	eventType := BookingCreated
	switch b.Status {
	case domain.BookingStatusConfirmed:
		eventType = BookingConfirmed
	case domain.BookingStatusCancelled:
		eventType = BookingCancelled
	}
	return BookingEvent{
		Type:            eventType,
		BookingID:       b.ID,
		EquipmentRef:    b.EquipmentRef,
		EquipmentName:   b.EquipmentName,
		RenterAccountID: b.RenterAccountID,
		OwnerAccountID:  b.OwnerAccountID,
		Status:          b.Status,
		StartDate:       b.StartDate.Format("2006-01-02"),
		DurationHours:   b.DerivedHours(),
		TotalPrice:      b.TotalPrice,
		OccurredAt:      occurredAt.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
	Close() error
}

// NoopPublisher drops every event. Used when the broker is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event BookingEvent) error { return nil }
func (NoopPublisher) Close() error { return nil }
