package domain

import (
	"fmt"
	"strings"
	"time"
)

// Quote is the priced, not yet persisted, answer to a booking request.
type Quote struct {
	ID             string        `json:"id"`
	EquipmentRef   string        `json:"equipment_ref"`
	EquipmentMode  EquipmentMode `json:"equipment_mode"`
	EquipmentName  string        `json:"equipment_name"`
	OwnerAccountID AccountID     `json:"owner_account_id"`
	StartDate      time.Time     `json:"start_date"`
	DurationHours  int32         `json:"duration_hours"`
	Location       string        `json:"location"`
	PricePerHour   float64       `json:"price_per_hour"`
	TotalPrice     int64         `json:"total_price"`
	IssuedAt       time.Time     `json:"issued_at"`
	ExpiresAt      time.Time     `json:"expires_at"`
}

func (q *Quote) Expired(now time.Time) bool {
	return !q.ExpiresAt.IsZero() && !now.Before(q.ExpiresAt)
}

// Validate checks that the quote can still be turned into a booking.
func (q *Quote) Validate(now time.Time) error {
	if q == nil {
		return fmt.Errorf("%w: quote is required", ErrValidation)
	}
	var missing []string
	if q.EquipmentRef == "" {
		missing = append(missing, "equipment_ref")
	}
	if q.OwnerAccountID.IsZero() {
		missing = append(missing, "owner_account_id")
	}
	if q.StartDate.IsZero() {
		missing = append(missing, "start_date")
	}
	if q.PricePerHour <= 0 {
		missing = append(missing, "price_per_hour")
	}
	if q.ExpiresAt.IsZero() {
		missing = append(missing, "expires_at")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: quote is missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	if q.DurationHours <= 0 {
		return ErrInvalidDuration
	}
	if strings.TrimSpace(q.Location) == "" {
		return ErrMissingLocation
	}
	if q.Expired(now) {
		return ErrQuoteExpired
	}
	return nil
}
