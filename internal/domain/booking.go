package domain

import (
	"time"

	"farmrent-backend/internal/utils"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition out of s is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled
}

// CanTransitionTo reports whether s -> target is a legal transition.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	return s == BookingStatusPending && target.IsTerminal()
}

type Booking struct {
	ID              string        `json:"id"`
	EquipmentRef    string        `json:"equipment_ref"`
	EquipmentMode   EquipmentMode `json:"equipment_mode"`
	EquipmentName   string        `json:"equipment_name"`
	RenterAccountID AccountID     `json:"renter_account_id"`
	OwnerAccountID  AccountID     `json:"owner_account_id"`
	StartDate       time.Time     `json:"start_date"`
	// DurationHours is nil only on legacy rows, which carry EndDate instead.
	DurationHours *int32        `json:"duration_hours,omitempty"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	Location      string        `json:"location"`
	Status        BookingStatus `json:"status"`
	// Price snapshot captured from the quote at creation time.
	PricePerHour float64   `json:"price_per_hour"`
	TotalPrice   int64     `json:"total_price"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// DerivedHours returns the stored duration, or the duration implied by a legacy end date.
func (b *Booking) DerivedHours() int {
	if b.DurationHours != nil {
		return int(*b.DurationHours)
	}
	if b.EndDate != nil {
		return utils.LegacyHours(b.StartDate, *b.EndDate)
	}
	return 0
}

// IsParty reports whether account is the renter or the owner of the booking.
func (b *Booking) IsParty(account AccountID) bool {
	return account == b.RenterAccountID || account == b.OwnerAccountID
}
