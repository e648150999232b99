package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusCancelled, false},
		{BookingStatusConfirmed, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_DerivedHours(t *testing.T) {
	start := time.Date(2025, 9, 13, 0, 0, 0, 0, time.UTC)

	t.Run("Stored duration wins", func(t *testing.T) {
		hours := int32(4)
		end := start.Add(48 * time.Hour)
		b := &Booking{StartDate: start, DurationHours: &hours, EndDate: &end}
		assert.Equal(t, 4, b.DerivedHours())
	})

	t.Run("Legacy end date", func(t *testing.T) {
		end := start.Add(26*time.Hour + 40*time.Minute)
		b := &Booking{StartDate: start, EndDate: &end}
		assert.Equal(t, 27, b.DerivedHours())
	})

	t.Run("Legacy end date equal to start counts one hour", func(t *testing.T) {
		end := start
		b := &Booking{StartDate: start, EndDate: &end}
		assert.Equal(t, 1, b.DerivedHours())
	})

	t.Run("Neither stored", func(t *testing.T) {
		b := &Booking{StartDate: start}
		assert.Equal(t, 0, b.DerivedHours())
	})
}

func TestBooking_IsParty(t *testing.T) {
	b := &Booking{RenterAccountID: "7", OwnerAccountID: "42"}
	assert.True(t, b.IsParty("7"))
	assert.True(t, b.IsParty("42"))
	assert.False(t, b.IsParty("8"))
}
