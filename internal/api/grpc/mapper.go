package grpc

import (
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/utils"
)

func MapDomainBookingToMessage(b *domain.Booking) *Booking {
	if b == nil {
		return nil
	}
	msg := &Booking{
		ID:              b.ID,
		EquipmentRef:    b.EquipmentRef,
		EquipmentMode:   string(b.EquipmentMode),
		EquipmentName:   b.EquipmentName,
		RenterAccountID: b.RenterAccountID.String(),
		OwnerAccountID:  b.OwnerAccountID.String(),
		StartDate:       utils.FormatDate(b.StartDate),
		DerivedHours:    b.DerivedHours(),
		Location:        b.Location,
		Status:          string(b.Status),
		PricePerHour:    b.PricePerHour,
		TotalPrice:      b.TotalPrice,
		CreatedOn:       b.CreatedOn.UTC().Format(time.RFC3339),
		UpdatedOn:       b.UpdatedOn.UTC().Format(time.RFC3339),
	}
	if b.DurationHours != nil {
		msg.DurationHours = *b.DurationHours
	}
	if b.EndDate != nil {
		msg.EndDate = b.EndDate.UTC().Format(time.RFC3339)
	}
	return msg
}

func MapDomainBookingsToMessages(bookings []domain.Booking) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for i := range bookings {
		out = append(out, MapDomainBookingToMessage(&bookings[i]))
	}
	return out
}
