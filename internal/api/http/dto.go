package http

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/utils"
)

type resolveLocationRequest struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	DeviceError string   `json:"device_error"`
}

type locationResponse struct {
	Location string `json:"location"`
}

// bookingInputRequest covers both POST /quotes and the raw form of POST /bookings.
type bookingInputRequest struct {
	QuoteID      string          `json:"quote_id"`
	EquipmentRef string          `json:"equipment_ref"`
	StartDate    string          `json:"start_date"`
	Hours        json.RawMessage `json:"hours"`
	Location     string          `json:"location"`
}

// parseHours accepts a JSON number or numeric string. Anything that is not a whole
// number comes back as 0 so the quote builder reports it as an invalid duration.
func parseHours(raw json.RawMessage) int {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

type statusRequest struct {
	Status string `json:"status"`
}

type quoteResponse struct {
	ID             string  `json:"id"`
	EquipmentRef   string  `json:"equipment_ref"`
	EquipmentMode  string  `json:"equipment_mode"`
	EquipmentName  string  `json:"equipment_name"`
	OwnerAccountID string  `json:"owner_account_id"`
	StartDate      string  `json:"start_date"`
	DurationHours  int32   `json:"duration_hours"`
	Location       string  `json:"location,omitempty"`
	PricePerHour   float64 `json:"price_per_hour"`
	TotalPrice     int64   `json:"total_price"`
	IssuedAt       string  `json:"issued_at"`
	ExpiresAt      string  `json:"expires_at"`
}

func toQuoteResponse(q *domain.Quote) quoteResponse {
	return quoteResponse{
		ID:             q.ID,
		EquipmentRef:   q.EquipmentRef,
		EquipmentMode:  string(q.EquipmentMode),
		EquipmentName:  q.EquipmentName,
		OwnerAccountID: q.OwnerAccountID.String(),
		StartDate:      utils.FormatDate(q.StartDate),
		DurationHours:  q.DurationHours,
		Location:       q.Location,
		PricePerHour:   q.PricePerHour,
		TotalPrice:     q.TotalPrice,
		IssuedAt:       q.IssuedAt.UTC().Format(time.RFC3339),
		ExpiresAt:      q.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

type bookingResponse struct {
	ID              string  `json:"id"`
	EquipmentRef    string  `json:"equipment_ref"`
	EquipmentMode   string  `json:"equipment_mode"`
	EquipmentName   string  `json:"equipment_name,omitempty"`
	RenterAccountID string  `json:"renter_account_id"`
	OwnerAccountID  string  `json:"owner_account_id"`
	StartDate       string  `json:"start_date"`
	DurationHours   *int32  `json:"duration_hours,omitempty"`
	EndDate         *string `json:"end_date,omitempty"`
	DerivedHours    int     `json:"derived_hours"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	PricePerHour    float64 `json:"price_per_hour"`
	TotalPrice      int64   `json:"total_price"`
	CreatedOn       string  `json:"created_on"`
	UpdatedOn       string  `json:"updated_on"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:              b.ID,
		EquipmentRef:    b.EquipmentRef,
		EquipmentMode:   string(b.EquipmentMode),
		EquipmentName:   b.EquipmentName,
		RenterAccountID: b.RenterAccountID.String(),
		OwnerAccountID:  b.OwnerAccountID.String(),
		StartDate:       utils.FormatDate(b.StartDate),
		DurationHours:   b.DurationHours,
		DerivedHours:    b.DerivedHours(),
		Location:        b.Location,
		Status:          string(b.Status),
		PricePerHour:    b.PricePerHour,
		TotalPrice:      b.TotalPrice,
		CreatedOn:       b.CreatedOn.UTC().Format(time.RFC3339),
		UpdatedOn:       b.UpdatedOn.UTC().Format(time.RFC3339),
	}
	if b.EndDate != nil {
		end := b.EndDate.UTC().Format(time.RFC3339)
		resp.EndDate = &end
	}
	return resp
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}
