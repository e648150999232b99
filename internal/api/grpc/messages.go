package grpc

// CreateBookingRequest books either a stored quote (QuoteID) or the raw inputs.
type CreateBookingRequest struct {
	QuoteID      string `json:"quote_id,omitempty"`
	EquipmentRef string `json:"equipment_ref,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	Hours        int    `json:"hours,omitempty"`
	Location     string `json:"location,omitempty"`
}

type BookingIDRequest struct {
	BookingID string `json:"booking_id"`
}

type ListBookingsRequest struct {
	AccountID string `json:"account_id"`
}

type Booking struct {
	ID              string  `json:"id"`
	EquipmentRef    string  `json:"equipment_ref"`
	EquipmentMode   string  `json:"equipment_mode"`
	EquipmentName   string  `json:"equipment_name,omitempty"`
	RenterAccountID string  `json:"renter_account_id"`
	OwnerAccountID  string  `json:"owner_account_id"`
	StartDate       string  `json:"start_date"`
	DurationHours   int32   `json:"duration_hours,omitempty"`
	EndDate         string  `json:"end_date,omitempty"`
	DerivedHours    int     `json:"derived_hours"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	PricePerHour    float64 `json:"price_per_hour"`
	TotalPrice      int64   `json:"total_price"`
	CreatedOn       string  `json:"created_on"`
	UpdatedOn       string  `json:"updated_on"`
}

type BookingResponse struct {
	Booking *Booking `json:"booking"`
}

type ListBookingsResponse struct {
	Bookings []*Booking `json:"bookings"`
}
