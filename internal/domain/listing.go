package domain

import (
	"time"

	"farmrent-backend/internal/utils"
)

// Listing is an owner's equipment offered for rent.
type Listing struct {
	ID             string    `json:"id"`
	OwnerAccountID AccountID `json:"owner_account_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PricePerDay    *float64  `json:"price_per_day,omitempty"`
	PricePerHour   *float64  `json:"price_per_hour,omitempty"`
	Image          *string   `json:"image,omitempty"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}

// HasRate reports whether at least one rate is set.
func (l *Listing) HasRate() bool {
	return l.PricePerDay != nil || l.PricePerHour != nil
}

// DynamicListing exposes a stored listing as an EquipmentSource.
type DynamicListing struct {
	Listing *Listing
}

func (d DynamicListing) EquipmentID() string { return d.Listing.ID }
func (d DynamicListing) DisplayName() string { return d.Listing.Name }
func (d DynamicListing) Details() string { return d.Listing.Description }
func (d DynamicListing) Owner() AccountID { return d.Listing.OwnerAccountID }
func (d DynamicListing) Mode() EquipmentMode { return EquipmentModeListing }
func (d DynamicListing) HourlyRate() (float64, error) {
	return utils.HourlyEquivalent(d.Listing.PricePerHour, d.Listing.PricePerDay)
}
