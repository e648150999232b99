package domain

import "fmt"

type EquipmentMode string

const (
	EquipmentModeListing EquipmentMode = "listing"
	EquipmentModeCatalog EquipmentMode = "catalog"
)

func ParseEquipmentMode(s string) (EquipmentMode, error) {
	switch EquipmentMode(s) {
	case EquipmentModeListing, EquipmentModeCatalog:
		return EquipmentMode(s), nil
	}
	return "", fmt.Errorf("unknown equipment mode %q", s)
}

// EquipmentSource is anything a renter can book: a stored listing or a fixed catalog entry.
type EquipmentSource interface {
	EquipmentID() string
	DisplayName() string
	Details() string
	HourlyRate() (float64, error)
	Owner() AccountID
	Mode() EquipmentMode
}

// FixedCatalogEntry is one of the built-in equipment types, addressed by its type tag.
type FixedCatalogEntry struct {
	Type           string    `json:"type"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PricePerHour   float64   `json:"price_per_hour"`
	Image          string    `json:"image"`
	OwnerAccountID AccountID `json:"owner_account_id"`
}

func (e FixedCatalogEntry) EquipmentID() string { return e.Type }
func (e FixedCatalogEntry) DisplayName() string { return e.Name }
func (e FixedCatalogEntry) Details() string { return e.Description }
func (e FixedCatalogEntry) Owner() AccountID { return e.OwnerAccountID }
func (e FixedCatalogEntry) Mode() EquipmentMode { return EquipmentModeCatalog }
func (e FixedCatalogEntry) HourlyRate() (float64, error) { return e.PricePerHour, nil }
