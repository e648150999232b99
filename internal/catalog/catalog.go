// Package catalog holds the fixed set of equipment types that can be booked
// when a deployment runs in catalog mode.
package catalog

import (
	"fmt"
	"sort"

	"farmrent-backend/internal/domain"
)

type entry struct {
	name         string
	description  string
	pricePerHour float64
	image        string
}

var builtin = map[string]entry{
	"tractor":          {"Tractor", "Powerful tractor suitable for plowing, tilling, and hauling.", 800, "tractor.png"},
	"harvester":        {"Harvester", "Efficient harvester for cutting and threshing crops.", 300, "harvester.jpg"},
	"rotavator":        {"Rotavator", "Used for seedbed preparation and soil conditioning.", 150, "rotavator.jpg"},
	"plough":           {"Plough", "Used for primary tillage to loosen and turn the soil.", 120, "plough.jpg"},
	"seedDrill":        {"Seed Drill", "For precise sowing of seeds in rows with proper depth.", 100, "seed-drill.jpg"},
	"sprayer":          {"Sprayer", "Used for spraying pesticides, herbicides, and fertilizers.", 80, "sprayer.jpg"},
	"cultivator":       {"Cultivator", "Used for secondary tillage and soil preparation.", 110, "cultivator.jpg"},
	"baler":            {"Baler", "For compressing cut crops like hay or straw into compact bales.", 250, "baler.jpg"},
	"powerTiller":      {"Power Tiller", "Compact machine for plowing, weeding, and small farm operations.", 140, "power-tiller.jpg"},
	"discHarrow":       {"Disc Harrow", "Used for breaking clods, mixing soil, and weed control.", 130, "disc-harrow.jpg"},
	"riceTransplanter": {"Rice Transplanter", "Specialized machine for transplanting rice seedlings into paddy fields.", 220, "rice-transplanter.jpg"},
	"thresher":         {"Threshing Machine", "Separates grain from stalks and husks efficiently.", 240, "thresher.jpg"},
	"waterPump":        {"Water Pump", "Irrigation equipment for pumping water into fields.", 90, "water-pump.jpg"},
}

// Catalog is the fixed equipment list, every entry owned by one operator account.
type Catalog struct {
	owner   domain.AccountID
	entries map[string]domain.FixedCatalogEntry
	order   []string
}

func New(owner domain.AccountID) *Catalog {
	c := &Catalog{
		owner:   owner,
		entries: make(map[string]domain.FixedCatalogEntry, len(builtin)),
	}
	for tag, e := range builtin {
		c.entries[tag] = domain.FixedCatalogEntry{
			Type:           tag,
			Name:           e.name,
			Description:    e.description,
			PricePerHour:   e.pricePerHour,
			Image:          "/images/" + e.image,
			OwnerAccountID: owner,
		}
		c.order = append(c.order, tag)
	}
	sort.Strings(c.order)
	return c
}

// Get returns the entry for a type tag such as "tractor".
func (c *Catalog) Get(tag string) (domain.FixedCatalogEntry, error) {
	e, ok := c.entries[tag]
	if !ok {
		return domain.FixedCatalogEntry{}, fmt.Errorf("equipment type %q: %w", tag, domain.ErrNotFound)
	}
	return e, nil
}

// List returns all entries sorted by type tag.
func (c *Catalog) List() []domain.FixedCatalogEntry {
	out := make([]domain.FixedCatalogEntry, 0, len(c.order))
	for _, tag := range c.order {
		out = append(out, c.entries[tag])
	}
	return out
}

func (c *Catalog) Owner() domain.AccountID {
	return c.owner
}
