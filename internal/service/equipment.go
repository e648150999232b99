package service

import (
	"context"
	"fmt"

	"farmrent-backend/internal/catalog"
	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/repository"

	"github.com/google/uuid"
)

// EquipmentResolver looks up equipment references in the addressing mode the deployment runs.
type EquipmentResolver interface {
	Resolve(ctx context.Context, ref string) (domain.EquipmentSource, error)
	Mode() domain.EquipmentMode
}

type equipmentResolver struct {
	mode     domain.EquipmentMode
	listings repository.ListingRepository
	catalog  *catalog.Catalog
}

func NewEquipmentResolver(mode domain.EquipmentMode, listings repository.ListingRepository, cat *catalog.Catalog) EquipmentResolver {
	return &equipmentResolver{mode: mode, listings: listings, catalog: cat}
}

func (r *equipmentResolver) Mode() domain.EquipmentMode {
	return r.mode
}

func (r *equipmentResolver) Resolve(ctx context.Context, ref string) (domain.EquipmentSource, error) {
	switch r.mode {
	case domain.EquipmentModeCatalog:
		entry, err := r.catalog.Get(ref)
		if err != nil {
			return nil, err
		}
		return entry, nil
	case domain.EquipmentModeListing:
		// Listing ids are UUIDs; anything else can't name a row.
		if _, err := uuid.Parse(ref); err != nil {
			return nil, fmt.Errorf("listing %q: %w", ref, domain.ErrNotFound)
		}
		listing, err := r.listings.GetByID(ctx, ref)
		if err != nil {
			return nil, err
		}
		return domain.DynamicListing{Listing: listing}, nil
	default:
		return nil, fmt.Errorf("unknown equipment mode %q", r.mode)
	}
}
