// Package location turns what a renter's device knows about its position
// into a human readable place string, falling back from a device fix to IP
// based lookup.
package location

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrPermissionDenied    = errors.New("position permission denied")
	ErrPositionTimeout     = errors.New("position request timed out")
	ErrNoPlace             = errors.New("lookup returned no usable place")
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("coordinates out of range: %s", c)
	}
	return nil
}

// String formats the pair as "lat, lon" using the shortest exact representation.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// PositionOptions mirror what is asked of a device when requesting a fix.
type PositionOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// DefaultPositionOptions asks for a fresh, high accuracy fix within ten seconds.
func DefaultPositionOptions() PositionOptions {
	return PositionOptions{
		EnableHighAccuracy: true,
		Timeout:            10 * time.Second,
		MaximumAge:         0,
	}
}

type PositionSource interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (Coordinates, error)
}

// Place is the subset of a geocoding answer used to build a label.
type Place struct {
	Locality string
	City     string
	Region   string
	Country  string
}

// Label joins (locality or city), region and country with ", ", skipping empty parts.
func (p Place) Label() string {
	return joinParts(firstNonEmpty(p.Locality, p.City), p.Region, p.Country)
}

// CityLabel is Label with the city preferred over the locality.
func (p Place) CityLabel() string {
	return joinParts(firstNonEmpty(p.City, p.Locality), p.Region, p.Country)
}

type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, c Coordinates) (Place, error)
}

type IPGeocoder interface {
	GeocodeIP(ctx context.Context, ip string) (Place, error)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func joinParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
