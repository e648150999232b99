package location

import (
	"context"
	"fmt"
	"time"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/logger"
)

// Strategy is one step of the fallback chain.
type Strategy struct {
	Name    string
	Timeout time.Duration
	Run     func(ctx context.Context) (string, error)
}

// Chain evaluates strategies in order and returns the first non-empty result.
// Every strategy runs under its own timeout; failures only move the chain on.
func Chain(ctx context.Context, strategies ...Strategy) (string, error) {
	for _, s := range strategies {
		text, err := runStrategy(ctx, s)
		if err == nil && text != "" {
			logger.DebugContext(ctx, "Location resolved", "strategy", s.Name)
			return text, nil
		}
		if err == nil {
			err = ErrNoPlace
		}
		logger.DebugContext(ctx, "Location strategy failed, falling back", "strategy", s.Name, "error", err)
		if ctx.Err() != nil {
			break
		}
	}
	return "", domain.ErrLocationUnresolvable
}

func runStrategy(ctx context.Context, s Strategy) (string, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	return s.Run(ctx)
}

// DeviceStrategy takes a single fix and reverse geocodes it. A fix that cannot
// be turned into a place is still returned as "lat, lon".
func DeviceStrategy(source PositionSource, geocoder ReverseGeocoder, opts PositionOptions, lookupTimeout time.Duration) Strategy {
	return Strategy{
		Name:    "device",
		Timeout: opts.Timeout + lookupTimeout,
		Run: func(ctx context.Context) (string, error) {
			fixCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
			coords, err := source.CurrentPosition(fixCtx, opts)
			cancel()
			if err != nil {
				return "", err
			}

			place, err := geocoder.ReverseGeocode(ctx, coords)
			if err != nil {
				logger.Debug("Reverse geocoding failed, using coordinates", "error", err)
				return coords.String(), nil
			}
			if label := place.Label(); label != "" {
				return label, nil
			}
			return coords.String(), nil
		},
	}
}

// IPStrategy geocodes the caller's IP address.
func IPStrategy(geocoder IPGeocoder, ip string, timeout time.Duration) Strategy {
	return Strategy{
		Name:    "ip",
		Timeout: timeout,
		Run: func(ctx context.Context) (string, error) {
			if ip == "" {
				return "", fmt.Errorf("no client ip")
			}
			place, err := geocoder.GeocodeIP(ctx, ip)
			if err != nil {
				return "", err
			}
			return place.CityLabel(), nil
		},
	}
}

// Request is what the caller knows when asking for its location.
type Request struct {
	Device   ReportedPosition
	ClientIP string
}

// Resolver builds the device -> IP chain for each request.
type Resolver struct {
	reverse       ReverseGeocoder
	ip            IPGeocoder
	opts          PositionOptions
	lookupTimeout time.Duration
}

func NewResolver(reverse ReverseGeocoder, ip IPGeocoder, opts PositionOptions, lookupTimeout time.Duration) *Resolver {
	return &Resolver{
		reverse:       reverse,
		ip:            ip,
		opts:          opts,
		lookupTimeout: lookupTimeout,
	}
}

// Resolve returns a place string or domain.ErrLocationUnresolvable, in which
// case the caller has to ask for the location as typed text.
func (r *Resolver) Resolve(ctx context.Context, req Request) (string, error) {
	logger.EnterMethod("location.Resolve", "device_reported", req.Device.Available(), "has_ip", req.ClientIP != "")

	var strategies []Strategy
	if req.Device.Available() {
		strategies = append(strategies, DeviceStrategy(req.Device, r.reverse, r.opts, r.lookupTimeout))
	}
	strategies = append(strategies, IPStrategy(r.ip, req.ClientIP, r.lookupTimeout))

	text, err := Chain(ctx, strategies...)
	if err != nil {
		logger.ExitMethod("location.Resolve", "resolved", false)
		return "", err
	}
	logger.ExitMethod("location.Resolve", "resolved", true)
	return text, nil
}
