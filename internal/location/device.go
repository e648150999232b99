package location

import (
	"context"
	"fmt"
	"strings"
)

// Device error codes a client may report instead of coordinates.
const (
	DeviceErrorDenied      = "denied"
	DeviceErrorUnavailable = "unavailable"
	DeviceErrorTimeout     = "timeout"
)

// ReportedPosition is a PositionSource backed by what the client reported:
// either the coordinates its device produced or the reason it could not.
type ReportedPosition struct {
	Coordinates *Coordinates
	DeviceError string
}

func (r ReportedPosition) CurrentPosition(ctx context.Context, opts PositionOptions) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrPositionTimeout, err)
	}
	if r.DeviceError != "" {
		return Coordinates{}, deviceError(r.DeviceError)
	}
	if r.Coordinates == nil {
		return Coordinates{}, ErrPositionUnavailable
	}
	if err := r.Coordinates.Validate(); err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
	return *r.Coordinates, nil
}

// Available reports whether the client sent anything about its device position.
func (r ReportedPosition) Available() bool {
	return r.Coordinates != nil || r.DeviceError != ""
}

func deviceError(code string) error {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case DeviceErrorDenied:
		return ErrPermissionDenied
	case DeviceErrorTimeout:
		return ErrPositionTimeout
	default:
		return ErrPositionUnavailable
	}
}
