package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrLocationUnresolvable = errors.New("location unresolvable")
)

// Refinements of ErrValidation. errors.Is(err, ErrValidation) holds for each of them.
var (
	ErrInvalidInput    = fmt.Errorf("%w: invalid input", ErrValidation)
	ErrInvalidDuration = fmt.Errorf("%w: hours must be a positive integer", ErrValidation)
	ErrInvalidDate     = fmt.Errorf("%w: start date is not a valid calendar date", ErrValidation)
	ErrMissingLocation = fmt.Errorf("%w: location is required", ErrValidation)
	ErrQuoteExpired    = fmt.Errorf("%w: quote has expired", ErrValidation)
)

// ErrorCode returns the stable wire code for err.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidDuration):
		return "InvalidDuration"
	case errors.Is(err, ErrInvalidDate):
		return "InvalidDate"
	case errors.Is(err, ErrMissingLocation):
		return "MissingLocation"
	case errors.Is(err, ErrQuoteExpired):
		return "QuoteExpired"
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInput"
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrForbidden):
		return "Forbidden"
	case errors.Is(err, ErrInvalidTransition):
		return "InvalidTransition"
	case errors.Is(err, ErrLocationUnresolvable):
		return "LocationUnresolvable"
	default:
		return "Internal"
	}
}
