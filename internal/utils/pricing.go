package utils

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// HoursPerDay converts a daily rate into its hourly equivalent.
const HoursPerDay = 24

// DateLayout is the wire format of a calendar date.
const DateLayout = "2006-01-02"

var (
	ErrInvalidRate  = errors.New("rate must be a positive finite number")
	ErrInvalidHours = errors.New("hours must be a positive integer")
	ErrNoRate       = errors.New("neither an hourly nor a daily rate is set")
)

// Start dates are accepted as a bare date or as a date with time of day.
var startDateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ComputeTotal returns round(ratePerHour * hours), rounding halves up.
func ComputeTotal(ratePerHour float64, hours int) (int64, error) {
	if !isPositiveFinite(ratePerHour) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, ratePerHour)
	}
	if hours <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHours, hours)
	}
	total := math.Round(ratePerHour * float64(hours))
	if math.IsInf(total, 0) || total >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: total overflows", ErrInvalidRate)
	}
	return int64(total), nil
}

// HourlyEquivalent picks the hourly rate, or derives one from the daily rate as perDay / 24.
func HourlyEquivalent(perHour, perDay *float64) (float64, error) {
	if perHour != nil {
		if !isPositiveFinite(*perHour) {
			return 0, fmt.Errorf("%w: hourly %v", ErrInvalidRate, *perHour)
		}
		return *perHour, nil
	}
	if perDay != nil {
		if !isPositiveFinite(*perDay) {
			return 0, fmt.Errorf("%w: daily %v", ErrInvalidRate, *perDay)
		}
		return *perDay / HoursPerDay, nil
	}
	return 0, ErrNoRate
}

// ParseStartDate parses s and truncates it to the calendar date it names.
// The date written in s is kept as is; no time zone conversion happens.
func ParseStartDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range startDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LegacyHours derives a duration for records that stored an end instead of hours:
// max(1, round((end - start) in hours)).
func LegacyHours(start, end time.Time) int {
	hours := int(math.Round(end.Sub(start).Hours()))
	if hours < 1 {
		return 1
	}
	return hours
}

func isPositiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
