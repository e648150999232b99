package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestComputeTotal(t *testing.T) {
	t.Run("Tractor for four hours", func(t *testing.T) {
		total, err := ComputeTotal(800, 4)
		assert.NoError(t, err)
		assert.Equal(t, int64(3200), total)
	})

	tests := []struct {
		rate     float64
		hours    int
		expected int64
	}{
		{80, 1, 80},
		{12.5, 3, 38},    // 37.5 rounds up
		{33.3333, 3, 100}, // 99.9999
		{0.4, 1, 0},
		{0.5, 1, 1},
		{1000 / 24.0, 24, 1000},
		{249.99, 10, 2500},
	}
	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			total, err := ComputeTotal(tt.rate, tt.hours)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, total)
			assert.Equal(t, int64(math.Round(tt.rate*float64(tt.hours))), total)
			assert.GreaterOrEqual(t, total, int64(0))
		})
	}

	t.Run("Invalid input", func(t *testing.T) {
		_, err := ComputeTotal(0, 4)
		assert.ErrorIs(t, err, ErrInvalidRate)
		_, err = ComputeTotal(-10, 4)
		assert.ErrorIs(t, err, ErrInvalidRate)
		_, err = ComputeTotal(math.NaN(), 4)
		assert.ErrorIs(t, err, ErrInvalidRate)
		_, err = ComputeTotal(math.Inf(1), 4)
		assert.ErrorIs(t, err, ErrInvalidRate)
		total, err := ComputeTotal(float64(math.MaxInt64), 1)
		assert.ErrorIs(t, err, ErrInvalidRate)
		assert.Zero(t, total)
		_, err = ComputeTotal(800, 0)
		assert.ErrorIs(t, err, ErrInvalidHours)
		_, err = ComputeTotal(800, -2)
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("Largest representable total", func(t *testing.T) {
		rate := math.Nextafter(float64(math.MaxInt64), 0)
		total, err := ComputeTotal(rate, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1<<63-1024), total)
	})
}

func TestHourlyEquivalent(t *testing.T) {
	t.Run("Hourly rate preferred", func(t *testing.T) {
		rate, err := HourlyEquivalent(ptr(150), ptr(2400))
		assert.NoError(t, err)
		assert.Equal(t, 150.0, rate)
	})

	t.Run("Daily only divides by 24", func(t *testing.T) {
		rate, err := HourlyEquivalent(nil, ptr(2400))
		assert.NoError(t, err)
		assert.Equal(t, 100.0, rate)
	})

	t.Run("No rate", func(t *testing.T) {
		_, err := HourlyEquivalent(nil, nil)
		assert.ErrorIs(t, err, ErrNoRate)
	})

	t.Run("Non-positive rate", func(t *testing.T) {
		_, err := HourlyEquivalent(ptr(0), nil)
		assert.ErrorIs(t, err, ErrInvalidRate)
		_, err = HourlyEquivalent(nil, ptr(-1))
		assert.ErrorIs(t, err, ErrInvalidRate)
	})
}

func TestParseStartDate(t *testing.T) {
	want := time.Date(2025, 9, 13, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2025-09-13",
		" 2025-09-13 ",
		"2025-09-13T08:30",
		"2025-09-13T23:59:59",
		"2025-09-13T23:30:00+05:30",
	} {
		t.Run(in, func(t *testing.T) {
			got, err := ParseStartDate(in)
			assert.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	for _, in := range []string{"", "2025/09/13", "2025-13-01", "2025-02-30", "tomorrow"} {
		t.Run("Invalid "+in, func(t *testing.T) {
			_, err := ParseStartDate(in)
			assert.Error(t, err)
		})
	}
}

func TestLegacyHours(t *testing.T) {
	start := time.Date(2025, 9, 13, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, LegacyHours(start, start))
	assert.Equal(t, 1, LegacyHours(start, start.Add(20*time.Minute)))
	assert.Equal(t, 24, LegacyHours(start, start.AddDate(0, 0, 1)))
	assert.Equal(t, 3, LegacyHours(start, start.Add(2*time.Hour+30*time.Minute)))
	assert.Equal(t, 1, LegacyHours(start, start.Add(-5*time.Hour)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2025-09-13", FormatDate(time.Date(2025, 9, 13, 18, 0, 0, 0, time.UTC)))
}
