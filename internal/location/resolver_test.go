package location

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReverseGeocoder struct {
	mock.Mock
}

func (m *MockReverseGeocoder) ReverseGeocode(ctx context.Context, c Coordinates) (Place, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(Place), args.Error(1)
}

type MockIPGeocoder struct {
	mock.Mock
}

func (m *MockIPGeocoder) GeocodeIP(ctx context.Context, ip string) (Place, error) {
	args := m.Called(ctx, ip)
	return args.Get(0).(Place), args.Error(1)
}

var pune = Place{Locality: "Pune", City: "Pune City", Region: "Maharashtra", Country: "India"}

func newResolver(rev *MockReverseGeocoder, ip *MockIPGeocoder) *Resolver {
	return NewResolver(rev, ip, DefaultPositionOptions(), time.Second)
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	coords := &Coordinates{Latitude: 18.5204, Longitude: 73.8567}

	t.Run("Device fix reverse geocoded", func(t *testing.T) {
		rev, ip := new(MockReverseGeocoder), new(MockIPGeocoder)
		rev.On("ReverseGeocode", mock.Anything, *coords).Return(pune, nil)

		text, err := newResolver(rev, ip).Resolve(ctx, Request{Device: ReportedPosition{Coordinates: coords}, ClientIP: "203.0.113.7"})
		require.NoError(t, err)
		assert.Equal(t, "Pune, Maharashtra, India", text)
		ip.AssertNotCalled(t, "GeocodeIP", mock.Anything, mock.Anything)
	})

	t.Run("Reverse geocode failure falls back to coordinates", func(t *testing.T) {
		rev, ip := new(MockReverseGeocoder), new(MockIPGeocoder)
		rev.On("ReverseGeocode", mock.Anything, *coords).Return(Place{}, errors.New("502"))

		text, err := newResolver(rev, ip).Resolve(ctx, Request{Device: ReportedPosition{Coordinates: coords}, ClientIP: "203.0.113.7"})
		require.NoError(t, err)
		assert.Equal(t, "18.5204, 73.8567", text)
		ip.AssertNotCalled(t, "GeocodeIP", mock.Anything, mock.Anything)
	})

	t.Run("Reverse geocode with nothing usable falls back to coordinates", func(t *testing.T) {
		rev, ip := new(MockReverseGeocoder), new(MockIPGeocoder)
		rev.On("ReverseGeocode", mock.Anything, *coords).Return(Place{}, nil)

		text, err := newResolver(rev, ip).Resolve(ctx, Request{Device: ReportedPosition{Coordinates: coords}})
		require.NoError(t, err)
		assert.Equal(t, "18.5204, 73.8567", text)
	})

	t.Run("Device denied falls back to IP", func(t *testing.T) {
		rev, ip := new(MockReverseGeocoder), new(MockIPGeocoder)
		ip.On("GeocodeIP", mock.Anything, "203.0.113.7").Return(pune, nil)

		text, err := newResolver(rev, ip).Resolve(ctx, Request{Device: ReportedPosition{DeviceError: "denied"}, ClientIP: "203.0.113.7"})
		require.NoError(t, err)
		// IP lookups prefer the city name
		assert.Equal(t, "Pune City, Maharashtra, India", text)
		rev.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything)
	})

	t.Run("No device information goes straight to IP", func(t *testing.T) {
		rev, ip := new(MockReverseGeocoder), new(MockIPGeocoder)
		ip.On("GeocodeIP", mock.Anything, "203.0.113.7").Return(Place{City: "Pune", Region: "Maharashtra", Country: "India"}, nil)

		text, err := newResolver(rev, ip).Resolve(ctx, Request{ClientIP: "203.0.113.7"})
		require.NoError(t, err)
		assert.Equal(t, "Pune, Maharashtra, India", text)
	})

	t.Run("Everything fails", func(t *testing.T) {
		rev, ip := new(MockReverseGeocoder), new(MockIPGeocoder)
		ip.On("GeocodeIP", mock.Anything, "203.0.113.7").Return(Place{}, errors.New("timeout"))

		_, err := newResolver(rev, ip).Resolve(ctx, Request{Device: ReportedPosition{DeviceError: "unavailable"}, ClientIP: "203.0.113.7"})
		assert.ErrorIs(t, err, domain.ErrLocationUnresolvable)
	})

	t.Run("IP lookup with empty place fails", func(t *testing.T) {
		rev, ip := new(MockReverseGeocoder), new(MockIPGeocoder)
		ip.On("GeocodeIP", mock.Anything, "203.0.113.7").Return(Place{}, nil)

		_, err := newResolver(rev, ip).Resolve(ctx, Request{ClientIP: "203.0.113.7"})
		assert.ErrorIs(t, err, domain.ErrLocationUnresolvable)
	})

	t.Run("No device and no IP", func(t *testing.T) {
		_, err := newResolver(new(MockReverseGeocoder), new(MockIPGeocoder)).Resolve(ctx, Request{})
		assert.ErrorIs(t, err, domain.ErrLocationUnresolvable)
	})
}

func TestChain_PerStrategyTimeout(t *testing.T) {
	slow := Strategy{
		Name:    "slow",
		Timeout: 20 * time.Millisecond,
		Run: func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	fast := Strategy{
		Name: "fast",
		Run:  func(ctx context.Context) (string, error) { return "Nashik, Maharashtra, India", nil },
	}

	start := time.Now()
	text, err := Chain(context.Background(), slow, fast)
	require.NoError(t, err)
	assert.Equal(t, "Nashik, Maharashtra, India", text)
	assert.Less(t, time.Since(start), time.Second)
}

func TestChain_Lazy(t *testing.T) {
	calls := 0
	first := Strategy{Name: "first", Run: func(ctx context.Context) (string, error) { calls++; return "here", nil }}
	second := Strategy{Name: "second", Run: func(ctx context.Context) (string, error) { calls++; return "there", nil }}

	text, err := Chain(context.Background(), first, second)
	require.NoError(t, err)
	assert.Equal(t, "here", text)
	assert.Equal(t, 1, calls)
}

func TestReportedPosition(t *testing.T) {
	ctx := context.Background()
	opts := DefaultPositionOptions()

	assert.True(t, opts.EnableHighAccuracy)
	assert.Equal(t, 10*time.Second, opts.Timeout)
	assert.Zero(t, opts.MaximumAge)

	_, err := ReportedPosition{DeviceError: "denied"}.CurrentPosition(ctx, opts)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	_, err = ReportedPosition{DeviceError: "timeout"}.CurrentPosition(ctx, opts)
	assert.ErrorIs(t, err, ErrPositionTimeout)
	_, err = ReportedPosition{}.CurrentPosition(ctx, opts)
	assert.ErrorIs(t, err, ErrPositionUnavailable)
	_, err = ReportedPosition{Coordinates: &Coordinates{Latitude: 91}}.CurrentPosition(ctx, opts)
	assert.ErrorIs(t, err, ErrPositionUnavailable)

	c, err := ReportedPosition{Coordinates: &Coordinates{Latitude: 18.5, Longitude: 73.85}}.CurrentPosition(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, "18.5, 73.85", c.String())
}

func TestPlace_Label(t *testing.T) {
	assert.Equal(t, "Pune, Maharashtra, India", pune.Label())
	assert.Equal(t, "Pune City, Maharashtra, India", pune.CityLabel())
	assert.Equal(t, "Maharashtra, India", Place{Region: "Maharashtra", Country: " India "}.Label())
	assert.Equal(t, "", Place{}.Label())
}
