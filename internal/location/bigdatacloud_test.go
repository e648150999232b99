package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigDataCloudClient_ReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/reverse-geocode-client", r.URL.Path)
		assert.Equal(t, "18.5204", r.URL.Query().Get("latitude"))
		assert.Equal(t, "73.8567", r.URL.Query().Get("longitude"))
		assert.Equal(t, "en", r.URL.Query().Get("localityLanguage"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"locality":"Pune","city":"Pune","principalSubdivision":"Maharashtra","countryName":"India","countryCode":"IN"}`))
	}))
	defer srv.Close()

	client := NewBigDataCloudClient(srv.URL+"/", "secret", "en", time.Second)
	place, err := client.ReverseGeocode(context.Background(), Coordinates{Latitude: 18.5204, Longitude: 73.8567})
	require.NoError(t, err)
	assert.Equal(t, "Pune, Maharashtra, India", place.Label())
}

func TestBigDataCloudClient_GeocodeIP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/ip-geolocation-client", r.URL.Path)
		assert.Equal(t, "203.0.113.7", r.URL.Query().Get("ip"))
		assert.Empty(t, r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"city":"Pune","locality":"Shivajinagar","principalSubdivision":"Maharashtra","countryName":"India"}`))
	}))
	defer srv.Close()

	client := NewBigDataCloudClient(srv.URL, "", "en", time.Second)
	place, err := client.GeocodeIP(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, "Pune, Maharashtra, India", place.CityLabel())
}

func TestBigDataCloudClient_Failures(t *testing.T) {
	t.Run("Non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := NewBigDataCloudClient(srv.URL, "", "en", time.Second).GeocodeIP(context.Background(), "203.0.113.7")
		assert.ErrorContains(t, err, "status 429")
	})

	t.Run("Empty answer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"locality":"","countryName":""}`))
		}))
		defer srv.Close()

		_, err := NewBigDataCloudClient(srv.URL, "", "en", time.Second).ReverseGeocode(context.Background(), Coordinates{})
		assert.ErrorIs(t, err, ErrNoPlace)
	})

	t.Run("Malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer srv.Close()

		_, err := NewBigDataCloudClient(srv.URL, "", "en", time.Second).ReverseGeocode(context.Background(), Coordinates{})
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("Slow provider hits client timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		_, err := NewBigDataCloudClient(srv.URL, "", "en", 20*time.Millisecond).GeocodeIP(context.Background(), "203.0.113.7")
		assert.Error(t, err)
	})
}
