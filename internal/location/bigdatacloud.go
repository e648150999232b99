package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"farmrent-backend/internal/logger"
)

const serviceName = "bigdatacloud"

// BigDataCloudClient implements ReverseGeocoder and IPGeocoder against the
// BigDataCloud client endpoints.
type BigDataCloudClient struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
}

func NewBigDataCloudClient(baseURL, apiKey, language string, timeout time.Duration) *BigDataCloudClient {
	return &BigDataCloudClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		language: language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type geocodeResponse struct {
	Locality             string `json:"locality"`
	City                 string `json:"city"`
	PrincipalSubdivision string `json:"principalSubdivision"`
	CountryName          string `json:"countryName"`
}

func (c *BigDataCloudClient) ReverseGeocode(ctx context.Context, coords Coordinates) (Place, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	return c.lookup(ctx, "ReverseGeocode", "/data/reverse-geocode-client", q)
}

func (c *BigDataCloudClient) GeocodeIP(ctx context.Context, ip string) (Place, error) {
	q := url.Values{}
	q.Set("ip", ip)
	return c.lookup(ctx, "GeocodeIP", "/data/ip-geolocation-client", q)
}

func (c *BigDataCloudClient) lookup(ctx context.Context, operation, path string, q url.Values) (Place, error) {
	q.Set("localityLanguage", c.language)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	endpoint := c.baseURL + path + "?" + q.Encode()

	logger.ExternalServiceCall(serviceName, operation, "path", path)
	place, err := c.get(ctx, endpoint)
	logger.ExternalServiceResult(serviceName, operation, err)
	return place, err
}

func (c *BigDataCloudClient) get(ctx context.Context, endpoint string) (Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Place{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Place{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	place := Place{
		Locality: body.Locality,
		City:     body.City,
		Region:   body.PrincipalSubdivision,
		Country:  body.CountryName,
	}
	if place.Label() == "" {
		return Place{}, ErrNoPlace
	}
	return place, nil
}
