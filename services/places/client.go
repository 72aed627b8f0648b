package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"betulbuzz/config"
	"betulbuzz/models"

	"go.uber.org/zap"
)

const nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// GooglePlacesClient calls the Google Places nearby search API.
type GooglePlacesClient struct {
	HTTPClient *http.Client
	Logger     *zap.Logger
	BaseURL    string
}

// NewGooglePlacesClient builds a client with a bounded request timeout.
func NewGooglePlacesClient(logger *zap.Logger) *GooglePlacesClient {
	return &GooglePlacesClient{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Logger:     logger,
		BaseURL:    nearbySearchURL,
	}
}

// Search performs a keyword nearby search around the reference location.
func (c *GooglePlacesClient) Search(ctx context.Context, query string, ref models.ReferenceLocation, radiusKm float64) ([]models.PlaceResult, error) {
	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("google api key not configured")
	}

	params := url.Values{}
	params.Set("keyword", query)
	params.Set("location", fmt.Sprintf("%f,%f", ref.Lat, ref.Lng))
	params.Set("radius", fmt.Sprintf("%d", int(radiusKm*1000)))
	params.Set("key", apiKey)

	reqURL := c.BaseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned status %d", resp.StatusCode)
	}

	var parsed models.PlacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	switch parsed.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, fmt.Errorf("places API status %s: %s", parsed.Status, parsed.ErrorMessage)
	}

	c.Logger.Debug("places search completed",
		zap.String("query", query), zap.Int("results", len(parsed.Results)))
	return parsed.Results, nil
}
