// Package openweathermap implements the upstream weather provider client.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/officecast/officecast/internal/provider/resilience"
	"github.com/officecast/officecast/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// Fallbacks applied when the upstream omits a field.
	fallbackCondition = "Unknown"
	fallbackIcon      = "01d"

	// maxErrorBody bounds how much of an upstream error body is kept.
	maxErrorBody = 2048
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional). If nil, a
	// resilient client with retries disabled is used so each lookup
	// performs exactly one upstream call.
	HTTPClient *resilience.Client

	// Now supplies the normalization timestamp (optional, defaults to
	// time.Now). Injected so tests can pin updatedAt.
	Now func() time.Time

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap API client that returns normalized readings.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	now        func() time.Time
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.MaxRetries = 0
		httpClient = resilience.NewClient(clientCfg)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		now:        now,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Configured reports whether the provider credential is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Current fetches and normalizes the current weather for a location. The
// exact coordinates are forwarded unrounded; rounding is a cache-key
// concern, not an upstream one. A non-success upstream status is returned
// as *weather.UpstreamError carrying the status and body.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*weather.Reading, error) {
	if !c.Configured() {
		return nil, weather.ErrNotConfigured
	}

	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%v", lat))
	query.Set("lon", fmt.Sprintf("%v", lon))
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	endpoint := fmt.Sprintf("%s/weather?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &weather.UpstreamError{
			Provider:   "OpenWeatherMap",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var owmResp currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return c.normalize(&owmResp), nil
}

// normalize maps the upstream payload onto the canonical reading. Every
// field access has a fallback because the upstream contract tolerates
// partially absent data.
func (c *Client) normalize(resp *currentWeatherResponse) *weather.Reading {
	reading := &weather.Reading{
		Condition:             fallbackCondition,
		Icon:                  fallbackIcon,
		TimezoneOffsetSeconds: resp.Timezone,
		UpdatedAt:             c.now().UTC().Format(time.RFC3339),
	}

	if resp.Main != nil {
		reading.TemperatureC = resp.Main.Temp
		reading.Humidity = resp.Main.Humidity
	}
	if resp.Wind != nil {
		reading.WindSpeedMps = resp.Wind.Speed
	}
	if len(resp.Weather) > 0 {
		entry := resp.Weather[0]
		switch {
		case entry.Description != "":
			reading.Condition = entry.Description
		case entry.Main != "":
			reading.Condition = entry.Main
		}
		if entry.Icon != "" {
			reading.Icon = entry.Icon
		}
	}
	if resp.Dt != nil {
		observed := time.Unix(*resp.Dt, 0).UTC().Format(time.RFC3339)
		reading.ObservedAt = &observed
	}

	return reading
}

// currentWeatherResponse mirrors the subset of the OpenWeatherMap current
// weather payload the proxy consumes. Optional sections are pointers so a
// missing object is distinguishable from a zero one.
type currentWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt       *int64 `json:"dt"`
	Timezone *int   `json:"timezone"`
}
