// Package fleet orchestrates concurrent weather fetches for the whole
// office fleet and exposes a consistent per-office view of the results.
package fleet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/officecast/officecast/internal/office"
	"github.com/officecast/officecast/internal/provider/resilience"
	"github.com/officecast/officecast/internal/weather"
)

// Source fetches one office's weather.
type Source interface {
	Fetch(ctx context.Context, o office.Office) (weather.DisplayReading, error)
}

// Client fetches normalized readings from the weather proxy.
type Client struct {
	baseURL    string
	httpClient *resilience.Client
}

// ClientConfig holds configuration for the proxy client.
type ClientConfig struct {
	// BaseURL of the weather proxy, e.g. "http://localhost:8787".
	BaseURL string

	// HTTPClient is the HTTP client to use (optional). The default keeps
	// retries enabled; GETs against our own edge are idempotent.
	HTTPClient *resilience.Client
}

// NewClient creates a proxy client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig("officecast-proxy"))
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}
}

// Fetch retrieves and expands the reading for a single office. A non-2xx
// proxy response maps to the fixed "Request failed (<status>)" message the
// dashboard shows per office.
func (c *Client) Fetch(ctx context.Context, o office.Office) (weather.DisplayReading, error) {
	endpoint := fmt.Sprintf("%s/weather?lat=%s&lon=%s",
		c.baseURL,
		strconv.FormatFloat(o.Latitude, 'f', -1, 64),
		strconv.FormatFloat(o.Longitude, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return weather.DisplayReading{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.DisplayReading{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return weather.DisplayReading{}, fmt.Errorf("Request failed (%d)", resp.StatusCode)
	}

	var reading weather.Reading
	if err := json.NewDecoder(resp.Body).Decode(&reading); err != nil {
		return weather.DisplayReading{}, fmt.Errorf("decoding response: %w", err)
	}

	return reading.Display(), nil
}
