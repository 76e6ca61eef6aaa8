package openweathermap_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officecast/officecast/internal/weather"
	"github.com/officecast/officecast/internal/weather/openweathermap"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestClient(baseURL string) *openweathermap.Client {
	return openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Now:     fixedNow,
	})
}

func TestClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "41.27814", r.URL.Query().Get("lat"))
		assert.Equal(t, "-81.3289235", r.URL.Query().Get("lon"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		response := map[string]interface{}{
			"weather": []map[string]interface{}{
				{"main": "Clouds", "description": "scattered clouds", "icon": "03d"},
			},
			"main":     map[string]float64{"temp": 18.5, "humidity": 72},
			"wind":     map[string]float64{"speed": 4.5},
			"dt":       int64(1709290800),
			"timezone": -18000,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	reading, err := client.Current(context.Background(), 41.27814, -81.3289235)
	require.NoError(t, err)
	require.NotNil(t, reading)

	assert.Equal(t, 18.5, reading.TemperatureC)
	assert.Equal(t, "scattered clouds", reading.Condition)
	assert.Equal(t, "03d", reading.Icon)
	assert.Equal(t, 72.0, reading.Humidity)
	assert.Equal(t, 4.5, reading.WindSpeedMps)
	require.NotNil(t, reading.TimezoneOffsetSeconds)
	assert.Equal(t, -18000, *reading.TimezoneOffsetSeconds)
	require.NotNil(t, reading.ObservedAt)
	assert.Equal(t, time.Unix(1709290800, 0).UTC().Format(time.RFC3339), *reading.ObservedAt)
	assert.Equal(t, "2024-03-01T12:00:00Z", reading.UpdatedAt)
}

func TestClient_Current_Fallbacks(t *testing.T) {
	tests := []struct {
		name          string
		payload       map[string]interface{}
		wantCondition string
		wantIcon      string
	}{
		{
			name:          "empty payload",
			payload:       map[string]interface{}{},
			wantCondition: "Unknown",
			wantIcon:      "01d",
		},
		{
			name: "description missing falls back to main category",
			payload: map[string]interface{}{
				"weather": []map[string]interface{}{{"main": "Rain"}},
			},
			wantCondition: "Rain",
			wantIcon:      "01d",
		},
		{
			name: "empty weather array",
			payload: map[string]interface{}{
				"weather": []map[string]interface{}{},
				"main":    map[string]float64{"temp": 5},
			},
			wantCondition: "Unknown",
			wantIcon:      "01d",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(tc.payload)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			reading, err := client.Current(context.Background(), 1, 2)
			require.NoError(t, err)

			assert.Equal(t, tc.wantCondition, reading.Condition)
			assert.Equal(t, tc.wantIcon, reading.Icon)
			assert.Nil(t, reading.ObservedAt)
			assert.Nil(t, reading.TimezoneOffsetSeconds)
			assert.Equal(t, "2024-03-01T12:00:00Z", reading.UpdatedAt)
		})
	}
}

func TestClient_Current_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	reading, err := client.Current(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Nil(t, reading)

	var upstreamErr *weather.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Body, "Invalid API key")
}

func TestClient_Current_MissingCredential(t *testing.T) {
	client := openweathermap.NewClient(openweathermap.ClientConfig{})

	assert.False(t, client.Configured())

	_, err := client.Current(context.Background(), 1, 2)
	assert.ErrorIs(t, err, weather.ErrNotConfigured)
}
