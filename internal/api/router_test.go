package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officecast/officecast/internal/api"
	"github.com/officecast/officecast/internal/background"
	"github.com/officecast/officecast/internal/cache"
	"github.com/officecast/officecast/internal/proxy"
	"github.com/officecast/officecast/internal/weather/openweathermap"
)

type testProxy struct {
	router        http.Handler
	tasks         *background.Group
	upstreamCalls *atomic.Int32
	upstream      *httptest.Server
}

func newTestProxy(t *testing.T, apiKey string, upstreamHandler http.HandlerFunc) *testProxy {
	t.Helper()

	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		upstreamHandler(w, r)
	}))
	t.Cleanup(upstream.Close)

	provider := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:  apiKey,
		BaseURL: upstream.URL,
		Now:     func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	})

	tasks := background.NewGroup(zerolog.Nop())
	service := proxy.NewService(proxy.ServiceConfig{
		Cache:    cache.NewMemory(),
		Provider: provider,
		Tasks:    tasks,
		Logger:   zerolog.Nop(),
	})

	router := api.NewRouter(api.RouterConfig{
		Version: "test",
		Logger:  zerolog.Nop(),
		Service: service,
	})

	return &testProxy{
		router:        router,
		tasks:         tasks,
		upstreamCalls: &calls,
		upstream:      upstream,
	}
}

func serveOWM(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"weather": []map[string]interface{}{
			{"main": "Clouds", "description": "scattered clouds", "icon": "03d"},
		},
		"main":     map[string]float64{"temp": 18.5, "humidity": 72},
		"wind":     map[string]float64{"speed": 4.5},
		"dt":       int64(1709290800),
		"timezone": -18000,
	})
}

func (p *testProxy) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	p.router.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error
}

func TestRouter_OptionsPreflight(t *testing.T) {
	p := newTestProxy(t, "key", serveOWM)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/weather", http.NoBody)
	p.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	p := newTestProxy(t, "key", serveOWM)

	for _, path := range []string{"/weather", "/nowhere"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, http.NoBody)
		p.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
		assert.Equal(t, "Only GET is supported for this endpoint.", errorBody(t, rec))
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	p := newTestProxy(t, "key", serveOWM)

	rec := p.get("/forecast")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found.", errorBody(t, rec))
}

func TestRouter_InvalidCoordinates(t *testing.T) {
	p := newTestProxy(t, "key", serveOWM)

	paths := []string{
		"/weather",
		"/weather?lat=41.3",
		"/weather?lat=abc&lon=-81.3",
		"/weather?lat=41.3&lon=NaN",
		"/weather?lat=Inf&lon=-81.3",
	}
	for _, path := range paths {
		rec := p.get(path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "Valid lat and lon query parameters are required.", errorBody(t, rec))
	}
	assert.Equal(t, int32(0), p.upstreamCalls.Load())
}

func TestRouter_OutOfRangeCoordinates(t *testing.T) {
	p := newTestProxy(t, "key", serveOWM)

	for _, path := range []string{
		"/weather?lat=90.5&lon=0",
		"/weather?lat=0&lon=-180.5",
	} {
		rec := p.get(path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "lat/lon are out of range.", errorBody(t, rec))
	}

	// Validation failures never reach the upstream.
	assert.Equal(t, int32(0), p.upstreamCalls.Load())
}

func TestRouter_MissingCredential(t *testing.T) {
	p := newTestProxy(t, "", serveOWM)

	rec := p.get("/weather?lat=41.3&lon=-81.3")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "OpenWeatherMap API key is not configured.", errorBody(t, rec))
	assert.Equal(t, int32(0), p.upstreamCalls.Load())
}

func TestRouter_MissThenHit(t *testing.T) {
	p := newTestProxy(t, "key", serveOWM)

	miss := p.get("/weather?lat=41.27814&lon=-81.3289235")
	require.Equal(t, http.StatusOK, miss.Code)
	assert.Equal(t, "MISS", miss.Header().Get("X-Cache"))
	assert.Equal(t, "public, max-age=600", miss.Header().Get("Cache-Control"))

	var reading map[string]interface{}
	require.NoError(t, json.Unmarshal(miss.Body.Bytes(), &reading))
	assert.Equal(t, 18.5, reading["temperatureC"])
	assert.Equal(t, "scattered clouds", reading["condition"])
	assert.Equal(t, "03d", reading["icon"])
	assert.Equal(t, 72.0, reading["humidity"])
	assert.Equal(t, 4.5, reading["windSpeedMps"])
	assert.Equal(t, -18000.0, reading["timezoneOffsetSeconds"])
	assert.Equal(t, "2024-03-01T12:00:00Z", reading["updatedAt"])

	// The deferred write must land before the next request in this test.
	require.NoError(t, p.tasks.Wait(context.Background()))

	hit := p.get("/weather?lat=41.27814&lon=-81.3289235")
	require.Equal(t, http.StatusOK, hit.Code)
	assert.Equal(t, "HIT", hit.Header().Get("X-Cache"))
	assert.Equal(t, miss.Body.Bytes(), hit.Body.Bytes())
	assert.Equal(t, int32(1), p.upstreamCalls.Load())
}

func TestRouter_CacheKeyIgnoresSubMeterPrecision(t *testing.T) {
	p := newTestProxy(t, "key", serveOWM)

	first := p.get("/weather?lat=41.27814&lon=-81.3289235")
	require.Equal(t, http.StatusOK, first.Code)
	require.NoError(t, p.tasks.Wait(context.Background()))

	// Same coordinates beyond the 4th decimal place.
	second := p.get("/weather?lat=41.2781399&lon=-81.32892351")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, int32(1), p.upstreamCalls.Load())
}

func TestRouter_UpstreamFailure(t *testing.T) {
	p := newTestProxy(t, "key", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream down"))
	})

	rec := p.get("/weather?lat=41.3&lon=-81.3")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "OpenWeatherMap request failed: 503 upstream down", errorBody(t, rec))

	// Failures are not cached; the next request retries upstream.
	rec = p.get("/weather?lat=41.3&lon=-81.3")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, int32(2), p.upstreamCalls.Load())
}

func TestRouter_Health(t *testing.T) {
	p := newTestProxy(t, "key", serveOWM)

	rec := p.get("/v1/ops/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
