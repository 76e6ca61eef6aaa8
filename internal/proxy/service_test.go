package proxy_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officecast/officecast/internal/background"
	"github.com/officecast/officecast/internal/proxy"
	"github.com/officecast/officecast/internal/weather"
)

// mockProvider counts upstream calls and serves a fixed reading.
type mockProvider struct {
	mu         sync.Mutex
	calls      int
	reading    *weather.Reading
	err        error
	configured bool
}

func (m *mockProvider) Current(_ context.Context, _, _ float64) (*weather.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.reading, nil
}

func (m *mockProvider) Configured() bool { return m.configured }
func (m *mockProvider) Name() string     { return "mock" }

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// countingStore wraps a map store and counts writes.
type countingStore struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
}

func newCountingStore() *countingStore {
	return &countingStore{entries: make(map[string][]byte)}
}

func (s *countingStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *countingStore) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	s.sets++
}

func (s *countingStore) setCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

func testReading() *weather.Reading {
	offset := -18000
	observed := "2024-03-01T11:55:00Z"
	return &weather.Reading{
		TemperatureC:          18.5,
		Condition:             "scattered clouds",
		Icon:                  "03d",
		Humidity:              72,
		WindSpeedMps:          4.5,
		TimezoneOffsetSeconds: &offset,
		ObservedAt:            &observed,
		UpdatedAt:             "2024-03-01T12:00:00Z",
	}
}

func newTestService(provider *mockProvider, store *countingStore) (*proxy.Service, *background.Group) {
	tasks := background.NewGroup(zerolog.Nop())
	svc := proxy.NewService(proxy.ServiceConfig{
		Cache:    store,
		Provider: provider,
		Tasks:    tasks,
		Logger:   zerolog.Nop(),
	})
	return svc, tasks
}

func TestService_CacheKeyRounding(t *testing.T) {
	svc, _ := newTestService(&mockProvider{configured: true}, newCountingStore())

	base := svc.CacheKey(41.27814, -81.3289235)
	assert.Equal(t, "weather:41.2781:-81.3289:v2", base)

	// Differences beyond the 4th decimal map to the same entry.
	assert.Equal(t, base, svc.CacheKey(41.2781401, -81.32892349))
	assert.NotEqual(t, base, svc.CacheKey(41.2782, -81.3289235))
}

func TestService_MissFetchesAndStoresOnce(t *testing.T) {
	provider := &mockProvider{configured: true, reading: testReading()}
	store := newCountingStore()
	svc, tasks := newTestService(provider, store)

	payload, hit, err := svc.Lookup(context.Background(), 41.27814, -81.3289235)
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, tasks.Wait(context.Background()))

	assert.Equal(t, 1, provider.callCount())
	assert.Equal(t, 1, store.setCount())

	var got weather.Reading
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, *testReading(), got)
}

func TestService_HitServesStoredBytesVerbatim(t *testing.T) {
	provider := &mockProvider{configured: true, reading: testReading()}
	store := newCountingStore()
	svc, tasks := newTestService(provider, store)

	missPayload, _, err := svc.Lookup(context.Background(), 41.27814, -81.3289235)
	require.NoError(t, err)
	require.NoError(t, tasks.Wait(context.Background()))

	hitPayload, hit, err := svc.Lookup(context.Background(), 41.27814, -81.3289235)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, missPayload, hitPayload)

	// No further upstream call or cache write on a hit.
	assert.Equal(t, 1, provider.callCount())
	assert.Equal(t, 1, store.setCount())
}

func TestService_UpstreamFailureNotCached(t *testing.T) {
	provider := &mockProvider{
		configured: true,
		err:        &weather.UpstreamError{Provider: "OpenWeatherMap", StatusCode: 503, Body: "down"},
	}
	store := newCountingStore()
	svc, tasks := newTestService(provider, store)

	_, _, err := svc.Lookup(context.Background(), 1, 2)
	var upstreamErr *weather.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	require.NoError(t, tasks.Wait(context.Background()))

	assert.Equal(t, 0, store.setCount())

	// Next lookup retries upstream.
	_, _, err = svc.Lookup(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Equal(t, 2, provider.callCount())
}
