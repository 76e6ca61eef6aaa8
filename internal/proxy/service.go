// Package proxy implements the cache-aside retrieval core of the weather
// edge proxy: deterministic cache keys, TTL-bound reads, and deferred
// cache writes that never block the response.
package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/officecast/officecast/internal/background"
	"github.com/officecast/officecast/internal/cache"
	"github.com/officecast/officecast/internal/weather"
)

const (
	// DefaultTTL bounds how long a normalized reading is served from cache.
	DefaultTTL = 600 * time.Second

	// SchemaVersion is baked into every cache key. Bumping it invalidates
	// all stored entries without an explicit purge.
	SchemaVersion = "2"
)

// Provider fetches and normalizes current weather from the upstream API.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (*weather.Reading, error)
	Configured() bool
	Name() string
}

// ServiceConfig holds configuration for the proxy service.
type ServiceConfig struct {
	Cache    cache.Store
	Provider Provider
	Tasks    *background.Group
	Logger   zerolog.Logger

	// TTL for cached readings. Default: DefaultTTL.
	TTL time.Duration
}

// Service performs cache-aside weather lookups.
type Service struct {
	cache    cache.Store
	provider Provider
	tasks    *background.Group
	logger   zerolog.Logger
	ttl      time.Duration
}

// NewService creates a proxy service.
func NewService(cfg ServiceConfig) *Service {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{
		cache:    cfg.Cache,
		provider: cfg.Provider,
		tasks:    cfg.Tasks,
		logger:   cfg.Logger,
		ttl:      ttl,
	}
}

// TTL returns the configured cache TTL.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Configured reports whether the upstream credential is present.
func (s *Service) Configured() bool {
	return s.provider.Configured()
}

// CacheKey derives the cache key for a coordinate pair. Coordinates are
// rounded to 4 decimal places (~11m) to bound cache cardinality; requests
// differing only beyond that share an entry.
func (s *Service) CacheKey(lat, lon float64) string {
	return fmt.Sprintf("weather:%.4f:%.4f:v%s", lat, lon, SchemaVersion)
}

// Lookup returns the serialized normalized reading for a coordinate pair
// and whether it was served from cache. On a miss the upstream is called
// exactly once with the unrounded coordinates, and the cache write is
// scheduled on the background group so it cannot delay the response.
// Upstream failures are returned as-is and never cached, so the next
// request retries upstream.
func (s *Service) Lookup(ctx context.Context, lat, lon float64) ([]byte, bool, error) {
	key := s.CacheKey(lat, lon)

	if payload, ok := s.cache.Get(ctx, key); ok {
		s.logger.Debug().Str("key", key).Msg("cache hit")
		return payload, true, nil
	}

	reading, err := s.provider.Current(ctx, lat, lon)
	if err != nil {
		return nil, false, err
	}

	payload, err := json.Marshal(reading)
	if err != nil {
		return nil, false, fmt.Errorf("marshaling reading: %w", err)
	}

	// The request context dies with the response; the deferred write gets
	// its own so it always runs to completion.
	s.tasks.Go(func() {
		s.cache.Set(context.Background(), key, payload, s.ttl)
	})

	s.logger.Debug().
		Str("key", key).
		Str("provider", s.provider.Name()).
		Msg("cache miss, fetched upstream")

	return payload, false, nil
}
