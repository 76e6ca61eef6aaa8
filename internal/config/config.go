// Package config reads service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/officecast/officecast/internal/fleet"
	"github.com/officecast/officecast/internal/office"
	"github.com/officecast/officecast/internal/proxy"
)

// Proxy holds configuration for the edge proxy service.
type Proxy struct {
	// OpenWeatherAPIKey authenticates against OpenWeatherMap. Requests
	// fail with a configuration error when empty; the process still starts.
	OpenWeatherAPIKey string

	// OpenWeatherBaseURL overrides the upstream endpoint, used in tests.
	OpenWeatherBaseURL string

	// CacheTTL bounds how long a normalized reading is served from cache.
	CacheTTL time.Duration

	Port     string
	LogLevel string

	Telemetry Telemetry
}

// Dashboard holds configuration for the fleet dashboard service.
type Dashboard struct {
	// ProxyBaseURL is the edge proxy the fetcher fans out against.
	ProxyBaseURL string

	// RefreshInterval is the periodic fleet refresh cadence.
	RefreshInterval time.Duration

	// FetchTimeout bounds each per-office proxy call within a cycle.
	FetchTimeout time.Duration

	// OfficesFile optionally points at a YAML roster; the built-in fleet
	// is used when empty.
	OfficesFile string

	Offices []office.Office

	Port     string
	LogLevel string

	Telemetry Telemetry
}

// Telemetry holds OpenTelemetry exporter settings.
type Telemetry struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	SampleRatio float64
}

// LoadProxy reads the proxy configuration from the environment.
func LoadProxy() (*Proxy, error) {
	_ = godotenv.Load()

	ttl, err := getenvDuration("CACHE_TTL", proxy.DefaultTTL)
	if err != nil {
		return nil, err
	}

	return &Proxy{
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: os.Getenv("OPENWEATHER_BASE_URL"),
		CacheTTL:           ttl,
		Port:               getenvDefault("PORT", "8787"),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		Telemetry:          loadTelemetry("officecast-proxy"),
	}, nil
}

// LoadDashboard reads the dashboard configuration from the environment
// and resolves the office roster.
func LoadDashboard() (*Dashboard, error) {
	_ = godotenv.Load()

	refresh, err := getenvDuration("REFRESH_INTERVAL", fleet.DefaultRefreshInterval)
	if err != nil {
		return nil, err
	}
	fetchTimeout, err := getenvDuration("FLEET_FETCH_TIMEOUT", fleet.DefaultFetchTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &Dashboard{
		ProxyBaseURL:    getenvDefault("PROXY_BASE_URL", "http://localhost:8787"),
		RefreshInterval: refresh,
		FetchTimeout:    fetchTimeout,
		OfficesFile:     os.Getenv("OFFICES_FILE"),
		Port:            getenvDefault("PORT", "8080"),
		LogLevel:        getenvDefault("LOG_LEVEL", "info"),
		Telemetry:       loadTelemetry("officecast-dashboard"),
	}

	if cfg.OfficesFile != "" {
		cfg.Offices, err = office.Load(cfg.OfficesFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg.Offices = office.Defaults()
	}

	return cfg, nil
}

func loadTelemetry(service string) Telemetry {
	return Telemetry{
		Enabled:     getenvBool("OTEL_ENABLED", false),
		Endpoint:    getenvDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		ServiceName: getenvDefault("OTEL_SERVICE_NAME", service),
		SampleRatio: getenvFloat("OTEL_SAMPLE_RATIO", 1.0),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
