package fleet

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/officecast/officecast/internal/office"
	"github.com/officecast/officecast/internal/weather"
)

// fallbackErrorMessage is shown when a fetch fails without a message.
const fallbackErrorMessage = "Unknown weather fetch error"

// DefaultFetchTimeout bounds a single office fetch so one hung upstream
// cannot wedge a refresh cycle.
const DefaultFetchTimeout = 15 * time.Second

// Snapshot is the observable state of the fleet after (or during) a
// refresh cycle. For any office at most one of WeatherByOffice and
// ErrorsByOffice holds an entry once a cycle completes.
type Snapshot struct {
	WeatherByOffice  map[string]weather.DisplayReading `json:"weatherByOffice"`
	ErrorsByOffice   map[string]string                 `json:"errorsByOffice"`
	LoadingByOffice  map[string]bool                   `json:"loadingByOffice"`
	IsInitialLoading bool                              `json:"isInitialLoading"`
}

// FetcherConfig holds configuration for the fleet fetcher.
type FetcherConfig struct {
	Offices []office.Office
	Source  Source
	Logger  zerolog.Logger

	// FetchTimeout bounds each office fetch. Default: DefaultFetchTimeout.
	FetchTimeout time.Duration
}

// Fetcher fans out one proxy request per office, waits for all of them to
// settle, and publishes the cycle's results as one atomic replacement.
type Fetcher struct {
	offices []office.Office
	source  Source
	logger  zerolog.Logger
	timeout time.Duration

	mu              sync.RWMutex
	weatherByOffice map[string]weather.DisplayReading
	errorsByOffice  map[string]string
	loadingByOffice map[string]bool
	initialLoading  bool
}

// NewFetcher creates a fleet fetcher.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	timeout := cfg.FetchTimeout
	if timeout == 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{
		offices:         cfg.Offices,
		source:          cfg.Source,
		logger:          cfg.Logger,
		timeout:         timeout,
		weatherByOffice: make(map[string]weather.DisplayReading),
		errorsByOffice:  make(map[string]string),
		loadingByOffice: make(map[string]bool),
		initialLoading:  true,
	}
}

type fetchResult struct {
	officeID string
	reading  weather.DisplayReading
	errMsg   string
	failed   bool
}

// Refresh runs one full fetch cycle and blocks until every office has
// settled. Concurrent calls are allowed and are not deduplicated; each
// cycle publishes its complete result set in a single critical section,
// so interleaved cycles can never mix maps. Last cycle to finish wins.
func (f *Fetcher) Refresh(ctx context.Context) {
	start := time.Now()

	// Flag every office as loading but keep prior data visible until the
	// cycle completes.
	f.mu.Lock()
	for _, o := range f.offices {
		f.loadingByOffice[o.ID] = true
	}
	f.mu.Unlock()

	results := make(chan fetchResult, len(f.offices))
	var wg sync.WaitGroup
	for _, o := range f.offices {
		wg.Add(1)
		go func(o office.Office) {
			defer wg.Done()
			results <- f.fetchOne(ctx, o)
		}(o)
	}
	wg.Wait()
	close(results)

	nextWeather := make(map[string]weather.DisplayReading, len(f.offices))
	nextErrors := make(map[string]string)
	for res := range results {
		if res.failed {
			nextErrors[res.officeID] = res.errMsg
		} else {
			nextWeather[res.officeID] = res.reading
		}
	}

	f.publish(nextWeather, nextErrors)

	f.logger.Info().
		Int("offices", len(f.offices)).
		Int("succeeded", len(nextWeather)).
		Int("failed", len(nextErrors)).
		Dur("duration", time.Since(start)).
		Msg("fleet refresh completed")
}

func (f *Fetcher) fetchOne(ctx context.Context, o office.Office) fetchResult {
	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	reading, err := f.source.Fetch(fetchCtx, o)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = fallbackErrorMessage
		}
		f.logger.Warn().
			Str("office", o.ID).
			Err(err).
			Msg("office weather fetch failed")
		return fetchResult{officeID: o.ID, errMsg: msg, failed: true}
	}
	return fetchResult{officeID: o.ID, reading: reading}
}

// publish replaces both result maps with exactly this cycle's outcome.
// A full replace, never a merge: an office that errored this cycle must
// not retain a prior cycle's stale success value, and vice versa.
func (f *Fetcher) publish(nextWeather map[string]weather.DisplayReading, nextErrors map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.weatherByOffice = nextWeather
	f.errorsByOffice = nextErrors
	f.loadingByOffice = make(map[string]bool, len(f.offices))
	for _, o := range f.offices {
		f.loadingByOffice[o.ID] = false
	}
	// Latches false after the first completed cycle, whatever its outcome.
	f.initialLoading = false
}

// Snapshot returns a copy of the current fleet state.
func (f *Fetcher) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	snap := Snapshot{
		WeatherByOffice:  make(map[string]weather.DisplayReading, len(f.weatherByOffice)),
		ErrorsByOffice:   make(map[string]string, len(f.errorsByOffice)),
		LoadingByOffice:  make(map[string]bool, len(f.loadingByOffice)),
		IsInitialLoading: f.initialLoading,
	}
	for id, reading := range f.weatherByOffice {
		snap.WeatherByOffice[id] = reading
	}
	for id, msg := range f.errorsByOffice {
		snap.ErrorsByOffice[id] = msg
	}
	for id, loading := range f.loadingByOffice {
		snap.LoadingByOffice[id] = loading
	}
	return snap
}

// Offices returns the configured fleet.
func (f *Fetcher) Offices() []office.Office {
	return f.offices
}
