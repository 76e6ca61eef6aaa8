package fleet

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// DefaultRefreshInterval matches the dashboard's 10-minute cadence.
const DefaultRefreshInterval = 10 * time.Minute

// Scheduler periodically refreshes the fleet. The first run fires
// immediately on start so the dashboard has data before the first
// interval elapses.
type Scheduler struct {
	scheduler *gocron.Scheduler
	fetcher   *Fetcher
	interval  time.Duration
	logger    zerolog.Logger
}

// NewScheduler creates a fleet refresh scheduler.
func NewScheduler(fetcher *Fetcher, interval time.Duration, logger zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		fetcher:   fetcher,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the periodic refresh and starts the scheduler in the
// background.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(func() {
		s.logger.Debug().Msg("running scheduled fleet refresh")
		s.fetcher.Refresh(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels future runs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
