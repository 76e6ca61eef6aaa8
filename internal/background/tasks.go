// Package background runs deferred work that must outlive the HTTP
// response that scheduled it, and gives the host a handle to drain that
// work before tearing resources down.
package background

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"
)

// Group tracks fire-and-forget tasks. A request handler schedules work
// with Go and returns immediately; the owning server calls Wait during
// shutdown so scheduled work is guaranteed to complete.
type Group struct {
	wg     sync.WaitGroup
	logger zerolog.Logger
}

// NewGroup creates a task group.
func NewGroup(logger zerolog.Logger) *Group {
	return &Group{logger: logger}
}

// Go runs fn on its own goroutine. Panics are recovered and logged so a
// failing deferred write can never take the process down.
func (g *Group) Go(fn func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				g.logger.Error().
					Interface("panic", r).
					Str("stack", string(debug.Stack())).
					Msg("background task panicked")
			}
		}()
		fn()
	}()
}

// Wait blocks until every scheduled task has finished or ctx expires.
func (g *Group) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
