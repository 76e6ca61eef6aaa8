// Package cache provides the key-value store the weather proxy caches
// normalized readings in. The store is an explicit dependency so the proxy
// is testable without a live edge runtime.
package cache

import (
	"context"
	"time"
)

// Store is a TTL-bound key-value store safe for concurrent use.
// A write race between two callers is last-writer-wins; within a TTL window
// both writers derived the value from the same upstream data, so either
// outcome is correct.
type Store interface {
	// Get returns the value for key, or false if absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl. Expiry is enforced by the
	// store itself; callers never re-validate age.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
