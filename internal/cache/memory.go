package cache

import (
	"context"
	"sync"
	"time"
)

const defaultCleanupInterval = 5 * time.Minute

// Memory is an in-process Store implementation. Expired entries are
// dropped lazily on read and swept periodically on write.
type Memory struct {
	mu          sync.RWMutex
	entries     map[string]entry
	lastCleanup time.Time
	cleanup     time.Duration
	now         func() time.Time
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithClock overrides the store's clock. Used in tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates an empty in-memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		entries: make(map[string]entry),
		cleanup: defaultCleanupInterval,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastCleanup = m.now()
	return m
}

// Get returns the value for key if present and fresh.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock; a fresher write may have landed.
		if cur, still := m.entries[key]; still && m.now().After(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{
		value:     value,
		expiresAt: now.Add(ttl),
	}
	m.cleanupLocked(now)
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) cleanupLocked(now time.Time) {
	if now.Sub(m.lastCleanup) < m.cleanup {
		return
	}
	m.lastCleanup = now
	for key, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, key)
		}
	}
}
