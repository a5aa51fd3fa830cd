// Package cache provides the durable TTL key-value store used for fetched
// station sets. Values are checked against their TTL at read time; there is
// no background eviction. Writes to the same key are last-write-wins, which
// is acceptable because cached values are pure functions of stable inputs.
package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is how long a cached station set stays fresh.
const DefaultTTL = 24 * time.Hour

// DurableCache is a keyed store with a TTL checked on read. The second
// return value of Get reports whether a fresh entry was found.
type DurableCache[V any] interface {
	Get(ctx context.Context, key string) (V, bool, error)
	Put(ctx context.Context, key string, value V) error
	Close() error
}

type memoryEntry[V any] struct {
	value     V
	timestamp time.Time
}

// MemoryCache is an in-memory DurableCache implementation, used in tests and
// when no cache path is configured.
type MemoryCache[V any] struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]memoryEntry[V]
	now     func() time.Time
}

// NewMemoryCache creates a MemoryCache with the given TTL.
func NewMemoryCache[V any](ttl time.Duration) *MemoryCache[V] {
	return &MemoryCache[V]{
		ttl:     ttl,
		entries: make(map[string]memoryEntry[V]),
		now:     time.Now,
	}
}

func (c *MemoryCache[V]) Get(ctx context.Context, key string) (V, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	entry, ok := c.entries[key]
	if !ok {
		return zero, false, nil
	}
	if c.now().Sub(entry.timestamp) >= c.ttl {
		return zero, false, nil
	}
	return entry.value, true, nil
}

func (c *MemoryCache[V]) Put(ctx context.Context, key string, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry[V]{value: value, timestamp: c.now()}
	return nil
}

func (c *MemoryCache[V]) Close() error {
	return nil
}
