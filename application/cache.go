package application

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"clx/logging"
)

// CacheKey identifies one memoized dataset
type CacheKey string

const (
	KeyHistory     CacheKey = "history"
	KeyStats       CacheKey = "stats"
	KeyProjects    CacheKey = "projects"
	KeySessions    CacheKey = "sessions"
	KeyPlans       CacheKey = "plans"
	KeyGlobalStats CacheKey = "globalstats"
)

// Cache memoizes whole-dataset parse results so repeated queries don't
// re-scan the data directory. A key, once populated, returns the identical
// value until explicitly invalidated; there is no TTL and no staleness check
// against the underlying files.
//
// Invalidation is per-key or blanket, with no cascading: invalidating
// "projects" does not invalidate the derived "sessions". Dependent keys
// recompute from freshly-fetched dependencies only when they themselves are
// repopulated, so callers that want a consistent view across dependent keys
// must invalidate every key involved (or use InvalidateAll). This is a known,
// deliberate trade-off, not a bug.
type Cache struct {
	mu      sync.Mutex
	entries map[CacheKey]any
	group   singleflight.Group
}

// NewCache creates an empty cache. One instance is constructed at startup,
// owned by the container, and injected into every consumer.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[CacheKey]any),
	}
}

// Invalidate drops one key, forcing the next access to recompute
func (c *Cache) Invalidate(key CacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	logging.Logger.Debug("Cache invalidated", "key", string(key))
}

// InvalidateAll drops every key
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[CacheKey]any)
	logging.Logger.Debug("Cache invalidated", "key", "*")
}

// lookup returns the memoized value for key, if populated
func (c *Cache) lookup(key CacheKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// store memoizes a value, last writer wins
func (c *Cache) store(key CacheKey, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// cached returns the memoized value for key, populating it with load on a
// miss. Concurrent loads of the same key are collapsed into a single call.
func cached[T any](c *Cache, key CacheKey, load func() (T, error)) (T, error) {
	if v, ok := c.lookup(key); ok {
		return v.(T), nil
	}

	v, err, _ := c.group.Do(string(key), func() (any, error) {
		// Re-check after winning the flight: a previous flight may have
		// populated the key between our miss and now
		if v, ok := c.lookup(key); ok {
			return v, nil
		}

		loaded, err := load()
		if err != nil {
			return loaded, err
		}
		c.store(key, loaded)
		logging.Logger.Debug("Cache populated", "key", string(key))
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
