package core

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MaxCacheSize bounds each of the Cache's result sets.
const MaxCacheSize = 128

// Cache memoizes ProcessQuery and SimulateFailure results. Errors are not
// cached. It is safe for concurrent use.
type Cache struct {
	queries  *lru.Cache[string, string]
	failures *lru.Cache[string, string]
	hits     atomic.Uint64
	misses   atomic.Uint64
}

// CacheStats is a point-in-time view of a Cache.
type CacheStats struct {
	Hits, Misses uint64
	Queries      int
	Failures     int
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	// lru.New only fails for a non-positive size.
	queries, _ := lru.New[string, string](MaxCacheSize)
	failures, _ := lru.New[string, string](MaxCacheSize)
	return &Cache{queries: queries, failures: failures}
}

// Query is a cached ProcessQuery.
func (c *Cache) Query(query string) (string, error) {
	return c.lookup(c.queries, query, ProcessQuery)
}

// SimulatedFailure is a cached SimulateFailure.
func (c *Cache) SimulatedFailure(input string) (string, error) {
	return c.lookup(c.failures, input, SimulateFailure)
}

func (c *Cache) lookup(cache *lru.Cache[string, string], key string, fn func(string) (string, error)) (string, error) {
	if v, ok := cache.Get(key); ok {
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)
	v, err := fn(key)
	if err != nil {
		return "", err
	}
	cache.Add(key, v)
	return v, nil
}

// Clear drops every cached result and resets the counters.
func (c *Cache) Clear() {
	c.queries.Purge()
	c.failures.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns the current counters and sizes.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Queries:  c.queries.Len(),
		Failures: c.failures.Len(),
	}
}
