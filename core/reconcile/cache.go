package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache holds the last reconciliation report for a fixed set of sources.
type Cache struct {
	sources []Source
	ttl     time.Duration

	mu     sync.RWMutex
	report *Report
	sf     singleflight.Group
}

// NewCache creates a cache over the sources. A zero TTL disables caching.
func NewCache(ttl time.Duration, sources ...Source) *Cache {
	return &Cache{sources: sources, ttl: ttl}
}

// isFresh must be called with mu held.
func (c *Cache) isFresh() bool {
	return c.report != nil && c.ttl > 0 && time.Since(c.report.Built) <= c.ttl
}

// Get returns the cached report, or rebuilds it when missing or expired.
// Concurrent rebuilds are collapsed into one.
func (c *Cache) Get(ctx context.Context) (*Report, error) {
	// Fast path
	c.mu.RLock()
	if c.isFresh() {
		report := c.report
		c.mu.RUnlock()
		return report, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("report", func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		if c.isFresh() {
			report := c.report
			c.mu.RUnlock()
			return report, nil
		}
		c.mu.RUnlock()

		report, err := ReconcileAll(ctx, c.sources...)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.report = report
		c.mu.Unlock()
		return report, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Report), nil
}

// Invalidate drops the cached report.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.report = nil
	c.mu.Unlock()
}
