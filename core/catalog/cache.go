package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache holds the most recently loaded catalog of a Source.
type Cache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	current *Catalog
	built   time.Time

	sf singleflight.Group
}

// NewCache wraps source. A zero ttl disables caching.
func NewCache(source Source, ttl time.Duration) *Cache {
	return &Cache{source: source, ttl: ttl, now: time.Now}
}

func (c *Cache) fresh() (*Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil || c.ttl == 0 {
		return nil, false
	}
	return c.current, c.now().Sub(c.built) <= c.ttl
}

// Get returns the cached catalog, loading it when missing or expired.
// Concurrent callers share one load.
func (c *Cache) Get(ctx context.Context) (*Catalog, error) {
	if cat, ok := c.fresh(); ok {
		return cat, nil
	}

	result, err, _ := c.sf.Do(c.source.Name(), func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		if cat, ok := c.fresh(); ok {
			return cat, nil
		}

		start := c.now()
		cat, err := c.source.Load(ctx)
		if err != nil {
			return nil, err
		}
		zap.L().Debug("Catalog loaded",
			zap.String("source", c.source.Name()),
			zap.Int("items", cat.Len()),
			zap.Duration("duration", c.now().Sub(start)))

		c.mu.Lock()
		c.current = cat
		c.built = c.now()
		c.mu.Unlock()
		return cat, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Catalog), nil
}

// Invalidate drops the cached catalog so the next Get reloads it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}

// Provider hands out the current catalog.
type Provider interface {
	Get(ctx context.Context) (*Catalog, error)
}

var (
	_ Provider = (*Cache)(nil)
	_ Provider = Fixed{}
)

// Fixed is a Provider that always returns the same catalog.
type Fixed struct {
	Catalog *Catalog
}

// Get implements Provider.
func (f Fixed) Get(context.Context) (*Catalog, error) {
	return f.Catalog, nil
}
