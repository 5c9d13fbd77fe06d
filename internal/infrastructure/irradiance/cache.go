package irradiance

import (
	"context"
	"sync"
	"time"

	"solarvizyon/internal/domain/entities"
)

type cacheItem struct {
	value      entities.YieldEstimate
	expiration int64
}

// yieldCache is an in-memory TTL cache for provider responses. Entries are
// immutable once computed, so readers only need the shared lock.
type yieldCache struct {
	mu    sync.RWMutex
	items map[string]cacheItem
	stop  chan struct{}
}

func newYieldCache(cleanupInterval time.Duration) *yieldCache {
	c := &yieldCache{
		items: make(map[string]cacheItem),
		stop:  make(chan struct{}),
	}
	go c.cleanupLoop(cleanupInterval)
	return c
}

func (c *yieldCache) set(key string, value entities.YieldEstimate, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiration int64
	if ttl > 0 {
		expiration = time.Now().Add(ttl).UnixNano()
	}
	c.items[key] = cacheItem{value: value, expiration: expiration}
}

func (c *yieldCache) get(key string) (entities.YieldEstimate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return entities.YieldEstimate{}, false
	}
	if item.expiration > 0 && time.Now().UnixNano() > item.expiration {
		return entities.YieldEstimate{}, false
	}
	return item.value, true
}

// getOrLoad returns the cached estimate or loads and caches a fresh one.
// The loader is skipped entirely when the context is already cancelled.
func (c *yieldCache) getOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (entities.YieldEstimate, error)) (entities.YieldEstimate, error) {
	if value, found := c.get(key); found {
		return value, nil
	}

	select {
	case <-ctx.Done():
		return entities.YieldEstimate{}, ctx.Err()
	default:
	}

	value, err := loader(ctx)
	if err != nil {
		return entities.YieldEstimate{}, err
	}
	c.set(key, value, ttl)
	return value, nil
}

func (c *yieldCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *yieldCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

func (c *yieldCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for key, item := range c.items {
		if item.expiration > 0 && now > item.expiration {
			delete(c.items, key)
		}
	}
}

func (c *yieldCache) close() {
	close(c.stop)
}
