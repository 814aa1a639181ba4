// Package cache provides the in-memory TTL store used to replay recent chat
// responses without another generative backend round trip.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dermalens/backend/internal/domain"
)

const cleanupInterval = 10 * time.Minute

// entry is a single cached value with its expiration.
type entry struct {
	value      interface{}
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL support.
type MemoryCache struct {
	data  map[string]entry
	mutex sync.RWMutex
	stop  chan struct{}
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup
// goroutine.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]entry),
		stop: make(chan struct{}),
	}
	go c.cleanupExpired()
	return c
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, exists := c.data[key]
	if !exists || time.Now().After(e.expiration) {
		return nil, domain.ErrCacheMiss
	}
	return e.value, nil
}

// Set stores a value in the cache with TTL. Values are round-tripped
// through JSON so cached data has the same shape it would have coming from
// an external store like Redis.
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var stored interface{}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data[key] = entry{
		value:      stored,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired.
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, exists := c.data[key]
	if !exists || time.Now().After(e.expiration) {
		return false, nil
	}
	return true, nil
}

// Size returns the current number of items in the cache.
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache.
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]entry)
}

// Close stops the cleanup goroutine.
func (c *MemoryCache) Close() {
	close(c.stop)
}

// cleanupExpired removes expired entries periodically until Close is called.
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mutex.Lock()
			now := time.Now()
			for key, e := range c.data {
				if now.After(e.expiration) {
					delete(c.data, key)
				}
			}
			c.mutex.Unlock()
		}
	}
}
