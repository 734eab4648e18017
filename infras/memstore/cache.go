package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
	"time"

	"vetclinic/shared/cache"
)

type entry struct {
	value     []byte
	count     int64
	expiresAt time.Time
}

// Cache is an in-process cache.RedisCache. Clear patterns follow path.Match rules,
// which agree with redis glob patterns for the '*' suffixes used here.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
}

func NewCache() *Cache {
	return &Cache{entries: map[string]entry{}}
}

var _ cache.RedisCache = (*Cache)(nil)

func expiry(seconds int) time.Time {
	if seconds <= 0 {
		return time.Time{}
	}

	return time.Now().Add(time.Duration(seconds) * time.Second)
}

func (c *Cache) live(key string) (entry, bool) {
	e, ok := c.entries[key]
	if !ok {
		return entry{}, false
	}

	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)

		return entry{}, false
	}

	return e, true
}

func (c *Cache) Save(_ context.Context, key string, value any, duration int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: raw, expiresAt: expiry(duration)}

	return nil
}

func (c *Cache) Get(_ context.Context, key string, value any) error {
	c.mu.Lock()
	e, ok := c.live(key)
	c.mu.Unlock()

	if !ok || e.value == nil {
		return fmt.Errorf("failed to get cache value: %w", cache.Nil)
	}

	if err := json.Unmarshal(e.value, value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

func (c *Cache) Clear(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return fmt.Errorf("failed to match cache pattern: %w", err)
		}

		if matched {
			delete(c.entries, key)
		}
	}

	return nil
}

func (c *Cache) Increment(_ context.Context, key string, duration int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.live(key)
	if !ok {
		e = entry{expiresAt: expiry(duration)}
	}

	e.count++
	c.entries[key] = e

	return e.count, nil
}

// Has reports whether key holds a live value.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.live(key)

	return ok
}
