// Package cache provides the in-memory TTL cache used for AI results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

type item struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is a bounded TTL cache. When full, the oldest entry by
// insertion order is evicted.
type Cache struct {
	mu         sync.RWMutex
	items      map[string]item
	order      []string
	maxEntries int
	stop       chan struct{}
	stopOnce   sync.Once
}

func New(maxEntries int) *Cache {
	c := &Cache{
		items:      make(map[string]item),
		maxEntries: maxEntries,
		stop:       make(chan struct{}),
	}

	go c.cleanupLoop()

	return c
}

// Close stops the background cleanup goroutine. Safe to call more
// than once.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists {
		if c.maxEntries > 0 && len(c.items) >= c.maxEntries {
			c.evictOldestLocked()
		}
		c.order = append(c.order, key)
	}
	c.items[key] = item{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	it, exists := c.items[key]
	c.mu.RUnlock()
	if !exists {
		return nil, false
	}

	if time.Now().After(it.expiresAt) {
		c.mu.Lock()
		c.removeLocked(key)
		c.mu.Unlock()
		return nil, false
	}

	return it.value, true
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// GenerateKey derives a stable cache key from article text.
func GenerateKey(title, content string) string {
	h := sha256.New()
	h.Write([]byte(title + content))
	return hex.EncodeToString(h.Sum(nil))
}

// DayKey returns the UTC calendar-day bucket for daily content.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (c *Cache) evictOldestLocked() {
	for len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		if _, exists := c.items[oldest]; exists {
			delete(c.items, oldest)
			return
		}
	}
}

func (c *Cache) removeLocked(key string) {
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Hour)
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

func (c *Cache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, it := range c.items {
		if now.After(it.expiresAt) {
			c.removeLocked(key)
		}
	}
}
