package cache

import (
	"sync"
	"time"
)

type entry struct {
	body     []byte
	storedAt time.Time
}

// Cache memoizes successful HTTP response bodies by request key for a
// fixed time-to-live. Expired entries are ignored on read and swept by
// a background ticker. Failed fetches are never stored, so the next
// identical call goes back to the network.
type Cache struct {
	mu            sync.RWMutex
	entries       map[string]entry
	ttl           time.Duration
	cleanupTicker *time.Ticker
	stopChan      chan struct{}
}

func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries:  make(map[string]entry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	c.cleanupTicker = time.NewTicker(10 * time.Minute)
	go c.cleanup()

	return c
}

// Get returns the cached body for key if it is still within the TTL.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[key]
	if !exists || time.Since(e.storedAt) > c.ttl {
		return nil, false
	}
	return e.body, true
}

// Set stores body under key, replacing any previous entry. Last write
// wins; re-fetching the same key is idempotent so no further
// coordination is needed.
func (c *Cache) Set(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{body: body, storedAt: time.Now()}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *Cache) cleanup() {
	for {
		select {
		case <-c.cleanupTicker.C:
			c.performCleanup()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Cache) performCleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-c.ttl)

	for key, e := range c.entries {
		if e.storedAt.Before(cutoff) {
			delete(c.entries, key)
		}
	}
}

func (c *Cache) Close() {
	c.cleanupTicker.Stop()
	close(c.stopChan)
}
