package googlebooks

import (
	"sync"
	"time"
)

type cacheEntry struct {
	volume  *Volume
	expires time.Time
}

// cache keeps volumes fetched by ID in memory.
type cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *cache) get(id string) (*Volume, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.volume, true
}

func (c *cache) set(id string, v *Volume) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = cacheEntry{
		volume:  v,
		expires: time.Now().Add(c.ttl),
	}
}
