package analysis

import (
	"sync"
	"time"

	"github.com/alexanderramin/telos/internal/domain"
)

// cacheEntry wraps a cached result with its bookkeeping timestamps.
type cacheEntry struct {
	result       *domain.AnalysisResult
	createdAt    time.Time
	lastAccessed time.Time
}

// resultCache is a bounded TTL cache keyed by raw input text. A stale hit
// is treated as a miss and evicted; inserting past capacity evicts the
// least recently accessed entry. Safe for concurrent use: results are
// immutable once stored, so readers never observe partial state.
type resultCache struct {
	mu       sync.RWMutex
	entries  map[string]*cacheEntry
	capacity int
	ttl      time.Duration

	// now is swappable for tests.
	now func() time.Time
}

func newResultCache(capacity int, ttl time.Duration) *resultCache {
	return &resultCache{
		entries:  make(map[string]*cacheEntry, capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// get returns the cached result for text, or nil on miss or expiry.
func (c *resultCache) get(text string) *domain.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[text]
	if !ok {
		return nil
	}
	if c.now().Sub(entry.createdAt) > c.ttl {
		delete(c.entries, text)
		return nil
	}
	entry.lastAccessed = c.now()
	return entry.result
}

// put stores a result, evicting the least recently used entry when full.
func (c *resultCache) put(text string, result *domain.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[text]; !exists && len(c.entries) >= c.capacity {
		c.evictLRU()
	}
	now := c.now()
	c.entries[text] = &cacheEntry{
		result:       result,
		createdAt:    now,
		lastAccessed: now,
	}
}

// evictLRU removes the entry with the oldest access time. Caller holds mu.
func (c *resultCache) evictLRU() {
	var oldestKey string
	var oldest time.Time
	first := true
	for key, entry := range c.entries {
		if first || entry.lastAccessed.Before(oldest) {
			oldestKey = key
			oldest = entry.lastAccessed
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

func (c *resultCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
