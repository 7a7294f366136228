package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/rpeart73/clockwork-elite/internal/models"
)

// DefaultTTL keeps cached results short-lived: relative date expressions
// resolve against the current day, so yesterday's extraction of the same text
// may no longer be correct.
const DefaultTTL = 10 * time.Minute

// Result is one cached run of the note pipeline.
type Result struct {
	Contacts    []models.PointOfContact
	Note        string
	Pending     bool
	HasOverride bool
}

type entry struct {
	result    Result
	expiresAt time.Time
}

// Cache is an in-memory TTL cache for pipeline results.
type Cache struct {
	entries map[string]entry
	mutex   sync.RWMutex
	ttl     time.Duration
}

// New creates a cache. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Key derives the cache key for a pipeline invocation from its inputs.
func Key(text, client, staff string) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(client))
	h.Write([]byte{0})
	h.Write([]byte(staff))
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached result if present and not expired.
func (c *Cache) Get(key string) (Result, bool) {
	c.mutex.RLock()
	e, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		return Result{}, false
	}
	if time.Now().After(e.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		return Result{}, false
	}
	return e.result, true
}

// Set stores a result under the key with the cache's TTL.
func (c *Cache) Set(key string, result Result) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = entry{
		result:    result,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Delete removes a single entry.
func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}
