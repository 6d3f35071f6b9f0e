package registry

import (
	"container/list"
	"sync"
	"time"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
)

// LRUCache is a thread-safe LRU cache of athlete profiles. Entries older
// than the TTL are treated as missing; a zero TTL never expires.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	cache    map[string]*list.Element
	order    *list.List
	nowFn    func() time.Time
}

type cacheEntry struct {
	id       string
	athlete  v1.Athlete
	storedAt time.Time
}

// NewLRUCache creates a cache holding at most capacity athletes.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		cache:    make(map[string]*list.Element),
		order:    list.New(),
		nowFn:    time.Now,
	}
}

// Get returns a copy of the cached athlete, or nil on a miss or expiry.
func (c *LRUCache) Get(id string) *v1.Athlete {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.cache[id]
	if !exists {
		return nil
	}
	entry := elem.Value.(*cacheEntry)
	if c.ttl > 0 && c.nowFn().Sub(entry.storedAt) > c.ttl {
		delete(c.cache, id)
		c.order.Remove(elem)
		return nil
	}

	c.order.MoveToFront(elem)
	athlete := entry.athlete
	return &athlete
}

// Put stores a copy of the athlete, evicting the least recently used entry
// when full.
func (c *LRUCache) Put(athlete v1.Athlete) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowFn()
	if elem, exists := c.cache[athlete.ID]; exists {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		entry.athlete = athlete
		entry.storedAt = now
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.cache, oldest.Value.(*cacheEntry).id)
			c.order.Remove(oldest)
		}
	}

	elem := c.order.PushFront(&cacheEntry{id: athlete.ID, athlete: athlete, storedAt: now})
	c.cache[athlete.ID] = elem
}

// Invalidate drops one athlete.
func (c *LRUCache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.cache[id]
	if !exists {
		return
	}
	delete(c.cache, id)
	c.order.Remove(elem)
}

// Len returns the number of cached entries, expired ones included.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
