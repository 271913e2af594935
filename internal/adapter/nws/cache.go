package nws

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Lookup result labels, also used as metric label values.
const (
	cacheHit     = "hit"
	cacheMiss    = "miss"
	cacheExpired = "expired"
)

// gridCache is a thread-safe LRU cache with TTL expiry mapping coordinate
// keys to resolved forecast endpoint URLs. Grid assignments shift only when
// NWS redraws its grids, so a bounded TTL keeps entries honest without
// re-resolving on every request. Forecast payloads are never cached here.
type gridCache struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock

	mu      sync.Mutex
	entries map[string]*gridEntry
	head    *gridEntry // most recently used
	tail    *gridEntry // least recently used
}

type gridEntry struct {
	key     string
	url     string
	expires time.Time
	prev    *gridEntry
	next    *gridEntry
}

func newGridCache(maxEntries int, ttl time.Duration, clock clockwork.Clock) *gridCache {
	return &gridCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clock,
		entries:    make(map[string]*gridEntry),
	}
}

// lookup returns the cached URL for key and a result label: cacheHit,
// cacheMiss, or cacheExpired. Expired entries are evicted on lookup.
func (c *gridCache) lookup(key string) (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", cacheMiss
	}
	if c.clock.Now().After(e.expires) {
		delete(c.entries, key)
		c.remove(e)
		return "", cacheExpired
	}
	c.moveToFront(e)
	return e.url, cacheHit
}

func (c *gridCache) put(key, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.clock.Now().Add(c.ttl)

	if e, ok := c.entries[key]; ok {
		e.url = url
		e.expires = expires
		c.moveToFront(e)
		return
	}

	e := &gridEntry{key: key, url: url, expires: expires}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *gridCache) moveToFront(e *gridEntry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *gridCache) addToFront(e *gridEntry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *gridCache) remove(e *gridEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *gridCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
