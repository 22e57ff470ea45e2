// Package cache holds recently decrypted note content so the engine does not
// pay a key derivation plus two GCM opens for every read of the same note.
//
// The cache is bounded (insertion-order eviction once full) and time-limited
// (entries expire after a TTL, collected by a periodic background sweep).
// Everything in it is plaintext, so the bound and the TTL are a containment
// measure: a stolen memory dump exposes at most the working set of the last
// few minutes.
package cache

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/quillsafe/notecrypt/internal/logger"
)

// keySeparator joins the composite cache key parts. The pipe cannot occur in
// base64 ciphertext, so keys never collide across users or notes.
const keySeparator = "|"

// Entry is a decrypted note held by the cache.
type Entry struct {
	Title   string
	Content string
}

type record struct {
	key        string
	data       Entry
	insertedAt time.Time
	elem       *list.Element
}

// Cache is a bounded, time-expiring map of decrypted notes. It is safe for
// concurrent use. The zero value is not usable; construct with [New].
type Cache struct {
	capacity      int
	ttl           time.Duration
	sweepInterval time.Duration
	logger        *logger.Logger

	mu      sync.Mutex
	entries map[string]*record
	order   *list.List // front = oldest inserted

	cancel context.CancelFunc
	wg     sync.WaitGroup

	now func() time.Time // injectable clock for expiry tests
}

// New constructs a Cache with the given bounds. The sweep job is idle until
// [Cache.Start] is called.
func New(capacity int, ttl, sweepInterval time.Duration, log *logger.Logger) *Cache {
	return &Cache{
		capacity:      capacity,
		ttl:           ttl,
		sweepInterval: sweepInterval,
		logger:        log,
		entries:       make(map[string]*record),
		order:         list.New(),
		now:           time.Now,
	}
}

// Key builds the composite cache key for one note: user id plus the note's
// encrypted title plus its IV, so re-encrypting a note (fresh IV) never hits
// a stale entry.
func Key(userID, encryptedTitle, iv string) string {
	return userID + keySeparator + encryptedTitle + keySeparator + iv
}

// Get returns the entry stored under key, if present and not expired.
// Expired entries are treated as absent even before the sweep removes them.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.entries[key]
	if !ok {
		return Entry{}, false
	}
	if c.now().Sub(rec.insertedAt) > c.ttl {
		c.removeLocked(rec)
		return Entry{}, false
	}
	return rec.data, true
}

// Put stores entry under key. When the cache is at capacity the single
// oldest-inserted entry is evicted first. Re-putting an existing key
// replaces its value and counts as a fresh insertion.
func (c *Cache) Put(key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rec, ok := c.entries[key]; ok {
		c.removeLocked(rec)
	}

	for len(c.entries) >= c.capacity {
		oldest := c.order.Front()
		if oldest == nil {
			break
		}
		c.removeLocked(oldest.Value.(*record))
	}

	rec := &record{key: key, data: entry, insertedAt: c.now()}
	rec.elem = c.order.PushBack(rec)
	c.entries[key] = rec
}

// InvalidateUser removes every entry belonging to userID. Called on
// sign-out.
func (c *Cache) InvalidateUser(userID string) {
	c.invalidatePrefix(userID + keySeparator)
}

// InvalidateNote removes every entry for one note of one user, matched by
// the note's encrypted-title ciphertext. Called when a note is updated and
// its old ciphertext becomes stale.
func (c *Cache) InvalidateNote(userID, encryptedTitle string) {
	c.invalidatePrefix(userID + keySeparator + encryptedTitle + keySeparator)
}

func (c *Cache) invalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, rec := range c.entries {
		if strings.HasPrefix(key, prefix) {
			c.removeLocked(rec)
		}
	}
}

// Purge drops every entry. Called on engine teardown so decrypted plaintext
// does not outlive the engine instance.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*record)
	c.order.Init()
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// removeLocked unlinks rec from both the map and the insertion-order list.
// Caller must hold c.mu.
func (c *Cache) removeLocked(rec *record) {
	delete(c.entries, rec.key)
	c.order.Remove(rec.elem)
}

// sweep removes all expired entries and reports how many were dropped.
func (c *Cache) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	cutoff := c.now().Add(-c.ttl)
	for elem := c.order.Front(); elem != nil; {
		rec := elem.Value.(*record)
		next := elem.Next()
		if rec.insertedAt.Before(cutoff) {
			c.removeLocked(rec)
			removed++
		}
		elem = next
	}
	return removed
}
