package assistcache

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	DefaultTTL      = 1 * time.Hour
	DefaultSweep    = 10 * time.Minute
	DefaultCapacity = 100

	// Minimum fuzzy ratio (0-100) for a paraphrased query to reuse an answer.
	DefaultMinScore = 85
)

// Chunk is one fragment of a streamed answer. A non-nil Err is a terminal
// signal: the stream failed and nothing accumulated so far may be cached.
type Chunk struct {
	Content string
	Err     error
}

type entry struct {
	answer   string
	seq      int64 // insertion order, used for fuzzy tie-breaks
	lastUsed int64 // recency, used for capacity eviction
}

// Cache maps normalized queries to previously generated answers. Entries
// expire after the TTL; at capacity, inserts evict the least-recently-used
// entry. Shared by all assist handlers, so every operation holds the mutex.
type Cache struct {
	mu       sync.Mutex
	store    *gocache.Cache
	capacity int
	minScore int
	seq      int64
}

type Option func(*Cache)

func WithCapacity(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func WithMinScore(score int) Option {
	return func(c *Cache) {
		c.minScore = score
	}
}

func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		store:    gocache.New(ttl, DefaultSweep),
		capacity: DefaultCapacity,
		minScore: DefaultMinScore,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize canonicalizes a raw query so trivial whitespace and case
// variants collide on the same key.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Lookup returns the cached answer for a query, trying an exact match on
// the normalized key first and falling back to the best fuzzy match at or
// above the minimum score. Ties go to the highest score, then to the most
// recently inserted key.
func (c *Cache) Lookup(query string) (string, bool) {
	key := Normalize(query)
	if key == "" {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e := c.get(key); e != nil {
		return c.touch(e), true
	}

	bestScore := c.minScore - 1
	var best *entry
	for existing, item := range c.store.Items() {
		e, ok := item.Object.(*entry)
		if !ok {
			continue
		}
		score := fuzzy.Ratio(key, existing)
		if score > bestScore || (score == bestScore && best != nil && e.seq > best.seq) {
			bestScore = score
			best = e
		}
	}
	if best == nil {
		return "", false
	}
	return c.touch(best), true
}

// Set stores an answer under the normalized query key. Overwriting the same
// key is permitted and idempotent.
func (c *Cache) Set(query, answer string) {
	key := Normalize(query)
	if key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, answer)
}

// RecordStreamed consumes a stream of answer fragments, forwarding each one
// through forward in arrival order while accumulating the full text. The
// concatenation is committed to the cache only when the stream closes
// cleanly; a chunk error or a forward failure (client gone) discards it.
func (c *Cache) RecordStreamed(query string, chunks <-chan Chunk, forward func(string) error) (string, error) {
	var b strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			return "", chunk.Err
		}
		if forward != nil {
			if err := forward(chunk.Content); err != nil {
				return "", err
			}
		}
		b.WriteString(chunk.Content)
	}

	answer := b.String()
	c.Set(query, answer)
	return answer, nil
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store.Items())
}

// get returns the live entry for an exact key, or nil.
func (c *Cache) get(key string) *entry {
	v, found := c.store.Get(key)
	if !found {
		return nil
	}
	e, ok := v.(*entry)
	if !ok {
		return nil
	}
	return e
}

// touch marks an entry as recently used without extending its TTL.
func (c *Cache) touch(e *entry) string {
	c.seq++
	e.lastUsed = c.seq
	return e.answer
}

func (c *Cache) set(key, answer string) {
	c.seq++
	if existing := c.get(key); existing != nil {
		existing.answer = answer
		existing.seq = c.seq
		existing.lastUsed = c.seq
		return
	}

	// Items filters expired-but-unswept entries, so expired slots free up
	// without evicting a live entry.
	if len(c.store.Items()) >= c.capacity {
		c.evictLRU()
	}
	c.store.Set(key, &entry{answer: answer, seq: c.seq, lastUsed: c.seq}, gocache.DefaultExpiration)
}

// evictLRU removes the entry with the oldest recency mark. Linear scan is
// fine at the capacities this cache runs with.
func (c *Cache) evictLRU() {
	var (
		victim string
		oldest int64 = -1
	)
	for key, item := range c.store.Items() {
		e, ok := item.Object.(*entry)
		if !ok {
			continue
		}
		if oldest == -1 || e.lastUsed < oldest {
			oldest = e.lastUsed
			victim = key
		}
	}
	if victim != "" {
		c.store.Delete(victim)
	}
}
