package text

import (
	"sync"
	"sync/atomic"
)

// numShards is the number of cache shards for reduced lock contention.
const numShards = 8

// defaultMaxEntries is the capacity of a cache built with NewGlyphCache.
const defaultMaxEntries = 4096

// MaskKey uniquely identifies a rasterized glyph mask.
type MaskKey struct {
	// FontID identifies the FontSource the glyph came from.
	FontID uint64

	// GID is the glyph index within the font.
	GID GlyphID

	// Size is the face size in 26.6 fixed point.
	Size int32

	// Hinting is the hinting mode used for rasterization.
	Hinting Hinting
}

// GlyphCache is a sharded LRU cache for rasterized glyph masks. Drawing
// the same glyphs repeatedly (the common case for text) hits the cache
// instead of re-running the outline rasterizer.
//
// GlyphCache is safe for concurrent use.
type GlyphCache struct {
	shards [numShards]*maskShard
	stats  cacheStats
}

type cacheStats struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// maskEntry is a node in a shard's LRU list.
type maskEntry struct {
	key   MaskKey
	value *GlyphImage
	prev  *maskEntry
	next  *maskEntry
}

type maskShard struct {
	mu         sync.Mutex
	entries    map[MaskKey]*maskEntry
	head       *maskEntry
	tail       *maskEntry
	maxEntries int
}

// NewGlyphCache creates a glyph cache with the default capacity.
func NewGlyphCache() *GlyphCache {
	return NewGlyphCacheWithCapacity(defaultMaxEntries)
}

// NewGlyphCacheWithCapacity creates a glyph cache holding at most
// maxEntries masks across all shards.
func NewGlyphCacheWithCapacity(maxEntries int) *GlyphCache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	perShard := (maxEntries + numShards - 1) / numShards

	c := &GlyphCache{}
	for i := range c.shards {
		c.shards[i] = &maskShard{
			entries:    make(map[MaskKey]*maskEntry, perShard),
			maxEntries: perShard,
		}
	}
	return c
}

// Get retrieves a cached mask, or nil when absent.
func (c *GlyphCache) Get(key MaskKey) *GlyphImage {
	shard := c.shard(key)

	shard.mu.Lock()
	entry, ok := shard.entries[key]
	if !ok {
		shard.mu.Unlock()
		c.stats.misses.Add(1)
		return nil
	}
	shard.moveToFront(entry)
	value := entry.value
	shard.mu.Unlock()

	c.stats.hits.Add(1)
	return value
}

// Set stores a mask, evicting the least recently used entries when the
// shard is full.
func (c *GlyphCache) Set(key MaskKey, value *GlyphImage) {
	if value == nil {
		return
	}
	shard := c.shard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if existing, ok := shard.entries[key]; ok {
		existing.value = value
		shard.moveToFront(existing)
		return
	}

	for len(shard.entries) >= shard.maxEntries && shard.tail != nil {
		delete(shard.entries, shard.tail.key)
		shard.remove(shard.tail)
		c.stats.evictions.Add(1)
	}

	entry := &maskEntry{key: key, value: value}
	shard.entries[key] = entry
	shard.addToFront(entry)
}

// GetOrCreate retrieves a cached mask or builds one with create and
// caches it. A nil result from create is not cached.
func (c *GlyphCache) GetOrCreate(key MaskKey, create func() *GlyphImage) *GlyphImage {
	if v := c.Get(key); v != nil {
		return v
	}
	if create == nil {
		return nil
	}
	v := create()
	if v != nil {
		c.Set(key, v)
	}
	return v
}

// Len returns the total number of cached masks.
func (c *GlyphCache) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.Lock()
		total += len(shard.entries)
		shard.mu.Unlock()
	}
	return total
}

// Clear removes all entries.
func (c *GlyphCache) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		shard.entries = make(map[MaskKey]*maskEntry, shard.maxEntries)
		shard.head = nil
		shard.tail = nil
		shard.mu.Unlock()
	}
}

// Stats returns cumulative hit, miss, and eviction counts.
func (c *GlyphCache) Stats() (hits, misses, evictions uint64) {
	return c.stats.hits.Load(), c.stats.misses.Load(), c.stats.evictions.Load()
}

func (c *GlyphCache) shard(key MaskKey) *maskShard {
	h := key.FontID
	h = h*31 + uint64(key.GID)
	h = h*31 + uint64(uint32(key.Size))
	h = h*31 + uint64(key.Hinting)
	return c.shards[h%numShards]
}

func (s *maskShard) addToFront(entry *maskEntry) {
	entry.prev = nil
	entry.next = s.head
	if s.head != nil {
		s.head.prev = entry
	}
	s.head = entry
	if s.tail == nil {
		s.tail = entry
	}
}

func (s *maskShard) moveToFront(entry *maskEntry) {
	if entry == s.head {
		return
	}
	s.remove(entry)
	s.addToFront(entry)
}

func (s *maskShard) remove(entry *maskEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		s.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		s.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}
