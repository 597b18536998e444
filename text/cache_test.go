package text

import (
	"image"
	"testing"
)

func testMask(advance float64) *GlyphImage {
	return &GlyphImage{
		Mask:    image.NewAlpha(image.Rect(0, -8, 6, 0)),
		Advance: advance,
	}
}

func TestGlyphCacheGetSet(t *testing.T) {
	c := NewGlyphCache()
	key := MaskKey{FontID: 1, GID: 42, Size: 16 * 64, Hinting: HintingFull}

	if got := c.Get(key); got != nil {
		t.Fatalf("empty cache returned %v", got)
	}

	want := testMask(7)
	c.Set(key, want)
	if got := c.Get(key); got != want {
		t.Errorf("Get = %v, want the stored mask", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	// Distinct sizes are distinct entries.
	other := key
	other.Size = 32 * 64
	if got := c.Get(other); got != nil {
		t.Errorf("different size hit the same entry: %v", got)
	}
}

func TestGlyphCacheLRUEviction(t *testing.T) {
	// Capacity 8 spreads to one entry per shard, so a second insert into
	// any shard must evict that shard's previous entry.
	c := NewGlyphCacheWithCapacity(numShards)

	a := MaskKey{FontID: 1, GID: 1}
	b := MaskKey{FontID: 1, GID: 1, Size: 64}
	if c.shard(a) != c.shard(b) {
		t.Skip("keys landed on different shards")
	}

	c.Set(a, testMask(1))
	c.Set(b, testMask(2))

	if got := c.Get(a); got != nil {
		t.Errorf("oldest entry survived eviction: %v", got)
	}
	if got := c.Get(b); got == nil {
		t.Error("newest entry was evicted")
	}

	_, _, evictions := c.Stats()
	if evictions != 1 {
		t.Errorf("evictions = %d, want 1", evictions)
	}
}

func TestGlyphCacheRecencyOrder(t *testing.T) {
	c := NewGlyphCacheWithCapacity(2 * numShards)

	a := MaskKey{FontID: 1, GID: 1}
	b := MaskKey{FontID: 1, GID: 1, Size: 64}
	d := MaskKey{FontID: 1, GID: 1, Size: 128}
	shard := c.shard(a)
	if c.shard(b) != shard || c.shard(d) != shard {
		t.Skip("keys landed on different shards")
	}

	c.Set(a, testMask(1))
	c.Set(b, testMask(2))
	c.Get(a) // refresh a, making b the LRU entry
	c.Set(d, testMask(3))

	if got := c.Get(b); got != nil {
		t.Error("least recently used entry survived")
	}
	if got := c.Get(a); got == nil {
		t.Error("refreshed entry was evicted")
	}
}

func TestGlyphCacheGetOrCreate(t *testing.T) {
	c := NewGlyphCache()
	key := MaskKey{FontID: 3, GID: 9}

	calls := 0
	create := func() *GlyphImage {
		calls++
		return testMask(5)
	}

	first := c.GetOrCreate(key, create)
	second := c.GetOrCreate(key, create)
	if first == nil || first != second {
		t.Errorf("GetOrCreate returned %v then %v", first, second)
	}
	if calls != 1 {
		t.Errorf("create ran %d times, want 1", calls)
	}

	t.Run("nil create result not cached", func(t *testing.T) {
		miss := MaskKey{FontID: 4, GID: 1}
		if got := c.GetOrCreate(miss, func() *GlyphImage { return nil }); got != nil {
			t.Errorf("GetOrCreate = %v, want nil", got)
		}
		if got := c.Get(miss); got != nil {
			t.Error("nil result was cached")
		}
	})
}

func TestGlyphCacheClear(t *testing.T) {
	c := NewGlyphCache()
	for i := 0; i < 20; i++ {
		c.Set(MaskKey{FontID: 1, GID: GlyphID(i)}, testMask(float64(i)))
	}
	if c.Len() != 20 {
		t.Fatalf("Len = %d, want 20", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
}

func TestGlyphCacheStats(t *testing.T) {
	c := NewGlyphCache()
	key := MaskKey{FontID: 1, GID: 1}

	c.Get(key) // miss
	c.Set(key, testMask(1))
	c.Get(key) // hit

	hits, misses, _ := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("hits=%d misses=%d, want 1/1", hits, misses)
	}
}

func TestGlyphImageEmpty(t *testing.T) {
	if !(*GlyphImage)(nil).Empty() {
		t.Error("nil GlyphImage should be empty")
	}
	if !(&GlyphImage{Advance: 4}).Empty() {
		t.Error("maskless GlyphImage should be empty")
	}
	if testMask(1).Empty() {
		t.Error("mask-bearing GlyphImage should not be empty")
	}
}
