package translate

import (
	"github.com/emirpasic/gods/maps/hashmap"
)

// Cache memoizes translation results, keyed by the exact source sentence
// text. Entries live for the process lifetime and are never evicted;
// unbounded growth is an accepted trade-off.
//
// A Cache is not safe for unsynchronized concurrent mutation. Its scope is
// single-threaded use within one shaping call, per the host contract.
type Cache struct {
	entries *hashmap.Map
}

// NewCache creates an empty translation cache.
func NewCache() *Cache {
	return &Cache{entries: hashmap.New()}
}

// GetOrCompute returns the cached translation for key, or invokes compute
// on a miss. A successful computation is stored and returned. A failed one
// returns key unchanged and is NOT cached, so that a transient failure may
// be retried for a later identical sentence.
func (c *Cache) GetOrCompute(key string, compute func() (string, error)) string {
	if v, ok := c.entries.Get(key); ok {
		tracer().Debugf("cache hit: %q", key)
		return v.(string)
	}
	out, err := compute()
	if err != nil {
		tracer().Errorf("translation of %q failed: %v", key, err)
		return key
	}
	c.entries.Put(key, out)
	return out
}

// Size returns the number of memoized sentences.
func (c *Cache) Size() int {
	return c.entries.Size()
}
