// Package memo memoizes engine results keyed by input fingerprints.
package memo

import (
	"bytes"

	"github.com/puzpuzpuz/xsync/v4"
)

// entry pairs a cached value with the encoded input that produced it.
type entry[V any] struct {
	input []byte
	value V
}

// Cache is a concurrent map from a 64-bit fingerprint to a result.
//
// Each entry also keeps the encoded input, and a lookup only hits when the
// encodings match, so two inputs whose fingerprints collide never share a
// result. Values are passed through clone on both store and load so callers
// never share mutable slices with the cache.
type Cache[V any] struct {
	entries *xsync.Map[uint64, entry[V]]
	clone   func(V) V
}

// New creates an empty cache. A nil clone stores values as-is.
func New[V any](clone func(V) V) *Cache[V] {
	if clone == nil {
		clone = func(v V) V { return v }
	}

	return &Cache[V]{
		entries: xsync.NewMap[uint64, entry[V]](),
		clone:   clone,
	}
}

// Get returns a copy of the value stored under key for input.
//
// Parameters:
//   - key: Input fingerprint
//   - input: Canonical encoding of the input the fingerprint was built from
//
// Returns:
//   - V: Copy of the cached value
//   - bool: false on a miss or when the stored input differs
func (c *Cache[V]) Get(key uint64, input []byte) (V, bool) {
	e, ok := c.entries.Load(key)
	if !ok || !bytes.Equal(e.input, input) {
		var zero V
		return zero, false
	}

	return c.clone(e.value), true
}

// Put stores a copy of v and input under key, replacing any previous entry.
func (c *Cache[V]) Put(key uint64, input []byte, v V) {
	c.entries.Store(key, entry[V]{input: bytes.Clone(input), value: c.clone(v)})
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	return c.entries.Size()
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.entries.Clear()
}
