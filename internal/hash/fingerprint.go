// Package hash computes stable 64-bit fingerprints of engine inputs.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/arloliu/persuade/types"
)

// Fingerprint folds a sequence of values into a single xxh3 64-bit hash.
//
// Each value is hashed with the running hash as seed, so the result depends
// on order. The canonical encoding of every folded value is kept as well, so
// a cache can tell two inputs apart when their hashes collide.
type Fingerprint struct {
	h   uint64
	buf []byte
}

// New starts a fingerprint for the given kind of input.
//
// Parameters:
//   - kind: Domain separator (e.g., "policy", "plan")
//   - seed: Seed for the hash function (0 means unseeded)
//
// Returns:
//   - *Fingerprint: Fingerprint ready to accept values
func New(kind string, seed uint64) *Fingerprint {
	buf := append([]byte(kind), 0)
	if seed != 0 {
		return &Fingerprint{h: xxh3.HashStringSeed(kind, seed), buf: buf}
	}

	return &Fingerprint{h: xxh3.HashString(kind), buf: buf}
}

// Float folds the IEEE-754 bits of v.
func (f *Fingerprint) Float(v float64) *Fingerprint {
	return f.Uint(math.Float64bits(v))
}

// Int folds v.
func (f *Fingerprint) Int(v int) *Fingerprint {
	return f.Uint(uint64(v)) //nolint:gosec // bit pattern only
}

// Uint folds v.
func (f *Fingerprint) Uint(v uint64) *Fingerprint {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	f.h = xxh3.HashSeed(b[:], f.h)
	f.buf = append(f.buf, b[:]...)

	return f
}

// Bool folds v as 0 or 1.
func (f *Fingerprint) Bool(v bool) *Fingerprint {
	if v {
		return f.Uint(1)
	}

	return f.Uint(0)
}

// Receivers folds every receiver's belief and weight, in order.
func (f *Fingerprint) Receivers(receivers []types.ReceiverType) *Fingerprint {
	f.Int(len(receivers))
	for _, r := range receivers {
		f.Float(r.Belief).Float(r.Weight)
	}

	return f
}

// Distribution folds every belief point, in order.
func (f *Fingerprint) Distribution(dist types.BeliefDistribution) *Fingerprint {
	f.Int(len(dist))
	for _, p := range dist {
		f.Float(p.Belief).Float(p.Probability)
	}

	return f
}

// Sum64 returns the fingerprint.
func (f *Fingerprint) Sum64() uint64 {
	return f.h
}

// Bytes returns the canonical encoding of the kind and every folded value.
// Equal encodings mean equal inputs; the slice must not be modified.
func (f *Fingerprint) Bytes() []byte {
	return f.buf
}
