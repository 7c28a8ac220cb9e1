package skiplist

import "github.com/cespare/xxhash/v2"

// NewHashedMap builds a Map whose order is derived from hash, a digest
// function over K, via xxhash.Sum64 composed with the caller's hash
// (SPEC_FULL.md §4.13). This is for keys with no natural order (structs,
// etc.) where callers only need a consistent iteration order, not a
// semantically meaningful one — ties (hash collisions) fall back to
// comparing the raw bytes, so distinct keys never collapse into one slot.
func NewHashedMap[K comparable, V any](hash func(K) []byte, opts ...Option) *Map[K, V] {
	return NewMap[K, V](hashedLess(hash), opts...)
}

// NewHashedMultimap builds a Multimap ordered by a hash digest, as
// NewHashedMap.
func NewHashedMultimap[K comparable, V any](hash func(K) []byte, opts ...Option) *Multimap[K, V] {
	return NewMultimap[K, V](hashedLess(hash), opts...)
}

func hashedLess[K comparable](hash func(K) []byte) Less[K] {
	return func(a, b K) bool {
		ha, hb := xxhash.Sum64(hash(a)), xxhash.Sum64(hash(b))
		if ha != hb {
			return ha < hb
		}
		ba, bb := hash(a), hash(b)
		for i := 0; i < len(ba) && i < len(bb); i++ {
			if ba[i] != bb[i] {
				return ba[i] < bb[i]
			}
		}
		return len(ba) < len(bb)
	}
}
