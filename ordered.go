package skiplist

import "github.com/akfreed/skiplist/ord"

// NewOrderedMap builds a Map over a builtin ordered key type without
// requiring the caller to write a comparator (SPEC_FULL.md §4.13).
func NewOrderedMap[K ord.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewMap[K, V](ord.Less[K](), opts...)
}

// NewOrderedMultimap builds a Multimap over a builtin ordered key type
// without requiring the caller to write a comparator.
func NewOrderedMultimap[K ord.Ordered, V any](opts ...Option) *Multimap[K, V] {
	return NewMultimap[K, V](ord.Less[K](), opts...)
}

// NewCustomOrderedMap builds a Map over a key type that implements
// ord.CmpType instead of a builtin ordered kind, so struct keys with their
// own Compare method don't need a hand-written Less func either
// (SPEC_FULL.md §4.13).
func NewCustomOrderedMap[K ord.CmpType, V any](opts ...Option) *Map[K, V] {
	return NewMap[K, V](ord.LessCmpType[K](), opts...)
}

// NewCustomOrderedMultimap builds a Multimap over a key type that
// implements ord.CmpType.
func NewCustomOrderedMultimap[K ord.CmpType, V any](opts ...Option) *Multimap[K, V] {
	return NewMultimap[K, V](ord.LessCmpType[K](), opts...)
}
