package skiplist

// cloneCore rebuilds a fully balanced copy of c with a fresh RNG, matching
// spec.md §5 ("copying the container produces a fully balanced clone...
// copy seeds a fresh RNG"). Appending every entry in order keeps every
// hinted insert on the good-hint fast path; the trailing Balance call
// then guarantees the canonical shape regardless of insertion history.
func cloneCore[K, V any](c *core[K, V]) *core[K, V] {
	out := newCore[K, V](c.less, c.multimap, NewConfig())
	for n := c.beginNode; n != nil; n = n.next {
		key, value := n.key(), n.entry.value
		out.insertWithHint(nil, key, valueProducer[K, V](key, value))
	}
	out.balance()
	return out
}

// swapCore exchanges the entire internal state of a and b in place, mirroring
// the C++ original's member/free-function swap() (original_source
// Skiplist.hpp; recovered per SPEC_FULL.md §4.14).
func swapCore[K, V any](a, b *core[K, V]) {
	*a, *b = *b, *a
}

// forEach visits every entry in order using a BalancingIterator, so a
// full traversal leaves the container balanced (spec.md §6 "in-order
// visit with automatic balancing").
func (c *core[K, V]) forEach(fn func(K, V)) {
	it := newBalancingFromBegin(c)
	for it.Valid() {
		fn(it.Key(), it.Value())
		it.Next()
	}
}

// forEachNoBalance visits every entry in order without mutating the
// structure.
func (c *core[K, V]) forEachNoBalance(fn func(K, V)) {
	for n := c.beginNode; n != nil; n = n.next {
		fn(n.key(), n.entry.value)
	}
}
