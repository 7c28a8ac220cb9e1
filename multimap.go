package skiplist

// Multimap is the duplicate-key variant of the container (spec.md §1
// MULTIMAP). It shares every algorithm with Map through core; the only
// differences are the absence of a duplicate-key block on insert, the
// §4.5 hinted-insert rule, and the cursor-only insertion return shape
// (spec.md §9 "Compile-time specialization on MULTIMAP").
type Multimap[K, V any] struct {
	c *core[K, V]
}

// NewMultimap creates an empty Multimap ordered by less.
func NewMultimap[K, V any](less Less[K], opts ...Option) *Multimap[K, V] {
	return &Multimap[K, V]{c: newCore[K, V](less, true, NewConfig(opts...))}
}

// NewMultimapFrom builds a Multimap from an ordered sequence of pairs.
func NewMultimapFrom[K, V any](less Less[K], pairs []Pair[K, V], opts ...Option) *Multimap[K, V] {
	mm := NewMultimap[K, V](less, opts...)
	for _, p := range pairs {
		mm.Insert(p.Key, p.Value)
	}
	return mm
}

func (mm *Multimap[K, V]) Size() int        { return mm.c.Size() }
func (mm *Multimap[K, V]) Empty() bool      { return mm.c.Empty() }
func (mm *Multimap[K, V]) IsBalanced() bool { return mm.c.IsBalanced() }
func (mm *Multimap[K, V]) LevelCount() int  { return mm.c.LevelCount() }
func (mm *Multimap[K, V]) MaxSize() int     { return mm.c.MaxSize() }
func (mm *Multimap[K, V]) Stats() Stats     { return mm.c.stats.snapshot() }
func (mm *Multimap[K, V]) KeyComp() Less[K] { return mm.c.less }

// ValueComp returns a comparator over Pairs derived from KeyComp.
func (mm *Multimap[K, V]) ValueComp() func(a, b Pair[K, V]) bool {
	less := mm.c.less
	return func(a, b Pair[K, V]) bool { return less(a.Key, b.Key) }
}

// Contains reports whether key has at least one entry.
func (mm *Multimap[K, V]) Contains(key K) bool { return mm.c.Contains(key) }

// Find returns a cursor at the first element equivalent to key, or end.
func (mm *Multimap[K, V]) Find(key K) (Iterator[K, V], bool) {
	n := mm.c.findNode(key)
	return newIterator(mm.c, n), n != nil
}

// At returns the value of the first entry for key, or ErrKeyNotFound.
func (mm *Multimap[K, V]) At(key K) (V, error) {
	n := mm.c.findNode(key)
	if n == nil {
		var zero V
		return zero, ErrKeyNotFound
	}
	return n.entry.value, nil
}

// Count returns how many entries are equivalent to key.
func (mm *Multimap[K, V]) Count(key K) int { return mm.c.count(key) }

// LowerBound returns a cursor at the first element not less than key.
func (mm *Multimap[K, V]) LowerBound(key K) Iterator[K, V] {
	return newIterator(mm.c, mm.c.lowerBoundNode(key))
}

// UpperBound returns a cursor at the first element strictly greater than
// key.
func (mm *Multimap[K, V]) UpperBound(key K) Iterator[K, V] {
	return newIterator(mm.c, mm.c.upperBoundNode(key))
}

// EqualRange returns (LowerBound(key), UpperBound(key)); for Multimap
// this brackets every entry equivalent to key (spec.md §4.3).
func (mm *Multimap[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	lo, hi := mm.c.equalRange(key)
	return newIterator(mm.c, lo), newIterator(mm.c, hi)
}

func (mm *Multimap[K, V]) Begin() Iterator[K, V] { return newIterator(mm.c, mm.c.beginNode) }
func (mm *Multimap[K, V]) End() Iterator[K, V]   { return newIterator(mm.c, nil) }

func (mm *Multimap[K, V]) RBegin() ReverseIterator[K, V] { return newReverseIterator(mm.End()) }
func (mm *Multimap[K, V]) REnd() ReverseIterator[K, V]   { return newReverseIterator(mm.Begin()) }

func (mm *Multimap[K, V]) BalancingBegin() BalancingIterator[K, V] {
	return newBalancingFromBegin(mm.c)
}
func (mm *Multimap[K, V]) BalancingEnd() BalancingIterator[K, V] {
	return newBalancingFromEnd(mm.c)
}

// Front returns a cursor at the smallest element. Panics if empty.
func (mm *Multimap[K, V]) Front() Iterator[K, V] {
	if mm.c.beginNode == nil {
		panic("skiplist: Front on empty container")
	}
	return newIterator(mm.c, mm.c.beginNode)
}

// Back returns a cursor at the largest element. Panics if empty.
func (mm *Multimap[K, V]) Back() Iterator[K, V] {
	if mm.c.tailNode == nil {
		panic("skiplist: Back on empty container")
	}
	return newIterator(mm.c, mm.c.tailNode)
}

// Insert adds (key, value) unconditionally and returns a cursor at the
// new element (spec.md §6: "MULTIMAP counterparts return a cursor only").
func (mm *Multimap[K, V]) Insert(key K, value V) Iterator[K, V] {
	n, _ := mm.c.insertTopDown(key, mm.c.less, valueProducer[K, V](key, value))
	return newIterator(mm.c, n)
}

// InsertHint adds (key, value) using hint as a position hint.
func (mm *Multimap[K, V]) InsertHint(hint Iterator[K, V], key K, value V) Iterator[K, V] {
	n, _ := mm.c.insertWithHint(hint.n, key, valueProducer[K, V](key, value))
	return newIterator(mm.c, n)
}

// Emplace constructs and inserts a value built by makeValue.
func (mm *Multimap[K, V]) Emplace(key K, makeValue func() V) Iterator[K, V] {
	n, _ := mm.c.insertTopDown(key, mm.c.less, func() *entry[K, V] {
		return &entry[K, V]{key: key, value: makeValue()}
	})
	return newIterator(mm.c, n)
}

// EmplaceHint is Emplace using hint as a position hint, mirroring
// original_source/skiplist/Skiplist.hpp's emplace_hint (spec.md §6), which
// is templated over MULTIMAP and so applies to both variants.
func (mm *Multimap[K, V]) EmplaceHint(hint Iterator[K, V], key K, makeValue func() V) Iterator[K, V] {
	n, _ := mm.c.insertWithHint(hint.n, key, func() *entry[K, V] {
		return &entry[K, V]{key: key, value: makeValue()}
	})
	return newIterator(mm.c, n)
}

// TryEmplace is Emplace under the try_emplace name for API parity with Map
// (original_source/skiplist/Skiplist.hpp's try_emplace is templated over
// MULTIMAP too); it always succeeds since Multimap never blocks on a
// duplicate key.
func (mm *Multimap[K, V]) TryEmplace(key K, makeValue func() V) (Iterator[K, V], bool) {
	n, ok := mm.c.insertTopDown(key, mm.c.less, func() *entry[K, V] {
		return &entry[K, V]{key: key, value: makeValue()}
	})
	return newIterator(mm.c, n), ok
}

// TryEmplaceHint is TryEmplace with hint as a position hint.
func (mm *Multimap[K, V]) TryEmplaceHint(hint Iterator[K, V], key K, makeValue func() V) (Iterator[K, V], bool) {
	n, ok := mm.c.insertWithHint(hint.n, key, func() *entry[K, V] {
		return &entry[K, V]{key: key, value: makeValue()}
	})
	return newIterator(mm.c, n), ok
}

// InsertRange inserts every pair in pairs, equivalent to calling Insert for
// each in order (spec.md §6 "insert(range)" as a mutation on an existing
// container, distinct from NewMultimapFrom's construction-time form).
func (mm *Multimap[K, V]) InsertRange(pairs []Pair[K, V]) {
	for _, p := range pairs {
		mm.InsertHint(mm.End(), p.Key, p.Value)
	}
}

// Erase removes every entry equivalent to key and returns how many were
// removed.
func (mm *Multimap[K, V]) Erase(key K) int { return mm.c.eraseKey(key) }

// EraseCursor removes the single element at it and returns a cursor to
// the following element.
func (mm *Multimap[K, V]) EraseCursor(it Iterator[K, V]) Iterator[K, V] {
	if it.c != mm.c {
		panic(ErrDifferentContainer)
	}
	return newIterator(mm.c, mm.c.eraseCursor(it.n))
}

// EraseRange removes every element in [first, last).
func (mm *Multimap[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	if first.c != mm.c || last.c != mm.c {
		panic(ErrDifferentContainer)
	}
	return newIterator(mm.c, mm.c.eraseRange(first.n, last.n))
}

func (mm *Multimap[K, V]) PopFront() { mm.c.popFront() }
func (mm *Multimap[K, V]) PopBack()  { mm.c.popBack() }
func (mm *Multimap[K, V]) Clear()    { mm.c.clear() }
func (mm *Multimap[K, V]) Balance()  { mm.c.balance() }

// ForEach visits every entry in order, balancing as it goes.
func (mm *Multimap[K, V]) ForEach(fn func(K, V)) { mm.c.forEach(fn) }

// ForEachNoBalance visits every entry in order without rebalancing.
func (mm *Multimap[K, V]) ForEachNoBalance(fn func(K, V)) { mm.c.forEachNoBalance(fn) }

// Clone returns a fully balanced copy with a fresh RNG.
func (mm *Multimap[K, V]) Clone() *Multimap[K, V] { return &Multimap[K, V]{c: cloneCore(mm.c)} }

// Swap exchanges mm's and other's entire internal state in O(1).
func (mm *Multimap[K, V]) Swap(other *Multimap[K, V]) { swapCore(mm.c, other.c) }

// Equal reports whether mm and other hold the same (key, value) entries
// in the same relative order for equivalent keys (spec.md §8: "the
// stable MULTIMAP ordering matches the hinted-insert rules of §4.5").
func (mm *Multimap[K, V]) Equal(other *Multimap[K, V], valueEqual func(a, b V) bool) bool {
	return equalEntries(mm.c, other.c, valueEqual)
}

// Compare returns the lexicographic order of mm's and other's entry
// sequences.
func (mm *Multimap[K, V]) Compare(other *Multimap[K, V], valueLess func(a, b V) bool) int {
	return compareEntries(mm.c, other.c, valueLess)
}
