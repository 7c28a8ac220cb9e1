package skiplist

// Pair is a plain ordered (key, value) pair, the Go stand-in for the
// source's pair-wrapper collaborator (out of scope per spec.md §1 beyond
// this shape — no separate const/mutable variant hierarchy).
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is the unique-key variant of the container (spec.md §1 MAP).
type Map[K, V any] struct {
	c *core[K, V]
}

// NewMap creates an empty Map ordered by less.
func NewMap[K, V any](less Less[K], opts ...Option) *Map[K, V] {
	return &Map[K, V]{c: newCore[K, V](less, false, NewConfig(opts...))}
}

// NewMapFrom builds a Map from an ordered sequence of pairs (spec.md §6).
// Pairs need not already be sorted; each is inserted through the regular
// duplicate-checked path, so a later duplicate key is silently dropped
// exactly as a sequence of Insert calls would behave.
func NewMapFrom[K, V any](less Less[K], pairs []Pair[K, V], opts ...Option) *Map[K, V] {
	m := NewMap[K, V](less, opts...)
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return m.c.Size() }

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.c.Empty() }

// IsBalanced reports whether the map is in the canonical balanced shape.
func (m *Map[K, V]) IsBalanced() bool { return m.c.IsBalanced() }

// LevelCount returns the current number of horizontal lists.
func (m *Map[K, V]) LevelCount() int { return m.c.LevelCount() }

// MaxSize returns a theoretical capacity ceiling (original_source
// max_size(); see SPEC_FULL.md §4.14).
func (m *Map[K, V]) MaxSize() int { return m.c.MaxSize() }

// Stats returns a snapshot of operation counters.
func (m *Map[K, V]) Stats() Stats { return m.c.stats.snapshot() }

// KeyComp returns the comparator the map was constructed with
// (original_source key_comp(); SPEC_FULL.md §4.14).
func (m *Map[K, V]) KeyComp() Less[K] { return m.c.less }

// ValueComp returns a comparator over Pairs derived from KeyComp
// (original_source value_comp()).
func (m *Map[K, V]) ValueComp() func(a, b Pair[K, V]) bool {
	less := m.c.less
	return func(a, b Pair[K, V]) bool { return less(a.Key, b.Key) }
}

// Contains reports whether key has an entry.
func (m *Map[K, V]) Contains(key K) bool { return m.c.Contains(key) }

// Find returns a cursor at key and true, or an end cursor and false.
func (m *Map[K, V]) Find(key K) (Iterator[K, V], bool) {
	n := m.c.findNode(key)
	return newIterator(m.c, n), n != nil
}

// At returns the value for key, or ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	n := m.c.findNode(key)
	if n == nil {
		var zero V
		return zero, ErrKeyNotFound
	}
	return n.entry.value, nil
}

// Count returns 1 if key is present, 0 otherwise.
func (m *Map[K, V]) Count(key K) int { return m.c.count(key) }

// LowerBound returns a cursor at the first element not less than key.
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return newIterator(m.c, m.c.lowerBoundNode(key))
}

// UpperBound returns a cursor at the first element strictly greater than
// key.
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	return newIterator(m.c, m.c.upperBoundNode(key))
}

// EqualRange returns (LowerBound(key), UpperBound(key)).
func (m *Map[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	lo, hi := m.c.equalRange(key)
	return newIterator(m.c, lo), newIterator(m.c, hi)
}

// Begin returns a cursor at the smallest element.
func (m *Map[K, V]) Begin() Iterator[K, V] { return newIterator(m.c, m.c.beginNode) }

// End returns the one-past-the-end cursor.
func (m *Map[K, V]) End() Iterator[K, V] { return newIterator(m.c, nil) }

// RBegin returns a reverse cursor at the largest element.
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] { return newReverseIterator(m.End()) }

// REnd returns the reverse one-past-the-end cursor.
func (m *Map[K, V]) REnd() ReverseIterator[K, V] { return newReverseIterator(m.Begin()) }

// BalancingBegin returns a self-balancing cursor at the smallest element.
func (m *Map[K, V]) BalancingBegin() BalancingIterator[K, V] { return newBalancingFromBegin(m.c) }

// BalancingEnd returns a self-balancing cursor one past the largest
// element.
func (m *Map[K, V]) BalancingEnd() BalancingIterator[K, V] { return newBalancingFromEnd(m.c) }

// Front returns a cursor at the smallest element. Panics if empty.
func (m *Map[K, V]) Front() Iterator[K, V] {
	if m.c.beginNode == nil {
		panic("skiplist: Front on empty container")
	}
	return newIterator(m.c, m.c.beginNode)
}

// Back returns a cursor at the largest element. Panics if empty.
func (m *Map[K, V]) Back() Iterator[K, V] {
	if m.c.tailNode == nil {
		panic("skiplist: Back on empty container")
	}
	return newIterator(m.c, m.c.tailNode)
}

// Insert adds (key, value) if key is absent. Returns a cursor at the
// element (new or pre-existing) and whether an insertion happened
// (spec.md §6 "insert-return shape").
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	n, ok := m.c.insertTopDown(key, m.c.less, valueProducer[K, V](key, value))
	return newIterator(m.c, n), ok
}

// InsertHint adds (key, value) using hint as a position hint. Always
// returns a cursor at the element (spec.md §6: "hinted variants return
// only a cursor").
func (m *Map[K, V]) InsertHint(hint Iterator[K, V], key K, value V) Iterator[K, V] {
	n, _ := m.c.insertWithHint(hint.n, key, valueProducer[K, V](key, value))
	return newIterator(m.c, n)
}

// TryEmplace inserts a value built by makeValue only if key is absent;
// makeValue is never called on a duplicate key (spec.md §4.11).
func (m *Map[K, V]) TryEmplace(key K, makeValue func() V) (Iterator[K, V], bool) {
	n, ok := m.c.insertTopDown(key, m.c.less, func() *entry[K, V] {
		return &entry[K, V]{key: key, value: makeValue()}
	})
	return newIterator(m.c, n), ok
}

// EmplaceHint is InsertHint with a deferred value builder, mirroring
// original_source/skiplist/Skiplist.hpp's emplace_hint (spec.md §6).
func (m *Map[K, V]) EmplaceHint(hint Iterator[K, V], key K, makeValue func() V) Iterator[K, V] {
	n, _ := m.c.insertWithHint(hint.n, key, func() *entry[K, V] {
		return &entry[K, V]{key: key, value: makeValue()}
	})
	return newIterator(m.c, n)
}

// TryEmplaceHint is TryEmplace with hint as a position hint, mirroring
// original_source/skiplist/Skiplist.hpp's try_emplace(hint, key, ...)
// overload (spec.md §6).
func (m *Map[K, V]) TryEmplaceHint(hint Iterator[K, V], key K, makeValue func() V) (Iterator[K, V], bool) {
	n, ok := m.c.insertWithHint(hint.n, key, func() *entry[K, V] {
		return &entry[K, V]{key: key, value: makeValue()}
	})
	return newIterator(m.c, n), ok
}

// InsertRange inserts every pair in pairs through the regular
// duplicate-checked path, equivalent to calling Insert for each in order
// (spec.md §6 "insert(range)" as a mutation on an existing container,
// distinct from NewMapFrom's construction-time form).
func (m *Map[K, V]) InsertRange(pairs []Pair[K, V]) {
	for _, p := range pairs {
		m.InsertHint(m.End(), p.Key, p.Value)
	}
}

// Ref resolves container[key] (spec.md §4.11): if key is absent, it is
// try_emplace'd with the zero value; either way a mutable reference into
// the entry's value is returned.
func (m *Map[K, V]) Ref(key K) *V {
	hint := m.c.lowerBoundNode(key)
	if hint != nil && m.c.equivalent(hint.key(), key) {
		return &hint.entry.value
	}
	var zero V
	n, _ := m.c.insertWithHint(hint, key, func() *entry[K, V] {
		return &entry[K, V]{key: key, value: zero}
	})
	return &n.entry.value
}

// Erase removes key's entry, if any, and returns how many were removed
// (0 or 1 for a Map).
func (m *Map[K, V]) Erase(key K) int { return m.c.eraseKey(key) }

// EraseCursor removes the single element at it and returns a cursor to
// the following element.
func (m *Map[K, V]) EraseCursor(it Iterator[K, V]) Iterator[K, V] {
	if it.c != m.c {
		panic(ErrDifferentContainer)
	}
	return newIterator(m.c, m.c.eraseCursor(it.n))
}

// EraseRange removes every element in [first, last).
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	if first.c != m.c || last.c != m.c {
		panic(ErrDifferentContainer)
	}
	return newIterator(m.c, m.c.eraseRange(first.n, last.n))
}

// PopFront removes the smallest element.
func (m *Map[K, V]) PopFront() { m.c.popFront() }

// PopBack removes the largest element.
func (m *Map[K, V]) PopBack() { m.c.popBack() }

// Clear removes every element.
func (m *Map[K, V]) Clear() { m.c.clear() }

// Balance rebuilds the container to the canonical 1-in-2ⁿ shape.
func (m *Map[K, V]) Balance() { m.c.balance() }

// ForEach visits every entry in order, balancing as it goes.
func (m *Map[K, V]) ForEach(fn func(K, V)) { m.c.forEach(fn) }

// ForEachNoBalance visits every entry in order without rebalancing.
func (m *Map[K, V]) ForEachNoBalance(fn func(K, V)) { m.c.forEachNoBalance(fn) }

// Clone returns a fully balanced copy with a fresh RNG.
func (m *Map[K, V]) Clone() *Map[K, V] { return &Map[K, V]{c: cloneCore(m.c)} }

// Swap exchanges m's and other's entire internal state in O(1).
func (m *Map[K, V]) Swap(other *Map[K, V]) { swapCore(m.c, other.c) }

// Equal reports whether m and other hold the same (key, value) pairs,
// regardless of insertion history or internal shape.
func (m *Map[K, V]) Equal(other *Map[K, V], valueEqual func(a, b V) bool) bool {
	return equalEntries(m.c, other.c, valueEqual)
}

// Compare returns the lexicographic order of m and other's entry
// sequences; see compareEntries for the value-tiebreak contract.
func (m *Map[K, V]) Compare(other *Map[K, V], valueLess func(a, b V) bool) int {
	return compareEntries(m.c, other.c, valueLess)
}
