package skiplist

// insertWithHint is the amortized-O(1) hinted bottom-up insert of
// spec.md §4.5. hint is the bottom-list node the caller believes sits
// just at or after the insertion point, or nil for "end". It falls back
// to the plain top-down insert (insert.go) whenever the hint turns out
// not to be useful — that fallback's own duplicate check subsumes the
// spec's explicit "k == a.key or k == b.key ⇒ block" case, so there is no
// separate block branch here.
func (c *core[K, V]) insertWithHint(hint *node[K, V], key K, produce producer[K, V]) (*node[K, V], bool) {
	if c.head == nil {
		return c.insertTopDown(key, c.less, produce)
	}

	var a *node[K, V]
	if hint != nil {
		if hint.prev != nil && !hint.prev.isDummy() {
			a = hint.prev
		}
	} else {
		a = c.tailNode
	}
	b := hint

	var good bool
	if c.multimap {
		good = (a == nil || !c.less(key, a.key())) && (b == nil || !c.less(b.key(), key))
	} else {
		good = (a == nil || c.less(a.key(), key)) && (b == nil || c.less(key, b.key()))
	}

	if !good {
		c.stats.recordHintedFallback()
		if c.multimap {
			if b != nil && c.less(b.key(), key) {
				// Bad hint forward: fall back at the lower bound.
				return c.insertTopDown(key, func(k, n K) bool { return !c.less(n, k) }, produce)
			}
			// Bad hint backward: fall back at the upper bound (ordinary cmp).
			return c.insertTopDown(key, c.less, produce)
		}
		return c.insertTopDown(key, c.less, produce)
	}

	return c.insertBottomUp(hint, key, produce), true
}

// insertBottomUp splices a new node between the bottom dummy (or the
// node preceding hint) and hint (or end), then grows its column upward
// using insertAbove, exactly as spec.md §4.5 describes.
func (c *core[K, V]) insertBottomUp(hint *node[K, V], key K, produce producer[K, V]) *node[K, V] {
	var pred *node[K, V]
	if hint != nil {
		pred = hint.prev
	} else if c.tailNode != nil {
		pred = c.tailNode
	} else {
		pred = c.head
		for pred.down != nil {
			pred = pred.down
		}
	}

	h := c.growIfNeeded(c.rng.chooseLevel(maxInt(c.levelCount, 1)))

	e := produce()
	n := c.pool.acquire(e)
	n.prev = pred
	n.next = pred.next
	if pred.next != nil {
		pred.next.prev = n
	}
	pred.next = n

	if n.prev.isDummy() {
		c.beginNode = n
	}
	if n.next == nil {
		c.tailNode = n
	}

	c.size++
	c.isBalanced = false
	c.stats.recordHintedInsert()

	cur := n
	for l := 1; l < h; l++ {
		cur = c.insertAbove(cur)
	}
	return n
}
