package skiplist

// eraseKey removes every entry equivalent to key and returns how many
// were removed (spec.md §4.6). It walks the run of equivalent keys in
// the bottom list, removing each column (its upper nodes first, then its
// bottom node), then shrinks the level count if needed.
func (c *core[K, V]) eraseKey(key K) int {
	n := c.lowerBoundNode(key)
	removed := 0
	for n != nil && c.equivalent(n.key(), key) {
		next := n.next
		c.eraseNode(n)
		removed++
		n = next
	}
	if removed > 0 {
		c.size -= removed
		c.stats.recordErase(int64(removed))
		c.isBalanced = false
		c.shrinkIfNeeded()
	}
	return removed
}

// eraseNode removes a single bottom-list node and its entire column,
// spec.md §4.7: eraseAbove tears down the column above it, then the
// bottom node itself is unlinked and its Entry released.
func (c *core[K, V]) eraseNode(n *node[K, V]) {
	c.eraseAbove(n)

	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if c.beginNode == n {
		c.beginNode = n.next
	}
	if c.tailNode == n {
		if n.prev != nil && !n.prev.isDummy() {
			c.tailNode = n.prev
		} else {
			c.tailNode = nil
		}
	}
	n.entry = nil
	c.pool.release(n)
}

// eraseCursor removes the single element at n (spec.md §4.7) and returns
// the node that followed it, for callers that need to continue iterating.
func (c *core[K, V]) eraseCursor(n *node[K, V]) *node[K, V] {
	next := n.next
	c.eraseNode(n)
	c.size--
	c.isBalanced = false
	c.stats.recordErase(1)
	c.shrinkIfNeeded()
	return next
}

// eraseRange removes every element in [first, last) and returns a cursor
// positioned where last used to be (spec.md §4.7). Both endpoints must
// belong to this container; callers are responsible for that guarantee
// per spec.md §7 (checked, when possible, by the exported wrappers).
func (c *core[K, V]) eraseRange(first, last *node[K, V]) *node[K, V] {
	for first != last {
		first = c.eraseCursor(first)
	}
	return last
}

// popFront removes the smallest element. Panics if empty (precondition
// violation, spec.md §7).
func (c *core[K, V]) popFront() {
	if c.beginNode == nil {
		panic("skiplist: pop_front on empty container")
	}
	c.eraseCursor(c.beginNode)
}

// popBack removes the largest element. Panics if empty.
func (c *core[K, V]) popBack() {
	if c.tailNode == nil {
		panic("skiplist: pop_back on empty container")
	}
	c.eraseCursor(c.tailNode)
}

// clear empties the container, releasing every node, preserving the RNG
// as spec.md §5 requires ("clear... preserve the RNG in the source").
func (c *core[K, V]) clear() {
	for c.levelCount > 0 {
		c.removeLevel()
	}
	c.clearMarkEmpty()
}
