package skiplist

// descendWhile implements the top-down descent shared by find,
// lower_bound and upper_bound (spec.md §4.2/§4.3): advance right across a level while cont reports
// true for the next node's key, otherwise drop down a level; stop at the
// bottom list. It returns the last node visited, which is always either a
// dummy or a real node whose successor (nil meaning "end") is the
// position the caller is looking for.
func descendWhile[K, V any](head *node[K, V], cont func(candidateKey K) bool) *node[K, V] {
	n := head
	if n == nil {
		return nil
	}
	for {
		for n.next != nil && cont(n.next.key()) {
			n = n.next
		}
		if n.down != nil {
			n = n.down
			continue
		}
		return n
	}
}

// lowerBoundNode returns the first bottom-list node whose key is not less
// than key, or nil ("end") if none (spec.md §4.3).
func (c *core[K, V]) lowerBoundNode(key K) *node[K, V] {
	if c.head == nil {
		return nil
	}
	pred := descendWhile(c.head, func(candidateKey K) bool {
		return c.less(candidateKey, key)
	})
	return pred.next
}

// upperBoundNode returns the first bottom-list node whose key is strictly
// greater than key, or nil ("end") if none (spec.md §4.3).
func (c *core[K, V]) upperBoundNode(key K) *node[K, V] {
	if c.head == nil {
		return nil
	}
	pred := descendWhile(c.head, func(candidateKey K) bool {
		return !c.less(key, candidateKey)
	})
	return pred.next
}

func (c *core[K, V]) equivalent(a, b K) bool {
	return !c.less(a, b) && !c.less(b, a)
}

// findNode positions on the bottom-list node with the given key, or
// returns nil if absent. Per spec.md §4.2 this always normalizes to the
// bottom-list node of the matching column, which lowerBoundNode already
// gives us: the first node not less than key is equal to key exactly when
// key is present.
func (c *core[K, V]) findNode(key K) *node[K, V] {
	n := c.lowerBoundNode(key)
	if n != nil && c.equivalent(n.key(), key) {
		return n
	}
	return nil
}

// Contains reports whether key has at least one entry.
func (c *core[K, V]) Contains(key K) bool {
	return c.findNode(key) != nil
}

// count walks forward from lower_bound(key) while keys remain equivalent
// to key (spec.md §4.3).
func (c *core[K, V]) count(key K) int {
	n := c.lowerBoundNode(key)
	cnt := 0
	for n != nil && c.equivalent(n.key(), key) {
		cnt++
		n = n.next
	}
	return cnt
}

// equalRange returns (lower_bound(key), upper_bound(key)).
func (c *core[K, V]) equalRange(key K) (*node[K, V], *node[K, V]) {
	return c.lowerBoundNode(key), c.upperBoundNode(key)
}
