package skiplist

import "math/bits"

// levelOf returns the column height a 1-based bottom-list index occupies
// once balanced (spec.md §4.8): 1 + v2(i), the number of trailing zero
// bits of i.
func levelOf(i int) int {
	if i <= 0 {
		return 0
	}
	return 1 + bits.TrailingZeros(uint(i))
}

// floorLog2 returns floor(log2(n)) for n >= 1.
func floorLog2(n int) int {
	return bits.Len(uint(n)) - 1
}

// insertAbove extends a column by one level: it first rises from n to the
// top node of n's column, then splices a new node on the level directly
// above that top. It walks left along the top node's level until it finds
// a node that already has an up link, rises there, and inserts the new
// node immediately after it. The hinted-insert recursion in hint.go always
// passes the node it created last, which is already the column top; the
// balancing iterator's per-column extension may pass the bottom node of a
// column that is two or more nodes tall, and the rise keeps the new node
// on top of that column. It returns the new top node.
func (c *core[K, V]) insertAbove(n *node[K, V]) *node[K, V] {
	for n.up != nil {
		n = n.up
	}
	cur := n
	for cur.up == nil {
		cur = cur.prev
	}
	upper := cur.up

	above := c.pool.acquire(n.entry)
	above.prev = upper
	above.next = upper.next
	if upper.next != nil {
		upper.next.prev = above
	}
	upper.next = above
	above.down = n
	n.up = above
	return above
}

// eraseAbove tears down every node in a column above n, used by
// single-cursor erase (spec.md §4.7). n itself is left untouched; the
// caller is responsible for unlinking and freeing it.
func (c *core[K, V]) eraseAbove(n *node[K, V]) {
	up := n.up
	n.up = nil
	for up != nil {
		next := up.up
		if up.prev != nil {
			up.prev.next = up.next
		}
		if up.next != nil {
			up.next.prev = up.prev
		}
		c.pool.release(up)
		up = next
	}
}

// balance tears down every upper level and rebuilds it to the
// deterministic 1-in-2ⁿ shape of spec.md §4.8. A no-op when already
// balanced or empty.
func (c *core[K, V]) balance() {
	if c.isBalanced || c.size == 0 {
		return
	}

	for c.levelCount > 1 {
		c.removeLevel()
	}

	maxLevel := 1 + floorLog2(c.size)
	for c.levelCount < maxLevel {
		c.addLevel()
	}

	tails := make([]*node[K, V], maxLevel+1)
	cur := c.head
	for l := maxLevel; l >= 1; l-- {
		tails[l] = cur
		cur = cur.down
	}

	i := 0
	for n := c.beginNode; n != nil; n = n.next {
		i++
		lvl := levelOf(i)
		below := n
		for l := 2; l <= lvl; l++ {
			nn := c.pool.acquire(n.entry)
			nn.down = below
			below.up = nn
			tails[l].next = nn
			nn.prev = tails[l]
			tails[l] = nn
			below = nn
		}
	}

	c.isBalanced = true
	c.stats.recordBalance()
	if afterBalanceHook != nil {
		afterBalanceHook()
	}
}
