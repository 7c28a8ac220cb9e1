package skiplist

// updateMinMax recomputes the occupancy thresholds for the current level
// count, spec.md §3: count_min = 2^(L-1), count_max = 2^L - 1.
func (c *core[K, V]) updateMinMax() {
	if c.levelCount == 0 {
		c.countMin, c.countMax = 0, 0
		return
	}
	c.countMin = 1 << uint(c.levelCount-1)
	c.countMax = (1 << uint(c.levelCount)) - 1
}

// addLevel pushes a new top dummy above the current head and recomputes
// the occupancy thresholds (spec.md §4.1).
func (c *core[K, V]) addLevel() {
	top := c.pool.acquireDummy()
	if c.head != nil {
		top.down = c.head
		c.head.up = top
	}
	c.head = top
	c.levelCount++
	c.updateMinMax()
	c.stats.recordLevelGrow()
}

// removeLevel unlinks and frees every node of the current top list,
// including its dummy, and recomputes the occupancy thresholds. May be
// called repeatedly after a bulk erase (spec.md §4.1).
func (c *core[K, V]) removeLevel() {
	if c.levelCount == 0 {
		return
	}
	top := c.head
	c.head = top.down
	if c.head != nil {
		c.head.up = nil
	}
	for n := top; n != nil; {
		below := n.down
		if below != nil {
			below.up = nil
		}
		n.down = nil
		next := n.next
		if next != nil {
			next.prev = nil
		}
		c.pool.release(n)
		n = next
	}
	c.levelCount--
	c.updateMinMax()
	c.stats.recordLevelShrink()
}

// growIfNeeded adds a level if the next insertion would exceed count_max,
// returning the column height the new element must occupy: level_count
// when a level was just added, or the caller-requested height otherwise.
func (c *core[K, V]) growIfNeeded(requested int) int {
	if c.size+1 > c.countMax {
		c.addLevel()
		return c.levelCount
	}
	return requested
}

// shrinkIfNeeded removes levels while size has dropped below count_min.
func (c *core[K, V]) shrinkIfNeeded() {
	for c.size > 0 && c.size < c.countMin {
		c.removeLevel()
	}
	if c.size == 0 {
		for c.levelCount > 0 {
			c.removeLevel()
		}
	}
}
