package skiplist

// Less is a strict-weak-order comparator: Less(a, b) reports whether a
// sorts strictly before b. Two keys are equivalent when neither
// Less(a, b) nor Less(b, a) holds. This mirrors the teacher's own
// skiplist/skiplist.go Less[K comparable] type, loosened to K any since
// ordering never requires == on keys.
type Less[K any] func(a, b K) bool

// core is the shared engine behind Map and Multimap: the node graph, the
// level manager, and every traversal/insert/erase/balance algorithm.
// Map and Multimap differ only in the duplicate-key check (insert.go),
// the hinted-insert rule (hint.go), and the shape of their public
// insertion return values (map.go / multimap.go) — exactly the three
// differences spec.md §9 calls out under "Compile-time specialization on
// MULTIMAP".
type core[K, V any] struct {
	less     Less[K]
	multimap bool

	head      *node[K, V] // topmost dummy; nil when levelCount == 0
	beginNode *node[K, V] // first real node of the bottom list
	tailNode  *node[K, V] // last real node of the bottom list

	levelCount int
	size       int
	countMin   int
	countMax   int
	isBalanced bool

	rng   *rng
	pool  *nodePool[K, V]
	stats *stats
}

func newCore[K, V any](less Less[K], multimap bool, cfg Config) *core[K, V] {
	seed := cfg.seed
	if seed == 0 {
		seed = newRandomSeed()
	}
	c := &core[K, V]{
		less:       less,
		multimap:   multimap,
		isBalanced: true, // empty (and not-yet-populated) is vacuously balanced, original_source/skiplist/Skiplist.hpp's m_balanced default
		rng:        newRNG(seed),
		pool:       newNodePool[K, V](),
		stats:      newStats(),
	}
	for i := 0; i < cfg.initialLevels; i++ {
		c.addLevel()
	}
	return c
}

// Size returns the number of live entries.
func (c *core[K, V]) Size() int { return c.size }

// Empty reports whether the container holds no entries.
func (c *core[K, V]) Empty() bool { return c.size == 0 }

// IsBalanced reports whether the container is in the perfectly balanced
// 1-in-2ⁿ shape (spec.md §4.8).
func (c *core[K, V]) IsBalanced() bool { return c.isBalanced }

// LevelCount returns the current number of horizontal lists.
func (c *core[K, V]) LevelCount() int { return c.levelCount }

// MaxSize mirrors the C++ original's max_size(): a theoretical ceiling,
// not a tracked or enforced limit (original_source/skiplist/Skiplist.hpp).
func (c *core[K, V]) MaxSize() int {
	return int(^uint(0) >> 1)
}

func (c *core[K, V]) clearMarkEmpty() {
	c.head = nil
	c.beginNode = nil
	c.tailNode = nil
	c.levelCount = 0
	c.size = 0
	c.countMin = 0
	c.countMax = 0
	c.isBalanced = true
}

// front returns the bottom-list node with the smallest key, or nil if
// empty.
func (c *core[K, V]) front() *node[K, V] { return c.beginNode }

// back returns the bottom-list node with the largest key, or nil if
// empty.
func (c *core[K, V]) back() *node[K, V] { return c.tailNode }
