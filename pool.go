package skiplist

import "sync"

// nodePool recycles node values, adapted from the teacher's pool.go. The
// teacher pools nodes to avoid allocation churn under concurrent CAS
// retries; here there is no concurrency to retry, but balance() (spec.md
// §4.8) still tears down and rebuilds O(n) upper-level nodes on every
// call, which is the same allocation-churn shape the teacher's pool was
// built for, so the pattern is kept rather than dropped.
type nodePool[K, V any] struct {
	nodes sync.Pool
}

func newNodePool[K, V any]() *nodePool[K, V] {
	return &nodePool[K, V]{
		nodes: sync.Pool{
			New: func() any { return new(node[K, V]) },
		},
	}
}

func (p *nodePool[K, V]) acquireDummy() *node[K, V] {
	n := p.nodes.Get().(*node[K, V])
	*n = node[K, V]{}
	return n
}

func (p *nodePool[K, V]) acquire(e *entry[K, V]) *node[K, V] {
	n := p.nodes.Get().(*node[K, V])
	*n = node[K, V]{entry: e}
	return n
}

func (p *nodePool[K, V]) release(n *node[K, V]) {
	n.entry = nil
	n.next, n.prev, n.up, n.down = nil, nil, nil, nil
	p.nodes.Put(n)
}
