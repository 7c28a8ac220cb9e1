// Package skiplist implements an ordered associative container backed by
// a probabilistic multi-level linked structure. Map provides unique-key
// semantics; Multimap allows duplicate keys. Both share one engine (core)
// for traversal, insertion, erasure, and the deterministic balancing
// rebuild described in balance.go.
package skiplist
