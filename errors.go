package skiplist

import "errors"

// ErrKeyNotFound is returned by At when the key has no entry, mirroring
// the teacher's skl subpackage sentinel of the same name.
var ErrKeyNotFound = errors.New("skiplist: key not found")

// ErrDifferentContainer is the value EraseCursor and EraseRange panic with
// when a cursor argument was not produced by the receiving container,
// matching spec.md §7's "hint from wrong container" case.
var ErrDifferentContainer = errors.New("skiplist: cursor belongs to a different container")
