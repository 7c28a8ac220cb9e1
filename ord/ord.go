// Package ord adapts the teacher's skl/types.go Comparable/Compare
// machinery: generic ordering over builtin types plus an escape hatch
// for user types that implement CmpType, so callers with ordinary keys
// don't need to hand-write a skiplist.Less func (see SPEC_FULL.md §4.13).
package ord

// CmpType lets a user-defined key type participate in ordering without
// satisfying the builtin Ordered union below.
type CmpType interface {
	// Compare returns <0, 0, or >0 as the receiver sorts before, the
	// same as, or after other.
	Compare(other any) int
}

// Ordered is the set of builtin types Compare knows how to order
// directly, mirroring the teacher's skl.Comparable union.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Comparable is an alias for Ordered, named for symmetry with CmpType.
// Go's type-set rules don't allow a union of a method-having interface
// (CmpType) with a type-term union (Ordered) in one constraint, so the two
// escape hatches stay separate: NewOrderedMap takes K ord.Ordered (operator
// comparison), NewCustomOrderedMap takes K ord.CmpType (method comparison).
type Comparable = Ordered

// Compare orders two builtin values of the same type.
func Compare[T Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less adapts Compare to the skiplist.Less[K] shape so callers can write
// skiplist.NewMap(ord.Less[int]()) instead of a literal closure.
func Less[T Ordered]() func(a, b T) bool {
	return func(a, b T) bool { return a < b }
}

// CompareCmpType orders two CmpType values.
func CompareCmpType(a, b CmpType) int {
	return a.Compare(b)
}

// LessCmpType adapts CompareCmpType to the skiplist.Less[K] shape.
func LessCmpType[T CmpType]() func(a, b T) bool {
	return func(a, b T) bool { return a.Compare(b) < 0 }
}
