package skiplist

// equalEntries reports whether a and b contain the same sequence of
// (key, value) pairs in bottom-list order, regardless of their internal
// column shapes (spec.md §6 "Comparisons across two containers"). Values
// are compared with valueEqual since V is not constrained to comparable.
func equalEntries[K, V any](a, b *core[K, V], valueEqual func(x, y V) bool) bool {
	if a.size != b.size {
		return false
	}
	na, nb := a.beginNode, b.beginNode
	for na != nil && nb != nil {
		if !a.equivalent(na.key(), nb.key()) || !valueEqual(na.entry.value, nb.entry.value) {
			return false
		}
		na, nb = na.next, nb.next
	}
	return na == nil && nb == nil
}

// compareEntries returns -1, 0, or 1 for the lexicographic order of a's
// and b's entry sequences, ordered first by key (via a's comparator),
// then — only when valueLess is supplied and keys are equivalent — by
// value. A shorter sequence that is a prefix of a longer one sorts first,
// matching the usual lexicographic-compare-of-sequences rule.
func compareEntries[K, V any](a, b *core[K, V], valueLess func(x, y V) bool) int {
	na, nb := a.beginNode, b.beginNode
	for na != nil && nb != nil {
		switch {
		case a.less(na.key(), nb.key()):
			return -1
		case a.less(nb.key(), na.key()):
			return 1
		}
		if valueLess != nil {
			switch {
			case valueLess(na.entry.value, nb.entry.value):
				return -1
			case valueLess(nb.entry.value, na.entry.value):
				return 1
			}
		}
		na, nb = na.next, nb.next
	}
	switch {
	case na == nil && nb == nil:
		return 0
	case na == nil:
		return -1
	default:
		return 1
	}
}
