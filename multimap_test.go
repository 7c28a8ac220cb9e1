package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultimapAllowsDuplicates(t *testing.T) {
	mm := NewMultimap[int, int](intLess)
	for i := 0; i < 5; i++ {
		mm.Insert(7, i)
	}
	assert.Equal(t, 5, mm.Count(7))
	assert.Equal(t, 5, mm.Size())
}

// TestMultimapManyDuplicateKeys exercises spec.md §8's large duplicate-key
// scenario: every entry shares one key, yet the bottom list keeps exactly
// insertion order and the balanced shape's invariants still hold.
func TestMultimapManyDuplicateKeys(t *testing.T) {
	const n = 10000
	mm := NewMultimap[int, int](intLess)
	for i := 0; i < n; i++ {
		mm.Insert(1, i)
	}
	require.Equal(t, n, mm.Count(1))
	require.Equal(t, n, mm.Size())

	var got []int
	mm.ForEachNoBalance(func(_ int, v int) { got = append(got, v) })
	require.Len(t, got, n)
	for i, v := range got {
		assert.Equal(t, i, v, "multimap must preserve insertion order among equivalent keys")
	}

	mm.Balance()
	require.NoError(t, mm.c.validate())
}

func TestMultimapEraseRemovesAllDuplicates(t *testing.T) {
	mm := NewMultimap[int, int](intLess)
	mm.Insert(1, 1)
	mm.Insert(2, 2)
	mm.Insert(1, 3)
	mm.Insert(1, 4)

	removed := mm.Erase(1)
	assert.Equal(t, 3, removed)
	assert.Equal(t, 1, mm.Size())
	assert.True(t, mm.Contains(2))
}

func TestMultimapEqualRangeBracketsRun(t *testing.T) {
	mm := NewMultimap[int, int](intLess)
	for _, k := range []int{1, 2, 2, 2, 3} {
		mm.Insert(k, k)
	}
	lo, hi := mm.EqualRange(2)
	count := 0
	for it := lo; !it.Equal(hi); it = it.Next() {
		count++
	}
	assert.Equal(t, 3, count)
}

// TestMultimapInsertHintOrderIndependent mirrors spec.md §8's requirement
// that two Multimaps built from the same multiset via different hint
// traversal orders end up Equal.
func TestMultimapInsertHintOrderIndependent(t *testing.T) {
	keys := []int{5, 3, 3, 1, 4, 2, 2, 2, 5, 1}

	forward := NewMultimap[int, int](intLess)
	it := forward.End()
	for _, k := range keys {
		it = forward.InsertHint(it, k, k)
	}

	backward := NewMultimap[int, int](intLess)
	bit := backward.Begin()
	for i := len(keys) - 1; i >= 0; i-- {
		bit = backward.InsertHint(bit, keys[i], keys[i])
	}

	assert.Equal(t, forward.Size(), backward.Size())

	var a, b []int
	forward.ForEachNoBalance(func(k, _ int) { a = append(a, k) })
	backward.ForEachNoBalance(func(k, _ int) { b = append(b, k) })
	assert.Equal(t, a, b, "both hint orders must converge to the same sorted key sequence")
}

func TestMultimapEmplace(t *testing.T) {
	mm := NewMultimap[int, string](intLess)
	calls := 0
	mm.Emplace(1, func() string { calls++; return "x" })
	mm.Emplace(1, func() string { calls++; return "y" })
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, mm.Count(1))
}

func TestMultimapEmplaceHintAndTryEmplaceVariants(t *testing.T) {
	mm := NewMultimap[int, string](intLess)
	mm.Insert(1, "a")

	it := mm.EmplaceHint(mm.End(), 2, func() string { return "b" })
	assert.Equal(t, "b", it.Value())

	// Multimap's TryEmplace always succeeds, unlike Map's.
	_, ok := mm.TryEmplace(1, func() string { return "c" })
	assert.True(t, ok)
	assert.Equal(t, 2, mm.Count(1))

	_, ok = mm.TryEmplaceHint(mm.End(), 1, func() string { return "d" })
	assert.True(t, ok)
	assert.Equal(t, 3, mm.Count(1))
}

func TestMultimapInsertRange(t *testing.T) {
	mm := NewMultimap[int, int](intLess)
	mm.Insert(1, 1)
	mm.InsertRange([]Pair[int, int]{{Key: 1, Value: 2}, {Key: 0, Value: 0}})

	assert.Equal(t, 3, mm.Size())
	assert.Equal(t, 2, mm.Count(1))

	var gotKeys []int
	mm.ForEachNoBalance(func(k, _ int) { gotKeys = append(gotKeys, k) })
	assert.Equal(t, []int{0, 1, 1}, gotKeys)
}
