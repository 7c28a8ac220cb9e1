package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

// TestMapInsertScenario exercises spec.md §8 end-to-end scenario 1.
func TestMapInsertScenario(t *testing.T) {
	m := NewMap[int, int](intLess)

	type op struct {
		key, val int
	}
	ops := []op{{2, 4}, {1, 2}, {3, 8}, {3, 8}, {4, 16}, {0, 1}, {5, 32}}
	var lastInserted bool
	for i, o := range ops {
		_, inserted := m.Insert(o.key, o.val)
		if i == 3 {
			lastInserted = inserted
		}
	}
	assert.False(t, lastInserted, "second (3,8) insert should be blocked")
	assert.Equal(t, 6, m.Size())

	var gotKeys, gotVals []int
	m.ForEachNoBalance(func(k, v int) {
		gotKeys = append(gotKeys, k)
		gotVals = append(gotVals, v)
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, gotKeys)
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32}, gotVals)
}

func TestMapContainsFindAt(t *testing.T) {
	m := NewMap[int, string](intLess)
	m.Insert(1, "a")
	m.Insert(2, "b")

	assert.True(t, m.Contains(1))
	assert.False(t, m.Contains(3))

	it, ok := m.Find(2)
	require.True(t, ok)
	assert.Equal(t, "b", it.Value())

	_, ok = m.Find(3)
	assert.False(t, ok)

	v, err := m.At(1)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = m.At(99)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMapDuplicateInsertReturnsExisting(t *testing.T) {
	m := NewMap[int, int](intLess)
	m.Insert(5, 50)
	it, inserted := m.Insert(5, 999)
	assert.False(t, inserted)
	assert.Equal(t, 50, it.Value(), "existing value must be untouched on blocked insert")
	assert.Equal(t, 1, m.Size())
}

func TestMapEraseByKey(t *testing.T) {
	m := NewMap[int, int](intLess)
	for i := 0; i < 10; i++ {
		m.Insert(i, i*i)
	}
	require.Equal(t, 1, m.Erase(5))
	assert.False(t, m.Contains(5))
	assert.Equal(t, 9, m.Size())
	assert.Equal(t, 0, m.Erase(5), "erasing an absent key removes nothing")
}

func TestMapFrontBackPop(t *testing.T) {
	m := NewMap[int, int](intLess)
	for _, k := range []int{5, 1, 3, 2, 4} {
		m.Insert(k, k)
	}
	assert.Equal(t, 1, m.Front().Key())
	assert.Equal(t, 5, m.Back().Key())

	m.PopFront()
	assert.Equal(t, 2, m.Front().Key())
	m.PopBack()
	assert.Equal(t, 4, m.Back().Key())
	assert.Equal(t, 3, m.Size())
}

func TestMapFrontOnEmptyPanics(t *testing.T) {
	m := NewMap[int, int](intLess)
	assert.Panics(t, func() { m.Front() })
	assert.Panics(t, func() { m.Back() })
}

func TestMapRef(t *testing.T) {
	m := NewMap[string, int](func(a, b string) bool { return a < b })
	*m.Ref("count") += 1
	*m.Ref("count") += 1
	v, err := m.At("count")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestMapLowerUpperBoundEqualRange(t *testing.T) {
	m := NewMap[int, int](intLess)
	for _, k := range []int{10, 20, 30, 40} {
		m.Insert(k, k)
	}
	assert.Equal(t, 20, m.LowerBound(20).Key())
	assert.Equal(t, 30, m.UpperBound(20).Key())
	lo, hi := m.EqualRange(20)
	assert.Equal(t, 20, lo.Key())
	assert.Equal(t, 30, hi.Key())

	assert.False(t, m.UpperBound(40).Valid(), "upper_bound past the max is end")
	assert.Equal(t, 10, m.LowerBound(0).Key())
}

func TestMapClearThenReuse(t *testing.T) {
	m := NewMap[int, int](intLess)
	for i := 0; i < 50; i++ {
		m.Insert(i, i)
	}
	m.Clear()
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 0, m.LevelCount())
	assert.True(t, m.Empty())

	m.Insert(1, 1)
	assert.Equal(t, 1, m.Size())
	require.NoError(t, m.c.validate())
}

func TestMapEmplaceHintAndTryEmplaceHint(t *testing.T) {
	m := NewMap[int, string](intLess)
	m.Insert(1, "a")
	m.Insert(3, "c")

	it := m.EmplaceHint(m.LowerBound(3), 2, func() string { return "b" })
	assert.Equal(t, "b", it.Value())
	assert.Equal(t, 3, m.Size())

	calls := 0
	it, ok := m.TryEmplaceHint(m.LowerBound(3), 3, func() string { calls++; return "z" })
	assert.False(t, ok, "3 already present")
	assert.Equal(t, "c", it.Value(), "existing value must be untouched")
	assert.Equal(t, 0, calls, "makeValue must not run on a blocked try_emplace")

	_, ok = m.TryEmplaceHint(m.End(), 4, func() string { return "d" })
	assert.True(t, ok)
	assert.Equal(t, 4, m.Size())
}

func TestMapInsertRange(t *testing.T) {
	m := NewMap[int, int](intLess)
	m.Insert(1, 1)
	m.InsertRange([]Pair[int, int]{{Key: 3, Value: 30}, {Key: 2, Value: 20}, {Key: 1, Value: 999}})

	assert.Equal(t, 3, m.Size())
	v, _ := m.At(1)
	assert.Equal(t, 1, v, "a duplicate key in the range must be blocked like any other Insert")

	var gotKeys []int
	m.ForEachNoBalance(func(k, _ int) { gotKeys = append(gotKeys, k) })
	assert.Equal(t, []int{1, 2, 3}, gotKeys)
}

func TestMapEqualAndClone(t *testing.T) {
	a := NewMap[int, int](intLess)
	for _, k := range []int{3, 1, 2} {
		a.Insert(k, k*10)
	}
	b := a.Clone()
	assert.True(t, a.Equal(b, func(x, y int) bool { return x == y }))
	assert.True(t, b.IsBalanced())

	b.Insert(4, 40)
	assert.False(t, a.Equal(b, func(x, y int) bool { return x == y }))
}
