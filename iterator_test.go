package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorForwardBackward(t *testing.T) {
	m := NewMap[int, int](intLess)
	for _, k := range []int{3, 1, 2} {
		m.Insert(k, k*10)
	}

	it := m.Begin()
	var keys []int
	for it.Valid() {
		keys = append(keys, it.Key())
		it = it.Next()
	}
	assert.Equal(t, []int{1, 2, 3}, keys)

	it = it.Prev()
	assert.Equal(t, 3, it.Key(), "Prev from end yields the last element")
}

func TestIteratorPrevPastBeginPanics(t *testing.T) {
	m := NewMap[int, int](intLess)
	m.Insert(1, 1)
	assert.Panics(t, func() { m.Begin().Prev() })
}

func TestIteratorPrevOnEmptyEndPanics(t *testing.T) {
	m := NewMap[int, int](intLess)
	assert.Panics(t, func() { m.End().Prev() })
}

func TestIteratorSetValue(t *testing.T) {
	m := NewMap[int, int](intLess)
	m.Insert(1, 100)
	it, _ := m.Find(1)
	it.SetValue(200)
	v, _ := m.At(1)
	assert.Equal(t, 200, v)
}

func TestReverseIterator(t *testing.T) {
	m := NewMap[int, int](intLess)
	for _, k := range []int{1, 2, 3} {
		m.Insert(k, k)
	}

	r := m.RBegin()
	var keys []int
	for r.Valid() {
		keys = append(keys, r.Key())
		r = r.Next()
	}
	assert.Equal(t, []int{3, 2, 1}, keys)
}

// TestBalancingIteratorFullSweepBalances mirrors spec.md §8's claim that a
// full begin-to-end sweep with a BalancingIterator leaves the container in
// exactly the shape a Balance() call would produce.
func TestBalancingIteratorFullSweepBalances(t *testing.T) {
	m := NewMap[int, int](intLess)
	for i := 30; i >= 1; i-- {
		m.Insert(i, i)
	}
	require.False(t, m.IsBalanced())

	it := m.BalancingBegin()
	var keys []int
	for it.Valid() {
		keys = append(keys, it.Key())
		it.Next()
	}

	assert.True(t, m.IsBalanced())
	assert.Len(t, keys, 30)
	require.NoError(t, m.c.validate())

	i := 0
	m.c.forEachNoBalance(func(k, _ int) {
		i++
		assert.Equal(t, levelOf(i), columnHeight(m.c.findNode(k)))
	})
}

func TestBalancingIteratorReverseSweepBalances(t *testing.T) {
	m := NewMap[int, int](intLess)
	for i := 1; i <= 17; i++ {
		m.Insert(i, i)
	}

	cur := m.BalancingEnd()
	for {
		cur.Prev()
		if cur.index == 0 {
			break
		}
	}
	assert.True(t, m.IsBalanced())
	require.NoError(t, m.c.validate())
}
