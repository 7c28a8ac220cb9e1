package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderedMapNoComparatorNeeded(t *testing.T) {
	m := NewOrderedMap[int, string]()
	m.Insert(3, "c")
	m.Insert(1, "a")
	m.Insert(2, "b")

	assert.Equal(t, []int{1, 2, 3}, m.c.bottomListKeys())
}

func TestNewOrderedMultimapStrings(t *testing.T) {
	mm := NewOrderedMultimap[string, int]()
	mm.Insert("banana", 1)
	mm.Insert("apple", 2)
	mm.Insert("apple", 3)

	assert.Equal(t, 2, mm.Count("apple"))
	assert.Equal(t, []string{"apple", "apple", "banana"}, mm.c.bottomListKeys())
}

// semver is a minimal CmpType-satisfying key with no builtin operator
// ordering.
type semver struct{ major, minor int }

func (v semver) Compare(other any) int {
	o := other.(semver)
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

func TestNewCustomOrderedMapUsesCompareMethod(t *testing.T) {
	m := NewCustomOrderedMap[semver, string]()
	m.Insert(semver{2, 0}, "two-oh")
	m.Insert(semver{1, 9}, "one-nine")
	m.Insert(semver{1, 2}, "one-two")

	var got []semver
	m.ForEachNoBalance(func(k semver, _ string) { got = append(got, k) })
	assert.Equal(t, []semver{{1, 2}, {1, 9}, {2, 0}}, got)
}

func TestNewCustomOrderedMultimapUsesCompareMethod(t *testing.T) {
	mm := NewCustomOrderedMultimap[semver, string]()
	mm.Insert(semver{1, 0}, "a")
	mm.Insert(semver{1, 0}, "b")

	assert.Equal(t, 2, mm.Count(semver{1, 0}))
}
