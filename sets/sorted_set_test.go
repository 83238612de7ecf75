package sets_test

import (
	"math"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unboxed/lists"
	"unboxed/scalar"
	"unboxed/sets"
)

func TestSortedSet_Basic(t *testing.T) {
	s := sets.SortedSetOf(5, 1, 4, 1, 3)

	assert.Equal(t, 4, s.Size())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, []int{1, 3, 4, 5}, slices.Collect(s.Values()))
	assert.Equal(t, []int{5, 4, 3, 1}, slices.Collect(s.Backward()))
	assert.Equal(t, []int{4, 5}, slices.Collect(s.ValuesFrom(4)))
	assert.Equal(t, []int{3, 4, 5}, slices.Collect(s.ValuesFrom(2)))

	assert.True(t, s.Add(2))
	assert.False(t, s.Add(2))
	assert.True(t, s.Contains(2))
	assert.True(t, s.Remove(2))
	assert.False(t, s.Remove(2))
	assert.False(t, s.Contains(2))

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 1, first)
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 5, last)

	s.Clear()
	assert.True(t, s.IsEmpty())
	_, ok = s.First()
	assert.False(t, ok)
	_, ok = s.Last()
	assert.False(t, ok)
}

func TestSortedSet_TotalOrderMembership(t *testing.T) {
	negZero := math.Copysign(0, -1)
	s := sets.SortedSetOf(math.NaN(), 0.0, negZero, math.Inf(1))

	assert.Equal(t, 4, s.Size(), "-0 and +0 are distinct members")
	assert.True(t, s.Contains(math.NaN()))
	assert.False(t, s.Add(math.NaN()))

	vals := slices.Collect(s.Values())
	require.Len(t, vals, 4)
	assert.True(t, math.Signbit(vals[0]))
	assert.False(t, math.Signbit(vals[1]))
	assert.True(t, math.IsInf(vals[2], 1))
	assert.True(t, math.IsNaN(vals[3]))
}

func TestSortedSet_Comparator(t *testing.T) {
	s := sets.SortedSetOf[int]()
	assert.Nil(t, s.Comparator())

	rev := sets.NewSortedSet(scalar.ReverseOrder[int8](nil))
	for _, v := range []int8{3, -7, 12} {
		rev.Add(v)
	}
	assert.NotNil(t, rev.Comparator())
	assert.Equal(t, []int8{12, 3, -7}, slices.Collect(rev.Values()))
	first, _ := rev.First()
	assert.Equal(t, int8(12), first)
}

func TestSortedSet_ToList(t *testing.T) {
	s := sets.SortedSetOf[uint16](9, 2, 7)
	l := s.ToList()
	assert.Equal(t, []uint16{2, 7, 9}, l.ToSlice())

	// the list is a copy
	require.NoError(t, l.Add(1))
	assert.Equal(t, 3, s.Size())
	assert.True(t, l.Equal(lists.ArrayListOf[uint16](2, 7, 9, 1)))
}

func TestSortedSet_Clone(t *testing.T) {
	s := sets.SortedSetOf(1, 2, 3)
	c := s.Clone()
	c.Add(4)
	s.Remove(1)

	assert.Equal(t, []int{2, 3}, slices.Collect(s.Values()))
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(c.Values()))
}

func TestSortedSet_Iterator(t *testing.T) {
	s := sets.SortedSetOf(1, 2, 3, 4, 5, 6)
	it := s.Iterator()

	assert.True(t, errors.Is(it.Remove(), lists.ErrIllegalState))

	var seen []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		seen = append(seen, v)
		if v%2 == 0 {
			require.NoError(t, it.Remove())
			assert.True(t, errors.Is(it.Remove(), lists.ErrIllegalState))
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seen)
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(s.Values()))

	_, err := it.Next()
	assert.True(t, errors.Is(err, lists.ErrNoSuchElement))
}

func TestSortedSet_IteratorSkip(t *testing.T) {
	s := sets.SortedSetOf(10, 20, 30, 40)
	it := s.Iterator()

	n, err := it.Skip(2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// the skipped-over member can be removed
	require.NoError(t, it.Remove())
	assert.False(t, s.Contains(20))

	// members added ahead of the cursor are visited
	s.Add(25)
	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	n, err = it.Skip(10)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, it.HasNext())

	_, err = it.Skip(-1)
	assert.True(t, errors.Is(err, lists.ErrIllegalArgument))
}

func TestSortedSet_IteratorEmpty(t *testing.T) {
	it := sets.NewSortedSet[float32](nil).Iterator()
	assert.False(t, it.HasNext())
	n, err := it.Skip(3)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, errors.Is(it.Remove(), lists.ErrIllegalState))
}
