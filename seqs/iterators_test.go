package seqs_test

import (
	"math"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unboxed/lists"
	"unboxed/seqs"
)

func TestValues(t *testing.T) {
	it := lists.ArrayListOf(1, 2, 3, 4).Iterator()

	var got []int
	for v := range seqs.Values(it) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)

	// the iterator resumes where the loop stopped
	assert.Equal(t, []int{3, 4}, slices.Collect(seqs.Values(it)))
	assert.Empty(t, slices.Collect(seqs.Values(it)))
}

func TestPour(t *testing.T) {
	tests := []struct {
		name  string
		src   []int
		max   int
		moved int
		dst   []int
	}{
		{"Partial", []int{1, 2, 3}, 2, 2, []int{0, 1, 2}},
		{"All", []int{1, 2, 3}, 10, 3, []int{0, 1, 2, 3}},
		{"Zero", []int{1, 2, 3}, 0, 0, []int{0}},
		{"EmptySource", nil, 5, 0, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := lists.ArrayListOf(0)
			n, err := seqs.Pour(lists.ArrayListOf(tt.src...).Iterator(), dst, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.moved, n)
			assert.Equal(t, tt.dst, dst.ToSlice())
		})
	}

	_, err := seqs.Pour(lists.ArrayListOf(1).Iterator(), lists.NewArrayList[int](0), -1)
	assert.True(t, errors.Is(err, lists.ErrIllegalArgument))
}

func TestPourIntoReadOnly(t *testing.T) {
	n, err := seqs.Pour(lists.ArrayListOf(1, 2).Iterator(), lists.ImmutableListOf[int](), 2)
	assert.True(t, errors.Is(err, lists.ErrUnsupportedOperation))
	assert.Zero(t, n)
}

func TestUnwrap(t *testing.T) {
	it := lists.LinkedListOf[int16](4, 5, 6).Iterator()

	dst := make([]int16, 2)
	n, err := seqs.Unwrap(it, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int16{4, 5}, dst)

	n, err = seqs.Unwrap(it, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, int16(6), dst[0])
}

func TestConcat(t *testing.T) {
	a := lists.ArrayListOf(1, 2)
	empty := lists.NewArrayList[int](0)
	b := lists.LinkedListOf(3, 4, 5)

	it := seqs.Concat(a.Iterator(), empty.Iterator(), b.Iterator())
	assert.True(t, errors.Is(it.Remove(), lists.ErrIllegalState))

	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		if v%2 == 0 {
			require.NoError(t, it.Remove())
			assert.True(t, errors.Is(it.Remove(), lists.ErrIllegalState))
		}
	}
	assert.Equal(t, []int{1}, a.ToSlice())
	assert.Equal(t, []int{3, 5}, b.ToSlice())

	_, err := it.Next()
	assert.True(t, errors.Is(err, lists.ErrNoSuchElement))
	assert.False(t, seqs.Concat[int]().HasNext())
}

func TestConcatSkip(t *testing.T) {
	a := lists.ArrayListOf(1, 2)
	b := lists.ArrayListOf(3, 4, 5)
	it := seqs.Concat(a.Iterator(), b.Iterator())

	n, err := it.Skip(3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// the last skipped element came from b
	require.NoError(t, it.Remove())
	assert.Equal(t, []int{4, 5}, b.ToSlice())

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	n, err = it.Skip(5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = it.Skip(-1)
	assert.True(t, errors.Is(err, lists.ErrIllegalArgument))
}

func TestAggregates(t *testing.T) {
	ints := lists.ArrayListOf(3, -2, 9, 4)
	assert.Equal(t, 14, seqs.Sum(ints.Values()))
	lo, ok := seqs.Min(ints.Values())
	require.True(t, ok)
	assert.Equal(t, -2, lo)
	hi, ok := seqs.Max(ints.Values())
	require.True(t, ok)
	assert.Equal(t, 9, hi)

	_, ok = seqs.Min(lists.NewArrayList[uint8](0).Values())
	assert.False(t, ok)
	_, ok = seqs.Max(lists.NewArrayList[uint8](0).Values())
	assert.False(t, ok)
	assert.Zero(t, seqs.Sum(lists.NewArrayList[uint8](0).Values()))
}

func TestAggregatesTotalOrder(t *testing.T) {
	negZero := math.Copysign(0, -1)
	floats := lists.ArrayListOf(0, negZero, math.NaN(), 1)

	lo, ok := seqs.Min(floats.Values())
	require.True(t, ok)
	assert.True(t, lo == 0 && math.Signbit(lo), "-0 is the minimum")

	hi, ok := seqs.Max(floats.Values())
	require.True(t, ok)
	assert.True(t, math.IsNaN(hi))

	onlyNaN, ok := seqs.Min(lists.ArrayListOf(math.NaN()).Values())
	require.True(t, ok)
	assert.True(t, math.IsNaN(onlyNaN))
}
