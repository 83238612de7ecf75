package lists_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unboxed/lists"
)

func TestIndexIterator(t *testing.T) {
	t.Run("ForwardAndBackward", func(t *testing.T) {
		store := lists.ArrayListOf(10, 20, 30)
		it := lists.NewIndexIterator[int](store, 0, 0)

		assert.False(t, it.HasPrevious())
		assert.Equal(t, -1, it.PreviousIndex())

		for i, want := range []int{10, 20, 30} {
			assert.Equal(t, i, it.NextIndex())
			v, err := it.Next()
			require.NoError(t, err)
			assert.Equal(t, want, v)
		}
		assert.False(t, it.HasNext())
		_, err := it.Next()
		assert.True(t, errors.Is(err, lists.ErrNoSuchElement))

		v, err := it.Previous()
		require.NoError(t, err)
		assert.Equal(t, 30, v)
		assert.Equal(t, 2, it.NextIndex())
	})

	t.Run("MinPos", func(t *testing.T) {
		store := lists.ArrayListOf(1, 2, 3, 4)
		it := lists.NewIndexIterator[int](store, 2, 3)

		v, err := it.Previous()
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.False(t, it.HasPrevious())
		_, err = it.Previous()
		assert.True(t, errors.Is(err, lists.ErrNoSuchElement))

		n, err := it.Back(5)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, 2, it.NextIndex())
	})

	t.Run("LiveUpperBound", func(t *testing.T) {
		store := lists.ArrayListOf(1)
		it := lists.NewIndexIterator[int](store, 0, 1)
		assert.False(t, it.HasNext())

		require.NoError(t, store.Add(2))
		assert.True(t, it.HasNext())
		v, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	})

	t.Run("RemoveRequiresNextOrPrevious", func(t *testing.T) {
		store := lists.ArrayListOf(1, 2, 3)
		it := lists.NewIndexIterator[int](store, 0, 0)

		assert.True(t, errors.Is(it.Remove(), lists.ErrIllegalState))
		assert.True(t, errors.Is(it.Set(5), lists.ErrIllegalState))

		_, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
		assert.True(t, errors.Is(it.Remove(), lists.ErrIllegalState), "second Remove")

		_, err = it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Add(9))
		assert.True(t, errors.Is(it.Remove(), lists.ErrIllegalState), "Remove after Add")
		assert.Equal(t, []int{2, 9, 3}, store.ToSlice())
	})

	t.Run("SkipMarksLastReturned", func(t *testing.T) {
		store := lists.ArrayListOf(1, 2, 3, 4, 5)
		it := lists.NewIndexIterator[int](store, 0, 0)

		n, err := it.Skip(2)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		// the element just skipped over may be replaced or removed
		require.NoError(t, it.Set(20))
		assert.Equal(t, []int{1, 20, 3, 4, 5}, store.ToSlice())
		require.NoError(t, it.Remove())
		assert.Equal(t, 1, it.NextIndex())
		assert.Equal(t, []int{1, 3, 4, 5}, store.ToSlice())

		n, err = it.Skip(100)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, 4, it.NextIndex())

		n, err = it.Skip(1)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("SkipZeroAtStart", func(t *testing.T) {
		store := lists.ArrayListOf(1, 2)
		it := lists.NewIndexIterator[int](store, 0, 0)
		n, err := it.Skip(0)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.True(t, errors.Is(it.Remove(), lists.ErrIllegalState))
	})

	t.Run("BackMarksLastReturned", func(t *testing.T) {
		store := lists.ArrayListOf(1, 2, 3, 4)
		it := lists.NewIndexIterator[int](store, 0, 4)

		n, err := it.Back(2)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 2, it.NextIndex())
		require.NoError(t, it.Set(30))
		assert.Equal(t, []int{1, 2, 30, 4}, store.ToSlice())

		require.NoError(t, it.Remove())
		assert.Equal(t, 2, it.NextIndex())
		v, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, 4, v)
	})

	t.Run("BackAtEndOfEmptyStore", func(t *testing.T) {
		it := lists.NewIndexIterator[int](lists.NewArrayList[int](0), 0, 0)
		n, err := it.Back(1)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.True(t, errors.Is(it.Set(1), lists.ErrIllegalState))
	})

	t.Run("NegativeCounts", func(t *testing.T) {
		it := lists.NewIndexIterator[int](lists.ArrayListOf(1), 0, 0)
		_, err := it.Skip(-1)
		assert.True(t, errors.Is(err, lists.ErrIllegalArgument))
		_, err = it.Back(-1)
		assert.True(t, errors.Is(err, lists.ErrIllegalArgument))
	})
}
