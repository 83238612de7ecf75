// Package sets provides sorted sets of scalars.
package sets

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/google/btree"

	"unboxed/lists"
	"unboxed/scalar"
)

const degree = 16

// SortedSet is a set kept in comparator order in a B-tree. Two values are
// the same member when the comparator returns 0, so under the natural order
// NaN is a member like any other value and -0.0 and +0.0 are distinct.
//
// A SortedSet is not safe for concurrent use.
type SortedSet[T scalar.Scalar] struct {
	tree       *btree.BTreeG[T]
	cmp        scalar.Comparator[T]
	comparator scalar.Comparator[T]
}

// NewSortedSet creates an empty set. A nil comparator means scalar.Compare.
func NewSortedSet[T scalar.Scalar](c scalar.Comparator[T]) *SortedSet[T] {
	cmp := scalar.OrNatural(c)
	return &SortedSet[T]{
		tree: btree.NewG(degree, func(a, b T) bool {
			return cmp(a, b) < 0
		}),
		cmp:        cmp,
		comparator: c,
	}
}

// SortedSetOf creates a naturally ordered set holding values.
func SortedSetOf[T scalar.Scalar](values ...T) *SortedSet[T] {
	s := NewSortedSet[T](nil)
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts value and reports whether it was not already present.
func (s *SortedSet[T]) Add(value T) bool {
	if s.tree.Has(value) {
		return false
	}
	s.tree.ReplaceOrInsert(value)
	return true
}

// Remove deletes value and reports whether it was present.
func (s *SortedSet[T]) Remove(value T) bool {
	_, ok := s.tree.Delete(value)
	return ok
}

func (s *SortedSet[T]) Contains(value T) bool {
	return s.tree.Has(value)
}

func (s *SortedSet[T]) Size() int {
	return s.tree.Len()
}

func (s *SortedSet[T]) IsEmpty() bool {
	return s.tree.Len() == 0
}

func (s *SortedSet[T]) Clear() {
	s.tree.Clear(true)
}

// First returns the smallest member.
func (s *SortedSet[T]) First() (T, bool) {
	return s.tree.Min()
}

// Last returns the largest member.
func (s *SortedSet[T]) Last() (T, bool) {
	return s.tree.Max()
}

// Comparator returns the comparator the set was created with, nil for the
// natural order.
func (s *SortedSet[T]) Comparator() scalar.Comparator[T] {
	return s.comparator
}

// Clone returns an independent copy. The tree is copied lazily, so cloning
// is cheap until either set is written.
func (s *SortedSet[T]) Clone() *SortedSet[T] {
	return &SortedSet[T]{
		tree:       s.tree.Clone(),
		cmp:        s.cmp,
		comparator: s.comparator,
	}
}

// Values yields the members in ascending order.
func (s *SortedSet[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(btree.ItemIteratorG[T](yield))
	}
}

// ValuesFrom yields the members not less than from, in ascending order.
func (s *SortedSet[T]) ValuesFrom(from T) iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.AscendGreaterOrEqual(from, btree.ItemIteratorG[T](yield))
	}
}

// Backward yields the members in descending order.
func (s *SortedSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Descend(btree.ItemIteratorG[T](yield))
	}
}

// ToList copies the members, in order, into a new ArrayList.
func (s *SortedSet[T]) ToList() *lists.ArrayList[T] {
	vals := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(v T) bool {
		vals = append(vals, v)
		return true
	})
	return lists.ArrayListOf(vals...)
}

// Iterator walks the set in ascending order. It positions itself by value,
// so members added or removed behind its back are seen or skipped as their
// order dictates.
func (s *SortedSet[T]) Iterator() lists.Iterator[T] {
	return &setIterator[T]{set: s}
}

type setIterator[T scalar.Scalar] struct {
	set *SortedSet[T]
	// last is the most recently returned member; meaningless until started
	last    T
	started bool
	canRm   bool
}

var _ lists.Iterator[int] = (*setIterator[int])(nil)

// successor finds the smallest member after the cursor.
func (it *setIterator[T]) successor() (next T, ok bool) {
	if !it.started {
		return it.set.tree.Min()
	}
	it.set.tree.AscendGreaterOrEqual(it.last, func(v T) bool {
		if it.set.cmp(v, it.last) == 0 {
			return true
		}
		next, ok = v, true
		return false
	})
	return next, ok
}

func (it *setIterator[T]) HasNext() bool {
	_, ok := it.successor()
	return ok
}

func (it *setIterator[T]) Next() (T, error) {
	v, ok := it.successor()
	if !ok {
		return v, errors.Wrap(lists.ErrNoSuchElement, "set iterator is exhausted")
	}
	it.last, it.started, it.canRm = v, true, true
	return v, nil
}

func (it *setIterator[T]) Remove() error {
	if !it.canRm {
		return errors.Wrap(lists.ErrIllegalState, "Remove without a preceding Next")
	}
	it.set.tree.Delete(it.last)
	it.canRm = false
	return nil
}

func (it *setIterator[T]) Skip(n int) (int, error) {
	if n < 0 {
		return 0, errors.Wrapf(lists.ErrIllegalArgument, "negative skip count (%d)", n)
	}
	i := 0
	for ; i < n; i++ {
		if _, err := it.Next(); err != nil {
			break
		}
	}
	return i, nil
}
