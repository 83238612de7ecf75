package lists

import (
	"iter"
	"slices"

	"unboxed/scalar"
	"unboxed/sliceutil"
)

// ImmutableList is a random-access snapshot. Every mutator, including those
// of its sublists and iterators, fails with ErrUnsupportedOperation.
type ImmutableList[T scalar.Scalar] struct {
	AbstractList[T]

	data []T
}

var (
	_ List[int]    = (*ImmutableList[int])(nil)
	_ RandomAccess = (*ImmutableList[int])(nil)
)

// ImmutableListOf returns an immutable list holding a copy of values.
func ImmutableListOf[T scalar.Scalar](values ...T) *ImmutableList[T] {
	il := &ImmutableList[T]{data: slices.Clone(values)}
	il.Init(il)
	return il
}

// ImmutableCopy snapshots the current contents of l.
func ImmutableCopy[T scalar.Scalar](l List[T]) *ImmutableList[T] {
	return ImmutableListOf(l.ToSlice()...)
}

func (il *ImmutableList[T]) RandomAccess() bool {
	return true
}

func (il *ImmutableList[T]) Size() int {
	return len(il.data)
}

func (il *ImmutableList[T]) Get(index int) (v T, err error) {
	if err = checkRestrictedIndex(index, len(il.data)); err != nil {
		return v, err
	}
	return il.data[index], nil
}

func (il *ImmutableList[T]) GetElements(from int, dst []T) error {
	if err := checkIndex(from, len(il.data)); err != nil {
		return err
	}
	if err := checkEnd(from, len(dst), len(il.data)); err != nil {
		return err
	}
	copy(dst, il.data[from:])
	return nil
}

func (il *ImmutableList[T]) Add(...T) error {
	return unsupported("Add")
}

func (il *ImmutableList[T]) InsertAll(int, ...T) error {
	return unsupported("InsertAll")
}

func (il *ImmutableList[T]) AddAll(int, List[T]) error {
	return unsupported("AddAll")
}

func (il *ImmutableList[T]) AddElements(int, []T) error {
	return unsupported("AddElements")
}

func (il *ImmutableList[T]) SetElements(int, []T) error {
	return unsupported("SetElements")
}

func (il *ImmutableList[T]) RemoveElements(int, int) error {
	return unsupported("RemoveElements")
}

func (il *ImmutableList[T]) Remove(T) (bool, error) {
	return false, unsupported("Remove")
}

func (il *ImmutableList[T]) RemoveIf(func(T) bool) (int, error) {
	return 0, unsupported("RemoveIf")
}

func (il *ImmutableList[T]) Resize(int) error {
	return unsupported("Resize")
}

func (il *ImmutableList[T]) Clear() error {
	return unsupported("Clear")
}

func (il *ImmutableList[T]) Sort(scalar.Comparator[T]) error {
	return unsupported("Sort")
}

func (il *ImmutableList[T]) Push(T) error {
	return unsupported("Push")
}

func (il *ImmutableList[T]) Pop() (v T, err error) {
	return v, unsupported("Pop")
}

func (il *ImmutableList[T]) IndexOf(value T) int {
	return sliceutil.Index(il.data, value)
}

func (il *ImmutableList[T]) LastIndexOf(value T) int {
	return sliceutil.LastIndex(il.data, value)
}

func (il *ImmutableList[T]) ToSlice() []T {
	return slices.Clone(il.data)
}

func (il *ImmutableList[T]) Values() iter.Seq[T] {
	return slices.Values(il.data)
}

func (il *ImmutableList[T]) All() iter.Seq2[int, T] {
	return slices.All(il.data)
}

func (il *ImmutableList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(il.data)
}

// UnmodifiableList is a read-through view of another list that rejects every
// mutation. Changes made to the wrapped list stay visible through the view.
type UnmodifiableList[T scalar.Scalar] struct {
	ImmutableList[T]

	l List[T]
}

var _ List[int] = (*UnmodifiableList[int])(nil)

// Unmodifiable returns a read-only view of l.
func Unmodifiable[T scalar.Scalar](l List[T]) *UnmodifiableList[T] {
	ul := &UnmodifiableList[T]{l: l}
	ul.Init(ul)
	return ul
}

func (ul *UnmodifiableList[T]) RandomAccess() bool {
	return isRandomAccess(ul.l)
}

func (ul *UnmodifiableList[T]) Size() int {
	return ul.l.Size()
}

func (ul *UnmodifiableList[T]) Get(index int) (T, error) {
	return ul.l.Get(index)
}

func (ul *UnmodifiableList[T]) GetElements(from int, dst []T) error {
	return ul.l.GetElements(from, dst)
}

func (ul *UnmodifiableList[T]) IndexOf(value T) int {
	return ul.l.IndexOf(value)
}

func (ul *UnmodifiableList[T]) LastIndexOf(value T) int {
	return ul.l.LastIndexOf(value)
}

func (ul *UnmodifiableList[T]) ToSlice() []T {
	return ul.l.ToSlice()
}

func (ul *UnmodifiableList[T]) Values() iter.Seq[T] {
	return ul.l.Values()
}

func (ul *UnmodifiableList[T]) All() iter.Seq2[int, T] {
	return ul.l.All()
}

func (ul *UnmodifiableList[T]) Backward() iter.Seq2[int, T] {
	return ul.l.Backward()
}

func (ul *UnmodifiableList[T]) ListIterator(index int) (ListIterator[T], error) {
	it, err := ul.l.ListIterator(index)
	if err != nil {
		return nil, err
	}
	return unmodifiableIterator[T]{it}, nil
}

// unmodifiableIterator forwards reads and rejects Remove, Set and Add.
type unmodifiableIterator[T scalar.Scalar] struct {
	ListIterator[T]
}

func (unmodifiableIterator[T]) Remove() error {
	return unsupported("Remove")
}

func (unmodifiableIterator[T]) Set(T) error {
	return unsupported("Set")
}

func (unmodifiableIterator[T]) Add(T) error {
	return unsupported("Add")
}
