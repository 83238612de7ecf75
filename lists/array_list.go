package lists

import (
	"iter"
	"slices"

	"unboxed/scalar"
	"unboxed/sliceutil"
)

// ArrayList is a list backed by a slice. It has random access and overrides
// the bulk operations with block copies.
type ArrayList[T scalar.Scalar] struct {
	AbstractList[T]

	data     []T
	modCount uint64
}

var (
	_ List[int]    = (*ArrayList[int])(nil)
	_ RandomAccess = (*ArrayList[int])(nil)
	_ ModCounter   = (*ArrayList[int])(nil)
)

func NewArrayList[T scalar.Scalar](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return wrapSlice(make([]T, 0, initialCapacity))
}

// ArrayListOf returns a list holding a copy of values.
func ArrayListOf[T scalar.Scalar](values ...T) *ArrayList[T] {
	return wrapSlice(slices.Clone(values))
}

func wrapSlice[T scalar.Scalar](data []T) *ArrayList[T] {
	al := &ArrayList[T]{data: data}
	al.Init(al)
	return al
}

func (al *ArrayList[T]) RandomAccess() bool {
	return true
}

func (al *ArrayList[T]) ModCount() uint64 {
	return al.modCount
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Get(index int) (v T, err error) {
	if err = checkRestrictedIndex(index, len(al.data)); err != nil {
		return v, err
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) (old T, err error) {
	if err = checkRestrictedIndex(index, len(al.data)); err != nil {
		return old, err
	}
	old = al.data[index]
	al.data[index] = value
	return old, nil
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if err := checkIndex(index, len(al.data)); err != nil {
		return err
	}
	al.data = slices.Insert(al.data, index, value)
	al.modCount++
	return nil
}

func (al *ArrayList[T]) RemoveAt(index int) (v T, err error) {
	if err = checkRestrictedIndex(index, len(al.data)); err != nil {
		return v, err
	}
	v = al.data[index]
	al.data = slices.Delete(al.data, index, index+1)
	al.modCount++
	return v, nil
}

func (al *ArrayList[T]) Add(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	al.data = append(al.data, values...)
	al.modCount++
	return nil
}

// AddElements inserts src at index.
// Performs at most ONE allocation and ONE memory shift.
func (al *ArrayList[T]) AddElements(index int, src []T) error {
	if err := checkIndex(index, len(al.data)); err != nil {
		return err
	}

	n := len(src)
	if n == 0 {
		return nil
	}

	oldLen := len(al.data)
	newLen := oldLen + n

	if newLen > cap(al.data) {
		newCap := max(newLen, 2*oldLen)
		newItems := make([]T, newLen, newCap)

		// [0...index] -> [0...index]
		copy(newItems, al.data[:index])
		// [index...] -> [index+n...] (leave a gap in the middle)
		copy(newItems[index+n:], al.data[index:])
		copy(newItems[index:], src)
		al.data = newItems
	} else {
		// enough capacity, in-place shift
		al.data = al.data[:newLen]
		copy(al.data[index+n:], al.data[index:])
		copy(al.data[index:], src)
	}
	al.modCount++
	return nil
}

// RemoveElements removes elements from index 'from' (inclusive) to 'to' (exclusive).
func (al *ArrayList[T]) RemoveElements(from, to int) error {
	if err := checkIndex(to, len(al.data)); err != nil {
		return err
	}
	if err := checkIndex(from, len(al.data)); err != nil {
		return err
	}
	if err := checkFromTo(from, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	al.data = slices.Delete(al.data, from, to)
	al.modCount++
	return nil
}

func (al *ArrayList[T]) GetElements(from int, dst []T) error {
	if err := checkIndex(from, len(al.data)); err != nil {
		return err
	}
	if err := checkEnd(from, len(dst), len(al.data)); err != nil {
		return err
	}
	copy(dst, al.data[from:])
	return nil
}

func (al *ArrayList[T]) SetElements(index int, src []T) error {
	if err := checkIndex(index, len(al.data)); err != nil {
		return err
	}
	if err := checkEnd(index, len(src), len(al.data)); err != nil {
		return err
	}
	copy(al.data[index:], src)
	return nil
}

func (al *ArrayList[T]) IndexOf(value T) int {
	return sliceutil.Index(al.data, value)
}

func (al *ArrayList[T]) LastIndexOf(value T) int {
	return sliceutil.LastIndex(al.data, value)
}

func (al *ArrayList[T]) Contains(value T) bool {
	return sliceutil.Contains(al.data, value)
}

// RemoveIf removes every element matching predicate and returns how many were removed.
func (al *ArrayList[T]) RemoveIf(predicate func(T) bool) (int, error) {
	before := len(al.data)
	al.data = slices.DeleteFunc(al.data, predicate)
	removed := before - len(al.data)
	if removed > 0 {
		al.modCount++
	}
	return removed, nil
}

func (al *ArrayList[T]) Resize(newSize int) error {
	if newSize < 0 {
		return illegalArgument("size (%d) is negative", newSize)
	}
	switch n := len(al.data); {
	case newSize > n:
		al.data = slices.Grow(al.data, newSize-n)[:newSize]
		// the grown region may hold values from an earlier truncation
		clear(al.data[n:])
	case newSize < n:
		al.data = al.data[:newSize]
	default:
		return nil
	}
	al.modCount++
	return nil
}

func (al *ArrayList[T]) Clear() error {
	if len(al.data) == 0 {
		return nil
	}
	al.data = al.data[:0]
	al.modCount++
	return nil
}

// ResizeToFit reduces the capacity of the underlying array to match the current size.
// Use this to release memory when the list will no longer grow.
func (al *ArrayList[T]) ResizeToFit() {
	al.data = slices.Clip(al.data)
}

// Clone returns a copy of the list with its own backing array.
func (al *ArrayList[T]) Clone() *ArrayList[T] {
	return wrapSlice(slices.Clone(al.data))
}

// Sort sorts the list stably in place. A nil compare sorts by scalar.Compare.
func (al *ArrayList[T]) Sort(compare scalar.Comparator[T]) error {
	slices.SortStableFunc(al.data, scalar.OrNatural(compare))
	return nil
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

func (al *ArrayList[T]) ForEach(action func(T)) error {
	for _, v := range al.data {
		action(v)
	}
	return nil
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.data)
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}
