package lists

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"unboxed/scalar"
)

// AbstractList supplies every List operation in terms of the Core operations
// of the list that embeds it.
//
// A concrete list embeds AbstractList, implements at least Size and Get, and
// calls Init with itself before use:
//
//	type MyList[T scalar.Scalar] struct {
//		lists.AbstractList[T]
//		...
//	}
//
//	func NewMyList[T scalar.Scalar]() *MyList[T] {
//		l := &MyList[T]{}
//		l.Init(l)
//		return l
//	}
//
// Every default dispatches through the embedding list, so a method the
// concrete list overrides (a block copy, a faster search) is used by all the
// other defaults too. The defaults walk the list one element at a time;
// containers backed by contiguous memory are expected to override the bulk
// operations.
type AbstractList[T scalar.Scalar] struct {
	self List[T]
}

// Init binds the skeleton to the list that embeds it.
func (al *AbstractList[T]) Init(self List[T]) {
	al.self = self
}

// EnsureIndex validates an insertion point: 0 <= index <= Size().
func (al *AbstractList[T]) EnsureIndex(index int) error {
	return checkIndex(index, al.self.Size())
}

// EnsureRestrictedIndex validates an element position: 0 <= index < Size().
func (al *AbstractList[T]) EnsureRestrictedIndex(index int) error {
	return checkRestrictedIndex(index, al.self.Size())
}

func (al *AbstractList[T]) Insert(index int, value T) error {
	return unsupported("Insert")
}

func (al *AbstractList[T]) Set(index int, value T) (old T, err error) {
	return old, unsupported("Set")
}

func (al *AbstractList[T]) RemoveAt(index int) (v T, err error) {
	return v, unsupported("RemoveAt")
}

func (al *AbstractList[T]) Add(values ...T) error {
	return al.self.AddElements(al.self.Size(), values)
}

func (al *AbstractList[T]) InsertAll(index int, values ...T) error {
	return al.self.AddElements(index, values)
}

// AddAll copies other before inserting, so adding a list to itself terminates.
func (al *AbstractList[T]) AddAll(index int, other List[T]) error {
	if err := al.EnsureIndex(index); err != nil {
		return err
	}
	snapshot := make([]T, other.Size())
	if err := other.GetElements(0, snapshot); err != nil {
		return err
	}
	return al.self.AddElements(index, snapshot)
}

func (al *AbstractList[T]) Remove(value T) (bool, error) {
	index := al.self.IndexOf(value)
	if index == -1 {
		return false, nil
	}
	if _, err := al.self.RemoveAt(index); err != nil {
		return false, err
	}
	return true, nil
}

func (al *AbstractList[T]) RemoveIf(predicate func(T) bool) (int, error) {
	removed := 0
	it := al.self.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return removed, err
		}
		if predicate(v) {
			if err := it.Remove(); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}

// Resize appends zero values or removes tail elements, one at a time, until
// the list holds exactly newSize elements.
func (al *AbstractList[T]) Resize(newSize int) error {
	if newSize < 0 {
		return illegalArgument("size (%d) is negative", newSize)
	}
	var zero T
	for i := al.self.Size(); i < newSize; i++ {
		if err := al.self.Add(zero); err != nil {
			return err
		}
	}
	for i := al.self.Size(); i > newSize; i-- {
		if _, err := al.self.RemoveAt(i - 1); err != nil {
			return err
		}
	}
	return nil
}

func (al *AbstractList[T]) Clear() error {
	return al.self.RemoveElements(0, al.self.Size())
}

// RemoveElements removes the range [from, to). It always walks with an
// iterator, which keeps index shifting out of the picture.
func (al *AbstractList[T]) RemoveElements(from, to int) error {
	if err := al.EnsureIndex(to); err != nil {
		return err
	}
	it, err := al.self.ListIterator(from)
	if err != nil {
		return err
	}
	if err := checkFromTo(from, to); err != nil {
		return err
	}
	for n := to - from; n > 0; n-- {
		if _, err := it.Next(); err != nil {
			return err
		}
		if err := it.Remove(); err != nil {
			return err
		}
	}
	return nil
}

func (al *AbstractList[T]) AddElements(index int, src []T) error {
	if err := al.EnsureIndex(index); err != nil {
		return err
	}
	if isRandomAccess(al.self) {
		for _, v := range src {
			if err := al.self.Insert(index, v); err != nil {
				return err
			}
			index++
		}
		return nil
	}
	it, err := al.self.ListIterator(index)
	if err != nil {
		return err
	}
	for _, v := range src {
		if err := it.Add(v); err != nil {
			return err
		}
	}
	return nil
}

func (al *AbstractList[T]) GetElements(from int, dst []T) error {
	if err := al.EnsureIndex(from); err != nil {
		return err
	}
	if err := checkEnd(from, len(dst), al.self.Size()); err != nil {
		return err
	}
	if isRandomAccess(al.self) {
		for i := range dst {
			v, err := al.self.Get(from + i)
			if err != nil {
				return err
			}
			dst[i] = v
		}
		return nil
	}
	it, err := al.self.ListIterator(from)
	if err != nil {
		return err
	}
	for i := range dst {
		if dst[i], err = it.Next(); err != nil {
			return err
		}
	}
	return nil
}

func (al *AbstractList[T]) SetElements(index int, src []T) error {
	if err := al.EnsureIndex(index); err != nil {
		return err
	}
	if err := checkEnd(index, len(src), al.self.Size()); err != nil {
		return err
	}
	if isRandomAccess(al.self) {
		for i, v := range src {
			if _, err := al.self.Set(index+i, v); err != nil {
				return err
			}
		}
		return nil
	}
	it, err := al.self.ListIterator(index)
	if err != nil {
		return err
	}
	for _, v := range src {
		if _, err := it.Next(); err != nil {
			return err
		}
		if err := it.Set(v); err != nil {
			return err
		}
	}
	return nil
}

func (al *AbstractList[T]) IsEmpty() bool {
	return al.self.Size() == 0
}

func (al *AbstractList[T]) Contains(value T) bool {
	return al.self.IndexOf(value) >= 0
}

func (al *AbstractList[T]) IndexOf(value T) int {
	it := al.self.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return -1
		}
		if scalar.Equal(value, e) {
			return it.PreviousIndex()
		}
	}
	return -1
}

func (al *AbstractList[T]) LastIndexOf(value T) int {
	it, err := al.self.ListIterator(al.self.Size())
	if err != nil {
		return -1
	}
	for it.HasPrevious() {
		e, err := it.Previous()
		if err != nil {
			return -1
		}
		if scalar.Equal(value, e) {
			return it.NextIndex()
		}
	}
	return -1
}

func (al *AbstractList[T]) Equal(other List[T]) bool {
	if other == nil {
		return false
	}
	if sameList(al.self, other) {
		return true
	}
	s := al.self.Size()
	if s != other.Size() {
		return false
	}
	i1, i2 := al.self.Iterator(), other.Iterator()
	for ; s > 0; s-- {
		a, err1 := i1.Next()
		b, err2 := i2.Next()
		if err1 != nil || err2 != nil || a != b {
			return false
		}
	}
	return true
}

// sameList reports whether a and b are the same pointer. Non-pointer lists
// may hold uncomparable fields, so they never match.
func sameList[T scalar.Scalar](a, b List[T]) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	return va.Kind() == reflect.Pointer && vb.Kind() == reflect.Pointer &&
		va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}

// HashCode folds the element hashes in order: h = 31*h + scalar.Hash(e), from h = 1.
func (al *AbstractList[T]) HashCode() int32 {
	h := int32(1)
	for v := range al.self.Values() {
		h = 31*h + scalar.Hash(v)
	}
	return h
}

// CompareTo compares lexicographically under scalar.Compare. A strict prefix
// is less than the longer list.
func (al *AbstractList[T]) CompareTo(other List[T]) int {
	if sameList(al.self, other) {
		return 0
	}
	i1, i2 := al.self.Iterator(), other.Iterator()
	for i1.HasNext() && i2.HasNext() {
		e1, err1 := i1.Next()
		e2, err2 := i2.Next()
		if err1 != nil || err2 != nil {
			break
		}
		if r := scalar.Compare(e1, e2); r != 0 {
			return r
		}
	}
	switch {
	case i2.HasNext():
		return -1
	case i1.HasNext():
		return 1
	default:
		return 0
	}
}

func (al *AbstractList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	for v := range al.self.Values() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteString("]")
	return sb.String()
}

func (al *AbstractList[T]) Iterator() ListIterator[T] {
	it, err := al.self.ListIterator(0)
	if err != nil {
		// stale view: the error surfaces from the first Next
		return NewIndexIterator[T](al.self, 0, al.self.Size())
	}
	return it
}

// ListIterator returns an IndexIterator over the list. Containers without
// random access should override it; this default costs one Get per step.
func (al *AbstractList[T]) ListIterator(index int) (ListIterator[T], error) {
	if err := al.EnsureIndex(index); err != nil {
		return nil, err
	}
	return NewIndexIterator[T](al.self, 0, index), nil
}

func (al *AbstractList[T]) SubList(from, to int) (List[T], error) {
	if err := al.EnsureIndex(from); err != nil {
		return nil, err
	}
	if err := al.EnsureIndex(to); err != nil {
		return nil, err
	}
	if err := checkFromTo(from, to); err != nil {
		return nil, err
	}
	return newSubList(al.self, from, to), nil
}

func (al *AbstractList[T]) ForEach(action func(T)) error {
	if isRandomAccess(al.self) {
		for i, n := 0, al.self.Size(); i < n; i++ {
			v, err := al.self.Get(i)
			if err != nil {
				return err
			}
			action(v)
		}
		return nil
	}
	it := al.self.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		action(v)
	}
	return nil
}

// ToSlice returns a copy of the elements, or nil if they cannot be read.
func (al *AbstractList[T]) ToSlice() []T {
	res := make([]T, al.self.Size())
	if err := al.self.GetElements(0, res); err != nil {
		return nil
	}
	return res
}

// Sort sorts the list stably. A nil compare sorts by scalar.Compare.
func (al *AbstractList[T]) Sort(compare scalar.Comparator[T]) error {
	vals := make([]T, al.self.Size())
	if err := al.self.GetElements(0, vals); err != nil {
		return err
	}
	slices.SortStableFunc(vals, scalar.OrNatural(compare))
	return al.self.SetElements(0, vals)
}

func (al *AbstractList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := al.self.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func (al *AbstractList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := al.self.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(it.PreviousIndex(), v) {
				return
			}
		}
	}
}

func (al *AbstractList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it, err := al.self.ListIterator(al.self.Size())
		if err != nil {
			return
		}
		for it.HasPrevious() {
			v, err := it.Previous()
			if err != nil || !yield(it.NextIndex(), v) {
				return
			}
		}
	}
}

// -------------------------------------------------------
// Stack
// -------------------------------------------------------

func (al *AbstractList[T]) Push(value T) error {
	return al.self.Add(value)
}

func (al *AbstractList[T]) Pop() (v T, err error) {
	if al.self.IsEmpty() {
		return v, noSuchElement("pop from an empty list")
	}
	return al.self.RemoveAt(al.self.Size() - 1)
}

func (al *AbstractList[T]) Top() (v T, err error) {
	if al.self.IsEmpty() {
		return v, noSuchElement("top of an empty list")
	}
	return al.self.Get(al.self.Size() - 1)
}

func (al *AbstractList[T]) Peek(n int) (T, error) {
	return al.self.Get(al.self.Size() - 1 - n)
}
