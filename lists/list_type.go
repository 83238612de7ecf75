package lists

import (
	"iter"

	"unboxed/scalar"
)

// Core is the minimal set of positional operations a concrete container
// supplies. Everything else in List is derived from it by AbstractList.
// Read-only containers leave Insert, Set and RemoveAt to AbstractList, which
// fails with ErrUnsupportedOperation.
type Core[T scalar.Scalar] interface {
	// Size returns the current number of elements
	Size() int

	// Get returns the element at index, or ErrIndexOutOfBounds
	Get(index int) (T, error)

	// Insert inserts value at index; index == Size() appends
	Insert(index int, value T) error

	// Set replaces the element at index and returns the previous one
	Set(index int, value T) (T, error)

	// RemoveAt removes and returns the element at index
	RemoveAt(index int) (T, error)
}

// List is an ordered, index-addressable sequence of scalars.
//
// Lists, their sublists and their iterators share storage. Exactly one of
// them should mutate at a time; none of them is safe for concurrent use.
type List[T scalar.Scalar] interface {
	Core[T]

	// -------------------------------------------------------
	// Basic Operations
	// -------------------------------------------------------

	// Add appends values to the end of the list
	Add(values ...T) error

	// InsertAll inserts values at index, keeping their order
	InsertAll(index int, values ...T) error

	// AddAll inserts every element of other at index
	AddAll(index int, other List[T]) error

	// Remove removes the first element equal to value and reports whether one was found
	Remove(value T) (bool, error)

	// RemoveIf removes every element matching predicate and returns how many were removed
	RemoveIf(predicate func(T) bool) (int, error)

	// Resize grows the list with zero values or truncates it to newSize
	Resize(newSize int) error

	// Clear removes all elements
	Clear() error

	// -------------------------------------------------------
	// Bulk transfer
	// -------------------------------------------------------

	RemoveElements(from, to int) error
	AddElements(index int, src []T) error
	GetElements(from int, dst []T) error
	SetElements(index int, src []T) error

	// -------------------------------------------------------
	// Query Operations
	// -------------------------------------------------------

	IsEmpty() bool
	Contains(value T) bool

	// IndexOf returns the first index holding value, or -1.
	// Elements are matched with scalar.Equal.
	IndexOf(value T) int
	LastIndexOf(value T) int

	// Equal reports whether other holds the same elements in the same order,
	// compared with ==. Unlike IndexOf, NaN never equals NaN here.
	Equal(other List[T]) bool
	HashCode() int32
	CompareTo(other List[T]) int
	String() string

	// -------------------------------------------------------
	// Views & Iteration
	// -------------------------------------------------------

	Iterator() ListIterator[T]
	ListIterator(index int) (ListIterator[T], error)
	SubList(from, to int) (List[T], error)
	ForEach(action func(T)) error
	ToSlice() []T
	Sort(compare scalar.Comparator[T]) error

	Values() iter.Seq[T]
	All() iter.Seq2[int, T]
	Backward() iter.Seq2[int, T]

	Stack[T]
}

// Stack is the stack view of a list: the top is the last element.
type Stack[T scalar.Scalar] interface {
	Push(value T) error
	Pop() (T, error)
	Top() (T, error)
	// Peek returns the element n positions below the top; Peek(0) is Top.
	Peek(n int) (T, error)
}

// Iterator defines the behavior of an iterator
type Iterator[T scalar.Scalar] interface {
	HasNext() bool

	// Next returns the next element and advances the cursor.
	// It fails with ErrNoSuchElement when HasNext is false.
	Next() (T, error)

	// Remove removes the element last returned by Next (or Previous).
	Remove() error

	// Skip advances by up to n elements and returns how many were skipped.
	Skip(n int) (int, error)
}

// BidirectionalIterator can also move backwards.
type BidirectionalIterator[T scalar.Scalar] interface {
	Iterator[T]
	HasPrevious() bool
	Previous() (T, error)
	// Back retreats by up to n elements and returns how many were passed.
	Back(n int) (int, error)
}

// ListIterator is a bidirectional iterator that knows its position and can
// modify the list it walks.
type ListIterator[T scalar.Scalar] interface {
	BidirectionalIterator[T]
	NextIndex() int
	PreviousIndex() int
	// Set replaces the element last returned by Next or Previous.
	Set(value T) error
	// Add inserts value before the cursor.
	Add(value T) error
}

// RandomAccess is implemented by containers whose Get runs in constant time.
type RandomAccess interface {
	RandomAccess() bool
}

// ModCounter is implemented by containers that count structural
// modifications (size changes). Sublists use it to detect that their backing
// list was changed behind their back.
type ModCounter interface {
	ModCount() uint64
}

func isRandomAccess(l any) bool {
	ra, ok := l.(RandomAccess)
	return ok && ra.RandomAccess()
}

// FindIndex is a helper that searches with a custom equality.
func FindIndex[T scalar.Scalar](l List[T], predicate func(T) bool) int {
	i := 0
	for v := range l.Values() {
		if predicate(v) {
			return i
		}
		i++
	}
	return -1
}
