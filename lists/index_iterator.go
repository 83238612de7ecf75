package lists

import (
	"unboxed/scalar"
)

// IndexIterator is a ListIterator driven purely by the positional operations
// of a Core. It serves any random-access container without that container
// reimplementing cursor bookkeeping.
//
// The upper bound is store.Size(), read on every check and never cached, so
// mutations made through this iterator (or coordinated by the caller) are
// observed immediately.
type IndexIterator[T scalar.Scalar] struct {
	store  Core[T]
	minPos int
	pos    int
	// lastReturned is the index produced by the last Next/Previous, or -1.
	lastReturned int
}

var _ ListIterator[int] = (*IndexIterator[int])(nil)

// NewIndexIterator returns an iterator over store positioned at pos that
// never moves below minPos. The caller validates pos.
func NewIndexIterator[T scalar.Scalar](store Core[T], minPos, pos int) *IndexIterator[T] {
	return &IndexIterator[T]{
		store:        store,
		minPos:       minPos,
		pos:          pos,
		lastReturned: -1,
	}
}

func (it *IndexIterator[T]) maxPos() int {
	return it.store.Size()
}

func (it *IndexIterator[T]) HasNext() bool {
	return it.pos < it.maxPos()
}

func (it *IndexIterator[T]) HasPrevious() bool {
	return it.pos > it.minPos
}

func (it *IndexIterator[T]) Next() (v T, err error) {
	if !it.HasNext() {
		return v, noSuchElement("no element at position %d", it.pos)
	}
	v, err = it.store.Get(it.pos)
	if err != nil {
		return v, err
	}
	it.lastReturned = it.pos
	it.pos++
	return v, nil
}

func (it *IndexIterator[T]) Previous() (v T, err error) {
	if !it.HasPrevious() {
		return v, noSuchElement("no element before position %d", it.pos)
	}
	v, err = it.store.Get(it.pos - 1)
	if err != nil {
		return v, err
	}
	it.pos--
	it.lastReturned = it.pos
	return v, nil
}

func (it *IndexIterator[T]) NextIndex() int {
	return it.pos
}

func (it *IndexIterator[T]) PreviousIndex() int {
	return it.pos - 1
}

// Remove removes the element last returned. When that element sat below the
// cursor (a forward scan) the cursor shifts down with the tail, so the scan
// neither skips nor repeats an element.
func (it *IndexIterator[T]) Remove() error {
	if it.lastReturned == -1 {
		return illegalState("Remove called without a preceding Next or Previous")
	}
	if _, err := it.store.RemoveAt(it.lastReturned); err != nil {
		return err
	}
	if it.lastReturned < it.pos {
		it.pos--
	}
	it.lastReturned = -1
	return nil
}

// Add inserts value at the cursor and moves past it. Set is not allowed
// again until the next Next or Previous.
func (it *IndexIterator[T]) Add(value T) error {
	if err := it.store.Insert(it.pos, value); err != nil {
		return err
	}
	it.pos++
	it.lastReturned = -1
	return nil
}

func (it *IndexIterator[T]) Set(value T) error {
	if it.lastReturned == -1 {
		return illegalState("Set called without a preceding Next or Previous")
	}
	_, err := it.store.Set(it.lastReturned, value)
	return err
}

// Skip advances the cursor by n, clamped to the end, and returns the actual
// distance. The element just before the cursor becomes the last returned one.
func (it *IndexIterator[T]) Skip(n int) (int, error) {
	if n < 0 {
		return 0, illegalArgument("argument must be nonnegative: %d", n)
	}
	if remaining := it.maxPos() - it.pos; n < remaining {
		it.pos += n
	} else {
		n = max(0, remaining)
		it.pos += n
	}
	it.lastReturned = it.pos - 1
	if it.lastReturned < it.minPos {
		it.lastReturned = -1
	}
	return n, nil
}

// Back is the mirror of Skip; the element at the cursor becomes the last
// returned one.
func (it *IndexIterator[T]) Back(n int) (int, error) {
	if n < 0 {
		return 0, illegalArgument("argument must be nonnegative: %d", n)
	}
	if remaining := it.pos - it.minPos; n < remaining {
		it.pos -= n
	} else {
		n = remaining
		it.pos = it.minPos
	}
	it.lastReturned = it.pos
	if it.lastReturned >= it.maxPos() {
		it.lastReturned = -1
	}
	return n, nil
}
