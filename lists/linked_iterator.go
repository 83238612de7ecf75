package lists

import (
	"go.uber.org/zap"

	"unboxed/config"
	"unboxed/logger"
	"unboxed/scalar"
)

/*
LinkedListIterator walks a LinkedList node by node. Every step is O(1), and
Add/Remove splice at the cursor without searching.

The iterator remembers the list's modification count; a structural change made
through any other handle makes its next call fail with ErrConcurrentModification.
*/
type LinkedListIterator[T scalar.Scalar] struct {
	list *LinkedList[T]
	// next is the node after the cursor; the tail sentinel at the end
	next  *node[T]
	index int
	// lastReturned is nil when Remove and Set are not allowed
	lastReturned *node[T]

	expectedModCount uint64
}

var _ ListIterator[int] = (*LinkedListIterator[int])(nil)

func (it *LinkedListIterator[T]) checkComod() error {
	if !config.Properties.ComodChecks || it.list.modCount == it.expectedModCount {
		return nil
	}
	logger.L().Debug("stale linked list iterator",
		zap.Int("index", it.index),
		zap.Uint64("expected", it.expectedModCount),
		zap.Uint64("actual", it.list.modCount))
	return concurrentModification(it.expectedModCount, it.list.modCount)
}

func (it *LinkedListIterator[T]) HasNext() bool {
	return it.index < it.list.size
}

func (it *LinkedListIterator[T]) HasPrevious() bool {
	return it.index > 0
}

func (it *LinkedListIterator[T]) NextIndex() int {
	return it.index
}

func (it *LinkedListIterator[T]) PreviousIndex() int {
	return it.index - 1
}

func (it *LinkedListIterator[T]) Next() (val T, err error) {
	if err = it.checkComod(); err != nil {
		return val, err
	}
	if !it.HasNext() {
		return val, noSuchElement("no element at position %d", it.index)
	}
	it.lastReturned = it.next
	it.next = it.next.next
	it.index++
	return it.lastReturned.val, nil
}

func (it *LinkedListIterator[T]) Previous() (val T, err error) {
	if err = it.checkComod(); err != nil {
		return val, err
	}
	if !it.HasPrevious() {
		return val, noSuchElement("no element before position %d", it.index)
	}
	it.next = it.next.prev
	it.lastReturned = it.next
	it.index--
	return it.lastReturned.val, nil
}

// Remove unlinks the node last returned. After Previous the cursor moves past
// the removed node; after Next the index shifts down with the tail.
func (it *LinkedListIterator[T]) Remove() error {
	if err := it.checkComod(); err != nil {
		return err
	}
	if it.lastReturned == nil {
		return illegalState("Remove called without a preceding Next or Previous")
	}
	if it.lastReturned == it.next {
		it.next = it.next.next
	} else {
		it.index--
	}
	it.list.removeNode(it.lastReturned)
	it.lastReturned = nil
	it.expectedModCount = it.list.modCount
	return nil
}

func (it *LinkedListIterator[T]) Set(value T) error {
	if err := it.checkComod(); err != nil {
		return err
	}
	if it.lastReturned == nil {
		return illegalState("Set called without a preceding Next or Previous")
	}
	it.lastReturned.val = value
	return nil
}

// Add inserts value before the cursor and moves past it.
func (it *LinkedListIterator[T]) Add(value T) error {
	if err := it.checkComod(); err != nil {
		return err
	}
	it.list.insertNodeAt(it.next.prev, &node[T]{val: value})
	it.index++
	it.lastReturned = nil
	it.expectedModCount = it.list.modCount
	return nil
}

// Skip moves forward by up to n nodes. The node just before the cursor
// becomes the last returned one.
func (it *LinkedListIterator[T]) Skip(n int) (int, error) {
	if n < 0 {
		return 0, illegalArgument("argument must be nonnegative: %d", n)
	}
	if err := it.checkComod(); err != nil {
		return 0, err
	}
	moved := 0
	for ; moved < n && it.HasNext(); moved++ {
		it.next = it.next.next
		it.index++
	}
	it.lastReturned = nil
	if it.index > 0 {
		it.lastReturned = it.next.prev
	}
	return moved, nil
}

// Back moves backward by up to n nodes. The node at the cursor becomes the
// last returned one.
func (it *LinkedListIterator[T]) Back(n int) (int, error) {
	if n < 0 {
		return 0, illegalArgument("argument must be nonnegative: %d", n)
	}
	if err := it.checkComod(); err != nil {
		return 0, err
	}
	moved := 0
	for ; moved < n && it.HasPrevious(); moved++ {
		it.next = it.next.prev
		it.index--
	}
	it.lastReturned = nil
	if it.index < it.list.size {
		it.lastReturned = it.next
	}
	return moved, nil
}
