package queues

import (
	"math/bits"

	"unboxed/scalar"
)

// ArrayFIFOQueue is a FIFO queue on a circular array (ring buffer) whose
// capacity is always a power of two. Both ends can be used, so it also
// serves as a deque.
type ArrayFIFOQueue[T scalar.Scalar] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the queue
	mask int // capacity - 1, used for fast modulo: idx & mask
}

var _ PriorityQueue[int] = (*ArrayFIFOQueue[int])(nil)

// NewArrayFIFOQueue creates a new queue with at least the given capacity.
func NewArrayFIFOQueue[T scalar.Scalar](initialCapacity int) *ArrayFIFOQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := 1 << uint(bits.Len(uint(initialCapacity-1)))
	return &ArrayFIFOQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// resize moves the elements to a new buffer starting at index 0.
// If isShrink is true the new buffer is the smallest power of two holding
// the current elements; otherwise it holds at least size+capDiff.
func (aq *ArrayFIFOQueue[T]) resize(capDiff int, isShrink bool) {
	var newCapacity int
	switch {
	case isShrink && aq.size == 0:
		newCapacity = 1
	case isShrink:
		newCapacity = 1 << uint(bits.Len(uint(aq.size-1)))
	default:
		newCapacity = 1 << uint(bits.Len(uint(aq.size+capDiff-1)))
	}

	newBuf := make([]T, newCapacity)
	if aq.head+aq.size <= len(aq.buf) {
		copy(newBuf, aq.buf[aq.head:aq.head+aq.size])
	} else {
		// wrapped around
		n := copy(newBuf, aq.buf[aq.head:])
		tailPos := (aq.head + aq.size) & aq.mask
		copy(newBuf[n:], aq.buf[:tailPos])
	}

	aq.buf = newBuf
	aq.head = 0
	aq.mask = newCapacity - 1
}

// Enqueue puts value at the end of the queue.
func (aq *ArrayFIFOQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.resize(1, false)
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

// EnqueueFirst puts value at the front of the queue, so it is dequeued next.
func (aq *ArrayFIFOQueue[T]) EnqueueFirst(value T) {
	if aq.size == len(aq.buf) {
		aq.resize(1, false)
	}
	aq.head = (aq.head - 1) & aq.mask
	aq.buf[aq.head] = value
	aq.size++
}

// EnqueueAll puts values at the end of the queue, keeping their order.
func (aq *ArrayFIFOQueue[T]) EnqueueAll(values ...T) {
	n := len(values)
	if aq.size+n > len(aq.buf) {
		aq.resize(n, false)
	}
	tail := (aq.head + aq.size) & aq.mask
	if tail+n <= len(aq.buf) {
		copy(aq.buf[tail:], values)
	} else {
		part1Len := len(aq.buf) - tail
		copy(aq.buf[tail:], values[:part1Len])
		copy(aq.buf, values[part1Len:])
	}
	aq.size += n
}

func (aq *ArrayFIFOQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

// DequeueLast removes and returns the most recently enqueued element.
func (aq *ArrayFIFOQueue[T]) DequeueLast() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	aq.size--
	return aq.buf[(aq.head+aq.size)&aq.mask], true
}

// DequeueBatchInto moves up to len(dst) elements from the front of the
// queue into dst and returns how many were moved.
func (aq *ArrayFIFOQueue[T]) DequeueBatchInto(dst []T) int {
	n := min(len(dst), aq.size)
	if n == 0 {
		return 0
	}
	if aq.head+n <= len(aq.buf) {
		copy(dst, aq.buf[aq.head:aq.head+n])
	} else {
		part1Len := copy(dst, aq.buf[aq.head:])
		copy(dst[part1Len:n], aq.buf)
	}
	aq.head = (aq.head + n) & aq.mask
	aq.size -= n
	return n
}

func (aq *ArrayFIFOQueue[T]) First() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

func (aq *ArrayFIFOQueue[T]) Last() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[(aq.head+aq.size-1)&aq.mask], true
}

func (aq *ArrayFIFOQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayFIFOQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayFIFOQueue[T]) Clear() {
	aq.head = 0
	aq.size = 0
}

// Comparator is always nil: elements leave in insertion order.
func (aq *ArrayFIFOQueue[T]) Comparator() scalar.Comparator[T] {
	return nil
}

func (aq *ArrayFIFOQueue[T]) ResizeToFit() {
	aq.resize(0, true)
}
