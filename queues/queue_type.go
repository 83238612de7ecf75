package queues

import "unboxed/scalar"

// PriorityQueue hands out its elements in comparator order. A FIFO queue is
// the degenerate case where the order is insertion order and Comparator
// returns nil.
type PriorityQueue[T scalar.Scalar] interface {
	// puts an element into the queue
	Enqueue(value T)
	// removes and returns the first element
	Dequeue() (value T, ok bool)
	// returns the first element without removing it
	First() (value T, ok bool)
	// returns the number of elements in the queue
	Size() int
	// returns true if the queue is empty
	IsEmpty() bool
	// removes all elements from the queue
	Clear()
	// returns the ordering of the queue, nil for FIFO order
	Comparator() scalar.Comparator[T]
}
