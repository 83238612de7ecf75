package queues

import (
	"sync"

	"unboxed/scalar"
)

// SynchronizedQueue serialises every call to the wrapped queue with a
// single mutex.
type SynchronizedQueue[T scalar.Scalar] struct {
	mu sync.Mutex
	q  PriorityQueue[T]
}

var _ PriorityQueue[int] = (*SynchronizedQueue[int])(nil)

// Synchronized wraps q. The caller must not use q directly afterwards.
func Synchronized[T scalar.Scalar](q PriorityQueue[T]) *SynchronizedQueue[T] {
	return &SynchronizedQueue[T]{q: q}
}

func (sq *SynchronizedQueue[T]) Enqueue(value T) {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	sq.q.Enqueue(value)
}

func (sq *SynchronizedQueue[T]) Dequeue() (value T, ok bool) {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	return sq.q.Dequeue()
}

func (sq *SynchronizedQueue[T]) First() (value T, ok bool) {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	return sq.q.First()
}

func (sq *SynchronizedQueue[T]) Size() int {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	return sq.q.Size()
}

func (sq *SynchronizedQueue[T]) IsEmpty() bool {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	return sq.q.IsEmpty()
}

func (sq *SynchronizedQueue[T]) Clear() {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	sq.q.Clear()
}

func (sq *SynchronizedQueue[T]) Comparator() scalar.Comparator[T] {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	return sq.q.Comparator()
}
