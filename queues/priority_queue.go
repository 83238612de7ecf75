package queues

import (
	"container/heap"
	"slices"

	"unboxed/scalar"
)

type internalHeap[T scalar.Scalar] struct {
	data []T
	cmp  scalar.Comparator[T]
}

func (ih *internalHeap[T]) Len() int {
	return len(ih.data)
}

func (ih *internalHeap[T]) Less(i, j int) bool {
	return ih.cmp(ih.data[i], ih.data[j]) < 0
}

func (ih *internalHeap[T]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
}

func (ih *internalHeap[T]) Push(x any) {
	ih.data = append(ih.data, x.(T))
}

func (ih *internalHeap[T]) Pop() any {
	old := ih.data
	n := len(old)
	last := old[n-1]
	ih.data = old[:n-1]
	return last
}

// HeapPriorityQueue is a binary min-heap under its comparator: the first
// element is the smallest one.
type HeapPriorityQueue[T scalar.Scalar] struct {
	heap *internalHeap[T]
	// as passed by the caller; nil means natural order
	comparator scalar.Comparator[T]
}

var _ PriorityQueue[int] = (*HeapPriorityQueue[int])(nil)

// NewHeapPriorityQueue creates an empty queue with the given initial
// capacity. A nil comparator orders elements with scalar.Compare.
func NewHeapPriorityQueue[T scalar.Scalar](initCapacity int, c scalar.Comparator[T]) *HeapPriorityQueue[T] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	return &HeapPriorityQueue[T]{
		heap: &internalHeap[T]{
			data: make([]T, 0, initCapacity),
			cmp:  scalar.OrNatural(c),
		},
		comparator: c,
	}
}

// NewHeapPriorityQueueFrom heapifies a copy of values in linear time.
func NewHeapPriorityQueueFrom[T scalar.Scalar](values []T, c scalar.Comparator[T]) *HeapPriorityQueue[T] {
	pq := &HeapPriorityQueue[T]{
		heap: &internalHeap[T]{
			data: slices.Clone(values),
			cmp:  scalar.OrNatural(c),
		},
		comparator: c,
	}
	heap.Init(pq.heap)
	return pq
}

func (pq *HeapPriorityQueue[T]) Enqueue(value T) {
	heap.Push(pq.heap, value)
}

func (pq *HeapPriorityQueue[T]) Dequeue() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(pq.heap).(T), true
}

func (pq *HeapPriorityQueue[T]) First() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return pq.heap.data[0], true
}

// SetFirst replaces the first element and restores the heap order. It
// reports false on an empty queue.
func (pq *HeapPriorityQueue[T]) SetFirst(value T) bool {
	if pq.heap.Len() == 0 {
		return false
	}
	pq.heap.data[0] = value
	pq.Changed()
	return true
}

// Changed re-sifts the first element after the caller modified it in place.
func (pq *HeapPriorityQueue[T]) Changed() {
	if pq.heap.Len() > 0 {
		heap.Fix(pq.heap, 0)
	}
}

func (pq *HeapPriorityQueue[T]) Size() int {
	return pq.heap.Len()
}

func (pq *HeapPriorityQueue[T]) IsEmpty() bool {
	return pq.heap.Len() == 0
}

func (pq *HeapPriorityQueue[T]) Clear() {
	pq.heap.data = pq.heap.data[:0]
}

func (pq *HeapPriorityQueue[T]) Comparator() scalar.Comparator[T] {
	return pq.comparator
}

// ResizeToFit drops unused capacity.
func (pq *HeapPriorityQueue[T]) ResizeToFit() {
	if cap(pq.heap.data) > len(pq.heap.data) {
		pq.heap.data = slices.Clone(pq.heap.data)
	}
}
