package lists

import (
	"iter"
	"slices"

	"unboxed/scalar"
)

type node[T scalar.Scalar] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list with head and tail sentinels. It is not
// random access: positional operations walk from the nearer end, and
// iteration goes through a node-walking ListIterator.
type LinkedList[T scalar.Scalar] struct {
	AbstractList[T]

	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
	modCount     uint64
}

var (
	_ List[int]    = (*LinkedList[int])(nil)
	_ RandomAccess = (*LinkedList[int])(nil)
	_ ModCounter   = (*LinkedList[int])(nil)
)

func NewLinkedList[T scalar.Scalar]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.Init(ll)
	return ll
}

// LinkedListOf returns a linked list holding values.
func LinkedListOf[T scalar.Scalar](values ...T) *LinkedList[T] {
	ll := NewLinkedList[T]()
	for _, v := range values {
		ll.insertNodeAt(ll.tailSentinel.prev, &node[T]{val: v})
	}
	return ll
}

func (ll *LinkedList[T]) RandomAccess() bool {
	return false
}

func (ll *LinkedList[T]) ModCount() uint64 {
	return ll.modCount
}

// insertNodeAt insert newNode after indexNode
// Bounds checking should be done by the caller.
func (ll *LinkedList[T]) insertNodeAt(indexNode *node[T], newNode *node[T]) {
	newNode.prev = indexNode
	newNode.next = indexNode.next
	indexNode.next.prev = newNode
	indexNode.next = newNode
	ll.size++
	ll.modCount++
}

// findNodeAt returns the node at the specified index.
// Assumes index is valid (0 <= index <= ll.size); index == ll.size yields the tail sentinel.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	// start from head or tail depending on index
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// removeNode unlinks targetNode and returns its value.
// The node's pointers are cleared, so a removed node is recognisable by next == nil.
func (ll *LinkedList[T]) removeNode(targetNode *node[T]) T {
	targetNode.prev.next = targetNode.next
	targetNode.next.prev = targetNode.prev
	res := targetNode.val
	targetNode.prev = nil
	targetNode.next = nil
	ll.size--
	ll.modCount++
	return res
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if err = checkRestrictedIndex(index, ll.size); err != nil {
		return val, err
	}
	return ll.findNodeAt(index).val, nil
}

func (ll *LinkedList[T]) Set(index int, value T) (old T, err error) {
	if err = checkRestrictedIndex(index, ll.size); err != nil {
		return old, err
	}
	n := ll.findNodeAt(index)
	old, n.val = n.val, value
	return old, nil
}

func (ll *LinkedList[T]) Insert(index int, value T) error {
	if err := checkIndex(index, ll.size); err != nil {
		return err
	}
	ll.insertNodeAt(ll.findNodeAt(index).prev, &node[T]{val: value})
	return nil
}

func (ll *LinkedList[T]) RemoveAt(index int) (val T, err error) {
	if err = checkRestrictedIndex(index, ll.size); err != nil {
		return val, err
	}
	return ll.removeNode(ll.findNodeAt(index)), nil
}

// AddElements inserts src before the node at index, walking to it once.
func (ll *LinkedList[T]) AddElements(index int, src []T) error {
	if err := checkIndex(index, ll.size); err != nil {
		return err
	}
	if len(src) == 0 {
		return nil
	}
	targetNode := ll.findNodeAt(index)
	for _, value := range src {
		ll.insertNodeAt(targetNode.prev, &node[T]{val: value})
	}
	return nil
}

// RemoveElements unlinks the range [from, to) in one splice.
func (ll *LinkedList[T]) RemoveElements(from, to int) error {
	if err := checkIndex(to, ll.size); err != nil {
		return err
	}
	if err := checkIndex(from, ll.size); err != nil {
		return err
	}
	if err := checkFromTo(from, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	startNode := ll.findNodeAt(from)
	endNode := ll.findNodeAt(to)

	// Unlink the range [startNode, endNode)
	startNode.prev.next = endNode
	endNode.prev = startNode.prev
	for current := startNode; current != endNode; {
		next := current.next
		current.prev = nil
		current.next = nil
		current = next
	}

	ll.size -= to - from
	ll.modCount++
	return nil
}

func (ll *LinkedList[T]) GetElements(from int, dst []T) error {
	if err := checkIndex(from, ll.size); err != nil {
		return err
	}
	if err := checkEnd(from, len(dst), ll.size); err != nil {
		return err
	}
	current := ll.findNodeAt(from)
	for i := range dst {
		dst[i] = current.val
		current = current.next
	}
	return nil
}

func (ll *LinkedList[T]) SetElements(index int, src []T) error {
	if err := checkIndex(index, ll.size); err != nil {
		return err
	}
	if err := checkEnd(index, len(src), ll.size); err != nil {
		return err
	}
	current := ll.findNodeAt(index)
	for _, v := range src {
		current.val = v
		current = current.next
	}
	return nil
}

// RemoveIf removes all elements satisfying the predicate in one pass.
// Returns the number of removed elements.
func (ll *LinkedList[T]) RemoveIf(predicate func(T) bool) (int, error) {
	removedCount := 0
	current := ll.headSentinel.next
	for current != ll.tailSentinel {
		next := current.next
		if predicate(current.val) {
			ll.removeNode(current)
			removedCount++
		}
		current = next
	}
	return removedCount, nil
}

func (ll *LinkedList[T]) Clear() error {
	if ll.size == 0 {
		return nil
	}
	return ll.RemoveElements(0, ll.size)
}

// Sort sorts the list stably. A nil compare sorts by scalar.Compare.
// Small lists are sorted through a slice; larger ones are merge sorted by
// relinking nodes, which invalidates open iterators.
func (ll *LinkedList[T]) Sort(compare scalar.Comparator[T]) error {
	if ll.size < 2 {
		return nil
	}
	cmp := scalar.OrNatural(compare)

	// slice sort has better cache locality for small datasets
	if ll.size < 64 {
		vals := make([]T, 0, ll.size)
		for v := range ll.Values() {
			vals = append(vals, v)
		}
		slices.SortStableFunc(vals, cmp)
		current := ll.headSentinel.next
		for _, v := range vals {
			current.val = v
			current = current.next
		}
		return nil
	}

	// detach the chain from the sentinels
	first := ll.headSentinel.next
	ll.tailSentinel.prev.next = nil

	sortedHead := mergeSort(first, cmp)

	// rebuild prev pointers and reattach the sentinels
	current := sortedHead
	prev := ll.headSentinel
	ll.headSentinel.next = current
	for current != nil {
		current.prev = prev
		prev = current
		current = current.next
	}
	prev.next = ll.tailSentinel
	ll.tailSentinel.prev = prev
	ll.modCount++
	return nil
}

func mergeSort[T scalar.Scalar](head *node[T], compare scalar.Comparator[T]) *node[T] {
	if head == nil || head.next == nil {
		return head
	}

	// find middle using slow/fast pointers
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	mid := slow.next
	slow.next = nil

	left := mergeSort(head, compare)
	right := mergeSort(mid, compare)

	return merge(left, right, compare)
}

func merge[T scalar.Scalar](a, b *node[T], compare scalar.Comparator[T]) *node[T] {
	dummy := &node[T]{}
	tail := dummy

	for a != nil && b != nil {
		if compare(a.val, b.val) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}

	return dummy.next
}

// ListIterator returns a node-walking iterator positioned before index.
func (ll *LinkedList[T]) ListIterator(index int) (ListIterator[T], error) {
	if err := checkIndex(index, ll.size); err != nil {
		return nil, err
	}
	return &LinkedListIterator[T]{
		list:             ll,
		next:             ll.findNodeAt(index),
		index:            index,
		expectedModCount: ll.modCount,
	}, nil
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(index, current.val) {
				return
			}
			index++
		}
	}
}

func (ll *LinkedList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := ll.size - 1
		for current := ll.tailSentinel.prev; current != ll.headSentinel; current = current.prev {
			if !yield(index, current.val) {
				return
			}
			index--
		}
	}
}

func (ll *LinkedList[T]) ForEach(action func(T)) error {
	for v := range ll.Values() {
		action(v)
	}
	return nil
}

// Clone returns a copy of the list with its own nodes.
func (ll *LinkedList[T]) Clone() *LinkedList[T] {
	clone := NewLinkedList[T]()
	for v := range ll.Values() {
		clone.insertNodeAt(clone.tailSentinel.prev, &node[T]{val: v})
	}
	return clone
}
