package seqs

import (
	"iter"

	"github.com/cockroachdb/errors"

	"unboxed/lists"
	"unboxed/scalar"
)

// Values adapts it to a range-over-func sequence. The sequence consumes it:
// ranging twice yields the remaining elements only once.
func Values[T scalar.Scalar](it lists.Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Pour moves up to max elements from it to the end of dst and returns how
// many were moved.
func Pour[T scalar.Scalar](it lists.Iterator[T], dst lists.List[T], max int) (int, error) {
	if max < 0 {
		return 0, errors.Wrapf(lists.ErrIllegalArgument, "negative element count (%d)", max)
	}
	n := 0
	for n < max && it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return n, err
		}
		if err := dst.Add(v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Unwrap fills dst from it and returns how many elements were written.
func Unwrap[T scalar.Scalar](it lists.Iterator[T], dst []T) (int, error) {
	n := 0
	for n < len(dst) && it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return n, err
		}
		dst[n] = v
		n++
	}
	return n, nil
}

// Concat returns an iterator over the elements of its, one after another.
// Remove is passed to the iterator that produced the last element.
func Concat[T scalar.Scalar](its ...lists.Iterator[T]) lists.Iterator[T] {
	return &concatIterator[T]{its: its, last: -1}
}

type concatIterator[T scalar.Scalar] struct {
	its []lists.Iterator[T]
	// cur is the first iterator that may still have elements
	cur int
	// last is the iterator that produced the last element, or -1
	last int
}

func (c *concatIterator[T]) HasNext() bool {
	for c.cur < len(c.its) && !c.its[c.cur].HasNext() {
		c.cur++
	}
	return c.cur < len(c.its)
}

func (c *concatIterator[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, errors.Wrap(lists.ErrNoSuchElement, "concatenated iterators are exhausted")
	}
	v, err := c.its[c.cur].Next()
	if err != nil {
		return v, err
	}
	c.last = c.cur
	return v, nil
}

func (c *concatIterator[T]) Remove() error {
	if c.last < 0 {
		return errors.Wrap(lists.ErrIllegalState, "Remove without a preceding Next")
	}
	err := c.its[c.last].Remove()
	c.last = -1
	return err
}

func (c *concatIterator[T]) Skip(n int) (int, error) {
	if n < 0 {
		return 0, errors.Wrapf(lists.ErrIllegalArgument, "negative skip count (%d)", n)
	}
	skipped := 0
	for skipped < n && c.HasNext() {
		k, err := c.its[c.cur].Skip(n - skipped)
		skipped += k
		if err != nil {
			return skipped, err
		}
		if k == 0 {
			break
		}
		c.last = c.cur
	}
	return skipped, nil
}
