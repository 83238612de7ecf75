package lists

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Every error returned by this package wraps exactly one of
// them, so callers can dispatch with errors.Is.
var (
	// ErrIndexOutOfBounds: an index outside the operation's valid range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrIllegalArgument: negative counts or reversed ranges.
	ErrIllegalArgument = errors.New("illegal argument")
	// ErrUnsupportedOperation: a mutator called on a container that does not implement it.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrIllegalState: iterator Remove/Set without a preceding Next/Previous.
	ErrIllegalState = errors.New("illegal iterator state")
	// ErrNoSuchElement: iterator exhausted, or Pop/Top on an empty list.
	ErrNoSuchElement = errors.New("no such element")
	// ErrConcurrentModification: a view noticed its backing list changed through another handle.
	ErrConcurrentModification = errors.New("concurrent modification")
)

func outOfBounds(format string, args ...interface{}) error {
	return errors.Wrapf(ErrIndexOutOfBounds, format, args...)
}

func illegalArgument(format string, args ...interface{}) error {
	return errors.Wrapf(ErrIllegalArgument, format, args...)
}

func unsupported(op string) error {
	return errors.Wrapf(ErrUnsupportedOperation, "%s is not supported", op)
}

func illegalState(format string, args ...interface{}) error {
	return errors.Wrapf(ErrIllegalState, format, args...)
}

func noSuchElement(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNoSuchElement, format, args...)
}

func concurrentModification(expected, actual uint64) error {
	return errors.Wrapf(ErrConcurrentModification,
		"backing list modified outside this view (mod count %d, expected %d)", actual, expected)
}

func checkIndex(index, size int) error {
	if index < 0 {
		return outOfBounds("index (%d) is negative", index)
	}
	if index > size {
		return outOfBounds("index (%d) is greater than list size (%d)", index, size)
	}
	return nil
}

func checkRestrictedIndex(index, size int) error {
	if index < 0 {
		return outOfBounds("index (%d) is negative", index)
	}
	if index >= size {
		return outOfBounds("index (%d) is greater than or equal to list size (%d)", index, size)
	}
	return nil
}

func checkFromTo(from, to int) error {
	if from > to {
		return illegalArgument("start index (%d) is greater than end index (%d)", from, to)
	}
	return nil
}

func checkEnd(from, length, size int) error {
	if from+length > size {
		return outOfBounds("end index (%d) is greater than list size (%d)", from+length, size)
	}
	return nil
}
