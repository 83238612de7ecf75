package sliceutil

import (
	"unboxed/scalar"
)

// Index returns the index of the first element of collection equal to target
// under scalar.Equal, or -1. A NaN target finds a NaN element; -0.0 does not
// find +0.0.
func Index[T scalar.Scalar](collection []T, target T) int {
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1] // BCE hint
	for i, v := range collection {
		if scalar.Equal(v, target) {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last element equal to target, or -1.
func LastIndex[T scalar.Scalar](collection []T, target T) int {
	for i := len(collection) - 1; i >= 0; i-- {
		if scalar.Equal(collection[i], target) {
			return i
		}
	}
	return -1
}

// Contains checks if the target element exists in the collection.
func Contains[T scalar.Scalar](collection []T, target T) bool {
	return Index(collection, target) >= 0
}

// IndexFunc searches for the index of the first element that satisfies the predicate.
// Returns the index if found, otherwise returns -1.
func IndexFunc[T any](collection []T, predicate func(T) bool) int {
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1]

	for i, item := range collection {
		if predicate(item) {
			return i
		}
	}
	return -1
}
