// Package scalar defines the element constraint shared by every collection in
// this module, together with the equality, hashing and ordering rules the
// collections use for search and comparison.
//
// Integers use their natural value semantics. Floating point values are
// compared by bit pattern: every NaN is collapsed to one canonical NaN, so
// NaN equals NaN, while +0.0 and -0.0 are distinct.
package scalar

import (
	"cmp"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is any unboxed numeric element type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Comparator orders two scalars: negative if a < b, zero if equal, positive if a > b.
type Comparator[T Scalar] func(a, b T) int

const (
	canonicalNaN32 = 0x7fc00000
	canonicalNaN64 = 0x7ff8000000000000
)

// IsFloat reports whether T is a floating point type.
func IsFloat[T Scalar]() bool {
	var one T = 1
	return one/2 != 0
}

func is32[T Scalar](v T) bool {
	return unsafe.Sizeof(v) == 4
}

// rawBits returns the IEEE 754 representation of a float value, widened to 64 bits.
func rawBits[T Scalar](v T) uint64 {
	if is32(v) {
		return uint64(math.Float32bits(float32(v)))
	}
	return math.Float64bits(float64(v))
}

// canonicalBits is rawBits with every NaN mapped to the canonical quiet NaN.
func canonicalBits[T Scalar](v T) uint64 {
	if math.IsNaN(float64(v)) {
		if is32(v) {
			return canonicalNaN32
		}
		return canonicalNaN64
	}
	return rawBits(v)
}

// Equal reports whether a and b are the same element.
// Floats are equal iff their canonical bit patterns are identical.
func Equal[T Scalar](a, b T) bool {
	if !IsFloat[T]() {
		return a == b
	}
	return canonicalBits(a) == canonicalBits(b)
}

// Hash returns a 32-bit hash of v. Values that are Equal hash alike.
func Hash[T Scalar](v T) int32 {
	if IsFloat[T]() {
		if is32(v) {
			return int32(uint32(canonicalBits(v)))
		}
		return fold(canonicalBits(v))
	}
	if unsafe.Sizeof(v) == 8 {
		return fold(uint64(v))
	}
	return int32(v)
}

func fold(x uint64) int32 {
	return int32(uint32(x ^ x>>32))
}

// Compare is the total order used by sorted collections and list comparison.
//
// Floats follow the bit-pattern rule: -0.0 sorts before +0.0 and NaN sorts
// after +Inf and compares equal to itself.
func Compare[T Scalar](a, b T) int {
	if !IsFloat[T]() {
		return cmp.Compare(a, b)
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return cmp.Compare(signedBits(a), signedBits(b))
}

func signedBits[T Scalar](v T) int64 {
	bits := canonicalBits(v)
	if is32(v) {
		return int64(int32(uint32(bits)))
	}
	return int64(bits)
}

// NaturalOrder returns Compare as a Comparator.
func NaturalOrder[T Scalar]() Comparator[T] {
	return Compare[T]
}

// ReverseOrder inverts c. A nil c stands for the natural order.
func ReverseOrder[T Scalar](c Comparator[T]) Comparator[T] {
	if c == nil {
		c = Compare[T]
	}
	return func(a, b T) int {
		return c(b, a)
	}
}

// OrNatural returns c, or the natural order if c is nil.
func OrNatural[T Scalar](c Comparator[T]) Comparator[T] {
	if c == nil {
		return Compare[T]
	}
	return c
}
