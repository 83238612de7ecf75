package seqs

import (
	"iter"

	"unboxed/scalar"
)

// Sum adds up seq. Integer sums wrap on overflow.
func Sum[T scalar.Scalar](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Min returns the least element under scalar.Compare, so NaN only wins for
// an all-NaN sequence and -0.0 beats +0.0.
func Min[T scalar.Scalar](seq iter.Seq[T]) (T, bool) {
	return extreme(seq, -1)
}

// Max returns the greatest element under scalar.Compare; any NaN wins.
func Max[T scalar.Scalar](seq iter.Seq[T]) (T, bool) {
	return extreme(seq, 1)
}

func extreme[T scalar.Scalar](seq iter.Seq[T], sign int) (T, bool) {
	var best T
	first := true
	for v := range seq {
		if first || scalar.Compare(v, best)*sign > 0 {
			best = v
			first = false
		}
	}
	return best, !first
}
