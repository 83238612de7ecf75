/*
Package seqs connects the iterators of package lists with Go's range-over-func
sequences (iter.Seq).

  - [Values] turns a lists.Iterator into an iter.Seq.
  - [Concat] chains iterators; Remove goes to the iterator that produced the
    last element.
  - [Pour] and [Unwrap] drain an iterator into a list or a slice.
  - [Sum], [Min] and [Max] aggregate a sequence of scalars. Min and Max use
    the total order of scalar.Compare.

	it := seqs.Concat(a.Iterator(), b.Iterator())
	largest, ok := seqs.Max(seqs.Values(it))
*/
package seqs
