package lists

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"unboxed/config"
	"unboxed/logger"
	"unboxed/scalar"
)

// SubList is a live, mutable window [from, to) onto a backing list.
//
// Reads map index i to backing index from+i. Mutations made through the view
// are applied to the backing list and move to by the number of elements
// added or removed. A sublist of a SubList wraps the SubList itself, so a
// change made through the innermost view updates the bounds of every level.
//
// A SubList is not told about changes made to the backing list through any
// other handle. When the backing list implements ModCounter (and
// config.Properties.ComodChecks is on) such a change is detected and every
// later operation on the view fails with ErrConcurrentModification.
type SubList[T scalar.Scalar] struct {
	AbstractList[T]

	l    List[T]
	from int
	to   int

	expectedModCount uint64
}

var (
	_ List[int]    = (*SubList[int])(nil)
	_ RandomAccess = (*SubList[int])(nil)
	_ ModCounter   = (*SubList[int])(nil)
)

// NewSubList returns the view [from, to) of l.
func NewSubList[T scalar.Scalar](l List[T], from, to int) (*SubList[T], error) {
	if err := checkIndex(from, l.Size()); err != nil {
		return nil, err
	}
	if err := checkIndex(to, l.Size()); err != nil {
		return nil, err
	}
	if err := checkFromTo(from, to); err != nil {
		return nil, err
	}
	return newSubList(l, from, to), nil
}

func newSubList[T scalar.Scalar](l List[T], from, to int) *SubList[T] {
	sl := &SubList[T]{
		l:    l,
		from: from,
		to:   to,
	}
	sl.Init(sl)
	sl.syncModCount()
	return sl
}

func (sl *SubList[T]) syncModCount() {
	if mc, ok := sl.l.(ModCounter); ok {
		sl.expectedModCount = mc.ModCount()
	}
}

func (sl *SubList[T]) checkComod() error {
	if !config.Properties.ComodChecks {
		return nil
	}
	mc, ok := sl.l.(ModCounter)
	if !ok {
		return nil
	}
	if actual := mc.ModCount(); actual != sl.expectedModCount {
		logger.L().Debug("stale sublist",
			zap.Int("from", sl.from),
			zap.Int("to", sl.to),
			zap.Uint64("expected", sl.expectedModCount),
			zap.Uint64("actual", actual))
		return concurrentModification(sl.expectedModCount, actual)
	}
	return nil
}

func (sl *SubList[T]) assertRange() error {
	if !config.Properties.RangeChecks {
		return nil
	}
	size := sl.l.Size()
	if sl.from <= sl.to && sl.to <= size {
		return nil
	}
	logger.L().Warn("sublist range escapes its backing list",
		zap.Int("from", sl.from),
		zap.Int("to", sl.to),
		zap.Int("size", size))
	return errors.AssertionFailedf("sublist range [%d, %d) escapes backing list of size %d", sl.from, sl.to, size)
}

// mutated records a structural change of delta elements made through this view.
func (sl *SubList[T]) mutated(delta int) error {
	sl.to += delta
	sl.syncModCount()
	return sl.assertRange()
}

func (sl *SubList[T]) Size() int {
	return sl.to - sl.from
}

func (sl *SubList[T]) RandomAccess() bool {
	return isRandomAccess(sl.l)
}

// ModCount forwards the backing list's counter, so nested views observe the root.
func (sl *SubList[T]) ModCount() uint64 {
	if mc, ok := sl.l.(ModCounter); ok {
		return mc.ModCount()
	}
	return 0
}

func (sl *SubList[T]) Get(index int) (v T, err error) {
	if err = sl.checkComod(); err != nil {
		return v, err
	}
	if err = sl.EnsureRestrictedIndex(index); err != nil {
		return v, err
	}
	return sl.l.Get(sl.from + index)
}

func (sl *SubList[T]) Insert(index int, value T) error {
	if err := sl.checkComod(); err != nil {
		return err
	}
	if err := sl.EnsureIndex(index); err != nil {
		return err
	}
	if err := sl.l.Insert(sl.from+index, value); err != nil {
		return err
	}
	return sl.mutated(1)
}

func (sl *SubList[T]) Set(index int, value T) (old T, err error) {
	if err = sl.checkComod(); err != nil {
		return old, err
	}
	if err = sl.EnsureRestrictedIndex(index); err != nil {
		return old, err
	}
	return sl.l.Set(sl.from+index, value)
}

func (sl *SubList[T]) RemoveAt(index int) (v T, err error) {
	if err = sl.checkComod(); err != nil {
		return v, err
	}
	if err = sl.EnsureRestrictedIndex(index); err != nil {
		return v, err
	}
	if v, err = sl.l.RemoveAt(sl.from + index); err != nil {
		return v, err
	}
	return v, sl.mutated(-1)
}

func (sl *SubList[T]) GetElements(from int, dst []T) error {
	if err := sl.checkComod(); err != nil {
		return err
	}
	if err := sl.EnsureIndex(from); err != nil {
		return err
	}
	if err := checkEnd(from, len(dst), sl.Size()); err != nil {
		return err
	}
	return sl.l.GetElements(sl.from+from, dst)
}

func (sl *SubList[T]) RemoveElements(from, to int) error {
	if err := sl.checkComod(); err != nil {
		return err
	}
	if err := sl.EnsureIndex(from); err != nil {
		return err
	}
	if err := sl.EnsureIndex(to); err != nil {
		return err
	}
	if err := checkFromTo(from, to); err != nil {
		return err
	}
	if err := sl.l.RemoveElements(sl.from+from, sl.from+to); err != nil {
		return err
	}
	return sl.mutated(from - to)
}

func (sl *SubList[T]) AddElements(index int, src []T) error {
	if err := sl.checkComod(); err != nil {
		return err
	}
	if err := sl.EnsureIndex(index); err != nil {
		return err
	}
	if err := sl.l.AddElements(sl.from+index, src); err != nil {
		return err
	}
	return sl.mutated(len(src))
}

// SetElements checks the end of the range against the view, not the backing list.
func (sl *SubList[T]) SetElements(index int, src []T) error {
	if err := sl.checkComod(); err != nil {
		return err
	}
	if err := sl.EnsureIndex(index); err != nil {
		return err
	}
	if err := checkEnd(index, len(src), sl.Size()); err != nil {
		return err
	}
	return sl.l.SetElements(sl.from+index, src)
}

// ListIterator iterates in the view's own index space. Over a random-access
// backing list it is an IndexIterator on the view itself, so mutations route
// through the view and keep its bounds right. Otherwise it wraps the backing
// list's own iterator.
func (sl *SubList[T]) ListIterator(index int) (ListIterator[T], error) {
	if err := sl.checkComod(); err != nil {
		return nil, err
	}
	if err := sl.EnsureIndex(index); err != nil {
		return nil, err
	}
	if isRandomAccess(sl.l) {
		return NewIndexIterator[T](sl, 0, index), nil
	}
	parent, err := sl.l.ListIterator(sl.from + index)
	if err != nil {
		return nil, err
	}
	return &parentWrappingIter[T]{sl: sl, parent: parent}, nil
}

// parentWrappingIter translates a backing-list iterator into the view's
// index space and clamps it to [from, to).
type parentWrappingIter[T scalar.Scalar] struct {
	sl     *SubList[T]
	parent ListIterator[T]
}

func (it *parentWrappingIter[T]) NextIndex() int {
	return it.parent.NextIndex() - it.sl.from
}

func (it *parentWrappingIter[T]) PreviousIndex() int {
	return it.parent.PreviousIndex() - it.sl.from
}

func (it *parentWrappingIter[T]) HasNext() bool {
	return it.parent.NextIndex() < it.sl.to
}

func (it *parentWrappingIter[T]) HasPrevious() bool {
	return it.parent.PreviousIndex() >= it.sl.from
}

func (it *parentWrappingIter[T]) Next() (v T, err error) {
	if !it.HasNext() {
		return v, noSuchElement("no element at position %d", it.NextIndex())
	}
	return it.parent.Next()
}

func (it *parentWrappingIter[T]) Previous() (v T, err error) {
	if !it.HasPrevious() {
		return v, noSuchElement("no element before position %d", it.NextIndex())
	}
	return it.parent.Previous()
}

func (it *parentWrappingIter[T]) Add(value T) error {
	if err := it.parent.Add(value); err != nil {
		return err
	}
	return it.sl.mutated(1)
}

func (it *parentWrappingIter[T]) Set(value T) error {
	return it.parent.Set(value)
}

func (it *parentWrappingIter[T]) Remove() error {
	if err := it.parent.Remove(); err != nil {
		return err
	}
	return it.sl.mutated(-1)
}

func (it *parentWrappingIter[T]) Skip(n int) (int, error) {
	if n < 0 {
		return 0, illegalArgument("argument must be nonnegative: %d", n)
	}
	return it.parent.Skip(min(n, max(0, it.sl.to-it.parent.NextIndex())))
}

func (it *parentWrappingIter[T]) Back(n int) (int, error) {
	if n < 0 {
		return 0, illegalArgument("argument must be nonnegative: %d", n)
	}
	// previousIndex == from-1 means the cursor sits at the start of the view
	return it.parent.Back(min(n, max(0, it.parent.PreviousIndex()-(it.sl.from-1))))
}
