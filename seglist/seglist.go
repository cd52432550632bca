// Package seglist provides a list with O(log n) insertion and deletion at any
// position.
//
// A List is a sortedlist.List whose comparator treats every value as equal, so the
// engine never reorders anything and values stay where they were put. The
// key-ordered operations of the engine are meaningless here and report
// errors.ErrNotImplemented.
package seglist

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/sortedcollections/compare"
	"github.com/amp-labs/sortedcollections/errors"
	"github.com/amp-labs/sortedcollections/sortedlist"
)

// DefaultName labels the metrics of lists built without sortedlist.WithName.
const DefaultName = "seglist"

// List is a sequence of values addressed by position.
type List[T any] struct {
	values *sortedlist.List[T]
}

// New creates a list holding items in the given order.
func New[T any](items ...T) *List[T] {
	return NewWith(nil, items...)
}

// NewWith creates a list configured by opts holding items in the given order.
func NewWith[T any](opts []sortedlist.Option, items ...T) *List[T] {
	opts = append([]sortedlist.Option{sortedlist.WithName(DefaultName)}, opts...)

	l := &List[T]{values: sortedlist.New(compare.Constant[T], opts...)}
	l.values.Reset(items)

	return l
}

// Len returns the number of values.
func (l *List[T]) Len() int {
	return l.values.Len()
}

// At returns the value at position i. Negative positions count from the end.
func (l *List[T]) At(i int) (T, error) { //nolint:ireturn
	return l.values.At(i)
}

// Set replaces the value at position i.
func (l *List[T]) Set(i int, value T) error {
	return l.values.SetAt(i, value)
}

// Insert places value before position i. Inserting at Len() appends.
func (l *List[T]) Insert(i int, value T) error {
	return l.values.InsertAt(i, value)
}

// Append places value at the end.
func (l *List[T]) Append(value T) {
	l.values.Append(value)
}

// Extend appends every value yielded by values.
func (l *List[T]) Extend(values iter.Seq[T]) {
	for v := range values {
		l.values.Append(v)
	}
}

// DeleteAt removes the value at position i.
func (l *List[T]) DeleteAt(i int) error {
	_, err := l.values.DeleteAt(i)

	return err
}

// DeleteSlice removes the values selected by s and returns how many were removed.
func (l *List[T]) DeleteSlice(s sortedlist.Slice) int {
	return l.values.DeleteSlice(s)
}

// Pop removes and returns the value at position i.
func (l *List[T]) Pop(i int) (T, error) { //nolint:ireturn
	return l.values.DeleteAt(i)
}

// Clear removes every value.
func (l *List[T]) Clear() {
	l.values.Clear()
}

// All yields the values in order.
func (l *List[T]) All() iter.Seq[T] {
	return l.values.All()
}

// Backward yields the values in reverse order.
func (l *List[T]) Backward() iter.Seq[T] {
	return l.values.Backward()
}

// Slice returns the values selected by s.
func (l *List[T]) Slice(s sortedlist.Slice) []T {
	return l.values.Slice(s)
}

// Values returns every value in order as a new slice.
func (l *List[T]) Values() []T {
	return l.values.Values()
}

// Sort orders the values by c, which must not be nil; see SortOrdered and SortBy for
// the common cases. The sort is stable in both directions: values that compare
// equal keep their relative order even when reverse is set.
func (l *List[T]) Sort(c compare.Comparator[T], reverse bool) {
	values := l.values.Values()

	if reverse {
		c = compare.Reverse(c)
	}

	slices.SortStableFunc(values, c)
	l.values.Reset(values)
}

// SortOrdered sorts a list of ordered values in their natural order.
func SortOrdered[T cmp.Ordered](l *List[T], reverse bool) {
	l.Sort(compare.Ordered[T](), reverse)
}

// SortBy sorts a list by a key derived from each value.
func SortBy[T any, K cmp.Ordered](l *List[T], key func(T) K, reverse bool) {
	l.Sort(compare.By(key), reverse)
}

// Reverse reverses the values in place.
func (l *List[T]) Reverse() {
	values := l.values.Values()
	slices.Reverse(values)
	l.values.Reset(values)
}

// Clone returns an independent copy.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{values: l.values.Clone()}
}

// Check verifies the internal structure.
func (l *List[T]) Check() error {
	return l.values.Check()
}

// SetSlice is not supported; replace values one position at a time with Set.
func (l *List[T]) SetSlice(sortedlist.Slice, []T) error {
	return notImplemented("slice assignment")
}

// Add is not supported: values have no order to be added by.
func (l *List[T]) Add(T) error {
	return notImplemented("add")
}

// Update is not supported; use Extend.
func (l *List[T]) Update(...T) error {
	return notImplemented("update")
}

// Bisect is not supported.
func (l *List[T]) Bisect(T) (int, error) {
	return 0, notImplemented("bisect")
}

// BisectLeft is not supported.
func (l *List[T]) BisectLeft(T) (int, error) {
	return 0, notImplemented("bisect left")
}

// BisectRight is not supported.
func (l *List[T]) BisectRight(T) (int, error) {
	return 0, notImplemented("bisect right")
}

// BisectKey is not supported.
func (l *List[T]) BisectKey(any) (int, error) {
	return 0, notImplemented("bisect key")
}

// IRange is not supported.
func (l *List[T]) IRange(_, _ T) (iter.Seq[T], error) {
	return nil, notImplemented("irange")
}

func notImplemented(op string) error {
	return fmt.Errorf("%w: %s on a segment list", errors.ErrNotImplemented, op)
}
