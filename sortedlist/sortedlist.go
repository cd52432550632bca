// Package sortedlist provides the ordering engine underneath every container in
// this module: a sorted sequence with O(log n) insertion, deletion, bisection and
// positional access.
//
// Values are kept in a list of buckets ("load" sized slices). Each bucket is sorted,
// every value of bucket i sorts at or before every value of bucket i+1, and the
// last value of each bucket is mirrored in maxes so that locating the bucket for a
// value is a binary search over maxes. A Fenwick tree over bucket lengths maps
// between global positions and (bucket, offset) pairs; it is rebuilt lazily after
// buckets are split or merged.
//
// Besides the key-ordered operations the list exposes physical operations (InsertAt,
// Append, SetAt, Reset) that address storage positions without comparing values.
// They exist for position-addressed sequences built on a constant comparator; on a
// key-ordered list they can break sortedness, which Check reports.
//
// A List is not safe for concurrent use.
package sortedlist

import (
	"cmp"
	"iter"
	"slices"
	"sort"

	"github.com/amp-labs/sortedcollections/compare"
	"github.com/amp-labs/sortedcollections/errors"
	"github.com/amp-labs/sortedcollections/zero"
)

const (
	// DefaultLoad is the default bucket load. Buckets split at twice the load and
	// are merged into a neighbor when they shrink below half of it.
	DefaultLoad = 1000

	// MinLoad is the smallest accepted load; smaller values are raised to it.
	MinLoad = 4

	// DefaultName labels the metrics of lists that were not given a name.
	DefaultName = "default"
)

type options struct {
	load int
	name string
}

// Option configures a List.
type Option func(*options)

// WithLoad sets the bucket load. Values below MinLoad are raised to MinLoad.
func WithLoad(load int) Option {
	return func(o *options) {
		o.load = max(load, MinLoad)
	}
}

// WithName labels the list's bucket metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// List is a sorted sequence of values ordered by a comparator. Values comparing
// equal are kept in insertion order.
type List[T any] struct {
	cmp     compare.Comparator[T]
	lists   [][]T
	maxes   []T
	index   fenwick
	length  int
	load    int
	name    string
	metrics listMetrics
}

// New creates an empty list ordered by c.
func New[T any](c compare.Comparator[T], opts ...Option) *List[T] {
	o := options{load: DefaultLoad, name: DefaultName}

	for _, opt := range opts {
		opt(&o)
	}

	return &List[T]{
		cmp:     c,
		load:    o.load,
		name:    o.name,
		metrics: newListMetrics(o.name),
	}
}

// NewOrdered creates an empty list of naturally ordered values.
func NewOrdered[T cmp.Ordered](opts ...Option) *List[T] {
	return New(compare.Ordered[T](), opts...)
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Load returns the bucket load the list was configured with.
func (l *List[T]) Load() int {
	return l.load
}

// Comparator returns the comparator that orders the list.
func (l *List[T]) Comparator() compare.Comparator[T] {
	return l.cmp
}

// Add inserts value in sorted order, after any values comparing equal to it.
func (l *List[T]) Add(value T) {
	if len(l.maxes) == 0 {
		l.lists = append(l.lists, []T{value})
		l.maxes = append(l.maxes, value)
		l.index = nil
		l.length = 1

		return
	}

	pos := bisectRight(l.maxes, value, l.cmp)

	if pos == len(l.maxes) {
		pos--
		l.lists[pos] = append(l.lists[pos], value)
		l.maxes[pos] = value
	} else {
		idx := bisectRight(l.lists[pos], value, l.cmp)
		l.lists[pos] = slices.Insert(l.lists[pos], idx, value)
	}

	l.expand(pos)
	l.length++
}

// Update adds every value. Large batches are merged with a single sort instead of
// being inserted one at a time.
func (l *List[T]) Update(values ...T) {
	if len(values) == 0 {
		return
	}

	if len(values)*4 < l.length {
		for _, v := range values {
			l.Add(v)
		}

		return
	}

	merged := make([]T, 0, l.length+len(values))
	merged = append(merged, l.Values()...)
	merged = append(merged, values...)
	slices.SortStableFunc(merged, l.cmp)

	l.Reset(merged)
}

// Contains reports whether a value comparing equal to value is present.
func (l *List[T]) Contains(value T) bool {
	_, _, found := l.find(value)

	return found
}

// Remove deletes the first value comparing equal to value.
// It fails with errors.ErrKeyNotFound if there is none.
func (l *List[T]) Remove(value T) error {
	if !l.Discard(value) {
		return errors.KeyNotFound(value)
	}

	return nil
}

// Discard deletes the first value comparing equal to value and reports whether
// anything was removed.
func (l *List[T]) Discard(value T) bool {
	pos, idx, found := l.find(value)
	if !found {
		return false
	}

	l.delete(pos, idx)

	return true
}

// BisectLeft returns the position of the first value that does not sort before
// target, or Len() if there is none.
func (l *List[T]) BisectLeft(target T) int {
	pos := bisectLeft(l.maxes, target, l.cmp)
	if pos == len(l.maxes) {
		return l.length
	}

	return l.loc(pos, bisectLeft(l.lists[pos], target, l.cmp))
}

// BisectRight returns the position of the first value that sorts after target, or
// Len() if there is none.
func (l *List[T]) BisectRight(target T) int {
	pos := bisectRight(l.maxes, target, l.cmp)
	if pos == len(l.maxes) {
		return l.length
	}

	return l.loc(pos, bisectRight(l.lists[pos], target, l.cmp))
}

// Search returns the first position whose value satisfies f, or Len() if there is
// none. Like sort.Search, f must be false for a prefix of the list and true for the
// rest; it is used to bisect on part of a composite value.
func (l *List[T]) Search(f func(T) bool) int {
	pos := sort.Search(len(l.maxes), func(i int) bool {
		return f(l.maxes[i])
	})
	if pos == len(l.maxes) {
		return l.length
	}

	bucket := l.lists[pos]

	return l.loc(pos, sort.Search(len(bucket), func(i int) bool {
		return f(bucket[i])
	}))
}

// IndexOf returns the position of the first value comparing equal to value.
// It fails with errors.ErrKeyNotFound if there is none.
func (l *List[T]) IndexOf(value T) (int, error) {
	pos, idx, found := l.find(value)
	if !found {
		return 0, errors.KeyNotFound(value)
	}

	return l.loc(pos, idx), nil
}

// At returns the value at position i. Negative positions count from the end.
func (l *List[T]) At(i int) (T, error) {
	norm, err := l.normalize(i)
	if err != nil {
		return zero.Value[T](), err
	}

	pos, idx := l.posOf(norm)

	return l.lists[pos][idx], nil
}

// DeleteAt removes and returns the value at position i. Negative positions count
// from the end.
func (l *List[T]) DeleteAt(i int) (T, error) {
	norm, err := l.normalize(i)
	if err != nil {
		return zero.Value[T](), err
	}

	pos, idx := l.posOf(norm)

	return l.delete(pos, idx), nil
}

// Clear removes every value.
func (l *List[T]) Clear() {
	l.lists = nil
	l.maxes = nil
	l.index = nil
	l.length = 0
}

// Clone returns an independent copy sharing no storage with l.
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{
		cmp:     l.cmp,
		lists:   make([][]T, len(l.lists)),
		maxes:   slices.Clone(l.maxes),
		length:  l.length,
		load:    l.load,
		name:    l.name,
		metrics: l.metrics,
	}

	for i, bucket := range l.lists {
		out.lists[i] = slices.Clone(bucket)
	}

	return out
}

// All yields the values in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, bucket := range l.lists {
			for _, v := range bucket {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Backward yields the values in reverse order without materializing them.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(l.lists) - 1; i >= 0; i-- {
			bucket := l.lists[i]
			for j := len(bucket) - 1; j >= 0; j-- {
				if !yield(bucket[j]) {
					return
				}
			}
		}
	}
}

// Values returns the values in order as a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)

	for _, bucket := range l.lists {
		out = append(out, bucket...)
	}

	return out
}

// find locates the first value comparing equal to value.
func (l *List[T]) find(value T) (pos, idx int, found bool) {
	pos = bisectLeft(l.maxes, value, l.cmp)
	if pos == len(l.maxes) {
		return 0, 0, false
	}

	bucket := l.lists[pos]
	idx = bisectLeft(bucket, value, l.cmp)

	// maxes[pos] does not sort before value, so idx is always inside the bucket.
	if l.cmp(bucket[idx], value) != 0 {
		return 0, 0, false
	}

	return pos, idx, true
}

// expand splits bucket pos when it grew past twice the load, and otherwise keeps
// the positional index in step with the one value that was just added to it.
func (l *List[T]) expand(pos int) {
	bucket := l.lists[pos]

	if len(bucket) > l.load*2 {
		half := slices.Clone(bucket[l.load:])
		clear(bucket[l.load:])

		l.lists[pos] = bucket[:l.load]
		l.maxes[pos] = bucket[l.load-1]
		l.lists = slices.Insert(l.lists, pos+1, half)
		l.maxes = slices.Insert(l.maxes, pos+1, half[len(half)-1])
		l.index = nil

		l.metrics.splits.Inc()

		return
	}

	if l.index != nil {
		l.index.add(pos, 1)
	}
}

// delete removes the value at (pos, idx), merging the bucket into a neighbor when
// it shrank below half the load.
func (l *List[T]) delete(pos, idx int) T {
	bucket := l.lists[pos]
	removed := bucket[idx]
	bucket = slices.Delete(bucket, idx, idx+1)
	l.lists[pos] = bucket
	l.length--

	switch {
	case len(bucket) > l.load/2:
		l.maxes[pos] = bucket[len(bucket)-1]

		if l.index != nil {
			l.index.add(pos, -1)
		}
	case len(l.lists) > 1:
		if pos == 0 {
			pos = 1
		}

		prev := pos - 1
		l.lists[prev] = append(l.lists[prev], l.lists[pos]...)
		l.maxes[prev] = l.lists[prev][len(l.lists[prev])-1]
		l.lists = slices.Delete(l.lists, pos, pos+1)
		l.maxes = slices.Delete(l.maxes, pos, pos+1)
		l.index = nil

		l.metrics.merges.Inc()

		l.expand(prev)
	case len(bucket) > 0:
		l.maxes[pos] = bucket[len(bucket)-1]

		if l.index != nil {
			l.index.add(pos, -1)
		}
	default:
		l.Clear()
	}

	return removed
}

// normalize resolves a possibly negative position against the current length.
func (l *List[T]) normalize(i int) (int, error) {
	norm := i
	if norm < 0 {
		norm += l.length
	}

	if norm < 0 || norm >= l.length {
		return 0, errors.IndexOutOfRange(i, l.length)
	}

	return norm, nil
}

// posOf maps a valid global position to its bucket and offset.
func (l *List[T]) posOf(i int) (pos, idx int) {
	if first := len(l.lists[0]); i < first {
		return 0, i
	}

	last := len(l.lists) - 1
	if start := l.length - len(l.lists[last]); i >= start {
		return last, i - start
	}

	return l.ensureIndex().locate(i)
}

// loc maps a bucket and offset to a global position.
func (l *List[T]) loc(pos, idx int) int {
	if pos == 0 {
		return idx
	}

	return l.ensureIndex().prefix(pos) + idx
}

func (l *List[T]) ensureIndex() fenwick {
	if l.index == nil {
		l.index = buildFenwick(l.lists)

		l.metrics.rebuilds.Inc()
	}

	return l.index
}

func bisectLeft[T any](s []T, v T, c compare.Comparator[T]) int {
	i, _ := slices.BinarySearchFunc(s, v, c)

	return i
}

func bisectRight[T any](s []T, v T, c compare.Comparator[T]) int {
	return sort.Search(len(s), func(i int) bool {
		return c(s[i], v) > 0
	})
}
