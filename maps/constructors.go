package maps

import (
	"cmp"

	"github.com/amp-labs/sortedcollections/compare"
	"github.com/amp-labs/sortedcollections/sortable"
)

// NewOrderedMap creates a mapping that iterates in first-insertion order. Updating
// the value of a present key keeps its position; deleting and re-inserting a key
// moves it to the end.
func NewOrderedMap[K comparable, V any](opts ...Option) *Mapping[K, V, int64] {
	return New(Sequential[K, V](), opts...)
}

// NewSortedMap creates a mapping that iterates in key order.
func NewSortedMap[K cmp.Ordered, V any](opts ...Option) *Mapping[K, V, K] {
	return New(ByKey[K, V](), opts...)
}

// NewSortedMapFunc creates a mapping that iterates in key order under c.
func NewSortedMapFunc[K comparable, V any](c compare.Comparator[K], opts ...Option) *Mapping[K, V, K] {
	return New(ByKeyFunc[K, V](c), opts...)
}

// SortableKey is a map key that orders itself.
type SortableKey[K any] interface {
	comparable
	sortable.Sortable[K]
}

// NewSortableMap creates a key-ordered mapping over keys that order themselves.
func NewSortableMap[K SortableKey[K], V any](opts ...Option) *Mapping[K, V, K] {
	return NewSortedMapFunc[K, V](sortable.Comparator[K](), opts...)
}

// NewNaturalMap creates a mapping that iterates in natural string order, so "v2"
// comes before "v10".
func NewNaturalMap[V any](opts ...Option) *Mapping[string, V, string] {
	return NewSortedMapFunc[string, V](compare.Natural, opts...)
}

// NewValueSortedMap creates a mapping that iterates in value order. Entries with
// equal values iterate in key order.
func NewValueSortedMap[K cmp.Ordered, V cmp.Ordered](opts ...Option) *Mapping[K, V, V] {
	return New(ByValue[K, V](), opts...)
}

// NewValueSortedMapFunc creates a mapping that iterates in f(value) order. Ties are
// broken by keyCmp, or by insertion order when keyCmp is nil.
//
// Example:
//
//	byLength := maps.NewValueSortedMapFunc(func(v string) int { return len(v) },
//	    compare.Ordered[int]())
func NewValueSortedMapFunc[K comparable, V any, O cmp.Ordered](
	f func(V) O, keyCmp compare.Comparator[K], opts ...Option,
) *Mapping[K, V, O] {
	return New(ByValueFunc(f, keyCmp), opts...)
}

// NewItemSortedMap creates a mapping that iterates in f(key, value) order. Ties are
// broken by keyCmp, or by insertion order when keyCmp is nil.
func NewItemSortedMap[K comparable, V any, O cmp.Ordered](
	f func(K, V) O, keyCmp compare.Comparator[K], opts ...Option,
) *Mapping[K, V, O] {
	return New(ByItem(f, keyCmp), opts...)
}

// NewIndexableMap creates a mapping with a stable, arbitrary order given by the
// xxh3 hash of each key. It is useful when only positional access is needed: the
// order does not depend on insertion history, so equal maps index identically.
func NewIndexableMap[K cmp.Ordered, V any](opts ...Option) *Mapping[K, V, uint64] {
	return New(ByHash[K, V](compare.Ordered[K]()), opts...)
}
