package maps

import (
	"cmp"

	"github.com/amp-labs/sortedcollections/compare"
	"github.com/amp-labs/sortedcollections/hashing"
)

// Deriver computes the ordering key of an entry.
type Deriver[K comparable, V any, O any] func(key K, value V) (O, error)

// Ordering is a strategy for deriving the ordering key of a mapping's entries. The
// set of strategies is closed; build one with Sequential, ByKey, ByKeyFunc, ByValue,
// ByValueFunc, ByItem or ByHash.
//
// An Ordering is a recipe rather than state: every mapping built from it (including
// every clone) gets its own freshly created deriver, so a sequential counter is never
// shared between two mappings.
type Ordering[K comparable, V any, O any] struct {
	name string

	// cmp orders the derived keys.
	cmp compare.Comparator[O]

	// keyCmp breaks ties between equal derived keys. It is nil when derived keys
	// are unique per entry, and ties then fall back to insertion order.
	keyCmp compare.Comparator[K]

	// rederive is set when a value update can move the entry.
	rederive bool

	newDeriver func() Deriver[K, V, O]
}

// Name describes the strategy, e.g. "sequential" or "value".
func (o Ordering[K, V, O]) Name() string {
	return o.name
}

// Rederives reports whether updating the value of a present key can change its
// position.
func (o Ordering[K, V, O]) Rederives() bool {
	return o.rederive
}

// Sequential orders entries by first insertion. Updating a key's value never
// moves it.
func Sequential[K comparable, V any]() Ordering[K, V, int64] {
	return Ordering[K, V, int64]{
		name: "sequential",
		cmp:  compare.Ordered[int64](),
		newDeriver: func() Deriver[K, V, int64] {
			var counter int64

			return func(K, V) (int64, error) {
				next := counter
				counter++

				return next, nil
			}
		},
	}
}

// ByKey orders entries by their keys.
func ByKey[K cmp.Ordered, V any]() Ordering[K, V, K] {
	return ByKeyFunc[K, V](compare.Ordered[K]())
}

// ByKeyFunc orders entries by their keys under a custom comparator, for instance
// compare.Natural for human-ordered strings.
func ByKeyFunc[K comparable, V any](c compare.Comparator[K]) Ordering[K, V, K] {
	return Ordering[K, V, K]{
		name: "key",
		cmp:  c,
		newDeriver: func() Deriver[K, V, K] {
			return func(key K, _ V) (K, error) {
				return key, nil
			}
		},
	}
}

// ByValue orders entries by their values, breaking ties by key.
func ByValue[K cmp.Ordered, V cmp.Ordered]() Ordering[K, V, V] {
	return Ordering[K, V, V]{
		name:     "value",
		cmp:      compare.Ordered[V](),
		keyCmp:   compare.Ordered[K](),
		rederive: true,
		newDeriver: func() Deriver[K, V, V] {
			return func(_ K, value V) (V, error) {
				return value, nil
			}
		},
	}
}

// ByValueFunc orders entries by f(value). Ties are broken by keyCmp, or by
// insertion order when keyCmp is nil.
func ByValueFunc[K comparable, V any, O cmp.Ordered](
	f func(V) O, keyCmp compare.Comparator[K],
) Ordering[K, V, O] {
	return Ordering[K, V, O]{
		name:     "value",
		cmp:      compare.Ordered[O](),
		keyCmp:   keyCmp,
		rederive: true,
		newDeriver: func() Deriver[K, V, O] {
			return func(_ K, value V) (O, error) {
				return f(value), nil
			}
		},
	}
}

// ByItem orders entries by f(key, value). Ties are broken by keyCmp, or by
// insertion order when keyCmp is nil.
func ByItem[K comparable, V any, O cmp.Ordered](
	f func(K, V) O, keyCmp compare.Comparator[K],
) Ordering[K, V, O] {
	return Ordering[K, V, O]{
		name:     "item",
		cmp:      compare.Ordered[O](),
		keyCmp:   keyCmp,
		rederive: true,
		newDeriver: func() Deriver[K, V, O] {
			return func(key K, value V) (O, error) {
				return f(key, value), nil
			}
		},
	}
}

// ByHash orders entries by the xxh3 hash of their keys, which gives a stable but
// arbitrary order. Hash collisions are broken by keyCmp, or by insertion order when
// keyCmp is nil. Keys that cannot be hashed are rejected with
// errors.ErrUnsupportedType.
func ByHash[K comparable, V any](keyCmp compare.Comparator[K]) Ordering[K, V, uint64] {
	return ByHashFunc[K, V](hashing.Hash64[K], keyCmp)
}

// ByHashFunc orders entries by h(key), for instance hashing.XXHash64.
func ByHashFunc[K comparable, V any](h hashing.HashFunc[K], keyCmp compare.Comparator[K]) Ordering[K, V, uint64] {
	return Ordering[K, V, uint64]{
		name:   "hash",
		cmp:    compare.Ordered[uint64](),
		keyCmp: keyCmp,
		newDeriver: func() Deriver[K, V, uint64] {
			return func(key K, _ V) (uint64, error) {
				return h(key)
			}
		},
	}
}
