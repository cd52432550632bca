// Package tuple provides small immutable product types.
//
//nolint:ireturn
package tuple

import "github.com/amp-labs/sortedcollections/compare"

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
//
// The sorted mappings store Tuple2[ordering key, key] in their ordering engine, so
// two entries whose derived ordering keys tie are still told apart by their keys.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Values unpacks the pair.
func (t Tuple2[A, B]) Values() (A, B) { //nolint:ireturn
	return t.first, t.second
}

// Compare2 orders pairs lexicographically: by the first element, then, on a tie,
// by the second. A nil second comparator treats every tie as equal, which is only
// safe when the first elements are known to be unique.
func Compare2[A, B any](first compare.Comparator[A], second compare.Comparator[B]) compare.Comparator[Tuple2[A, B]] {
	return func(a, b Tuple2[A, B]) int {
		if c := first(a.first, b.first); c != 0 || second == nil {
			return c
		}

		return second(a.second, b.second)
	}
}
