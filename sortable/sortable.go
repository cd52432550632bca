package sortable

import (
	"github.com/amp-labs/sortedcollections/compare"
)

// Sortable is implemented by types that know how to order themselves.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator adapts a Sortable type to a three-way compare.Comparator so it can
// drive a sorted list or serve as the tie-break key of a sorted mapping.
//
// Example:
//
//	m := maps.NewSortedMapFunc[sortable.Int, string](sortable.Comparator[sortable.Int]())
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case a.Equals(b):
			return 0
		default:
			return 1
		}
	}
}
