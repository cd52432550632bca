// Package compare provides equality and three-way ordering primitives shared by the
// sorted containers.
package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Comparable is a generic interface for types that can compare themselves for equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Comparator is a three-way comparison: negative when a sorts before b, zero when
// they are equivalent, positive when a sorts after b. A Comparator must describe a
// strict weak ordering; the containers rely on it being consistent across calls.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural comparator for any cmp.Ordered type.
// Floating-point NaNs sort before every other value and compare equal to each other.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse inverts the direction of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then chains comparators: ties under first are broken by next.
//
// Example:
//
//	byLen := func(a, b string) int { return cmp.Compare(len(a), len(b)) }
//	c := compare.Then(byLen, compare.Ordered[string]())
//	c("bb", "a")  // 1, longer sorts later
//	c("ab", "aa") // 1, same length, lexicographic tie-break
func Then[T any](first, next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if c := first(a, b); c != 0 {
			return c
		}

		return next(a, b)
	}
}

// By orders values by a derived key.
func By[T any, O cmp.Ordered](key func(T) O) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Natural orders strings the way a human would read them, treating runs of
// digits as numbers: "file2" sorts before "file10". Spellings natsort considers
// equivalent, such as "01" and "1", fall back to byte order so distinct strings
// never compare equal.
func Natural(a, b string) int {
	return naturalOrder(a, b)
}

var naturalOrder = Then(natural, Ordered[string]()) //nolint:gochecknoglobals

// natural compares by natsort alone. natsort reports equivalent spellings as
// preceding each other, so those are treated as equal.
func natural(a, b string) int {
	less, greater := natsort.Compare(a, b), natsort.Compare(b, a)

	switch {
	case less && !greater:
		return -1
	case greater && !less:
		return 1
	default:
		return 0
	}
}

// Constant treats every pair of values as equivalent.
// It is the degenerate ordering used by position-addressed sequences.
func Constant[T any](_, _ T) int {
	return 0
}
