// Package set provides sets whose members are addressable by position.
//
// A Set is a maps.Mapping with empty values: membership lives in a Go map and the
// order lives in the mapping's ordering index, so every member has an O(log n)
// position and every position an O(log n) member. The order is chosen at
// construction: insertion order (OrderedSet), the members' own order (sorted sets)
// or their hash (IndexableSet).
//
// Sets are not safe for concurrent use.
package set

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/amp-labs/sortedcollections/compare"
	"github.com/amp-labs/sortedcollections/errors"
	"github.com/amp-labs/sortedcollections/maps"
	"github.com/amp-labs/sortedcollections/sortedlist"
)

// Set is a collection of unique members kept in the order given by its ordering.
type Set[T comparable, O any] struct {
	members *maps.Mapping[T, struct{}, O]
}

// OrderedSet keeps members in first-insertion order.
type OrderedSet[T comparable] = Set[T, int64]

// IndexableSet keeps members in the stable, arbitrary order of their hashes.
type IndexableSet[T comparable] = Set[T, uint64]

// SortedSet keeps members in their own order.
type SortedSet[T comparable] = Set[T, T]

// New creates an empty set ordered by ordering.
func New[T comparable, O any](ordering maps.Ordering[T, struct{}, O], opts ...maps.Option) *Set[T, O] {
	return &Set[T, O]{members: maps.New(ordering, opts...)}
}

// NewOrderedSet creates a set holding items in first-insertion order.
// Duplicates after the first occurrence are ignored.
//
// Example:
//
//	s := set.NewOrderedSet("eve", "carol", "alice")
//	first, _ := s.At(0) // "eve"
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := New(maps.Sequential[T, struct{}]())

	// Sequential derivation cannot fail.
	_ = s.AddAll(items...)

	return s
}

// NewIndexableSet creates a set holding items in hash order.
func NewIndexableSet[T cmp.Ordered](items ...T) *IndexableSet[T] {
	s := New(maps.ByHash[T, struct{}](compare.Ordered[T]()))

	// Hashing an ordered type cannot fail.
	_ = s.AddAll(items...)

	return s
}

// NewSortedSet creates a set holding items in ascending order.
func NewSortedSet[T cmp.Ordered](items ...T) *SortedSet[T] {
	return NewSortedSetFunc(compare.Ordered[T](), items...)
}

// NewSortedSetFunc creates a set holding items in the order given by c.
func NewSortedSetFunc[T comparable](c compare.Comparator[T], items ...T) *SortedSet[T] {
	s := New(maps.ByKeyFunc[T, struct{}](c))

	_ = s.AddAll(items...)

	return s
}

// NewNaturalSet creates a set of strings in natural order, so "v2" comes before
// "v10".
func NewNaturalSet(items ...string) *SortedSet[string] {
	return NewSortedSetFunc(compare.Natural, items...)
}

// Len returns the number of members.
func (s *Set[T, O]) Len() int {
	return s.members.Len()
}

// Contains reports whether v is a member.
func (s *Set[T, O]) Contains(v T) bool {
	return s.members.Contains(v)
}

// Add inserts v if it is not already a member. Members keep their position when
// added again. It fails only when the ordering key of v cannot be derived.
func (s *Set[T, O]) Add(v T) error {
	if s.members.Contains(v) {
		return nil
	}

	return s.members.Set(v, struct{}{})
}

// AddAll adds every item in turn, stopping at the first failure.
func (s *Set[T, O]) AddAll(items ...T) error {
	for _, v := range items {
		if err := s.Add(v); err != nil {
			return err
		}
	}

	return nil
}

// Discard removes v and reports whether it was a member.
func (s *Set[T, O]) Discard(v T) bool {
	return s.members.Delete(v) == nil
}

// Remove removes v, or fails with errors.ErrNotMember.
func (s *Set[T, O]) Remove(v T) error {
	if !s.members.Contains(v) {
		return errors.NotMember(v)
	}

	return s.members.Delete(v)
}

// Clear removes every member.
func (s *Set[T, O]) Clear() {
	s.members.Clear()
}

// Index returns the current position of v, or fails with errors.ErrNotMember.
// Positions close up after removals, so At(Index(v)) is always v.
func (s *Set[T, O]) Index(v T) (int, error) {
	if !s.members.Contains(v) {
		return 0, errors.NotMember(v)
	}

	return s.members.IndexOf(v)
}

// Sequence returns the ordering key recorded for v. For an OrderedSet it is the
// insertion sequence number, which unlike Index is not renumbered after removals.
func (s *Set[T, O]) Sequence(v T) (O, error) { //nolint:ireturn
	ord, err := s.members.OrderingKey(v)
	if err != nil {
		return ord, errors.NotMember(v)
	}

	return ord, nil
}

// At returns the member at position i. Negative positions count from the end.
func (s *Set[T, O]) At(i int) (T, error) { //nolint:ireturn
	return s.members.KeyAt(i)
}

// Slice returns the members selected by sl.
func (s *Set[T, O]) Slice(sl sortedlist.Slice) []T {
	return s.members.KeysSlice(sl)
}

// Pop removes and returns the last member, or the first one when last is false.
// It fails with errors.ErrEmpty on an empty set.
func (s *Set[T, O]) Pop(last bool) (T, error) { //nolint:ireturn
	v, _, err := s.members.PopItem(last)

	return v, err
}

// All yields the members in order.
func (s *Set[T, O]) All() iter.Seq[T] {
	return s.members.Keys()
}

// Backward yields the members in reverse order without materializing them.
func (s *Set[T, O]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.members.Backward() {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries returns the members in order as a new slice.
func (s *Set[T, O]) Entries() []T {
	return s.members.KeysSlice(sortedlist.Slice{})
}

// Clone returns an independent copy with the same members in the same order.
func (s *Set[T, O]) Clone() *Set[T, O] {
	return &Set[T, O]{members: s.members.Clone()}
}

// Union returns a new set holding the members of s, in order, followed by the
// members of other that s lacks.
func (s *Set[T, O]) Union(other *Set[T, O]) *Set[T, O] {
	out := s.Clone()

	for v := range other.All() {
		// Both sets share an ordering, so other's members were derived before.
		_ = out.Add(v)
	}

	return out
}

// Intersection returns a new set holding the members of s that other also holds,
// in the order of s.
func (s *Set[T, O]) Intersection(other *Set[T, O]) *Set[T, O] {
	return s.Filter(other.Contains)
}

// Difference returns a new set holding the members of s that other lacks, in the
// order of s.
func (s *Set[T, O]) Difference(other *Set[T, O]) *Set[T, O] {
	return s.FilterNot(other.Contains)
}

// Filter returns a new set holding the members for which predicate returns true.
func (s *Set[T, O]) Filter(predicate func(T) bool) *Set[T, O] {
	return &Set[T, O]{members: s.members.Filter(func(v T, _ struct{}) bool {
		return predicate(v)
	})}
}

// FilterNot returns a new set holding the members for which predicate returns false.
func (s *Set[T, O]) FilterNot(predicate func(T) bool) *Set[T, O] {
	return s.Filter(func(v T) bool {
		return !predicate(v)
	})
}

// Equal reports whether both sets have the same members, regardless of order.
func (s *Set[T, O]) Equal(other *Set[T, O]) bool {
	return s.Len() == other.Len() && s.members.ForAll(func(v T, _ struct{}) bool {
		return other.Contains(v)
	})
}

// Check verifies that membership and order are in bijection.
func (s *Set[T, O]) Check() error {
	return s.members.Check()
}

// String renders the members in order as Set([a b c]).
func (s *Set[T, O]) String() string {
	var sb strings.Builder

	sb.WriteString("Set([")

	first := true

	for v := range s.All() {
		if !first {
			sb.WriteString(" ")
		}

		first = false

		fmt.Fprint(&sb, v)
	}

	sb.WriteString("])")

	return sb.String()
}

// Count returns 1 if v is a member and 0 otherwise.
func (s *Set[T, O]) Count(v T) int {
	if s.Contains(v) {
		return 1
	}

	return 0
}
