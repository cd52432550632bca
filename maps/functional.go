package maps

import "github.com/amp-labs/sortedcollections/optional"

// ForEach applies f to each entry, in order.
func (m *Mapping[K, V, O]) ForEach(f func(key K, value V)) {
	for k, v := range m.All() {
		f(k, v)
	}
}

// ForAll returns true if the predicate returns true for every entry.
// Returns true for an empty mapping.
func (m *Mapping[K, V, O]) ForAll(predicate func(key K, value V) bool) bool {
	for k, v := range m.All() {
		if !predicate(k, v) {
			return false
		}
	}

	return true
}

// Exists returns true if at least one entry satisfies the predicate.
func (m *Mapping[K, V, O]) Exists(predicate func(key K, value V) bool) bool {
	for k, v := range m.All() {
		if predicate(k, v) {
			return true
		}
	}

	return false
}

// FindFirst returns the first entry, in order, that satisfies the predicate.
// Returns None if no entry satisfies it.
func (m *Mapping[K, V, O]) FindFirst(predicate func(key K, value V) bool) optional.Value[Item[K, V]] {
	for k, v := range m.All() {
		if predicate(k, v) {
			return optional.Some(Item[K, V]{Key: k, Value: v})
		}
	}

	return optional.None[Item[K, V]]()
}

// Filter returns a new mapping with the same ordering holding only the entries for
// which the predicate returns true.
func (m *Mapping[K, V, O]) Filter(predicate func(key K, value V) bool) *Mapping[K, V, O] {
	out := newMapping(m.ordering, m.opts)

	for k, v := range m.All() {
		if predicate(k, v) {
			_ = out.Set(k, v)
		}
	}

	return out
}

// FilterNot returns a new mapping with the same ordering holding only the entries
// for which the predicate returns false.
func (m *Mapping[K, V, O]) FilterNot(predicate func(key K, value V) bool) *Mapping[K, V, O] {
	return m.Filter(func(key K, value V) bool {
		return !predicate(key, value)
	})
}
