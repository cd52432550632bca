package maps

import (
	"iter"

	"github.com/amp-labs/sortedcollections/errors"
	"github.com/amp-labs/sortedcollections/sortedlist"
	"github.com/amp-labs/sortedcollections/tuple"
	"github.com/amp-labs/sortedcollections/zero"
)

// KeyAt returns the key at position i in order. Negative positions count from the
// end; positions past either end fail with errors.ErrIndexOutOfRange.
func (m *Mapping[K, V, O]) KeyAt(i int) (K, error) { //nolint:ireturn
	t, err := m.index.At(i)
	if err != nil {
		return zero.Value[K](), err
	}

	return t.Second(), nil
}

// ValueAt returns the value at position i in order.
func (m *Mapping[K, V, O]) ValueAt(i int) (V, error) { //nolint:ireturn
	key, err := m.KeyAt(i)
	if err != nil {
		return zero.Value[V](), err
	}

	return m.store[key].value, nil
}

// ItemAt returns the entry at position i in order.
func (m *Mapping[K, V, O]) ItemAt(i int) (Item[K, V], error) {
	key, err := m.KeyAt(i)
	if err != nil {
		return Item[K, V]{}, err
	}

	return Item[K, V]{Key: key, Value: m.store[key].value}, nil
}

// KeysSlice returns the keys selected by s.
func (m *Mapping[K, V, O]) KeysSlice(s sortedlist.Slice) []K {
	selected := m.index.Slice(s)
	out := make([]K, len(selected))

	for i, t := range selected {
		out[i] = t.Second()
	}

	return out
}

// ValuesSlice returns the values selected by s.
func (m *Mapping[K, V, O]) ValuesSlice(s sortedlist.Slice) []V {
	selected := m.index.Slice(s)
	out := make([]V, len(selected))

	for i, t := range selected {
		out[i] = m.store[t.Second()].value
	}

	return out
}

// ItemsSlice returns the entries selected by s.
func (m *Mapping[K, V, O]) ItemsSlice(s sortedlist.Slice) []Item[K, V] {
	selected := m.index.Slice(s)
	out := make([]Item[K, V], len(selected))

	for i, t := range selected {
		key := t.Second()
		out[i] = Item[K, V]{Key: key, Value: m.store[key].value}
	}

	return out
}

// IndexOf returns the current position of key in order, or errors.ErrKeyNotFound.
func (m *Mapping[K, V, O]) IndexOf(key K) (int, error) {
	e, ok := m.store[key]
	if !ok {
		return 0, errors.KeyNotFound(key)
	}

	return m.locate(key, e.ord)
}

// OrderingKey returns the ordering key recorded for key when it was last placed in
// the index, or errors.ErrKeyNotFound.
func (m *Mapping[K, V, O]) OrderingKey(key K) (O, error) { //nolint:ireturn
	e, ok := m.store[key]
	if !ok {
		return zero.Value[O](), errors.KeyNotFound(key)
	}

	return e.ord, nil
}

// BisectLeft returns the position of the first entry whose ordering key does not
// sort before ord.
func (m *Mapping[K, V, O]) BisectLeft(ord O) int {
	return m.index.Search(func(t tuple.Tuple2[O, K]) bool {
		return m.ordering.cmp(t.First(), ord) >= 0
	})
}

// BisectRight returns the position of the first entry whose ordering key sorts after
// ord.
func (m *Mapping[K, V, O]) BisectRight(ord O) int {
	return m.index.Search(func(t tuple.Tuple2[O, K]) bool {
		return m.ordering.cmp(t.First(), ord) > 0
	})
}

// Between yields, in order, the entries whose ordering keys lie in [lo, hi).
func (m *Mapping[K, V, O]) Between(lo, hi O) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		start, stop := m.BisectLeft(lo), m.BisectLeft(hi)
		if start >= stop {
			return
		}

		for _, t := range m.index.Slice(sortedlist.Span(start, stop)) {
			key := t.Second()
			if !yield(key, m.store[key].value) {
				return
			}
		}
	}
}
