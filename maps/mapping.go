// Package maps provides mappings that keep a hash-keyed value store in lock-step with
// an ordering index.
//
// Every Mapping holds two structures: a Go map from key to value (O(1) exact access)
// and a sortedlist.List of (ordering key, key) pairs (ordered iteration, O(log n)
// positional access and rank queries). The ordering key of an entry is derived by an
// Ordering strategy: insertion sequence, the key itself, the value, a function of
// the key and value, or the key's hash.
//
// The two structures are kept in bijection. Inserts derive the ordering key first,
// then update the index, then the store; deletes update the index first, then the
// store. A failure at any step therefore never leaves the store holding a key the
// index does not know about. Check verifies the bijection.
//
// Mappings are not safe for concurrent use.
package maps

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/amp-labs/sortedcollections/errors"
	"github.com/amp-labs/sortedcollections/logger"
	"github.com/amp-labs/sortedcollections/optional"
	"github.com/amp-labs/sortedcollections/sortedlist"
	"github.com/amp-labs/sortedcollections/tuple"
	"github.com/amp-labs/sortedcollections/zero"
)

type options struct {
	load   int
	name   string
	logger *slog.Logger
}

// Option configures a Mapping.
type Option func(*options)

// WithLoad sets the bucket load of the ordering index.
func WithLoad(load int) Option {
	return func(o *options) {
		o.load = load
	}
}

// WithName labels the ordering index's metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used to report consistency violations. Without it the
// subsystem-tagged default logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

type entry[V any, O any] struct {
	value V
	ord   O
}

// Mapping is a map whose entries iterate, and can be addressed by position, in the
// order given by its Ordering.
type Mapping[K comparable, V any, O any] struct {
	store    map[K]entry[V, O]
	index    *sortedlist.List[tuple.Tuple2[O, K]]
	ordering Ordering[K, V, O]
	derive   Deriver[K, V, O]
	opts     options
}

// New creates an empty mapping ordered by ordering.
//
// Example:
//
//	scores := maps.New(maps.ByValue[string, int]())
//	_ = scores.Set("alice", 30)
//	_ = scores.Set("bob", 10)
//	first, _ := scores.KeyAt(0) // "bob"
func New[K comparable, V any, O any](ordering Ordering[K, V, O], opts ...Option) *Mapping[K, V, O] {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return newMapping(ordering, o)
}

func newMapping[K comparable, V any, O any](ordering Ordering[K, V, O], o options) *Mapping[K, V, O] {
	var engineOpts []sortedlist.Option

	if o.load > 0 {
		engineOpts = append(engineOpts, sortedlist.WithLoad(o.load))
	}

	if o.name != "" {
		engineOpts = append(engineOpts, sortedlist.WithName(o.name))
	}

	return &Mapping[K, V, O]{
		store:    make(map[K]entry[V, O]),
		index:    sortedlist.New(tuple.Compare2(ordering.cmp, ordering.keyCmp), engineOpts...),
		ordering: ordering,
		derive:   ordering.newDeriver(),
		opts:     o,
	}
}

// Ordering returns the strategy the mapping was built with.
func (m *Mapping[K, V, O]) Ordering() Ordering[K, V, O] {
	return m.ordering
}

// Len returns the number of entries.
func (m *Mapping[K, V, O]) Len() int {
	return len(m.store)
}

// Contains reports whether key is present.
func (m *Mapping[K, V, O]) Contains(key K) bool {
	_, ok := m.store[key]

	return ok
}

// Get returns the value stored under key, or errors.ErrKeyNotFound.
func (m *Mapping[K, V, O]) Get(key K) (V, error) { //nolint:ireturn
	e, ok := m.store[key]
	if !ok {
		return zero.Value[V](), errors.KeyNotFound(key)
	}

	return e.value, nil
}

// GetOrElse returns the value stored under key, or defaultValue when it is absent.
func (m *Mapping[K, V, O]) GetOrElse(key K, defaultValue V) V { //nolint:ireturn
	if e, ok := m.store[key]; ok {
		return e.value
	}

	return defaultValue
}

// Set stores value under key.
//
// A new key gets its ordering key derived and is placed in the index before it is
// stored. For an existing key the ordering key is re-derived only when the ordering
// depends on the value; if it changed, the entry is moved in the index before the
// store is updated. If derivation fails nothing is modified.
func (m *Mapping[K, V, O]) Set(key K, value V) error {
	current, ok := m.store[key]
	if !ok {
		ord, err := m.derive(key, value)
		if err != nil {
			return fmt.Errorf("deriving ordering key for %v: %w", key, err)
		}

		m.index.Add(tuple.NewTuple2(ord, key))
		m.store[key] = entry[V, O]{value: value, ord: ord}

		return nil
	}

	if m.ordering.Rederives() {
		ord, err := m.derive(key, value)
		if err != nil {
			return fmt.Errorf("deriving ordering key for %v: %w", key, err)
		}

		if m.ordering.cmp(ord, current.ord) != 0 {
			if err := m.unlink(key, current.ord); err != nil {
				return err
			}

			m.index.Add(tuple.NewTuple2(ord, key))
			current.ord = ord
		}
	}

	current.value = value
	m.store[key] = current

	return nil
}

// SetDefault returns the value stored under key, storing and returning
// defaultValue first if the key is absent.
func (m *Mapping[K, V, O]) SetDefault(key K, defaultValue V) (V, error) { //nolint:ireturn
	if e, ok := m.store[key]; ok {
		return e.value, nil
	}

	if err := m.Set(key, defaultValue); err != nil {
		return zero.Value[V](), err
	}

	return defaultValue, nil
}

// Update sets every pair yielded by entries, stopping at the first failure. Pairs
// set before the failure stay set.
func (m *Mapping[K, V, O]) Update(entries iter.Seq2[K, V]) error {
	for k, v := range entries {
		if err := m.Set(k, v); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes key, or fails with errors.ErrKeyNotFound.
func (m *Mapping[K, V, O]) Delete(key K) error {
	_, err := m.Pop(key)

	return err
}

// Pop removes key and returns its value, or fails with errors.ErrKeyNotFound.
func (m *Mapping[K, V, O]) Pop(key K) (V, error) { //nolint:ireturn
	e, ok := m.store[key]
	if !ok {
		return zero.Value[V](), errors.KeyNotFound(key)
	}

	if err := m.unlink(key, e.ord); err != nil {
		return zero.Value[V](), err
	}

	delete(m.store, key)

	return e.value, nil
}

// PopItem removes and returns the last entry in order, or the first one when last is
// false. It fails with errors.ErrEmpty on an empty mapping.
func (m *Mapping[K, V, O]) PopItem(last bool) (K, V, error) { //nolint:ireturn
	i := 0
	if last {
		i = -1
	}

	if m.Len() == 0 {
		return zero.Value[K](), zero.Value[V](), errors.ErrEmpty
	}

	return m.PopAt(i)
}

// PopAt removes and returns the entry at position i. Negative positions count from
// the end.
func (m *Mapping[K, V, O]) PopAt(i int) (K, V, error) { //nolint:ireturn
	t, err := m.index.DeleteAt(i)
	if err != nil {
		return zero.Value[K](), zero.Value[V](), err
	}

	key := t.Second()
	e := m.store[key]
	delete(m.store, key)

	return key, e.value, nil
}

// Clear removes every entry.
func (m *Mapping[K, V, O]) Clear() {
	m.index.Clear()
	clear(m.store)
}

// Clone returns an independent mapping with the same ordering strategy and the same
// entries in the same order. The clone gets fresh derivation state.
func (m *Mapping[K, V, O]) Clone() *Mapping[K, V, O] {
	out := newMapping(m.ordering, m.opts)

	for k, v := range m.All() {
		// Re-deriving an ordering key that was derived once already cannot fail.
		_ = out.Set(k, v)
	}

	return out
}

// Equal reports whether both mappings hold the same entries in the same order.
func (m *Mapping[K, V, O]) Equal(other *Mapping[K, V, O], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}

	next, stop := iter.Pull2(other.All())
	defer stop()

	for k, v := range m.All() {
		otherKey, otherValue, more := next()
		if !more || k != otherKey || !eq(v, otherValue) {
			return false
		}
	}

	return true
}

// All yields the entries in order.
func (m *Mapping[K, V, O]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for t := range m.index.All() {
			key := t.Second()
			if !yield(key, m.store[key].value) {
				return
			}
		}
	}
}

// Backward yields the entries in reverse order.
func (m *Mapping[K, V, O]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for t := range m.index.Backward() {
			key := t.Second()
			if !yield(key, m.store[key].value) {
				return
			}
		}
	}
}

// Keys yields the keys in order.
func (m *Mapping[K, V, O]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for t := range m.index.All() {
			if !yield(t.Second()) {
				return
			}
		}
	}
}

// Values yields the values in order.
func (m *Mapping[K, V, O]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Items yields the entries in order as Items.
func (m *Mapping[K, V, O]) Items() iter.Seq[Item[K, V]] {
	return func(yield func(Item[K, V]) bool) {
		for k, v := range m.All() {
			if !yield(Item[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// First returns the first entry in order, if any.
func (m *Mapping[K, V, O]) First() optional.Value[Item[K, V]] {
	item, err := m.ItemAt(0)
	if err != nil {
		return optional.None[Item[K, V]]()
	}

	return optional.Some(item)
}

// Last returns the last entry in order, if any.
func (m *Mapping[K, V, O]) Last() optional.Value[Item[K, V]] {
	item, err := m.ItemAt(-1)
	if err != nil {
		return optional.None[Item[K, V]]()
	}

	return optional.Some(item)
}

// unlink removes the index entry of key, recorded under ord. Entries whose ordering
// keys tie and that have no key tie-break are scanned until the key matches.
func (m *Mapping[K, V, O]) unlink(key K, ord O) error {
	i, err := m.locate(key, ord)
	if err != nil {
		return err
	}

	if _, err := m.index.DeleteAt(i); err != nil {
		return errors.Violation("index entry of %v vanished: %v", key, err)
	}

	return nil
}

// locate returns the index position of key, recorded under ord.
func (m *Mapping[K, V, O]) locate(key K, ord O) (int, error) {
	target := tuple.NewTuple2(ord, key)
	c := m.index.Comparator()

	for i := m.index.BisectLeft(target); i < m.index.Len(); i++ {
		t, err := m.index.At(i)
		if err != nil || c(t, target) != 0 {
			break
		}

		if t.Second() == key {
			return i, nil
		}
	}

	return 0, errors.Violation("key %v is stored but missing from the ordering index", key)
}

func (m *Mapping[K, V, O]) log() *slog.Logger {
	return logger.OrDefault(m.opts.logger)
}
