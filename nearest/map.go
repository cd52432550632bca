package nearest

import (
	"iter"
	"time"

	"github.com/amp-labs/sortedcollections/compare"
	"github.com/amp-labs/sortedcollections/maps"
	"github.com/amp-labs/sortedcollections/zero"
)

type options struct {
	rounding Rounding
	mapOpts  []maps.Option
}

// Option configures a Map.
type Option func(*options)

// WithRounding sets how lookups round when there is no exact match. The default is
// Nearest.
func WithRounding(r Rounding) Option {
	return func(o *options) {
		o.rounding = r
	}
}

// WithMapOptions passes options through to the underlying sorted mapping.
func WithMapOptions(opts ...maps.Option) Option {
	return func(o *options) {
		o.mapOpts = append(o.mapOpts, opts...)
	}
}

// Map is a key-sorted mapping whose Get rounds a missing key to the nearest stored
// key. Set and Delete address keys exactly.
//
// Example:
//
//	readings := nearest.New[float64, string]()
//	_ = readings.Set(1.0, "foo")
//	v, _ := readings.Get(0.2) // "foo"
type Map[K comparable, V any] struct {
	entries  *maps.Mapping[K, V, K]
	cmp      compare.Comparator[K]
	closer   Closer[K]
	rounding Rounding
}

// New creates a Map over numeric keys.
func New[K Number, V any](opts ...Option) *Map[K, V] {
	return newMap[K, V](compare.Ordered[K](), NumericCloser[K], opts)
}

// NewTime creates a Map over time.Time keys. Keys are compared as instants, but the
// underlying Go map still tells apart equal instants carrying different locations,
// so callers should normalize keys (for instance with UTC) before storing them.
func NewTime[V any](opts ...Option) *Map[time.Time, V] {
	return newMap[time.Time, V](time.Time.Compare, TimeCloser, opts)
}

// NewFunc creates a Map whose keys are ordered by c and measured by dist.
func NewFunc[K comparable, V any](c compare.Comparator[K], dist Distance[K], opts ...Option) *Map[K, V] {
	return newMap[K, V](c, CloserByDistance(dist), opts)
}

func newMap[K comparable, V any](c compare.Comparator[K], closer Closer[K], opts []Option) *Map[K, V] {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return &Map[K, V]{
		entries:  maps.NewSortedMapFunc[K, V](c, o.mapOpts...),
		cmp:      c,
		closer:   closer,
		rounding: o.rounding,
	}
}

// Rounding returns the rounding mode lookups use.
func (m *Map[K, V]) Rounding() Rounding {
	return m.rounding
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.entries.Len()
}

// Set stores value under exactly key.
func (m *Map[K, V]) Set(key K, value V) error {
	return m.entries.Set(key, value)
}

// Delete removes exactly key, or fails with errors.ErrKeyNotFound.
func (m *Map[K, V]) Delete(key K) error {
	return m.entries.Delete(key)
}

// Contains reports whether exactly key is stored.
func (m *Map[K, V]) Contains(key K) bool {
	return m.entries.Contains(key)
}

// Exact returns the value stored under exactly key, without rounding.
func (m *Map[K, V]) Exact(key K) (V, error) { //nolint:ireturn
	return m.entries.Get(key)
}

// NearestKey resolves request to a stored key under the map's rounding mode.
func (m *Map[K, V]) NearestKey(request K) (K, error) { //nolint:ireturn
	return ResolveFunc[K](m.entries, request, m.rounding, m.cmp, m.closer)
}

// Get returns the value stored under the key nearest to request.
func (m *Map[K, V]) Get(request K) (V, error) { //nolint:ireturn
	key, err := m.NearestKey(request)
	if err != nil {
		return zero.Value[V](), err
	}

	return m.entries.Get(key)
}

// All yields the entries in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.entries.All()
}

// Backward yields the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.entries.Backward()
}

// Keys yields the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return m.entries.Keys()
}

// Clone returns an independent copy with the same rounding mode.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		entries:  m.entries.Clone(),
		cmp:      m.cmp,
		closer:   m.closer,
		rounding: m.rounding,
	}
}

// Check verifies the underlying mapping. See maps.Mapping.Check.
func (m *Map[K, V]) Check() error {
	return m.entries.Check()
}
