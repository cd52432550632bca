// Package nearest resolves a lookup to the nearest key of a sorted key sequence and
// provides Map, a key-sorted mapping whose lookups round to the nearest key instead
// of failing on a miss.
package nearest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/amp-labs/sortedcollections/compare"
	errors2 "github.com/amp-labs/sortedcollections/errors"
	"github.com/amp-labs/sortedcollections/zero"
)

// ErrUnknownRounding is returned for a Rounding outside Nearest, Up and Down.
var ErrUnknownRounding = errors.New("unknown rounding")

// Sorted is a key sequence in ascending order with positional access.
// *maps.Mapping values ordered by their own keys satisfy it.
type Sorted[K any] interface {
	Len() int
	KeyAt(i int) (K, error)

	// BisectLeft returns the position of the first key that does not sort
	// before the target.
	BisectLeft(target K) int
}

// Resolve returns the key of keys nearest to request under mode.
//
// An exact match is returned whatever the mode. Otherwise Up returns the key just
// above the request and Down the key just below it; Nearest returns whichever of the
// two is closer under dist, preferring the one below on a tie, and falls back to the
// only candidate at either end.
//
// Failures all wrap errors.ErrKeyNotFound: errors.ErrEmpty when there are no keys,
// errors.ErrNoKeyAbove when Up finds every key below the request and
// errors.ErrNoKeyBelow when Down finds every key above it.
func Resolve[K any](
	keys Sorted[K], request K, mode Rounding, c compare.Comparator[K], dist Distance[K],
) (K, error) {
	return ResolveFunc(keys, request, mode, c, CloserByDistance(dist))
}

// ResolveFunc is Resolve with the Nearest choice made by closer instead of by
// comparing two distances.
func ResolveFunc[K any](
	keys Sorted[K], request K, mode Rounding, c compare.Comparator[K], closer Closer[K],
) (K, error) {
	if !mode.Valid() {
		return zero.Value[K](), fmt.Errorf("%w: %v", ErrUnknownRounding, mode)
	}

	n := keys.Len()
	if n == 0 {
		return zero.Value[K](), errors2.ErrEmpty
	}

	i := keys.BisectLeft(request)

	if i >= n {
		if mode == Up {
			return zero.Value[K](), fmt.Errorf("%w: %v", errors2.ErrNoKeyAbove, request)
		}

		return keys.KeyAt(n - 1)
	}

	above, err := keys.KeyAt(i)
	if err != nil {
		return zero.Value[K](), err
	}

	if c(above, request) == 0 {
		return above, nil
	}

	if i == 0 {
		if mode == Down {
			return zero.Value[K](), fmt.Errorf("%w: %v", errors2.ErrNoKeyBelow, request)
		}

		return above, nil
	}

	below, err := keys.KeyAt(i - 1)
	if err != nil {
		return zero.Value[K](), err
	}

	switch mode {
	case Up:
		return above, nil
	case Down:
		return below, nil
	default:
		if closer(above, below, request) {
			return above, nil
		}

		return below, nil
	}
}

// Slice adapts an ascending slice to Sorted. The slice is not copied.
type Slice[K any] struct {
	keys []K
	cmp  compare.Comparator[K]
}

// FromSlice wraps keys, which must already be sorted under c.
func FromSlice[K any](keys []K, c compare.Comparator[K]) Slice[K] {
	return Slice[K]{keys: keys, cmp: c}
}

func (s Slice[K]) Len() int {
	return len(s.keys)
}

func (s Slice[K]) KeyAt(i int) (K, error) { //nolint:ireturn
	norm := i
	if norm < 0 {
		norm += len(s.keys)
	}

	if norm < 0 || norm >= len(s.keys) {
		return zero.Value[K](), errors2.IndexOutOfRange(i, len(s.keys))
	}

	return s.keys[norm], nil
}

func (s Slice[K]) BisectLeft(target K) int {
	return sort.Search(len(s.keys), func(i int) bool {
		return s.cmp(s.keys[i], target) >= 0
	})
}
