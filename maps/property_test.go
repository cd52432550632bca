package maps_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/sortedcollections/compare"
	sortedmaps "github.com/amp-labs/sortedcollections/maps"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBijection drives random sets and deletes over uuid keys and checks after each
// batch that the store and the ordering index agree.
func TestBijection(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5)) //nolint:gosec

	keys := make([]string, 64)
	for i := range keys {
		keys[i] = uuid.NewString()
	}

	byValue := sortedmaps.NewValueSortedMap[string, int](sortedmaps.WithLoad(4))
	ordered := sortedmaps.NewOrderedMap[string, int](sortedmaps.WithLoad(4))
	indexable := sortedmaps.NewIndexableMap[string, int](sortedmaps.WithLoad(4))
	reference := make(map[string]int)

	var insertion []string

	for step := range 2000 {
		key := keys[rng.IntN(len(keys))]

		if rng.IntN(3) == 0 {
			_, present := reference[key]

			for _, err := range []error{byValue.Delete(key), ordered.Delete(key), indexable.Delete(key)} {
				if present {
					require.NoError(t, err)
				} else {
					require.Error(t, err)
				}
			}

			delete(reference, key)

			if i := slices.Index(insertion, key); i >= 0 {
				insertion = slices.Delete(insertion, i, i+1)
			}
		} else {
			value := rng.IntN(20)

			require.NoError(t, byValue.Set(key, value))
			require.NoError(t, ordered.Set(key, value))
			require.NoError(t, indexable.Set(key, value))

			if _, present := reference[key]; !present {
				insertion = append(insertion, key)
			}

			reference[key] = value
		}

		if step%200 == 0 {
			require.NoError(t, byValue.Check())
			require.NoError(t, ordered.Check())
			require.NoError(t, indexable.Check())
		}
	}

	for _, m := range []interface {
		Len() int
		Check() error
	}{byValue, ordered, indexable} {
		assert.Equal(t, len(reference), m.Len())
		require.NoError(t, m.Check())
	}

	t.Run("values are non-decreasing", func(t *testing.T) {
		t.Parallel()

		values := slices.Collect(byValue.Values())
		assert.True(t, slices.IsSorted(values))

		var prev *sortedmaps.Item[string, int]

		for item := range byValue.Items() {
			if prev != nil && prev.Value == item.Value {
				assert.Negative(t, compare.Ordered[string]()(prev.Key, item.Key))
			}

			prev = &item
		}
	})

	t.Run("insertion order survives deletes and re-inserts", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, insertion, slices.Collect(ordered.Keys()))
	})

	t.Run("every entry resolves by position", func(t *testing.T) {
		t.Parallel()

		for k, want := range reference {
			i, err := indexable.IndexOf(k)
			require.NoError(t, err)

			item, err := indexable.ItemAt(i)
			require.NoError(t, err)
			assert.Equal(t, k, item.Key)
			assert.Equal(t, want, item.Value)
		}
	})
}
