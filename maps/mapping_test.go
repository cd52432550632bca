package maps_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/amp-labs/sortedcollections/errors"
	sortedmaps "github.com/amp-labs/sortedcollections/maps"
	"github.com/amp-labs/sortedcollections/sortedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enumerate(n int) *sortedmaps.Mapping[int, int, int64] {
	m := sortedmaps.NewOrderedMap[int, int](sortedmaps.WithLoad(4))

	for i := range n {
		_ = m.Set(i, i)
	}

	return m
}

func TestOrderedMap(t *testing.T) {
	t.Parallel()

	t.Run("creates empty map", func(t *testing.T) {
		t.Parallel()

		m := sortedmaps.NewOrderedMap[string, int]()
		require.NotNil(t, m)
		assert.Equal(t, 0, m.Len())
		require.NoError(t, m.Check())
		assert.Equal(t, "sequential", m.Ordering().Name())
		assert.False(t, m.Ordering().Rederives())
		assert.True(t, sortedmaps.NewValueSortedMap[string, int]().Ordering().Rederives())
	})

	t.Run("updating a key keeps its position", func(t *testing.T) {
		t.Parallel()

		m := sortedmaps.NewOrderedMap[string, int]()
		require.NoError(t, m.Set("alice", 0))
		require.NoError(t, m.Set("bob", 1))
		require.NoError(t, m.Set("carol", 2))
		require.NoError(t, m.Set("alice", 3))

		assert.Equal(t, 3, m.Len())
		assert.Equal(t, []string{"alice", "bob", "carol"}, slices.Collect(m.Keys()))
		assert.Equal(t, []int{3, 1, 2}, slices.Collect(m.Values()))
		require.NoError(t, m.Check())
	})

	t.Run("re-inserting a deleted key moves it to the end", func(t *testing.T) {
		t.Parallel()

		m := enumerate(5)
		require.NoError(t, m.Delete(1))
		require.NoError(t, m.Set(1, 10))

		assert.Equal(t, []int{0, 2, 3, 4, 1}, slices.Collect(m.Keys()))
		require.NoError(t, m.Check())
	})

	t.Run("iterates backward", func(t *testing.T) {
		t.Parallel()

		m := sortedmaps.NewOrderedMap[string, int]()
		require.NoError(t, m.Set("b", 0))
		require.NoError(t, m.Set("a", 1))
		require.NoError(t, m.Set("c", 2))

		assert.Equal(t, []string{"b", "a", "c"}, slices.Collect(m.Keys()))

		var backward []string
		for k := range m.Backward() {
			backward = append(backward, k)
		}

		assert.Equal(t, []string{"c", "a", "b"}, backward)
	})

	t.Run("deletes every key", func(t *testing.T) {
		t.Parallel()

		m := enumerate(10)
		for i := range 10 {
			require.NoError(t, m.Delete(i))
		}

		assert.Equal(t, 0, m.Len())
		require.NoError(t, m.Check())
	})

	t.Run("delete of absent key fails", func(t *testing.T) {
		t.Parallel()

		m := enumerate(3)
		require.ErrorIs(t, m.Delete(7), errors.ErrKeyNotFound)
		assert.Equal(t, 3, m.Len())
	})

	t.Run("clears", func(t *testing.T) {
		t.Parallel()

		m := enumerate(10)
		m.Clear()

		assert.Equal(t, 0, m.Len())
		require.NoError(t, m.Check())

		require.NoError(t, m.Set(42, 42))
		assert.Equal(t, []int{42}, slices.Collect(m.Keys()))
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	m := enumerate(3)

	v, err := m.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = m.Get(5)
	require.ErrorIs(t, err, errors.ErrKeyNotFound)

	assert.Equal(t, -1, m.GetOrElse(5, -1))
	assert.Equal(t, 1, m.GetOrElse(1, -1))
	assert.True(t, m.Contains(0))
	assert.False(t, m.Contains(3))
}

func TestPop(t *testing.T) {
	t.Parallel()

	t.Run("pops keys", func(t *testing.T) {
		t.Parallel()

		m := enumerate(10)
		for i := range 10 {
			v, err := m.Pop(i)
			require.NoError(t, err)
			assert.Equal(t, i, v)
			require.NoError(t, m.Check())
		}

		_, err := m.Pop(0)
		require.ErrorIs(t, err, errors.ErrKeyNotFound)
	})

	t.Run("pops last items", func(t *testing.T) {
		t.Parallel()

		m := enumerate(10)
		for i := 9; i >= 0; i-- {
			k, v, err := m.PopItem(true)
			require.NoError(t, err)
			assert.Equal(t, i, k)
			assert.Equal(t, i, v)
			require.NoError(t, m.Check())
		}

		_, _, err := m.PopItem(true)
		require.ErrorIs(t, err, errors.ErrEmpty)
		require.ErrorIs(t, err, errors.ErrKeyNotFound)
	})

	t.Run("pops first items", func(t *testing.T) {
		t.Parallel()

		m := enumerate(10)
		for i := range 10 {
			k, v, err := m.PopItem(false)
			require.NoError(t, err)
			assert.Equal(t, i, k)
			assert.Equal(t, i, v)
		}

		assert.Equal(t, 0, m.Len())
	})

	t.Run("pops by position", func(t *testing.T) {
		t.Parallel()

		m := enumerate(5)
		k, v, err := m.PopAt(2)
		require.NoError(t, err)
		assert.Equal(t, 2, k)
		assert.Equal(t, 2, v)
		assert.False(t, m.Contains(2))

		_, _, err = m.PopAt(10)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
		require.NoError(t, m.Check())
	})
}

func TestSetDefault(t *testing.T) {
	t.Parallel()

	m := sortedmaps.NewOrderedMap[int, bool]()

	v, err := m.SetDefault(0, false)
	require.NoError(t, err)
	assert.False(t, v)

	v, err = m.SetDefault(1, true)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = m.SetDefault(0, true)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	m := sortedmaps.NewOrderedMap[string, int]()
	require.NoError(t, m.Update(maps.All(map[string]int{"a": 1})))
	require.NoError(t, m.Update(func(yield func(string, int) bool) {
		_ = yield("b", 2) && yield("c", 3) && yield("a", 4)
	}))

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(m.Keys()))
	assert.Equal(t, []int{4, 2, 3}, slices.Collect(m.Values()))
}

func TestPositional(t *testing.T) {
	t.Parallel()

	m := enumerate(10)

	t.Run("keys by position", func(t *testing.T) {
		t.Parallel()

		for i := range 10 {
			k, err := m.KeyAt(i)
			require.NoError(t, err)
			assert.Equal(t, i, k)
		}

		last, err := m.KeyAt(-1)
		require.NoError(t, err)
		assert.Equal(t, 9, last)

		_, err = m.KeyAt(10)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	})

	t.Run("values and items by position", func(t *testing.T) {
		t.Parallel()

		v, err := m.ValueAt(3)
		require.NoError(t, err)
		assert.Equal(t, 3, v)

		item, err := m.ItemAt(-2)
		require.NoError(t, err)
		assert.Equal(t, sortedmaps.Item[int, int]{Key: 8, Value: 8}, item)
		assert.Equal(t, "8: 8", item.String())

		_, err = m.ValueAt(-11)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	})

	t.Run("slices", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []int{0, 1, 2}, m.KeysSlice(sortedlist.Until(3)))
		assert.Equal(t, []int{0, 1, 2}, m.ValuesSlice(sortedlist.Until(3)))
		assert.Equal(t, []sortedmaps.Item[int, int]{{Key: 9, Value: 9}, {Key: 7, Value: 7}},
			m.ItemsSlice(sortedlist.Reversed().WithStep(-2))[:2])
		assert.Empty(t, m.KeysSlice(sortedlist.Span(5, 2)))
	})

	t.Run("index of key", func(t *testing.T) {
		t.Parallel()

		i, err := m.IndexOf(6)
		require.NoError(t, err)
		assert.Equal(t, 6, i)

		_, err = m.IndexOf(60)
		require.ErrorIs(t, err, errors.ErrKeyNotFound)
	})

	t.Run("first and last", func(t *testing.T) {
		t.Parallel()

		first, ok := m.First().Get()
		require.True(t, ok)
		assert.Equal(t, 0, first.Key)

		last, ok := m.Last().Get()
		require.True(t, ok)
		assert.Equal(t, 9, last.Key)

		empty := sortedmaps.NewOrderedMap[int, int]()
		assert.True(t, empty.First().Empty())
		assert.True(t, empty.Last().Empty())
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	m := enumerate(10)
	require.NoError(t, m.Delete(3))

	clone := m.Clone()
	assert.True(t, m.Equal(clone, func(a, b int) bool { return a == b }))
	require.NoError(t, clone.Check())

	require.NoError(t, clone.Set(100, 100))
	require.NoError(t, clone.Delete(0))

	assert.Equal(t, []int{0, 1, 2, 4, 5, 6, 7, 8, 9}, slices.Collect(m.Keys()))
	assert.Equal(t, []int{1, 2, 4, 5, 6, 7, 8, 9, 100}, slices.Collect(clone.Keys()))
	assert.False(t, m.Equal(clone, func(a, b int) bool { return a == b }))

	t.Run("clone keeps counting after existing keys", func(t *testing.T) {
		t.Parallel()

		fresh := enumerate(3).Clone()
		require.NoError(t, fresh.Set(-1, -1))
		assert.Equal(t, []int{0, 1, 2, -1}, slices.Collect(fresh.Keys()))
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	a := sortedmaps.NewOrderedMap[string, int]()
	b := sortedmaps.NewOrderedMap[string, int]()

	require.NoError(t, a.Set("x", 1))
	require.NoError(t, a.Set("y", 2))
	require.NoError(t, b.Set("y", 2))
	require.NoError(t, b.Set("x", 1))

	assert.False(t, a.Equal(b, eq), "same entries in a different order")

	require.NoError(t, b.Delete("y"))
	require.NoError(t, b.Set("y", 3))
	assert.False(t, a.Equal(b, eq), "different values")

	require.NoError(t, b.Set("y", 2))
	assert.True(t, a.Equal(b, eq))
}

func TestFunctional(t *testing.T) {
	t.Parallel()

	m := enumerate(10)
	even := func(_ int, v int) bool { return v%2 == 0 }

	assert.True(t, m.Exists(even))
	assert.False(t, m.ForAll(even))
	assert.True(t, m.ForAll(func(k, v int) bool { return k == v }))

	found, ok := m.FindFirst(func(k, _ int) bool { return k > 4 }).Get()
	require.True(t, ok)
	assert.Equal(t, 5, found.Key)
	assert.True(t, m.FindFirst(func(k, _ int) bool { return k > 40 }).Empty())

	evens := m.Filter(even)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, slices.Collect(evens.Keys()))
	require.NoError(t, evens.Check())

	odds := m.FilterNot(even)
	assert.Equal(t, []int{1, 3, 5, 7, 9}, slices.Collect(odds.Keys()))

	sum := 0
	m.ForEach(func(_, v int) { sum += v })
	assert.Equal(t, 45, sum)
}
