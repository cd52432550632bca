package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy(t *testing.T) {
	t.Parallel()

	t.Run("nearest failures are key-not-found", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, ErrEmpty, ErrKeyNotFound)
		require.ErrorIs(t, ErrNoKeyAbove, ErrKeyNotFound)
		require.ErrorIs(t, ErrNoKeyBelow, ErrKeyNotFound)
	})

	t.Run("directions are distinguishable from empty", func(t *testing.T) {
		t.Parallel()

		assert.NotErrorIs(t, ErrNoKeyAbove, ErrEmpty)
		assert.NotErrorIs(t, ErrNoKeyBelow, ErrEmpty)
		assert.NotErrorIs(t, ErrNoKeyAbove, ErrNoKeyBelow)
	})

	t.Run("annotations keep the sentinel", func(t *testing.T) {
		t.Parallel()

		err := KeyNotFound("alice")
		require.ErrorIs(t, err, ErrKeyNotFound)
		assert.Contains(t, err.Error(), "alice")

		err = IndexOutOfRange(12, 3)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Contains(t, err.Error(), "index 12, length 3")

		err = NotMember(42)
		require.ErrorIs(t, err, ErrNotMember)
		assert.Contains(t, err.Error(), "42")

		err = Violation("key %q missing from index", "bob")
		require.ErrorIs(t, err, ErrInvariantViolated)
		assert.Contains(t, err.Error(), `key "bob" missing from index`)
	})
}

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
		assert.NoError(t, c.GetError())
	})

	t.Run("returns single error as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		c.Add(err1)

		assert.Equal(t, err1, c.GetError())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		err2 := errors.New("error 2") //nolint:err113

		c.Add(err1)
		c.Add(nil)
		c.Add(err2)

		assert.Equal(t, 2, c.Len())

		err := c.GetError()
		require.ErrorIs(t, err, err1)
		require.ErrorIs(t, err, err2)
	})

	t.Run("reuse after clear", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("first batch")) //nolint:err113
		c.Clear()
		assert.False(t, c.HasError())

		c.Add(errors.New("second batch")) //nolint:err113
		require.Error(t, c.GetError())
		assert.Contains(t, c.GetError().Error(), "second batch")
	})
}
