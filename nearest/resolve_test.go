package nearest

import (
	"math"
	"testing"

	"github.com/amp-labs/sortedcollections/compare"
	"github.com/amp-labs/sortedcollections/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	keys := FromSlice([]int{0, 3}, compare.Ordered[int]())

	tests := []struct {
		name     string
		request  int
		mode     Rounding
		expected int
		err      error
	}{
		{name: "below all, up", request: -1, mode: Up, expected: 0},
		{name: "below all, down", request: -1, mode: Down, err: errors.ErrNoKeyBelow},
		{name: "below all, nearest", request: -1, mode: Nearest, expected: 0},
		{name: "exact, up", request: 0, mode: Up, expected: 0},
		{name: "exact, down", request: 3, mode: Down, expected: 3},
		{name: "between, up", request: 1, mode: Up, expected: 3},
		{name: "between, down", request: 1, mode: Down, expected: 0},
		{name: "between, nearest to lower", request: 1, mode: Nearest, expected: 0},
		{name: "between, nearest to upper", request: 2, mode: Nearest, expected: 3},
		{name: "between, down near upper", request: 2, mode: Down, expected: 0},
		{name: "above all, up", request: 4, mode: Up, err: errors.ErrNoKeyAbove},
		{name: "above all, down", request: 4, mode: Down, expected: 3},
		{name: "above all, nearest", request: 4, mode: Nearest, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(keys, tt.request, tt.mode, compare.Ordered[int](), Numeric[int])
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.ErrorIs(t, err, errors.ErrKeyNotFound)
				assert.NotErrorIs(t, err, errors.ErrEmpty)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveTieBreaksLow(t *testing.T) {
	t.Parallel()

	keys := FromSlice([]int{0, 2, 10}, compare.Ordered[int]())

	got, err := Resolve(keys, 1, Nearest, compare.Ordered[int](), Numeric[int])
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = Resolve(keys, 6, Nearest, compare.Ordered[int](), Numeric[int])
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestResolveEmpty(t *testing.T) {
	t.Parallel()

	keys := FromSlice([]float64{}, compare.Ordered[float64]())

	for _, mode := range []Rounding{Nearest, Up, Down} {
		_, err := Resolve(keys, 1.5, mode, compare.Ordered[float64](), Numeric[float64])
		require.ErrorIs(t, err, errors.ErrEmpty, mode.String())
		require.ErrorIs(t, err, errors.ErrKeyNotFound)
	}
}

func TestResolveUnknownRounding(t *testing.T) {
	t.Parallel()

	keys := FromSlice([]int{1}, compare.Ordered[int]())

	_, err := Resolve(keys, 1, Rounding(7), compare.Ordered[int](), Numeric[int])
	require.ErrorIs(t, err, ErrUnknownRounding)
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 3.0, Numeric(2, 5), 0)
	assert.InDelta(t, 3.0, Numeric(5, 2), 0)
	assert.InDelta(t, 3.0, Numeric[uint8](2, 5), 0)
	assert.InDelta(t, 0.5, Numeric(1.0, 1.5), 1e-12)
	assert.InDelta(t, 0.5, Numeric[float32](-0.25, 0.25), 1e-6)

	t.Run("signed extremes do not wrap", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 255.0, Numeric[int8](math.MinInt8, math.MaxInt8), 0)
		assert.InDelta(t, 128.0, Numeric[int8](0, math.MinInt8), 0)
		assert.InDelta(t, math.Exp2(64), Numeric[int64](math.MinInt64, math.MaxInt64), 0)
		assert.InDelta(t, math.Exp2(64), Numeric[uint64](0, math.MaxUint64), 0)
	})
}

func TestNumericCloser(t *testing.T) {
	t.Parallel()

	assert.True(t, NumericCloser[int8](math.MaxInt8, math.MinInt8, 0))
	assert.False(t, NumericCloser[int8](1, -1, 0), "a tie is not closer")
	assert.True(t, NumericCloser[int64](math.MaxInt64, math.MinInt64, 0))
	assert.False(t, NumericCloser[uint64](math.MaxUint64, 0, math.MaxUint64/2))
	assert.True(t, NumericCloser(2.5, 0.0, 1.5))
}

func TestResolveExtremeKeys(t *testing.T) {
	t.Parallel()

	keys := FromSlice([]int64{math.MinInt64, math.MaxInt64}, compare.Ordered[int64]())

	got, err := ResolveFunc(keys, 0, Nearest, compare.Ordered[int64](), NumericCloser[int64])
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	got, err = ResolveFunc(keys, -1, Nearest, compare.Ordered[int64](), NumericCloser[int64])
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got)
}

func TestRounding(t *testing.T) {
	t.Parallel()

	for _, r := range []Rounding{Nearest, Up, Down} {
		parsed, err := ParseRounding(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
		assert.True(t, r.Valid())
	}

	_, err := ParseRounding("sideways")
	require.ErrorIs(t, err, ErrUnknownRounding)
	assert.False(t, Rounding(-1).Valid())
	assert.Equal(t, "Rounding(9)", Rounding(9).String())
	assert.Equal(t, Nearest, Rounding(0))
}
