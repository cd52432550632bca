package nearest

import (
	"math"
	"time"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Distance measures how far apart two keys are. Only the relative size of two
// distances matters.
type Distance[K any] func(a, b K) float64

// Closer reports whether above is strictly closer to request than below.
type Closer[K any] func(above, below, request K) bool

// Numeric is the absolute difference of two numbers. Integer differences are taken
// in uint64, so they never wrap even between the extremes of a signed type, and only
// then converted to float64.
func Numeric[K Number](a, b K) float64 {
	if isFloat[K]() {
		return math.Abs(float64(a) - float64(b))
	}

	return float64(span(a, b))
}

// NumericCloser compares distances between numbers exactly. Unlike comparing two
// Numeric results, it never ties two integer distances that differ by less than the
// float64 resolution.
func NumericCloser[K Number](above, below, request K) bool {
	if isFloat[K]() {
		return Numeric(above, request) < Numeric(below, request)
	}

	return span(above, request) < span(below, request)
}

// Time is the absolute duration between two instants, in nanoseconds.
func Time(a, b time.Time) float64 {
	return float64(absDuration(a.Sub(b)))
}

// TimeCloser compares durations between instants exactly, to the nanosecond.
func TimeCloser(above, below, request time.Time) bool {
	return absDuration(above.Sub(request)) < absDuration(request.Sub(below))
}

// CloserByDistance builds a Closer from a distance function.
func CloserByDistance[K any](dist Distance[K]) Closer[K] {
	return func(above, below, request K) bool {
		return dist(above, request) < dist(below, request)
	}
}

// span is |a - b| for integer kinds, computed in uint64.
func span[K Number](a, b K) uint64 {
	if a < b {
		a, b = b, a
	}

	if isSigned[K]() {
		return uint64(int64(a)) - uint64(int64(b)) //nolint:gosec
	}

	return uint64(a) - uint64(b)
}

func isFloat[K Number]() bool {
	one, two := K(1), K(2)

	return one/two != 0
}

func isSigned[K Number]() bool {
	var v K

	return v-1 < v
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}

	return d
}
