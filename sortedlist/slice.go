package sortedlist

import (
	"iter"

	"github.com/amp-labs/sortedcollections/optional"
)

// Slice selects positions the way an extended slice expression does: a half-open
// [Start, Stop) range walked with Step. Missing bounds default to the whole list
// in the walking direction, negative bounds count from the end, out of range
// bounds are clamped, and a zero Step means 1.
type Slice struct {
	Start optional.Value[int]
	Stop  optional.Value[int]
	Step  int
}

// Span selects [start, stop).
func Span(start, stop int) Slice {
	return Slice{Start: optional.Some(start), Stop: optional.Some(stop)}
}

// From selects [start, end).
func From(start int) Slice {
	return Slice{Start: optional.Some(start)}
}

// Until selects [0, stop).
func Until(stop int) Slice {
	return Slice{Stop: optional.Some(stop)}
}

// Reversed selects every position from last to first.
func Reversed() Slice {
	return Slice{Step: -1}
}

// WithStep returns a copy of s walking with step.
func (s Slice) WithStep(step int) Slice {
	s.Step = step

	return s
}

// Indices resolves the slice against a sequence of the given length. The returned
// bounds are always within [-1, length], and walking from start towards stop by
// step never leaves the sequence.
func (s Slice) Indices(length int) (start, stop, step int) {
	step = s.Step
	if step == 0 {
		step = 1
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	start = adjust(s.Start, length, lower, upper, step < 0)
	stop = adjust(s.Stop, length, lower, upper, step > 0)

	return start, stop, step
}

// Len returns how many positions the slice selects in a sequence of the given length.
func (s Slice) Len(length int) int {
	start, stop, step := s.Indices(length)

	switch {
	case step > 0 && start < stop:
		return (stop-start-1)/step + 1
	case step < 0 && stop < start:
		return (start-stop-1)/(-step) + 1
	default:
		return 0
	}
}

// Positions yields the selected positions of a sequence of the given length, in
// walking order.
func (s Slice) Positions(length int) iter.Seq[int] {
	return func(yield func(int) bool) {
		start, _, step := s.Indices(length)
		n := s.Len(length)

		for i, pos := 0, start; i < n; i, pos = i+1, pos+step {
			if !yield(pos) {
				return
			}
		}
	}
}

// adjust resolves one bound. A missing bound takes upper when it is the far end in
// the walking direction and lower otherwise.
func adjust(bound optional.Value[int], length, lower, upper int, far bool) int {
	value, ok := bound.Get()
	if !ok {
		if far {
			return upper
		}

		return lower
	}

	if value < 0 {
		value += length
		if value < 0 {
			return lower
		}

		return value
	}

	if value >= length {
		return upper
	}

	return value
}
