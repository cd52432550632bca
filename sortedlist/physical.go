package sortedlist

import (
	"slices"

	"github.com/amp-labs/sortedcollections/errors"
)

// Slice returns the values selected by s, in walking order.
func (l *List[T]) Slice(s Slice) []T {
	start, _, step := s.Indices(l.length)
	n := s.Len(l.length)
	out := make([]T, 0, n)

	if n == 0 {
		return out
	}

	if step == 1 {
		// Contiguous runs are copied bucket by bucket.
		pos, idx := l.posOf(start)

		for len(out) < n {
			bucket := l.lists[pos][idx:]
			take := min(len(bucket), n-len(out))
			out = append(out, bucket[:take]...)
			pos, idx = pos+1, 0
		}

		return out
	}

	for i := range s.Positions(l.length) {
		pos, idx := l.posOf(i)
		out = append(out, l.lists[pos][idx])
	}

	return out
}

// DeleteSlice removes the values selected by s and returns how many were removed.
func (l *List[T]) DeleteSlice(s Slice) int {
	n := s.Len(l.length)

	switch n {
	case 0:
		return 0
	case l.length:
		l.Clear()

		return n
	}

	positions := slices.Collect(s.Positions(l.length))
	slices.Sort(positions)

	// Deleting from the back keeps the remaining positions valid.
	for _, i := range slices.Backward(positions) {
		pos, idx := l.posOf(i)
		l.delete(pos, idx)
	}

	return n
}

// InsertAt places value at position i without comparing it to its neighbors.
// Positions run from -Len() to Len(); inserting at Len() appends.
func (l *List[T]) InsertAt(i int, value T) error {
	norm := i
	if norm < 0 {
		norm += l.length
	}

	if norm == l.length {
		l.Append(value)

		return nil
	}

	if norm < 0 || norm > l.length {
		return errors.IndexOutOfRange(i, l.length)
	}

	pos, idx := l.posOf(norm)
	l.lists[pos] = slices.Insert(l.lists[pos], idx, value)
	l.maxes[pos] = l.lists[pos][len(l.lists[pos])-1]
	l.expand(pos)
	l.length++

	return nil
}

// Append places value after every other value without comparing it.
func (l *List[T]) Append(value T) {
	if len(l.lists) == 0 {
		l.lists = append(l.lists, []T{value})
		l.maxes = append(l.maxes, value)
		l.index = nil
		l.length = 1

		return
	}

	pos := len(l.lists) - 1
	l.lists[pos] = append(l.lists[pos], value)
	l.maxes[pos] = value
	l.expand(pos)
	l.length++
}

// SetAt replaces the value at position i without comparing it to its neighbors.
func (l *List[T]) SetAt(i int, value T) error {
	norm, err := l.normalize(i)
	if err != nil {
		return err
	}

	pos, idx := l.posOf(norm)
	bucket := l.lists[pos]
	bucket[idx] = value

	if idx == len(bucket)-1 {
		l.maxes[pos] = value
	}

	return nil
}

// Reset replaces the contents with values, kept in the given physical order.
// The slice is not retained.
func (l *List[T]) Reset(values []T) {
	l.Clear()

	if len(values) == 0 {
		return
	}

	buckets := (len(values) + l.load - 1) / l.load
	l.lists = make([][]T, 0, buckets)
	l.maxes = make([]T, 0, buckets)

	for chunk := range slices.Chunk(values, l.load) {
		l.lists = append(l.lists, slices.Clone(chunk))
		l.maxes = append(l.maxes, chunk[len(chunk)-1])
	}

	l.length = len(values)
}
