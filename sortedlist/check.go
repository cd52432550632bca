package sortedlist

import (
	"github.com/amp-labs/sortedcollections/errors"
)

// Check verifies the structural invariants of the list and returns every violation
// it finds joined into one error wrapping errors.ErrInvariantViolated. A nil result
// means the list is consistent.
func (l *List[T]) Check() error {
	var violations errors.Collection

	if len(l.lists) != len(l.maxes) {
		violations.Add(errors.Violation("%d buckets but %d maxes", len(l.lists), len(l.maxes)))

		return violations.GetError()
	}

	total := 0

	for pos, bucket := range l.lists {
		total += len(bucket)

		if len(bucket) == 0 {
			violations.Add(errors.Violation("bucket %d is empty", pos))

			continue
		}

		if len(bucket) > l.load*2 {
			violations.Add(errors.Violation("bucket %d holds %d values, above twice the load %d",
				pos, len(bucket), l.load))
		}

		if l.cmp(bucket[len(bucket)-1], l.maxes[pos]) != 0 {
			violations.Add(errors.Violation("bucket %d max is stale", pos))
		}
	}

	if total != l.length {
		violations.Add(errors.Violation("length is %d but buckets hold %d values", l.length, total))
	}

	if l.index != nil {
		if len(l.index) != len(l.lists)+1 {
			violations.Add(errors.Violation("positional index covers %d buckets, have %d",
				len(l.index)-1, len(l.lists)))
		} else {
			offset := 0

			for pos, bucket := range l.lists {
				if got := l.index.prefix(pos); got != offset {
					violations.Add(errors.Violation("positional index puts bucket %d at %d, want %d",
						pos, got, offset))
				}

				offset += len(bucket)
			}
		}
	}

	var (
		prev    T
		hasPrev bool
		at      int
	)

	for v := range l.All() {
		if hasPrev && l.cmp(prev, v) > 0 {
			violations.Add(errors.Violation("values at %d and %d are out of order", at-1, at))
		}

		prev, hasPrev = v, true
		at++
	}

	return violations.GetError()
}
