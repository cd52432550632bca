package maps

import (
	"github.com/amp-labs/sortedcollections/errors"
)

// Check verifies that the store and the ordering index are in bijection: every
// stored key has exactly one index entry carrying its recorded ordering key, and the
// index holds nothing else. It also runs the index's own structural checks. Each
// violation is logged at error level and all of them are returned joined.
func (m *Mapping[K, V, O]) Check() error {
	var violations errors.Collection

	report := func(err error) {
		if err == nil {
			return
		}

		violations.Add(err)
		m.log().Error("mapping is inconsistent", "ordering", m.ordering.name, "error", err)
	}

	report(m.index.Check())

	if m.index.Len() != len(m.store) {
		report(errors.Violation("index holds %d entries, store holds %d", m.index.Len(), len(m.store)))
	}

	seen := make(map[K]struct{}, len(m.store))

	for t := range m.index.All() {
		ord, key := t.Values()

		if _, dup := seen[key]; dup {
			report(errors.Violation("key %v is indexed more than once", key))

			continue
		}

		seen[key] = struct{}{}

		e, ok := m.store[key]
		if !ok {
			report(errors.Violation("indexed key %v is missing from the store", key))

			continue
		}

		if m.ordering.cmp(e.ord, ord) != 0 {
			report(errors.Violation("key %v is indexed under a stale ordering key", key))
		}
	}

	for key := range m.store {
		if _, ok := seen[key]; !ok {
			report(errors.Violation("stored key %v is missing from the index", key))
		}
	}

	return violations.GetError()
}
