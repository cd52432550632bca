package sortable

import "github.com/amp-labs/sortedcollections/compare"

// String sorts lexicographically by bytes.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// NaturalString sorts in natural order, so "v2" precedes "v10".
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return s == other
}

func (s NaturalString) LessThan(other NaturalString) bool {
	return compare.Natural(string(s), string(other)) < 0
}
