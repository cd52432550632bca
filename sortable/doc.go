// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in the sorted containers.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/sortedcollections/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// [Comparator] turns any Sortable type into the three-way comparator the
// containers are parameterized with.
//
// # Usage
//
//	m := maps.NewSortedMapFunc[sortable.NaturalString, int](
//	    sortable.Comparator[sortable.NaturalString]())
//	_ = m.Set("v10", 10)
//	_ = m.Set("v2", 2)
//
//	// Keys are yielded in natural order: v2, v10
//	for k := range m.Keys() {
//	    fmt.Println(k)
//	}
//
// # Creating Custom Sortable Types
//
//	type Priority struct {
//	    Level int
//	    Name  string
//	}
//
//	func (p Priority) Equals(other Priority) bool {
//	    return p == other
//	}
//
//	func (p Priority) LessThan(other Priority) bool {
//	    if p.Level != other.Level {
//	        return p.Level < other.Level
//	    }
//	    return p.Name < other.Name
//	}
//
// Equals and LessThan must agree: exactly one of a.LessThan(b), a.Equals(b) and
// b.LessThan(a) holds for any pair.
package sortable
