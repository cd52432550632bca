package sortable

// Int sorts numerically. Convert back with int(i).
type Int int

var _ Sortable[Int] = (*Int)(nil)

func (i Int) Equals(other Int) bool {
	return i == other
}

func (i Int) LessThan(other Int) bool {
	return i < other
}
