// Package optional holds values that may be absent. The containers use it for slice
// bounds that may be omitted and for peeking at the first or last entry of a
// possibly empty container.
package optional

import "fmt"

// Value is either Some(v) or None. The zero Value is None.
type Value[T any] struct {
	value   T
	present bool
}

// Some wraps v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.present
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.present
}

// Empty reports whether the value is absent.
func (o Value[T]) Empty() bool {
	return !o.present
}

// GetOrElse returns the value, or fallback when it is absent.
func (o Value[T]) GetOrElse(fallback T) T { //nolint:ireturn
	if !o.present {
		return fallback
	}

	return o.value
}

func (o Value[T]) String() string {
	if !o.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
