// Package zero provides the zero value of a type parameter as an expression.
package zero

// Value returns the zero value of T.
//
// Example:
//
//	func (m *Mapping[K, V, O]) Get(key K) (V, error) {
//	    ...
//	    return zero.Value[V](), errors.KeyNotFound(key)
//	}
func Value[T any]() T { //nolint:ireturn
	var v T

	return v
}
