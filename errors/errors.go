// Package errors defines the error taxonomy shared by every container in this module.
//
// Callers match errors with the standard library's errors.Is; every error returned by
// a container wraps exactly one of the sentinels below, annotated with the offending
// key, index or value.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned when an exact lookup or delete targets an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmpty is returned when an operation needs at least one entry.
	ErrEmpty = fmt.Errorf("%w: container is empty", ErrKeyNotFound)

	// ErrNoKeyAbove is returned by an upward nearest-key lookup when every key is
	// smaller than the request.
	ErrNoKeyAbove = fmt.Errorf("%w: no key above", ErrKeyNotFound)

	// ErrNoKeyBelow is returned by a downward nearest-key lookup when every key is
	// greater than the request.
	ErrNoKeyBelow = fmt.Errorf("%w: no key below", ErrKeyNotFound)

	// ErrNotMember is returned when a set is asked for the position of a value it doesn't hold.
	ErrNotMember = errors.New("not a member")

	// ErrIndexOutOfRange is returned by positional access past either end.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotImplemented is returned by operations that are meaningless for a container,
	// such as bisecting a segment list. The error is static and never data-dependent.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvariantViolated is returned by consistency checks. It always indicates a defect.
	ErrInvariantViolated = errors.New("invariant violated")

	// ErrUnsupportedType is returned when a key cannot be hashed.
	ErrUnsupportedType = errors.New("unsupported type for hashing")
)

// KeyNotFound annotates ErrKeyNotFound with the missing key.
func KeyNotFound(key any) error {
	return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// IndexOutOfRange annotates ErrIndexOutOfRange with the index and the container length.
func IndexOutOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}

// NotMember annotates ErrNotMember with the value that was looked up.
func NotMember(value any) error {
	return fmt.Errorf("%w: %v", ErrNotMember, value)
}

// Violation annotates ErrInvariantViolated with a formatted description.
func Violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolated, fmt.Sprintf(format, args...))
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Consistency checks use it to report every violation they find instead of
// stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there is
// exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
