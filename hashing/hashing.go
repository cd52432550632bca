// Package hashing computes stable 64-bit hashes of keys.
//
// The hash-ordered containers (maps.NewIndexableMap, set.IndexableSet) use the
// hash as the ordering key, so the hash must be deterministic across processes
// and copies. xxh3 is unseeded here for exactly that reason.
package hashing

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"

	"github.com/OneOfOne/xxhash"
	"github.com/amp-labs/sortedcollections/errors"
	"github.com/zeebo/xxh3"
)

// HashFunc reduces a key to a 64-bit hash.
type HashFunc[T any] func(value T) (uint64, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// XXH3 returns the xxh3 hash of the given Hashable.
func XXH3(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// XXHash64 hashes like Hash64 but with the classic xxHash64 algorithm, for orders
// that must match hashes computed elsewhere with xxHash64.
func XXHash64[T comparable](value T) (uint64, error) {
	hashable, err := Of(value)
	if err != nil {
		return 0, err
	}

	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// Hash64 hashes any comparable value. Values implementing Hashable hash
// themselves; strings, byte-free numeric kinds and bools are supported natively.
// Anything else fails with errors.ErrUnsupportedType.
func Hash64[T comparable](value T) (uint64, error) {
	hashable, err := Of(value)
	if err != nil {
		return 0, err
	}

	return XXH3(hashable)
}

// Of adapts a comparable value to Hashable.
//
//nolint:cyclop
func Of[T comparable](value T) (Hashable, error) {
	switch typed := any(value).(type) {
	case Hashable:
		return typed, nil
	case string:
		return HashableString(typed), nil
	case int:
		return HashableInt64(typed), nil
	case int8:
		return HashableInt64(typed), nil
	case int16:
		return HashableInt64(typed), nil
	case int32:
		return HashableInt64(typed), nil
	case int64:
		return HashableInt64(typed), nil
	case uint:
		return HashableUint64(typed), nil
	case uint8:
		return HashableUint64(typed), nil
	case uint16:
		return HashableUint64(typed), nil
	case uint32:
		return HashableUint64(typed), nil
	case uint64:
		return HashableUint64(typed), nil
	case uintptr:
		return HashableUint64(typed), nil
	case float32:
		return HashableFloat64(typed), nil
	case float64:
		return HashableFloat64(typed), nil
	case bool:
		return HashableBool(typed), nil
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnsupportedType, typed)
	}
}

type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

// HashableInt64 hashes every signed integer width identically, so int(3) and
// int8(3) collide on purpose.
type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec
}

type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(u))
}

// HashableFloat64 normalizes -0 to +0 so that values which compare equal hash equally.
type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	v := float64(f)
	if v == 0 {
		v = 0
	}

	return writeUint64(h, math.Float64bits(v))
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	var bt byte
	if b {
		bt = 1
	}

	_, err := h.Write([]byte{bt})

	return err
}

func writeUint64(h hash.Hash, v uint64) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], v)

	_, err := h.Write(buf[:])

	return err
}
