package staticvec

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned when an operation would require more live
	// elements than the vector's fixed capacity allows.
	ErrCapacity = errors.New("staticvec: capacity exceeded")

	// ErrOutOfRange is returned by validated accessors when the index is
	// outside the live range [0, Len()).
	ErrOutOfRange = errors.New("staticvec: index out of range")
)

// Vector is a fixed-capacity ordered container. Live elements occupy the
// prefix [0, Len()) of a backing array sized at construction; slots past
// the live range are unreachable. The zero value is an empty vector of
// capacity 0.
//
// Unchecked operations (Get, Set, Front, Back, PopBack) panic on misuse
// instead of returning an error; callers take on the precondition.
type Vector[T any] struct {
	// len(data) is the live count, cap(data) the fixed capacity.
	data []T
}

// ---------------- Construction ---------------- //

// New returns an empty vector that can hold up to capacity elements.
// This is the only point at which the vector allocates.
// Panics if capacity is negative.
func New[T any](capacity int) Vector[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("staticvec: negative capacity %d", capacity))
	}
	return Vector[T]{data: make([]T, 0, capacity)}
}

// Wrap returns an empty vector that uses buf as its storage, with
// capacity len(buf). No allocation is performed, so a stack array can
// back the vector:
//
//	var buf [8]Order
//	v := staticvec.Wrap(buf[:])
//
// The vector takes ownership of buf; the caller must not read or write
// it afterwards.
func Wrap[T any](buf []T) Vector[T] {
	return Vector[T]{data: buf[0:0:len(buf)]}
}

// FromSlice returns a vector of the given capacity holding a copy of
// src, in order. Fails with ErrCapacity before copying anything if src
// has more than capacity elements.
func FromSlice[T any](capacity int, src []T) (Vector[T], error) {
	if len(src) > capacity {
		return Vector[T]{}, fmt.Errorf("%w: %d elements into capacity %d", ErrCapacity, len(src), capacity)
	}
	v := New[T](capacity)
	v.data = append(v.data, src...)
	return v, nil
}

// Of is the literal-list form of FromSlice.
func Of[T any](capacity int, values ...T) (Vector[T], error) {
	return FromSlice(capacity, values)
}

// Repeat returns a vector of the given capacity holding count copies of
// value. Fails with ErrCapacity if count exceeds capacity.
func Repeat[T any](capacity, count int, value T) (Vector[T], error) {
	if count > capacity {
		return Vector[T]{}, fmt.Errorf("%w: %d elements into capacity %d", ErrCapacity, count, capacity)
	}
	v := New[T](capacity)
	for i := 0; i < count; i++ {
		v.data = append(v.data, value)
	}
	return v, nil
}

// Clone returns an independent deep copy with the same capacity and
// contents. Mutating either vector never affects the other.
func (v *Vector[T]) Clone() Vector[T] {
	data := make([]T, len(v.data), cap(v.data))
	copy(data, v.data)
	return Vector[T]{data: data}
}

// ---------------- Queries ---------------- //

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int { return cap(v.data) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return len(v.data) == 0 }

// ---------------- Element Access ---------------- //

// At returns the element at index i, or ErrOutOfRange if i is outside
// the live range.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, len(v.data))
	}
	return v.data[i], nil
}

// SetAt replaces the element at index i, or returns ErrOutOfRange if i
// is outside the live range.
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, len(v.data))
	}
	v.data[i] = value
	return nil
}

// Get returns the element at index i without validating against the
// live range. Panics if i is out of bounds.
func (v *Vector[T]) Get(i int) T { return v.data[i] }

// Set replaces the element at index i without validating against the
// live range. Panics if i is out of bounds.
func (v *Vector[T]) Set(i int, value T) { v.data[i] = value }

// Front returns the first element. Panics if the vector is empty.
func (v *Vector[T]) Front() T { return v.data[0] }

// Back returns the last element. Panics if the vector is empty.
func (v *Vector[T]) Back() T { return v.data[len(v.data)-1] }

// Data returns the live range as a slice for bulk or interop access.
// The slice aliases the vector's storage and is invalidated by any
// mutation that changes Len.
func (v *Vector[T]) Data() []T { return v.data }

// ---------------- Mutation ---------------- //

// PushBack appends value at the logical end. Returns ErrCapacity,
// before writing anything, if the vector is already full.
func (v *Vector[T]) PushBack(value T) error {
	if len(v.data) == cap(v.data) {
		return fmt.Errorf("%w: full at %d", ErrCapacity, cap(v.data))
	}
	v.data = append(v.data, value)
	return nil
}

// PopBack removes and returns the last element, zeroing its slot so no
// reference is retained. Panics if the vector is empty.
func (v *Vector[T]) PopBack() T {
	n := len(v.data) - 1
	value := v.data[n]
	var zero T
	v.data[n] = zero
	v.data = v.data[:n]
	return value
}

// Clear removes all live elements, zeroing their slots. A no-op on an
// empty vector.
func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

// ---------------- Swap / Move / Copy ---------------- //

// Swap exchanges the complete state of two vectors: storage, size, and
// therefore capacity. Never fails and never copies elements.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
}

// MoveFrom transfers other's contents into v without copying elements:
// v's previous contents are discarded and other is left empty with its
// storage intact (now holding v's old backing array). Self-move is a
// no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Clear()
	v.Swap(other)
}

// CopyFrom replaces v's contents with a deep copy of other, adopting
// other's capacity. The copy is built aside and swapped in whole.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	tmp := other.Clone()
	v.Swap(&tmp)
}
