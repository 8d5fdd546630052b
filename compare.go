package staticvec

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same number of elements with
// equal values at every position.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.data, b.data)
}

// EqualFunc is Equal with a caller-supplied element equality, for
// element types that are not comparable.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.data, b.data, eq)
}

// Compare orders a and b lexicographically over their live sequences:
// -1 if a sorts before b, 0 if equal, +1 if after. A proper prefix
// sorts before its extension. The derived relations (>, <=, >=) follow
// from the sign.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.data, b.data)
}

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	return slices.CompareFunc(a.data, b.data, compare)
}

// Less reports whether a sorts strictly before b lexicographically.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return slices.Compare(a.data, b.data) < 0
}
