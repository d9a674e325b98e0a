package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether both vectors hold equal elements in the same order.
func Equal[T comparable](lhs, rhs *Vector[T]) bool {
	return slices.Equal(lhs.Data(), rhs.Data())
}

func EqualFunc[T any](lhs, rhs *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(lhs.Data(), rhs.Data(), eq)
}

// Compare orders vectors lexicographically: the first differing element
// decides, a strict prefix is less than the longer vector.
func Compare[T constraints.Ordered](lhs, rhs *Vector[T]) int {
	return slices.Compare(lhs.Data(), rhs.Data())
}

func CompareFunc[T any](lhs, rhs *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(lhs.Data(), rhs.Data(), cmp)
}

func Less[T constraints.Ordered](lhs, rhs *Vector[T]) bool {
	return Compare(lhs, rhs) < 0
}
