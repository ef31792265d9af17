package array

import "slices"

// Sort returns a new sequence ordered by compare, which must return a
// negative, zero, or positive integer for less-than, equal, and
// greater-than. The sort is stable: elements compared equal keep their
// relative order from the input. The input slice is never reordered.
//
// compare is expected to be a consistent total preorder. An inconsistent
// comparator leaves the output order unspecified, but Sort still returns a
// permutation of the input and never panics.
func Sort[T any](compare func(T, T) int, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	slices.SortStableFunc(out, compare)
	return out
}
