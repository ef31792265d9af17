package array

import (
	"github.com/graeme-lockley/mn-Data.Native.Array/maybe"
)

// Length returns the number of elements in the sequence. Always >= 0.
func Length[T any](xs []T) int {
	return len(xs)
}

// At returns Just the element at index when 0 <= index < len(xs), and
// Nothing otherwise. Negative indices are always out of range here; only
// Slice honors the counted-from-the-end convention.
func At[T any](xs []T, index int) maybe.Maybe[T] {
	if index < 0 || index >= len(xs) {
		return maybe.Nothing[T]()
	}
	return maybe.Just(xs[index])
}

// Append returns a new sequence holding the elements of xs followed by item.
// The input is never written through; the result is freshly allocated.
func Append[T any](xs []T, item T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs...)
	return append(out, item)
}

// Prepend returns a new sequence holding item followed by the elements of xs.
func Prepend[T any](item T, xs []T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, item)
	return append(out, xs...)
}

// Concat returns a new sequence holding the elements of xs followed by the
// elements of ys.
func Concat[T any](xs, ys []T) []T {
	out := make([]T, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}

// Slice returns a fresh copy of the sub-sequence from start (inclusive) to
// end (exclusive). Negative indices count from the end, -1 being the last
// element. Indices are clamped to the sequence bounds; an inverted or
// out-of-range window yields an empty sequence. Slice never panics.
func Slice[T any](xs []T, start, end int) []T {
	lo := clampIndex(start, len(xs))
	hi := clampIndex(end, len(xs))
	if lo >= hi {
		return []T{}
	}
	out := make([]T, hi-lo)
	copy(out, xs[lo:hi])
	return out
}

// clampIndex resolves a possibly-negative index against length n and clamps
// it into [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Range returns consecutive integers starting at lower, excluding upper.
// Ascending when lower < upper, descending when lower > upper, empty when
// they are equal.
func Range(lower, upper int) []int {
	if lower < upper {
		out := make([]int, 0, upper-lower)
		for i := lower; i < upper; i++ {
			out = append(out, i)
		}
		return out
	}
	out := make([]int, 0, lower-upper)
	for i := lower; i > upper; i-- {
		out = append(out, i)
	}
	return out
}
