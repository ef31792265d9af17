package array

import (
	"fmt"
	"strings"
)

// Map returns a new sequence with fn applied to every element. The result
// has the same length as the input and preserves element order.
func Map[T, U any](fn func(T) U, xs []T) []U {
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// Filter returns the sub-sequence of elements for which pred is true,
// preserving their relative order from the input.
func Filter[T any](pred func(T) bool, xs []T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// ZipWith combines two sequences element-wise with fn. The result length is
// the shorter of the two inputs; extra elements of the longer sequence are
// discarded.
func ZipWith[A, B, C any](fn func(A, B) C, xs []A, ys []B) []C {
	n := min(len(xs), len(ys))
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = fn(xs[i], ys[i])
	}
	return out
}

// Join renders each element with its canonical string representation and
// concatenates them with sep between consecutive elements. An empty
// sequence yields the empty string.
func Join[T any](xs []T, sep string) string {
	if len(xs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(fmt.Sprint(x))
	}
	return b.String()
}
