package array

import (
	"github.com/graeme-lockley/mn-Data.Native.Array/maybe"
)

// FindMap applies fn to elements left to right and returns the first Just
// result. It short-circuits: fn is not evaluated on any element after the
// first success. An empty sequence, or one with no Just result, yields
// Nothing.
func FindMap[T, U any](xs []T, fn func(T) maybe.Maybe[U]) maybe.Maybe[U] {
	for _, x := range xs {
		if r := fn(x); r.IsJust() {
			return r
		}
	}
	return maybe.Nothing[U]()
}
