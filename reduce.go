package array

// Reduce performs a single Nil/Cons case split. An empty sequence resolves
// through onEmpty; otherwise onNonEmpty receives the head element and a
// fresh copy of the tail. This is structural decomposition, not a fold:
// exactly one level is taken apart per call, and recursion, if wanted, is
// the caller's.
func Reduce[T, R any](xs []T, onEmpty func() R, onNonEmpty func(head T, tail []T) R) R {
	if len(xs) == 0 {
		return onEmpty()
	}
	tail := make([]T, len(xs)-1)
	copy(tail, xs[1:])
	return onNonEmpty(xs[0], tail)
}
