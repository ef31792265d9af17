// Package maybe provides a two-variant optional value type.
//
// Maybe[T] replaces nil-based absence signaling with an explicit sum type:
// a value is either Nothing (absent) or Just(v) (present). Just always wraps
// a concrete value; there is no nil-valued intermediate state. The zero value
// of Maybe[T] is Nothing, so an uninitialized Maybe is safe to use.
//
// The array package returns Maybe from its partial operations (At, FindMap)
// rather than a zero value, an error, or an ok-bool pair.
package maybe

import "fmt"

// Maybe holds either nothing or exactly one value of type T.
type Maybe[T any] struct {
	value T
	just  bool
}

// Nothing returns the absent variant.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Just wraps a concrete value in the present variant.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, just: true}
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// IsNothing reports whether the value is absent.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Get returns the wrapped value and true when present, or the zero value
// and false when absent.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// FromMaybe returns the wrapped value when present, or fallback when absent.
func (m Maybe[T]) FromMaybe(fallback T) T {
	if m.just {
		return m.value
	}
	return fallback
}

// Map applies fn to the wrapped value when present. Nothing maps to Nothing.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.just {
		return Just(fn(m.value))
	}
	return Nothing[U]()
}

// String renders the variant for debugging output.
func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}
