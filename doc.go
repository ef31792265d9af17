// Package array provides pure, immutable helper functions over ordered,
// fixed-length, zero-indexed sequences.
//
// # Overview
//
// array is a foundational utility package intended to be composed into
// higher-level wrappers. It exposes a small set of well-known sequence
// transformations - length, element access, slicing, concatenation, mapping,
// filtering, stable sorting, zipping, joining, and a Nil/Cons-style
// reduction - each implemented as a standalone generic function.
//
// # Core Concepts
//
// Every operation shares three guarantees:
//
//   - Purity: same inputs, same outputs, no observable side effects.
//   - Immutability: no operation writes through an input slice; results are
//     freshly allocated.
//   - Totality: no operation panics or returns an error. Out-of-range
//     indices, inverted ranges, and empty inputs resolve to an empty or
//     absent result.
//
// Partial operations (At, FindMap) return a maybe.Maybe rather than a zero
// value or an ok-bool pair, preserving the "never nil" convention at the
// package boundary.
//
// # Usage Example
//
//	evens := array.Filter(func(n int) bool { return n%2 == 0 }, nums)
//	doubled := array.Map(func(n int) int { return n * 2 }, evens)
//	first := array.At(doubled, 0) // maybe.Maybe[int]
//
// Partial application is available through the combinators in fp.go:
//
//	double := array.Curry2(array.Map[int, int])(func(n int) int { return n * 2 })
//	doubled := double(nums)
//
// # Composition
//
// For named, observable composition of transformations over a single element
// type, see Chain, which wires stages built from these operations into a
// sequence with metrics, tracing, and event hooks. The core functions
// themselves carry no observability and no configuration.
//
// # Concurrency
//
// All operations are synchronous and reentrant. The package introduces no
// mutation hazard of its own: concurrent callers may share input slices
// freely provided external code does not mutate them mid-call.
package array
