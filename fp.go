package array

// Combinators for partial application. The sequence operations take all of
// their arguments at once in the usual Go style; these helpers recover the
// one-argument-at-a-time call sites that make the operations pleasant to
// compose.

// Comp is left to right function composition. Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument unchanged. It is the left and right identity of
// Comp.
func Iden[A any](a A) A {
	return a
}

// Const accepts a value and returns a function that yields that value
// irrespective of its own argument.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Eq is a curried equality test: Eq(x)(y) is true when x == y.
func Eq[A comparable](x A) func(A) bool {
	return func(y A) bool {
		return x == y
	}
}

// Curry2 converts a two-argument function into a chain of one-argument
// functions.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 converts a three-argument function into a chain of one-argument
// functions.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}
