package fx

// Identity returns its input unchanged.
func Identity[T any](a T) T {
	return a
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Pipe sends a value through a function: Pipe(x, f) = f(x).
// It reads left to right, the way data flows.
func Pipe[A, B any](a A, f func(A) B) B {
	return f(a)
}

// Pipe2 sends a value through two functions in order.
func Pipe2[A, B, C any](a A, f func(A) B, g func(B) C) C {
	return g(f(a))
}

// Pipe3 sends a value through three functions in order.
func Pipe3[A, B, C, D any](a A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(a)))
}

// Curry turns a two-argument function into a chain of one-argument functions.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}
