package seq

import (
	"github.com/npillmayer/fx"
	"github.com/npillmayer/fx/maybe"
)

// Seq is a lazy, restartable sequence of values. Calling a Seq starts a fresh
// pass and returns an iterator for it; a Seq may therefore be consumed any
// number of times. Sequences are finite: every iterator eventually reports
// exhaustion.
type Seq[T any] func() Iterator[T]

// Iterator yields the next element of a running pass, with ok=false once the
// sequence is exhausted.
type Iterator[T any] func() (T, bool)

// Empty returns the sequence with no elements.
func Empty[T any]() Seq[T] {
	return func() Iterator[T] {
		return func() (T, bool) {
			var none T
			return none, false
		}
	}
}

// OfSlice returns a sequence over the elements of xs. The slice is not
// copied; callers hand over ownership.
func OfSlice[T any](xs []T) Seq[T] {
	return func() Iterator[T] {
		i := 0
		return func() (T, bool) {
			if i >= len(xs) {
				var none T
				return none, false
			}
			x := xs[i]
			i++
			return x, true
		}
	}
}

// Unfold generates a sequence from a seed state. f produces the next element
// together with the successor state, or Nothing to end the sequence.
func Unfold[S, T any](f func(S) maybe.Maybe[fx.Pair[T, S]], seed S) Seq[T] {
	return func() Iterator[T] {
		state := seed
		done := false
		return func() (T, bool) {
			var none T
			if done {
				return none, false
			}
			step := f(state)
			if step.IsNothing() {
				done = true
				return none, false
			}
			var zero fx.Pair[T, S]
			x, next := step.WithDefault(zero).Decompose()
			state = next
			return x, true
		}
	}
}

// Iterate starts a fresh pass. A nil Seq iterates as empty.
func (s Seq[T]) Iterate() Iterator[T] {
	if s == nil {
		return Empty[T]()()
	}
	return s()
}

// Each calls f for every element of a fresh pass.
func (s Seq[T]) Each(f func(T)) {
	it := s.Iterate()
	for x, ok := it(); ok; x, ok = it() {
		f(x)
	}
}

// Slice collects a fresh pass into a slice.
func (s Seq[T]) Slice() []T {
	var xs []T
	s.Each(func(x T) {
		xs = append(xs, x)
	})
	return xs
}

// Map applies f lazily to every element.
func Map[T, S any](f func(T) S, s Seq[T]) Seq[S] {
	return func() Iterator[S] {
		it := s.Iterate()
		return func() (S, bool) {
			x, ok := it()
			if !ok {
				var none S
				return none, false
			}
			return f(x), true
		}
	}
}

// Filter keeps the elements satisfying pred, lazily.
func Filter[T any](pred func(T) bool, s Seq[T]) Seq[T] {
	return func() Iterator[T] {
		it := s.Iterate()
		return func() (T, bool) {
			for {
				x, ok := it()
				if !ok {
					var none T
					return none, false
				}
				if pred(x) {
					return x, true
				}
			}
		}
	}
}

// Take limits a sequence to its first n elements.
func Take[T any](n int, s Seq[T]) Seq[T] {
	return func() Iterator[T] {
		it := s.Iterate()
		left := n
		return func() (T, bool) {
			if left <= 0 {
				var none T
				return none, false
			}
			left--
			return it()
		}
	}
}

// Fold reduces a fresh pass left to right.
func Fold[T, S any](f func(S, T) S, zero S, s Seq[T]) S {
	acc := zero
	s.Each(func(x T) {
		acc = f(acc, x)
	})
	return acc
}

// Length counts the elements of a fresh pass.
func Length[T any](s Seq[T]) int {
	n := 0
	s.Each(func(T) {
		n++
	})
	return n
}
