package maybe

/*
Maybe represents an optional value: every Maybe is either Just and contains a
value, or Nothing. Use it for possibly missing map entries, optional arguments
and error handling without sentinel values.

# Definition
Maybe, Just, Nothing

# Common helpers
Map, WithDefault, OrElse, ToSlice

# Chaining
AndThen
*/

type Maybe[T any] interface {
	Match() Matcher[T]
	IsJust() bool
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// OrElse returns x if it is a Just, otherwise the fallback.
func OrElse[T any](x, fallback Maybe[T]) Maybe[T] {
	if x.IsJust() {
		return x
	}
	return fallback
}

// ToSlice returns a one-element slice for Just, an empty slice for Nothing.
func ToSlice[T any](x Maybe[T]) []T {
	if x.IsNothing() {
		return []T{}
	}
	var zero T
	return []T{x.WithDefault(zero)}
}

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if x.IsNothing() {
		return Nothing[S]()
	}
	var zero T
	return f(x.WithDefault(zero))
}

func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if x.IsNothing() {
		return Nothing[S]()
	}
	var zero T
	return Just(f(x.WithDefault(zero)))
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern-matching on a Maybe:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         … // use v
//     case m.Nothing():
//         … // value is absent
//     }
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
