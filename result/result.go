package result

import (
	"github.com/npillmayer/fx/maybe"
)

/*
A Result is the outcome of a computation that may fail: either Ok with a value,
or Err with an error. It keeps the error close to the value it replaces, which
makes chains of fallible steps compose without intermediate error checks.

# Type and constructors
Result, Ok, Err

# Mapping
Map, MapError

# Chaining
AndThen

# Handling errors
WithDefault, ToMaybe, FromMaybe
*/

type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// Map applies f to the value of an Ok result, passing an Err through unchanged.
func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	r := x.(result[T])
	if r.err != nil {
		return Err[S](r.err)
	}
	return Ok(f(r.value))
}

// MapError transforms the error of an Err result, passing an Ok through unchanged.
func MapError[T any](f func(error) error, x Result[T]) Result[T] {
	r := x.(result[T])
	if r.err == nil {
		return x
	}
	return Err[T](f(r.err))
}

// AndThen chains a fallible step onto an Ok result.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	r := x.(result[T])
	if r.err != nil {
		return Err[S](r.err)
	}
	return f(r.value)
}

// WithDefault returns the value of an Ok result, or def for an Err.
func WithDefault[T any](def T, x Result[T]) T {
	r := x.(result[T])
	if r.err != nil {
		return def
	}
	return r.value
}

// ToMaybe drops the error information: Ok becomes Just, Err becomes Nothing.
func ToMaybe[T any](x Result[T]) maybe.Maybe[T] {
	r := x.(result[T])
	if r.err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(r.value)
}

// FromMaybe lifts a Maybe into a Result, supplying err for the Nothing case.
func FromMaybe[T any](x maybe.Maybe[T], err error) Result[T] {
	if x.IsNothing() {
		return Err[T](err)
	}
	var zero T
	return Ok(x.WithDefault(zero))
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern-matching on a Result. Passing nil for a destination
// pointer matches the case without extracting the value.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}
