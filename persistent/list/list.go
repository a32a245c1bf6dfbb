package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fx/maybe"
)

// List is an immutable singly-linked list. The zero value is the empty list
// and ready to use. Prepending with Cons shares the existing cells between
// the old and the new incarnation of the list.
type List[T any] struct {
	head *cell[T]
}

type cell[T any] struct {
	value  T
	next   *cell[T]
	length int // number of cells from here to the end
}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Singleton returns a list holding a single element.
func Singleton[T any](x T) List[T] {
	return List[T]{head: &cell[T]{value: x, length: 1}}
}

// OfSlice builds a list holding the elements of xs, in order.
func OfSlice[T any](xs []T) List[T] {
	var l List[T]
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.Cons(xs[i])
	}
	return l
}

// Cons returns a new list with x prepended. The receiver is unchanged and
// becomes the tail of the result.
func (l List[T]) Cons(x T) List[T] {
	return List[T]{head: &cell[T]{value: x, next: l.head, length: l.Length() + 1}}
}

func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

func (l List[T]) Length() int {
	if l.head == nil {
		return 0
	}
	return l.head.length
}

// Head returns the first element, or Nothing for the empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Tail returns the list without its first element. The tail of the empty
// list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next}
}

// Pop destructures a list into head and tail. ok is false for the empty list.
func (l List[T]) Pop() (x T, tail List[T], ok bool) {
	if l.head == nil {
		return
	}
	return l.head.value, List[T]{head: l.head.next}, true
}

// Reverse returns the list with the element order reversed.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for c := l.head; c != nil; c = c.next {
		r = r.Cons(c.value)
	}
	return r
}

// Append returns the concatenation of l and other. The cells of other are
// shared with the result.
func (l List[T]) Append(other List[T]) List[T] {
	return FoldBack(func(x T, acc List[T]) List[T] {
		return acc.Cons(x)
	}, l, other)
}

// Each calls f for every element, front to back.
func (l List[T]) Each(f func(T)) {
	for c := l.head; c != nil; c = c.next {
		f(c.value)
	}
}

// Slice copies the list elements into a fresh slice.
func (l List[T]) Slice() []T {
	xs := make([]T, 0, l.Length())
	for c := l.head; c != nil; c = c.next {
		xs = append(xs, c.value)
	}
	return xs
}

func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	for c := l.head; c != nil; c = c.next {
		if c != l.head {
			sb.WriteString(" :: ")
		}
		fmt.Fprintf(&sb, "%v", c.value)
	}
	sb.WriteRune(']')
	return sb.String()
}

// Fold reduces a list front to back: f(…f(f(zero, x0), x1)…, xn).
func Fold[T, S any](f func(S, T) S, zero S, l List[T]) S {
	acc := zero
	for c := l.head; c != nil; c = c.next {
		acc = f(acc, c.value)
	}
	return acc
}

// FoldBack reduces a list back to front: f(x0, f(x1, …f(xn, zero)…)).
func FoldBack[T, S any](f func(T, S) S, l List[T], zero S) S {
	acc := zero
	rev := l.Reverse()
	for c := rev.head; c != nil; c = c.next {
		acc = f(c.value, acc)
	}
	return acc
}

// Map applies f to every element, producing a new list of equal length.
func Map[T, S any](f func(T) S, l List[T]) List[S] {
	return FoldBack(func(x T, acc List[S]) List[S] {
		return acc.Cons(f(x))
	}, l, Empty[S]())
}

// Filter keeps the elements satisfying pred, preserving their order.
func Filter[T any](pred func(T) bool, l List[T]) List[T] {
	return FoldBack(func(x T, acc List[T]) List[T] {
		if pred(x) {
			return acc.Cons(x)
		}
		return acc
	}, l, Empty[T]())
}
