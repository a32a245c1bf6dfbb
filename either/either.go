package either

/*
Either holds one of two alternatives, conventionally called Left and Right.
Unlike Result, neither side is privileged as an error; Either is the plain
two-valued sum type.
*/

type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	IsRight() bool
}

type either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r, isRight: true}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

func (e either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e either[L, R]) IsRight() bool {
	return e.isRight
}

// MapLeft transforms the left alternative, passing a Right through unchanged.
func MapLeft[L, R, S any](f func(L) S, x Either[L, R]) Either[S, R] {
	e := x.(either[L, R])
	if e.isRight {
		return Right[S, R](e.right)
	}
	return Left[S, R](f(e.left))
}

// MapRight transforms the right alternative, passing a Left through unchanged.
func MapRight[L, R, S any](f func(R) S, x Either[L, R]) Either[L, S] {
	e := x.(either[L, R])
	if !e.isRight {
		return Left[L, S](e.left)
	}
	return Right[L, S](f(e.right))
}

// Fold collapses an Either into a single value by applying the function
// matching the populated side.
func Fold[L, R, S any](onLeft func(L) S, onRight func(R) S, x Either[L, R]) S {
	e := x.(either[L, R])
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern-matching on an Either, in the style of the maybe
// and result packages.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !em.e.isRight {
		if l != nil {
			*l = em.e.left
		}
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if em.e.isRight {
		if r != nil {
			*r = em.e.right
		}
		return em
	}
	return nil
}
