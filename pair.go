package fx

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is an ad-hoc 2-tuple. Sequences and maps in this module hand out
// key/value entries as pairs.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// P creates a pair from two values.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose splits a pair into its components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Fst, p.Snd
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("⟨%v,%v⟩", p.Fst, p.Snd)
}

// Swap exchanges the components of a pair.
func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{p.Snd, p.Fst}
}
