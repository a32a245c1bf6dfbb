package treemap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/fx"
	"github.com/npillmayer/fx/maybe"
	"github.com/npillmayer/fx/persistent/list"
	"github.com/npillmayer/fx/seq"
)

// Map is a persistent ordered map. Every "modification" returns a new map
// incarnation and leaves the receiver untouched; the two incarnations share
// all subtrees not on the modified path. Maps are created with Immutable:
//
//     m := treemap.Immutable[int, string](treemap.Natural[int]())
//     m = m.With(42, "Galaxy")
//     value, found := m.Find(42)   // returns "Galaxy"
//
// Immutable maps are inherently safe for concurrent readers. Concurrent
// writers each derive their own new incarnation; there is no shared mutable
// state to coordinate.
type Map[K, T any] struct {
	root  *node[K, T]
	order Ordering[K]
}

// Ordering is a total order over keys: negative for a < b, zero for equal
// keys, positive for a > b.
type Ordering[K any] func(a, b K) int

// ordered covers the key kinds comparable with <.
type ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Natural returns the ordering induced by the < operator.
func Natural[K ordered]() Ordering[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return +1
		}
		return 0
	}
}

// Immutable constructs an empty persistent map whose keys are ordered by
// order. Every map derived from it carries the ordering along.
func Immutable[K, T any](order Ordering[K]) Map[K, T] {
	assertThat(order != nil, "attempt to create a map without a key ordering")
	return Map[K, T]{order: order}
}

// OfSlice constructs a map from key/value pairs by folding With over the
// empty map. Later pairs win over earlier ones with an equal key.
func OfSlice[K, T any](order Ordering[K], pairs []fx.Pair[K, T]) Map[K, T] {
	m := Immutable[K, T](order)
	for _, p := range pairs {
		m = m.With(p.Decompose())
	}
	return m
}

// OfSeq constructs a map from a sequence of key/value pairs, folding With
// over the empty map.
func OfSeq[K, T any](order Ordering[K], pairs seq.Seq[fx.Pair[K, T]]) Map[K, T] {
	m := Immutable[K, T](order)
	pairs.Each(func(p fx.Pair[K, T]) {
		m = m.With(p.Decompose())
	})
	return m
}

func (m Map[K, T]) cmp() Ordering[K] {
	assertThat(m.order != nil, "map has no key ordering; construct maps with Immutable(…)")
	return m.order
}

// --- API -------------------------------------------------------------------

// With returns a copy of the map with an entry for key inserted. An entry
// already present for key has its value replaced (in the new incarnation;
// the receiver stays as it is).
func (m Map[K, T]) With(key K, value T) Map[K, T] {
	m.root = add(m.cmp(), key, value, m.root)
	return m
}

// WithDeleted returns a copy of the map with the entry for key removed.
// Deleting an absent key is a no-op, not an error.
func (m Map[K, T]) WithDeleted(key K) Map[K, T] {
	m.root = remove(m.cmp(), key, m.root)
	return m
}

// Change rewrites the entry for key in a single descent. The update function
// receives Just(value) if key is present and Nothing otherwise; it answers
// with the new value, or with Nothing to delete the entry.
func (m Map[K, T]) Change(key K, update func(maybe.Maybe[T]) maybe.Maybe[T]) Map[K, T] {
	m.root = change(m.cmp(), key, update, m.root)
	return m
}

// TryFind returns the value associated with key, or Nothing.
func (m Map[K, T]) TryFind(key K) maybe.Maybe[T] {
	cmp := m.cmp()
	for n := m.root; n != nil; {
		c := cmp(key, n.key)
		switch {
		case c == 0:
			return maybe.Just(n.value)
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return maybe.Nothing[T]()
}

// Find locates a key in the map, if present, and returns the value
// associated with it. If key is not found, the zero value for type T will be
// returned, together with found=false.
func (m Map[K, T]) Find(key K) (T, bool) {
	cmp := m.cmp()
	for n := m.root; n != nil; {
		c := cmp(key, n.key)
		switch {
		case c == 0:
			return n.value, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	var none T
	return none, false
}

// ErrKeyNotFound is returned by Get for keys without an entry.
var ErrKeyNotFound = errors.New("key not found")

// Get is Find with an error instead of a boolean, for call sites that want
// to propagate the miss.
func (m Map[K, T]) Get(key K) (T, error) {
	if v, found := m.Find(key); found {
		return v, nil
	}
	var none T
	return none, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Member reports whether key has an entry in the map.
func (m Map[K, T]) Member(key K) bool {
	_, found := m.Find(key)
	return found
}

// IsEmpty reports whether the map holds no entries.
func (m Map[K, T]) IsEmpty() bool {
	return m.root == nil
}

// Size counts the entries of the map. It is computed by a full traversal,
// O(n), not cached.
func (m Map[K, T]) Size() int {
	count := 0
	walk(m.root, func(K, T) bool {
		count++
		return true
	})
	return count
}

// Depth returns the height of the underlying tree. The balancing scheme
// bounds it logarithmically in the number of entries.
func (m Map[K, T]) Depth() int {
	return height(m.root)
}

// Filter returns a map holding the entries satisfying pred. The result is
// built afresh by folding the matching entries through With.
func (m Map[K, T]) Filter(pred func(K, T) bool) Map[K, T] {
	cmp := m.cmp()
	acc := Immutable[K, T](cmp)
	walk(m.root, func(k K, v T) bool {
		if pred(k, v) {
			acc = acc.With(k, v)
		}
		return true
	})
	return acc
}

// Partition splits the map into the entries satisfying pred and those that
// do not, in that order.
func (m Map[K, T]) Partition(pred func(K, T) bool) (Map[K, T], Map[K, T]) {
	cmp := m.cmp()
	yes, no := Immutable[K, T](cmp), Immutable[K, T](cmp)
	walk(m.root, func(k K, v T) bool {
		if pred(k, v) {
			yes = yes.With(k, v)
		} else {
			no = no.With(k, v)
		}
		return true
	})
	return yes, no
}

// MapValues transforms every value through f, keeping keys and tree shape.
func (m Map[K, T]) MapValues(f func(T) T) Map[K, T] {
	m.root = mapNodes(f, m.root)
	return m
}

// MapValues transforms every value of a map through f, keeping keys and tree
// shape. The package-level version may change the value type.
func MapValues[K, T, R any](f func(T) R, m Map[K, T]) Map[K, R] {
	return Map[K, R]{root: mapNodes(f, m.root), order: m.order}
}

// Exists reports whether some entry satisfies pred.
func (m Map[K, T]) Exists(pred func(K, T) bool) bool {
	return !walk(m.root, func(k K, v T) bool {
		return !pred(k, v)
	})
}

// ForAll reports whether every entry satisfies pred.
func (m Map[K, T]) ForAll(pred func(K, T) bool) bool {
	return walk(m.root, pred)
}

// Each calls f for every entry, in ascending key order.
func (m Map[K, T]) Each(f func(K, T)) {
	walk(m.root, func(k K, v T) bool {
		f(k, v)
		return true
	})
}

// Keys returns the keys of the map in ascending order.
func (m Map[K, T]) Keys() []K {
	ks := make([]K, 0, m.Size())
	m.Each(func(k K, _ T) {
		ks = append(ks, k)
	})
	return ks
}

// Values returns the values of the map, ordered by their keys.
func (m Map[K, T]) Values() []T {
	vs := make([]T, 0, m.Size())
	m.Each(func(_ K, v T) {
		vs = append(vs, v)
	})
	return vs
}

// Entries returns the entries of the map as pairs, in ascending key order.
func (m Map[K, T]) Entries() []fx.Pair[K, T] {
	es := make([]fx.Pair[K, T], 0, m.Size())
	m.Each(func(k K, v T) {
		es = append(es, fx.P(k, v))
	})
	return es
}

// ToList returns the entries as a persistent list, in ascending key order.
func (m Map[K, T]) ToList() list.List[fx.Pair[K, T]] {
	acc := list.Empty[fx.Pair[K, T]]()
	walkBack(m.root, func(k K, v T) bool {
		acc = acc.Cons(fx.P(k, v))
		return true
	})
	return acc
}

// TryPick applies f to the entries in ascending key order and returns the
// first Just it produces, or Nothing.
func TryPick[K, T, R any](f func(K, T) maybe.Maybe[R], m Map[K, T]) maybe.Maybe[R] {
	picked := maybe.Nothing[R]()
	walk(m.root, func(k K, v T) bool {
		res := f(k, v)
		if res.IsJust() {
			picked = res
			return false
		}
		return true
	})
	return picked
}

// Fold reduces the entries in ascending key order.
func Fold[K, T, R any](f func(R, K, T) R, zero R, m Map[K, T]) R {
	acc := zero
	walk(m.root, func(k K, v T) bool {
		acc = f(acc, k, v)
		return true
	})
	return acc
}

// FoldBack reduces the entries in descending key order.
func FoldBack[K, T, R any](f func(K, T, R) R, m Map[K, T], zero R) R {
	acc := zero
	walkBack(m.root, func(k K, v T) bool {
		acc = f(k, v, acc)
		return true
	})
	return acc
}

func (m Map[K, T]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	m.Each(func(k K, v T) {
		if !first {
			sb.WriteRune(' ')
		}
		first = false
		fmt.Fprintf(&sb, "⟨%v,%v⟩", k, v)
	})
	sb.WriteRune(']')
	return sb.String()
}
