package treemap

import (
	"fmt"

	"github.com/npillmayer/fx/maybe"
)

// tolerance is the height difference allowed between sibling subtrees before
// a rotation is triggered. Classic AVL uses 1; we use the looser 2, which
// rebalances less often at the cost of slightly deeper trees.
const tolerance = 2

// node is a subtree of a persistent map. A nil *node is the empty tree; a
// node without children is a leaf and has height 1. Nodes are never mutated
// after construction: operations copy the nodes along the path they touch
// and share every other subtree with the input tree.
type node[K, T any] struct {
	key    K
	value  T
	left   *node[K, T]
	right  *node[K, T]
	height int
}

func leaf[K, T any](key K, value T) *node[K, T] {
	return &node[K, T]{key: key, value: value, height: 1}
}

func (n *node[K, T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func height[K, T any](n *node[K, T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// mk builds the node ⟨left, key:value, right⟩ with a correct cached height.
// Node fabrication funnels through mk (or leaf), keeping the height-cache
// invariant in a single place.
func mk[K, T any](left *node[K, T], key K, value T, right *node[K, T]) *node[K, T] {
	hl, hr := height(left), height(right)
	h := hl
	if hr > hl {
		h = hr
	}
	if h == 0 {
		return leaf(key, value)
	}
	return &node[K, T]{key: key, value: value, left: left, right: right, height: h + 1}
}

// rebalance joins two subtrees under a key, restoring the balance invariant
// with rotations. t1 holds the keys smaller than k, t2 the larger ones. The
// subtrees the rotations combine anew are joined through rebalance again, so
// a skew beyond the tolerance cannot survive into the result.
func rebalance[K, T any](t1 *node[K, T], k K, v T, t2 *node[K, T]) *node[K, T] {
	t1h, t2h := height(t1), height(t2)
	if t2h > t1h+tolerance { // right is heavier than left
		assertThat(t2 != nil && !t2.isLeaf(), "internal error: Map.rebalance")
		// one of t2's subtrees must have height > t1h + 1
		if height(t2.left) > t1h+1 { // balance left: combination
			t2l := t2.left
			assertThat(!t2l.isLeaf(), "internal error: Map.rebalance")
			tracer().Debugf("rebalance: double rotation left around %v/%v", t2.key, t2l.key)
			return mk(rebalance(t1, k, v, t2l.left), t2l.key, t2l.value, rebalance(t2l.right, t2.key, t2.value, t2.right))
		}
		tracer().Debugf("rebalance: single rotation left around %v", t2.key)
		return mk(rebalance(t1, k, v, t2.left), t2.key, t2.value, t2.right)
	}
	if t1h > t2h+tolerance { // left is heavier than right
		assertThat(t1 != nil && !t1.isLeaf(), "internal error: Map.rebalance")
		if height(t1.right) > t2h+1 { // balance right: combination
			t1r := t1.right
			assertThat(!t1r.isLeaf(), "internal error: Map.rebalance")
			tracer().Debugf("rebalance: double rotation right around %v/%v", t1.key, t1r.key)
			return mk(rebalance(t1.left, t1.key, t1.value, t1r.left), t1r.key, t1r.value, rebalance(t1r.right, k, v, t2))
		}
		tracer().Debugf("rebalance: single rotation right around %v", t1.key)
		return mk(t1.left, t1.key, t1.value, rebalance(t1.right, k, v, t2))
	}
	return mk(t1, k, v, t2)
}

// add inserts or replaces an entry, returning the new subtree root.
// Replacing the value of an existing key keeps the shape of the tree, so no
// rebalancing happens in that case.
func add[K, T any](cmp Ordering[K], k K, v T, n *node[K, T]) *node[K, T] {
	if n == nil {
		return leaf(k, v)
	}
	c := cmp(k, n.key)
	if n.isLeaf() {
		switch {
		case c < 0:
			return mk(nil, k, v, n)
		case c > 0:
			return mk(n, k, v, nil)
		}
		return leaf(k, v)
	}
	switch {
	case c < 0:
		return rebalance(add(cmp, k, v, n.left), n.key, n.value, n.right)
	case c > 0:
		return rebalance(n.left, n.key, n.value, add(cmp, k, v, n.right))
	}
	// same key, same shape: replace the value, keep children and height
	return mk(n.left, k, v, n.right)
}

// spliceOutSuccessor removes the leftmost entry of a non-empty subtree and
// returns it together with the remaining subtree.
func spliceOutSuccessor[K, T any](n *node[K, T]) (K, T, *node[K, T]) {
	assertThat(n != nil, "internal error: Map.spliceOutSuccessor")
	if n.left == nil {
		return n.key, n.value, n.right
	}
	k, v, l := spliceOutSuccessor(n.left)
	// The splice shrinks the left spine by one, which can push a node past
	// the balance tolerance. F# core rebuilds with mk here; we rebalance.
	return k, v, rebalance(l, n.key, n.value, n.right)
}

// remove deletes the entry for k, if present. Removing an absent key returns
// an equal tree (not necessarily the identical root).
func remove[K, T any](cmp Ordering[K], k K, n *node[K, T]) *node[K, T] {
	if n == nil {
		return nil
	}
	c := cmp(k, n.key)
	if n.isLeaf() {
		if c == 0 {
			return nil
		}
		return n
	}
	switch {
	case c < 0:
		return rebalance(remove(cmp, k, n.left), n.key, n.value, n.right)
	case c > 0:
		return rebalance(n.left, n.key, n.value, remove(cmp, k, n.right))
	}
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	sk, sv, r := spliceOutSuccessor(n.right)
	// The successor came out of the right subtree, which may now be one
	// shorter, so the join has to rebalance (mk alone would let the skew grow
	// past the tolerance).
	return rebalance(n.left, sk, sv, r)
}

// change updates the entry for k through u in a single descent: u receives
// Just(value) or Nothing and may answer with a new value (insert/replace) or
// Nothing (delete).
func change[K, T any](cmp Ordering[K], k K, u func(maybe.Maybe[T]) maybe.Maybe[T], n *node[K, T]) *node[K, T] {
	var zero T
	if n == nil {
		res := u(maybe.Nothing[T]())
		if res.IsNothing() {
			return nil
		}
		return leaf(k, res.WithDefault(zero))
	}
	c := cmp(k, n.key)
	if n.isLeaf() {
		switch {
		case c < 0:
			res := u(maybe.Nothing[T]())
			if res.IsNothing() {
				return n
			}
			return mk(nil, k, res.WithDefault(zero), n)
		case c > 0:
			res := u(maybe.Nothing[T]())
			if res.IsNothing() {
				return n
			}
			return mk(n, k, res.WithDefault(zero), nil)
		}
		res := u(maybe.Just(n.value))
		if res.IsNothing() {
			return nil
		}
		return leaf(k, res.WithDefault(zero))
	}
	switch {
	case c < 0:
		return rebalance(change(cmp, k, u, n.left), n.key, n.value, n.right)
	case c > 0:
		return rebalance(n.left, n.key, n.value, change(cmp, k, u, n.right))
	}
	res := u(maybe.Just(n.value))
	if res.IsJust() {
		return mk(n.left, k, res.WithDefault(zero), n.right)
	}
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	sk, sv, r := spliceOutSuccessor(n.right)
	return rebalance(n.left, sk, sv, r)
}

// --- Traversal -------------------------------------------------------------

// walk visits the entries of a subtree in ascending key order, using an
// explicit stack instead of recursion. It stops early when f returns false
// and reports whether the walk ran to completion.
func walk[K, T any](n *node[K, T], f func(K, T) bool) bool {
	stack := make([]*node[K, T], 0, height(n))
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(n.key, n.value) {
			return false
		}
		n = n.right
	}
	return true
}

// walkBack is walk in descending key order.
func walkBack[K, T any](n *node[K, T], f func(K, T) bool) bool {
	stack := make([]*node[K, T], 0, height(n))
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.right
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(n.key, n.value) {
			return false
		}
		n = n.left
	}
	return true
}

// mapNodes rebuilds a subtree with every value sent through f. The shape is
// known to stay identical, so heights carry over and no rebalancing is
// involved.
func mapNodes[K, T, R any](f func(T) R, n *node[K, T]) *node[K, R] {
	if n == nil {
		return nil
	}
	l := mapNodes(f, n.left)
	v := f(n.value)
	r := mapNodes(f, n.right)
	return &node[K, R]{key: n.key, value: v, left: l, right: r, height: n.height}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("treemap: "+msg, msgargs...)
		panic(msg)
	}
}
