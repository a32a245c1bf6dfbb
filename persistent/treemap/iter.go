package treemap

import (
	"github.com/npillmayer/fx"
	"github.com/npillmayer/fx/persistent/list"
	"github.com/npillmayer/fx/seq"
)

/*
The lazy left-to-right iterator keeps a stack of pending subtrees, as a
persistent list of nodes. collapseLHS maintains the invariant that the top of
the stack is always a bare entry carrier (a childless node): an inner node on
top is expanded into ⟨left, carrier, right⟩. The fringe of the stacked
subtrees never changes, so the iterator yields entries in ascending key
order without ever materializing the whole tree.
*/

type iterator[K, T any] struct {
	stack list.List[*node[K, T]]
}

func newIterator[K, T any](root *node[K, T]) *iterator[K, T] {
	return &iterator[K, T]{stack: collapseLHS(list.Singleton(root))}
}

// collapseLHS expands the top of the stack down to its leftmost entry.
// Empty subtrees are dropped along the way.
func collapseLHS[K, T any](stack list.List[*node[K, T]]) list.List[*node[K, T]] {
	for {
		n, rest, ok := stack.Pop()
		if !ok {
			return stack
		}
		if n == nil {
			stack = rest
			continue
		}
		if n.isLeaf() {
			return stack
		}
		tracer().Debugf("iterator: expanding inner node %v", n.key)
		stack = rest.Cons(n.right).Cons(leaf(n.key, n.value)).Cons(n.left)
	}
}

func (it *iterator[K, T]) next() (fx.Pair[K, T], bool) {
	n, rest, ok := it.stack.Pop()
	if !ok {
		var none fx.Pair[K, T]
		return none, false
	}
	assertThat(n != nil && n.isLeaf(), "internal error: Map iterator, unexpected stack for next()")
	it.stack = collapseLHS(rest)
	return fx.P(n.key, n.value), true
}

// ToSeq returns the entries of the map as a lazy, restartable sequence in
// ascending key order. Every pass over the sequence starts a fresh iterator;
// the map incarnation it walks is fixed at the time of the ToSeq call.
func (m Map[K, T]) ToSeq() seq.Seq[fx.Pair[K, T]] {
	root := m.root
	return func() seq.Iterator[fx.Pair[K, T]] {
		it := newIterator(root)
		return it.next
	}
}
