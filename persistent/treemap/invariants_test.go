package treemap

import (
	"fmt"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/arbitrary"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"
)

var defaultGopterParameters = gopter.DefaultTestParameters()

// checkNode validates the height cache and the balance tolerance of every
// node of a subtree. With a non-nil ordering it validates the search-tree
// property as well.
func checkNode[K, T any](order Ordering[K], n *node[K, T]) error {
	if n == nil {
		return nil
	}
	if err := checkNode(order, n.left); err != nil {
		return err
	}
	if err := checkNode(order, n.right); err != nil {
		return err
	}
	hl, hr := height(n.left), height(n.right)
	want := hl
	if hr > hl {
		want = hr
	}
	want++
	if n.height != want {
		return fmt.Errorf("height cache broken at key %v: stored %d, computed %d", n.key, n.height, want)
	}
	if hl-hr > tolerance || hr-hl > tolerance {
		return fmt.Errorf("balance violated at key %v: left height %d, right height %d", n.key, hl, hr)
	}
	if order != nil {
		if n.left != nil && order(n.left.key, n.key) >= 0 {
			return fmt.Errorf("search order violated at key %v: left child %v", n.key, n.left.key)
		}
		if n.right != nil && order(n.key, n.right.key) >= 0 {
			return fmt.Errorf("search order violated at key %v: right child %v", n.key, n.right.key)
		}
	}
	return nil
}

// checkMap asserts all tree invariants of a map: per-node height and balance
// checks plus strictly ascending in-order traversal and size consistency.
func checkMap[K, T any](m Map[K, T]) error {
	if err := checkNode(m.order, m.root); err != nil {
		return err
	}
	keys := m.Keys()
	for i := 1; i < len(keys); i++ {
		if m.order(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("in-order keys not strictly ascending: %v, %v", keys[i-1], keys[i])
		}
	}
	if len(keys) != m.Size() {
		return fmt.Errorf("size %d does not match traversal count %d", m.Size(), len(keys))
	}
	return nil
}

type testOp struct {
	Key   uint
	Value uint
}

func applyOps(m Map[uint, uint], ops []testOp) Map[uint, uint] {
	for _, op := range ops {
		m = m.With(op.Key, op.Value)
	}
	return m
}

func TestPropInsertKeepsInvariants(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := arbitrary.DefaultArbitraries()
	arbitraries.RegisterGen(gen.UIntRange(0, 10_000))

	properties.Property("tree invariants survive any insertion order",
		arbitraries.ForAll(
			func(ops []testOp) bool {
				m := applyOps(Immutable[uint, uint](Natural[uint]()), ops)
				return checkMap(m) == nil
			}))
	properties.TestingRun(t)
}

func TestPropGetEveryPut(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := arbitrary.DefaultArbitraries()
	arbitraries.RegisterGen(gen.UIntRange(0, 10_000))

	properties.Property("get every put, last write wins",
		arbitraries.ForAll(
			func(ops []testOp) bool {
				m := applyOps(Immutable[uint, uint](Natural[uint]()), ops)
				reference := map[uint]uint{}
				for _, op := range ops {
					reference[op.Key] = op.Value
				}
				if m.Size() != len(reference) {
					return false
				}
				for k, v := range reference {
					got, found := m.Find(k)
					if !found || got != v {
						return false
					}
				}
				return true
			}))
	properties.TestingRun(t)
}

func TestPropRemoveKeepsInvariants(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := arbitrary.DefaultArbitraries()
	arbitraries.RegisterGen(gen.UIntRange(0, 10_000))

	properties.Property("tree invariants survive deleting every other key",
		arbitraries.ForAll(
			func(ops []testOp) bool {
				m := applyOps(Immutable[uint, uint](Natural[uint]()), ops)
				keys := m.Keys()
				for i, k := range keys {
					if i%2 == 0 {
						m = m.WithDeleted(k)
						if checkMap(m) != nil {
							return false
						}
					}
				}
				for i, k := range keys {
					if i%2 == 0 && m.Member(k) {
						return false
					}
					if i%2 == 1 && !m.Member(k) {
						return false
					}
				}
				return true
			}))
	properties.TestingRun(t)
}

func TestPropRemoveAbsentIsIdentity(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := arbitrary.DefaultArbitraries()
	arbitraries.RegisterGen(gen.UIntRange(0, 10_000))

	properties.Property("removing an absent key keeps all entries",
		arbitraries.ForAll(
			func(ops []testOp, absent uint) bool {
				m := applyOps(Immutable[uint, uint](Natural[uint]()), ops)
				if m.Member(absent) {
					m = m.WithDeleted(absent) // make it absent
				}
				before := m.Entries()
				after := m.WithDeleted(absent).Entries()
				if len(before) != len(after) {
					return false
				}
				for i := range before {
					if before[i] != after[i] {
						return false
					}
				}
				return true
			}))
	properties.TestingRun(t)
}

func TestPropRoundTripSorted(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := arbitrary.DefaultArbitraries()

	properties.Property("traversal of unique-key input is the sorted input",
		arbitraries.ForAll(
			func(keys []uint) bool {
				unique := map[uint]bool{}
				m := Immutable[uint, uint](Natural[uint]())
				for _, k := range keys {
					unique[k] = true
					m = m.With(k, k)
				}
				want := make([]uint, 0, len(unique))
				for k := range unique {
					want = append(want, k)
				}
				sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
				got := m.Keys()
				if len(got) != len(want) {
					return false
				}
				for i := range got {
					if got[i] != want[i] {
						return false
					}
				}
				return true
			}))
	properties.TestingRun(t)
}

// The two-children case of a removal splices the in-order successor out of
// the right subtree. F# core rebuilds the spliced spine and the final join
// with mk only, which can leave nodes one step beyond the balance tolerance;
// our splice and join rebalance instead. This test pins the stricter behavior
// under sustained deletion.
func TestRemoveRebalancesSplicedSpine(t *testing.T) {
	m := Immutable[int, int](Natural[int]())
	for k := 0; k < 256; k++ {
		m = m.With(k, k)
	}
	require.NoError(t, checkMap(m))
	for step := 0; !m.IsEmpty(); step++ {
		// deleting the root key exercises the splice on every iteration
		m = m.WithDeleted(m.root.key)
		require.NoErrorf(t, checkMap(m), "invariants broken after %d deletions", step+1)
	}
}

func TestInsertThenFind(t *testing.T) {
	m := Immutable[int, string](Natural[int]())
	for k := 0; k < 100; k += 3 {
		m = m.With(k, "x")
	}
	mm := m.With(50, "fifty")
	v := mm.TryFind(50)
	require.True(t, v.IsJust())
	require.Equal(t, "fifty", v.WithDefault("?"))
}

func TestRemoveThenFind(t *testing.T) {
	m := Immutable[int, string](Natural[int]())
	for k := 0; k < 100; k++ {
		m = m.With(k, "x")
	}
	mm := m.WithDeleted(50)
	require.True(t, mm.TryFind(50).IsNothing())
	require.True(t, m.TryFind(50).IsJust(), "old incarnation keeps the entry")
}
