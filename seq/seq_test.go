package seq_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fx"
	"github.com/npillmayer/fx/maybe"
	"github.com/npillmayer/fx/seq"
)

func TestSeqEmpty(t *testing.T) {
	s := seq.Empty[int]()
	if n := seq.Length(s); n != 0 {
		t.Errorf("expected empty sequence to have length 0, has %d", n)
	}
}

func TestSeqOfSlice(t *testing.T) {
	s := seq.OfSlice([]int{1, 2, 3})
	if diff := cmp.Diff([]int{1, 2, 3}, s.Slice()); diff != "" {
		t.Errorf("sequence elements wrong (-want +got):\n%s", diff)
	}
}

func TestSeqRestartable(t *testing.T) {
	s := seq.OfSlice([]int{1, 2, 3})
	first := s.Slice()
	second := s.Slice() // a fresh pass has to see all elements again
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("expected second pass to equal first (-want +got):\n%s", diff)
	}
}

func TestSeqUnfold(t *testing.T) {
	countdown := seq.Unfold(func(n int) maybe.Maybe[fx.Pair[int, int]] {
		if n == 0 {
			return maybe.Nothing[fx.Pair[int, int]]()
		}
		return maybe.Just(fx.P(n, n-1))
	}, 3)
	if diff := cmp.Diff([]int{3, 2, 1}, countdown.Slice()); diff != "" {
		t.Errorf("unfold wrong (-want +got):\n%s", diff)
	}
	// restart after exhaustion
	if diff := cmp.Diff([]int{3, 2, 1}, countdown.Slice()); diff != "" {
		t.Errorf("unfold not restartable (-want +got):\n%s", diff)
	}
}

func TestSeqMapFilter(t *testing.T) {
	s := seq.OfSlice([]int{1, 2, 3, 4})
	doubled := seq.Map(func(x int) int { return x * 2 }, s)
	if diff := cmp.Diff([]int{2, 4, 6, 8}, doubled.Slice()); diff != "" {
		t.Errorf("map wrong (-want +got):\n%s", diff)
	}
	odd := seq.Filter(func(x int) bool { return x%2 == 1 }, s)
	if diff := cmp.Diff([]int{1, 3}, odd.Slice()); diff != "" {
		t.Errorf("filter wrong (-want +got):\n%s", diff)
	}
}

func TestSeqTake(t *testing.T) {
	s := seq.Take(2, seq.OfSlice([]int{1, 2, 3, 4}))
	if diff := cmp.Diff([]int{1, 2}, s.Slice()); diff != "" {
		t.Errorf("take wrong (-want +got):\n%s", diff)
	}
	all := seq.Take(10, seq.OfSlice([]int{1, 2}))
	if diff := cmp.Diff([]int{1, 2}, all.Slice()); diff != "" {
		t.Errorf("take beyond end wrong (-want +got):\n%s", diff)
	}
}

func TestSeqFold(t *testing.T) {
	s := seq.OfSlice([]int{1, 2, 3, 4})
	sum := seq.Fold(func(acc, x int) int { return acc + x }, 0, s)
	if sum != 10 {
		t.Errorf("expected fold to sum to 10, is %d", sum)
	}
}

func TestSeqLazy(t *testing.T) {
	calls := 0
	s := seq.Map(func(x int) int {
		calls++
		return x
	}, seq.OfSlice([]int{1, 2, 3, 4}))
	_ = seq.Take(2, s).Slice()
	if calls != 2 {
		t.Errorf("expected mapping function to run twice, ran %d times", calls)
	}
}
