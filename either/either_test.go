package either_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/fx/either"
)

func TestEitherSimple(t *testing.T) {
	x := Left[int, string](7)
	y := Right[int, string]("seven")

	var n int
	var s string
	switch m := x.Match(); m {
	case m.Left(&n):
		t.Logf("Left(%d)", n)
	case m.Right(&s):
		t.Logf("Right(%q)", s)
	}
	if n != 7 {
		t.Errorf("expected n to be 7, is %d", n)
	}

	switch m := y.Match(); m {
	case m.Left(&n):
		t.Logf("Left(%d)", n)
	case m.Right(&s):
		t.Logf("Right(%q)", s)
	}
	if s != "seven" {
		t.Errorf("expected s to be \"seven\", is %q", s)
	}

	if !x.IsLeft() || !y.IsRight() {
		t.Error("expected IsLeft/IsRight to reflect the populated side, don't")
	}
}

func TestEitherMap(t *testing.T) {
	x := Left[int, string](7)
	xx := MapLeft(strconv.Itoa, x)
	var s string
	switch m := xx.Match(); m {
	case m.Left(&s):
	case m.Right(nil):
		t.Error("expected MapLeft to keep the Left side, didn't")
	}
	if s != "7" {
		t.Errorf("expected Left side to be \"7\", is %q", s)
	}

	y := Right[int, string]("seven")
	yy := MapRight(func(w string) int { return len(w) }, y)
	var n int
	switch m := yy.Match(); m {
	case m.Left(nil):
		t.Error("expected MapRight to keep the Right side, didn't")
	case m.Right(&n):
	}
	if n != 5 {
		t.Errorf("expected Right side to be 5, is %d", n)
	}
}

func TestEitherFold(t *testing.T) {
	describe := func(x Either[int, string]) string {
		return Fold(strconv.Itoa, func(s string) string { return s }, x)
	}
	if describe(Left[int, string](7)) != "7" {
		t.Error("expected fold of Left(7) to be \"7\", isn't")
	}
	if describe(Right[int, string]("seven")) != "seven" {
		t.Error("expected fold of Right(\"seven\") to be \"seven\", isn't")
	}
}
