package lit

import "testing"

func TestFromDimacs(t *testing.T) {
	if l := FromDimacs(12); l.Var() != 12 || l.Sign() {
		t.Fatalf("TestFromDimacs() failed, got: %s", l)
	}
	if l := FromDimacs(-12); l.Var() != 12 || !l.Sign() {
		t.Fatalf("TestFromDimacs() failed, got: %s", l)
	}
}

func TestNot(t *testing.T) {
	if l := New(12, false).Not(); l != New(12, true) {
		t.Fatalf("TestNot() failed, got: %d", l.Var())
	}
}

func TestSign(t *testing.T) {
	if l := New(12, true); l.Sign() != true {
		t.Fatalf("TestSign() failed, got: %d", l.Var())
	}
	if l := New(12, false); l.Sign() != false {
		t.Fatalf("TestSign() failed, got: %d", l.Var())
	}
}

func TestVar(t *testing.T) {
	if l := New(23, false); l.Var() != 24 {
		t.Fatalf("TestVar() failed: %d", l.Var())
	}
	if l := New(23, true); l.Var() != 24 {
		t.Fatalf("TestVar() failed: %d", l.Var())
	}
}

func TestDimacsRoundTrip(t *testing.T) {
	for _, i := range []int{1, -1, 7, -32, 100} {
		if got := FromDimacs(i).Dimacs(); got != i {
			t.Fatalf("TestDimacsRoundTrip() failed, got: %d, want: %d", got, i)
		}
	}
}
