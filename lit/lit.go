package lit

import "fmt"

const Undef = Lit(-1)

// Lit is a literal represented by an integer. The sign of the literal is
// kept in the least significant bit and the 0-indexed variable in the
// remaining bits, so L and ~L are adjacent when sorted.
//
// An unknown literal is denoted as -1.
type Lit int

// New returns a new literal given a 0-indexed variable, v, and whether the
// literal is negative.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(v + v + 1)
	}
	return Lit(v + v)
}

// FromDimacs returns the literal for a nonzero DIMACS integer, whose
// magnitude is the 1-indexed variable and whose sign is the polarity.
func FromDimacs(i int) Lit {
	if i < 0 {
		return New(-i-1, true)
	}
	return New(i-1, false)
}

// Not negates a literal.
func (l Lit) Not() Lit {
	return Lit(l ^ 1)
}

// Sign returns true if the literal is negative.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Index returns the literal's 0-indexed variable.
func (l Lit) Index() int {
	return int(l >> 1)
}

// Var returns the literal's 1-indexed variable.
func (l Lit) Var() int {
	return int(l>>1) + 1
}

// Dimacs returns the literal as a signed DIMACS integer.
func (l Lit) Dimacs() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("~%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
