package solver

import (
	"strings"

	"github.com/MarcoKeppel/SATurday/lit"
)

// ClauseID identifies a clause in the store. IDs are handed out in
// creation order and never reused.
type ClauseID int

// NoClause marks the absence of an antecedent clause.
const NoClause = ClauseID(-1)

// Clause is a CNF clause held by the store, immutable once created. A
// clause with no literals represents a proven contradiction.
type Clause struct {
	id     ClauseID
	lits   []lit.Lit
	learnt bool
}

// ID returns the clause's identifier.
func (c *Clause) ID() ClauseID {
	return c.id
}

// Lits returns the clause's literals. The slice must not be modified.
func (c *Clause) Lits() []lit.Lit {
	return c.lits
}

// Learnt returns true if the clause was derived during search rather than
// given as input.
func (c *Clause) Learnt() bool {
	return c.learnt
}

// Len returns the length of the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Dimacs returns the clause's literals as signed DIMACS integers.
func (c *Clause) Dimacs() []int {
	ps := make([]int, len(c.lits))
	for i, l := range c.lits {
		ps[i] = l.Dimacs()
	}
	return ps
}

// asStrings returns the clause as an array of strings.
func (c *Clause) asStrings() []string {
	litStrs := make([]string, len(c.lits))
	for i, l := range c.lits {
		litStrs[i] = l.String()
	}
	return litStrs
}

// String implements the Stringer interface.
func (c *Clause) String() string {
	return strings.Join(c.asStrings(), ",")
}
