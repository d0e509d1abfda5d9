package solver

import (
	"fmt"

	"github.com/MarcoKeppel/SATurday/lit"
	"github.com/MarcoKeppel/SATurday/tribool"
)

// trail records assignments in the order they were made, partitioned into
// decision levels. For every assigned variable it keeps the value, the
// decision level, and the antecedent clause that forced it (NoClause for
// decisions).
type trail struct {
	// assigns contains the current assignments indexed on variables.
	assigns []tribool.Tribool
	// levels contains each variable's decision level, -1 while unassigned.
	levels []int
	// reasons contains each variable's antecedent clause.
	reasons []ClauseID
	// order is the list of assignments in chronological order.
	order []lit.Lit
	// lim is a list of separator indices for the decision levels.
	lim []int
}

func newTrail(nVars int) *trail {
	t := &trail{
		assigns: make([]tribool.Tribool, nVars),
		levels:  make([]int, nVars),
		reasons: make([]ClauseID, nVars),
	}
	for i := range t.levels {
		t.levels[i] = -1
		t.reasons[i] = NoClause
	}
	return t
}

// assign makes p true at the current decision level, recording reason as
// its antecedent. Assigning an already assigned variable is a bug in the
// driver.
func (t *trail) assign(p lit.Lit, reason ClauseID) {
	if !t.assigns[p.Index()].Undef() {
		panic(fmt.Sprintf("solver: double assignment of variable %d", p.Var()))
	}
	t.assigns[p.Index()] = tribool.FromBool(!p.Sign())
	t.levels[p.Index()] = t.decisionLevel()
	t.reasons[p.Index()] = reason
	t.order = append(t.order, p)
}

// value returns p's value under the current assignment.
func (t *trail) value(p lit.Lit) tribool.Tribool {
	if p == lit.Undef {
		return tribool.Undef
	}
	if p.Sign() {
		return t.assigns[p.Index()].Not()
	}
	return t.assigns[p.Index()]
}

// valueOf returns the value of the 0-indexed variable v.
func (t *trail) valueOf(v int) tribool.Tribool {
	return t.assigns[v]
}

// levelOf returns the decision level v was assigned at, -1 while
// unassigned.
func (t *trail) levelOf(v int) int {
	return t.levels[v]
}

// reasonOf returns the clause that forced v, NoClause for decisions and
// unassigned variables.
func (t *trail) reasonOf(v int) ClauseID {
	return t.reasons[v]
}

// at returns the i-th assignment in chronological order.
func (t *trail) at(i int) lit.Lit {
	return t.order[i]
}

// size returns the number of assigned variables.
func (t *trail) size() int {
	return len(t.order)
}

// pushDecision opens a new decision level at the current trail position.
func (t *trail) pushDecision() {
	t.lim = append(t.lim, len(t.order))
}

// decisionLevel returns the current decision level.
func (t *trail) decisionLevel() int {
	return len(t.lim)
}

// backjumpTo unassigns every variable assigned at a level strictly greater
// than level, in reverse trail order, and makes level current.
func (t *trail) backjumpTo(level int) {
	for t.decisionLevel() > level {
		limit := t.lim[len(t.lim)-1]
		for len(t.order) > limit {
			t.undoOne()
		}
		t.lim = t.lim[:len(t.lim)-1]
	}
}

// undoOne unbinds the most recently assigned variable.
func (t *trail) undoOne() {
	p := t.order[len(t.order)-1]

	t.assigns[p.Index()] = tribool.Undef
	t.levels[p.Index()] = -1
	t.reasons[p.Index()] = NoClause
	t.order = t.order[:len(t.order)-1]
}
