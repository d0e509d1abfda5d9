package solver

import (
	"fmt"

	"github.com/MarcoKeppel/SATurday/lit"
)

// resolutionStep is one resolution in a learnt clause's derivation: the
// antecedent clause resolved in and the pivot literal resolved upon, as it
// appears on the trail.
type resolutionStep struct {
	antecedent ClauseID
	pivot      lit.Lit
}

// derivation records how a learnt clause was produced: the conflict clause
// the working clause started as, then one resolution per step, in order.
// Derivations form a DAG rooted at the final derived clause with input
// clauses as leaves.
type derivation struct {
	base  ClauseID
	steps []resolutionStep
}

// tracer is a passive recorder of clause derivations. It is consulted only
// once, when the empty clause has been derived and a core is extracted.
type tracer struct {
	records map[ClauseID]derivation
}

func newTracer() *tracer {
	return &tracer{records: map[ClauseID]derivation{}}
}

// record stores the derivation of a learnt clause.
func (tr *tracer) record(id ClauseID, d derivation) {
	if _, ok := tr.records[id]; ok {
		panic(fmt.Sprintf("solver: duplicate derivation for clause %d", id))
	}
	tr.records[id] = d
}

// lookup returns a clause's derivation. Input clauses have none; they are
// the leaves of the proof DAG.
func (tr *tracer) lookup(id ClauseID) (derivation, bool) {
	d, ok := tr.records[id]
	return d, ok
}
