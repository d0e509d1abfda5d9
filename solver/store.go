package solver

import (
	"fmt"

	"github.com/MarcoKeppel/SATurday/lit"
)

// store is the append-only clause arena. Input clauses arrive before the
// search starts and learnt clauses are appended as conflicts are analyzed.
// Clauses are never removed.
type store struct {
	clauses []*Clause
}

// add registers a new clause and returns its id. An empty literal list is
// legal and represents immediate unsatisfiability.
func (st *store) add(lits []lit.Lit, learnt bool) ClauseID {
	id := ClauseID(len(st.clauses))
	cp := make([]lit.Lit, len(lits))
	copy(cp, lits)

	st.clauses = append(st.clauses, &Clause{id: id, lits: cp, learnt: learnt})

	return id
}

// get returns the clause with the given id. An unknown id is a bug in the
// caller.
func (st *store) get(id ClauseID) *Clause {
	if id < 0 || int(id) >= len(st.clauses) {
		panic(fmt.Sprintf("solver: unknown clause id %d", id))
	}
	return st.clauses[id]
}

// allOriginal returns the ids of every input clause.
func (st *store) allOriginal() []ClauseID {
	ids := []ClauseID{}
	for _, c := range st.clauses {
		if !c.learnt {
			ids = append(ids, c.id)
		}
	}
	return ids
}

// size returns the number of stored clauses, learnt included.
func (st *store) size() int {
	return len(st.clauses)
}
