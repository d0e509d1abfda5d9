// Package solver implements a minimal conflict-driven clause learning
// (CDCL) SAT solver. On satisfiable formulas it produces a total model; on
// unsatisfiable ones it traces the resolution proof of the empty clause
// back to an unsatisfiable core of the input clauses.
package solver

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/MarcoKeppel/SATurday/config"
	"github.com/MarcoKeppel/SATurday/lit"
)

// Solver is the SAT solver. All mutable state belongs to a single solve
// session: create one with New, add the input clauses, then call Solve (or
// drive Step) once.
type Solver struct {
	// config is the solver's configuration.
	config *config.Config
	// logger is the solver's logger.
	logger *logrus.Logger

	// nVars is the size of the variable universe 1..nVars.
	nVars int
	// store owns every clause, input and learnt.
	store *store
	// trail records assignments in order, with levels and antecedents.
	trail *trail
	// tracer records the derivation of every learnt clause.
	tracer *tracer

	// status is the driver's current state.
	status Status
	// finalID is the id of the derived empty clause, valid on Unsat.
	finalID ClauseID

	stats Stats
}

// Stats are informational counters maintained during search.
type Stats struct {
	Decisions    int
	Propagations int
	Conflicts    int
	Learnt       int
	MaxLevel     int
}

// New returns a new solver over the variable universe 1..nVars.
func New(c *config.Config, nVars int) *Solver {
	return &Solver{
		config: c,
		logger: c.Logger,
		nVars:  nVars,
		store:  &store{},
		trail:  newTrail(nVars),
		tracer: newTracer(),
		status: Searching,
	}
}

// AddClause registers an input clause given as nonzero DIMACS integers and
// returns its id. Clauses are stored verbatim; an empty clause is legal
// and makes the formula trivially unsatisfiable. Literals outside the
// variable universe are a bug in the caller, which is expected to have
// validated its input.
func (s *Solver) AddClause(ps []int) ClauseID {
	lits := make([]lit.Lit, 0, len(ps))
	for _, p := range ps {
		if p == 0 {
			panic("solver: zero literal in clause")
		}
		if v := abs(p); v > s.nVars {
			panic(fmt.Sprintf("solver: variable %d outside universe 1..%d", v, s.nVars))
		}
		lits = append(lits, lit.FromDimacs(p))
	}
	return s.store.add(lits, false)
}

// Result is the outcome of a solve session.
type Result struct {
	Status Status
	// Model maps every variable 1..N to its value. Set when Status is Sat.
	Model map[int]bool
	// Core is the set of input clause ids whose conjunction is already
	// unsatisfiable. Set when Status is Unsat.
	Core []ClauseID
}

// Result returns the current outcome. Before a terminal state is reached
// it carries only the status.
func (s *Solver) Result() Result {
	res := Result{Status: s.status}

	switch s.status {
	case Sat:
		res.Model = map[int]bool{}
		for v := 0; v < s.nVars; v++ {
			res.Model[v+1] = s.trail.valueOf(v).True()
		}
	case Unsat:
		res.Core = extractCore(s.tracer, s.store, s.finalID)
	}
	return res
}

// Answer returns the model as DIMACS integers sorted by variable.
func (r Result) Answer() []int {
	ps := []int{}
	for v, val := range r.Model {
		if val {
			ps = append(ps, v)
		} else {
			ps = append(ps, -v)
		}
	}
	sort.Slice(ps, func(i, j int) bool {
		return abs(ps[i]) < abs(ps[j])
	})
	return ps
}

// ClauseLits returns a stored clause's literals as DIMACS integers, for
// callers printing cores by content.
func (s *Solver) ClauseLits(id ClauseID) []int {
	return s.store.get(id).Dimacs()
}

// Stats returns the solver's counters.
func (s *Solver) Stats() Stats {
	return s.stats
}

// NVars returns the number of variables.
func (s *Solver) NVars() int {
	return s.nVars
}

// NClauses returns the number of stored clauses, learnt included.
func (s *Solver) NClauses() int {
	return s.store.size()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
