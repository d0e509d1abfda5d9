package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/MarcoKeppel/SATurday/lit"
)

// Status is the search driver's state.
type Status int

const (
	// Searching means no terminal state has been reached yet.
	Searching Status = iota
	// Sat means a satisfying assignment has been found.
	Sat
	// Unsat means the empty clause has been derived.
	Unsat
)

// String implements the Stringer interface.
func (st Status) String() string {
	switch st {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "SEARCHING"
	}
}

// Step runs one round of the driver's state machine: propagate, then
// either analyze the conflict and backjump, declare SAT when every
// variable is assigned, or open a new decision level. Callers wanting a
// time or conflict budget can drive Step directly and stop between rounds;
// Solve loops it to a terminal state.
func (s *Solver) Step() Status {
	if s.status != Searching {
		return s.status
	}

	if conflID := s.propagate(); conflID != NoClause {
		s.stats.Conflicts++

		learntID, btLevel := s.analyze(conflID)
		learnt := s.store.get(learntID)

		if learnt.Len() == 0 {
			s.finalID = learntID
			s.status = Unsat
			return s.status
		}
		s.trail.backjumpTo(btLevel)
		// The learnt clause is asserting: its UIP literal is the only one
		// unassigned after the backjump.
		s.trail.assign(learnt.lits[0], learntID)

		return s.status
	}

	v := s.pick()
	if v < 0 {
		s.status = Sat
		return s.status
	}
	s.trail.pushDecision()
	s.trail.assign(lit.New(v, true), NoClause)
	s.stats.Decisions++

	if dl := s.trail.decisionLevel(); dl > s.stats.MaxLevel {
		s.stats.MaxLevel = dl
	}
	s.logger.WithFields(logrus.Fields{
		"var":   v + 1,
		"level": s.trail.decisionLevel(),
	}).Debug("decision")

	return s.status
}

// pick returns the lowest unassigned variable index, or -1 when every
// variable is assigned. Decisions always try FALSE first; there is no
// value heuristic and no activity tracking.
func (s *Solver) pick() int {
	for v := 0; v < s.nVars; v++ {
		if s.trail.valueOf(v).Undef() {
			return v
		}
	}
	return -1
}

// Solve runs the driver to a terminal state and returns the result.
func (s *Solver) Solve() Result {
	s.logger.WithFields(logrus.Fields{
		"vars":    s.nVars,
		"clauses": s.store.size(),
	}).Debug("starting search")

	for s.Step() == Searching {
	}

	s.logger.WithField("status", s.status.String()).Debug("search finished")

	return s.Result()
}
