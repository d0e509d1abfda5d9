package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/MarcoKeppel/SATurday/lit"
	"github.com/MarcoKeppel/SATurday/tribool"
)

type clauseStatus int

const (
	// clauseOpen means the clause is satisfied or has at least two
	// unassigned literals.
	clauseOpen clauseStatus = iota
	clauseUnit
	clauseFalsified
)

// propagate runs unit propagation to a fixed point and returns the id of a
// falsified clause, or NoClause when the assignment is consistent. Every
// pass is a full linear scan of the store; there is no watch indexing.
func (s *Solver) propagate() ClauseID {
	for again := true; again; {
		again = false

		for _, c := range s.store.clauses {
			unit, status := s.examine(c)

			switch status {
			case clauseFalsified:
				s.logger.WithFields(logrus.Fields{
					"clause": c.id,
					"lits":   c.String(),
				}).Debug("conflict")

				return c.id
			case clauseUnit:
				s.logger.WithFields(logrus.Fields{
					"clause": c.id,
					"lit":    unit.String(),
				}).Debug("unit propagation")

				s.trail.assign(unit, c.id)
				s.stats.Propagations++
				again = true
			}
		}
	}
	return NoClause
}

// examine classifies c under the current assignment, returning the literal
// to propagate when c is unit.
func (s *Solver) examine(c *Clause) (lit.Lit, clauseStatus) {
	unit := lit.Undef
	unassigned := 0

	for _, p := range c.lits {
		switch s.trail.value(p) {
		case tribool.True:
			return lit.Undef, clauseOpen
		case tribool.Undef:
			if unassigned++; unassigned > 1 {
				return lit.Undef, clauseOpen
			}
			unit = p
		}
	}
	if unassigned == 0 {
		return lit.Undef, clauseFalsified
	}
	return unit, clauseUnit
}
