package solver

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/MarcoKeppel/SATurday/lit"
)

// analyze derives a learnt clause from a conflict using last-UIP
// resolution. The working clause starts as the conflict clause; while more
// than one of its literals sits at the current decision level (at level 0:
// while any does), it is resolved with the antecedent of the most recently
// assigned of them. The learnt clause and its derivation are registered
// with the store and the tracer; analyze returns the learnt clause's id
// and the level to backjump to.
//
// At decision level 0 every assignment is forced, so resolution runs the
// working clause down to the empty clause, which signals UNSAT to the
// driver.
func (s *Solver) analyze(conflID ClauseID) (ClauseID, int) {
	confl := s.store.get(conflID)
	dl := s.trail.decisionLevel()

	working := map[lit.Lit]bool{}
	for _, p := range confl.lits {
		working[p] = true
	}
	steps := []resolutionStep{}

	for s.needsResolution(working, dl) {
		pivot := s.latestAtLevel(working, dl)

		ante := s.trail.reasonOf(pivot.Index())
		if ante == NoClause {
			panic(fmt.Sprintf("solver: no antecedent for variable %d during analysis", pivot.Var()))
		}
		resolve(working, s.store.get(ante), pivot)
		steps = append(steps, resolutionStep{antecedent: ante, pivot: pivot})

		s.logger.WithFields(logrus.Fields{
			"antecedent": ante,
			"pivot":      pivot.String(),
			"width":      len(working),
		}).Debug("resolution step")
	}

	learnt := s.assemble(working, dl)
	id := s.store.add(learnt, true)
	s.tracer.record(id, derivation{base: conflID, steps: steps})
	s.stats.Learnt++

	s.logger.WithFields(logrus.Fields{
		"clause": id,
		"lits":   s.store.get(id).String(),
	}).Debug("learnt clause")

	return id, backjumpLevel(learnt, s.trail)
}

// needsResolution reports whether the working clause must be resolved
// further. Above level 0 the last-UIP rule stops at exactly one
// current-level literal; at level 0 resolution continues until the working
// clause is empty.
func (s *Solver) needsResolution(working map[lit.Lit]bool, dl int) bool {
	n := 0
	for p := range working {
		if s.trail.levelOf(p.Index()) == dl {
			n++
		}
	}
	if dl == 0 {
		return n > 0
	}
	return n > 1
}

// latestAtLevel returns the trail literal assigned most recently at level
// dl among those whose complement is in the working clause.
func (s *Solver) latestAtLevel(working map[lit.Lit]bool, dl int) lit.Lit {
	for i := s.trail.size() - 1; i >= 0; i-- {
		p := s.trail.at(i)

		if s.trail.levelOf(p.Index()) == dl && working[p.Not()] {
			return p
		}
	}
	panic("solver: no current-level literal left in working clause")
}

// resolve replaces working with its resolvent on pivot's variable: the
// union of working and ante minus the complementary pair.
func resolve(working map[lit.Lit]bool, ante *Clause, pivot lit.Lit) {
	delete(working, pivot.Not())

	for _, q := range ante.lits {
		if q != pivot {
			working[q] = true
		}
	}
}

// assemble orders the learnt clause: the lone current-level literal (the
// UIP) first, the rest sorted for determinism. At level 0 the working
// clause has been resolved away and the result is empty.
func (s *Solver) assemble(working map[lit.Lit]bool, dl int) []lit.Lit {
	uip := lit.Undef
	rest := []lit.Lit{}

	for p := range working {
		if dl > 0 && s.trail.levelOf(p.Index()) == dl {
			if uip != lit.Undef {
				panic("solver: more than one current-level literal after resolution")
			}
			uip = p
			continue
		}
		rest = append(rest, p)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	if dl > 0 && uip == lit.Undef {
		panic("solver: conflict clause has no current-level literal")
	}
	if uip == lit.Undef {
		return rest
	}
	return append([]lit.Lit{uip}, rest...)
}

// backjumpLevel returns the second-highest decision level among the learnt
// clause's literals, 0 for unit and empty clauses. The first literal is
// the UIP, assigned at the current level.
func backjumpLevel(learnt []lit.Lit, t *trail) int {
	if len(learnt) <= 1 {
		return 0
	}
	level := 0
	for _, p := range learnt[1:] {
		if l := t.levelOf(p.Index()); l > level {
			level = l
		}
	}
	return level
}
