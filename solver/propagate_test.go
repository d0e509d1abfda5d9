package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarcoKeppel/SATurday/lit"
)

func TestPropagateUnitChain(t *testing.T) {
	s := New(testConfig(), 3)
	s.AddClause([]int{1})
	s.AddClause([]int{-1, 2})
	s.AddClause([]int{-2, 3})

	require.Equal(t, NoClause, s.propagate())
	require.True(t, s.trail.value(lit.FromDimacs(1)).True())
	require.True(t, s.trail.value(lit.FromDimacs(2)).True())
	require.True(t, s.trail.value(lit.FromDimacs(3)).True())

	// Antecedents point at the forcing clauses.
	require.Equal(t, ClauseID(0), s.trail.reasonOf(0))
	require.Equal(t, ClauseID(1), s.trail.reasonOf(1))
	require.Equal(t, ClauseID(2), s.trail.reasonOf(2))
}

func TestPropagateConflict(t *testing.T) {
	s := New(testConfig(), 1)
	c0 := s.AddClause([]int{1})
	c1 := s.AddClause([]int{-1})

	confl := s.propagate()
	require.Equal(t, c1, confl)
	require.True(t, s.trail.value(lit.FromDimacs(1)).True())
	require.Equal(t, c0, s.trail.reasonOf(0))
}

func TestPropagateFixpointRevisitsEarlierClauses(t *testing.T) {
	// The falsified clause precedes the unit clause that falsifies it, so
	// detection requires a second scan pass.
	s := New(testConfig(), 2)
	c0 := s.AddClause([]int{1, 2})
	s.AddClause([]int{-2})
	s.AddClause([]int{-1})

	require.Equal(t, c0, s.propagate())
}

func TestExamine(t *testing.T) {
	s := New(testConfig(), 3)
	id := s.AddClause([]int{1, -2, 3})
	c := s.store.get(id)

	_, status := s.examine(c)
	require.Equal(t, clauseOpen, status)

	s.trail.assign(lit.FromDimacs(-1), NoClause)
	s.trail.assign(lit.FromDimacs(2), NoClause)

	unit, status := s.examine(c)
	require.Equal(t, clauseUnit, status)
	require.Equal(t, lit.FromDimacs(3), unit)

	s.trail.assign(lit.FromDimacs(-3), NoClause)

	_, status = s.examine(c)
	require.Equal(t, clauseFalsified, status)
}
