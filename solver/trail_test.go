package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarcoKeppel/SATurday/lit"
	"github.com/MarcoKeppel/SATurday/tribool"
)

func TestTrailAssign(t *testing.T) {
	tr := newTrail(3)
	tr.assign(lit.New(0, true), NoClause)

	require.True(t, tr.value(lit.New(0, true)).True())
	require.True(t, tr.value(lit.New(0, false)).False())
	require.True(t, tr.valueOf(0).False())
	require.Equal(t, 0, tr.levelOf(0))
	require.Equal(t, NoClause, tr.reasonOf(0))
	require.True(t, tr.valueOf(1).Undef())
}

func TestTrailDoubleAssignPanics(t *testing.T) {
	tr := newTrail(1)
	tr.assign(lit.New(0, false), NoClause)

	require.Panics(t, func() {
		tr.assign(lit.New(0, true), NoClause)
	})
}

func TestTrailLevels(t *testing.T) {
	tr := newTrail(4)
	tr.assign(lit.New(0, false), NoClause)

	tr.pushDecision()
	tr.assign(lit.New(1, true), NoClause)
	tr.assign(lit.New(2, false), ClauseID(7))

	tr.pushDecision()
	tr.assign(lit.New(3, true), NoClause)

	require.Equal(t, 2, tr.decisionLevel())
	require.Equal(t, 0, tr.levelOf(0))
	require.Equal(t, 1, tr.levelOf(1))
	require.Equal(t, 1, tr.levelOf(2))
	require.Equal(t, 2, tr.levelOf(3))
	require.Equal(t, ClauseID(7), tr.reasonOf(2))
}

func TestTrailBackjump(t *testing.T) {
	tr := newTrail(4)
	tr.assign(lit.New(0, false), NoClause)

	tr.pushDecision()
	tr.assign(lit.New(1, true), NoClause)
	tr.assign(lit.New(2, false), ClauseID(7))

	tr.pushDecision()
	tr.assign(lit.New(3, true), NoClause)

	tr.backjumpTo(1)

	// Exactly the variables assigned at levels <= 1 remain.
	require.Equal(t, 1, tr.decisionLevel())
	require.Equal(t, 3, tr.size())
	require.False(t, tr.valueOf(0).Undef())
	require.False(t, tr.valueOf(1).Undef())
	require.False(t, tr.valueOf(2).Undef())
	require.True(t, tr.valueOf(3).Undef())
	require.Equal(t, -1, tr.levelOf(3))
	require.Equal(t, NoClause, tr.reasonOf(3))

	tr.backjumpTo(0)

	require.Equal(t, 0, tr.decisionLevel())
	require.Equal(t, 1, tr.size())
	require.Equal(t, tribool.False, tr.valueOf(0))
	require.True(t, tr.valueOf(1).Undef())
	require.True(t, tr.valueOf(2).Undef())
}
