package encoding

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestParseDimacs(t *testing.T) {
	in := `c a small example
p cnf 3 2
1 -3 0
2 3 -1 0
`
	problem, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)

	want := &Problem{Vars: 3, Clauses: [][]int{{1, -3}, {2, 3, -1}}}
	if diff := cmp.Diff(want, problem); diff != "" {
		t.Fatalf("parsed problem mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDimacsMultiLineClause(t *testing.T) {
	in := "p cnf 3 1\n1\n-2\n3 0\n"

	problem, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)

	want := &Problem{Vars: 3, Clauses: [][]int{{1, -2, 3}}}
	if diff := cmp.Diff(want, problem); diff != "" {
		t.Fatalf("parsed problem mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDimacsEmptyClause(t *testing.T) {
	in := "p cnf 1 1\n0\n"

	problem, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)

	want := &Problem{Vars: 1, Clauses: [][]int{{}}}
	if diff := cmp.Diff(want, problem, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("parsed problem mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDimacsErrors(t *testing.T) {
	for name, in := range map[string]string{
		"no header":            "1 2 0\n",
		"missing header":       "c only comments\n",
		"malformed header":     "p dnf 2 1\n1 2 0\n",
		"bad variable count":   "p cnf two 1\n1 2 0\n",
		"duplicate header":     "p cnf 2 1\np cnf 2 1\n1 2 0\n",
		"literal out of range": "p cnf 2 1\n1 3 0\n",
		"bad literal":          "p cnf 2 1\n1 x 0\n",
		"unterminated clause":  "p cnf 2 1\n1 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDimacs(strings.NewReader(in))
			require.Error(t, err)
		})
	}
}
