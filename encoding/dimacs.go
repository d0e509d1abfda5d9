package encoding

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Problem is a CNF formula in DIMACS form: a variable universe 1..Vars and
// a list of clauses over it, each clause a list of nonzero signed integers.
type Problem struct {
	Vars    int
	Clauses [][]int
}

// ParseDimacs reads a DIMACS CNF file. Comment lines start with "c", the
// "p cnf <vars> <clauses>" header must precede the clauses, and every
// clause is terminated by a 0, possibly spanning multiple lines. Literal
// magnitudes are validated against the declared variable count; the
// declared clause count is not enforced.
func ParseDimacs(in io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		problem *Problem
		clause  []int
	)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}
		fields := strings.Fields(text)

		if fields[0] == "p" {
			if problem != nil {
				return nil, errors.Errorf("line %d: duplicate problem header", line)
			}
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, errors.Errorf("line %d: malformed problem header %q", line, text)
			}
			nVars, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: variable count", line)
			}
			if nVars < 0 {
				return nil, errors.Errorf("line %d: negative variable count", line)
			}
			if _, err := strconv.Atoi(fields[3]); err != nil {
				return nil, errors.Wrapf(err, "line %d: clause count", line)
			}
			problem = &Problem{Vars: nVars}
			continue
		}
		if problem == nil {
			return nil, errors.Errorf("line %d: clause before problem header", line)
		}
		for _, field := range fields {
			p, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: literal %q", line, field)
			}
			if p == 0 {
				problem.Clauses = append(problem.Clauses, clause)
				clause = nil
				continue
			}
			v := p
			if v < 0 {
				v = -v
			}
			if v > problem.Vars {
				return nil, errors.Errorf("line %d: literal %d outside 1..%d", line, p, problem.Vars)
			}
			clause = append(clause, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read cnf")
	}
	if problem == nil {
		return nil, errors.New("missing problem header")
	}
	if len(clause) > 0 {
		return nil, errors.Errorf("unterminated clause %v", clause)
	}
	return problem, nil
}
