package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MarcoKeppel/SATurday/config"
	"github.com/MarcoKeppel/SATurday/encoding"
	"github.com/MarcoKeppel/SATurday/solver"
)

const (
	exitSat   = 10
	exitUnsat = 20
	exitError = 1
)

func main() {
	conf := config.New()

	cmd := &cobra.Command{
		Use:   "saturday input.cnf",
		Short: "saturday is a CDCL SAT solver",
		Long: "saturday decides satisfiability of a DIMACS CNF formula. On SAT it\n" +
			"prints a satisfying assignment; on UNSAT it prints an unsatisfiable\n" +
			"core of the input clauses. Exit codes: 10 SAT, 20 UNSAT, 1 error.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			if conf.Debug {
				conf.EnableDebug()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(conf, args[0])
			if err != nil {
				return err
			}
			os.Exit(code)
			return nil
		},
	}
	bindFlags(cmd.Flags(), conf)

	if err := cmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(exitError)
	}
}

func bindFlags(fs *pflag.FlagSet, conf *config.Config) {
	fs.BoolVar(&conf.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&conf.Stats, "stats", false, "print search statistics to stderr")
}

func run(conf *config.Config, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open input")
	}
	defer f.Close()

	problem, err := encoding.ParseDimacs(f)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", path)
	}

	sat := solver.New(conf, problem.Vars)
	for _, clause := range problem.Clauses {
		sat.AddClause(clause)
	}

	tStart := time.Now()
	res := sat.Solve()

	if conf.Stats {
		displayStats(sat, time.Since(tStart))
	}

	switch res.Status {
	case solver.Sat:
		fmt.Println("s SATISFIABLE")
		fmt.Println("v " + dimacsLine(res.Answer()))
		return exitSat, nil
	default:
		fmt.Println("s UNSATISFIABLE")
		fmt.Printf("c core: %d of %d input clauses\n", len(res.Core), len(problem.Clauses))
		for _, id := range res.Core {
			fmt.Println(dimacsLine(sat.ClauseLits(id)))
		}
		return exitUnsat, nil
	}
}

// dimacsLine renders literals as a 0-terminated DIMACS line.
func dimacsLine(ps []int) string {
	fields := make([]string, 0, len(ps)+1)
	for _, p := range ps {
		fields = append(fields, strconv.Itoa(p))
	}
	fields = append(fields, "0")
	return strings.Join(fields, " ")
}

func displayStats(s *solver.Solver, t time.Duration) {
	st := s.Stats()

	fmt.Fprintf(os.Stderr, "c Time Taken:    %fs\n", t.Seconds())
	fmt.Fprintf(os.Stderr, "c Variables:     %d\n", s.NVars())
	fmt.Fprintf(os.Stderr, "c Clauses:       %d\n", s.NClauses())
	fmt.Fprintf(os.Stderr, "c Decisions:     %d\n", st.Decisions)
	fmt.Fprintf(os.Stderr, "c Propagations:  %d\n", st.Propagations)
	fmt.Fprintf(os.Stderr, "c Conflicts:     %d\n", st.Conflicts)
	fmt.Fprintf(os.Stderr, "c Learnt:        %d\n", st.Learnt)
	fmt.Fprintf(os.Stderr, "c Max Level:     %d\n", st.MaxLevel)
}
