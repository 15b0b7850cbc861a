// Command trisolve solves declarative tri-valued constraint puzzles
// defined in YAML files.
//
//	trisolve solve puzzle.yaml --limit 1 --workers 4 --trace
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/trilogic/internal/puzzlefile"
	"github.com/gitrdm/trilogic/pkg/trilogic"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "trisolve",
		Short:         "Constraint-satisfaction solver for tri-valued logic puzzles",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var (
		limit   int
		workers int
		budget  int
		trace   bool
	)

	cmd := &cobra.Command{
		Use:   "solve <puzzle.yaml>",
		Short: "Solve a YAML puzzle definition",
		Long: `Solve reads a puzzle definition (slot count plus constraint list) and
prints every satisfying assignment, one table per line: T, F and ? per slot.

An over-constrained puzzle prints zero solutions; that is an answer, not an
error. With --budget the search aborts after the given number of candidates
and the result must be treated as unknown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var opts []trilogic.Option
			if trace {
				handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})
				opts = append(opts, trilogic.WithTracer(trilogic.NewSlogTracer(slog.New(handler))))
			}
			if budget > 0 {
				opts = append(opts, trilogic.WithNodeBudget(budget))
			}

			puzzle, err := puzzlefile.Parse(data, opts...)
			if err != nil {
				return err
			}

			var solutions []*trilogic.Solution
			if workers > 1 {
				solutions, err = puzzle.SolveParallel(cmd.Context(), workers, limit)
			} else {
				solutions, err = puzzle.Solve(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d solution(s)\n", len(solutions))
			for _, s := range solutions {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many solutions (0 = all)")
	cmd.Flags().IntVar(&workers, "workers", 1, "search workers; >1 enables parallel search")
	cmd.Flags().IntVar(&budget, "budget", 0, "abort after this many candidates (0 = unbounded)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log propagation and branch events to stderr")
	return cmd
}
