// Command satplan grounds a STRIPS planning problem, encodes it to CNF
// across an increasing horizon, and runs DPLL search to find a plan.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/satplan/internal/dat"
	"github.com/gitrdm/satplan/internal/dimacs"
	"github.com/gitrdm/satplan/internal/report"
	"github.com/gitrdm/satplan/pkg/satplan"
)

var (
	verbose    bool
	horizon    int
	maxHorizon int
	frameFlag  string
	solverFlag string
	dimacsPath string
)

var rootCmd = &cobra.Command{
	Use:   "satplan <problem.dat>",
	Short: "SATPLAN: classical planning by reduction to propositional SAT",
	Long: `satplan reads a STRIPS-style problem file, grounds its action schemas,
encodes a bounded-horizon CNF, and runs DPLL search to find a plan.

With --horizon set, exactly that horizon is tried. Otherwise horizons
0..--max-horizon are tried in order until one is satisfiable.`,
	Args: cobra.ExactArgs(1),
	RunE: runSatplan,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().IntVar(&horizon, "horizon", -1, "solve exactly this horizon (default: search)")
	rootCmd.Flags().IntVar(&maxHorizon, "max-horizon", 20, "largest horizon to try when searching")
	rootCmd.Flags().StringVar(&frameFlag, "frame", "classical", "frame-axiom encoding: classical or split")
	rootCmd.Flags().StringVar(&solverFlag, "solver", "iterative", "DPLL variant: iterative or recursive")
	rootCmd.Flags().StringVar(&dimacsPath, "dimacs", "", "write the solved horizon's CNF to this DIMACS file")
}

func runSatplan(cmd *cobra.Command, args []string) error {
	logger, err := report.NewLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	problem, err := dat.ReadFile(args[0])
	if err != nil {
		var malformed *satplan.MalformedInputError
		if errors.As(err, &malformed) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return err
	}

	frame, err := parseFrame(frameFlag)
	if err != nil {
		return err
	}
	solverCfg, err := parseSolver(solverFlag)
	if err != nil {
		return err
	}

	opts := satplan.RunOptions{
		MinHorizon: 0,
		MaxHorizon: maxHorizon,
		Frame:      frame,
		Solver:     solverCfg,
	}
	if horizon >= 0 {
		opts.MinHorizon = horizon
		opts.MaxHorizon = horizon
	}

	res, err := satplan.Plan(problem, opts)
	if err != nil {
		var exhausted *satplan.HorizonExhaustedError
		if errors.As(err, &exhausted) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return err
	}

	report.LogResult(logger, res)

	if dimacsPath != "" {
		if err := dimacs.WriteFile(dimacsPath, res.CNF, res.Horizon); err != nil {
			return fmt.Errorf("write dimacs: %w", err)
		}
	}

	return report.PrintPlan(os.Stdout, res.Plan)
}

func parseFrame(s string) (satplan.FrameStyle, error) {
	switch s {
	case "classical":
		return satplan.FrameClassical, nil
	case "split":
		return satplan.FrameSplit, nil
	default:
		return 0, fmt.Errorf("unknown --frame %q (want classical or split)", s)
	}
}

func parseSolver(s string) (*satplan.SolverConfig, error) {
	switch s {
	case "iterative":
		return &satplan.SolverConfig{Variant: satplan.VariantIterative}, nil
	case "recursive":
		return &satplan.SolverConfig{Variant: satplan.VariantRecursive}, nil
	default:
		return nil, fmt.Errorf("unknown --solver %q (want iterative or recursive)", s)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
