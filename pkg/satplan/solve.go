package satplan

// Solve runs the DPLL variant selected by cfg against cnf, returning a
// total model and true on success, or (nil, false) if cnf is unsatisfiable.
// A nil cfg is treated as DefaultSolverConfig().
func Solve(cnf *CNF, cfg *SolverConfig) (*Model, bool) {
	if cfg == nil {
		cfg = DefaultSolverConfig()
	}
	switch cfg.Variant {
	case VariantRecursive:
		return SolveRecursive(cnf)
	default:
		return SolveIterative(cnf)
	}
}
