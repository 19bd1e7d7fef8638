package satplan

import "errors"

// Result is the outcome of a successful Plan call: the horizon at which a
// plan was found, the plan itself (empty only when there are no ground
// actions, since otherwise every time step holds exactly one action), and
// the CNF that was solved to find it (retained so a
// caller can also emit it as DIMACS without re-encoding).
type Result struct {
	Horizon int
	Plan    []string
	CNF     *CNF
	Model   *Model
}

// RunOptions configures the horizon-search loop.
type RunOptions struct {
	MinHorizon int
	MaxHorizon int
	Frame      FrameStyle
	Solver     *SolverConfig
}

// DefaultRunOptions mirrors the CLI's default flags: horizons 0 through 20,
// the classical frame-axiom encoding, and DefaultSolverConfig.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		MinHorizon: 0,
		MaxHorizon: 20,
		Frame:      FrameClassical,
		Solver:     DefaultSolverConfig(),
	}
}

// Plan grounds p's action schemas once, then tries increasing horizons from
// opts.MinHorizon to opts.MaxHorizon, encoding and solving a fresh CNF at
// each, returning the first satisfiable one. Variable allocation at each
// horizon starts from a fresh VariableTable: IDs are not shared across
// horizons, since the append-only allocation contract is scoped to a single
// horizon's search.
//
// It returns a *HorizonExhaustedError if no horizon in range is
// satisfiable.
func Plan(p Problem, opts RunOptions) (*Result, error) {
	actions := GroundSchemas(p.Schemas, p.Constants)

	for h := opts.MinHorizon; h <= opts.MaxHorizon; h++ {
		res, err := planAtHorizon(p, actions, h, opts)
		if err != nil {
			var unsat *UnsatError
			if errors.As(err, &unsat) {
				continue
			}
			return nil, err
		}
		return res, nil
	}
	return nil, &HorizonExhaustedError{MinHorizon: opts.MinHorizon, MaxHorizon: opts.MaxHorizon}
}

// planAtHorizon encodes and solves a single horizon, returning *UnsatError
// (never surfaced past Plan's loop above) rather than a bare bool, so the
// horizon-search loop can catch it via errors.As exactly as the CLI catches
// HorizonExhaustedError and MalformedInputError.
func planAtHorizon(p Problem, actions []GroundAction, h int, opts RunOptions) (*Result, error) {
	hb := BuildHerbrandBase(p.Init, p.Goal, actions)
	vt := NewVariableTable()
	hb.AllocateVariables(vt, actions, h)

	cnf := Encode(vt, hb, p.Init, p.Goal, actions, EncodeOptions{Horizon: h, Frame: opts.Frame})

	model, ok := Solve(cnf, opts.Solver)
	if !ok {
		return nil, &UnsatError{Horizon: h}
	}
	return &Result{
		Horizon: h,
		Plan:    ExtractPlan(vt, model),
		CNF:     cnf,
		Model:   model,
	}, nil
}
