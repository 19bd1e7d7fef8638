package satplan

import "fmt"

// MalformedInputError reports a `.dat` line that could not be parsed: an
// unrecognised line prefix, or an "A" line missing ":" or "->".
type MalformedInputError struct {
	Line int
	Text string
	Msg  string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at line %d (%q): %s", e.Line, e.Text, e.Msg)
}

// HorizonExhaustedError reports that no plan of length <= H was found for
// any H in the attempted range. It is non-fatal to a caller that wants to
// retry with a larger horizon.
type HorizonExhaustedError struct {
	MinHorizon int
	MaxHorizon int
}

func (e *HorizonExhaustedError) Error() string {
	return fmt.Sprintf("no plan found within horizon %d..%d", e.MinHorizon, e.MaxHorizon)
}

// UnsatError marks a single horizon's CNF as unsatisfiable. It is internal:
// the horizon-search loop catches it and tries the next horizon, returning a
// HorizonExhaustedError in its place once the range is used up; it should
// never reach a CLI user directly.
type UnsatError struct {
	Horizon int
}

func (e *UnsatError) Error() string {
	return fmt.Sprintf("unsatisfiable at horizon %d", e.Horizon)
}

// InvariantError reports an internal consistency failure, such as a clause
// referencing a variable ID absent from the variable table. Its presence
// indicates an encoder bug, not a problem with user input.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: %s", e.Msg)
}
