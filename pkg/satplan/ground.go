package satplan

// GroundAction is an action schema with every variable substituted by a
// constant: name text is variable-free, and so are every Pre/Eff literal.
type GroundAction struct {
	// CanonicalName is the ground action's identity, e.g. "move a b" — the
	// schema name followed by its substituted parameters.
	CanonicalName string
	Pre           []Literal
	Eff           []Literal
}

// GroundSchemas expands every action schema against the constant set C,
// producing the deduplicated set of ground actions.
//
// Algorithm: repeatedly pick a schema with a remaining lowercase-initial
// parameter, pick one such variable, and clone the schema once per constant
// in C, substituting that variable throughout (name, preconditions,
// effects). Schemas with zero variables are trivially already ground. The
// order in which variables are eliminated does not affect the final set,
// since equality is structural on canonical name text; ground actions are
// deduplicated by that text as they are produced.
func GroundSchemas(schemas []ActionSchema, constants []string) []GroundAction {
	seen := make(map[string]struct{})
	var out []GroundAction

	pending := append([]ActionSchema(nil), schemas...)
	for len(pending) > 0 {
		s := pending[0]
		pending = pending[1:]

		vars := s.Variables()
		if len(vars) == 0 {
			name := s.CanonicalName()
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, GroundAction{CanonicalName: name, Pre: s.Pre, Eff: s.Eff})
			continue
		}

		v := vars[0]
		for _, c := range constants {
			pending = append(pending, s.substitute(v, c))
		}
	}
	return out
}
