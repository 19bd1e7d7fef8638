package satplan

// HerbrandBase is the set of ground atom names relevant to a problem at a
// given horizon: every atom named in the initial state, the goal, or any
// ground action's preconditions/effects. Order is insertion order
// (initial state, then goal, then grounded actions in grounding order),
// which the CNF encoder relies on for deterministic clause emission.
type HerbrandBase struct {
	order []string
	set   map[string]struct{}
}

// BuildHerbrandBase walks init, goal, and every ground action's Pre/Eff in
// that order, collecting distinct atom names.
func BuildHerbrandBase(init, goal []Literal, actions []GroundAction) *HerbrandBase {
	hb := &HerbrandBase{set: make(map[string]struct{})}
	for _, l := range init {
		hb.add(l.CanonicalAtom())
	}
	for _, l := range goal {
		hb.add(l.CanonicalAtom())
	}
	for _, a := range actions {
		for _, l := range a.Pre {
			hb.add(l.CanonicalAtom())
		}
		for _, l := range a.Eff {
			hb.add(l.CanonicalAtom())
		}
	}
	return hb
}

func (hb *HerbrandBase) add(name string) {
	if _, ok := hb.set[name]; ok {
		return
	}
	hb.set[name] = struct{}{}
	hb.order = append(hb.order, name)
}

// Atoms returns the Herbrand base's atom names in insertion order.
func (hb *HerbrandBase) Atoms() []string {
	return hb.order
}

// Contains reports whether name is a member of the Herbrand base.
func (hb *HerbrandBase) Contains(name string) bool {
	_, ok := hb.set[name]
	return ok
}

// Len returns the number of distinct atoms in the base.
func (hb *HerbrandBase) Len() int {
	return len(hb.order)
}

// AllocateVariables gives every atom in the Herbrand base (H+2) time-indexed
// IDs, t = 0..H+1, and every ground action one ID per t = 0..H, in
// Herbrand-insertion order for atoms and grounding order for actions. It
// must run before any clause referencing these IDs is emitted.
func (hb *HerbrandBase) AllocateVariables(vt *VariableTable, actions []GroundAction, horizon int) {
	for _, name := range hb.order {
		vt.AllocateAtomRange(name, horizon+1)
	}
	for _, a := range actions {
		for t := 0; t <= horizon; t++ {
			vt.ActionID(a.CanonicalName, t)
		}
	}
}
