package satplan

// Clause is an ordered, duplicate-free disjunction of signed literals
// (positive = true, negative = negated variable ID). abs(lit) is always a
// valid ID in the CNF's VariableTable.
type Clause []int

// CNF is the conjunction of Clauses emitted by Encode, together with the
// VariableTable that gives every ID its (name, t) meaning.
type CNF struct {
	Vars    *VariableTable
	Clauses []Clause
}

// FrameStyle selects between the two equivalent frame-axiom encodings.
type FrameStyle int

const (
	// FrameClassical emits, for every action and every atom the action
	// does not mention as an effect, two implications preserving that
	// atom's value across the transition.
	FrameClassical FrameStyle = iota
	// FrameSplit emits, for every fluent-change direction, a single
	// clause asserting some effecting action fired, cutting clause count
	// when per-action arities are high.
	FrameSplit
)

// EncodeOptions controls clause emission.
type EncodeOptions struct {
	Horizon int
	Frame   FrameStyle
}

// clauseSet deduplicates clauses as they are appended, so the encoder never
// materialises the same clause twice. Clauses are compared as their
// literal sequence; this is sufficient because every clause the encoder
// builds is constructed with a fixed literal order.
type clauseSet struct {
	clauses []Clause
	seen    map[string]struct{}
}

func newClauseSet() *clauseSet {
	return &clauseSet{seen: make(map[string]struct{})}
}

func (cs *clauseSet) add(lits ...int) {
	c := Clause(append([]int(nil), lits...))
	key := clauseKey(c)
	if _, ok := cs.seen[key]; ok {
		return
	}
	cs.seen[key] = struct{}{}
	cs.clauses = append(cs.clauses, c)
}

func clauseKey(c Clause) string {
	// A simple, allocation-light key: literals are small signed ints, so a
	// length-prefixed byte encoding avoids string-building per literal.
	buf := make([]byte, 0, 4*(len(c)+1))
	buf = appendVarint(buf, len(c))
	for _, l := range c {
		buf = appendVarint(buf, l)
	}
	return string(buf)
}

func appendVarint(buf []byte, v int) []byte {
	u := uint64(v)
	if v < 0 {
		u = uint64(-v)<<1 | 1
	} else {
		u = u << 1
	}
	for u >= 0x80 {
		buf = append(buf, byte(u)|0x80)
		u >>= 7
	}
	return append(buf, byte(u))
}

// Encode builds the CNF for "a valid plan of length <= opts.Horizon exists"
// over the given Herbrand base and ground actions. Variable allocation
// (AllocateVariables) must already have run on vt for this horizon.
func Encode(vt *VariableTable, hb *HerbrandBase, init, goal []Literal, actions []GroundAction, opts EncodeOptions) *CNF {
	h := opts.Horizon
	cs := newClauseSet()

	encodeInitialState(cs, vt, hb, init)
	encodeGoalState(cs, vt, hb, goal, h)
	encodeActionImplications(cs, vt, actions, h)

	switch opts.Frame {
	case FrameSplit:
		encodeSplitFrameAxioms(cs, vt, hb, actions, h)
	default:
		encodeClassicalFrameAxioms(cs, vt, hb, actions, h)
	}

	encodeExactlyOneAction(cs, vt, actions, h)

	return &CNF{Vars: vt, Clauses: cs.clauses}
}

// Group 1 — initial state (t=0): one unit clause per Herbrand atom, closed
// world.
func encodeInitialState(cs *clauseSet, vt *VariableTable, hb *HerbrandBase, init []Literal) {
	inInit := make(map[string]struct{}, len(init))
	for _, l := range init {
		inInit[l.CanonicalAtom()] = struct{}{}
	}
	for _, name := range hb.Atoms() {
		id := vt.AtomID(name, 0)
		if _, ok := inInit[name]; ok {
			cs.add(id)
		} else {
			cs.add(-id)
		}
	}
}

// Group 2 — goal state (t=H+1): one unit clause per goal literal.
func encodeGoalState(cs *clauseSet, vt *VariableTable, hb *HerbrandBase, goal []Literal, h int) {
	for _, l := range goal {
		id := vt.AtomID(l.CanonicalAtom(), h+1)
		if l.Negated {
			cs.add(-id)
		} else {
			cs.add(id)
		}
	}
}

// Group 3 — action implications: for every ground action, every t, every
// precondition/effect literal, the action implies that literal at its
// respective time step.
func encodeActionImplications(cs *clauseSet, vt *VariableTable, actions []GroundAction, h int) {
	for _, a := range actions {
		for t := 0; t <= h; t++ {
			act := vt.ActionID(a.CanonicalName, t)
			for _, p := range a.Pre {
				pid := vt.AtomID(p.CanonicalAtom(), t)
				cs.add(-act, signed(pid, p.Negated))
			}
			for _, e := range a.Eff {
				eid := vt.AtomID(e.CanonicalAtom(), t+1)
				cs.add(-act, signed(eid, e.Negated))
			}
		}
	}
}

// signed returns id, or -id if negated is true.
func signed(id int, negated bool) int {
	if negated {
		return -id
	}
	return id
}

// Group 4 (classical) — frame axioms: for every action, every atom it does
// not mention in its effects, every t, the atom's value is preserved
// t -> t+1 whenever the action fires at t.
func encodeClassicalFrameAxioms(cs *clauseSet, vt *VariableTable, hb *HerbrandBase, actions []GroundAction, h int) {
	for _, a := range actions {
		affected := effectAtomSet(a)
		for _, name := range hb.Atoms() {
			if _, ok := affected[name]; ok {
				continue
			}
			for t := 0; t <= h; t++ {
				act := vt.ActionID(a.CanonicalName, t)
				at0 := vt.AtomID(name, t)
				at1 := vt.AtomID(name, t+1)
				cs.add(-act, -at1, at0)
				cs.add(-act, at1, -at0)
			}
		}
	}
}

func effectAtomSet(a GroundAction) map[string]struct{} {
	m := make(map[string]struct{}, len(a.Eff))
	for _, e := range a.Eff {
		m[e.CanonicalAtom()] = struct{}{}
	}
	return m
}

// Group 4 (split) — explanatory frame axioms: for every Herbrand atom and
// every t, if some action could make it become true (resp. false) at t+1,
// assert that at least one such action fired whenever the atom's value
// actually changes. Expressed without needing the changed value as an
// assumption by conditioning on the two possible transitions separately:
// for every atom a and time t, at(a,t+1) implies at(a,t) OR one of the
// actions with effect +a fired at t; and -at(a,t+1) implies -at(a,t) OR
// one of the actions with effect -a fired at t. This is logically
// equivalent (on satisfiability) to the classical encoding and is
// considerably smaller when an action's effect list is short relative to
// the Herbrand base.
func encodeSplitFrameAxioms(cs *clauseSet, vt *VariableTable, hb *HerbrandBase, actions []GroundAction, h int) {
	positiveCausers := make(map[string][]GroundAction)
	negativeCausers := make(map[string][]GroundAction)
	for _, a := range actions {
		for _, e := range a.Eff {
			name := e.CanonicalAtom()
			if e.Negated {
				negativeCausers[name] = append(negativeCausers[name], a)
			} else {
				positiveCausers[name] = append(positiveCausers[name], a)
			}
		}
	}

	for _, name := range hb.Atoms() {
		for t := 0; t <= h; t++ {
			at0 := vt.AtomID(name, t)
			at1 := vt.AtomID(name, t+1)

			// at1 and not at0 => some positive-causer fired at t.
			lits := []int{-at1, at0}
			for _, a := range positiveCausers[name] {
				lits = append(lits, vt.ActionID(a.CanonicalName, t))
			}
			cs.add(lits...)

			// not at1 and at0 => some negative-causer fired at t.
			lits = []int{at1, -at0}
			for _, a := range negativeCausers[name] {
				lits = append(lits, vt.ActionID(a.CanonicalName, t))
			}
			cs.add(lits...)
		}
	}
}

// Group 5 — exactly one action per step: at-most-one via pairwise
// exclusion, at-least-one via a single disjunction.
func encodeExactlyOneAction(cs *clauseSet, vt *VariableTable, actions []GroundAction, h int) {
	for t := 0; t <= h; t++ {
		ids := make([]int, len(actions))
		for i, a := range actions {
			ids[i] = vt.ActionID(a.CanonicalName, t)
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				cs.add(-ids[i], -ids[j])
			}
		}
		if len(ids) > 0 {
			cs.add(ids...)
		}
	}
}
