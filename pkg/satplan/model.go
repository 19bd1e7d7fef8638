package satplan

// Value is a three-valued truth assignment for one variable ID.
type Value int8

const (
	Unknown Value = iota
	True
	False
)

// Model is a (possibly partial) assignment of Values to variable IDs,
// indexed densely by ID (index 0 is unused, since ID 0 never occurs).
// Models are ephemeral to a single search.
type Model struct {
	values []Value
}

// NewModel returns a model large enough to hold IDs 1..n, all Unknown.
func NewModel(n int) *Model {
	return &Model{values: make([]Value, n+1)}
}

// Get returns the assignment for variable id.
func (m *Model) Get(id int) Value {
	if id < 0 || id >= len(m.values) {
		return Unknown
	}
	return m.values[id]
}

// Set assigns v to variable id.
func (m *Model) Set(id int, v Value) {
	m.values[id] = v
}

// Satisfies reports whether literal lit (a signed variable ID) is true
// under the model; it is false both when the literal is falsified and when
// its variable is still Unknown.
func (m *Model) Satisfies(lit int) bool {
	id := abs(lit)
	v := m.Get(id)
	if v == Unknown {
		return false
	}
	if lit > 0 {
		return v == True
	}
	return v == False
}

// Falsified reports whether literal lit is assigned the opposite of what
// would satisfy it (i.e. its variable is assigned, but not to satisfy lit).
func (m *Model) Falsified(lit int) bool {
	id := abs(lit)
	v := m.Get(id)
	if v == Unknown {
		return false
	}
	if lit > 0 {
		return v == False
	}
	return v == True
}

// Assigned reports whether variable id has a definite value.
func (m *Model) Assigned(id int) bool {
	return m.Get(id) != Unknown
}

// Bool returns whether variable id is assigned true, for callers that only
// care about total models (e.g. the plan extractor).
func (m *Model) Bool(id int) bool {
	return m.Get(id) == True
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// clauseValue computes a clause's three-valued truth under a model: True if
// any literal is satisfied, False if every literal's variable is assigned
// and none satisfies it, Unknown otherwise.
func clauseValue(c Clause, m *Model) Value {
	allAssigned := true
	for _, lit := range c {
		if m.Satisfies(lit) {
			return True
		}
		if !m.Assigned(abs(lit)) {
			allAssigned = false
		}
	}
	if allAssigned {
		return False
	}
	return Unknown
}
