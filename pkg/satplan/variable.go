package satplan

// varEntry names one slot of the variable table: either an atom at a given
// time step, or a ground action at a given time step.
type varEntry struct {
	name   string
	t      int
	isAtom bool
}

// VariableTable is the append-only, order-preserving map from positive
// integer IDs to (name, t) pairs. IDs are assigned starting at 1, in the
// order atoms and ground actions are first encountered, and are never
// reassigned. Negative IDs denote negated
// literals of the corresponding positive ID and are never stored here.
//
// The table relies on, and enforces, the arithmetic identity
// id(atom, t+1) = id(atom, t) + 1 for every atom: AllocateAtomRange
// allocates every time step for a given atom in one contiguous block, so
// frame axioms can recover the previous time step's ID as id-1.
type VariableTable struct {
	entries []varEntry          // entries[i] holds ID i+1
	atomIDs map[string]map[int]int // atom name -> t -> ID
	actIDs  map[string]map[int]int // ground action name -> t -> ID
}

// NewVariableTable returns an empty table. ID 0 is never used, matching the
// DIMACS convention that variable IDs start at 1.
func NewVariableTable() *VariableTable {
	return &VariableTable{
		atomIDs: make(map[string]map[int]int),
		actIDs:  make(map[string]map[int]int),
	}
}

// Len returns the number of allocated IDs (the highest allocated ID).
func (vt *VariableTable) Len() int {
	return len(vt.entries)
}

func (vt *VariableTable) alloc(name string, t int, isAtom bool) int {
	vt.entries = append(vt.entries, varEntry{name: name, t: t, isAtom: isAtom})
	return len(vt.entries)
}

// AllocateAtomRange allocates consecutive IDs for atom `name` at every time
// step t = 0..maxT inclusive, in one contiguous block, and returns the ID
// for t=0 (the rest follow by id(name,0)+t). It is a no-op, returning the
// existing t=0 ID, if the atom already has allocated IDs.
func (vt *VariableTable) AllocateAtomRange(name string, maxT int) int {
	if byT, ok := vt.atomIDs[name]; ok {
		return byT[0]
	}
	byT := make(map[int]int, maxT+1)
	base := 0
	for t := 0; t <= maxT; t++ {
		id := vt.alloc(name, t, true)
		if t == 0 {
			base = id
		}
		byT[t] = id
	}
	vt.atomIDs[name] = byT
	return base
}

// AtomID returns the ID of atom `name` at time t. It panics if the atom has
// not been allocated via AllocateAtomRange for that t — callers are
// expected to allocate the full Herbrand base before encoding, so the
// closed-world assumption at t=0 has IDs to attach to.
func (vt *VariableTable) AtomID(name string, t int) int {
	byT, ok := vt.atomIDs[name]
	if !ok {
		panic(&InvariantError{Msg: "atom " + name + " was never allocated"})
	}
	id, ok := byT[t]
	if !ok {
		panic(&InvariantError{Msg: "atom " + name + " has no ID at the requested time step"})
	}
	return id
}

// HasAtom reports whether `name` has been allocated in this table.
func (vt *VariableTable) HasAtom(name string) bool {
	_, ok := vt.atomIDs[name]
	return ok
}

// ActionID allocates (lazily, on first use) or returns the ID for ground
// action `name` at time t. One ID per (ground-name, t) pair.
func (vt *VariableTable) ActionID(name string, t int) int {
	byT, ok := vt.actIDs[name]
	if !ok {
		byT = make(map[int]int)
		vt.actIDs[name] = byT
	}
	if id, ok := byT[t]; ok {
		return id
	}
	id := vt.alloc(name, t, false)
	byT[t] = id
	return id
}

// NameAt returns the (name, t, isAtom) triple stored under ID id. It is
// used by the plan extractor and by DIMACS/debug output. id must be a
// previously-allocated, positive ID.
func (vt *VariableTable) NameAt(id int) (name string, t int, isAtom bool, ok bool) {
	if id < 1 || id > len(vt.entries) {
		return "", 0, false, false
	}
	e := vt.entries[id-1]
	return e.name, e.t, e.isAtom, true
}
