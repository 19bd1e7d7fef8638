package satplan

// SolveRecursive implements the reference recursive DPLL: clause
// evaluation, pure-literal elimination restricted to currently-unknown
// clauses, the unit-clause rule evaluated against the full clause set
// (deliberately, to keep it distinct from the pure-literal scan above),
// and finally decision with true tried before false.
//
// It does not mutate the clause slice; all state lives in the returned
// Model, which is built up and torn down in place across the recursion.
// Variables the search left unassigned are set True before the model is
// returned, so a satisfying model is total.
func SolveRecursive(cnf *CNF) (*Model, bool) {
	n := cnf.Vars.Len()
	model := NewModel(n)
	symbols := make([]int, n)
	for i := range symbols {
		symbols[i] = i + 1
	}
	if solveRecursive(cnf.Clauses, model, symbols) {
		for id := 1; id <= n; id++ {
			if !model.Assigned(id) {
				// Every clause is already satisfied; any value is consistent.
				model.Set(id, True)
			}
		}
		return model, true
	}
	return nil, false
}

// solveRecursive maintains the invariant that a `false` return leaves model
// exactly as it found it: every assignment this call level made (whether
// via the pure-literal rule, the unit-clause rule, or its own decision) is
// undone before returning false. A `true` return leaves model as the
// satisfying assignment.
func solveRecursive(clauses []Clause, model *Model, symbols []int) bool {
	switch evaluateAll(clauses, model) {
	case False:
		return false
	case True:
		return true
	}

	if id, pol, ok := findPureLiteral(clauses, model, symbols); ok {
		model.Set(id, pol)
		if solveRecursive(clauses, model, removeSymbol(symbols, id)) {
			return true
		}
		model.Set(id, Unknown)
		return false
	}

	if lit, ok := findUnitClause(clauses, model); ok {
		id := abs(lit)
		pol := True
		if lit < 0 {
			pol = False
		}
		model.Set(id, pol)
		if solveRecursive(clauses, model, removeSymbol(symbols, id)) {
			return true
		}
		model.Set(id, Unknown)
		return false
	}

	if len(symbols) == 0 {
		// All clauses were Unknown but no symbol remains to decide on;
		// this cannot happen for a well-formed CNF over this model's
		// domain, but is not a satisfying assignment either way.
		return false
	}
	id := symbols[0]
	rest := symbols[1:]

	model.Set(id, True)
	if solveRecursive(clauses, model, rest) {
		return true
	}
	model.Set(id, Unknown)

	model.Set(id, False)
	if solveRecursive(clauses, model, rest) {
		return true
	}
	model.Set(id, Unknown)

	return false
}

func removeSymbol(symbols []int, id int) []int {
	out := make([]int, 0, len(symbols)-1)
	for _, s := range symbols {
		if s != id {
			out = append(out, s)
		}
	}
	return out
}

// evaluateAll computes the CNF's three-valued truth under model: False if
// any clause is False, True if every clause is True, Unknown otherwise.
func evaluateAll(clauses []Clause, model *Model) Value {
	allTrue := true
	for _, c := range clauses {
		switch clauseValue(c, model) {
		case False:
			return False
		case True:
			// stays allTrue unless another clause says otherwise
		default:
			allTrue = false
		}
	}
	if allTrue {
		return True
	}
	return Unknown
}

// findPureLiteral looks for a symbol in `symbols` that appears with only
// one polarity across every currently-Unknown clause. Ties are broken by
// `symbols` order.
func findPureLiteral(clauses []Clause, model *Model, symbols []int) (id int, pol Value, ok bool) {
	const (
		sawPos = 1
		sawNeg = 2
	)
	polarity := make(map[int]int)
	for _, c := range clauses {
		if clauseValue(c, model) != Unknown {
			continue
		}
		for _, lit := range c {
			vid := abs(lit)
			if model.Assigned(vid) {
				continue
			}
			if lit > 0 {
				polarity[vid] |= sawPos
			} else {
				polarity[vid] |= sawNeg
			}
		}
	}
	for _, s := range symbols {
		mask, seen := polarity[s]
		if !seen {
			continue
		}
		switch mask {
		case sawPos:
			return s, True, true
		case sawNeg:
			return s, False, true
		}
	}
	return 0, Unknown, false
}

// findUnitClause scans the full clause set (not just unknown clauses, as
// findPureLiteral does) for a clause with exactly one unassigned literal
// and every other literal falsified, returning that literal.
func findUnitClause(clauses []Clause, model *Model) (lit int, ok bool) {
	for _, c := range clauses {
		count := 0
		candidate := 0
		satisfied := false
		for _, l := range c {
			if model.Satisfies(l) {
				satisfied = true
				break
			}
			if !model.Assigned(abs(l)) {
				count++
				candidate = l
			}
		}
		if satisfied {
			continue
		}
		if count == 1 {
			return candidate, true
		}
	}
	return 0, false
}
