package satplan

import "testing"

func TestSolveIterativeUnitPropagationCascades(t *testing.T) {
	// 1 forces 2 (via -1 v 2), 2 forces 3 (via -2 v 3): a chain of
	// cascading unit propagation from a single initial unit clause. The
	// clause -3 v 2 gives 3 a negative occurrence, so no variable is pure
	// and the pure-literal rule cannot settle 3 before the unit clause.
	cnf := newTestCNF(3, []int{1}, []int{-1, 2}, []int{-2, 3}, []int{-3, 2})
	model, ok := SolveIterative(cnf)
	if !ok {
		t.Fatal("expected SAT")
	}
	if !model.Bool(1) || !model.Bool(2) || !model.Bool(3) {
		t.Errorf("expected all three variables true, got %v %v %v", model.Bool(1), model.Bool(2), model.Bool(3))
	}
}

func TestSolveIterativeBacktracksOnConflict(t *testing.T) {
	cnf := newTestCNF(2, []int{1, 2}, []int{-1, 2}, []int{1, -2}, []int{-1, -2})
	_, ok := SolveIterative(cnf)
	if ok {
		t.Fatal("expected UNSAT")
	}
}

func TestSolveIterativeAssignsUnconstrainedVariables(t *testing.T) {
	// Variable 2 never appears in any clause; once the one clause that
	// does exist is satisfied, it must still receive a total assignment.
	cnf := newTestCNF(2, []int{1})
	model, ok := SolveIterative(cnf)
	if !ok {
		t.Fatal("expected SAT")
	}
	if model.Get(2) == Unknown {
		t.Error("expected every variable to be assigned in the returned model, including unconstrained ones")
	}
}

func TestIterSolverRestoreUndoesModification(t *testing.T) {
	cnf := newTestCNF(2, []int{1, 2}, []int{-1, 2})
	s := &iterSolver{
		assignedVal:     make([]Value, cnf.Vars.Len()+1),
		modifiedAt:      make(map[int][]restoreRec),
		firstModifierOf: make(map[int]int),
	}
	s.clauses = make([]liveClause, len(cnf.Clauses))
	for i, c := range cnf.Clauses {
		s.clauses[i] = liveClause{lits: append([]int(nil), c...)}
	}
	s.active = len(s.clauses)

	conflict := s.pushAndPropagate(1, True, kindDecision, false)
	if conflict {
		t.Fatal("did not expect a conflict")
	}
	if !s.clauses[0].removed {
		t.Fatal("expected clause {1,2} to be satisfied and removed")
	}

	s.restorePosition(0)
	if s.clauses[0].removed {
		t.Error("expected restorePosition to undo the removal")
	}
	if len(s.clauses[0].lits) != 2 {
		t.Errorf("expected clause {1,2} content restored, got %v", s.clauses[0].lits)
	}
}

func TestAnalyzeConflictSkipsPureAndUnit(t *testing.T) {
	s := &iterSolver{
		trail: []trailEntry{
			{id: 1, val: True, kind: kindPure},
			{id: 2, val: True, kind: kindUnit},
			{id: 3, val: True, kind: kindDecision, triedBoth: false},
		},
	}
	level, ok := s.analyzeConflict()
	if !ok || level != 2 {
		t.Fatalf("analyzeConflict() = (%d, %v), want (2, true)", level, ok)
	}
}

func TestAnalyzeConflictNoneLeftIsUNSAT(t *testing.T) {
	s := &iterSolver{
		trail: []trailEntry{
			{id: 1, val: True, kind: kindPure},
			{id: 2, val: True, kind: kindDecision, triedBoth: true},
		},
	}
	if _, ok := s.analyzeConflict(); ok {
		t.Error("expected no untried decision to analyze as UNSAT")
	}
}
