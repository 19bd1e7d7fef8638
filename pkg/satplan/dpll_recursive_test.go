package satplan

import "testing"

func TestFindPureLiteralRestrictedToUnknownClauses(t *testing.T) {
	// Clause 1 is already satisfied (x2=true), so its occurrence of x1
	// must not count toward x1's polarity: x1 should read as pure negative
	// from clause 2 alone, not mixed.
	clauses := []Clause{{1, 2}, {-1}}
	model := NewModel(2)
	model.Set(2, True)

	id, pol, ok := findPureLiteral(clauses, model, []int{1})
	if !ok {
		t.Fatal("expected a pure literal to be found")
	}
	if id != 1 || pol != False {
		t.Errorf("findPureLiteral = (%d, %v), want (1, False)", id, pol)
	}
}

func TestFindUnitClauseSkipsSatisfied(t *testing.T) {
	// findUnitClause scans the full clause set, but a satisfied clause must
	// still never be reported as forcing anything, even though it "has one
	// unassigned literal" structurally.
	clauses := []Clause{{1, 2}}
	model := NewModel(2)
	model.Set(1, True) // clause already satisfied; 2 remains unassigned

	if _, ok := findUnitClause(clauses, model); ok {
		t.Fatal("a satisfied clause must not be treated as unit")
	}
}

func TestFindUnitClauseDetectsForcedLiteral(t *testing.T) {
	clauses := []Clause{{1, 2}}
	model := NewModel(2)
	model.Set(1, False)

	lit, ok := findUnitClause(clauses, model)
	if !ok || lit != 2 {
		t.Fatalf("findUnitClause = (%d, %v), want (2, true)", lit, ok)
	}
}

func TestSolveRecursiveRestoresModelOnFailure(t *testing.T) {
	// An UNSAT instance: solveRecursive must leave the model fully
	// Unknown after returning false, per its documented invariant.
	cnf := newTestCNF(2, []int{1, 2}, []int{-1, 2}, []int{1, -2}, []int{-1, -2})
	model, ok := SolveRecursive(cnf)
	if ok {
		t.Fatal("expected UNSAT")
	}
	if model != nil {
		t.Error("expected a nil model on UNSAT")
	}

	m := NewModel(2)
	if solveRecursive(cnf.Clauses, m, []int{1, 2}) {
		t.Fatal("expected solveRecursive to report UNSAT")
	}
	for id := 1; id <= 2; id++ {
		if m.Get(id) != Unknown {
			t.Errorf("variable %d = %v after failure, want Unknown", id, m.Get(id))
		}
	}
}
