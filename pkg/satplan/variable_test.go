package satplan

import "testing"

func TestAllocateAtomRangeContiguous(t *testing.T) {
	vt := NewVariableTable()
	base := vt.AllocateAtomRange("p", 2)
	for t0 := 0; t0 <= 2; t0++ {
		got := vt.AtomID("p", t0)
		want := base + t0
		if got != want {
			t.Errorf("AtomID(p, %d) = %d, want %d (id(atom,t+1) = id(atom,t)+1)", t0, got, want)
		}
	}
}

func TestAllocateAtomRangeIdempotent(t *testing.T) {
	vt := NewVariableTable()
	first := vt.AllocateAtomRange("p", 2)
	second := vt.AllocateAtomRange("p", 5)
	if first != second {
		t.Errorf("re-allocating an already-allocated atom changed its base ID: %d -> %d", first, second)
	}
	if vt.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (re-allocation must not grow the table)", vt.Len())
	}
}

func TestAtomIDPanicsWhenUnallocated(t *testing.T) {
	vt := NewVariableTable()
	defer func() {
		if recover() == nil {
			t.Error("expected AtomID to panic for an unallocated atom")
		}
	}()
	vt.AtomID("p", 0)
}

func TestActionIDLazyAndStable(t *testing.T) {
	vt := NewVariableTable()
	id1 := vt.ActionID("move a b", 0)
	id2 := vt.ActionID("move a b", 0)
	if id1 != id2 {
		t.Errorf("ActionID not stable across calls: %d vs %d", id1, id2)
	}
	id3 := vt.ActionID("move a b", 1)
	if id3 == id1 {
		t.Error("expected a distinct ID for a distinct time step")
	}
}

func TestNameAtRoundTrips(t *testing.T) {
	vt := NewVariableTable()
	base := vt.AllocateAtomRange("p", 1)
	actID := vt.ActionID("move a b", 0)

	name, t0, isAtom, ok := vt.NameAt(base)
	if !ok || name != "p" || t0 != 0 || !isAtom {
		t.Errorf("NameAt(base) = (%q, %d, %v, %v), want (p, 0, true, true)", name, t0, isAtom, ok)
	}

	name, t0, isAtom, ok = vt.NameAt(actID)
	if !ok || name != "move a b" || t0 != 0 || isAtom {
		t.Errorf("NameAt(actID) = (%q, %d, %v, %v), want (move a b, 0, false, true)", name, t0, isAtom, ok)
	}

	if _, _, _, ok := vt.NameAt(0); ok {
		t.Error("NameAt(0) should report ok=false")
	}
}
