package satplan

import "sort"

// ExtractPlan reads a satisfying model back into an ordered plan: every ID
// the VariableTable names as a ground action, whose model value is True, in
// ascending (t, ID) order. Ties within a time step fall back to ID order,
// which is itself the order ground actions were first allocated.
func ExtractPlan(vt *VariableTable, model *Model) []string {
	type step struct {
		t    int
		id   int
		name string
	}
	var steps []step
	for id := 1; id <= vt.Len(); id++ {
		name, t, isAtom, ok := vt.NameAt(id)
		if !ok || isAtom {
			continue
		}
		if !model.Bool(id) {
			continue
		}
		steps = append(steps, step{t: t, id: id, name: name})
	}
	sort.Slice(steps, func(i, j int) bool {
		if steps[i].t != steps[j].t {
			return steps[i].t < steps[j].t
		}
		return steps[i].id < steps[j].id
	})
	plan := make([]string, len(steps))
	for i, s := range steps {
		plan[i] = s.name
	}
	return plan
}
