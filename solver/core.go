package solver

import (
	"fmt"
	"sort"
)

// extractCore walks the proof DAG rooted at the given clause and collects
// the input clauses it was ultimately derived from. The same clause may be
// reached along multiple paths; the result is deduplicated and sorted.
func extractCore(tr *tracer, st *store, root ClauseID) []ClauseID {
	seen := map[ClauseID]bool{}
	core := []ClauseID{}

	var visit func(id ClauseID)
	visit = func(id ClauseID) {
		if seen[id] {
			return
		}
		seen[id] = true

		d, ok := tr.lookup(id)
		if !ok {
			if st.get(id).Learnt() {
				panic(fmt.Sprintf("solver: learnt clause %d has no derivation", id))
			}
			core = append(core, id)
			return
		}
		visit(d.base)
		for _, step := range d.steps {
			visit(step.antecedent)
		}
	}
	visit(root)

	sort.Slice(core, func(i, j int) bool { return core[i] < core[j] })

	return core
}
