//go:build loomquery_debug

package querygraph

// validateAcyclic panics if g now contains a cycle. It only runs when
// built with the loomquery_debug tag: a cycle is a builder bug (spec
// §4.D invariants: "the graph is acyclic; a cycle is a builder bug and
// must panic in debug"), and walking the whole edge list on every
// AddEdge call is too costly to pay in production builds.
func validateAcyclic(g *Graph) {
	state := make([]int, len(g.nodes)) // 0=unvisited, 1=in-progress, 2=done

	var visit func(id NodeID) bool
	visit = func(id NodeID) bool {
		switch state[id] {
		case 1:
			return true
		case 2:
			return false
		}
		state[id] = 1
		for _, e := range g.edges {
			if e.From == id && visit(e.To) {
				return true
			}
		}
		state[id] = 2
		return false
	}

	for id := range g.nodes {
		if state[id] == 0 && visit(NodeID(id)) {
			panic("querygraph: cycle detected in query graph")
		}
	}
}
