package querygraph

// ConnectExistingOneToOneChild implements spec §4.D's "1:1 existing-child
// handling": before connecting a new child on a one-to-one relation,
// read the currently connected child. An If node fires only when the
// relation is inlined on the child and a previous child exists; its Then
// branch is an update of the previous child, filtered by that child's
// id. The update's SetValues map is empty: this builder is not given the
// child's FK column and does not set the back-reference to null.
//
// existingChildFilter selects the currently-connected child (by
// the parent's id). If inlinedOnChild is false, no check is needed at
// all (the new parent's write will overwrite its own FK column) and
// ConnectExistingOneToOneChild is a no-op returning a zero NodeID.
//
// requiredOnOtherSide controls the one case this pattern cannot resolve
// by disconnecting: if the other side's relation field is required and a
// previous child exists, connecting a new one is a RelationViolation.
func ConnectExistingOneToOneChild(g *Graph, inlinedOnChild bool, requiredOnOtherSide bool, childModel string, existingChildFilter Filter) (readID, ifID, disconnectID NodeID, ok bool) {
	if !inlinedOnChild {
		return 0, 0, 0, false
	}

	readID = g.AddNode(ReadQueryNode{Model: childModel, Filter: existingChildFilter})

	ifID = g.AddNode(IfNode{Predicate: func(state *ExecutionState) (bool, error) {
		return len(state.Results(readID)) > 0, nil
	}})
	g.AddEdge(readID, ifID, ExecutionOrderEdge{})

	if requiredOnOtherSide {
		// A previous child existing is itself the violation: the other
		// side cannot be null'd out because it is required.
		failID := g.AddNode(WriteQueryNode{Model: childModel, Op: OpUpdate})
		g.AddEdge(ifID, failID, ThenEdge{})
		g.AddEdge(readID, failID, ParentIdsEdge{Transform: func(Node, []RecordIdentifier) (Node, error) {
			return nil, NewRelationViolation("cannot connect a new child on a required one-to-one relation: %s already has a connected child", childModel)
		}})
		return readID, ifID, failID, true
	}

	disconnectID = g.AddNode(WriteQueryNode{Model: childModel, Op: OpUpdate, SetValues: map[string]any{}})
	g.AddEdge(ifID, disconnectID, ThenEdge{})
	g.AddEdge(readID, disconnectID, ParentIdsEdge{Transform: func(child Node, parentIDs []RecordIdentifier) (Node, error) {
		write, ok := child.(WriteQueryNode)
		if !ok {
			return nil, NewGraphBuilderError("1:1 disconnect: node is not a write query node")
		}
		if len(parentIDs) == 0 {
			return write, nil
		}
		write.Filter = mergeConjunctive(write.Filter, parentIDs[len(parentIDs)-1].ToFilter())
		return write, nil
	}})

	return readID, ifID, disconnectID, true
}
