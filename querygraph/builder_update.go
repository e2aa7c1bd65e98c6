package querygraph

// ConnectNestedUpdate inserts a read-children-by-parent node and an
// update node for a nested to-one update, wired by a ParentIds edge that
// pops exactly one parent id and injects it as an additional filter on
// the update (spec §4.D "Nested update (to-one)").
//
// If the parent relation is to-many, whereFilter (the caller's required,
// single-key, non-null where argument) becomes the filter on the
// read-children node; otherwise it is ignored and an empty filter is
// used, since a to-one relation already uniquely determines the child.
func ConnectNestedUpdate(g *Graph, childModel string, parentIsList bool, whereFilter Filter, childUpdateColumns map[string]any) (readID, updateID NodeID) {
	readFilter := Filter{}
	if parentIsList {
		readFilter = whereFilter
	}

	readID = g.AddNode(ReadQueryNode{Model: childModel, Filter: readFilter})
	updateID = g.AddNode(WriteQueryNode{Model: childModel, Op: OpUpdate, SetValues: childUpdateColumns, Filter: Filter{}})

	g.AddEdge(readID, updateID, ParentIdsEdge{Transform: func(child Node, parentIDs []RecordIdentifier) (Node, error) {
		if len(parentIDs) == 0 {
			return nil, NewGraphBuilderError("Expected a valid parent ID to be present for nested update to-one case.")
		}
		popped := parentIDs[len(parentIDs)-1]

		update, ok := child.(WriteQueryNode)
		if !ok {
			return nil, NewGraphBuilderError("nested update to-one: child node is not a write query node")
		}
		update.Filter = mergeConjunctive(update.Filter, popped.ToFilter())
		return update, nil
	}})

	return readID, updateID
}

// ConnectNestedUpdateMany is ConnectNestedUpdate's to-many counterpart:
// the injected filter is an OR over all returned parent ids, intersected
// via AND with the caller-supplied filter (spec §4.D "Nested
// update-many").
func ConnectNestedUpdateMany(g *Graph, childModel string, whereFilter Filter, childUpdateColumns map[string]any) (readID, updateID NodeID) {
	readID = g.AddNode(ReadQueryNode{Model: childModel, Filter: whereFilter})
	updateID = g.AddNode(WriteQueryNode{Model: childModel, Op: OpUpdate, SetValues: childUpdateColumns, Filter: whereFilter})

	g.AddEdge(readID, updateID, ParentIdsEdge{Transform: func(child Node, parentIDs []RecordIdentifier) (Node, error) {
		update, ok := child.(WriteQueryNode)
		if !ok {
			return nil, NewGraphBuilderError("nested update-many: child node is not a write query node")
		}
		update.Filter = mergeConjunctive(update.Filter, IdentifiersToFilter(parentIDs))
		return update, nil
	}})

	return readID, updateID
}

// mergeConjunctive ANDs two filters together by concatenating their
// Conditions. OrGroups from a side whose counterpart has none are kept
// as-is; when both sides have OrGroups, each pair of groups is joined
// into one group so that both disjunctions must hold.
func mergeConjunctive(a, b Filter) Filter {
	out := Filter{
		Conditions: append(append([]FilterCondition{}, a.Conditions...), b.Conditions...),
	}
	switch {
	case len(a.OrGroups) == 0:
		out.OrGroups = append([][]FilterCondition{}, b.OrGroups...)
	case len(b.OrGroups) == 0:
		out.OrGroups = append([][]FilterCondition{}, a.OrGroups...)
	default:
		for _, ga := range a.OrGroups {
			for _, gb := range b.OrGroups {
				out.OrGroups = append(out.OrGroups, append(append([]FilterCondition{}, ga...), gb...))
			}
		}
	}
	return out
}
