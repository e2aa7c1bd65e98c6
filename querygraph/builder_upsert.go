package querygraph

// connectNestedUpsertCore builds the shape common to every nested
// upsert (spec §4.D "Nested upsert"): read the child under readFilter,
// an If(children_exist) node, a Then branch that updates the found
// child, and an Else branch that creates a new one.
func connectNestedUpsertCore(g *Graph, childModel string, readFilter Filter, updateCols, createCols map[string]any) (readID, ifID, updateID, createID NodeID) {
	readID = g.AddNode(ReadQueryNode{Model: childModel, Filter: readFilter})

	ifID = g.AddNode(IfNode{Predicate: func(state *ExecutionState) (bool, error) {
		return len(state.Results(readID)) > 0, nil
	}})
	g.AddEdge(readID, ifID, ExecutionOrderEdge{})

	updateID = g.AddNode(WriteQueryNode{Model: childModel, Op: OpUpdate, SetValues: updateCols})
	g.AddEdge(ifID, updateID, ThenEdge{})
	g.AddEdge(readID, updateID, ParentIdsEdge{Transform: func(child Node, parentIDs []RecordIdentifier) (Node, error) {
		if len(parentIDs) == 0 {
			return nil, NewGraphBuilderError("nested upsert: If(exists) took the update branch with no read result")
		}
		update, ok := child.(WriteQueryNode)
		if !ok {
			return nil, NewGraphBuilderError("nested upsert: update branch is not a write query node")
		}
		update.Filter = mergeConjunctive(update.Filter, parentIDs[len(parentIDs)-1].ToFilter())
		return update, nil
	}})

	createID = g.AddNode(WriteQueryNode{Model: childModel, Op: OpInsert, SetValues: createCols})
	g.AddEdge(ifID, createID, ElseEdge{})

	return readID, ifID, updateID, createID
}

// ConnectNestedUpsertManyToMany builds the many-to-many shape: the create
// branch additionally feeds a connect write node that inserts a join-table
// row, setting childColumn+"_"+field from the created child's id. The
// connect node runs after update too, but is skipped when the update
// branch is taken, since its ParentIds parent (create) then never runs.
// parentColumn is not written by this builder.
func ConnectNestedUpsertManyToMany(g *Graph, childModel string, readFilter Filter, updateCols, createCols map[string]any, joinTableModel string, parentColumn, childColumn string) (readID, ifID, updateID, createID, connectID NodeID) {
	readID, ifID, updateID, createID = connectNestedUpsertCore(g, childModel, readFilter, updateCols, createCols)

	connectID = g.AddNode(WriteQueryNode{Model: joinTableModel, Op: OpInsert, SetValues: map[string]any{}})
	g.AddEdge(updateID, connectID, ExecutionOrderEdge{})
	g.AddEdge(createID, connectID, ParentIdsEdge{Transform: func(child Node, parentIDs []RecordIdentifier) (Node, error) {
		write, ok := child.(WriteQueryNode)
		if !ok {
			return nil, NewGraphBuilderError("nested upsert: connect node is not a write query node")
		}
		if len(parentIDs) > 0 {
			for _, fv := range parentIDs[len(parentIDs)-1].Values {
				write.SetValues[childColumn+"_"+fv.Field] = fv.Value
			}
		}
		return write, nil
	}})

	return readID, ifID, updateID, createID, connectID
}

// ConnectNestedUpsertInlinedInParent builds the one-to-x shape where the
// foreign key lives on the parent: the create branch additionally feeds
// an update-parent node that writes the new child's id back onto the
// parent record.
func ConnectNestedUpsertInlinedInParent(g *Graph, childModel string, readFilter Filter, updateCols, createCols map[string]any, parentModel, parentFKColumn string, parentFilter Filter) (readID, ifID, updateID, createID, updateParentID NodeID) {
	readID, ifID, updateID, createID = connectNestedUpsertCore(g, childModel, readFilter, updateCols, createCols)

	updateParentID = g.AddNode(WriteQueryNode{Model: parentModel, Op: OpUpdate, Filter: parentFilter, SetValues: map[string]any{}})
	g.AddEdge(createID, updateParentID, ParentIdsEdge{Transform: func(child Node, parentIDs []RecordIdentifier) (Node, error) {
		write, ok := child.(WriteQueryNode)
		if !ok {
			return nil, NewGraphBuilderError("nested upsert: update-parent node is not a write query node")
		}
		if len(parentIDs) == 0 {
			return nil, NewGraphBuilderError("Expected a valid child ID to be present for nested upsert inlined-in-parent case.")
		}
		child0 := parentIDs[len(parentIDs)-1]
		if len(child0.Values) > 0 {
			write.SetValues[parentFKColumn] = child0.Values[len(child0.Values)-1].Value
		}
		return write, nil
	}})

	return readID, ifID, updateID, createID, updateParentID
}

// ConnectNestedUpsertInlinedInChild builds the one-to-x shape where the
// foreign key lives on the child: a ParentIds edge from parentID injects
// the parent's id directly into the update and create branches'
// SetValues, so no extra node is needed after either branch.
func ConnectNestedUpsertInlinedInChild(g *Graph, parentID NodeID, childModel, childFKColumn string, readFilter Filter, updateCols, createCols map[string]any) (readID, ifID, updateID, createID NodeID) {
	readID, ifID, updateID, createID = connectNestedUpsertCore(g, childModel, readFilter, updateCols, createCols)

	injectParentID := func(child Node, parentIDs []RecordIdentifier) (Node, error) {
		write, ok := child.(WriteQueryNode)
		if !ok {
			return nil, NewGraphBuilderError("nested upsert: branch is not a write query node")
		}
		if len(parentIDs) == 0 {
			return nil, NewGraphBuilderError("Expected a valid parent ID to be present for nested upsert inlined-in-child case.")
		}
		p := parentIDs[len(parentIDs)-1]
		if len(p.Values) > 0 {
			write.SetValues[childFKColumn] = p.Values[len(p.Values)-1].Value
		}
		return write, nil
	}

	g.AddEdge(parentID, updateID, ParentIdsEdge{Transform: injectParentID})
	g.AddEdge(parentID, createID, ParentIdsEdge{Transform: injectParentID})

	return readID, ifID, updateID, createID
}
