package querygraph

// RequiredRelationCheck names one required non-list relation pointing at
// the model being deleted, to verify via ConnectPreDeleteChecks.
type RequiredRelationCheck struct {
	// RelatedModel is the model on the other side of the relation.
	RelatedModel string
	// FKColumn is the column on RelatedModel holding the foreign key
	// back to the record being deleted.
	FKColumn string
	// TargetFilter selects the related rows pointing at the record being
	// deleted (typically FKColumn = <target id>).
	TargetFilter Filter
}

// ConnectPreDeleteChecks inserts, for each required non-list relation
// pointing at the model being deleted, a read-related node gated by a
// ParentIds edge that fails with RelationViolation if any related
// records exist. A single EmptyNode joins all checks in execution order
// and gates deleteID (spec §4.D "Pre-delete relation checks").
func ConnectPreDeleteChecks(g *Graph, deleteID NodeID, checks []RequiredRelationCheck) NodeID {
	sink := g.AddNode(EmptyNode{})

	for _, check := range checks {
		check := check
		readID := g.AddNode(ReadQueryNode{Model: check.RelatedModel, Columns: []string{check.FKColumn}, Filter: check.TargetFilter})

		gateID := g.AddNode(EmptyNode{})
		g.AddEdge(readID, gateID, ParentIdsEdge{Transform: func(node Node, relatedIDs []RecordIdentifier) (Node, error) {
			if len(relatedIDs) > 0 {
				return nil, NewRelationViolation("cannot delete: required relation to %s still has %d dependent row(s) via %s", check.RelatedModel, len(relatedIDs), check.FKColumn)
			}
			return node, nil
		}})

		g.AddEdge(gateID, sink, ExecutionOrderEdge{})
	}

	g.AddEdge(sink, deleteID, ExecutionOrderEdge{})
	return sink
}
