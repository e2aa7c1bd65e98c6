package sqlast

// Visitor renders or otherwise walks a statement Node. Dialect renderers
// implement Visitor and accumulate output as they go.
type Visitor interface {
	VisitSelect(node *SelectNode) error
	VisitInsert(node *InsertNode) error
	VisitUpdate(node *UpdateNode) error
	VisitDelete(node *DeleteNode) error
}
