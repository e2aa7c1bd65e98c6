package querygraph

// Edge is the closed sum {ExecutionOrder, Then, Else, ParentIds}
// (spec §4.D "Edge semantics"). It is implemented by
// ExecutionOrderEdge, ThenEdge, ElseEdge, and ParentIdsEdge, and is not
// satisfiable outside this package.
type Edge interface {
	isEdge()
}

// ExecutionOrderEdge is a pure happens-before constraint: the source
// node must complete before the target node starts, with no data
// dependency between them.
type ExecutionOrderEdge struct{}

func (ExecutionOrderEdge) isEdge() {}

// ThenEdge is taken from an IfNode when its predicate evaluates true.
type ThenEdge struct{}

func (ThenEdge) isEdge() {}

// ElseEdge is taken from an IfNode when its predicate evaluates false.
type ElseEdge struct{}

func (ElseEdge) isEdge() {}

// ParentIdsTransform rewrites the child node using the parent's
// returned RecordIdentifiers. It must be pure with respect to its inputs
// (spec §4.D invariants) and may fail — e.g. when it requires exactly
// one parent id and finds zero.
type ParentIdsTransform func(child Node, parentIDs []RecordIdentifier) (Node, error)

// ParentIdsEdge feeds the parent node's returned identifiers into
// Transform, which rewrites the child node (e.g. injecting a filter or
// argument) before the child executes.
type ParentIdsEdge struct {
	Transform ParentIdsTransform
}

func (ParentIdsEdge) isEdge() {}
