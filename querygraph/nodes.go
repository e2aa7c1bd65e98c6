package querygraph

// Node is the closed sum {Query(ReadQuery | WriteQuery), Flow(If |
// Empty)} (spec §4.D). It is implemented by ReadQueryNode,
// WriteQueryNode, IfNode, and EmptyNode, and is not satisfiable outside
// this package.
type Node interface {
	isNode()
}

// ReadQueryNode reads rows from one model under a Filter, projecting
// Columns (which must include whatever identifier columns downstream
// ParentIds edges need).
type ReadQueryNode struct {
	Model   string
	Columns []string
	Filter  Filter

	// Reload marks this node as intended to re-read its parent by primary
	// key after a preceding write, so that ParentIds edges downstream
	// could observe relation fields that differ from the primary
	// identifier (SPEC_FULL.md's Open Question #3). It is a marker only:
	// no graph builder in this package currently constructs a node with
	// Reload set, and Execute does not inspect it — a Reload node's
	// Filter must already come from an ordinary ParentIdsEdge like any
	// other node. Wiring this up requires a graph builder that detects
	// when a relation key diverges from a parent's default projection
	// and inserts the extra read node; that builder does not exist yet.
	Reload bool
}

func (ReadQueryNode) isNode() {}

// WriteOp is the kind of mutation a WriteQueryNode performs.
type WriteOp int

const (
	OpInsert WriteOp = iota
	OpUpdate
	OpDelete
)

// WriteQueryNode inserts, updates, or deletes rows of one model.
// SetValues holds column->value assignments for Insert/Update; Filter
// selects rows for Update/Delete. Both may be rewritten in place by a
// ParentIds edge's transform before execution.
type WriteQueryNode struct {
	Model     string
	Op        WriteOp
	SetValues map[string]any
	Filter    Filter

	// Returning lists the columns this write must return (as a
	// RecordIdentifier per affected row) for downstream nodes to consume.
	Returning []string
}

func (WriteQueryNode) isNode() {}

// IfNode evaluates Predicate against the graph's accumulated execution
// state and branches: Then if true, Else if false (and an Else edge
// exists; otherwise the If is a no-op on the false branch).
type IfNode struct {
	Predicate func(state *ExecutionState) (bool, error)
}

func (IfNode) isNode() {}

// EmptyNode performs no work. It is used as a join point — e.g. the
// single sink that gates a delete behind several independent pre-delete
// relation checks (spec §4.D "Pre-delete relation checks").
type EmptyNode struct{}

func (EmptyNode) isNode() {}
