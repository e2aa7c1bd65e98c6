// Package sqlast defines the SQL statement AST rendered by the dialect
// packages under sqlbuilder/dialects. It uses a Node/Visitor shape:
// every statement node implements Accept, and a Visitor renders (or
// otherwise walks) the tree without
// the node types needing to know about any particular backend.
package sqlast

// Node is any SQL statement node a Visitor can render.
type Node interface {
	Accept(visitor Visitor) error
}

// PredicateKind distinguishes the shapes a WHERE/ON expression can take
// (spec §4.E predicate composition: single-column equality/membership,
// and conjunction/disjunction of such conditions).
type PredicateKind int

const (
	// PredEq compares Column to exactly one of Values.
	PredEq PredicateKind = iota
	// PredIn compares Column against the set Values via IN(...).
	PredIn
	// PredAnd requires every child to hold.
	PredAnd
	// PredOr requires at least one child to hold.
	PredOr
	// PredCompare applies a binary comparison operator (e.g. "<=") other
	// than equality/membership, used by the window-function
	// related-records strategy to filter on the projected row number.
	PredCompare
	// PredBetween compares Column against an inclusive [Values[0], Values[1]]
	// range, used by the window-function related-records strategy to
	// apply both a skip and a limit to the projected row number in one
	// condition.
	PredBetween
)

// PredicateNode is one node of a WHERE/ON expression tree. Leaf nodes
// (PredEq, PredIn, PredBetween) carry Column/Values; PredAnd/PredOr
// carry Children.
type PredicateNode struct {
	Kind     PredicateKind
	Column   string
	Op       string // valid when Kind == PredCompare, e.g. "<=", ">"
	Values   []any
	Children []*PredicateNode
}

// And builds a conjunction, flattening nil children.
func And(children ...*PredicateNode) *PredicateNode {
	return compose(PredAnd, children)
}

// Or builds a disjunction, flattening nil children.
func Or(children ...*PredicateNode) *PredicateNode {
	return compose(PredOr, children)
}

func compose(kind PredicateKind, children []*PredicateNode) *PredicateNode {
	filtered := make([]*PredicateNode, 0, len(children))
	for _, c := range children {
		if c != nil {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &PredicateNode{Kind: kind, Children: filtered}
}

// Eq builds a single-column equality leaf.
func Eq(column string, value any) *PredicateNode {
	return &PredicateNode{Kind: PredEq, Column: column, Values: []any{value}}
}

// In builds a single-column membership leaf.
func In(column string, values []any) *PredicateNode {
	return &PredicateNode{Kind: PredIn, Column: column, Values: values}
}

// Compare builds a single-column binary comparison leaf, e.g.
// Compare("rn", "<=", 20) for "rn <= 20".
func Compare(column, op string, value any) *PredicateNode {
	return &PredicateNode{Kind: PredCompare, Column: column, Op: op, Values: []any{value}}
}

// Between builds a single-column inclusive range leaf, e.g.
// Between("rn", 11, 20) for "rn BETWEEN 11 AND 20".
func Between(column string, low, high any) *PredicateNode {
	return &PredicateNode{Kind: PredBetween, Column: column, Values: []any{low, high}}
}

// OrderByTerm is one column of an ORDER BY clause.
type OrderByTerm struct {
	Column string
	Desc   bool
}

// JoinNode is one INNER/LEFT JOIN clause of a SelectNode.
type JoinNode struct {
	Table string
	Alias string
	Left  bool
	On    *PredicateNode
}

// WindowRowNumber asks the renderer to project a ROW_NUMBER() OVER
// (PARTITION BY PartitionBy ORDER BY ...) column named Alias, used by
// the window-function related-records strategy (spec §4.E).
type WindowRowNumber struct {
	Alias       string
	PartitionBy []string
	OrderBy     []OrderByTerm
}

// SelectNode is a SELECT statement. Exactly one of Table or
// FromSubquery should be set; FromSubquery lets the related-records
// window-function strategy wrap a ROW_NUMBER()-projecting query and
// filter on the projected column, which plain SQL can't do in the same
// SELECT's WHERE clause.
type SelectNode struct {
	Table        string
	FromSubquery *SelectNode
	Alias        string
	Columns      []string
	Joins        []JoinNode
	Where        *PredicateNode
	OrderBy      []OrderByTerm
	Limit        int // 0 means unset
	Offset       int
	Window       *WindowRowNumber
	Distinct     bool
}

// Accept implements Node.
func (n *SelectNode) Accept(v Visitor) error { return v.VisitSelect(n) }

// InsertNode is an INSERT statement inserting one or more rows.
type InsertNode struct {
	Table     string
	Columns   []string
	Values    [][]any
	Returning []string
}

// Accept implements Node.
func (n *InsertNode) Accept(v Visitor) error { return v.VisitInsert(n) }

// UpdateNode is an UPDATE statement.
type UpdateNode struct {
	Table     string
	Set       []SetClause
	Where     *PredicateNode
	Returning []string
}

// SetClause is one column assignment of an UPDATE statement. A slice
// rather than a map keeps column order deterministic for golden-SQL
// tests.
type SetClause struct {
	Column string
	Value  any
}

// Accept implements Node.
func (n *UpdateNode) Accept(v Visitor) error { return v.VisitUpdate(n) }

// DeleteNode is a DELETE statement.
type DeleteNode struct {
	Table     string
	Where     *PredicateNode
	Returning []string
}

// Accept implements Node.
func (n *DeleteNode) Accept(v Visitor) error { return v.VisitDelete(n) }
