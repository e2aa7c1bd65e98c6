package sqlbuilder

import "github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"

// BaseRelatedQuery describes a to-many related-records fetch: find, for
// each of ParentIDs, up to PerParentLimit rows of ChildTable ordered by
// OrderBy, skipping the first Skip rows per parent (spec §4.E "related
// records pagination").
type BaseRelatedQuery struct {
	ChildTable     string
	ParentIDColumn string // FK column on ChildTable referencing the parent
	ParentIDs      []any
	Columns        []string
	OrderBy        []sqlast.OrderByTerm
	Skip           int // 0 means no rows skipped
	PerParentLimit int // 0 means unlimited
}

// RelatedRecordsStrategy renders a BaseRelatedQuery to a SelectNode.
// loomquery has exactly two implementations (windowStrategy,
// unionAllStrategy): a closed, tagged enumeration rather than an open
// interface a host could add a third implementation to, matching spec
// §9's design note that this choice is a capability switch, not an
// extension point.
// RelatedRecordsStrategy.BuildRelatedQuery returns one or more
// SelectNodes to execute and concatenate: the window strategy returns a
// single query covering every parent; the union-all strategy, lacking
// window functions, returns one per-parent query instead of a single
// UNION ALL statement, since that keeps each query's LIMIT a plain
// per-parent row cap rather than requiring UNION ALL support in the
// statement AST.
type RelatedRecordsStrategy interface {
	BuildRelatedQuery(q BaseRelatedQuery) []*sqlast.SelectNode
}

// StrategyFor returns the RelatedRecordsStrategy to use for a dialect,
// given whether it (or a host override) selects the window-function
// form. Callers resolve usesRowNumber via config.Config.UsesRowNumber
// before calling StrategyFor.
func StrategyFor(usesRowNumber bool) RelatedRecordsStrategy {
	if usesRowNumber {
		return windowStrategy{}
	}
	return unionAllStrategy{}
}
