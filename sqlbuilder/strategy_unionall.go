package sqlbuilder

import "github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"

// unionAllStrategy paginates related records without window functions:
// one query per parent id, each filtered to that parent, skipping the
// first Skip rows and capped at PerParentLimit, to be executed and
// concatenated by the caller (spec §4.E, dialects without
// window-function support).
type unionAllStrategy struct{}

func (unionAllStrategy) BuildRelatedQuery(q BaseRelatedQuery) []*sqlast.SelectNode {
	queries := make([]*sqlast.SelectNode, len(q.ParentIDs))
	for i, parentID := range q.ParentIDs {
		queries[i] = &sqlast.SelectNode{
			Table:   q.ChildTable,
			Columns: q.Columns,
			Where:   sqlast.Eq(q.ParentIDColumn, parentID),
			OrderBy: q.OrderBy,
			Limit:   q.PerParentLimit,
			Offset:  q.Skip,
		}
	}
	return queries
}
