package sqlbuilder

import "github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"

// windowStrategy paginates related records with ROW_NUMBER() OVER
// (PARTITION BY parent ORDER BY ...), wrapped in an outer query that
// filters rn BETWEEN skip+1 AND skip+limit. One round trip fetches up to
// PerParentLimit children, after skipping the first Skip, for every
// parent in ParentIDs (spec §4.E, dialects that support window
// functions).
type windowStrategy struct{}

func (windowStrategy) BuildRelatedQuery(q BaseRelatedQuery) []*sqlast.SelectNode {
	inner := &sqlast.SelectNode{
		Table:   q.ChildTable,
		Columns: append(append([]string{}, q.Columns...), q.ParentIDColumn),
		Where:   sqlast.In(q.ParentIDColumn, q.ParentIDs),
		Window: &sqlast.WindowRowNumber{
			Alias:       "rn",
			PartitionBy: []string{q.ParentIDColumn},
			OrderBy:     q.OrderBy,
		},
	}

	outer := &sqlast.SelectNode{
		FromSubquery: inner,
		Alias:        "ranked",
		Columns:      append(append([]string{}, q.Columns...), q.ParentIDColumn),
		OrderBy:      append([]sqlast.OrderByTerm{{Column: q.ParentIDColumn}}, q.OrderBy...),
	}

	switch {
	case q.PerParentLimit > 0:
		outer.Where = sqlast.Between("rn", q.Skip+1, q.Skip+q.PerParentLimit)
	case q.Skip > 0:
		outer.Where = sqlast.Compare("rn", ">", q.Skip)
	}

	return []*sqlast.SelectNode{outer}
}
