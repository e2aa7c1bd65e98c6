// Package sqlbuilder converts querygraph filters to SQL predicate trees
// (sqlast), which the dialect packages render to SQL text (component E).
// It also picks and builds the related-records pagination strategy used
// when fetching to-many relations inline with their parent records.
package sqlbuilder

import (
	"github.com/stokaro-labs/loomquery/querygraph"
	"github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"
)

// BuildPredicate converts a querygraph.Filter into one or more
// PredicateNode trees. A filter normally produces exactly one tree; a
// filter whose single IN(...) condition or OR-group set exceeds limit
// is chunked into several trees, each ANDing a slice of the oversized
// condition with every other condition, so that no tree carries more
// than limit values of that IN(...) condition, or more than limit
// OR-groups (spec §4.E PARAMETER_LIMIT chunking). OR-groups are counted
// as groups: a chunk of limit two-column groups binds 2*limit values.
func BuildPredicate(f querygraph.Filter, limit int) []*sqlast.PredicateNode {
	if limit <= 0 {
		limit = 1
	}
	if f.IsEmpty() {
		return nil
	}

	rest := make([]*sqlast.PredicateNode, 0, len(f.Conditions))
	chunkedCondIdx := -1
	for i, c := range f.Conditions {
		if chunkedCondIdx == -1 && c.Op == querygraph.FilterIn && len(c.Values) > limit {
			chunkedCondIdx = i
			continue
		}
		rest = append(rest, conditionNode(c))
	}

	if chunkedCondIdx >= 0 {
		c := f.Conditions[chunkedCondIdx]
		chunks := chunkValues(c.Values, limit)
		out := make([]*sqlast.PredicateNode, len(chunks))
		for i, chunk := range chunks {
			children := append(append([]*sqlast.PredicateNode{}, rest...), sqlast.In(c.Column, chunk))
			out[i] = sqlast.And(children...)
		}
		return withOrGroups(out, f.OrGroups, limit)
	}

	and := sqlast.And(rest...)
	return withOrGroups([]*sqlast.PredicateNode{and}, f.OrGroups, limit)
}

// withOrGroups ANDs each of bases with the (possibly chunked)
// disjunction of groups. If groups don't need chunking, every base gets
// the same single OR clause; otherwise each group chunk multiplies out
// against every base.
func withOrGroups(bases []*sqlast.PredicateNode, groups [][]querygraph.FilterCondition, limit int) []*sqlast.PredicateNode {
	if len(groups) == 0 {
		return bases
	}

	groupChunks := chunkGroups(groups, limit)
	out := make([]*sqlast.PredicateNode, 0, len(bases)*len(groupChunks))
	for _, base := range bases {
		for _, gc := range groupChunks {
			orChildren := make([]*sqlast.PredicateNode, len(gc))
			for i, group := range gc {
				orChildren[i] = groupNode(group)
			}
			out = append(out, sqlast.And(base, sqlast.Or(orChildren...)))
		}
	}
	return out
}

func conditionNode(c querygraph.FilterCondition) *sqlast.PredicateNode {
	if c.Op == querygraph.FilterIn {
		return sqlast.In(c.Column, c.Values)
	}
	return sqlast.Eq(c.Column, c.Values[0])
}

func groupNode(conds []querygraph.FilterCondition) *sqlast.PredicateNode {
	children := make([]*sqlast.PredicateNode, len(conds))
	for i, c := range conds {
		children[i] = conditionNode(c)
	}
	return sqlast.And(children...)
}

func chunkValues(values []any, size int) [][]any {
	var out [][]any
	for len(values) > 0 {
		n := size
		if n > len(values) {
			n = len(values)
		}
		out = append(out, values[:n])
		values = values[n:]
	}
	return out
}

func chunkGroups(groups [][]querygraph.FilterCondition, size int) [][][]querygraph.FilterCondition {
	var out [][][]querygraph.FilterCondition
	for len(groups) > 0 {
		n := size
		if n > len(groups) {
			n = len(groups)
		}
		out = append(out, groups[:n])
		groups = groups[n:]
	}
	return out
}
