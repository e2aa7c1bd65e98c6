package sqlbuilder_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro-labs/loomquery/sqlbuilder"
	"github.com/stokaro-labs/loomquery/sqlbuilder/dialects/postgres"
	"github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"
)

func TestStrategyFor_SelectsWindowOrUnionAll(t *testing.T) {
	c := qt.New(t)

	c.Assert(sqlbuilder.StrategyFor(true), qt.Not(qt.IsNil))
	c.Assert(sqlbuilder.StrategyFor(false), qt.Not(qt.IsNil))
}

func TestWindowStrategy_BuildsSingleRankedQuery(t *testing.T) {
	c := qt.New(t)

	strategy := sqlbuilder.StrategyFor(true)
	queries := strategy.BuildRelatedQuery(sqlbuilder.BaseRelatedQuery{
		ChildTable:     "comments",
		ParentIDColumn: "post_id",
		ParentIDs:      []any{1, 2, 3},
		Columns:        []string{"id", "body"},
		OrderBy:        []sqlast.OrderByTerm{{Column: "created_at", Desc: true}},
		PerParentLimit: 5,
	})
	c.Assert(queries, qt.HasLen, 1)
	c.Assert(queries[0].FromSubquery, qt.Not(qt.IsNil))
	c.Assert(queries[0].FromSubquery.Window.PartitionBy, qt.DeepEquals, []string{"post_id"})

	r := postgres.New()
	sql, _, err := r.Render(queries[0])
	c.Assert(err, qt.IsNil)
	c.Assert(sql, qt.Contains, "ROW_NUMBER() OVER")
	c.Assert(sql, qt.Contains, `"rn" BETWEEN $4 AND $5`)
}

func TestWindowStrategy_SkipShiftsBetweenBounds(t *testing.T) {
	c := qt.New(t)

	strategy := sqlbuilder.StrategyFor(true)
	queries := strategy.BuildRelatedQuery(sqlbuilder.BaseRelatedQuery{
		ChildTable:     "comments",
		ParentIDColumn: "post_id",
		ParentIDs:      []any{1, 2, 3},
		Columns:        []string{"id", "body"},
		OrderBy:        []sqlast.OrderByTerm{{Column: "created_at", Desc: true}},
		Skip:           10,
		PerParentLimit: 5,
	})
	c.Assert(queries, qt.HasLen, 1)
	c.Assert(queries[0].Where.Kind, qt.Equals, sqlast.PredBetween)

	r := postgres.New()
	sql, args, err := r.Render(queries[0])
	c.Assert(err, qt.IsNil)
	c.Assert(sql, qt.Contains, `"rn" BETWEEN $4 AND $5`)
	c.Assert(args[3], qt.Equals, 11)
	c.Assert(args[4], qt.Equals, 15)
}

func TestWindowStrategy_SkipWithoutLimitUsesOpenLowerBound(t *testing.T) {
	c := qt.New(t)

	strategy := sqlbuilder.StrategyFor(true)
	queries := strategy.BuildRelatedQuery(sqlbuilder.BaseRelatedQuery{
		ChildTable:     "comments",
		ParentIDColumn: "post_id",
		ParentIDs:      []any{1},
		Columns:        []string{"id"},
		Skip:           3,
	})
	c.Assert(queries, qt.HasLen, 1)
	c.Assert(queries[0].Where.Kind, qt.Equals, sqlast.PredCompare)
	c.Assert(queries[0].Where.Op, qt.Equals, ">")

	r := postgres.New()
	sql, _, err := r.Render(queries[0])
	c.Assert(err, qt.IsNil)
	c.Assert(sql, qt.Contains, `"rn" > $2`)
}

func TestUnionAllStrategy_BuildsOneQueryPerParent(t *testing.T) {
	c := qt.New(t)

	strategy := sqlbuilder.StrategyFor(false)
	queries := strategy.BuildRelatedQuery(sqlbuilder.BaseRelatedQuery{
		ChildTable:     "comments",
		ParentIDColumn: "post_id",
		ParentIDs:      []any{1, 2},
		Columns:        []string{"id"},
		PerParentLimit: 5,
	})
	c.Assert(queries, qt.HasLen, 2)
	c.Assert(queries[0].Limit, qt.Equals, 5)
	c.Assert(queries[0].Where.Column, qt.Equals, "post_id")
}

func TestUnionAllStrategy_AppliesSkipAsOffset(t *testing.T) {
	c := qt.New(t)

	strategy := sqlbuilder.StrategyFor(false)
	queries := strategy.BuildRelatedQuery(sqlbuilder.BaseRelatedQuery{
		ChildTable:     "comments",
		ParentIDColumn: "post_id",
		ParentIDs:      []any{1, 2},
		Columns:        []string{"id"},
		Skip:           20,
		PerParentLimit: 5,
	})
	c.Assert(queries, qt.HasLen, 2)
	c.Assert(queries[0].Offset, qt.Equals, 20)
	c.Assert(queries[1].Offset, qt.Equals, 20)

	r := postgres.New()
	sql, _, err := r.Render(queries[0])
	c.Assert(err, qt.IsNil)
	c.Assert(sql, qt.Contains, "LIMIT 5")
	c.Assert(sql, qt.Contains, "OFFSET 20")
}
