package postgres_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro-labs/loomquery/sqlbuilder/dialects/postgres"
	"github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"
)

func TestRenderer_SelectWithWhereAndLimit(t *testing.T) {
	c := qt.New(t)

	r := postgres.New()
	sql, args, err := r.Render(&sqlast.SelectNode{
		Table:   "users",
		Columns: []string{"id", "email"},
		Where:   sqlast.And(sqlast.Eq("tenant_id", 7), sqlast.In("status", []any{"active", "pending"})),
		Limit:   10,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(sql, qt.Equals, `SELECT "id", "email" FROM "users" WHERE ("tenant_id" = $1 AND "status" IN ($2, $3)) LIMIT 10`)
	c.Assert(args, qt.DeepEquals, []any{7, "active", "pending"})
}

func TestRenderer_InsertReturning(t *testing.T) {
	c := qt.New(t)

	r := postgres.New()
	sql, args, err := r.Render(&sqlast.InsertNode{
		Table:     "users",
		Columns:   []string{"email", "active"},
		Values:    [][]any{{"a@example.com", true}},
		Returning: []string{"id"},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(sql, qt.Equals, `INSERT INTO "users" ("email", "active") VALUES ($1, $2) RETURNING "id"`)
	c.Assert(args, qt.DeepEquals, []any{"a@example.com", true})
}

func TestRenderer_UpdateWithWhere(t *testing.T) {
	c := qt.New(t)

	r := postgres.New()
	sql, args, err := r.Render(&sqlast.UpdateNode{
		Table: "users",
		Set:   []sqlast.SetClause{{Column: "email", Value: "b@example.com"}},
		Where: sqlast.Eq("id", 42),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(sql, qt.Equals, `UPDATE "users" SET "email" = $1 WHERE "id" = $2`)
	c.Assert(args, qt.DeepEquals, []any{"b@example.com", 42})
}

func TestRenderer_Delete(t *testing.T) {
	c := qt.New(t)

	r := postgres.New()
	sql, args, err := r.Render(&sqlast.DeleteNode{Table: "users", Where: sqlast.Eq("id", 42)})
	c.Assert(err, qt.IsNil)
	c.Assert(sql, qt.Equals, `DELETE FROM "users" WHERE "id" = $1`)
	c.Assert(args, qt.DeepEquals, []any{42})
}
