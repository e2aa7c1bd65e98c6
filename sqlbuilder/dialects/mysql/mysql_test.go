package mysql_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro-labs/loomquery/sqlbuilder/dialects/mysql"
	"github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"
)

func TestRenderer_SelectUsesQuestionPlaceholders(t *testing.T) {
	c := qt.New(t)

	r := mysql.New()
	sql, args, err := r.Render(&sqlast.SelectNode{
		Table:   "users",
		Columns: []string{"id"},
		Where:   sqlast.Eq("tenant_id", 7),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(sql, qt.Equals, "SELECT `id` FROM `users` WHERE `tenant_id` = ?")
	c.Assert(args, qt.DeepEquals, []any{7})
}

func TestRenderer_InsertReturningUnsupported(t *testing.T) {
	c := qt.New(t)

	r := mysql.New()
	_, _, err := r.Render(&sqlast.InsertNode{
		Table:     "users",
		Columns:   []string{"email"},
		Values:    [][]any{{"a@example.com"}},
		Returning: []string{"id"},
	})
	c.Assert(err, qt.ErrorMatches, "sqlbuilder: dialect mysql does not support RETURNING")
}
