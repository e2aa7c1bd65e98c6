// Package mysql provides MySQL/MariaDB-specific SQL rendering.
package mysql

import (
	"strings"

	"github.com/stokaro-labs/loomquery/sqlbuilder/dialects/common"
	"github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"
)

// Renderer renders statement trees as MySQL/MariaDB SQL.
//
// MySQL has no RETURNING clause (MariaDB 10.5+ does for INSERT/DELETE,
// but not UPDATE); callers needing returned values on MySQL must
// re-SELECT after the write rather than ask for RETURNING here.
type Renderer struct {
	r *common.Renderer
}

var _ sqlast.Visitor = (*Renderer)(nil)

// New creates a MySQL renderer.
func New() *Renderer {
	return &Renderer{r: common.New(common.Options{
		Dialect:             "mysql",
		QuoteIdent:          quoteIdent,
		Placeholder:         common.QuestionPlaceholder,
		SupportsReturning:   false,
		SupportsWindowFuncs: true,
	})}
}

func quoteIdent(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

// Dialect returns "mysql".
func (r *Renderer) Dialect() string { return r.r.Dialect() }

// Render renders node to SQL text and bound arguments.
func (r *Renderer) Render(node sqlast.Node) (string, []any, error) {
	return common.Render(r.r, node)
}

func (r *Renderer) VisitSelect(n *sqlast.SelectNode) error { return r.r.VisitSelect(n) }
func (r *Renderer) VisitInsert(n *sqlast.InsertNode) error { return r.r.VisitInsert(n) }
func (r *Renderer) VisitUpdate(n *sqlast.UpdateNode) error { return r.r.VisitUpdate(n) }
func (r *Renderer) VisitDelete(n *sqlast.DeleteNode) error { return r.r.VisitDelete(n) }
