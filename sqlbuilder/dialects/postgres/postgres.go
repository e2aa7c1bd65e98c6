// Package postgres provides PostgreSQL-specific SQL rendering.
package postgres

import (
	"strings"

	"github.com/stokaro-labs/loomquery/sqlbuilder/dialects/common"
	"github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"
)

// Renderer renders statement trees as PostgreSQL SQL.
type Renderer struct {
	r *common.Renderer
}

var _ sqlast.Visitor = (*Renderer)(nil)

// New creates a PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{r: common.New(common.Options{
		Dialect:             "postgres",
		QuoteIdent:          quoteIdent,
		Placeholder:         common.DollarPlaceholder,
		SupportsReturning:   true,
		SupportsWindowFuncs: true,
	})}
}

func quoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Dialect returns "postgres".
func (r *Renderer) Dialect() string { return r.r.Dialect() }

// Render renders node to SQL text and bound arguments.
func (r *Renderer) Render(node sqlast.Node) (string, []any, error) {
	return common.Render(r.r, node)
}

func (r *Renderer) VisitSelect(n *sqlast.SelectNode) error { return r.r.VisitSelect(n) }
func (r *Renderer) VisitInsert(n *sqlast.InsertNode) error { return r.r.VisitInsert(n) }
func (r *Renderer) VisitUpdate(n *sqlast.UpdateNode) error { return r.r.VisitUpdate(n) }
func (r *Renderer) VisitDelete(n *sqlast.DeleteNode) error { return r.r.VisitDelete(n) }
