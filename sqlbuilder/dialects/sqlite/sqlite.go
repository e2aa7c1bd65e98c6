// Package sqlite provides SQLite-specific SQL rendering.
package sqlite

import (
	"strings"

	"github.com/stokaro-labs/loomquery/sqlbuilder/dialects/common"
	"github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"
)

// Renderer renders statement trees as SQLite SQL.
//
// SQLite gained RETURNING in 3.35 and window functions in 3.25; hosts
// targeting older SQLite builds should force the union-all related-
// records strategy via config.Config.RelatedRecordsStrategy rather than
// relying on this renderer's defaults.
type Renderer struct {
	r *common.Renderer
}

var _ sqlast.Visitor = (*Renderer)(nil)

// New creates a SQLite renderer.
func New() *Renderer {
	return &Renderer{r: common.New(common.Options{
		Dialect:             "sqlite",
		QuoteIdent:          quoteIdent,
		Placeholder:         common.QuestionPlaceholder,
		SupportsReturning:   true,
		SupportsWindowFuncs: true,
	})}
}

func quoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Dialect returns "sqlite".
func (r *Renderer) Dialect() string { return r.r.Dialect() }

// Render renders node to SQL text and bound arguments.
func (r *Renderer) Render(node sqlast.Node) (string, []any, error) {
	return common.Render(r.r, node)
}

func (r *Renderer) VisitSelect(n *sqlast.SelectNode) error { return r.r.VisitSelect(n) }
func (r *Renderer) VisitInsert(n *sqlast.InsertNode) error { return r.r.VisitInsert(n) }
func (r *Renderer) VisitUpdate(n *sqlast.UpdateNode) error { return r.r.VisitUpdate(n) }
func (r *Renderer) VisitDelete(n *sqlast.DeleteNode) error { return r.r.VisitDelete(n) }
