// Package mariadb provides MariaDB-specific SQL rendering. MariaDB
// shares MySQL's quoting and placeholder conventions but, since 10.5,
// supports RETURNING on INSERT and DELETE (not UPDATE); since this
// builder never asks for RETURNING on UPDATE, the single
// SupportsReturning flag is enough to describe both statements.
package mariadb

import (
	"strings"

	"github.com/stokaro-labs/loomquery/sqlbuilder/dialects/common"
	"github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"
)

// Renderer renders statement trees as MariaDB SQL.
type Renderer struct {
	r *common.Renderer
}

var _ sqlast.Visitor = (*Renderer)(nil)

// New creates a MariaDB renderer.
func New() *Renderer {
	return &Renderer{r: common.New(common.Options{
		Dialect:             "mariadb",
		QuoteIdent:          quoteIdent,
		Placeholder:         common.QuestionPlaceholder,
		SupportsReturning:   true,
		SupportsWindowFuncs: true,
	})}
}

func quoteIdent(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

// Dialect returns "mariadb".
func (r *Renderer) Dialect() string { return r.r.Dialect() }

// Render renders node to SQL text and bound arguments.
func (r *Renderer) Render(node sqlast.Node) (string, []any, error) {
	return common.Render(r.r, node)
}

func (r *Renderer) VisitSelect(n *sqlast.SelectNode) error { return r.r.VisitSelect(n) }
func (r *Renderer) VisitInsert(n *sqlast.InsertNode) error { return r.r.VisitInsert(n) }
func (r *Renderer) VisitUpdate(n *sqlast.UpdateNode) error { return r.r.VisitUpdate(n) }
func (r *Renderer) VisitDelete(n *sqlast.DeleteNode) error { return r.r.VisitDelete(n) }
