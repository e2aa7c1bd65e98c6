// Package common implements the shared SQL-rendering core every dialect
// package under sqlbuilder/dialects delegates to. Identifier quoting,
// placeholder style, and RETURNING support are injected via Options so a
// new dialect is a few lines of configuration, not a reimplementation of
// statement assembly. Options.SupportsWindowFuncs is recorded but not
// consulted: a SelectNode's Window is rendered for every dialect.
package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stokaro-labs/loomquery/sqlbuilder/sqlast"
)

// Placeholder renders the bound-parameter marker for the n'th argument
// (1-indexed), e.g. "$1" for Postgres or "?" for MySQL/SQLite.
type Placeholder func(n int) string

// Options configures one dialect's rendering rules.
type Options struct {
	Dialect             string
	QuoteIdent          func(ident string) string
	Placeholder         Placeholder
	SupportsReturning   bool
	SupportsWindowFuncs bool
}

// DollarPlaceholder is the Postgres-style "$1", "$2", ... placeholder.
func DollarPlaceholder(n int) string { return "$" + strconv.Itoa(n) }

// QuestionPlaceholder is the MySQL/SQLite-style positional "?" placeholder.
func QuestionPlaceholder(int) string { return "?" }

// Renderer accumulates rendered SQL text and bound arguments as it
// visits a statement tree. Reset clears both, letting one Renderer be
// reused across many Render calls.
type Renderer struct {
	opts Options
	w    strings.Builder
	args []any
}

var _ sqlast.Visitor = (*Renderer)(nil)

// New creates a Renderer configured by opts.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Dialect returns the configured dialect name.
func (r *Renderer) Dialect() string { return r.opts.Dialect }

// Reset clears accumulated output and arguments, preparing the Renderer
// to render another statement.
func (r *Renderer) Reset() {
	r.w.Reset()
	r.args = nil
}

// Output returns the SQL text rendered so far.
func (r *Renderer) Output() string { return r.w.String() }

// Args returns the bound arguments accumulated so far, in placeholder
// order.
func (r *Renderer) Args() []any { return r.args }

// Render renders node via this Renderer's Visitor methods and returns
// the resulting SQL text and bound arguments. The Renderer is reset
// first, so a single instance renders one statement at a time.
func Render(r *Renderer, node sqlast.Node) (string, []any, error) {
	r.Reset()
	if err := node.Accept(r); err != nil {
		return "", nil, err
	}
	return r.Output(), r.Args(), nil
}

func (r *Renderer) quote(ident string) string { return r.opts.QuoteIdent(ident) }

func (r *Renderer) bind(value any) string {
	r.args = append(r.args, value)
	return r.opts.Placeholder(len(r.args))
}

// VisitSelect renders a SELECT statement.
func (r *Renderer) VisitSelect(n *sqlast.SelectNode) error {
	r.w.WriteString("SELECT ")
	if n.Distinct {
		r.w.WriteString("DISTINCT ")
	}

	cols := n.Columns
	if len(cols) == 0 {
		r.w.WriteString("*")
	} else {
		for i, c := range cols {
			if i > 0 {
				r.w.WriteString(", ")
			}
			r.w.WriteString(r.quote(c))
		}
	}

	if n.Window != nil {
		r.w.WriteString(", ROW_NUMBER() OVER (")
		if len(n.Window.PartitionBy) > 0 {
			r.w.WriteString("PARTITION BY ")
			for i, c := range n.Window.PartitionBy {
				if i > 0 {
					r.w.WriteString(", ")
				}
				r.w.WriteString(r.quote(c))
			}
		}
		if len(n.Window.OrderBy) > 0 {
			if len(n.Window.PartitionBy) > 0 {
				r.w.WriteString(" ")
			}
			r.w.WriteString("ORDER BY ")
			r.writeOrderByTerms(n.Window.OrderBy)
		}
		r.w.WriteString(") AS ")
		r.w.WriteString(r.quote(n.Window.Alias))
	}

	r.w.WriteString(" FROM ")
	if n.FromSubquery != nil {
		r.w.WriteString("(")
		if err := r.VisitSelect(n.FromSubquery); err != nil {
			return err
		}
		r.w.WriteString(")")
	} else {
		r.w.WriteString(r.quote(n.Table))
	}
	if n.Alias != "" {
		r.w.WriteString(" AS ")
		r.w.WriteString(r.quote(n.Alias))
	}

	for _, j := range n.Joins {
		if j.Left {
			r.w.WriteString(" LEFT JOIN ")
		} else {
			r.w.WriteString(" INNER JOIN ")
		}
		r.w.WriteString(r.quote(j.Table))
		if j.Alias != "" {
			r.w.WriteString(" AS ")
			r.w.WriteString(r.quote(j.Alias))
		}
		if j.On != nil {
			r.w.WriteString(" ON ")
			if err := r.writePredicate(j.On); err != nil {
				return err
			}
		}
	}

	if n.Where != nil {
		r.w.WriteString(" WHERE ")
		if err := r.writePredicate(n.Where); err != nil {
			return err
		}
	}

	if len(n.OrderBy) > 0 {
		r.w.WriteString(" ORDER BY ")
		r.writeOrderByTerms(n.OrderBy)
	}

	if n.Limit > 0 {
		fmt.Fprintf(&r.w, " LIMIT %d", n.Limit)
	}
	if n.Offset > 0 {
		fmt.Fprintf(&r.w, " OFFSET %d", n.Offset)
	}

	return nil
}

func (r *Renderer) writeOrderByTerms(terms []sqlast.OrderByTerm) {
	for i, t := range terms {
		if i > 0 {
			r.w.WriteString(", ")
		}
		r.w.WriteString(r.quote(t.Column))
		if t.Desc {
			r.w.WriteString(" DESC")
		}
	}
}

// VisitInsert renders an INSERT statement.
func (r *Renderer) VisitInsert(n *sqlast.InsertNode) error {
	r.w.WriteString("INSERT INTO ")
	r.w.WriteString(r.quote(n.Table))
	r.w.WriteString(" (")
	for i, c := range n.Columns {
		if i > 0 {
			r.w.WriteString(", ")
		}
		r.w.WriteString(r.quote(c))
	}
	r.w.WriteString(") VALUES ")

	for i, row := range n.Values {
		if i > 0 {
			r.w.WriteString(", ")
		}
		r.w.WriteString("(")
		for j, v := range row {
			if j > 0 {
				r.w.WriteString(", ")
			}
			r.w.WriteString(r.bind(v))
		}
		r.w.WriteString(")")
	}

	return r.writeReturning(n.Returning)
}

// VisitUpdate renders an UPDATE statement.
func (r *Renderer) VisitUpdate(n *sqlast.UpdateNode) error {
	r.w.WriteString("UPDATE ")
	r.w.WriteString(r.quote(n.Table))
	r.w.WriteString(" SET ")
	for i, s := range n.Set {
		if i > 0 {
			r.w.WriteString(", ")
		}
		r.w.WriteString(r.quote(s.Column))
		r.w.WriteString(" = ")
		r.w.WriteString(r.bind(s.Value))
	}

	if n.Where != nil {
		r.w.WriteString(" WHERE ")
		if err := r.writePredicate(n.Where); err != nil {
			return err
		}
	}

	return r.writeReturning(n.Returning)
}

// VisitDelete renders a DELETE statement.
func (r *Renderer) VisitDelete(n *sqlast.DeleteNode) error {
	r.w.WriteString("DELETE FROM ")
	r.w.WriteString(r.quote(n.Table))

	if n.Where != nil {
		r.w.WriteString(" WHERE ")
		if err := r.writePredicate(n.Where); err != nil {
			return err
		}
	}

	return r.writeReturning(n.Returning)
}

func (r *Renderer) writeReturning(columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	if !r.opts.SupportsReturning {
		return fmt.Errorf("sqlbuilder: dialect %s does not support RETURNING", r.opts.Dialect)
	}
	r.w.WriteString(" RETURNING ")
	for i, c := range columns {
		if i > 0 {
			r.w.WriteString(", ")
		}
		r.w.WriteString(r.quote(c))
	}
	return nil
}

func (r *Renderer) writePredicate(p *sqlast.PredicateNode) error {
	switch p.Kind {
	case sqlast.PredEq:
		r.w.WriteString(r.quote(p.Column))
		r.w.WriteString(" = ")
		r.w.WriteString(r.bind(p.Values[0]))
		return nil
	case sqlast.PredIn:
		if len(p.Values) == 0 {
			r.w.WriteString("1 = 0")
			return nil
		}
		r.w.WriteString(r.quote(p.Column))
		r.w.WriteString(" IN (")
		for i, v := range p.Values {
			if i > 0 {
				r.w.WriteString(", ")
			}
			r.w.WriteString(r.bind(v))
		}
		r.w.WriteString(")")
		return nil
	case sqlast.PredCompare:
		r.w.WriteString(r.quote(p.Column))
		r.w.WriteString(" ")
		r.w.WriteString(p.Op)
		r.w.WriteString(" ")
		r.w.WriteString(r.bind(p.Values[0]))
		return nil
	case sqlast.PredBetween:
		r.w.WriteString(r.quote(p.Column))
		r.w.WriteString(" BETWEEN ")
		r.w.WriteString(r.bind(p.Values[0]))
		r.w.WriteString(" AND ")
		r.w.WriteString(r.bind(p.Values[1]))
		return nil
	case sqlast.PredAnd, sqlast.PredOr:
		sep := " AND "
		if p.Kind == sqlast.PredOr {
			sep = " OR "
		}
		r.w.WriteString("(")
		for i, child := range p.Children {
			if i > 0 {
				r.w.WriteString(sep)
			}
			if err := r.writePredicate(child); err != nil {
				return err
			}
		}
		r.w.WriteString(")")
		return nil
	default:
		return fmt.Errorf("sqlbuilder: unknown predicate kind %d", p.Kind)
	}
}
