// Package driver defines the boundary between the query/schema core and a
// physical SQL backend (component F, spec §6 "Driver interface"). The
// core only ever talks to this package's interfaces; the reference
// adapter in driver/stdlib wires them to database/sql.
package driver

import (
	"context"

	"github.com/stokaro-labs/loomquery/schema"
)

// ColumnIdent names an expected result column together with the
// physical type information the driver needs for decoding (spec §6:
// "idents is the list of expected column type identifiers and arities").
type ColumnIdent struct {
	Name   string
	Family schema.ColumnFamily
	Arity  schema.ColumnArity
}

// Row is a single decoded result row.
type Row interface {
	// Scan copies the column values, in ColumnIdent order, into dest.
	Scan(dest ...any) error
}

// Rows is a cursor over zero or more result rows.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

// SQLDriver is the operations the core needs from a physical backend.
// All three operations are context-aware: the suspension points named by
// spec §5 ("only the SQL execution boundary may suspend") live here.
type SQLDriver interface {
	// Find executes query and returns at most one row. It returns
	// ErrRecordNotFoundForWhere (wrapped) if no row matched — that is
	// absence, not failure (spec §7).
	Find(ctx context.Context, query string, args []any, idents []ColumnIdent) (Row, error)

	// Filter executes query and returns every matching row.
	Filter(ctx context.Context, query string, args []any, idents []ColumnIdent) (Rows, error)

	// FindInt executes a single-column, single-row integer-result query
	// (e.g. a COUNT(*)).
	FindInt(ctx context.Context, query string, args []any) (int64, error)
}
