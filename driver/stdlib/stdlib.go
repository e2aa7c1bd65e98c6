// Package stdlib adapts a database/sql connection into driver.SQLDriver
// (spec §6), the reference implementation of the driver boundary. Hosts
// register whichever database/sql driver matches their backend —
// jackc/pgx/v5/stdlib or lib/pq for PostgreSQL, go-sql-driver/mysql for
// MySQL/MariaDB, mattn/go-sqlite3 for SQLite — and hand the resulting
// *sql.DB to New.
package stdlib

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stokaro-labs/loomquery/driver"
)

// Adapter implements driver.SQLDriver over a database/sql connection
// pool.
type Adapter struct {
	db *sql.DB
}

var _ driver.SQLDriver = (*Adapter)(nil)

// New wraps db as a driver.SQLDriver. db's registered driver
// (pgx/stdlib, lib/pq, go-sql-driver/mysql, mattn/go-sqlite3, ...)
// determines which physical backend queries run against.
func New(db *sql.DB) *Adapter {
	return &Adapter{db: db}
}

// Find implements driver.SQLDriver.
func (a *Adapter) Find(ctx context.Context, query string, args []any, idents []driver.ColumnIdent) (driver.Row, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &driver.SqlError{Query: query, Err: err}
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, &driver.SqlError{Query: query, Err: err}
		}
		return nil, fmt.Errorf("%w", driver.ErrRecordNotFoundForWhere)
	}

	values := make([]any, len(idents))
	ptrs := make([]any, len(idents))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, &driver.SqlError{Query: query, Err: err}
	}

	return &scannedRow{values: values}, nil
}

// Filter implements driver.SQLDriver.
func (a *Adapter) Filter(ctx context.Context, query string, args []any, idents []driver.ColumnIdent) (driver.Rows, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &driver.SqlError{Query: query, Err: err}
	}
	return &cursorRows{rows: rows, query: query, numCols: len(idents)}, nil
}

// FindInt implements driver.SQLDriver.
func (a *Adapter) FindInt(ctx context.Context, query string, args []any) (int64, error) {
	var n int64
	if err := a.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("%w", driver.ErrRecordNotFoundForWhere)
		}
		return 0, &driver.SqlError{Query: query, Err: err}
	}
	return n, nil
}

// scannedRow is a single decoded row already read out of a *sql.Rows
// cursor, so Scan can be called (and re-called) without holding the
// underlying cursor open.
type scannedRow struct {
	values []any
}

func (r *scannedRow) Scan(dest ...any) error {
	if len(dest) != len(r.values) {
		return fmt.Errorf("driver/stdlib: Scan expected %d destinations, got %d", len(r.values), len(dest))
	}
	for i, v := range r.values {
		if err := assign(dest[i], v); err != nil {
			return err
		}
	}
	return nil
}

// cursorRows adapts *sql.Rows to driver.Rows.
type cursorRows struct {
	rows    *sql.Rows
	query   string
	numCols int
}

func (c *cursorRows) Next() bool { return c.rows.Next() }

func (c *cursorRows) Scan(dest ...any) error {
	if err := c.rows.Scan(dest...); err != nil {
		return &driver.SqlError{Query: c.query, Err: err}
	}
	return nil
}

func (c *cursorRows) Close() error { return c.rows.Close() }

func (c *cursorRows) Err() error {
	if err := c.rows.Err(); err != nil {
		return &driver.SqlError{Query: c.query, Err: err}
	}
	return nil
}

// assign copies src into the pointer dest, the same shape
// database/sql.Rows.Scan expects its destinations in.
func assign(dest, src any) error {
	switch d := dest.(type) {
	case *any:
		*d = src
		return nil
	default:
		return fmt.Errorf("driver/stdlib: unsupported scan destination %T", dest)
	}
}
