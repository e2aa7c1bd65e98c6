package stdlib

import (
	"database/sql"
	"fmt"

	// Registering these under blank imports is what makes their driver
	// name available to sql.Open; Connect below is the only place that
	// needs to know it.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/stokaro-labs/loomquery/core/platform"
)

// Connect opens a *sql.DB for dialect using dsn. PostgreSQL prefers the
// pgx stdlib driver ("pgx"); driverOverride lets a host pick lib/pq
// ("postgres") instead, e.g. for a connection string already written
// for lib/pq's DSN dialect. An empty driverOverride uses the default
// for the dialect.
func Connect(dialect, dsn string, driverOverride string) (*sql.DB, error) {
	driverName := driverOverride
	if driverName == "" {
		switch platform.NormalizeDialect(dialect) {
		case platform.Postgres:
			driverName = "pgx"
		case platform.MySQL, platform.MariaDB:
			driverName = "mysql"
		case platform.SQLite:
			driverName = "sqlite3"
		default:
			return nil, fmt.Errorf("driver/stdlib: unrecognized dialect %q", dialect)
		}
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("driver/stdlib: open %s: %w", driverName, err)
	}
	return db, nil
}
