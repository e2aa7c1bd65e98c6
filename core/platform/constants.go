// Package platform names the SQL dialects the core understands and
// normalizes the various spellings a host might pass in on the command
// line or in a connection string.
package platform

import (
	"strings"
)

const (
	Postgres = "postgres"
	MySQL    = "mysql"
	MariaDB  = "mariadb"
	SQLite   = "sqlite"
)

// NormalizeDialect maps a user-supplied dialect spelling to one of the
// constants above, or "" if the spelling is not recognized.
func NormalizeDialect(dialect string) string {
	switch strings.ToLower(dialect) {
	case "pgx", "postgresql", "postgres":
		return Postgres
	case "mysql":
		return MySQL
	case "mariadb":
		return MariaDB
	case "sqlite", "sqlite3":
		return SQLite
	default:
		return ""
	}
}

// SupportsWindowFunctions reports whether the dialect can express
// ROW_NUMBER() OVER (...) for the window-function related-records
// strategy. SQLite only gained window function support in 3.25+; callers
// targeting older SQLite builds should force the union-all strategy via
// config.Config.RelatedRecordsStrategy instead of relying on this default.
func SupportsWindowFunctions(dialect string) bool {
	switch dialect {
	case Postgres, MySQL, MariaDB:
		return true
	case SQLite:
		return true
	default:
		return false
	}
}
