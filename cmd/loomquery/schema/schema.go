// Package schema implements loomquery's "schema" subcommand: compute
// the physical SqlSchema for a declarative datamodel and print it as
// JSON (spec component H, the host-facing CLI surface).
package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/stokaro-labs/loomquery/config"
	"github.com/stokaro-labs/loomquery/core/platform"
	"github.com/stokaro-labs/loomquery/datamodel"
	"github.com/stokaro-labs/loomquery/schema"
)

const (
	datamodelFlag = "datamodel"
	dialectFlag   = "dialect"
)

var schemaFlags = map[string]cobraflags.Flag{
	datamodelFlag: &cobraflags.StringFlag{
		Name:  datamodelFlag,
		Value: "",
		Usage: "Path to a JSON datamodel file (required)",
	},
	dialectFlag: &cobraflags.StringFlag{
		Name:  dialectFlag,
		Value: "postgres",
		Usage: "Target database dialect (postgres, mysql, mariadb, sqlite)",
	},
}

// NewSchemaCommand builds the "schema" subcommand.
func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Compute a physical SQL schema from a declarative datamodel",
		Long: `Reads a JSON datamodel file and computes the physical relational schema
(tables, columns, foreign keys, join tables, enums) for the requested
database dialect, printing the result as JSON.`,
		RunE: runSchema,
	}
	cobraflags.RegisterMap(cmd, schemaFlags)
	return cmd
}

func dialectToFamily(dialect string) (schema.SQLFamily, error) {
	switch platform.NormalizeDialect(dialect) {
	case platform.Postgres:
		return schema.Postgres, nil
	case platform.MySQL:
		return schema.MySQL, nil
	case platform.MariaDB:
		return schema.MariaDB, nil
	case platform.SQLite:
		return schema.SQLite, nil
	default:
		return 0, fmt.Errorf("unrecognized dialect %q", dialect)
	}
}

func runSchema(_ *cobra.Command, _ []string) error {
	path := schemaFlags[datamodelFlag].GetString()
	if path == "" {
		return fmt.Errorf("--%s is required", datamodelFlag)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening datamodel file: %w", err)
	}
	defer f.Close()

	dm, err := datamodel.LoadJSON(f)
	if err != nil {
		return fmt.Errorf("loading datamodel: %w", err)
	}

	family, err := dialectToFamily(schemaFlags[dialectFlag].GetString())
	if err != nil {
		return err
	}

	sqlSchema, err := schema.Calculate(dm, schema.DatabaseInfo{Family: family}, config.Default())
	if err != nil {
		return fmt.Errorf("calculating schema: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sqlSchema)
}
