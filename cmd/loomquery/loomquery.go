// Package loomquery wires the CLI's subcommands onto a root cobra
// command, the same way the teacher's package-migrator command wires
// generate/readdb/compare/migrate onto its root (spec component H).
package loomquery

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	loomschema "github.com/stokaro-labs/loomquery/cmd/loomquery/schema"
)

const envPrefix = "LOOMQUERY"

var rootCmd = &cobra.Command{
	Use:   "loomquery",
	Short: "Declarative datamodel tooling: physical schema calculation and query building",
	Long: `loomquery turns a declarative datamodel into a physical SQL schema and,
at runtime, into dialect-specific SQL for reads, writes, and nested
relation operations.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute adds every subcommand to the root command and runs it. Called
// once from main.main.
func Execute(args ...string) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)

	rootCmd.SetArgs(args)
	rootCmd.AddCommand(loomschema.NewSchemaCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1) //revive:disable-line:deep-exit
	}
}
