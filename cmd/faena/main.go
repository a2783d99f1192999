package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/faena-hq/faena/internal/interfaces/cli/importer"
	"github.com/faena-hq/faena/internal/interfaces/cli/migrate"
	"github.com/faena-hq/faena/internal/interfaces/cli/server"
	"github.com/faena-hq/faena/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "faena",
		Short: "Faena - staffing coverage and cycle reconciliation engine",
		Long:  `Faena tracks contract staffing requirements across rotating shift cycles and reconciles coverage as workers are assigned.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		importer.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
