package main

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dynoscan/internal/config"
)

// rootOptions carries persistent flags and the engine factory to every subcommand.
type rootOptions struct {
	env        string
	configPath string
	openEngine engineOpener
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dynoscan",
		Short: "Read-only scanner for a single fixed table",
		Long: `dynoscan scans one fixed table with filters and pagination.
It serves the same two operations, schema introspection and a filtered scan,
as MCP tools over stdio, as an HTTP API, and as CLI commands.

The table and engine come from config/<env>.yaml (ENV, default "local").
AWS credentials are read from the default chain (AWS_ACCESS_KEY_ID,
AWS_SECRET_ACCESS_KEY, shared profiles).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.env, "env", config.GetEnv(),
		"environment name; selects config/<env>.yaml and the log format")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"path to a config file, overrides the --env lookup")

	cmd.AddCommand(
		newMCPCmd(opts),
		newHTTPCmd(opts),
		newSchemaCmd(opts),
		newScanCmd(opts),
		newVersionCmd(),
	)
	return cmd
}
