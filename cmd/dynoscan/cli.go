package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dynoscan/internal/domain"
	"github.com/kailas-cloud/dynoscan/internal/render"
	"github.com/kailas-cloud/dynoscan/internal/transport/wire"
	"github.com/kailas-cloud/dynoscan/internal/version"
)

func newSchemaCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the table's columns and their descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg.Table.SchemaFile)
			if err != nil {
				return err
			}

			f, err := render.New(cmd.OutOrStdout(), outputFormat(asJSON))
			if err != nil {
				return err
			}
			return f.Schema(catalog.Fields())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newScanCmd(opts *rootOptions) *cobra.Command {
	var (
		filters  string
		startKey string
		limit    int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan one page of the table",
		Example: `  dynoscan scan --filters '{"status":{"eq":"active"}}' --limit 20
  dynoscan scan --filters '{"age":{"between":[20,30]}}' --start-key '{"PK":"USER#42"}' --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req wire.ScanRequest
			if cmd.Flags().Changed("limit") {
				req.Limit = &limit
			}
			if err := decodeObjectFlag("filters", filters, &req.Filters); err != nil {
				return err
			}
			if err := decodeObjectFlag("start-key", startKey, &req.StartKey); err != nil {
				return err
			}

			f, err := render.New(cmd.OutOrStdout(), outputFormat(asJSON))
			if err != nil {
				return err
			}

			a, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.scan.Scan(cmd.Context(), req.ToDomain())
			if err != nil {
				return err
			}
			return f.Scan(res)
		},
	}
	cmd.Flags().StringVar(&filters, "filters", "", `Filter object as JSON, e.g. '{"status":{"eq":"active"}}'`)
	cmd.Flags().StringVar(&startKey, "start-key", "", "lastEvaluatedKey of the previous page as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items to return (default 10, max 100)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func decodeObjectFlag(name, raw string, dst *map[string]any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: --%s must be a JSON object: %w", domain.ErrInvalidRequest, name, err)
	}
	return nil
}

func outputFormat(asJSON bool) string {
	if asJSON {
		return render.FormatJSON
	}
	return render.FormatTable
}
