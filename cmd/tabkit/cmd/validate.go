package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tabkit/internal/database"
)

var validateSource bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and, optionally, the source database",
	Long: `Validate checks the configuration file and prints the settings tabkit
will use.

Checks performed:
  - Configuration syntax and value ranges (csv, time, range, match, logging)
  - With --source: source settings and database connectivity

Example:
  tabkit validate --config tabkit.yaml --source`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateSource, "source", false, "Also connect to the source database")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== Configuration Validation ===\n")
	fmt.Fprintf(out, "Config file: %s\n", GetConfigFile())
	fmt.Fprintf(out, "CSV delimiter: %q, detect types: %t\n", cfg.CSV.Delimiter, cfg.CSV.DetectTypes)
	fmt.Fprintf(out, "Time frequency: %s\n", cfg.Time.Frequency)
	fmt.Fprintf(out, "Range target: %s\n", cfg.Range.Target)
	fmt.Fprintf(out, "Match min similarity: %v\n", cfg.Match.MinSimilarity)

	if validateSource {
		if err := cfg.ValidateSource(); err != nil {
			return fmt.Errorf("invalid source configuration: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		dbManager := database.NewManager(&cfg.Source, log)
		if err := dbManager.Connect(ctx); err != nil {
			return err
		}
		defer dbManager.Close()

		if err := dbManager.Ping(ctx); err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		fmt.Fprintf(out, "Source: %s connection OK\n", cfg.Source.Driver)
	}

	fmt.Fprintln(out, "Configuration is valid")
	return nil
}
