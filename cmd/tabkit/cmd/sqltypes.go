package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tabkit/internal/database"
	"github.com/dbsmedya/tabkit/internal/types"
)

var (
	sqlTable       string
	sqlColumn      string
	sqlProportions bool
	sqlRange       bool
)

var sqltypesCmd = &cobra.Command{
	Use:   "sqltypes",
	Short: "Count the runtime types held by a SQL column",
	Long: `Sqltypes reads one column of a table from the source database
configured under "source" (mysql or sqlite) and prints the count of each
runtime type the driver returned. NULL counts as nones.

Table and column names may only contain letters, digits and underscores;
the table may be qualified as schema.table.

Example:
  tabkit sqltypes --config tabkit.yaml --table samples --column sodium
  tabkit sqltypes --table lab.samples --column sodium --proportions --range`,
	Args: cobra.NoArgs,
	RunE: runSQLTypes,
}

func init() {
	rootCmd.AddCommand(sqltypesCmd)

	sqltypesCmd.Flags().StringVarP(&sqlTable, "table", "t", "", "Table to read (required)")
	sqltypesCmd.Flags().StringVarP(&sqlColumn, "column", "C", "", "Column to classify (required)")
	sqltypesCmd.Flags().BoolVarP(&sqlProportions, "proportions", "p", false, "Also print each type's share in percent")
	sqltypesCmd.Flags().BoolVar(&sqlRange, "range", false, "Also print the minimum and maximum of non-NULL values")
	_ = sqltypesCmd.MarkFlagRequired("table")
	_ = sqltypesCmd.MarkFlagRequired("column")
}

func runSQLTypes(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := cfg.ValidateSource(); err != nil {
		return fmt.Errorf("invalid source configuration: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := database.WithShutdown(parent, func(sig os.Signal) {
		log.Warnw("received signal, cancelling query", "signal", sig.String())
	})
	defer cancel()

	dbManager := database.NewManager(&cfg.Source, log)
	if err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer dbManager.Close()

	values, err := dbManager.ReadColumn(ctx, sqlTable, sqlColumn)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	if err := p.Title(sqlTable + "." + sqlColumn); err != nil {
		return err
	}
	if err := p.TypeCounts(types.ByType(values, types.Options{})); err != nil {
		return err
	}

	if sqlProportions {
		r, err := types.Proportions(values, types.Options{})
		switch {
		case errors.Is(err, types.ErrEmptyInput):
			log.WithColumn(sqlColumn).Warn("table is empty, no proportions")
		case err != nil:
			return err
		default:
			fmt.Fprintln(cmd.OutOrStdout())
			if err := p.Proportions(r); err != nil {
				return err
			}
		}
	}

	if sqlRange {
		target, ok := types.ParseKind(cfg.Range.Target)
		if !ok {
			return fmt.Errorf("unsupported coercion target %q", cfg.Range.Target)
		}
		r, err := types.MinMaxAs(target, dropNulls(values))
		if err != nil {
			return fmt.Errorf("failed to compute range of %s: %w", sqlColumn, err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		if err := p.Range(r); err != nil {
			return err
		}
	}
	return nil
}
