package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tabkit/internal/frame"
	"github.com/dbsmedya/tabkit/internal/types"
)

var (
	minmaxColumn    string
	minmaxTarget    string
	minmaxInfer     bool
	minmaxKeepNulls bool
)

var minmaxCmd = &cobra.Command{
	Use:   "minmax <file.csv>...",
	Short: "Find the minimum and maximum of a column across files",
	Long: `Minmax merges one column from every given file and prints its minimum
and maximum. When the values do not all share one type they are coerced
to the target type (float or int) first; a value that cannot be coerced
fails the command. Missing cells are skipped unless --keep-nulls is set.

Example:
  tabkit minmax 2023.csv 2024.csv --column sodium
  tabkit minmax 2024.csv --column year --target int`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMinMax,
}

func init() {
	rootCmd.AddCommand(minmaxCmd)

	minmaxCmd.Flags().StringVarP(&minmaxColumn, "column", "C", "", "Column to scan (required)")
	minmaxCmd.Flags().StringVar(&minmaxTarget, "target", "", "Override coercion target (float, int)")
	minmaxCmd.Flags().BoolVar(&minmaxInfer, "infer", false, "Infer each cell's type from its text")
	minmaxCmd.Flags().BoolVar(&minmaxKeepNulls, "keep-nulls", false, "Keep missing cells (they fail coercion)")
	_ = minmaxCmd.MarkFlagRequired("column")
}

func runMinMax(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg.ApplyOverrides("", "", minmaxTarget)
	target, ok := types.ParseKind(cfg.Range.Target)
	if !ok {
		return fmt.Errorf("unsupported coercion target %q", cfg.Range.Target)
	}

	lists := make([][]interface{}, 0, len(args))
	for _, path := range args {
		df, err := loadFrame(cfg, log, path)
		if err != nil {
			return err
		}
		s, err := frame.Column(df, minmaxColumn)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		values := columnValues(s, minmaxInfer)
		if !minmaxKeepNulls {
			values = dropNulls(values)
		}
		lists = append(lists, values)
	}

	r, err := types.MinMaxAs(target, lists...)
	if err != nil {
		return fmt.Errorf("failed to compute range of %s: %w", minmaxColumn, err)
	}
	log.WithColumn(minmaxColumn).Debugw("range computed", "files", len(args), "target", target.Key())

	return newPrinter(cmd).Range(r)
}
