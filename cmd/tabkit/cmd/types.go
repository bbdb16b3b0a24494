package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tabkit/internal/frame"
	"github.com/dbsmedya/tabkit/internal/types"
)

var (
	typesColumn      string
	typesInfer       bool
	typesProportions bool
)

var typesCmd = &cobra.Command{
	Use:   "types <file.csv>",
	Short: "Count the runtime types held by CSV columns",
	Long: `Types buckets every cell of a column by runtime type, in the fixed
order integers, strings, floats, booleans, nones, others, and prints the
count of each bucket. Missing cells count as nones.

Without --column every column is reported. With --infer each cell's type
is parsed from its own text instead of taken from the column type.

Example:
  tabkit types samples.csv --column sodium --proportions`,
	Args: cobra.ExactArgs(1),
	RunE: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)

	typesCmd.Flags().StringVarP(&typesColumn, "column", "C", "", "Column to classify (default: all columns)")
	typesCmd.Flags().BoolVar(&typesInfer, "infer", false, "Infer each cell's type from its text")
	typesCmd.Flags().BoolVarP(&typesProportions, "proportions", "p", false, "Also print each type's share in percent")
}

func runTypes(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	df, err := loadFrame(cfg, log, args[0])
	if err != nil {
		return err
	}

	columns := df.Names()
	if typesColumn != "" {
		columns = []string{typesColumn}
	}

	p := newPrinter(cmd)
	for i, name := range columns {
		s, err := frame.Column(df, name)
		if err != nil {
			return err
		}
		values := columnValues(s, typesInfer)

		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		if err := p.Title(name); err != nil {
			return err
		}
		if err := p.TypeCounts(types.ByType(values, types.Options{})); err != nil {
			return err
		}

		if !typesProportions {
			continue
		}
		r, err := types.Proportions(values, types.Options{})
		if errors.Is(err, types.ErrEmptyInput) {
			log.WithColumn(name).Warn("column is empty, no proportions")
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		if err := p.Proportions(r); err != nil {
			return err
		}
	}
	return nil
}
