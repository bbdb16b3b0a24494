package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/tabkit/internal/frame"
)

var inspectColumn string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.csv>",
	Short: "Summarize the columns of a CSV file",
	Long: `Inspect loads a CSV file and prints, per column, the detected column
type, the number of rows, missing cells and distinct non-missing values.

Example:
  tabkit inspect samples.csv
  tabkit inspect samples.csv --column commune_code`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectColumn, "column", "C", "", "Only summarize this column")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	df, err := loadFrame(cfg, log, args[0])
	if err != nil {
		return err
	}

	var summaries []*frame.ColumnSummary
	if inspectColumn != "" {
		sum, err := frame.InspectColumn(df, inspectColumn)
		if err != nil {
			return err
		}
		summaries = []*frame.ColumnSummary{sum}
	} else {
		summaries = frame.InspectAll(df)
	}

	return newPrinter(cmd).Inspection(summaries)
}
