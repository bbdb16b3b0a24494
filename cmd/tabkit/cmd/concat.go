package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/tabkit/internal/frame"
)

var concatOutput string

var concatCmd = &cobra.Command{
	Use:   "concat <file.csv>...",
	Short: "Concatenate CSV files and drop duplicate rows",
	Long: `Concat stacks the rows of every given file, in order, and keeps only
the first occurrence of each fully duplicated row. All files must have the
same set of columns. The result is written as CSV.

Example:
  tabkit concat 2023.csv 2024.csv --output all.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConcat,
}

func init() {
	rootCmd.AddCommand(concatCmd)

	concatCmd.Flags().StringVarP(&concatOutput, "output", "o", "", "Output file (default: stdout)")
}

func runConcat(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	frames := make([]dataframe.DataFrame, 0, len(args))
	rowsIn := 0
	for _, path := range args {
		df, err := loadFrame(cfg, log, path)
		if err != nil {
			return err
		}
		rowsIn += df.Nrow()
		frames = append(frames, df)
	}

	out, err := frame.ConcatUnique(frames...)
	if err != nil {
		return err
	}
	log.Infow("concatenated", "files", len(args), "rows_in", rowsIn, "rows_out", out.Nrow())

	return writeCSV(cmd, out, concatOutput)
}

// writeCSV writes df to path, or to the command output when path is empty.
func writeCSV(cmd *cobra.Command, df dataframe.DataFrame, path string) error {
	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
