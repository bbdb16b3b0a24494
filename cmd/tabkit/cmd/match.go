package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tabkit/internal/frame"
)

var (
	matchColumn        string
	matchValue         string
	matchContains      bool
	matchMinSimilarity float64
	matchOutput        string
)

var matchCmd = &cobra.Command{
	Use:   "match <file.csv>",
	Short: "Find spelling variants of a category",
	Long: `Match lists the distinct values of a categorical column that are
spelling variants of --value: equal once accents, case and non-letters are
dropped, or within the configured Levenshtein similarity.

With --output the rows holding any matched variant are written as CSV.

Example:
  tabkit match results.csv --column result --value "détecté"
  tabkit match results.csv --column result --value "détecté" --output detected.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVarP(&matchColumn, "column", "C", "", "Categorical column (required)")
	matchCmd.Flags().StringVar(&matchValue, "value", "", "Canonical category (required)")
	matchCmd.Flags().BoolVar(&matchContains, "contains", false, "Also match values containing the category")
	matchCmd.Flags().Float64Var(&matchMinSimilarity, "min-similarity", 0, "Override match.min_similarity (0..1)")
	matchCmd.Flags().StringVarP(&matchOutput, "output", "o", "", "Write matching rows to this CSV file")
	_ = matchCmd.MarkFlagRequired("column")
	_ = matchCmd.MarkFlagRequired("value")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	minSim := cfg.Match.MinSimilarity
	if matchMinSimilarity != 0 {
		if matchMinSimilarity < 0 || matchMinSimilarity > 1 {
			return fmt.Errorf("--min-similarity must be between 0 and 1, got %v", matchMinSimilarity)
		}
		minSim = matchMinSimilarity
	}

	df, err := loadFrame(cfg, log, args[0])
	if err != nil {
		return err
	}
	s, err := frame.Column(df, matchColumn)
	if err != nil {
		return err
	}

	matched := frame.MatchCategories(s, matchValue, frame.MatchOptions{
		MinSimilarity: minSim,
		Contains:      matchContains,
	})
	log.WithColumn(matchColumn).Debugw("categories matched", "value", matchValue, "variants", len(matched))

	if matchOutput == "" {
		return newPrinter(cmd).Matches(matchValue, matched)
	}
	if len(matched) == 0 {
		return fmt.Errorf("no value of %s matches %q, nothing written", matchColumn, matchValue)
	}

	rows, err := frame.FilterIn(df, matchColumn, matched)
	if err != nil {
		return err
	}
	log.Infow("writing matching rows", "output", matchOutput, "rows", rows.Nrow())
	return writeCSV(cmd, rows, matchOutput)
}
