package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tabkit/internal/frame"
	"github.com/dbsmedya/tabkit/internal/report"
)

var (
	timelineColumn  string
	timelineFreq    string
	timelineLayouts []string
	timelineWidth   int
)

var timelineCmd = &cobra.Command{
	Use:   "timeline <file.csv>",
	Short: "Count rows over time",
	Long: `Timeline parses a datetime column and prints the number of rows per
time bucket, from the earliest to the latest bucket, as a bar chart.

Frequencies: H (hour), D (day), W (week, starting Monday), M (month),
Q (quarter), Y (year). Buckets are in UTC.

Extra layouts use Go reference time notation and are tried before the
built-in ones (RFC 3339, 2006-01-02, 01/02/2006, ...).

Example:
  tabkit timeline samples.csv --column sampled_at --freq M
  tabkit timeline samples.csv --column date --layout 02.01.2006`,
	Args: cobra.ExactArgs(1),
	RunE: runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)

	timelineCmd.Flags().StringVarP(&timelineColumn, "column", "C", "", "Datetime column (default: time.column from config)")
	timelineCmd.Flags().StringVarP(&timelineFreq, "freq", "f", "", "Bucket frequency (default: time.frequency from config)")
	timelineCmd.Flags().StringSliceVar(&timelineLayouts, "layout", nil, "Extra time layouts to try first")
	timelineCmd.Flags().IntVar(&timelineWidth, "width", report.DefaultBarWidth, "Bar length of the busiest bucket")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	column := timelineColumn
	if column == "" {
		column = cfg.Time.Column
	}
	if column == "" {
		return fmt.Errorf("no datetime column: use --column or set time.column")
	}

	code := timelineFreq
	if code == "" {
		code = cfg.Time.Frequency
	}
	freq, err := frame.ParseFrequency(code)
	if err != nil {
		return err
	}

	df, err := loadFrame(cfg, log, args[0])
	if err != nil {
		return err
	}

	layouts := append(append([]string(nil), timelineLayouts...), cfg.Time.Layouts...)
	tf, err := frame.IndexByTime(df, column, layouts...)
	if err != nil {
		return fmt.Errorf("failed to index %s by %s: %w", args[0], column, err)
	}

	buckets, err := tf.RowsOverTime(freq)
	if err != nil {
		return err
	}
	log.WithColumn(column).Debugw("rows bucketed", "frequency", string(freq), "buckets", len(buckets))

	return newPrinter(cmd).Timeline(buckets, freq, timelineWidth)
}
