package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/tabkit/internal/config"
	"github.com/dbsmedya/tabkit/internal/frame"
	"github.com/dbsmedya/tabkit/internal/logger"
	"github.com/dbsmedya/tabkit/internal/report"
)

// loadConfig reads the config file named by --config. A missing file is
// only an error when the flag was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := GetConfigFile()

	var cfg *config.Config
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case errors.Is(statErr, fs.ErrNotExist) && !configFlagChanged(cmd):
		cfg = config.DefaultConfig()
	default:
		return nil, fmt.Errorf("failed to load config: %w", statErr)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, "")
	return cfg, nil
}

func configFlagChanged(cmd *cobra.Command) bool {
	f := cmd.Flag("config")
	return f != nil && f.Changed
}

// setup loads and validates the configuration and builds the command logger.
func setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log.WithCommand(cmd.Name()), nil
}

// csvOptions maps the csv config section onto frame import options.
func csvOptions(cfg *config.Config) frame.CSVOptions {
	opts := frame.DefaultCSVOptions()
	if r, _ := utf8.DecodeRuneInString(cfg.CSV.Delimiter); r != utf8.RuneError {
		opts.Delimiter = r
	}
	if len(cfg.CSV.NullValues) > 0 {
		opts.NullValues = cfg.CSV.NullValues
	} else {
		opts.NullValues = frame.NullValues(cfg.CSV.DisableNullValues...)
	}
	opts.Pad = cfg.CSV.PadWidths()
	opts.DetectTypes = cfg.CSV.DetectTypes
	return opts
}

func loadFrame(cfg *config.Config, log *logger.Logger, path string) (dataframe.DataFrame, error) {
	df, err := frame.LoadCSV(path, csvOptions(cfg))
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	log.WithFile(path).Debugw("loaded csv", "rows", df.Nrow(), "columns", df.Ncol())
	return df, nil
}

// columnValues returns a column's cells, re-inferring each cell's type from
// its text when infer is set.
func columnValues(s series.Series, infer bool) []interface{} {
	if infer {
		return frame.InferValues(s)
	}
	return frame.Values(s)
}

func dropNulls(values []interface{}) []interface{} {
	out := values[:0:0]
	for _, v := range values {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

func newPrinter(cmd *cobra.Command) *report.Printer {
	out := cmd.OutOrStdout()
	colored := !noColor && out == os.Stdout && color.SupportColor()
	return report.New(out, colored)
}
