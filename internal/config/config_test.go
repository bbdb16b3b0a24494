package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source.Driver != "mysql" {
		t.Errorf("expected default driver 'mysql', got %s", cfg.Source.Driver)
	}
	if cfg.Source.Port != 3306 {
		t.Errorf("expected default port 3306, got %d", cfg.Source.Port)
	}
	if cfg.CSV.Delimiter != "," {
		t.Errorf("expected default delimiter ',', got %q", cfg.CSV.Delimiter)
	}
	if !cfg.CSV.DetectTypes {
		t.Error("expected type detection to be on by default")
	}
	if cfg.Time.Frequency != "D" {
		t.Errorf("expected default frequency 'D', got %s", cfg.Time.Frequency)
	}
	if cfg.Range.Target != "float" {
		t.Errorf("expected default range target 'float', got %s", cfg.Range.Target)
	}
	if cfg.Match.MinSimilarity != 0.8 {
		t.Errorf("expected default min_similarity 0.8, got %f", cfg.Match.MinSimilarity)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected default logging output 'stderr', got %s", cfg.Logging.Output)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestPadWidths(t *testing.T) {
	csv := CSVConfig{
		Pad: []PadRule{
			{Column: "UnpaddedColumn1", Width: 4},
			{Column: "UnpaddedColumn2", Width: 6},
		},
	}

	widths := csv.PadWidths()
	if len(widths) != 2 {
		t.Fatalf("expected 2 pad widths, got %d", len(widths))
	}
	if widths["UnpaddedColumn1"] != 4 {
		t.Errorf("expected width 4, got %d", widths["UnpaddedColumn1"])
	}
	if widths["UnpaddedColumn2"] != 6 {
		t.Errorf("expected width 6, got %d", widths["UnpaddedColumn2"])
	}

	empty := CSVConfig{}
	if empty.PadWidths() != nil {
		t.Error("expected nil pad widths when no rules are set")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("debug", "json", "int")

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format 'json', got %s", cfg.Logging.Format)
	}
	if cfg.Range.Target != "int" {
		t.Errorf("expected target 'int', got %s", cfg.Range.Target)
	}
}

func TestApplyOverridesZeroValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("", "", "")

	if cfg.Logging.Level != "info" {
		t.Errorf("expected level to stay 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected format to stay 'text', got %s", cfg.Logging.Format)
	}
	if cfg.Range.Target != "float" {
		t.Errorf("expected target to stay 'float', got %s", cfg.Range.Target)
	}
}
