// Package config provides configuration structures and loading for tabkit.
package config

// Config represents the complete application configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source" mapstructure:"source"`
	CSV     CSVConfig     `yaml:"csv" mapstructure:"csv"`
	Time    TimeConfig    `yaml:"time" mapstructure:"time"`
	Range   RangeConfig   `yaml:"range" mapstructure:"range"`
	Match   MatchConfig   `yaml:"match" mapstructure:"match"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SourceConfig represents the SQL database that columns can be read from.
type SourceConfig struct {
	Driver   string `yaml:"driver" mapstructure:"driver"` // mysql or sqlite
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	Database string `yaml:"database" mapstructure:"database"`
	Path     string `yaml:"path" mapstructure:"path"` // sqlite file (or :memory:)
	TLS      string `yaml:"tls" mapstructure:"tls"`   // disable, preferred, required
}

// CSVConfig represents CSV import settings.
type CSVConfig struct {
	Delimiter         string    `yaml:"delimiter" mapstructure:"delimiter"`
	NullValues        []string  `yaml:"null_values" mapstructure:"null_values"`                 // replaces the defaults when set
	DisableNullValues []string  `yaml:"disable_null_values" mapstructure:"disable_null_values"` // removed from the defaults
	Pad               []PadRule `yaml:"pad" mapstructure:"pad"`
	DetectTypes       bool      `yaml:"detect_types" mapstructure:"detect_types"`
}

// PadRule zero-pads a column's raw text to Width runes on import.
// A list rather than a map because viper folds map keys to lower case.
type PadRule struct {
	Column string `yaml:"column" mapstructure:"column"`
	Width  int    `yaml:"width" mapstructure:"width"`
}

// PadWidths returns the pad rules keyed by column.
func (c *CSVConfig) PadWidths() map[string]int {
	if len(c.Pad) == 0 {
		return nil
	}
	out := make(map[string]int, len(c.Pad))
	for _, p := range c.Pad {
		out[p.Column] = p.Width
	}
	return out
}

// TimeConfig represents datetime parsing and bucketing settings.
type TimeConfig struct {
	Column    string   `yaml:"column" mapstructure:"column"`
	Layouts   []string `yaml:"layouts" mapstructure:"layouts"` // Go reference layouts tried before the defaults
	Frequency string   `yaml:"frequency" mapstructure:"frequency"`
}

// RangeConfig represents min/max settings.
type RangeConfig struct {
	Target string `yaml:"target" mapstructure:"target"` // float or int
}

// MatchConfig represents fuzzy categorical matching settings.
type MatchConfig struct {
	MinSimilarity float64 `yaml:"min_similarity" mapstructure:"min_similarity"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Driver: "mysql",
			Port:   3306,
			TLS:    "preferred",
		},
		CSV: CSVConfig{
			Delimiter:   ",",
			DetectTypes: true,
		},
		Time: TimeConfig{
			Frequency: "D",
		},
		Range: RangeConfig{
			Target: "float",
		},
		Match: MatchConfig{
			MinSimilarity: 0.8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat, target string) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if target != "" {
		c.Range.Target = target
	}
}
