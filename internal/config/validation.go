package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the file-independent settings. The SQL source is only
// checked by ValidateSource, since most commands never open it.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateCSV()...)
	errors = append(errors, c.validateTime()...)
	errors = append(errors, c.validateRange()...)
	errors = append(errors, c.validateMatch()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

// ValidateSource checks the SQL source settings.
func (c *Config) ValidateSource() error {
	var errors ValidationErrors
	src := &c.Source

	switch src.Driver {
	case "sqlite":
		if src.Path == "" {
			errors = append(errors, ValidationError{
				Field:   "source.path",
				Message: "path is required for the sqlite driver",
			})
		}
	case "mysql", "":
		if src.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "source.host",
				Message: "host is required",
			})
		}

		if src.Port <= 0 || src.Port > 65535 {
			errors = append(errors, ValidationError{
				Field:   "source.port",
				Message: "port must be between 1 and 65535",
			})
		}

		if src.User == "" {
			errors = append(errors, ValidationError{
				Field:   "source.user",
				Message: "user is required",
			})
		}

		if src.Database == "" {
			errors = append(errors, ValidationError{
				Field:   "source.database",
				Message: "database name is required",
			})
		}

		validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
		if !validTLS[src.TLS] {
			errors = append(errors, ValidationError{
				Field:   "source.tls",
				Message: "tls must be 'disable', 'preferred', or 'required'",
			})
		}
	default:
		errors = append(errors, ValidationError{
			Field:   "source.driver",
			Message: "driver must be 'mysql' or 'sqlite'",
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateCSV() ValidationErrors {
	var errors ValidationErrors

	if c.CSV.Delimiter != "" && utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		errors = append(errors, ValidationError{
			Field:   "csv.delimiter",
			Message: "delimiter must be a single character",
		})
	}

	for i, p := range c.CSV.Pad {
		prefix := fmt.Sprintf("csv.pad[%d]", i)
		if p.Column == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".column",
				Message: "column is required",
			})
		}
		if p.Width <= 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".width",
				Message: "width must be positive",
			})
		}
	}

	return errors
}

func (c *Config) validateTime() ValidationErrors {
	var errors ValidationErrors

	// Codes are case-insensitive; A is an alias for Y.
	validFrequencies := map[string]bool{"H": true, "D": true, "W": true, "M": true, "Q": true, "Y": true, "A": true, "": true}
	if !validFrequencies[strings.ToUpper(c.Time.Frequency)] {
		errors = append(errors, ValidationError{
			Field:   "time.frequency",
			Message: "frequency must be one of H, D, W, M, Q, Y",
		})
	}

	return errors
}

func (c *Config) validateRange() ValidationErrors {
	var errors ValidationErrors

	validTargets := map[string]bool{"float": true, "int": true, "": true}
	if !validTargets[c.Range.Target] {
		errors = append(errors, ValidationError{
			Field:   "range.target",
			Message: "target must be 'float' or 'int'",
		})
	}

	return errors
}

func (c *Config) validateMatch() ValidationErrors {
	var errors ValidationErrors

	if c.Match.MinSimilarity < 0 || c.Match.MinSimilarity > 1 {
		errors = append(errors, ValidationError{
			Field:   "match.min_similarity",
			Message: "min_similarity must be between 0 and 1",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
