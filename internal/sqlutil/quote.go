// Package sqlutil builds the small amount of SQL tabkit sends to a source database.
package sqlutil

import (
	"fmt"
	"regexp"
	"strings"
)

// QuoteIdentifier wraps an identifier in backticks, doubling any backtick inside.
// Both MySQL and SQLite accept backtick-quoted identifiers.
// Example: "my_table" -> "`my_table`"
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// validIdentifierRegex restricts identifiers to alphanumerics and underscore.
var validIdentifierRegex = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// IsValidIdentifier reports whether name only contains alphanumerics and underscores.
func IsValidIdentifier(name string) bool {
	return validIdentifierRegex.MatchString(name)
}

// QuoteIdentifierSafe quotes a single identifier after validating it.
func QuoteIdentifierSafe(name string) (string, error) {
	if !IsValidIdentifier(name) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return QuoteIdentifier(name), nil
}

// QuoteQualified validates and quotes a possibly schema-qualified name.
// Example: "lab.samples" -> "`lab`.`samples`"
func QuoteQualified(name string) (string, error) {
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return "", &InvalidIdentifierError{Name: name}
	}
	for i, p := range parts {
		q, err := QuoteIdentifierSafe(p)
		if err != nil {
			return "", &InvalidIdentifierError{Name: name}
		}
		parts[i] = q
	}
	return strings.Join(parts, "."), nil
}

// SelectColumn builds "SELECT `column` FROM `table`" from validated names.
func SelectColumn(table, column string) (string, error) {
	qt, err := QuoteQualified(table)
	if err != nil {
		return "", err
	}
	qc, err := QuoteIdentifierSafe(column)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s FROM %s", qc, qt), nil
}

// InvalidIdentifierError is returned when an identifier contains invalid characters.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return "invalid identifier: " + e.Name + " (must contain only alphanumeric characters and underscores)"
}
