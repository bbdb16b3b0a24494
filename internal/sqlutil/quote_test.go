package sqlutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Simple table name", input: "samples", expected: "`samples`"},
		{name: "Underscore", input: "lab_results", expected: "`lab_results`"},
		{name: "Empty string", input: "", expected: "``"},
		{name: "Embedded backtick", input: "my`col", expected: "`my``col`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteIdentifier(tt.input))
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"samples", "Sodium_mg", "col1", "_x"}
	for _, name := range valid {
		assert.True(t, IsValidIdentifier(name), name)
	}

	invalid := []string{"", "drop table", "a;b", "a.b", "naïve", "x`y"}
	for _, name := range invalid {
		assert.False(t, IsValidIdentifier(name), name)
	}
}

func TestQuoteIdentifierSafe(t *testing.T) {
	q, err := QuoteIdentifierSafe("sodium")
	require.NoError(t, err)
	assert.Equal(t, "`sodium`", q)

	_, err = QuoteIdentifierSafe("sodium; DROP TABLE x")
	var idErr *InvalidIdentifierError
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, "sodium; DROP TABLE x", idErr.Name)
}

func TestQuoteQualified(t *testing.T) {
	q, err := QuoteQualified("lab.samples")
	require.NoError(t, err)
	assert.Equal(t, "`lab`.`samples`", q)

	q, err = QuoteQualified("samples")
	require.NoError(t, err)
	assert.Equal(t, "`samples`", q)

	for _, bad := range []string{"a.b.c", "lab.", ".samples", "lab.sam ples"} {
		_, err := QuoteQualified(bad)
		assert.Error(t, err, bad)
	}
}

func TestSelectColumn(t *testing.T) {
	q, err := SelectColumn("lab.samples", "sodium")
	require.NoError(t, err)
	assert.Equal(t, "SELECT `sodium` FROM `lab`.`samples`", q)

	_, err = SelectColumn("samples", "so-dium")
	assert.Error(t, err)

	_, err = SelectColumn("sam ples", "sodium")
	assert.Error(t, err)
}

func TestInvalidIdentifierError_Error(t *testing.T) {
	err := &InvalidIdentifierError{Name: "bad name"}
	assert.Contains(t, err.Error(), "invalid identifier: bad name")
}
