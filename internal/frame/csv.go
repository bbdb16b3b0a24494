// Package frame wraps gota dataframes with the import and reshaping helpers tabkit needs.
package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DefaultNullValues are the cell strings read as missing unless overridden.
var DefaultNullValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// NullValues returns DefaultNullValues without the disabled markers.
// Use it when a marker is real data, e.g. "NA" for sodium.
func NullValues(disable ...string) []string {
	if len(disable) == 0 {
		return append([]string(nil), DefaultNullValues...)
	}
	off := make(map[string]bool, len(disable))
	for _, d := range disable {
		off[d] = true
	}
	out := make([]string, 0, len(DefaultNullValues))
	for _, v := range DefaultNullValues {
		if !off[v] {
			out = append(out, v)
		}
	}
	return out
}

// CSVOptions controls CSV import.
type CSVOptions struct {
	Delimiter   rune           // Field delimiter (default ',')
	NullValues  []string       // Cells read as missing; nil means DefaultNullValues
	Pad         map[string]int // Column -> width; raw text is left-padded with '0'
	DetectTypes bool           // Infer int/float/bool columns; otherwise all strings
}

// DefaultCSVOptions returns default options for CSV import.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:   ',',
		DetectTypes: true,
	}
}

// LoadCSV reads a CSV file into a DataFrame.
func LoadCSV(path string, opts CSVOptions) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open csv: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, opts)
}

// ReadCSV reads CSV data with a header row into a DataFrame.
// Padding is applied to raw cell text before type detection, and padded
// columns are always kept as strings. Null cells are never padded.
func ReadCSV(r io.Reader, opts CSVOptions) (dataframe.DataFrame, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	records, err := reader.ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("csv has no header row")
	}

	nulls := opts.NullValues
	if nulls == nil {
		nulls = DefaultNullValues
	}

	colTypes, err := padColumns(records, opts.Pad, nulls)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	loadOpts := []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(opts.DetectTypes),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nulls),
	}
	if len(colTypes) > 0 {
		loadOpts = append(loadOpts, dataframe.WithTypes(colTypes))
	}

	df := dataframe.LoadRecords(records, loadOpts...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to load records: %w", df.Err)
	}
	return df, nil
}

// padColumns pads the configured columns in place and returns their forced types.
func padColumns(records [][]string, pad map[string]int, nulls []string) (map[string]series.Type, error) {
	if len(pad) == 0 {
		return nil, nil
	}

	header := records[0]
	isNull := make(map[string]bool, len(nulls))
	for _, n := range nulls {
		isNull[n] = true
	}

	types := make(map[string]series.Type, len(pad))
	for column, width := range pad {
		idx := indexOf(header, column)
		if idx < 0 {
			return nil, fmt.Errorf("pad column %q not found in header", column)
		}
		for _, row := range records[1:] {
			if idx < len(row) && !isNull[row[idx]] {
				row[idx] = PadLeft(row[idx], width)
			}
		}
		types[column] = series.String
	}
	return types, nil
}

// PadLeft left-pads s with '0' to width runes. Longer values are kept whole.
func PadLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat("0", width-n) + s
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
