package frame

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchOptions controls MatchCategories.
type MatchOptions struct {
	// MinSimilarity is the Levenshtein similarity (0..1) a folded value
	// needs to match. Zero means 0.8.
	MinSimilarity float64
	// Contains also matches values whose folded form contains the folded
	// canonical form, e.g. "DÉTEDÉTECTÉ". Off by default because it also
	// catches negations such as "NON DÉTECTÉ".
	Contains bool
}

const defaultMinSimilarity = 0.8

// MatchCategories returns the distinct values of s, in order of first
// appearance, that fuzzily match canonical. Values are folded before
// comparison: accents stripped, lower-cased, non-letters dropped.
func MatchCategories(s series.Series, canonical string, opts MatchOptions) []string {
	minSim := opts.MinSimilarity
	if minSim <= 0 {
		minSim = defaultMinSimilarity
	}
	want := Fold(canonical)

	var matched []string
	seen := make(map[string]bool)
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		v := e.String()
		if seen[v] {
			continue
		}
		seen[v] = true

		got := Fold(v)
		switch {
		case got == want:
		case opts.Contains && want != "" && strings.Contains(got, want):
		case levenshtein.Similarity(got, want, nil) >= minSim:
		default:
			continue
		}
		matched = append(matched, v)
	}
	return matched
}

// Fold strips diacritics, lower-cases, and keeps only letters.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	for _, r := range stripped {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// FilterIn keeps the rows whose column value is one of values.
func FilterIn(df dataframe.DataFrame, column string, values []string) (dataframe.DataFrame, error) {
	if _, err := Column(df, column); err != nil {
		return dataframe.DataFrame{}, err
	}

	out := df.Filter(dataframe.F{
		Colname:    column,
		Comparator: series.In,
		Comparando: values,
	})
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to filter %s: %w", column, out.Err)
	}
	return out, nil
}
