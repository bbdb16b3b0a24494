package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column returns the named column or an error if it does not exist.
func Column(df dataframe.DataFrame, name string) (series.Series, error) {
	s := df.Col(name)
	if s.Err != nil {
		return series.Series{}, fmt.Errorf("column %q: %w", name, s.Err)
	}
	return s, nil
}

// Values returns each element's native value; missing elements are nil.
// Elements keep the series type, so a detected int column yields ints.
func Values(s series.Series) []interface{} {
	out := make([]interface{}, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		out[i] = e.Val()
	}
	return out
}

// InferValues parses each element's text on its own: int, then float,
// then bool ("true"/"false" in any case), else string. Missing elements are nil.
// Unlike Values this yields mixed sequences for columns gota typed as string.
func InferValues(s series.Series) []interface{} {
	out := make([]interface{}, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		out[i] = inferCell(e.String())
	}
	return out
}

func inferCell(raw string) interface{} {
	text := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(text, 10, 0); err == nil {
		return int(n)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f
	}
	switch {
	case strings.EqualFold(text, "true"):
		return true
	case strings.EqualFold(text, "false"):
		return false
	}
	return raw
}
