package frame

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ColumnSummary describes one column of a DataFrame.
type ColumnSummary struct {
	Name     string
	Type     series.Type
	Rows     int
	Nulls    int
	Distinct int // Distinct non-null values
}

// InspectColumn summarizes the named column.
func InspectColumn(df dataframe.DataFrame, name string) (*ColumnSummary, error) {
	s, err := Column(df, name)
	if err != nil {
		return nil, err
	}
	return summarize(s), nil
}

// InspectAll summarizes every column in header order.
func InspectAll(df dataframe.DataFrame) []*ColumnSummary {
	names := df.Names()
	out := make([]*ColumnSummary, 0, len(names))
	for _, name := range names {
		out = append(out, summarize(df.Col(name)))
	}
	return out
}

func summarize(s series.Series) *ColumnSummary {
	sum := &ColumnSummary{
		Name: s.Name,
		Type: s.Type(),
		Rows: s.Len(),
	}

	seen := make(map[string]struct{})
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			sum.Nulls++
			continue
		}
		seen[e.String()] = struct{}{}
	}
	sum.Distinct = len(seen)
	return sum
}
