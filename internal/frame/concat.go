package frame

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrNoFrames is returned when ConcatUnique is called without any frame.
var ErrNoFrames = errors.New("no frames to concatenate")

// rowKeySep joins cell text into a row key; it cannot appear in CSV text cells.
const rowKeySep = "\x1f"

// ConcatUnique row-binds frames in order and keeps only the first
// occurrence of each fully duplicated row. All frames must share one column set.
func ConcatUnique(frames ...dataframe.DataFrame) (dataframe.DataFrame, error) {
	if len(frames) == 0 {
		return dataframe.DataFrame{}, ErrNoFrames
	}

	want := sortedNames(frames[0])
	for i, f := range frames {
		if f.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("frame %d: %w", i, f.Err)
		}
		if got := sortedNames(f); got != want {
			return dataframe.DataFrame{}, fmt.Errorf("frame %d: columns [%s] do not match [%s]", i, got, want)
		}
	}

	frames, err := unifyTypes(frames)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	out := frames[0]
	for i, f := range frames[1:] {
		out = out.RBind(f)
		if out.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("failed to bind frame %d: %w", i+1, out.Err)
		}
	}

	return DropDuplicates(out)
}

// DropDuplicates keeps the first occurrence of each fully duplicated row.
// Missing cells compare equal to each other.
func DropDuplicates(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	records := df.Records()
	if len(records) <= 1 {
		return df, nil
	}

	seen := make(map[string]struct{}, len(records)-1)
	keep := make([]int, 0, len(records)-1)
	for i, row := range records[1:] {
		key := strings.Join(row, rowKeySep)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}

	if len(keep) == df.Nrow() {
		return df, nil
	}
	out := df.Subset(keep)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to subset rows: %w", out.Err)
	}
	return out, nil
}

// unifyTypes makes each column's type agree across frames so RBind never
// reparses cells. Int columns are widened to float when another frame holds
// floats; any other disagreement is an error. The input slice is not modified.
func unifyTypes(frames []dataframe.DataFrame) ([]dataframe.DataFrame, error) {
	out := append([]dataframe.DataFrame(nil), frames...)
	for _, name := range frames[0].Names() {
		seen := make(map[series.Type]bool)
		for _, f := range out {
			seen[f.Col(name).Type()] = true
		}
		if len(seen) == 1 {
			continue
		}
		if len(seen) != 2 || !seen[series.Int] || !seen[series.Float] {
			return nil, fmt.Errorf("column %q has conflicting types %s", name, typeList(seen))
		}

		for i, f := range out {
			col := f.Col(name)
			if col.Type() != series.Int {
				continue
			}
			widened := f.Copy().Mutate(asFloat(col))
			if widened.Err != nil {
				return nil, fmt.Errorf("frame %d: failed to widen %s: %w", i, name, widened.Err)
			}
			out[i] = widened
		}
	}
	return out, nil
}

// asFloat converts an int series to float, keeping missing cells missing.
func asFloat(s series.Series) series.Series {
	text := make([]string, s.Len())
	for i := range text {
		e := s.Elem(i)
		if e.IsNA() {
			text[i] = "NaN"
			continue
		}
		text[i] = e.String()
	}
	return series.New(text, series.Float, s.Name)
}

func typeList(types map[series.Type]bool) string {
	names := make([]string, 0, len(types))
	for t := range types {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func sortedNames(df dataframe.DataFrame) string {
	names := append([]string(nil), df.Names()...)
	sort.Strings(names)
	return strings.Join(names, ", ")
}
