package frame

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultTimeLayouts are tried, in order, after any caller-supplied layouts.
var DefaultTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// timeCacheSize bounds the memo of parsed timestamp strings per call.
const timeCacheSize = 4096

// TimeFrame is a DataFrame indexed by a parsed datetime column.
// Index[i] is the timestamp of row i; row order is unchanged.
type TimeFrame struct {
	Frame  dataframe.DataFrame
	Column string
	Index  []time.Time
}

// IndexByTime parses column into timestamps using layouts, then DefaultTimeLayouts.
// A missing or unparseable cell fails the whole call.
func IndexByTime(df dataframe.DataFrame, column string, layouts ...string) (*TimeFrame, error) {
	s, err := Column(df, column)
	if err != nil {
		return nil, err
	}

	all := append(append([]string(nil), layouts...), DefaultTimeLayouts...)
	cache, err := lru.New[string, time.Time](timeCacheSize)
	if err != nil {
		return nil, err
	}

	index := make([]time.Time, s.Len())
	for i := range index {
		e := s.Elem(i)
		if e.IsNA() {
			return nil, fmt.Errorf("row %d: %s is null", i, column)
		}

		text := strings.TrimSpace(e.String())
		if ts, ok := cache.Get(text); ok {
			index[i] = ts
			continue
		}

		ts, err := ParseTime(text, all)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		cache.Add(text, ts)
		index[i] = ts
	}

	return &TimeFrame{Frame: df, Column: column, Index: index}, nil
}

// ParseTime tries each layout in turn.
func ParseTime(text string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a timestamp", text)
}

// ErrUnknownFrequency is returned for a frequency code outside H, D, W, M, Q, Y.
var ErrUnknownFrequency = errors.New("unknown frequency")

// Frequency is a bucket width for RowsOverTime.
type Frequency string

// Supported frequencies.
const (
	Hourly    Frequency = "H"
	Daily     Frequency = "D"
	Weekly    Frequency = "W"
	Monthly   Frequency = "M"
	Quarterly Frequency = "Q"
	Yearly    Frequency = "Y"
)

// ParseFrequency accepts the single-letter codes in either case; "A" is an alias for Y.
func ParseFrequency(code string) (Frequency, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "H":
		return Hourly, nil
	case "D":
		return Daily, nil
	case "W":
		return Weekly, nil
	case "M":
		return Monthly, nil
	case "Q":
		return Quarterly, nil
	case "Y", "A":
		return Yearly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, code)
}

// Truncate returns the start of the bucket containing t, in UTC.
// Weeks start on Monday.
func (f Frequency) Truncate(t time.Time) time.Time {
	t = t.UTC()
	y, m, d := t.Date()
	switch f {
	case Hourly:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, time.UTC)
	case Daily:
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case Weekly:
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-back, 0, 0, 0, 0, time.UTC)
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	case Quarterly:
		return time.Date(y, ((m-1)/3)*3+1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
	}
}

// next returns the start of the bucket after the one starting at start.
func (f Frequency) next(start time.Time) time.Time {
	switch f {
	case Hourly:
		return start.Add(time.Hour)
	case Daily:
		return start.AddDate(0, 0, 1)
	case Weekly:
		return start.AddDate(0, 0, 7)
	case Monthly:
		return start.AddDate(0, 1, 0)
	case Quarterly:
		return start.AddDate(0, 3, 0)
	default:
		return start.AddDate(1, 0, 0)
	}
}

// Bucket is the number of rows whose timestamp falls in [Start, next Start).
type Bucket struct {
	Start time.Time
	Count int
}

// RowsOverTime counts rows per bucket from the earliest to the latest
// timestamp. Empty buckets in between are included with a zero count.
func (tf *TimeFrame) RowsOverTime(freq Frequency) ([]Bucket, error) {
	freq, err := ParseFrequency(string(freq))
	if err != nil {
		return nil, err
	}
	if len(tf.Index) == 0 {
		return nil, nil
	}

	counts := make(map[int64]int)
	first := freq.Truncate(tf.Index[0])
	last := first
	for _, ts := range tf.Index {
		start := freq.Truncate(ts)
		counts[start.Unix()]++
		if start.Before(first) {
			first = start
		}
		if start.After(last) {
			last = start
		}
	}

	var buckets []Bucket
	for start := first; !start.After(last); start = freq.next(start) {
		buckets = append(buckets, Bucket{Start: start, Count: counts[start.Unix()]})
	}
	return buckets, nil
}
