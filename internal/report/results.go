package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/tabkit/internal/frame"
	"github.com/dbsmedya/tabkit/internal/types"
)

// TypeCounts writes the element count of every kind, in priority order.
func (p *Printer) TypeCounts(b *types.Buckets) error {
	rows := orderedmap.NewOrderedMap[string, string]()
	for _, k := range types.AllKinds {
		rows.Set(k.String(), strconv.Itoa(b.Count(k)))
	}
	rows.Set("Total", strconv.Itoa(b.Len()))
	return p.KeyValues(rows)
}

// Proportions writes the percentage of every kind, in priority order.
func (p *Printer) Proportions(r *types.ProportionReport) error {
	rows := orderedmap.NewOrderedMap[string, string]()
	for _, k := range types.AllKinds {
		rows.Set(k.String(), fmt.Sprintf("%.2f%%", r.Get(k)))
	}
	rows.Set("Total", strconv.Itoa(r.Total))
	return p.KeyValues(rows)
}

// Inspection writes one row per column summary.
func (p *Printer) Inspection(summaries []*frame.ColumnSummary) error {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			string(s.Type),
			strconv.Itoa(s.Rows),
			strconv.Itoa(s.Nulls),
			strconv.Itoa(s.Distinct),
		})
	}
	return p.Table([]string{"Column", "Type", "Rows", "Nulls", "Distinct"}, rows)
}

// Range writes the minimum and maximum.
func (p *Printer) Range(r *types.Range) error {
	rows := orderedmap.NewOrderedMap[string, string]()
	rows.Set("Minimum", fmt.Sprint(r.Minimum))
	rows.Set("Maximum", fmt.Sprint(r.Maximum))
	return p.KeyValues(rows)
}

// Matches writes the raw values that matched canonical.
func (p *Printer) Matches(canonical string, matched []string) error {
	if err := p.Title(fmt.Sprintf("%s (%d variants)", canonical, len(matched))); err != nil {
		return err
	}
	for _, m := range matched {
		if _, err := fmt.Fprintf(p.w, "  %q\n", m); err != nil {
			return err
		}
	}
	return nil
}

// DefaultBarWidth is the bar length of the busiest bucket in Timeline.
const DefaultBarWidth = 40

// Timeline writes one bar per bucket, scaled so the largest count spans width cells.
func (p *Printer) Timeline(buckets []frame.Bucket, freq frame.Frequency, width int) error {
	if width <= 0 {
		width = DefaultBarWidth
	}
	peak := 0
	for _, b := range buckets {
		if b.Count > peak {
			peak = b.Count
		}
	}

	rows := orderedmap.NewOrderedMap[string, string]()
	for _, b := range buckets {
		n := 0
		if peak > 0 {
			n = b.Count * width / peak
		}
		if n == 0 && b.Count > 0 {
			n = 1
		}
		bar := p.paint(barStyle, strings.Repeat("#", n))
		rows.Set(BucketLabel(b, freq), strings.TrimLeft(fmt.Sprintf("%s %d", bar, b.Count), " "))
	}
	return p.KeyValues(rows)
}

// BucketLabel formats a bucket start at the resolution of freq.
func BucketLabel(b frame.Bucket, freq frame.Frequency) string {
	t := b.Start
	switch freq {
	case frame.Hourly:
		return t.Format("2006-01-02 15:00")
	case frame.Daily, frame.Weekly:
		return t.Format("2006-01-02")
	case frame.Monthly:
		return t.Format("2006-01")
	case frame.Quarterly:
		return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
	default:
		return t.Format("2006")
	}
}
