// Package report renders tabkit results as aligned plain-text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Printer writes reports to w. Colour codes are only emitted when Color is set.
type Printer struct {
	w     io.Writer
	Color bool
}

// New creates a Printer writing to w.
func New(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, Color: colored}
}

func (p *Printer) paint(style color.Style, s string) string {
	if !p.Color {
		return s
	}
	return style.Sprint(s)
}

var (
	titleStyle  = color.Style{color.FgCyan, color.OpBold}
	headerStyle = color.Style{color.OpBold}
	valueStyle  = color.Style{color.FgGreen}
	barStyle    = color.Style{color.FgYellow}
)

// Title writes a heading line.
func (p *Printer) Title(title string) error {
	_, err := fmt.Fprintln(p.w, p.paint(titleStyle, title))
	return err
}

// KeyValues writes one "key  value" line per entry, keys padded to a
// common display width. Entries keep insertion order.
func (p *Printer) KeyValues(rows *orderedmap.OrderedMap[string, string]) error {
	width := 0
	for el := rows.Front(); el != nil; el = el.Next() {
		if w := runewidth.StringWidth(el.Key); w > width {
			width = w
		}
	}

	for el := rows.Front(); el != nil; el = el.Next() {
		key := runewidth.FillRight(el.Key, width)
		if _, err := fmt.Fprintf(p.w, "%s  %s\n", key, p.paint(valueStyle, el.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Table writes a header row, a rule, and the rows, each column padded to
// its widest cell. Cells beyond the header width are ignored.
func (p *Printer) Table(header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(header) && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	if _, err := fmt.Fprintln(p.w, p.paint(headerStyle, joinCells(header, widths))); err != nil {
		return err
	}
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	if _, err := fmt.Fprintln(p.w, joinCells(rule, widths)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(p.w, joinCells(row, widths)); err != nil {
			return err
		}
	}
	return nil
}

func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(widths)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = runewidth.FillRight(cell, w)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
