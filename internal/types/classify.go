package types

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrEmptyInput is returned when a computation needs at least one element.
var ErrEmptyInput = errors.New("empty input: no elements to summarize")

// Options controls the optional summary printout of ByType and Proportions.
type Options struct {
	Verbose bool      // Print a per-kind summary after computing
	Output  io.Writer // Summary destination; defaults to os.Stdout
}

func (o Options) writer() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}

// Buckets partitions a sequence by Kind. Order within a bucket follows the source.
type Buckets struct {
	parts [kindCount][]interface{}
}

// Get returns the elements classified as k.
func (b *Buckets) Get(k Kind) []interface{} {
	if k < 0 || k >= kindCount {
		return nil
	}
	return b.parts[k]
}

// Count returns the number of elements classified as k.
func (b *Buckets) Count(k Kind) int {
	return len(b.Get(k))
}

// Len returns the total number of classified elements.
func (b *Buckets) Len() int {
	n := 0
	for _, p := range b.parts {
		n += len(p)
	}
	return n
}

// Map returns the buckets keyed by Kind.Key.
func (b *Buckets) Map() map[string][]interface{} {
	out := make(map[string][]interface{}, kindCount)
	for _, k := range AllKinds {
		out[k.Key()] = b.parts[k]
	}
	return out
}

// WriteSummary writes one "<Label>: <count>" line per kind.
func (b *Buckets) WriteSummary(w io.Writer) error {
	for _, k := range AllKinds {
		if _, err := fmt.Fprintf(w, "%s: %d\n", k, len(b.parts[k])); err != nil {
			return err
		}
	}
	return nil
}

// ByType classifies every element of values with KindOf.
func ByType(values []interface{}, opts Options) *Buckets {
	b := &Buckets{}
	for _, v := range values {
		k := KindOf(v)
		b.parts[k] = append(b.parts[k], v)
	}

	if opts.Verbose {
		_ = b.WriteSummary(opts.writer())
	}
	return b
}

// ProportionReport holds the percentage of elements per kind.
type ProportionReport struct {
	Total int
	pct   [kindCount]float64
}

// Get returns the percentage (0-100) of elements classified as k.
func (r *ProportionReport) Get(k Kind) float64 {
	if k < 0 || k >= kindCount {
		return 0
	}
	return r.pct[k]
}

// Sum returns the total of all percentages; 100 up to rounding.
func (r *ProportionReport) Sum() float64 {
	var s float64
	for _, p := range r.pct {
		s += p
	}
	return s
}

// Map returns the percentages keyed by Kind.Key.
func (r *ProportionReport) Map() map[string]float64 {
	out := make(map[string]float64, kindCount)
	for _, k := range AllKinds {
		out[k.Key()] = r.pct[k]
	}
	return out
}

// WriteSummary writes one "<Label>: <percent>" line per kind.
func (r *ProportionReport) WriteSummary(w io.Writer) error {
	for _, k := range AllKinds {
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, strconv.FormatFloat(r.pct[k], 'g', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

// Proportions classifies values and reports each kind's share in percent.
// opts only controls the percentage printout; the classification itself is silent.
func Proportions(values []interface{}, opts Options) (*ProportionReport, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	b := ByType(values, Options{})
	total := len(values)
	r := &ProportionReport{Total: total}
	for _, k := range AllKinds {
		r.pct[k] = float64(b.Count(k)) / float64(total) * 100
	}

	if opts.Verbose {
		_ = r.WriteSummary(opts.writer())
	}
	return r, nil
}
