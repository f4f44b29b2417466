package bench

import (
	"cmp"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/Laisky/bsearch-bench/algorithm"
	"github.com/Laisky/bsearch-bench/log"
)

// Variant one search implementation to be measured
type Variant[T cmp.Ordered] struct {
	// Name shown in report, like "Safe"
	Name string
	// Icon prefix of the report line
	Icon string
	// Color ANSI foreground color of Name
	Color  int
	Search algorithm.Searcher[T]
}

// DefaultVariants bounds-checked search first, then the unchecked one
func DefaultVariants[T cmp.Ordered]() []Variant[T] {
	return []Variant[T]{
		{Name: "Safe", Icon: "✅", Color: ANSIColorFgGreen, Search: algorithm.BinarySearch[T]},
		{Name: "Unsafe", Icon: "⚡", Color: ANSIColorFgYellow, Search: algorithm.BinarySearchUnchecked[T]},
	}
}

// Measurement result of running one variant once
type Measurement struct {
	Variant string
	Icon    string
	Color   int
	Index   int
	Found   bool
	Elapsed time.Duration
}

// Result formats the search result as "Some(idx)" or "None"
func (m Measurement) Result() string {
	if !m.Found {
		return "None"
	}

	return fmt.Sprintf("Some(%d)", m.Index)
}

// Report results of all variants on the same data and target
type Report struct {
	Label        string
	Size         int
	Target       string
	Measurements []Measurement
}

// Benchmark runs every variant once on data and target, in order,
// and records the found index and the elapsed wall-clock time.
//
// No warm-up, no retry, no aggregation.
// Use DefaultVariants if variants is empty.
func Benchmark[T cmp.Ordered](label string, data []T, target T, variants ...Variant[T]) *Report {
	if len(variants) == 0 {
		variants = DefaultVariants[T]()
	}

	report := &Report{
		Label:  label,
		Size:   len(data),
		Target: fmt.Sprint(target),
	}
	logger := log.Shared.Named("benchmark").With(
		zap.String("label", label),
		zap.Int("size", len(data)),
	)

	for _, v := range variants {
		startAt := time.Now()
		idx, found := v.Search(data, target)
		elapsed := time.Since(startAt)

		logger.Debug("search done",
			zap.String("variant", v.Name),
			zap.Int("index", idx),
			zap.Bool("found", found),
			zap.Duration("elapsed", elapsed))
		report.Measurements = append(report.Measurements, Measurement{
			Variant: v.Name,
			Icon:    v.Icon,
			Color:   v.Color,
			Index:   idx,
			Found:   found,
			Elapsed: elapsed,
		})
	}

	return report
}

type printOption struct {
	color bool
}

// PrintOption optional arguments for Report.Fprint
type PrintOption func(*printOption)

// WithColor colorize variant names by ANSI color
func WithColor(enable bool) PrintOption {
	return func(o *printOption) {
		o.color = enable
	}
}

// Fprint writes one line per measurement, like
//
//	✅ Safe int:   Some(7) (took 1.2µs)
//	⚡ Unsafe int: Some(7) (took 800ns)
func (r *Report) Fprint(w io.Writer, opts ...PrintOption) error {
	opt := new(printOption)
	for _, f := range opts {
		f(opt)
	}

	width := 0
	for _, m := range r.Measurements {
		width = max(width, len(m.Variant)+len(r.Label)+2)
	}

	for _, m := range r.Measurements {
		name := m.Variant
		if opt.color {
			name = Color(m.Color, name)
		}

		pad := strings.Repeat(" ", width-len(m.Variant)-len(r.Label)-1)
		if _, err := fmt.Fprintf(w, "%s %s %s:%s%s (took %s)\n",
			m.Icon, name, r.Label, pad, m.Result(), m.Elapsed); err != nil {
			return errors.Wrapf(err, "print measurement of %s", m.Variant)
		}
	}

	return nil
}

// FprintHeader writes the line announcing a search, like
//
//	🔢 Searching for 42 in int array of 100 items...
//	🔤 Searching for "item0000042" in string array of 100 items...
func FprintHeader[T cmp.Ordered](w io.Writer, label string, target T, size int) error {
	var err error
	switch v := any(target).(type) {
	case string:
		_, err = fmt.Fprintf(w, "🔤 Searching for %q in %s array of %d items...\n", v, label, size)
	default:
		_, err = fmt.Fprintf(w, "🔢 Searching for %v in %s array of %d items...\n", v, label, size)
	}
	if err != nil {
		return errors.Wrap(err, "print header")
	}

	return nil
}
