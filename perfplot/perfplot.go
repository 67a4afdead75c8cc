// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfplot turns Kadane benchmark result files into charts.
//
// Generate reads the benchmark results file, averages the runs of
// each input size, fits a line to time against input size and renders
// four charts from the result. If a distribution results file is also
// present, it renders a fifth chart comparing input distributions.
package perfplot

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"strings"

	"github.com/kadanebench/perfplot/benchagg"
	"github.com/kadanebench/perfplot/benchchart"
	"github.com/kadanebench/perfplot/benchcsv"
	"github.com/kadanebench/perfplot/storage/db"
	"github.com/kadanebench/perfplot/storage/fs"
	"golang.org/x/net/context"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Chart file names.
const (
	TimeChart          = "time_vs_size.png"
	ComparisonsChart   = "comparisons_vs_size.png"
	ArrayAccessesChart = "array_accesses_vs_size.png"
	FitChart           = "linear_verification.png"
	DistributionChart  = "distribution_comparison.png"
)

// FitLabel is the legend label of the fitted line.
const FitLabel = "Linear fit: O(n)"

var (
	// ErrMissingMandatoryInput is returned when the benchmark
	// results file does not exist. No charts are written.
	ErrMissingMandatoryInput = errors.New("benchmark results not found; run benchmarks first")

	// ErrMissingOptionalInput is reported as a warning when the
	// distribution results file does not exist.
	ErrMissingOptionalInput = errors.New("distribution results not found; skipping distribution plots")

	// ErrChartFailed is returned when one or more charts could not
	// be written. The remaining charts are still written.
	ErrChartFailed = errors.New("failed to generate charts")
)

// Config configures Generate.
type Config struct {
	// BenchPath is the benchmark results file. It must exist.
	BenchPath string
	// DistPath is the distribution results file. It may be absent.
	DistPath string

	// OutName names the output location in status messages.
	OutName string

	LineSize benchchart.Size
	BarSize  benchchart.Size

	// DB, if non-nil, archives the aggregated series and fit.
	DB *db.DB

	// Stdout receives one line per generated chart and a summary
	// line. If nil, status is discarded.
	Stdout io.Writer

	// Warn, if non-nil, is called for recoverable problems.
	Warn func(format string, args ...interface{})
}

// DefaultConfig returns the configuration used when no flags are
// given.
func DefaultConfig() Config {
	return Config{
		BenchPath: "../data/benchmark_results.csv",
		DistPath:  "../data/distribution_results.csv",
		OutName:   "performance-plots",
		LineSize:  benchchart.LineSize,
		BarSize:   benchchart.BarSize,
	}
}

// A Report describes the outcome of Generate.
type Report struct {
	// Files lists the charts written, in the order they were written.
	Files []string
	// Failed lists the charts that could not be written.
	Failed []string

	Sizes         []benchagg.SizeSummary
	Distributions []benchagg.DistributionSummary

	// Fit is nil if no line could be fitted.
	Fit *benchagg.LinearFit

	Warnings []string

	// RunID is the archived run, or 0 if Config.DB is nil.
	RunID int64
}

type generator struct {
	ctx context.Context
	cfg Config
	out fs.FS
	r   *Report
}

// Generate renders the charts described by cfg into out.
//
// If the benchmark results file is missing or malformed, Generate
// returns an error wrapping ErrMissingMandatoryInput or the parse
// error and writes nothing. Problems with the distribution results
// file are reported through cfg.Warn. A chart that fails to render
// does not stop the others; Generate then returns a Report together
// with an error wrapping ErrChartFailed.
func Generate(ctx context.Context, cfg Config, out fs.FS) (*Report, error) {
	if cfg.Stdout == nil {
		cfg.Stdout = io.Discard
	}
	g := &generator{ctx: ctx, cfg: cfg, out: out, r: new(Report)}

	recs, err := benchcsv.LoadBenchmarks(cfg.BenchPath)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrMissingMandatoryInput, err)
	} else if err != nil {
		return nil, err
	}
	sizes, err := benchagg.BySize(recs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.BenchPath, err)
	}
	g.r.Sizes = sizes

	g.sizeCharts()
	g.fitChart()
	g.distributionChart()

	if cfg.DB != nil {
		if err := g.archive(); err != nil {
			return g.r, fmt.Errorf("archiving run: %w", err)
		}
	}

	if len(g.r.Failed) > 0 {
		fmt.Fprintf(cfg.Stdout, "\nGenerated %d of %d plots in %s/\n", len(g.r.Files), len(g.r.Files)+len(g.r.Failed), cfg.OutName)
		return g.r, fmt.Errorf("%w: %s", ErrChartFailed, strings.Join(g.r.Failed, ", "))
	}
	fmt.Fprintf(cfg.Stdout, "\nAll plots generated successfully in %s/\n", cfg.OutName)
	return g.r, nil
}

func (g *generator) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	g.r.Warnings = append(g.r.Warnings, msg)
	if g.cfg.Warn != nil {
		g.cfg.Warn("%s", msg)
	}
}

func (g *generator) sizeCharts() {
	x := func(s benchagg.SizeSummary) float64 { return float64(s.InputSize) }
	for _, c := range []struct {
		name   string
		labels benchchart.Labels
		y      func(benchagg.SizeSummary) float64
		series benchchart.Series
	}{
		{
			TimeChart,
			benchchart.Labels{Title: "Kadane Algorithm: Time Complexity Analysis", X: "Input Size (n)", Y: "Average Time (ms)"},
			func(s benchagg.SizeSummary) float64 { return s.TimeMs },
			benchchart.Series{Color: benchchart.Blue, Shape: draw.CircleGlyph{}},
		},
		{
			ComparisonsChart,
			benchchart.Labels{Title: "Kadane Algorithm: Comparison Operations", X: "Input Size (n)", Y: "Number of Comparisons"},
			func(s benchagg.SizeSummary) float64 { return s.Comparisons },
			benchchart.Series{Color: benchchart.Orange, Shape: draw.BoxGlyph{}},
		},
		{
			ArrayAccessesChart,
			benchchart.Labels{Title: "Kadane Algorithm: Memory Access Patterns", X: "Input Size (n)", Y: "Array Access Operations"},
			func(s benchagg.SizeSummary) float64 { return s.ArrayAccesses },
			benchchart.Series{Color: benchchart.Green, Shape: draw.TriangleGlyph{}},
		},
	} {
		c.series.XYs = sizeXYs(g.r.Sizes, x, c.y)
		pl, err := benchchart.Line(c.labels, c.series)
		g.write(c.name, c.labels.Title, pl, err, g.cfg.LineSize, "")
	}
}

func sizeXYs(sums []benchagg.SizeSummary, x, y func(benchagg.SizeSummary) float64) plotter.XYs {
	xys := make(plotter.XYs, len(sums))
	for i, s := range sums {
		xys[i] = plotter.XY{X: x(s), Y: y(s)}
	}
	return xys
}

func (g *generator) fitChart() {
	const title = "Linear Time Complexity Verification"
	fit, err := benchagg.FitSizes(g.r.Sizes)
	if err != nil {
		g.write(FitChart, title, nil, err, g.cfg.LineSize, "")
		return
	}
	g.r.Fit = &fit

	xys := sizeXYs(g.r.Sizes,
		func(s benchagg.SizeSummary) float64 { return float64(s.InputSize) },
		func(s benchagg.SizeSummary) float64 { return s.TimeMs })
	labels := benchchart.Labels{Title: title, X: "Input Size (n)", Y: "Time (ms)"}
	pl, err := benchchart.Fit(labels, xys, fit.At, FitLabel)
	g.write(FitChart, title, pl, err, g.cfg.LineSize, fmt.Sprintf(" (slope %.6g ms/elem, intercept %.6g ms)", fit.Slope, fit.Intercept))
}

func (g *generator) distributionChart() {
	recs, err := benchcsv.LoadDistributions(g.cfg.DistPath)
	if errors.Is(err, iofs.ErrNotExist) {
		g.warn("Warning: %v", ErrMissingOptionalInput)
		return
	} else if err != nil {
		g.warn("Warning: %v; skipping distribution plots", err)
		return
	}
	dists, err := benchagg.ByDistribution(recs)
	if err != nil {
		g.warn("Warning: %s: %v; skipping distribution plots", g.cfg.DistPath, err)
		return
	}
	g.r.Distributions = dists

	names := make([]string, len(dists))
	values := make([]float64, len(dists))
	for i, d := range dists {
		names[i], values[i] = d.Distribution, d.TimeMs
	}
	labels := benchchart.Labels{
		Title: "Performance Across Different Input Distributions (n=10,000)",
		X:     "Input Distribution",
		Y:     "Average Time (ms)",
	}
	pl, err := benchchart.Bars(labels, names, values)
	g.write(DistributionChart, labels.Title, pl, err, g.cfg.BarSize, "")
}

// write stores pl as name. If err is non-nil, building the chart
// failed and it is recorded as failed without writing anything.
func (g *generator) write(name, title string, pl *plot.Plot, err error, sz benchchart.Size, note string) {
	if err == nil {
		err = g.writePNG(name, title, pl, sz)
	}
	if err != nil {
		g.r.Failed = append(g.r.Failed, name)
		g.warn("Error: %s: %v", name, err)
		return
	}
	g.r.Files = append(g.r.Files, name)
	fmt.Fprintf(g.cfg.Stdout, "Generated: %s%s\n", name, note)
}

func (g *generator) writePNG(name, title string, pl *plot.Plot, sz benchchart.Size) error {
	w, err := g.out.NewWriter(g.ctx, name, map[string]string{"title": title})
	if err != nil {
		return err
	}
	if err := benchchart.WritePNG(w, pl, sz); err != nil {
		w.CloseWithError(err)
		return err
	}
	return w.Close()
}

// archive stores the aggregated series and fit as a new run.
func (g *generator) archive() (err error) {
	run, err := g.cfg.DB.NewRun(g.ctx, g.cfg.BenchPath)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			run.Abort()
		}
	}()
	if err := run.InsertSizes(g.r.Sizes); err != nil {
		return err
	}
	if err := run.InsertDistributions(g.r.Distributions); err != nil {
		return err
	}
	if g.r.Fit != nil {
		if err := run.SetFit(*g.r.Fit); err != nil {
			return err
		}
	}
	if err := run.Commit(); err != nil {
		return err
	}
	g.r.RunID = run.ID
	fmt.Fprintf(g.cfg.Stdout, "Archived run %d\n", run.ID)
	return nil
}
