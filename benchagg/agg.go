// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg reduces benchmark records to one summary row per
// input size or input distribution and fits complexity models to the
// result.
package benchagg

import (
	"errors"
	"io"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/kadanebench/perfplot/benchcsv"
)

// ErrNoData is returned when there are no records to aggregate.
var ErrNoData = errors.New("no records to aggregate")

// A SizeSummary is the mean of every measurement taken at one input
// size.
type SizeSummary struct {
	InputSize     int
	Runs          int
	TimeMs        float64
	Comparisons   float64
	ArrayAccesses float64
}

// A DistributionSummary is the mean running time on one input
// distribution.
type DistributionSummary struct {
	Distribution string
	Runs         int
	TimeMs       float64
}

const runsCol = "runs"

// BySize groups recs by input size and returns one summary per
// distinct size, in increasing order of size.
func BySize(recs []benchcsv.BenchmarkRecord) ([]SizeSummary, error) {
	if len(recs) == 0 {
		return nil, ErrNoData
	}

	// Counters go into the table as float64 so the means are not
	// truncated back to integers.
	n := len(recs)
	sizes := make([]int, n)
	times := make([]float64, n)
	comps := make([]float64, n)
	accs := make([]float64, n)
	for i, rec := range recs {
		sizes[i] = rec.InputSize
		times[i] = rec.TimeMs
		comps[i] = float64(rec.Comparisons)
		accs[i] = float64(rec.ArrayAccesses)
	}
	var tb table.Builder
	tb.Add(benchcsv.ColInputSize, sizes).
		Add(benchcsv.ColTimeMs, times).
		Add(benchcsv.ColComparisons, comps).
		Add(benchcsv.ColArrayAccesses, accs)

	var g table.Grouping = tb.Done()
	g = ggstat.Agg(benchcsv.ColInputSize)(
		ggstat.AggCount(runsCol),
		ggstat.AggMean(benchcsv.ColTimeMs, benchcsv.ColComparisons, benchcsv.ColArrayAccesses),
	).F(g)
	g = table.SortBy(g, benchcsv.ColInputSize)
	t := table.Flatten(g)

	outSizes := t.MustColumn(benchcsv.ColInputSize).([]int)
	runs := t.MustColumn(runsCol).([]int)
	meanTimes := t.MustColumn("mean " + benchcsv.ColTimeMs).([]float64)
	meanComps := t.MustColumn("mean " + benchcsv.ColComparisons).([]float64)
	meanAccs := t.MustColumn("mean " + benchcsv.ColArrayAccesses).([]float64)

	out := make([]SizeSummary, len(outSizes))
	for i := range out {
		out[i] = SizeSummary{
			InputSize:     outSizes[i],
			Runs:          runs[i],
			TimeMs:        meanTimes[i],
			Comparisons:   meanComps[i],
			ArrayAccesses: meanAccs[i],
		}
	}
	return out, nil
}

// ByDistribution groups recs by distribution name and returns one
// summary per distinct name, ordered by name.
func ByDistribution(recs []benchcsv.DistributionRecord) ([]DistributionSummary, error) {
	if len(recs) == 0 {
		return nil, ErrNoData
	}

	names := make([]string, len(recs))
	times := make([]float64, len(recs))
	for i, rec := range recs {
		names[i] = rec.Distribution
		times[i] = rec.TimeMs
	}
	var tb table.Builder
	tb.Add(benchcsv.ColDistribution, names).Add(benchcsv.ColTimeMs, times)

	var g table.Grouping = tb.Done()
	g = ggstat.Agg(benchcsv.ColDistribution)(
		ggstat.AggCount(runsCol),
		ggstat.AggMean(benchcsv.ColTimeMs),
	).F(g)
	g = table.SortBy(g, benchcsv.ColDistribution)
	t := table.Flatten(g)

	outNames := t.MustColumn(benchcsv.ColDistribution).([]string)
	runs := t.MustColumn(runsCol).([]int)
	meanTimes := t.MustColumn("mean " + benchcsv.ColTimeMs).([]float64)

	out := make([]DistributionSummary, len(outNames))
	for i := range out {
		out[i] = DistributionSummary{outNames[i], runs[i], meanTimes[i]}
	}
	return out, nil
}

// FprintSizes prints sums to w as a text table.
func FprintSizes(w io.Writer, sums []SizeSummary) error {
	if len(sums) == 0 {
		return nil
	}
	return table.Fprint(w, table.TableFromStructs(sums), "%d", "%d", "%.6f", "%.1f", "%.1f")
}

// FprintDistributions prints sums to w as a text table.
func FprintDistributions(w io.Writer, sums []DistributionSummary) error {
	if len(sums) == 0 {
		return nil
	}
	return table.Fprint(w, table.TableFromStructs(sums), "%s", "%d", "%.6f")
}
