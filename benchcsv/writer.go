// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// A Writer writes benchmark results CSV files.
//
// The header line is written before the first record. All records
// written to one Writer must have the same type.
type Writer struct {
	cw    *csv.Writer
	first bool
	kind  string
}

// NewWriter returns a writer that writes results to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w), first: true}
}

var (
	benchmarkHeader    = []string{ColInputSize, ColRun, ColComparisons, ColArrayAccesses, ColTimeMs, ColMemoryBytes}
	distributionHeader = []string{ColDistribution, ColRun, ColComparisons, ColArrayAccesses, ColTimeMs}
)

// Write writes Record rec to w, preceded by the header line if this
// is the first record.
func (w *Writer) Write(rec Record) error {
	var kind string
	var header, fields []string
	switch rec := rec.(type) {
	case *BenchmarkRecord:
		kind, header = "benchmark", benchmarkHeader
		fields = []string{
			strconv.Itoa(rec.InputSize),
			strconv.Itoa(rec.Run),
			strconv.FormatInt(rec.Comparisons, 10),
			strconv.FormatInt(rec.ArrayAccesses, 10),
			formatMs(rec.TimeMs),
			strconv.FormatInt(rec.MemoryBytes, 10),
		}
	case *DistributionRecord:
		kind, header = "distribution", distributionHeader
		fields = []string{
			rec.Distribution,
			strconv.Itoa(rec.Run),
			strconv.FormatInt(rec.Comparisons, 10),
			strconv.FormatInt(rec.ArrayAccesses, 10),
			formatMs(rec.TimeMs),
		}
	default:
		return fmt.Errorf("unknown Record type %T", rec)
	}

	if w.first {
		w.kind = kind
		if err := w.cw.Write(header); err != nil {
			return err
		}
		w.first = false
	} else if w.kind != kind {
		return fmt.Errorf("cannot write %s record to %s results", kind, w.kind)
	}
	if err := w.cw.Write(fields); err != nil {
		return err
	}
	w.cw.Flush()
	return w.cw.Error()
}

func formatMs(ms float64) string {
	return strconv.FormatFloat(ms, 'f', 6, 64)
}
