// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads and writes the CSV files produced by a
// maximum-subarray benchmark run.
//
// Two kinds of files exist. A benchmark results file has one row per
// run at a given input size:
//
//	InputSize,Run,Comparisons,ArrayAccesses,TimeMs,MemoryBytes
//	100,1,199,100,0.004100,0
//
// A distribution results file has one row per run for a named input
// distribution:
//
//	Distribution,Run,Comparisons,ArrayAccesses,TimeMs
//	Random,1,19999,10000,0.120000
//
// Columns are matched by name. Only InputSize, TimeMs, Comparisons
// and ArrayAccesses are required in benchmark results files, and
// only Distribution and TimeMs in distribution results files.
package benchcsv

import (
	"io"
	"os"
)

// Column names.
const (
	ColInputSize     = "InputSize"
	ColRun           = "Run"
	ColTimeMs        = "TimeMs"
	ColComparisons   = "Comparisons"
	ColArrayAccesses = "ArrayAccesses"
	ColMemoryBytes   = "MemoryBytes"
	ColDistribution  = "Distribution"
)

// A Record is one row of a results file. It is either a
// *BenchmarkRecord or a *DistributionRecord.
type Record interface {
	isRecord()
}

// A BenchmarkRecord is one measurement of an algorithm at a given
// input size.
type BenchmarkRecord struct {
	InputSize     int
	Run           int
	TimeMs        float64
	Comparisons   int64
	ArrayAccesses int64
	// MemoryBytes is 0 if the file has no MemoryBytes column.
	MemoryBytes int64
}

// A DistributionRecord is one measurement of an algorithm on a named
// input distribution.
type DistributionRecord struct {
	Distribution string
	Run          int
	TimeMs       float64
	// Comparisons and ArrayAccesses are 0 if the file lacks them.
	Comparisons   int64
	ArrayAccesses int64
}

func (*BenchmarkRecord) isRecord()    {}
func (*DistributionRecord) isRecord() {}

// BenchmarkColumns are the columns required in a benchmark results file.
var BenchmarkColumns = []string{ColInputSize, ColTimeMs, ColComparisons, ColArrayAccesses}

// DistributionColumns are the columns required in a distribution results file.
var DistributionColumns = []string{ColDistribution, ColTimeMs}

// ReadBenchmarks reads all rows of a benchmark results file.
func ReadBenchmarks(r io.Reader, fileName string) ([]BenchmarkRecord, error) {
	rd := NewReader(r, fileName)
	if err := rd.Require(BenchmarkColumns...); err != nil {
		return nil, err
	}
	var recs []BenchmarkRecord
	for rd.Scan() {
		row := rd.Row()
		var rec BenchmarkRecord
		size, err := row.Int(ColInputSize)
		if err != nil {
			return nil, err
		}
		rec.InputSize = int(size)
		if rec.TimeMs, err = row.Float(ColTimeMs); err != nil {
			return nil, err
		}
		if rec.Comparisons, err = row.Int(ColComparisons); err != nil {
			return nil, err
		}
		if rec.ArrayAccesses, err = row.Int(ColArrayAccesses); err != nil {
			return nil, err
		}
		if row.Has(ColRun) {
			run, err := row.Int(ColRun)
			if err != nil {
				return nil, err
			}
			rec.Run = int(run)
		}
		if row.Has(ColMemoryBytes) {
			if rec.MemoryBytes, err = row.Int(ColMemoryBytes); err != nil {
				return nil, err
			}
		}
		recs = append(recs, rec)
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// ReadDistributions reads all rows of a distribution results file.
func ReadDistributions(r io.Reader, fileName string) ([]DistributionRecord, error) {
	rd := NewReader(r, fileName)
	if err := rd.Require(DistributionColumns...); err != nil {
		return nil, err
	}
	var recs []DistributionRecord
	for rd.Scan() {
		row := rd.Row()
		var rec DistributionRecord
		var err error
		if rec.Distribution, err = row.String(ColDistribution); err != nil {
			return nil, err
		}
		if rec.TimeMs, err = row.Float(ColTimeMs); err != nil {
			return nil, err
		}
		if row.Has(ColRun) {
			run, err := row.Int(ColRun)
			if err != nil {
				return nil, err
			}
			rec.Run = int(run)
		}
		if row.Has(ColComparisons) {
			if rec.Comparisons, err = row.Int(ColComparisons); err != nil {
				return nil, err
			}
		}
		if row.Has(ColArrayAccesses) {
			if rec.ArrayAccesses, err = row.Int(ColArrayAccesses); err != nil {
				return nil, err
			}
		}
		recs = append(recs, rec)
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// LoadBenchmarks reads the benchmark results file at path. If the
// file does not exist, the returned error satisfies
// errors.Is(err, fs.ErrNotExist).
func LoadBenchmarks(path string) ([]BenchmarkRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBenchmarks(f, path)
}

// LoadDistributions reads the distribution results file at path. If
// the file does not exist, the returned error satisfies
// errors.Is(err, fs.ErrNotExist).
func LoadDistributions(path string) ([]DistributionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDistributions(f, path)
}
