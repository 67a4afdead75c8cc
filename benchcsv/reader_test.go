// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadBenchmarks(t *testing.T) {
	const input = `InputSize,Run,Comparisons,ArrayAccesses,TimeMs,MemoryBytes
100,1,199,100,0.004100,0
100,2,199,100,0.003900,16

 500 ,1,999,500,0.021000,0
`
	got, err := ReadBenchmarks(strings.NewReader(input), "test")
	if err != nil {
		t.Fatal(err)
	}
	want := []BenchmarkRecord{
		{InputSize: 100, Run: 1, TimeMs: 0.0041, Comparisons: 199, ArrayAccesses: 100},
		{InputSize: 100, Run: 2, TimeMs: 0.0039, Comparisons: 199, ArrayAccesses: 100, MemoryBytes: 16},
		{InputSize: 500, Run: 1, TimeMs: 0.021, Comparisons: 999, ArrayAccesses: 500},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadBenchmarks mismatch (-want +got):\n%s", diff)
	}
}

func TestReadBenchmarksColumnOrder(t *testing.T) {
	// Only the required columns, in a different order.
	const input = "TimeMs,ArrayAccesses,InputSize,Comparisons\n1.5,10,10,19\n"
	got, err := ReadBenchmarks(strings.NewReader(input), "test")
	if err != nil {
		t.Fatal(err)
	}
	want := []BenchmarkRecord{{InputSize: 10, TimeMs: 1.5, Comparisons: 19, ArrayAccesses: 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadBenchmarks mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDistributions(t *testing.T) {
	const input = `Distribution,Run,Comparisons,ArrayAccesses,TimeMs
Random,1,19999,10000,0.120000
AllNegative,1,1,1,0.001000
`
	got, err := ReadDistributions(strings.NewReader(input), "test")
	if err != nil {
		t.Fatal(err)
	}
	want := []DistributionRecord{
		{Distribution: "Random", Run: 1, TimeMs: 0.12, Comparisons: 19999, ArrayAccesses: 10000},
		{Distribution: "AllNegative", Run: 1, TimeMs: 0.001, Comparisons: 1, ArrayAccesses: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadDistributions mismatch (-want +got):\n%s", diff)
	}

	// The minimal form has only two columns.
	got, err = ReadDistributions(strings.NewReader("Distribution,TimeMs\nSorted,2\n"), "test")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]DistributionRecord{{Distribution: "Sorted", TimeMs: 2}}, got); diff != "" {
		t.Errorf("ReadDistributions mismatch (-want +got):\n%s", diff)
	}
}

func TestSyntaxErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		line  int
		msg   string
	}{
		{"empty", "", 1, "missing header line"},
		{"missingColumn", "InputSize,TimeMs,Comparisons\n1,1,1\n", 1, `missing column "ArrayAccesses"`},
		{"duplicateColumn", "InputSize,InputSize\n", 1, `duplicate column "InputSize"`},
		{"badInt", "InputSize,TimeMs,Comparisons,ArrayAccesses\n10,1,1,1\nten,1,1,1\n", 3, `column "InputSize": bad integer "ten"`},
		{"badFloat", "InputSize,TimeMs,Comparisons,ArrayAccesses\n10,fast,1,1\n", 2, `column "TimeMs": bad number "fast"`},
		{"fieldCount", "InputSize,TimeMs,Comparisons,ArrayAccesses\n10,1,1\n", 2, "expected 4 fields, got 3"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadBenchmarks(strings.NewReader(test.input), "test.csv")
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("want *SyntaxError, got %v", err)
			}
			if file, line := se.Pos(); file != "test.csv" || line != test.line {
				t.Errorf("want position test.csv:%d, got %s:%d", test.line, file, line)
			}
			if se.Msg != test.msg {
				t.Errorf("want message %q, got %q", test.msg, se.Msg)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadBenchmarks(filepath.Join(dir, "benchmark_results.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadBenchmarks: want fs.ErrNotExist, got %v", err)
	}
	_, err = LoadDistributions(filepath.Join(dir, "distribution_results.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadDistributions: want fs.ErrNotExist, got %v", err)
	}
}

func TestLoadBenchmarks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_results.csv")
	if err := os.WriteFile(path, []byte("InputSize,TimeMs,Comparisons,ArrayAccesses\n10,1,19,10\n"), 0666); err != nil {
		t.Fatal(err)
	}
	got, err := LoadBenchmarks(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].InputSize != 10 {
		t.Errorf("LoadBenchmarks = %+v", got)
	}
}
