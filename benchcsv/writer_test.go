// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	const want = `InputSize,Run,Comparisons,ArrayAccesses,TimeMs,MemoryBytes
100,1,199,100,0.004100,0
100,2,199,100,0.003900,16
`
	out := new(strings.Builder)
	w := NewWriter(out)
	for _, rec := range []*BenchmarkRecord{
		{InputSize: 100, Run: 1, TimeMs: 0.0041, Comparisons: 199, ArrayAccesses: 100},
		{InputSize: 100, Run: 2, TimeMs: 0.0039, Comparisons: 199, ArrayAccesses: 100, MemoryBytes: 16},
	} {
		if err := w.Write(rec); err != nil {
			t.Fatal(err)
		}
	}
	if out.String() != want {
		t.Fatalf("want:\n%sgot:\n%s", want, out.String())
	}

	// What we write, we can read back.
	recs, err := ReadBenchmarks(strings.NewReader(out.String()), "test")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[1].MemoryBytes != 16 {
		t.Errorf("read back %+v", recs)
	}
}

func TestWriterDistribution(t *testing.T) {
	const want = `Distribution,Run,Comparisons,ArrayAccesses,TimeMs
Random,1,19999,10000,0.120000
`
	out := new(strings.Builder)
	w := NewWriter(out)
	if err := w.Write(&DistributionRecord{Distribution: "Random", Run: 1, TimeMs: 0.12, Comparisons: 19999, ArrayAccesses: 10000}); err != nil {
		t.Fatal(err)
	}
	if out.String() != want {
		t.Fatalf("want:\n%sgot:\n%s", want, out.String())
	}

	if err := w.Write(&BenchmarkRecord{InputSize: 1}); err == nil {
		t.Error("mixing record types: want error, got nil")
	}
}
