// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/kadanebench/perfplot/benchagg"
	. "github.com/kadanebench/perfplot/storage/db"
	"github.com/kadanebench/perfplot/storage/db/dbtest"
)

var (
	sizes = []benchagg.SizeSummary{
		{InputSize: 100, Runs: 10, TimeMs: 0.01, Comparisons: 199, ArrayAccesses: 100},
		{InputSize: 1000, Runs: 10, TimeMs: 0.1, Comparisons: 1999, ArrayAccesses: 1000},
	}
	dists = []benchagg.DistributionSummary{
		{Distribution: "AllNegative", Runs: 5, TimeMs: 0.2},
		{Distribution: "Random", Runs: 5, TimeMs: 0.3},
	}
)

func TestRunRoundTrip(t *testing.T) {
	ctx := context.Background()

	db, cleanup := dbtest.NewDB(t)
	defer cleanup()

	defer SetNow(time.Time{})
	SetNow(time.Unix(86400, 0))

	run, err := db.NewRun(ctx, "../data/benchmark_results.csv")
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if err := run.InsertSizes(sizes); err != nil {
		t.Fatalf("InsertSizes: %v", err)
	}
	if err := run.InsertDistributions(dists); err != nil {
		t.Fatalf("InsertDistributions: %v", err)
	}
	fit := benchagg.LinearFit{Slope: 1e-4, Intercept: 0, R2: 1}
	if err := run.SetFit(fit); err != nil {
		t.Fatalf("SetFit: %v", err)
	}
	if err := run.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	gotSizes, err := db.SizeSeries(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sizes, gotSizes); diff != "" {
		t.Errorf("SizeSeries mismatch (-want +got):\n%s", diff)
	}
	gotDists, err := db.DistributionSeries(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(dists, gotDists); diff != "" {
		t.Errorf("DistributionSeries mismatch (-want +got):\n%s", diff)
	}

	runs, err := db.ListRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []RunInfo{{ID: run.ID, Source: "../data/benchmark_results.csv", CreatedAt: time.Unix(86400, 0).UTC(), Fit: &fit}}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("ListRuns mismatch (-want +got):\n%s", diff)
	}
}

func TestAbort(t *testing.T) {
	ctx := context.Background()

	db, cleanup := dbtest.NewDB(t)
	defer cleanup()

	run, err := db.NewRun(ctx, "aborted")
	if err != nil {
		t.Fatal(err)
	}
	if err := run.InsertSizes(sizes); err != nil {
		t.Fatal(err)
	}
	if err := run.Abort(); err != nil {
		t.Fatal(err)
	}
	if n, err := db.CountRuns(); err != nil || n != 0 {
		t.Errorf("CountRuns after Abort = %d, %v; want 0", n, err)
	}
	if got, err := db.SizeSeries(ctx, run.ID); err != nil || len(got) != 0 {
		t.Errorf("SizeSeries after Abort = %v, %v; want none", got, err)
	}
}

func TestListRunsOrder(t *testing.T) {
	ctx := context.Background()

	db, cleanup := dbtest.NewDB(t)
	defer cleanup()

	var ids []int64
	for _, src := range []string{"first", "second", "third"} {
		run, err := db.NewRun(ctx, src)
		if err != nil {
			t.Fatal(err)
		}
		if err := run.Commit(); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, run.ID)
	}
	runs, err := db.ListRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Errorf("ListRuns(2) = %+v, want runs %d and %d", runs, ids[2], ids[1])
	}
	if runs[0].Fit != nil {
		t.Errorf("run without fit has Fit %+v", runs[0].Fit)
	}
	if n, err := db.CountRuns(); err != nil || n != 3 {
		t.Errorf("CountRuns = %d, %v; want 3", n, err)
	}
}
