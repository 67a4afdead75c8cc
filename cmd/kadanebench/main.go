// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Kadanebench measures the maximum-subarray algorithms in package
// kadane and records the results for perfplot.
//
// Usage:
//
//	kadanebench [-quick | -full | -compare] [-data dir] [-seed n]
//
// With no mode flag, kadanebench runs the algorithm on a small fixed
// array and prints the result and its operation counts.
//
// The -quick flag runs the algorithm once on random arrays of a few
// small sizes and prints the counts for each.
//
// The -full flag runs the algorithm 10 times on random arrays of each
// size from 100 to 100,000 and writes benchmark_results.csv to the
// -data directory. It then runs it 5 times on arrays of 10,000
// random, all-positive and all-negative values and writes
// distribution_results.csv.
//
// The -compare flag compares the running time and array reads of
// kadane.MaxSubarray and kadane.MaxSubarrayCached.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/kadanebench/perfplot/benchcsv"
	"github.com/kadanebench/perfplot/kadane"
	"github.com/kadanebench/perfplot/storage/fs"
	"golang.org/x/net/context"
)

var exit = os.Exit // replaced during testing

var errUsage = errors.New("usage error")

// Benchmark parameters. Tests shrink these.
var (
	quickSizes   = []int{10, 50, 100, 500, 1000}
	fullSizes    = []int{100, 500, 1000, 5000, 10000, 50000, 100000}
	runsPerSize  = 10
	compareSizes = []int{1000, 5000, 10000, 50000, 100000}
	distSize     = 10000
	distRuns     = 5
)

// A distribution is a named range of array values.
type distribution struct {
	name     string
	min, max int
}

var distributions = []distribution{
	{"Random", -1000, 1000},
	{"AllPositive", 1, 1000},
	{"AllNegative", -1000, -1},
}

func main() {
	log.SetPrefix("kadanebench: ")
	log.SetFlags(0)

	err := run(os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		exit(0)
	case errors.Is(err, errUsage):
		exit(2)
	default:
		log.Print(err)
		exit(1)
	}
}

func run(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("kadanebench", flag.ContinueOnError)
	flags.SetOutput(wErr)
	quick := flags.Bool("quick", false, "run a quick test on small arrays")
	full := flags.Bool("full", false, "run the full benchmark suite and write result files")
	compare := flags.Bool("compare", false, "compare the two-read and one-read algorithms")
	dataDir := flags.String("data", "data", "`directory` for result files")
	seed := flags.Int64("seed", 0, "random `seed`; 0 means seed from the clock")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", errUsage, flags.Args())
	}
	modes := 0
	for _, m := range []bool{*quick, *full, *compare} {
		if m {
			modes++
		}
	}
	if modes > 1 {
		return fmt.Errorf("%w: -quick, -full and -compare are mutually exclusive", errUsage)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	fmt.Fprintf(w, "=== Kadane's Algorithm Benchmark ===\n\n")
	switch {
	case *quick:
		return quickTest(w, rng)
	case *full:
		return fullBenchmark(context.Background(), w, rng, *dataDir)
	case *compare:
		return compareVariants(w, rng)
	}
	return demo(w)
}

// randomArray returns n values drawn uniformly from [min, max].
func randomArray(rng *rand.Rand, n, min, max int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rng.Intn(max-min+1) + min
	}
	return a
}

func demo(w io.Writer) error {
	a := []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}
	res, err := kadane.MaxSubarray(a)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Test array: %v\n\n", a)
	fmt.Fprintf(w, "Result: %v\n", res)
	fmt.Fprintf(w, "Subarray: %v\n\n", a[res.Start:res.End+1])
	fmt.Fprintf(w, "Metrics: %v\n", &res.Metrics)
	return nil
}

func quickTest(w io.Writer, rng *rand.Rand) error {
	fmt.Fprintf(w, "Running quick test on small arrays...\n\n")
	for _, n := range quickSizes {
		res, err := kadane.MaxSubarray(randomArray(rng, n, -100, 100))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "n=%5d | %v\n", n, &res.Metrics)
	}
	return nil
}

func fullBenchmark(ctx context.Context, w io.Writer, rng *rand.Rand, dataDir string) error {
	dfs, err := fs.NewDirFS(dataDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Running full benchmark suite...\n\n")

	err = writeResults(ctx, dfs, "benchmark_results.csv", func(cw *benchcsv.Writer) error {
		for _, n := range fullSizes {
			fmt.Fprintf(w, "Testing n=%d...\n", n)
			for i := 0; i < runsPerSize; i++ {
				res, err := kadane.MaxSubarray(randomArray(rng, n, -1000, 1000))
				if err != nil {
					return err
				}
				m := res.Metrics
				err = cw.Write(&benchcsv.BenchmarkRecord{
					InputSize:     n,
					Run:           i + 1,
					TimeMs:        m.Millis(),
					Comparisons:   m.Comparisons,
					ArrayAccesses: m.ArrayAccesses,
					MemoryBytes:   m.MemoryBytes,
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nResults saved to %s/benchmark_results.csv\n", dataDir)

	fmt.Fprintf(w, "\nTesting different input distributions...\n\n")
	err = writeResults(ctx, dfs, "distribution_results.csv", func(cw *benchcsv.Writer) error {
		for _, d := range distributions {
			fmt.Fprintf(w, "Testing %s...\n", d.name)
			for i := 0; i < distRuns; i++ {
				res, err := kadane.MaxSubarray(randomArray(rng, distSize, d.min, d.max))
				if err != nil {
					return err
				}
				m := res.Metrics
				err = cw.Write(&benchcsv.DistributionRecord{
					Distribution:  d.name,
					Run:           i + 1,
					TimeMs:        m.Millis(),
					Comparisons:   m.Comparisons,
					ArrayAccesses: m.ArrayAccesses,
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nDistribution results saved to %s/distribution_results.csv\n", dataDir)
	return nil
}

// writeResults creates name in dfs and fills it using write. The file
// only appears if write succeeds.
func writeResults(ctx context.Context, dfs fs.FS, name string, write func(*benchcsv.Writer) error) error {
	fw, err := dfs.NewWriter(ctx, name, nil)
	if err != nil {
		return err
	}
	if err := write(benchcsv.NewWriter(fw)); err != nil {
		fw.CloseWithError(err)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return fw.Close()
}

func compareVariants(w io.Writer, rng *rand.Rand) error {
	rule := strings.Repeat("-", 80)
	fmt.Fprintf(w, "Performance comparison:\n%s\n", rule)
	fmt.Fprintf(w, "%-10s | %-15s | %-15s | %s\n", "Size", "Two reads (ms)", "One read (ms)", "Improvement")
	fmt.Fprintln(w, rule)
	for _, n := range compareSizes {
		a := randomArray(rng, n, -1000, 1000)
		orig, err := kadane.MaxSubarray(a)
		if err != nil {
			return err
		}
		opt, err := kadane.MaxSubarrayCached(a)
		if err != nil {
			return err
		}
		if orig.MaxSum != opt.MaxSum {
			return fmt.Errorf("n=%d: results differ: %d != %d", n, orig.MaxSum, opt.MaxSum)
		}
		tOrig, tOpt := orig.Metrics.Millis(), opt.Metrics.Millis()
		improvement := 0.0
		if tOrig > 0 {
			improvement = (tOrig - tOpt) / tOrig * 100
		}
		fmt.Fprintf(w, "%-10d | %-15.4f | %-15.4f | %+.2f%%\n", n, tOrig, tOpt, improvement)
	}
	fmt.Fprintln(w, rule)

	a := randomArray(rng, distSize, -1000, 1000)
	orig, err := kadane.MaxSubarray(a)
	if err != nil {
		return err
	}
	opt, err := kadane.MaxSubarrayCached(a)
	if err != nil {
		return err
	}
	ro, rc := orig.Metrics.ArrayAccesses, opt.Metrics.ArrayAccesses
	fmt.Fprintf(w, "\nArray reads for n=%d:\n", len(a))
	fmt.Fprintf(w, "Two reads: %d (%.2f per element)\n", ro, float64(ro)/float64(len(a)))
	fmt.Fprintf(w, "One read:  %d (%.2f per element)\n", rc, float64(rc)/float64(len(a)))
	fmt.Fprintf(w, "Reduction: %d reads (%.2f%%)\n", ro-rc, float64(ro-rc)/float64(ro)*100)
	return nil
}
