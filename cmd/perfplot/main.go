// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Perfplot renders charts from Kadane benchmark results.
//
// Usage:
//
//	perfplot [flags]
//
// Perfplot reads ../data/benchmark_results.csv, averages the runs of
// each input size and writes four charts to performance-plots/:
//
//	time_vs_size.png            mean time per input size
//	comparisons_vs_size.png     mean comparisons per input size
//	array_accesses_vs_size.png  mean array reads per input size
//	linear_verification.png     mean times with a least-squares line
//
// If ../data/distribution_results.csv exists, perfplot also writes
// distribution_comparison.png, a bar chart of the mean time for each
// input distribution. If it does not exist, perfplot prints a warning
// and carries on. If the benchmark results file does not exist,
// perfplot exits with status 1 without writing any charts.
//
// The -bench, -dist and -o flags override the input and output
// locations. The -gcs flag writes the charts to a Google Cloud
// Storage bucket instead, given as bucket or bucket/prefix.
//
// The -db flag archives the aggregated series and the fitted line in
// a SQL database, named by a data source name for -driver (sqlite3 or
// mysql). MySQL names may use a Cloud SQL instance, as in
// "user:@cloudsql(project:region:instance)/perfplot". With -db,
// -list n prints the n most recent archived runs and -show id prints
// the series of one run; neither renders charts.
//
// The -summary flag prints the aggregated series as text tables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	_ "github.com/go-sql-driver/mysql"
	"github.com/kadanebench/perfplot/benchagg"
	"github.com/kadanebench/perfplot/perfplot"
	"github.com/kadanebench/perfplot/storage/db"
	_ "github.com/kadanebench/perfplot/storage/db/sqlite3"
	"github.com/kadanebench/perfplot/storage/fs"
	"github.com/kadanebench/perfplot/storage/fs/gcs"
	"golang.org/x/net/context"
)

var exit = os.Exit // replaced during testing

// errUsage reports a command line that could not be parsed.
var errUsage = errors.New("usage error")

func main() {
	log.SetPrefix("perfplot: ")
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
	cfg := perfplot.DefaultConfig()
	flags := flag.NewFlagSet("perfplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: perfplot [flags]\n")
		flags.PrintDefaults()
	}
	flags.StringVar(&cfg.BenchPath, "bench", cfg.BenchPath, "benchmark results `file`")
	flags.StringVar(&cfg.DistPath, "dist", cfg.DistPath, "distribution results `file`, used if present")
	outDir := flags.String("o", cfg.OutName, "output `directory`")
	dpi := flags.Int("dpi", cfg.LineSize.DPI, "chart resolution in dots per inch")
	gcsPath := flags.String("gcs", "", "write charts to Google Cloud Storage `bucket[/prefix]` instead of -o")
	dsn := flags.String("db", "", "archive runs in the database named by `dsn`")
	driver := flags.String("driver", "sqlite3", "SQL `driver` for -db: sqlite3 or mysql")
	list := flags.Int("list", 0, "print the `n` most recent archived runs and exit")
	show := flags.Int64("show", 0, "print the archived series of run `id` and exit")
	summary := flags.Bool("summary", false, "print the aggregated series as tables")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return fmt.Errorf("%w: unexpected arguments %q", errUsage, flags.Args())
	}
	if *dpi <= 0 {
		return fmt.Errorf("%w: -dpi must be positive", errUsage)
	}
	cfg.LineSize.DPI, cfg.BarSize.DPI = *dpi, *dpi
	cfg.Stdout = w
	cfg.Warn = func(format string, args ...interface{}) {
		fmt.Fprintf(wErr, format+"\n", args...)
	}

	ctx := context.Background()

	if *dsn != "" {
		d, err := db.OpenSQL(*driver, *dsn)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer d.Close()
		cfg.DB = d
	}
	if *list > 0 || *show > 0 {
		if cfg.DB == nil {
			return fmt.Errorf("%w: -list and -show require -db", errUsage)
		}
		if *list > 0 {
			return listRuns(ctx, w, cfg.DB, *list)
		}
		return showRun(ctx, w, cfg.DB, *show)
	}

	var out fs.FS
	if *gcsPath != "" {
		bucket, prefix, _ := strings.Cut(*gcsPath, "/")
		gfs, err := gcs.NewFS(ctx, bucket, prefix)
		if err != nil {
			return fmt.Errorf("connecting to Cloud Storage: %w", err)
		}
		out, cfg.OutName = gfs, "gs://"+strings.TrimSuffix(*gcsPath, "/")
	} else {
		dfs, err := fs.NewDirFS(*outDir)
		if err != nil {
			return err
		}
		out, cfg.OutName = dfs, strings.TrimSuffix(*outDir, "/")
	}

	r, err := perfplot.Generate(ctx, cfg, out)
	if r != nil && *summary {
		fmt.Fprintln(w)
		if err := printSummary(w, r.Sizes, r.Distributions, r.Fit); err != nil {
			return err
		}
	}
	return err
}

func printSummary(w io.Writer, sizes []benchagg.SizeSummary, dists []benchagg.DistributionSummary, fit *benchagg.LinearFit) error {
	if err := benchagg.FprintSizes(w, sizes); err != nil {
		return err
	}
	if len(dists) > 0 {
		fmt.Fprintln(w)
		if err := benchagg.FprintDistributions(w, dists); err != nil {
			return err
		}
	}
	if fit != nil {
		fmt.Fprintf(w, "\nfit: %v\n", fit)
	}
	return nil
}

func listRuns(ctx context.Context, w io.Writer, d *db.DB, n int) error {
	runs, err := d.ListRuns(ctx, n)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fit := "no fit"
		if r.Fit != nil {
			fit = r.Fit.String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.CreatedAt.Format("2006-01-02T15:04:05Z"), r.Source, fit)
	}
	return nil
}

func showRun(ctx context.Context, w io.Writer, d *db.DB, id int64) error {
	sizes, err := d.SizeSeries(ctx, id)
	if err != nil {
		return err
	}
	if len(sizes) == 0 {
		return fmt.Errorf("run %d not found", id)
	}
	dists, err := d.DistributionSeries(ctx, id)
	if err != nil {
		return err
	}
	return printSummary(w, sizes, dists, nil)
}
