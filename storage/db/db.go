// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db archives benchmark summaries in a SQL database so runs
// can be compared over time.
package db

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/kadanebench/perfplot/benchagg"
	"golang.org/x/net/context"
)

// DB is a high-level interface to a database of benchmark runs. It's
// safe for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun          *sql.Stmt
	insertSize         *sql.Stmt
	insertDistribution *sql.Stmt
	updateFit          *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Source VARCHAR(1024),
	CreatedAt BIGINT,
	FitSlope DOUBLE,
	FitIntercept DOUBLE,
	FitR2 DOUBLE
);
CREATE TABLE IF NOT EXISTS SizeSummaries (
	RunID BIGINT UNSIGNED,
	InputSize BIGINT,
	Runs INT,
	TimeMs DOUBLE,
	Comparisons DOUBLE,
	ArrayAccesses DOUBLE,
	PRIMARY KEY (RunID, InputSize),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS DistributionSummaries (
	RunID BIGINT UNSIGNED,
	Distribution VARCHAR(255),
	Runs INT,
	TimeMs DOUBLE,
	PRIMARY KEY (RunID, Distribution),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(Source, CreatedAt) VALUES (?, ?)")
	if err != nil {
		return err
	}
	db.insertSize, err = db.sql.Prepare("INSERT INTO SizeSummaries(RunID, InputSize, Runs, TimeMs, Comparisons, ArrayAccesses) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertDistribution, err = db.sql.Prepare("INSERT INTO DistributionSummaries(RunID, Distribution, Runs, TimeMs) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.updateFit, err = db.sql.Prepare("UPDATE Runs SET FitSlope = ?, FitIntercept = ?, FitR2 = ? WHERE RunID = ?")
	if err != nil {
		return err
	}
	return nil
}

// now is a hook for testing
var now = time.Now

// A Run is one archived execution of the plotting pipeline. Nothing
// written to a Run is visible until Commit is called.
type Run struct {
	// ID is the primary key of the run.
	ID int64

	ctx context.Context
	tx  *sql.Tx
	db  *DB
}

// NewRun starts a new run whose data came from source.
func (db *DB) NewRun(ctx context.Context, source string) (*Run, error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	res, err := tx.StmtContext(ctx, db.insertRun).ExecContext(ctx, source, now().Unix())
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	return &Run{ID: id, ctx: ctx, tx: tx, db: db}, nil
}

// InsertSizes stores the per-size summaries of r.
func (r *Run) InsertSizes(sums []benchagg.SizeSummary) error {
	stmt := r.tx.StmtContext(r.ctx, r.db.insertSize)
	for _, s := range sums {
		if _, err := stmt.ExecContext(r.ctx, r.ID, s.InputSize, s.Runs, s.TimeMs, s.Comparisons, s.ArrayAccesses); err != nil {
			return err
		}
	}
	return nil
}

// InsertDistributions stores the per-distribution summaries of r.
func (r *Run) InsertDistributions(sums []benchagg.DistributionSummary) error {
	stmt := r.tx.StmtContext(r.ctx, r.db.insertDistribution)
	for _, s := range sums {
		if _, err := stmt.ExecContext(r.ctx, r.ID, s.Distribution, s.Runs, s.TimeMs); err != nil {
			return err
		}
	}
	return nil
}

// SetFit records the linear fit of time against input size for r.
func (r *Run) SetFit(f benchagg.LinearFit) error {
	_, err := r.tx.StmtContext(r.ctx, r.db.updateFit).ExecContext(r.ctx, f.Slope, f.Intercept, f.R2, r.ID)
	return err
}

// Commit makes r visible.
func (r *Run) Commit() error {
	return r.tx.Commit()
}

// Abort discards everything written to r.
func (r *Run) Abort() error {
	return r.tx.Rollback()
}

// RunInfo describes an archived run.
type RunInfo struct {
	ID        int64
	Source    string
	CreatedAt time.Time
	// Fit is nil if no fit was recorded.
	Fit *benchagg.LinearFit
}

// ListRuns returns up to limit runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]RunInfo, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT RunID, Source, CreatedAt, FitSlope, FitIntercept, FitR2 FROM Runs ORDER BY RunID DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		var created int64
		var slope, intercept, r2 sql.NullFloat64
		if err := rows.Scan(&info.ID, &info.Source, &created, &slope, &intercept, &r2); err != nil {
			return nil, err
		}
		info.CreatedAt = time.Unix(created, 0).UTC()
		if slope.Valid && intercept.Valid {
			info.Fit = &benchagg.LinearFit{Slope: slope.Float64, Intercept: intercept.Float64, R2: r2.Float64}
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

// SizeSeries returns the per-size summaries of run id, in increasing
// order of size.
func (db *DB) SizeSeries(ctx context.Context, id int64) ([]benchagg.SizeSummary, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT InputSize, Runs, TimeMs, Comparisons, ArrayAccesses FROM SizeSummaries WHERE RunID = ? ORDER BY InputSize", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sums []benchagg.SizeSummary
	for rows.Next() {
		var s benchagg.SizeSummary
		if err := rows.Scan(&s.InputSize, &s.Runs, &s.TimeMs, &s.Comparisons, &s.ArrayAccesses); err != nil {
			return nil, err
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

// DistributionSeries returns the per-distribution summaries of run
// id, ordered by distribution name.
func (db *DB) DistributionSeries(ctx context.Context, id int64) ([]benchagg.DistributionSummary, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT Distribution, Runs, TimeMs FROM DistributionSummaries WHERE RunID = ? ORDER BY Distribution", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sums []benchagg.DistributionSummary
	for rows.Next() {
		var s benchagg.DistributionSummary
		if err := rows.Scan(&s.Distribution, &s.Runs, &s.TimeMs); err != nil {
			return nil, err
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

// CountRuns returns the number of runs in the database.
func (db *DB) CountRuns() (int, error) {
	var count int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM Runs").Scan(&count)
	return count, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertRun, db.insertSize, db.insertDistribution, db.updateFit} {
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}
