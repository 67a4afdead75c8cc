// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Reader reads rows from a benchmark results CSV file. The first
// line of the file names the columns; columns are looked up by name,
// so their order does not matter and unknown columns are ignored.
//
// Its API is modeled on bufio.Scanner. A Reader reuses the Row it
// returns; a caller should copy anything it needs to retain.
type Reader struct {
	cr       *csv.Reader
	fileName string

	header []string
	cols   map[string]int

	row Row
	err error
}

// A SyntaxError represents a syntax error on a particular line of a
// benchmark results CSV file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader for the CSV data in r. fileName is
// used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	reader := &Reader{cr: cr, fileName: fileName}
	reader.row.r = reader
	return reader
}

func (r *Reader) newSyntaxError(line int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, line, fmt.Sprintf(format, args...)}
}

// wrapErr converts errors from encoding/csv into *SyntaxErrors.
func (r *Reader) wrapErr(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SyntaxError{r.fileName, pe.Line, pe.Err.Error()}
	}
	return err
}

// Header reads the header line if it has not been read yet and
// returns the column names.
func (r *Reader) Header() ([]string, error) {
	if r.header != nil || r.err != nil {
		return r.header, r.err
	}
	rec, err := r.cr.Read()
	if err == io.EOF {
		r.err = r.newSyntaxError(1, "missing header line")
		return nil, r.err
	}
	if err != nil {
		r.err = r.wrapErr(err)
		return nil, r.err
	}
	r.header = make([]string, len(rec))
	r.cols = make(map[string]int, len(rec))
	for i, name := range rec {
		name = strings.TrimSpace(name)
		r.header[i] = name
		if _, ok := r.cols[name]; ok {
			r.err = r.newSyntaxError(1, "duplicate column %q", name)
			return nil, r.err
		}
		r.cols[name] = i
	}
	return r.header, nil
}

// Require checks that the header names every column in cols.
func (r *Reader) Require(cols ...string) error {
	if _, err := r.Header(); err != nil {
		return err
	}
	for _, col := range cols {
		if _, ok := r.cols[col]; !ok {
			r.err = r.newSyntaxError(1, "missing column %q", col)
			return r.err
		}
	}
	return nil
}

// Scan advances the reader to the next row and reports whether a row
// was read. The caller should use the Row method to get the row. If
// Scan reaches EOF or an error occurs, it returns false, in which
// case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if _, err := r.Header(); err != nil {
		return false
	}
	for {
		rec, err := r.cr.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			r.err = r.wrapErr(err)
			return false
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			// Blank line with surrounding whitespace.
			continue
		}
		line, _ := r.cr.FieldPos(0)
		if len(rec) != len(r.header) {
			r.err = r.newSyntaxError(line, "expected %d fields, got %d", len(r.header), len(rec))
			return false
		}
		r.row.fields = rec
		r.row.line = line
		return true
	}
}

// Row returns the row most recently read by Scan.
func (r *Reader) Row() *Row {
	return &r.row
}

// Err returns the first error encountered by the Reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// A Row is one line of a benchmark results CSV file.
type Row struct {
	r      *Reader
	fields []string
	line   int
}

// Line returns the 1-based line number of row in its file.
func (row *Row) Line() int {
	return row.line
}

// Has reports whether the file has a column named col.
func (row *Row) Has(col string) bool {
	_, ok := row.r.cols[col]
	return ok
}

// String returns the value of column col, with surrounding
// whitespace removed.
func (row *Row) String(col string) (string, error) {
	i, ok := row.r.cols[col]
	if !ok {
		return "", row.r.newSyntaxError(row.line, "missing column %q", col)
	}
	return strings.TrimSpace(row.fields[i]), nil
}

// Int returns the value of column col parsed as a base 10 integer.
func (row *Row) Int(col string) (int64, error) {
	s, err := row.String(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, row.r.newSyntaxError(row.line, "column %q: bad integer %q", col, s)
	}
	return v, nil
}

// Float returns the value of column col parsed as a float64.
func (row *Row) Float(col string) (float64, error) {
	s, err := row.String(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, row.r.newSyntaxError(row.line, "column %q: bad number %q", col, s)
	}
	return v, nil
}
