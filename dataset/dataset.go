// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset holds the table being explored.
//
// A Dataset is read once from delimited text. Every field is typed at
// load time as a Number, Text, or Missing Value, and every row is
// given a stable integer identity equal to its position in the input.
// After Load returns, a Dataset is never modified; views of it are
// derived as Frames.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
)

// ErrEmpty is returned when the input has no columns or no rows.
var ErrEmpty = errors.New("dataset has no columns or rows")

// Dataset is an immutable table of typed values.
//
// Columns are stored in a go-gg table, one []Value column per input
// column, in header order.
type Dataset struct {
	tab  *table.Table
	rows []Row
}

// New builds a Dataset from a header and rows of values. Short rows
// are padded with Missing values and long rows are truncated.
func New(header []string, records [][]Value) (*Dataset, error) {
	if len(header) == 0 || len(records) == 0 {
		return nil, ErrEmpty
	}
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
	}

	cols := make([][]Value, len(header))
	for j := range cols {
		cols[j] = make([]Value, len(records))
	}
	rows := make([]Row, len(records))
	for i, rec := range records {
		vals := make([]Value, len(header))
		copy(vals, rec)
		for j, v := range vals {
			cols[j][i] = v
		}
		rows[i] = Row{ID: i, Values: vals}
	}

	b := new(table.Builder)
	for j, name := range header {
		b.Add(name, cols[j])
	}
	return &Dataset{b.Done(), rows}, nil
}

// Load reads comma-separated text with a header line from r. A
// leading UTF-8 byte order mark is ignored. Every field is typed with
// Parse.
func Load(r io.Reader) (*Dataset, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(bomString)); err == nil && bytes.Equal(prefix, []byte(bomString)) {
		br.Discard(len(bomString))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, err
	}

	var records [][]Value
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		rec := make([]Value, len(fields))
		for i, f := range fields {
			rec[i] = Parse(f)
		}
		records = append(records, rec)
	}
	return New(header, records)
}

// Columns returns the column names in input order.
func (d *Dataset) Columns() []string {
	return d.tab.Columns()
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Has reports whether d has a column named col.
func (d *Dataset) Has(col string) bool {
	return d.tab.Column(col) != nil
}

// Value returns the value of column col in row id.
func (d *Dataset) Value(id int, col string) Value {
	c, ok := d.tab.Column(col).([]Value)
	if !ok {
		return Value{}
	}
	return c[id]
}

// Frame returns a Frame over every row and column of d.
func (d *Dataset) Frame() *Frame {
	return NewFrame(d.Columns(), d.rows)
}

// Table returns the go-gg table backing d. Each column is a []Value.
func (d *Dataset) Table() *table.Table {
	return d.tab
}

// Fprint prints d as an aligned text table.
func Fprint(w io.Writer, d *Dataset) {
	table.Fprint(w, d.tab)
}
