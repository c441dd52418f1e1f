// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/stats"
)

// Row is one record of a Frame. Values is parallel to the Frame's
// columns. ID is the row's identity in the source Dataset.
type Row struct {
	ID     int
	Values []Value
}

// A Frame is an ordered set of columns over a sequence of rows. It is
// the shape shared by projections, truncated displays, and the full
// dataset. Frames are not modified after construction.
type Frame struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// NewFrame returns a Frame over rows. Each row's Values must be
// parallel to columns.
func NewFrame(columns []string, rows []Row) *Frame {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col] = i
	}
	return &Frame{columns, index, rows}
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return f.columns
}

// Has reports whether f has a column named col.
func (f *Frame) Has(col string) bool {
	_, ok := f.index[col]
	return ok
}

func (f *Frame) Len() int {
	return len(f.rows)
}

func (f *Frame) Row(i int) Row {
	return f.rows[i]
}

// Rows returns the rows of f. The caller must not modify the result.
func (f *Frame) Rows() []Row {
	return f.rows
}

// Get returns the value of column col in row i, or Missing if f has
// no such column.
func (f *Frame) Get(i int, col string) Value {
	return f.Lookup(f.rows[i], col)
}

// Lookup returns the value of column col in r, which must be a row
// of f (or have the same shape).
func (f *Frame) Lookup(r Row, col string) Value {
	j, ok := f.index[col]
	if !ok || j >= len(r.Values) {
		return Value{}
	}
	return r.Values[j]
}

// Values returns column col as a slice, or nil if there is no such
// column.
func (f *Frame) Values(col string) []Value {
	j, ok := f.index[col]
	if !ok {
		return nil
	}
	out := make([]Value, len(f.rows))
	for i, r := range f.rows {
		if j < len(r.Values) {
			out[i] = r.Values[j]
		}
	}
	return out
}

// Column describes the domain of one column.
type Column struct {
	Name string

	// Kind is the kind of the first non-missing value, or Missing
	// if every value is missing.
	Kind Kind

	// Mixed is set if the column holds both Numbers and Text.
	Mixed bool

	// Min and Max bound the Numbers in the column. NaN is ignored.
	Min, Max float64

	// Levels is the sorted set of distinct Text values.
	Levels []string
}

// Column summarizes the values of column col. It returns false if f
// has no such column.
func (f *Frame) Column(col string) (Column, bool) {
	if !f.Has(col) {
		return Column{}, false
	}
	c := Column{Name: col}
	var nums []float64
	var texts []string
	for _, v := range f.Values(col) {
		if c.Kind == Missing {
			c.Kind = v.Kind()
		}
		switch v.Kind() {
		case Number:
			if !math.IsNaN(v.num) {
				nums = append(nums, v.num)
			}
		case Text:
			texts = append(texts, v.str)
		}
	}
	c.Mixed = len(nums) > 0 && len(texts) > 0
	if len(nums) > 0 {
		c.Min, c.Max = stats.Bounds(nums)
	}
	if len(texts) > 0 {
		levels := slice.Nub(texts).([]string)
		slice.Sort(levels)
		c.Levels = levels
	}
	return c, true
}
