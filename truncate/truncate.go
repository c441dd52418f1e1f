// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package truncate shortens long text values for display.
//
// An Index maps every long Text value of a column to a short display
// string. Within a column, distinct values always get distinct display
// strings and a value always gets the same display string.
package truncate

import (
	"strconv"
	"unicode/utf8"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
)

// Width is the longest text, in runes, displayed unshortened.
const Width = 20

const ellipsis = "..."

// Index maps column name to raw text to display text. Only text
// longer than Width appears in an Index.
type Index map[string]map[string]string

// Build returns the truncation Index of every column of f.
//
// A long value is displayed as its first Width runes followed by an
// ellipsis. When a later, different value shortens to a display
// string already in use in the same column, the second value is
// displayed as "<prefix>... 2...", the third as "<prefix>... 3...",
// and so on, numbered in the order values are first seen.
func Build(f *dataset.Frame) Index {
	idx := make(Index, len(f.Columns()))
	for _, col := range f.Columns() {
		m := make(map[string]string)
		used := make(map[string]bool)
		for _, v := range f.Values(col) {
			s, ok := v.Text()
			if !ok || utf8.RuneCountInString(s) <= Width {
				continue
			}
			if _, ok := m[s]; ok {
				continue
			}
			m[s] = unused(used, prefix(s, Width)+ellipsis)
		}
		idx[col] = m
	}
	return idx
}

// unused returns the first of base, base+" 2"+ellipsis,
// base+" 3"+ellipsis, ... that is not in used and marks it used.
func unused(used map[string]bool, base string) string {
	s := base
	for n := 2; used[s]; n++ {
		s = base + " " + strconv.Itoa(n) + ellipsis
	}
	used[s] = true
	return s
}

func prefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// Display returns the display form of v in column col. Values that
// are not in the index are returned unchanged.
func (idx Index) Display(col string, v dataset.Value) dataset.Value {
	s, ok := v.Text()
	if !ok {
		return v
	}
	if d, ok := idx[col][s]; ok {
		return dataset.Str(d)
	}
	return v
}

// Apply returns a copy of f with every value replaced by its display
// form. Row identities and order are unchanged.
func (idx Index) Apply(f *dataset.Frame) *dataset.Frame {
	cols := f.Columns()
	rows := make([]dataset.Row, f.Len())
	for i, r := range f.Rows() {
		vals := make([]dataset.Value, len(r.Values))
		for j, v := range r.Values {
			vals[j] = idx.Display(cols[j], v)
		}
		rows[i] = dataset.Row{ID: r.ID, Values: vals}
	}
	return dataset.NewFrame(cols, rows)
}
