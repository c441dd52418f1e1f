// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection tracks which columns are shown and projects the
// dataset onto them.
package selection

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Selection is the set of visible columns of a dataset.
type Selection struct {
	all []string
	on  map[string]bool
}

// New returns a Selection over columns with the columns named in
// defaults selected. Defaults that are not columns are ignored.
func New(columns, defaults []string) *Selection {
	s := &Selection{all: columns}
	s.Reset(defaults)
	return s
}

// Reset selects exactly the columns in defaults.
func (s *Selection) Reset(defaults []string) {
	s.on = make(map[string]bool)
	for _, col := range defaults {
		s.Set(col, true)
	}
}

// Set selects or deselects col. Unknown columns are ignored.
func (s *Selection) Set(col string, on bool) {
	if !s.known(col) {
		return
	}
	if on {
		s.on[col] = true
	} else {
		delete(s.on, col)
	}
}

// Toggle flips whether col is selected.
func (s *Selection) Toggle(col string) {
	s.Set(col, !s.on[col])
}

func (s *Selection) Has(col string) bool {
	return s.on[col]
}

func (s *Selection) known(col string) bool {
	for _, c := range s.all {
		if c == col {
			return true
		}
	}
	return false
}

// Columns returns the selected columns in dataset order.
func (s *Selection) Columns() []string {
	var cols []string
	for _, c := range s.all {
		if s.on[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// Len returns the number of selected columns.
func (s *Selection) Len() int {
	return len(s.on)
}

// Summary describes the selection for the checklist's label.
func (s *Selection) Summary() string {
	switch n := s.Len(); n {
	case 0:
		return "Nothing is selected"
	case 1:
		return "1 column selected"
	default:
		return strconv.Itoa(n) + " columns selected"
	}
}

// Option is one entry of a checklist or selector.
type Option struct {
	Name    string
	Checked bool
}

// Checklist returns one option per dataset column.
func (s *Selection) Checklist() []Option {
	opts := make([]Option, len(s.all))
	for i, c := range s.all {
		opts[i] = Option{c, s.on[c]}
	}
	return opts
}

// ParseDefaults reads a default column list, one column name per line.
// Blank lines are skipped.
func ParseDefaults(r io.Reader) ([]string, error) {
	var cols []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols = append(cols, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}
