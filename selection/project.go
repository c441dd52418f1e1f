// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import "github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"

// DefaultBaselineColumn names the column whose zero rows are the
// baseline run.
const DefaultBaselineColumn = "Permutation #"

// A Keep reports whether row id of d belongs in projections. It sees
// the full row, not just the selected columns.
type Keep func(d *dataset.Dataset, id int) bool

// Baseline returns a Keep that drops rows whose column col is the
// number 0. Rows where col is missing or not a number are kept.
func Baseline(col string) Keep {
	return func(d *dataset.Dataset, id int) bool {
		x, ok := d.Value(id, col).Float()
		return !ok || x != 0
	}
}

// Project returns the rows of d accepted by keep, restricted to the
// columns selected in s. Columns stay in dataset order and rows stay
// in source order with their identities. A nil keep accepts every
// row.
func Project(d *dataset.Dataset, s *Selection, keep Keep) *dataset.Frame {
	all := d.Frame()
	var idx []int
	var cols []string
	for j, c := range all.Columns() {
		if s.Has(c) {
			idx = append(idx, j)
			cols = append(cols, c)
		}
	}

	var rows []dataset.Row
	for _, r := range all.Rows() {
		if keep != nil && !keep(d, r.ID) {
			continue
		}
		vals := make([]dataset.Value, len(idx))
		for k, j := range idx {
			vals[k] = r.Values[j]
		}
		rows = append(rows, dataset.Row{ID: r.ID, Values: vals})
	}
	return dataset.NewFrame(cols, rows)
}
