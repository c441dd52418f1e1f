// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewsync

import "github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"

// Contains reports whether v lies within e. Values of a different
// kind than the extent's bounds, including missing values, are never
// contained.
func (e Extent) Contains(v dataset.Value) bool {
	lo, hi := e.Lo, e.Hi
	if dataset.Compare(lo, hi) > 0 {
		lo, hi = hi, lo
	}
	if v.Kind() == dataset.Missing || v.Kind() != lo.Kind() || v.Kind() != hi.Kind() {
		return false
	}
	return dataset.Compare(lo, v) <= 0 && dataset.Compare(v, hi) <= 0
}

// SelectBrushed returns the rows of f that lie within every extent,
// in f's order. Extents on axes f does not have are ignored. With no
// applicable extents, every row is selected.
func SelectBrushed(f *dataset.Frame, extents []Extent) []dataset.Row {
	var active []Extent
	for _, e := range extents {
		if f.Has(e.Axis) {
			active = append(active, e)
		}
	}
	if len(active) == 0 {
		return f.Rows()
	}

	var out []dataset.Row
rows:
	for _, r := range f.Rows() {
		for _, e := range active {
			if !e.Contains(f.Lookup(r, e.Axis)) {
				continue rows
			}
		}
		out = append(out, r)
	}
	return out
}
