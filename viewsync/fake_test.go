// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewsync

import (
	"errors"
	"strings"
	"testing"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
)

type fakePlot struct {
	cfg         PlotConfig
	mode        BrushMode
	extents     []Extent
	brush       Event[BrushEvent]
	highlighted []dataset.Row
	bold        string
	destroyed   bool
}

func (p *fakePlot) SetBrushMode(m BrushMode) {
	p.mode = m
}

func (p *fakePlot) Extents() []Extent {
	return p.extents
}

func (p *fakePlot) OnBrush(fn func(BrushEvent)) (cancel func()) {
	return p.brush.Subscribe(fn)
}

func (p *fakePlot) Highlight(rows []dataset.Row) {
	p.highlighted = rows
}

func (p *fakePlot) Unhighlight() {
	p.highlighted = nil
}

func (p *fakePlot) StyleAxes(bold string) {
	p.bold = bold
}

func (p *fakePlot) Destroy() {
	p.destroyed = true
}

// Brush replaces the plot's brushes, the way a user drag would.
func (p *fakePlot) Brush(extents ...Extent) {
	p.extents = extents
	p.brush.Notify(BrushEvent{extents})
}

type fakeGrid struct {
	cfg         GridConfig
	renders     int
	rowCounts   int
	invalidated []int
	sort        Event[SortEvent]
	enter       Event[int]
	leave       Event[struct{}]
	destroyed   bool
}

func (g *fakeGrid) UpdateRowCount() {
	g.rowCounts++
}

func (g *fakeGrid) InvalidateRows(rows []int) {
	g.invalidated = append(g.invalidated, rows...)
}

func (g *fakeGrid) Render() {
	g.renders++
}

func (g *fakeGrid) Destroy() {
	g.destroyed = true
}

func (g *fakeGrid) OnSort(fn func(SortEvent)) (cancel func()) {
	return g.sort.Subscribe(fn)
}

func (g *fakeGrid) OnMouseEnter(fn func(int)) (cancel func()) {
	return g.enter.Subscribe(fn)
}

func (g *fakeGrid) OnMouseLeave(fn func()) (cancel func()) {
	return g.leave.Subscribe(func(struct{}) { fn() })
}

func (g *fakeGrid) subscribers() int {
	return g.sort.Len() + g.enter.Len() + g.leave.Len()
}

// engines records every plot and grid it builds.
type engines struct {
	plots    []*fakePlot
	grids    []*fakeGrid
	failPlot bool
}

var errEngine = errors.New("engine failed")

func (e *engines) plot(cfg PlotConfig) (Plot, error) {
	if e.failPlot {
		return nil, errEngine
	}
	p := &fakePlot{cfg: cfg}
	e.plots = append(e.plots, p)
	return p, nil
}

func (e *engines) grid(cfg GridConfig) (Grid, error) {
	g := &fakeGrid{cfg: cfg}
	e.grids = append(e.grids, g)
	return g, nil
}

func (e *engines) lastPlot() *fakePlot { return e.plots[len(e.plots)-1] }
func (e *engines) lastGrid() *fakeGrid { return e.grids[len(e.grids)-1] }

func load(t *testing.T, csv string) *dataset.Dataset {
	t.Helper()
	d, err := dataset.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func newApp(t *testing.T, csv string, cfg Config) (*App, *engines) {
	t.Helper()
	e := new(engines)
	a, err := New(load(t, csv), cfg, e.plot, e.grid)
	if err != nil {
		t.Fatal(err)
	}
	return a, e
}

// ids returns the identities of the grid's items, across all pages.
func ids(v *DataView) []int {
	var out []int
	for _, r := range v.Items() {
		out = append(out, r.ID)
	}
	return out
}
