// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textgrid is a data grid engine that renders the current
// page of a viewsync.DataView as an aligned text table.
//
// User interaction is simulated by ClickHeader, MouseEnter, and
// MouseLeave.
package textgrid

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/viewsync"
	"github.com/aclements/go-gg/table"
)

var (
	ErrNoColumn    = errors.New("no such column")
	ErrNotSortable = errors.New("column is not sortable")
	ErrDestroyed   = errors.New("grid destroyed")
)

// Grid is a text rendering of a DataView.
type Grid struct {
	cfg       viewsync.GridConfig
	sortCol   string
	sortAsc   bool
	sort      viewsync.Event[viewsync.SortEvent]
	enter     viewsync.Event[int]
	leave     viewsync.Event[struct{}]
	text      []byte
	renders   int
	stale     bool
	destroyed bool
}

var _ viewsync.Grid = (*Grid)(nil)

// New returns a GridFactory that builds Grids.
func New() viewsync.GridFactory {
	return func(cfg viewsync.GridConfig) (viewsync.Grid, error) {
		g, err := NewGrid(cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// NewGrid returns a Grid over cfg.View, already rendered.
func NewGrid(cfg viewsync.GridConfig) (*Grid, error) {
	if cfg.View == nil {
		return nil, errors.New("grid has no data view")
	}
	g := &Grid{cfg: cfg}
	g.Render()
	return g, nil
}

func (g *Grid) UpdateRowCount() {
	g.stale = true
}

func (g *Grid) InvalidateRows(rows []int) {
	if len(rows) > 0 {
		g.stale = true
	}
}

// Render redraws the current page.
func (g *Grid) Render() {
	if g.destroyed {
		return
	}
	var buf bytes.Buffer
	table.Fprint(&buf, g.page())
	g.text = buf.Bytes()
	g.renders++
	g.stale = false
}

// Renders returns the number of times the grid has been drawn.
func (g *Grid) Renders() int {
	return g.renders
}

// page builds a table of the visible rows, one column per ColumnDef.
func (g *Grid) page() *table.Table {
	v := g.cfg.View
	b := new(table.Builder)
	for _, def := range g.cfg.Columns {
		col := make([]dataset.Value, v.Len())
		for i := range col {
			r, _ := v.Item(i)
			col[i] = g.cell(r, def.Field)
		}
		b.Add(g.header(def), col)
	}
	return b.Done()
}

func (g *Grid) cell(r dataset.Row, field string) dataset.Value {
	if g.cfg.Data != nil && g.cfg.Data.Has(field) {
		return g.cfg.Data.Lookup(r, field)
	}
	if field == viewsync.IDColumn {
		return dataset.Num(float64(r.ID))
	}
	return dataset.Value{}
}

func (g *Grid) header(def viewsync.ColumnDef) string {
	if def.ID != g.sortCol {
		return def.Name
	}
	if g.sortAsc {
		return def.Name + " ▲"
	}
	return def.Name + " ▼"
}

// String returns the grid as last rendered, first rendering it again
// if the view changed since.
func (g *Grid) String() string {
	if g.stale {
		g.Render()
	}
	return string(g.text)
}

// Fprint writes the grid followed by the pager's status line.
func (g *Grid) Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, g.String()); err != nil {
		return err
	}
	if g.cfg.Pager == nil {
		return nil
	}
	_, err := fmt.Fprintln(w, g.cfg.Pager.Status())
	return err
}

// Sort returns the column and direction of the last header click.
func (g *Grid) Sort() (col string, asc bool) {
	return g.sortCol, g.sortAsc
}

func (g *Grid) OnSort(fn func(viewsync.SortEvent)) (cancel func()) {
	return g.sort.Subscribe(fn)
}

func (g *Grid) OnMouseEnter(fn func(row int)) (cancel func()) {
	return g.enter.Subscribe(fn)
}

func (g *Grid) OnMouseLeave(fn func()) (cancel func()) {
	return g.leave.Subscribe(func(struct{}) { fn() })
}

// ClickHeader sorts by column id. Clicking the sorted column again
// reverses the direction; clicking another column sorts it
// ascending.
func (g *Grid) ClickHeader(id string) error {
	if g.destroyed {
		return ErrDestroyed
	}
	def, ok := g.column(id)
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrNoColumn)
	}
	if !def.Sortable {
		return fmt.Errorf("%q: %w", id, ErrNotSortable)
	}
	if g.sortCol == id {
		g.sortAsc = !g.sortAsc
	} else {
		g.sortCol, g.sortAsc = id, true
	}
	g.sort.Notify(viewsync.SortEvent{Column: def.Field, Asc: g.sortAsc})
	g.Render()
	return nil
}

// MouseEnter reports the pointer entering visible row i.
func (g *Grid) MouseEnter(i int) {
	g.enter.Notify(i)
}

// MouseLeave reports the pointer leaving the grid.
func (g *Grid) MouseLeave() {
	g.leave.Notify(struct{}{})
}

func (g *Grid) column(id string) (viewsync.ColumnDef, bool) {
	for _, def := range g.cfg.Columns {
		if def.ID == id {
			return def, true
		}
	}
	return viewsync.ColumnDef{}, false
}

func (g *Grid) Destroy() {
	g.destroyed = true
	g.sort = viewsync.Event[viewsync.SortEvent]{}
	g.enter = viewsync.Event[int]{}
	g.leave = viewsync.Event[struct{}]{}
}
