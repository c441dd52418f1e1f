// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewsync

import (
	"image/color"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/colorenc"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/selection"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/truncate"
)

// IDColumn is the grid column showing each row's identity. It is
// never a plot axis.
const IDColumn = "id"

// A Session is one rendering of the plot and grid. Everything a
// Session subscribes to is cancelled by Close, so a closed Session
// never sees another event.
type Session struct {
	// Raw is the projection being shown and Display is the same
	// rows with long text truncated.
	Raw, Display *dataset.Frame

	Index     truncate.Index
	Scale     *colorenc.Scale
	ColorCol  string
	Plot      Plot
	Grid      Grid
	View      *DataView
	Pager     *Pager
	SortCol   string
	SortAsc   bool
	byID      map[int]int
	subs      Subscriptions
	highlight int // ID of the highlighted row, or -1
}

// newSession projects the dataset, resolves the color scale, and builds and
// wires a new plot and grid.
func newSession(a *App) (_ *Session, err error) {
	raw := selection.Project(a.data, a.sel, a.keep)
	idx := truncate.Build(raw)
	s := &Session{
		Raw:       raw,
		Display:   idx.Apply(raw),
		Index:     idx,
		Scale:     colorenc.Resolve(raw, a.color),
		ColorCol:  a.color,
		byID:      make(map[int]int, raw.Len()),
		highlight: -1,
		SortAsc:   true,
	}
	for i, r := range raw.Rows() {
		s.byID[r.ID] = i
	}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	s.Plot, err = a.plots(PlotConfig{
		Data:         s.Display,
		ExcludedAxes: append([]string{IDColumn}, a.cfg.ExcludedAxes...),
		Color:        s.rowColor,
	})
	if err != nil {
		return nil, err
	}
	s.Plot.SetBrushMode(BrushMulti1D)
	s.Plot.StyleAxes(a.color)

	s.View = NewDataView()
	s.Pager = NewPager(s.View)
	s.View.SetPaging(a.cfg.PageSize, 0)
	s.Grid, err = a.grids(GridConfig{
		Data:    s.Display,
		View:    s.View,
		Pager:   s.Pager,
		Columns: s.columnDefs(),
		Options: GridOptions{CellNavigation: true},
	})
	if err != nil {
		return nil, err
	}

	s.subs.Add(s.View.RowCountChanged.Subscribe(func(RowCountChange) {
		s.Grid.UpdateRowCount()
		s.Grid.Render()
	}))
	s.subs.Add(s.View.RowsChanged.Subscribe(func(ev RowsChange) {
		s.Grid.InvalidateRows(ev.Rows)
		s.Grid.Render()
	}))
	s.subs.Add(s.Grid.OnSort(s.sort))
	s.subs.Add(s.Grid.OnMouseEnter(s.mouseEnter))
	s.subs.Add(s.Grid.OnMouseLeave(s.mouseLeave))
	s.subs.Add(s.Plot.OnBrush(s.brush))

	s.setItems(s.Display.Rows())
	return s, nil
}

// Close cancels every subscription of s and destroys its plot and
// grid.
func (s *Session) Close() {
	s.subs.Cancel()
	if s.Plot != nil {
		s.Plot.Destroy()
		s.Plot = nil
	}
	if s.Grid != nil {
		s.Grid.Destroy()
		s.Grid = nil
	}
}

func (s *Session) columnDefs() []ColumnDef {
	cols := s.Display.Columns()
	defs := make([]ColumnDef, 0, len(cols)+1)
	for _, c := range cols {
		defs = append(defs, ColumnDef{ID: c, Name: c, Field: c, Sortable: true})
	}
	if !s.Display.Has(IDColumn) {
		defs = append(defs, ColumnDef{ID: IDColumn, Name: IDColumn, Field: IDColumn, Sortable: true})
	}
	return defs
}

// RawValue returns the untruncated value of column col for the row
// with r's identity.
func (s *Session) RawValue(r dataset.Row, col string) dataset.Value {
	if col == IDColumn && !s.Raw.Has(IDColumn) {
		return dataset.Num(float64(r.ID))
	}
	i, ok := s.byID[r.ID]
	if !ok {
		return dataset.Value{}
	}
	return s.Raw.Get(i, col)
}

func (s *Session) rowColor(r dataset.Row) color.Color {
	return s.Scale.Map(s.RawValue(r, s.ColorCol))
}

// Brushed returns the display rows selected by the plot's brushes,
// or every display row if nothing is brushed.
func (s *Session) Brushed() []dataset.Row {
	return SelectBrushed(s.Display, s.Plot.Extents())
}

// Highlighted returns the identity of the highlighted row.
func (s *Session) Highlighted() (id int, ok bool) {
	return s.highlight, s.highlight >= 0
}

func (s *Session) setItems(rows []dataset.Row) {
	s.View.BeginUpdate()
	s.View.SetItems(rows)
	s.View.EndUpdate()
}

func (s *Session) brush(ev BrushEvent) {
	s.setItems(SelectBrushed(s.Display, ev.Extents))
}

func (s *Session) mouseEnter(row int) {
	item, ok := s.View.Item(row)
	if !ok {
		return
	}
	for _, r := range s.Brushed() {
		if r.ID == item.ID {
			s.highlight = r.ID
			s.Plot.Highlight([]dataset.Row{r})
			return
		}
	}
	s.mouseLeave()
}

func (s *Session) mouseLeave() {
	s.highlight = -1
	s.Plot.Unhighlight()
}

// sort orders the grid by the raw values of ev.Column. Equal values
// keep their order and missing values sort last in either direction.
func (s *Session) sort(ev SortEvent) {
	s.SortCol, s.SortAsc = ev.Column, ev.Asc
	s.View.Sort(func(a, b dataset.Row) int {
		va, vb := s.RawValue(a, ev.Column), s.RawValue(b, ev.Column)
		ma, mb := va.Kind() == dataset.Missing, vb.Kind() == dataset.Missing
		switch {
		case ma && mb:
			return 0
		case ma:
			return 1
		case mb:
			return -1
		}
		c := dataset.Compare(va, vb)
		if !ev.Asc {
			c = -c
		}
		return c
	})
}
