// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewsync

import (
	"image/color"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
)

// BrushMode selects how the user restricts plot axes.
type BrushMode string

// BrushMulti1D lets the user brush a range on any number of axes.
const BrushMulti1D BrushMode = "1D-axes-multi"

// Extent is an active brush on one axis. Lo and Hi are inclusive and
// compare with dataset.Compare.
type Extent struct {
	Axis   string
	Lo, Hi dataset.Value
}

// BrushEvent reports the brushes active after the user changed one.
type BrushEvent struct {
	Extents []Extent
}

// PlotConfig is everything a Plot is constructed from.
type PlotConfig struct {
	// Data holds the display rows. Every column is an axis
	// unless it is listed in ExcludedAxes.
	Data         *dataset.Frame
	ExcludedAxes []string

	// Color returns the color of a row of Data.
	Color func(dataset.Row) color.Color
}

// Plot is a rendered parallel-coordinates plot.
type Plot interface {
	SetBrushMode(BrushMode)

	// Extents returns the active brushes, or nil if there are
	// none.
	Extents() []Extent

	// OnBrush subscribes fn to brush changes.
	OnBrush(fn func(BrushEvent)) (cancel func())

	// Highlight draws rows on top of the plot. Unhighlight
	// clears it.
	Highlight(rows []dataset.Row)
	Unhighlight()

	// StyleAxes shows the label of axis bold and every other
	// label normal.
	StyleAxes(bold string)

	// Destroy removes the plot. No events fire after Destroy.
	Destroy()
}

// PlotFactory constructs and renders a Plot.
type PlotFactory func(PlotConfig) (Plot, error)

// ColumnDef describes one grid column.
type ColumnDef struct {
	ID, Name, Field string
	Sortable        bool
}

// GridOptions are the grid's behavior switches.
type GridOptions struct {
	CellNavigation  bool
	ColumnReorder   bool
	MultiColumnSort bool
}

// GridConfig is everything a Grid is constructed from.
type GridConfig struct {
	// Data holds the columns of the View's rows.
	Data    *dataset.Frame
	View    *DataView
	Pager   *Pager
	Columns []ColumnDef
	Options GridOptions
}

// SortEvent reports a click on a sortable column header.
type SortEvent struct {
	Column string
	Asc    bool
}

// Grid is a rendered data grid over a DataView.
type Grid interface {
	// UpdateRowCount, InvalidateRows and Render redraw the grid
	// after its DataView changes.
	UpdateRowCount()
	InvalidateRows(rows []int)
	Render()

	OnSort(fn func(SortEvent)) (cancel func())

	// OnMouseEnter reports the DataView index of the row under
	// the pointer.
	OnMouseEnter(fn func(row int)) (cancel func())
	OnMouseLeave(fn func()) (cancel func())

	// Destroy removes the grid. No events fire after Destroy.
	Destroy()
}

// GridFactory constructs a Grid.
type GridFactory func(GridConfig) (Grid, error)
