// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewsync keeps a parallel-coordinates plot, a data grid,
// a column checklist, and a color-column selector consistent.
//
// An App holds the explorer's state: the dataset, the selected
// columns, and the color column. UI events are delivered to the App
// as method calls. Whenever the visible columns or the color column
// change, the App replaces its Session wholesale: the old plot and
// grid are torn down, with every event subscription cancelled, before
// a new plot and grid are built from a fresh projection.
//
// Within a Session, brushing the plot filters the grid, hovering a
// grid row highlights the matching plot line, and clicking a grid
// header sorts the grid by that column's untruncated values.
//
// An App is not safe for concurrent use. Each method runs to
// completion before the next event is delivered.
package viewsync

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/selection"
)

var (
	ErrEmptyDataset  = errors.New("dataset has no columns")
	ErrMissingColumn = errors.New("expected column not in dataset")
	ErrUnknownColumn = errors.New("unknown column")
)

// DefaultColorColumn is the color column of DefaultConfig.
const DefaultColorColumn = "Permutation #"

// Config configures an App. The zero Config selects every column,
// colors by the first column, hides no axes, and keeps every row.
type Config struct {
	// DefaultColumns are the columns selected initially and on
	// Reset. nil selects every column.
	DefaultColumns []string

	// DefaultColor is the color column used initially and on
	// Reset. "" uses the first column.
	DefaultColor string

	// ExcludedAxes are columns never shown as plot axes.
	ExcludedAxes []string

	// BaselineColumn, if set, drops rows whose value in this
	// column is 0 from every projection. Keep, if set, is used
	// instead.
	BaselineColumn string
	Keep           selection.Keep

	// PageSize is the number of grid rows per page. 0 shows
	// every row.
	PageSize int

	// Logger receives a line per state transition. nil
	// discards.
	Logger *log.Logger
}

// DefaultConfig returns the configuration for permutation datasets:
// colored by DefaultColorColumn, with the baseline run removed and
// the name column hidden from the plot.
func DefaultConfig() Config {
	return Config{
		DefaultColor:   DefaultColorColumn,
		ExcludedAxes:   []string{"name"},
		BaselineColumn: selection.DefaultBaselineColumn,
	}
}

// State is the App's interaction state.
type State int

const (
	Idle State = iota
	DropdownOpen
	Rendering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DropdownOpen:
		return "dropdown open"
	case Rendering:
		return "rendering"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// App is the explorer's state and its current Session.
type App struct {
	data   *dataset.Dataset
	cfg    Config
	plots  PlotFactory
	grids  GridFactory
	sel    *selection.Selection
	keep   selection.Keep
	color  string
	state  State
	sess   *Session
	logger *log.Logger
}

// New checks that d satisfies cfg, then renders the initial plot and
// grid with plots and grids. It fails if d has no columns or rows, or
// if the color or baseline column named by cfg is missing.
func New(d *dataset.Dataset, cfg Config, plots PlotFactory, grids GridFactory) (*App, error) {
	if d == nil || len(d.Columns()) == 0 || d.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if cfg.DefaultColumns == nil {
		cfg.DefaultColumns = d.Columns()
	}
	if cfg.DefaultColor == "" {
		cfg.DefaultColor = d.Columns()[0]
	}
	if !d.Has(cfg.DefaultColor) {
		return nil, fmt.Errorf("color column %q: %w", cfg.DefaultColor, ErrMissingColumn)
	}
	keep := cfg.Keep
	if keep == nil && cfg.BaselineColumn != "" {
		if !d.Has(cfg.BaselineColumn) {
			return nil, fmt.Errorf("baseline column %q: %w", cfg.BaselineColumn, ErrMissingColumn)
		}
		keep = selection.Baseline(cfg.BaselineColumn)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	a := &App{
		data:   d,
		cfg:    cfg,
		plots:  plots,
		grids:  grids,
		sel:    selection.New(d.Columns(), cfg.DefaultColumns),
		keep:   keep,
		color:  cfg.DefaultColor,
		logger: logger,
	}
	if err := a.render(Idle); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) State() State {
	return a.state
}

// Session returns the current rendering. It is nil only if the last
// render failed.
func (a *App) Session() *Session {
	return a.sess
}

func (a *App) Dataset() *dataset.Dataset {
	return a.data
}

// ColorColumn returns the active color column.
func (a *App) ColorColumn() string {
	return a.color
}

// Summary returns the column checklist's label.
func (a *App) Summary() string {
	return a.sel.Summary()
}

// Checklist returns the column checklist entries.
func (a *App) Checklist() []selection.Option {
	return a.sel.Checklist()
}

// ColorOptions returns one entry per column for the color selector,
// with the active color column checked.
func (a *App) ColorOptions() []selection.Option {
	cols := a.data.Columns()
	opts := make([]selection.Option, len(cols))
	for i, c := range cols {
		opts[i] = selection.Option{Name: c, Checked: c == a.color}
	}
	return opts
}

// ToggleChecklist handles a click on the checklist's label. It opens
// a closed checklist; it closes an open one and redraws.
func (a *App) ToggleChecklist() error {
	switch a.state {
	case Idle:
		a.setState(DropdownOpen)
		return nil
	case DropdownOpen:
		return a.render(Idle)
	}
	return nil
}

// ClickOutside handles a click anywhere outside the checklist. An
// open checklist is closed and the views are redrawn.
func (a *App) ClickOutside() error {
	if a.state != DropdownOpen {
		return nil
	}
	return a.render(Idle)
}

// ToggleColumn flips one checklist entry. The views are not redrawn
// until the checklist closes.
func (a *App) ToggleColumn(col string) error {
	if !a.data.Has(col) {
		return fmt.Errorf("%q: %w", col, ErrUnknownColumn)
	}
	a.sel.Toggle(col)
	a.logger.Printf("toggled %q: %s", col, a.sel.Summary())
	return nil
}

// SetColorColumn makes col the color column and redraws.
func (a *App) SetColorColumn(col string) error {
	if !a.data.Has(col) {
		return fmt.Errorf("%q: %w", col, ErrUnknownColumn)
	}
	a.color = col
	return a.render(a.resting())
}

// Reset restores the default columns and color column and redraws.
func (a *App) Reset() error {
	a.sel.Reset(a.cfg.DefaultColumns)
	a.color = a.cfg.DefaultColor
	return a.render(a.resting())
}

// Redraw rebuilds the views from the current state.
func (a *App) Redraw() error {
	return a.render(a.resting())
}

// Close tears down the current Session.
func (a *App) Close() {
	if a.sess != nil {
		a.sess.Close()
		a.sess = nil
	}
}

// resting returns the state to return to after a redraw that does
// not close the checklist.
func (a *App) resting() State {
	if a.state == DropdownOpen {
		return DropdownOpen
	}
	return Idle
}

func (a *App) setState(s State) {
	if a.state != s {
		a.logger.Printf("%s -> %s", a.state, s)
	}
	a.state = s
}

// render replaces the current Session and then enters state next.
// The old Session is closed before the new one is built.
func (a *App) render(next State) error {
	a.setState(Rendering)
	a.Close()
	sess, err := newSession(a)
	if err != nil {
		a.setState(Idle)
		return fmt.Errorf("rendering: %w", err)
	}
	a.sess = sess
	a.logger.Printf("rendered %d rows, %d columns, color %q (%s)", sess.Raw.Len(), len(sess.Raw.Columns()), a.color, sess.Scale.Kind)
	a.setState(next)
	return nil
}
