// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot is a parallel-coordinates plot engine that renders
// to SVG.
//
// Brushing is driven by calls to Brush and ClearBrush, which fire the
// plot's brush event the way a user drag would.
package svgplot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/viewsync"
	"github.com/aclements/go-moremath/scale"
	"github.com/ajstarks/svgo"
)

var (
	ErrNoData    = errors.New("plot has no data")
	ErrNoAxis    = errors.New("no such axis")
	ErrDestroyed = errors.New("plot destroyed")
)

// Options controls the size of the rendered plot. Zero fields take
// their defaults.
type Options struct {
	Width, Height int // default 960x500
	FontSize      int // default 12
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 960
	}
	if o.Height <= 0 {
		o.Height = 500
	}
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	return o
}

// Plot is a parallel-coordinates plot of one Frame.
type Plot struct {
	cfg         viewsync.PlotConfig
	opts        Options
	mode        viewsync.BrushMode
	axes        []string
	extents     map[string]viewsync.Extent
	brush       viewsync.Event[viewsync.BrushEvent]
	highlighted []dataset.Row
	bold        string
	destroyed   bool
}

var _ viewsync.Plot = (*Plot)(nil)

// New returns a PlotFactory that builds Plots with opts.
func New(opts Options) viewsync.PlotFactory {
	return func(cfg viewsync.PlotConfig) (viewsync.Plot, error) {
		p, err := NewPlot(cfg, opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// NewPlot returns a plot of cfg.Data with one axis per column not in
// cfg.ExcludedAxes.
func NewPlot(cfg viewsync.PlotConfig, opts Options) (*Plot, error) {
	if cfg.Data == nil {
		return nil, ErrNoData
	}
	p := &Plot{
		cfg:     cfg,
		opts:    opts.withDefaults(),
		extents: make(map[string]viewsync.Extent),
	}
	for _, col := range cfg.Data.Columns() {
		if !slices.Contains(cfg.ExcludedAxes, col) {
			p.axes = append(p.axes, col)
		}
	}
	return p, nil
}

// Axes returns the plot's axes from left to right.
func (p *Plot) Axes() []string {
	return p.axes
}

func (p *Plot) SetBrushMode(m viewsync.BrushMode) { p.mode = m }

func (p *Plot) BrushMode() viewsync.BrushMode { return p.mode }

// Extents returns the active brushes in axis order.
func (p *Plot) Extents() []viewsync.Extent {
	var out []viewsync.Extent
	for _, a := range p.axes {
		if e, ok := p.extents[a]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (p *Plot) OnBrush(fn func(viewsync.BrushEvent)) (cancel func()) {
	return p.brush.Subscribe(fn)
}

func (p *Plot) Highlight(rows []dataset.Row) {
	p.highlighted = append([]dataset.Row(nil), rows...)
}

func (p *Plot) Unhighlight() {
	p.highlighted = nil
}

// Highlighted returns the rows drawn on top of the plot.
func (p *Plot) Highlighted() []dataset.Row {
	return p.highlighted
}

func (p *Plot) StyleAxes(bold string) {
	p.bold = bold
}

func (p *Plot) Destroy() {
	p.destroyed = true
	p.brush = viewsync.Event[viewsync.BrushEvent]{}
}

// Brush sets the brush on axis to [lo, hi], replacing any brush
// already on it, and fires a brush event. In any mode other than
// viewsync.BrushMulti1D, brushes on other axes are cleared first.
func (p *Plot) Brush(axis string, lo, hi dataset.Value) error {
	if err := p.check(axis); err != nil {
		return err
	}
	if p.mode != viewsync.BrushMulti1D {
		clear(p.extents)
	}
	p.extents[axis] = viewsync.Extent{Axis: axis, Lo: lo, Hi: hi}
	p.brush.Notify(viewsync.BrushEvent{Extents: p.Extents()})
	return nil
}

// ClearBrush removes the brush on axis and fires a brush event.
func (p *Plot) ClearBrush(axis string) error {
	if err := p.check(axis); err != nil {
		return err
	}
	delete(p.extents, axis)
	p.brush.Notify(viewsync.BrushEvent{Extents: p.Extents()})
	return nil
}

func (p *Plot) check(axis string) error {
	if p.destroyed {
		return ErrDestroyed
	}
	if !slices.Contains(p.axes, axis) {
		return fmt.Errorf("%q: %w", axis, ErrNoAxis)
	}
	return nil
}

// Layout constants, in pixels.
const (
	marginTop    = 40
	marginBottom = 30
	marginSide   = 60
	brushWidth   = 12
)

// WriteSVG draws the plot to w.
//
// Rows outside the brushes are drawn in gray beneath the brushed rows,
// which take their color from the plot's color function. Highlighted
// rows are drawn last with a heavier stroke.
func (p *Plot) WriteSVG(w io.Writer) error {
	if p.destroyed {
		return ErrDestroyed
	}
	o := p.opts
	f := p.cfg.Data

	xs := make([]float64, len(p.axes))
	axes := make([]*axis, len(p.axes))
	for i, name := range p.axes {
		if len(p.axes) == 1 {
			xs[i] = float64(o.Width) / 2
		} else {
			xs[i] = marginSide + float64(i)*float64(o.Width-2*marginSide)/float64(len(p.axes)-1)
		}
		axes[i] = newAxis(f, name)
	}
	top, bottom := float64(marginTop), float64(o.Height-marginBottom)
	ypos := func(t float64) float64 { return bottom - t*(bottom-top) }

	path := func(r dataset.Row) string {
		var buf []byte
		inLine := false
		for i, a := range axes {
			t, ok := a.pos(f.Lookup(r, a.name))
			if !ok {
				inLine = false
				continue
			}
			if !inLine {
				buf = append(buf, 'M')
				inLine = true
			} else {
				buf = append(buf, ' ', 'L')
			}
			buf = strconv.AppendFloat(buf, xs[i], 'g', 6, 64)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, ypos(t), 'g', 6, 64)
		}
		return string(buf)
	}

	brushed := make(map[int]bool)
	for _, r := range viewsync.SelectBrushed(f, p.Extents()) {
		brushed[r.ID] = true
	}

	canvas := svg.New(w)
	canvas.Start(o.Width, o.Height, fmt.Sprintf(`font-size="%dpx" font-family="Roboto,Helvetica,Arial,sans-serif"`, o.FontSize))

	canvas.Group(`id="background"`)
	for _, r := range f.Rows() {
		if d := path(r); !brushed[r.ID] && d != "" {
			canvas.Path(d, "fill:none;stroke:#ccc;stroke-opacity:0.4")
		}
	}
	canvas.Gend()

	canvas.Group(`id="foreground"`)
	for _, r := range f.Rows() {
		if d := path(r); brushed[r.ID] && d != "" {
			canvas.Path(d, "fill:none;stroke-opacity:0.4;"+cssPaint("stroke", p.color(r)))
		}
	}
	canvas.Gend()

	for i, a := range axes {
		x := int(math.Floor(xs[i] + 0.5))
		canvas.Line(x, int(top), x, int(bottom), "stroke:#444;stroke-width:1")
		style := "text-anchor:middle"
		if a.name == p.bold {
			style += ";font-weight:bold"
		}
		canvas.Text(x, marginTop/2, a.name, style)
		for _, tick := range a.ticks() {
			canvas.Text(x+4, int(ypos(tick.pos)), tick.label, "font-size:80%;fill:#666")
		}
		if e, ok := p.extents[a.name]; ok {
			lo, okLo := a.pos(e.Lo)
			hi, okHi := a.pos(e.Hi)
			if okLo && okHi {
				y0, y1 := ypos(max(lo, hi)), ypos(min(lo, hi))
				canvas.Rect(x-brushWidth/2, int(y0), brushWidth, max(1, int(y1-y0)), "fill:#000;fill-opacity:0.15;stroke:#fff")
			}
		}
	}

	canvas.Group(`id="highlight"`)
	for _, r := range p.highlighted {
		if d := path(r); d != "" {
			canvas.Path(d, "fill:none;stroke-width:3;"+cssPaint("stroke", p.color(r)))
		}
	}
	canvas.Gend()

	canvas.End()
	return nil
}

func (p *Plot) color(r dataset.Row) color.Color {
	if p.cfg.Color == nil {
		return color.Black
	}
	return p.cfg.Color(r)
}

func cssPaint(prop string, c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return prop + ":none"
	}
	return fmt.Sprintf("%s:#%02x%02x%02x", prop, r>>8, g>>8, b>>8)
}

// axis maps the values of one column to [0, 1], bottom to top.
//
// A column without text is a linear axis from its minimum to its
// maximum. Any other column is an ordinal axis over its distinct
// values in dataset.Compare order.
type axis struct {
	name   string
	linear *scale.Linear
	levels []dataset.Value
}

func newAxis(f *dataset.Frame, name string) *axis {
	a := &axis{name: name}
	c, _ := f.Column(name)
	if len(c.Levels) == 0 {
		a.linear = &scale.Linear{Min: c.Min, Max: c.Max}
		return a
	}
	for _, v := range f.Values(name) {
		if x, ok := v.Float(); v.Kind() == dataset.Missing || ok && math.IsNaN(x) {
			continue
		}
		if !slices.ContainsFunc(a.levels, v.Equal) {
			a.levels = append(a.levels, v)
		}
	}
	slices.SortFunc(a.levels, dataset.Compare)
	return a
}

// pos returns the position of v on a. Missing values, NaN, and values
// that are not on an ordinal axis have no position.
func (a *axis) pos(v dataset.Value) (float64, bool) {
	if v.Kind() == dataset.Missing {
		return 0, false
	}
	if a.linear != nil {
		x, ok := v.Float()
		if !ok || math.IsNaN(x) {
			return 0, false
		}
		if a.linear.Min == a.linear.Max {
			return 0.5, true
		}
		return a.linear.Map(x), true
	}
	i := slices.IndexFunc(a.levels, v.Equal)
	switch {
	case i < 0:
		return 0, false
	case len(a.levels) == 1:
		return 0.5, true
	}
	return float64(i) / float64(len(a.levels)-1), true
}

type tick struct {
	pos   float64
	label string
}

func (a *axis) ticks() []tick {
	if a.linear != nil {
		if a.linear.Min == a.linear.Max {
			return []tick{{0.5, dataset.Num(a.linear.Min).String()}}
		}
		return []tick{
			{0, dataset.Num(a.linear.Min).String()},
			{1, dataset.Num(a.linear.Max).String()},
		}
	}
	out := make([]tick, len(a.levels))
	for i, v := range a.levels {
		out[i].pos, _ = a.pos(v)
		out[i].label = v.String()
	}
	return out
}
