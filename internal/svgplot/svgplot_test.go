// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"bytes"
	"errors"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/viewsync"
)

func testFrame() *dataset.Frame {
	return dataset.NewFrame([]string{"x", "kind", "name"}, []dataset.Row{
		{ID: 0, Values: []dataset.Value{dataset.Num(1), dataset.Str("a"), dataset.Str("first")}},
		{ID: 1, Values: []dataset.Value{dataset.Num(2), dataset.Str("b"), dataset.Str("second")}},
		{ID: 2, Values: []dataset.Value{dataset.Num(3), dataset.Str("a"), dataset.Str("third")}},
	})
}

func newTestPlot(t *testing.T) *Plot {
	t.Helper()
	p, err := NewPlot(viewsync.PlotConfig{
		Data:         testFrame(),
		ExcludedAxes: []string{"name", "id"},
		Color:        func(dataset.Row) color.Color { return color.RGBA{0xff, 0, 0, 0xff} },
	}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	p.SetBrushMode(viewsync.BrushMulti1D)
	return p
}

func TestAxes(t *testing.T) {
	p := newTestPlot(t)
	if want := []string{"x", "kind"}; !reflect.DeepEqual(p.Axes(), want) {
		t.Fatalf("Axes() = %v; want %v", p.Axes(), want)
	}
	if _, err := NewPlot(viewsync.PlotConfig{}, Options{}); err != ErrNoData {
		t.Fatalf("NewPlot without data: got %v; want %v", err, ErrNoData)
	}
}

func TestBrush(t *testing.T) {
	p := newTestPlot(t)
	var events [][]viewsync.Extent
	p.OnBrush(func(ev viewsync.BrushEvent) { events = append(events, ev.Extents) })

	if err := p.Brush("kind", dataset.Str("a"), dataset.Str("a")); err != nil {
		t.Fatal(err)
	}
	if err := p.Brush("x", dataset.Num(2), dataset.Num(3)); err != nil {
		t.Fatal(err)
	}
	want := []viewsync.Extent{
		{Axis: "x", Lo: dataset.Num(2), Hi: dataset.Num(3)},
		{Axis: "kind", Lo: dataset.Str("a"), Hi: dataset.Str("a")},
	}
	if !reflect.DeepEqual(p.Extents(), want) {
		t.Fatalf("Extents() = %v; want %v", p.Extents(), want)
	}
	if len(events) != 2 || !reflect.DeepEqual(events[1], want) {
		t.Fatalf("brush events = %v", events)
	}

	if err := p.ClearBrush("kind"); err != nil {
		t.Fatal(err)
	}
	if got := p.Extents(); len(got) != 1 || got[0].Axis != "x" {
		t.Fatalf("after ClearBrush: Extents() = %v", got)
	}

	if err := p.Brush("name", dataset.Str("a"), dataset.Str("z")); !errors.Is(err, ErrNoAxis) {
		t.Fatalf("Brush on excluded axis: got %v; want %v", err, ErrNoAxis)
	}

	p.Destroy()
	if err := p.Brush("x", dataset.Num(0), dataset.Num(1)); err != ErrDestroyed {
		t.Fatalf("Brush after Destroy: got %v; want %v", err, ErrDestroyed)
	}
	if len(events) != 3 {
		t.Fatalf("got %d brush events; want 3", len(events))
	}
}

func TestBrushSingleMode(t *testing.T) {
	p := newTestPlot(t)
	p.SetBrushMode("1D-axes")
	p.Brush("x", dataset.Num(1), dataset.Num(2))
	p.Brush("kind", dataset.Str("b"), dataset.Str("b"))
	if got := p.Extents(); len(got) != 1 || got[0].Axis != "kind" {
		t.Fatalf("Extents() = %v; want only kind", got)
	}
}

func TestWriteSVG(t *testing.T) {
	p := newTestPlot(t)
	p.StyleAxes("kind")
	p.Brush("x", dataset.Num(1), dataset.Num(2))
	p.Highlight([]dataset.Row{testFrame().Row(0)})

	var buf bytes.Buffer
	if err := p.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("not an SVG document:\n%s", out)
	}
	// One path per row plus one for the highlighted row.
	if n := strings.Count(out, "<path"); n != 4 {
		t.Errorf("got %d paths; want 4", n)
	}
	// Row 2 is outside the brush.
	if n := strings.Count(out, "stroke:#ccc"); n != 1 {
		t.Errorf("got %d dimmed rows; want 1", n)
	}
	if n := strings.Count(out, "stroke:#ff0000"); n != 3 {
		t.Errorf("got %d colored rows; want 3", n)
	}
	if n := strings.Count(out, "font-weight:bold"); n != 1 {
		t.Errorf("got %d bold labels; want 1", n)
	}
	for _, label := range []string{"x</text>", "kind</text>"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing label %q", label)
		}
	}
	if strings.Contains(out, "first") {
		t.Errorf("excluded column drawn")
	}
}

func TestAxisPos(t *testing.T) {
	f := dataset.NewFrame([]string{"n", "s", "one"}, []dataset.Row{
		{ID: 0, Values: []dataset.Value{dataset.Num(10), dataset.Str("b"), dataset.Num(7)}},
		{ID: 1, Values: []dataset.Value{dataset.Num(20), dataset.Num(5), dataset.Num(7)}},
		{ID: 2, Values: []dataset.Value{{}, dataset.Str("a"), {}}},
	})
	for _, test := range []struct {
		axis string
		v    dataset.Value
		pos  float64
		ok   bool
	}{
		{"n", dataset.Num(10), 0, true},
		{"n", dataset.Num(15), 0.5, true},
		{"n", dataset.Num(20), 1, true},
		{"n", dataset.Value{}, 0, false},
		{"n", dataset.Str("x"), 0, false},
		{"n", dataset.Parse("NaN"), 0, false},
		{"s", dataset.Num(5), 0, true},
		{"s", dataset.Str("a"), 0.5, true},
		{"s", dataset.Str("b"), 1, true},
		{"s", dataset.Str("c"), 0, false},
		{"one", dataset.Num(7), 0.5, true},
	} {
		pos, ok := newAxis(f, test.axis).pos(test.v)
		if pos != test.pos || ok != test.ok {
			t.Errorf("axis %s: pos(%v) = %v, %v; want %v, %v", test.axis, test.v, pos, ok, test.pos, test.ok)
		}
	}
}
