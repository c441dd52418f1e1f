// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorenc chooses the color scale for the color-encoding
// column.
//
// A column whose values are numbers gets a continuous scale from its
// minimum to its maximum. A column of text gets a discrete scale over
// its sorted distinct values, with one palette sample per value.
// Anything else (no values, or numbers mixed with text) gets an
// unscaled fallback that feeds numbers straight to the palette.
package colorenc

import (
	"fmt"
	"image/color"
	"math"
	"reflect"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
)

// Palette is the perceptual colormap sampled by every scale.
var Palette palette.Continuous = palette.Viridis

// Unknown is the color of values a scale cannot place, such as
// missing values.
var Unknown color.Color = color.RGBA{0x99, 0x99, 0x99, 0xff}

// Kind is the type of a Scale.
type Kind int

const (
	Fallback Kind = iota
	Continuous
	Discrete
)

func (k Kind) String() string {
	switch k {
	case Fallback:
		return "fallback"
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Scale maps values of one column to colors.
type Scale struct {
	Column string
	Kind   Kind

	// Min and Max are the domain of a Continuous scale.
	Min, Max float64

	// Levels is the domain of a Discrete scale and Colors holds
	// the color of each level.
	Levels []string
	Colors []color.Color

	scaler gg.Scaler
	levels map[string]bool
}

// Resolve returns the scale for column col of f. The scale's type is
// decided by the first non-missing value of the column.
func Resolve(f *dataset.Frame, col string) *Scale {
	s := &Scale{Column: col}
	c, ok := f.Column(col)
	switch {
	case !ok || c.Mixed:
		s.fallback()
	case c.Kind == dataset.Number:
		s.continuous(c.Min, c.Max)
	case c.Kind == dataset.Text:
		s.discrete(c.Levels)
	default:
		s.fallback()
	}
	return s
}

func (s *Scale) continuous(min, max float64) {
	s.Kind = Continuous
	s.Min, s.Max = min, max
	sc := gg.NewLinearScaler().SetMin(min).SetMax(max)
	sc.Ranger(paletteRanger{Palette})
	s.scaler = sc
}

func (s *Scale) discrete(levels []string) {
	s.Kind = Discrete
	s.Levels = levels
	s.Colors = Sample(Palette, len(levels))
	s.levels = make(map[string]bool, len(levels))
	for _, l := range levels {
		s.levels[l] = true
	}
	sc := gg.NewOrdinalScale()
	sc.ExpandDomain(levels)
	sc.Ranger(gg.NewColorRanger(s.Colors))
	s.scaler = sc
}

func (s *Scale) fallback() {
	s.Kind = Fallback
	sc := gg.NewLinearScaler().SetMin(0).SetMax(1)
	sc.Ranger(paletteRanger{Palette})
	s.scaler = sc
}

// Map returns the color of v.
func (s *Scale) Map(v dataset.Value) color.Color {
	switch s.Kind {
	case Continuous:
		x, ok := v.Float()
		if !ok || math.IsNaN(x) {
			return Unknown
		}
		if s.Min == s.Max {
			return s.scaler.Map(gg.Unscaled(0)).(color.Color)
		}
		return s.scaler.Map(x).(color.Color)

	case Discrete:
		t, ok := v.Text()
		if !ok || !s.levels[t] {
			return Unknown
		}
		return s.scaler.Map(t).(color.Color)
	}

	x, ok := v.Float()
	if !ok {
		return Unknown
	}
	return s.scaler.Map(gg.Unscaled(x)).(color.Color)
}

// Sample returns n colors from p at evenly spaced points of [0, 1],
// including both ends. A single sample is taken from 0.
func Sample(p palette.Continuous, n int) []color.Color {
	if n <= 0 {
		return nil
	}
	xs := []float64{0}
	if n > 1 {
		xs = vec.Linspace(0, 1, n)
	}
	out := make([]color.Color, n)
	for i, x := range xs {
		out[i] = p.Map(x)
	}
	return out
}

var colorType = reflect.TypeOf((*color.Color)(nil)).Elem()

// paletteRanger is a gg.ContinuousRanger over a continuous palette.
// Positions outside [0, 1] are clamped.
type paletteRanger struct {
	p palette.Continuous
}

func (r paletteRanger) RangeType() reflect.Type {
	return colorType
}

func (r paletteRanger) Map(x float64) interface{} {
	if math.IsNaN(x) || x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return r.p.Map(x)
}

func (r paletteRanger) Unmap(y interface{}) (float64, bool) {
	return 0, false
}
