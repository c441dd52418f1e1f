// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorenc

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// legendSamples is the resolution of a continuous legend before it is
// scaled to size.
const legendSamples = 256

// Legend draws s as a horizontal strip of width by height pixels,
// lowest values on the left. A Discrete scale shows one block per
// level; other scales show the palette as a smooth gradient.
func (s *Scale) Legend(width, height int) *image.RGBA {
	var strip []color.Color
	interp := draw.Interpolator(draw.BiLinear)
	if s.Kind == Discrete && len(s.Colors) > 0 {
		strip = s.Colors
		interp = draw.NearestNeighbor
	} else {
		strip = Sample(Palette, legendSamples)
	}

	src := image.NewRGBA(image.Rect(0, 0, len(strip), 1))
	for x, c := range strip {
		src.Set(x, 0, c)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
