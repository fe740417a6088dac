// seehuhn.de/go/antialias - analytically filtered shading patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package antialias

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Shader evaluates a shading function at the centre of every device pixel
// inside a clip rectangle. The caller creates one instance and reuses it
// for multiple patterns. The row buffer grows as needed but never shrinks.
//
// A Shader is not safe for concurrent use.
type Shader struct {
	// CTM is the current transformation matrix (user space to device space).
	// If the matrix is singular, nothing is shaded.
	CTM matrix.Matrix

	// Clip defines the output region in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Du and Dv are the differential steps passed to the shading function,
	// in device pixels. The default 1 makes the filter footprint one pixel.
	Du, Dv float64

	row    []float32
	sample Sample
}

// NewShader returns a Shader with the given clip rectangle, the identity
// CTM and unit differential steps.
func NewShader(clip rect.Rect) *Shader {
	return &Shader{
		CTM:  matrix.Identity,
		Clip: clip,
		Du:   1,
		Dv:   1,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Internal buffers are kept.
func (s *Shader) Reset(clip rect.Rect) {
	s.CTM = matrix.Identity
	s.Clip = clip
	s.Du = 1
	s.Dv = 1
}

// Shade calls f once for every pixel in the clip rectangle, with the sample
// positioned at the pixel centre. The values returned by f are clamped to
// [0, 1] and passed to emit row by row. Leading and trailing zeros of each
// row are omitted, and rows which are entirely zero are skipped. The values
// slice is valid only during the call to emit.
//
// The *Sample passed to f is reused between calls and must not be retained.
func (s *Shader) Shade(f func(*Sample) float64, emit func(y, xMin int, values []float32)) {
	inv, ok := invert(s.CTM)
	if !ok {
		return
	}

	xMin := int(math.Floor(s.Clip.LLx))
	xMax := int(math.Floor(s.Clip.URx))
	yMin := int(math.Floor(s.Clip.LLy))
	yMax := int(math.Floor(s.Clip.URy))
	width := xMax - xMin
	if width <= 0 || yMax <= yMin {
		return
	}

	s.row = slices.Grow(s.row[:0], width)[:width]

	sm := &s.sample
	sm.Du = s.Du
	sm.Dv = s.Dv
	sm.setInverse(inv)

	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5
		for i := range s.row {
			sm.moveTo(inv, float64(xMin+i)+0.5, yc)
			s.row[i] = float32(clamp01(f(sm)))
		}

		if trimmed, offset := trimZeros(s.row); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// trimZeros returns the non-zero portion of values and its starting offset.
// Returns nil, 0 if values is entirely zero.
func trimZeros(values []float32) (trimmed []float32, offset int) {
	n := len(values)
	lo := 0
	for lo < n && values[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && values[hi] == 0 {
		hi--
	}
	return values[lo : hi+1], lo
}
