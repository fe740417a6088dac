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

package testcases

import (
	"math"

	"seehuhn.de/go/antialias"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single shading test.
type TestCase struct {
	Name    string        // lowercase a-z, 0-9 and _ only
	Width   int           // canvas width in pixels
	Height  int           // canvas height in pixels
	Pattern Pattern       // the pattern to shade, in user space
	CTM     matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Matrix returns the CTM of the test case, with the zero matrix replaced
// by the identity.
func (tc TestCase) Matrix() matrix.Matrix {
	if tc.CTM.IsZero() {
		return matrix.Identity
	}
	return tc.CTM
}

// Pattern is a 0/1 pattern in user space.
type Pattern interface {
	// At returns the unfiltered value of the pattern at p.
	At(p vec.Vec2) float64

	// Filtered returns the value of the pattern averaged over the
	// footprint of s.
	Filtered(s *antialias.Sample) float64
}

// Stripes are vertical stripes: a pulse train along the user-space x axis.
type Stripes struct {
	Edge   float64 // edge position as a fraction of the period
	Period float64
}

func (st Stripes) At(p vec.Vec2) float64 {
	return antialias.PulseTrain{Edge: st.Edge, Period: st.Period}.At(p.X)
}

func (st Stripes) Filtered(s *antialias.Sample) float64 {
	fw := s.FilterWidth(coordX)
	return antialias.FilteredPulseTrain(st.Edge, st.Period, s.P.X, fw)
}

// Band is a single vertical band covering Edge0 <= x < Edge1.
type Band struct {
	Edge0, Edge1 float64
}

func (b Band) At(p vec.Vec2) float64 {
	return antialias.Pulse{Edge0: b.Edge0, Edge1: b.Edge1}.At(p.X)
}

func (b Band) Filtered(s *antialias.Sample) float64 {
	fw := s.FilterWidth(coordX)
	return antialias.FilteredPulse(b.Edge0, b.Edge1, s.P.X, fw)
}

// Checker is a checkerboard with square cells of size Period/2.
type Checker struct {
	Period float64
}

func (c Checker) At(p vec.Vec2) float64 {
	tx := p.X / c.Period
	ty := p.Y / c.Period
	onX := tx-math.Floor(tx) >= 0.5
	onY := ty-math.Floor(ty) >= 0.5
	if onX != onY {
		return 1
	}
	return 0
}

func (c Checker) Filtered(s *antialias.Sample) float64 {
	fwx := s.FilterWidth(coordX)
	fwy := s.FilterWidth(coordY)
	return antialias.FilteredChecker(c.Period, s.P.X, s.P.Y, fwx, fwy)
}

func coordX(p vec.Vec2) float64 { return p.X }

func coordY(p vec.Vec2) float64 { return p.Y }
