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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Sample is the shading context of a single sample point.
//
// The two screen-space axes are device x and y. P is the sample position in
// user space, and Dpdu and Dpdv are the derivatives of P with respect to
// device x and y. Du and Dv are the differential steps in device pixels.
type Sample struct {
	P          vec.Vec2
	Dpdu, Dpdv vec.Vec2
	Du, Dv     float64
}

// NewSample returns the shading context for the device-space point (x, y)
// under the given CTM, with unit differential steps.
// The second return value is false if the CTM is singular.
func NewSample(ctm matrix.Matrix, x, y float64) (*Sample, bool) {
	inv, ok := invert(ctm)
	if !ok {
		return nil, false
	}
	s := &Sample{Du: 1, Dv: 1}
	s.setInverse(inv)
	s.moveTo(inv, x, y)
	return s, true
}

func (s *Sample) setInverse(inv matrix.Matrix) {
	s.Dpdu = vec.Vec2{X: inv[0], Y: inv[1]}
	s.Dpdv = vec.Vec2{X: inv[2], Y: inv[3]}
}

// moveTo sets P to the user-space image of the device point (x, y).
func (s *Sample) moveTo(inv matrix.Matrix, x, y float64) {
	s.P.X, s.P.Y = inv.Apply(x, y)
}

// Step returns the differential steps of the sample.
func (s *Sample) Step() Step {
	return Step{Du: s.Du, Dv: s.Dv}
}

// Deriv returns the partial derivatives of the user-space field f with
// respect to the screen-space axes at P.
// The derivatives are forward differences over one differential step,
// so they are exact for fields which are linear in P.
func (s *Sample) Deriv(f func(vec.Vec2) float64) Deriv {
	var d Deriv
	f0 := f(s.P)
	if s.Du != 0 {
		d.U = (f(s.P.Add(s.Dpdu.Mul(s.Du))) - f0) / s.Du
	}
	if s.Dv != 0 {
		d.V = (f(s.P.Add(s.Dpdv.Mul(s.Dv))) - f0) / s.Dv
	}
	return d
}

// DerivP returns the partial derivatives of P itself.
func (s *Sample) DerivP() VecDeriv {
	return VecDeriv{U: s.Dpdu, V: s.Dpdv}
}

// Area returns the user-space area of the sample footprint, i.e. the area
// of the parallelogram spanned by Dpdu*Du and Dpdv*Dv.
func (s *Sample) Area() float64 {
	a := s.Dpdu.Mul(s.Du)
	b := s.Dpdv.Mul(s.Dv)
	return math.Abs(a.X*b.Y - a.Y*b.X)
}

// FilterWidth estimates the change of the field f across the sample
// footprint. See [FilterWidth].
func (s *Sample) FilterWidth(f func(vec.Vec2) float64) float64 {
	return FilterWidth(s.Deriv(f), s.Step())
}

// FilterWidthP estimates the width of the sample footprint in user space.
// See [FilterWidthArea].
func (s *Sample) FilterWidthP() float64 {
	return FilterWidthArea(s.Area())
}

// invert returns the inverse of m, or false if m is singular or not finite.
func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.IsNaN(det) || math.IsInf(det, 0) || math.IsInf(1/det, 0) {
		return matrix.Matrix{}, false
	}
	return m.Inv(), true
}
