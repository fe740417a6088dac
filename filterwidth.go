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

	"seehuhn.de/go/geom/vec"
)

// MinFilterWidth is the smallest filter width returned by the estimators.
// Downstream filters divide by the width, so it must never be zero.
const MinFilterWidth = 1e-6

// Step holds the differential step sizes of the current sample along the
// two screen-space axes. Both must be non-negative.
type Step struct {
	Du, Dv float64
}

// Deriv holds the partial derivatives of a scalar quantity with respect to
// the two screen-space axes.
type Deriv struct {
	U, V float64
}

// VecDeriv holds the partial derivatives of a vector or point quantity with
// respect to the two screen-space axes.
type VecDeriv struct {
	U, V vec.Vec2
}

// FilterWidth estimates the change of a scalar quantity across one sample
// footprint, from its derivatives d and the differential steps s.
// This is a first-order estimate using the sum of the two axis
// contributions. The result is at least [MinFilterWidth], also when the
// inputs contain NaN.
func FilterWidth(d Deriv, s Step) float64 {
	w := math.Abs(d.U*s.Du) + math.Abs(d.V*s.Dv)
	if !(w >= MinFilterWidth) {
		return MinFilterWidth
	}
	return w
}

// FilterWidthVec is the vector form of [FilterWidth].
// The absolute value of each axis contribution is its Euclidean length.
func FilterWidthVec(d VecDeriv, s Step) float64 {
	w := d.U.Mul(s.Du).Length() + d.V.Mul(s.Dv).Length()
	if !(w >= MinFilterWidth) {
		return MinFilterWidth
	}
	return w
}

// FilterWidthArea converts the differential footprint area of a point into
// a linear filter width, by taking the square root.
// Degenerate footprints (zero, negative or NaN area) give [MinFilterWidth].
func FilterWidthArea(area float64) float64 {
	if !(area > 0) {
		return MinFilterWidth
	}
	return max(math.Sqrt(area), MinFilterWidth)
}
