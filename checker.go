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

// FilteredChecker returns the box-filtered value of a checkerboard with
// square cells of size period/2. The board is 1 where exactly one of the
// two pulse trains frac(x/period) >= 1/2 and frac(y/period) >= 1/2 is on.
//
// dx and dy are the filter widths along the two axes. The result is exact
// when the filter footprint is an axis-aligned rectangle.
func FilteredChecker(period, x, y, dx, dy float64) float64 {
	sx := FilteredPulseTrain(0.5, period, x, dx)
	sy := FilteredPulseTrain(0.5, period, y, dy)
	return sx*(1-sy) + (1-sx)*sy
}
