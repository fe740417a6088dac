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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:    "scale_2x",
		Width:   64,
		Height:  16,
		Pattern: Stripes{Edge: 0.5, Period: 5},
		CTM:     matrix.Scale(2, 2),
	},
	{
		Name:    "scale_half",
		Width:   64,
		Height:  16,
		Pattern: Stripes{Edge: 0.5, Period: 20},
		CTM:     matrix.Scale(0.5, 0.5).Translate(3, 0),
	},
	{
		Name:    "checker_scale_3x",
		Width:   64,
		Height:  64,
		Pattern: Checker{Period: 7},
		CTM:     matrix.Scale(3, 3).Translate(1.5, 2.5),
	},

	// non-uniform scaling
	{
		Name:    "checker_scale_2x_1y",
		Width:   64,
		Height:  64,
		Pattern: Checker{Period: 8},
		CTM:     matrix.Scale(2, 1),
	},

	// rotation
	{
		Name:    "rotate_90deg",
		Width:   16,
		Height:  64,
		Pattern: Stripes{Edge: 0.5, Period: 10},
		CTM:     matrix.RotateDeg(90).Translate(8, 0),
	},
	{
		Name:    "rotate_30deg",
		Width:   64,
		Height:  64,
		Pattern: Stripes{Edge: 0.5, Period: 12},
		CTM:     matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:    "band_rotate_45deg",
		Width:   64,
		Height:  64,
		Pattern: Band{Edge0: -10, Edge1: 10},
		CTM:     matrix.RotateDeg(45).Translate(32, 32),
	},

	// shear
	{
		Name:    "shear_horizontal",
		Width:   64,
		Height:  64,
		Pattern: Stripes{Edge: 0.5, Period: 10},
		CTM:     matrix.Matrix{1, 0, 0.5, 1, 0, 0},
	},
}
