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

// Package antialias implements antialiasing primitives for procedural
// shading.
//
// There are two groups of functions. [FilterWidth], [FilterWidthVec] and
// [FilterWidthArea] estimate how much a shading quantity varies across one
// pixel footprint. [FilteredPulseTrain] and [FilteredPulse] return the exact
// box-filtered value of a periodic or single 0/1 step pattern over a sampling
// interval of that width. Together they give antialiased stripes, bands and
// checkerboards without supersampling:
//
//	s, _ := antialias.NewSample(ctm, x+0.5, y+0.5)
//	fw := s.FilterWidth(func(p vec.Vec2) float64 { return p.X })
//	v := antialias.FilteredPulseTrain(0.5, 10, s.P.X, fw)
//
// All package-level functions are pure and safe for concurrent use.
// A [Shader] holds reusable buffers and is not.
package antialias

//go:generate go run ./testcases/genpdf
