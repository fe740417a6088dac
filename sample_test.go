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
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats/scalar"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestInvert(t *testing.T) {
	ms := []matrix.Matrix{
		matrix.Identity,
		{2, 0, 0, 2, 0, 0},
		{2, 0, 0, 3, 5, -7},
		{1, 0.5, 0, 1, 3, 4},
		{0, 1, -1, 0, 10, 20},
		{0.3, -1.2, 2.5, 0.7, -4, 9},
	}
	for _, m := range ms {
		inv, ok := invert(m)
		if !ok {
			t.Errorf("%v: unexpected singular matrix", m)
			continue
		}
		// m maps p to q, inv must map q back to p
		px, py := 1.5, -2.25
		qx, qy := m.Apply(px, py)
		bx, by := inv.Apply(qx, qy)
		if !scalar.EqualWithinAbs(bx, px, 1e-12) || !scalar.EqualWithinAbs(by, py, 1e-12) {
			t.Errorf("%v: round trip gave (%g, %g), want (%g, %g)", m, bx, by, px, py)
		}
	}

	if _, ok := invert(matrix.Matrix{1, 2, 2, 4, 0, 0}); ok {
		t.Error("singular matrix was inverted")
	}
	if _, ok := invert(matrix.Matrix{}); ok {
		t.Error("zero matrix was inverted")
	}
	if _, ok := invert(matrix.Matrix{1e-200, 0, 0, 1e-200, 0, 0}); ok {
		t.Error("matrix with underflowing determinant was inverted")
	}
	if _, ok := invert(matrix.Matrix{math.NaN(), 0, 0, 1, 0, 0}); ok {
		t.Error("NaN matrix was inverted")
	}
}

func TestNewSample(t *testing.T) {
	s, ok := NewSample(matrix.Matrix{2, 0, 0, 4, 10, 20}, 12, 28)
	if !ok {
		t.Fatal("unexpected singular CTM")
	}

	want := &Sample{
		P:    vec.Vec2{X: 1, Y: 2},
		Dpdu: vec.Vec2{X: 0.5, Y: 0},
		Dpdv: vec.Vec2{X: 0, Y: 0.25},
		Du:   1,
		Dv:   1,
	}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("unexpected sample (-want +got):\n%s", d)
	}

	if _, ok := NewSample(matrix.Matrix{}, 0, 0); ok {
		t.Error("sample created for singular CTM")
	}
}

func TestSampleDeriv(t *testing.T) {
	s, _ := NewSample(matrix.RotateDeg(90), 3, 4)

	// for a linear field the forward difference is exact
	f := func(p vec.Vec2) float64 { return 2*p.X - 3*p.Y + 1 }
	d := s.Deriv(f)
	wantU := 2*s.Dpdu.X - 3*s.Dpdu.Y
	wantV := 2*s.Dpdv.X - 3*s.Dpdv.Y
	if !scalar.EqualWithinAbs(d.U, wantU, 1e-12) || !scalar.EqualWithinAbs(d.V, wantV, 1e-12) {
		t.Errorf("Deriv = %v, want {%g %g}", d, wantU, wantV)
	}

	fw := s.FilterWidth(f)
	if want := 5.0; !scalar.EqualWithinAbs(fw, want, 1e-12) {
		t.Errorf("FilterWidth = %g, want %g", fw, want)
	}

	s.Du, s.Dv = 0, 0
	if d := s.Deriv(f); d != (Deriv{}) {
		t.Errorf("Deriv with zero steps = %v, want zero", d)
	}
	if fw := s.FilterWidth(f); fw != MinFilterWidth {
		t.Errorf("FilterWidth with zero steps = %g, want %g", fw, MinFilterWidth)
	}
}

func TestSampleArea(t *testing.T) {
	cases := []struct {
		name   string
		ctm    matrix.Matrix
		du, dv float64
		area   float64
		fw     float64
	}{
		{"identity", matrix.Identity, 1, 1, 1, 1},
		{"magnify", matrix.Scale(4, 4), 1, 1, 1.0 / 16, 0.25},
		{"minify", matrix.Scale(0.5, 0.5), 1, 1, 4, 2},
		{"anisotropic", matrix.Scale(1, 4), 1, 1, 0.25, 0.5},
		{"rotated", matrix.RotateDeg(30), 1, 1, 1, 1},
		{"half steps", matrix.Identity, 0.5, 0.5, 0.25, 0.5},
		{"degenerate step", matrix.Identity, 1, 0, 0, MinFilterWidth},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, ok := NewSample(c.ctm, 0.5, 0.5)
			if !ok {
				t.Fatal("unexpected singular CTM")
			}
			s.Du, s.Dv = c.du, c.dv
			if a := s.Area(); !scalar.EqualWithinAbs(a, c.area, 1e-12) {
				t.Errorf("Area = %g, want %g", a, c.area)
			}
			if fw := s.FilterWidthP(); !scalar.EqualWithinAbs(fw, c.fw, 1e-12) {
				t.Errorf("FilterWidthP = %g, want %g", fw, c.fw)
			}
		})
	}
}

func TestSampleDerivP(t *testing.T) {
	s, _ := NewSample(matrix.Scale(2, 0.5), 0, 0)
	s.Du = 3
	fw := FilterWidthVec(s.DerivP(), s.Step())
	if want := 1.5 + 2; !scalar.EqualWithinAbs(fw, want, 1e-12) {
		t.Errorf("FilterWidthVec(DerivP) = %g, want %g", fw, want)
	}
}
