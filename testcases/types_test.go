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
	"testing"

	"seehuhn.de/go/geom/matrix"
)

func TestMatrix(t *testing.T) {
	tc := TestCase{Name: "plain"}
	if m := tc.Matrix(); m != matrix.Identity {
		t.Errorf("zero CTM gave %v, want identity", m)
	}

	tc.CTM = matrix.Scale(2, 3)
	if m := tc.Matrix(); m != tc.CTM {
		t.Errorf("got %v, want %v", m, tc.CTM)
	}
}

// TestAllInvertible checks that every registered test case can be shaded.
func TestAllInvertible(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			m := tc.Matrix()
			if det := m[0]*m[3] - m[1]*m[2]; det == 0 {
				t.Errorf("%s/%s: singular CTM %v", category, tc.Name, m)
			}
		}
	}
}
