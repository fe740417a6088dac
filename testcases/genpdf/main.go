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

// Command genpdf generates reference images for the shading tests.
// It draws each test pattern as exact vector geometry into a PDF and
// renders the PDFs to PNGs using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/antialias"
	"seehuhn.de/go/antialias/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	ctm := tc.Matrix()
	bbox, ok := userBounds(ctm, tc.Width, tc.Height)
	if !ok {
		return fmt.Errorf("singular CTM %v", ctm)
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background: 0 means "off", 255 means "on"
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if ctm != matrix.Identity {
		page.Transform(ctm)
	}

	page.SetFillColor(color.DeviceGray(1))
	addRect := func(x, y, w, h float64) {
		page.Rectangle(x, y, w, h)
	}
	if drawPattern(addRect, tc.Pattern, bbox) {
		page.Fill()
	}

	return page.Close()
}

// drawPattern adds the "on" regions of p inside bbox to the current path,
// one addRect call per rectangle. It returns false if no region was added.
func drawPattern(addRect func(x, y, w, h float64), p testcases.Pattern, bbox rect.Rect) bool {
	h := bbox.URy - bbox.LLy
	n := 0
	switch p := p.(type) {
	case testcases.Stripes:
		k0 := math.Floor(bbox.LLx/p.Period) - 1
		k1 := math.Ceil(bbox.URx/p.Period) + 1
		w := (1 - p.Edge) * p.Period
		if w <= 0 {
			return false
		}
		for k := k0; k <= k1; k++ {
			addRect((k+p.Edge)*p.Period, bbox.LLy, w, h)
			n++
		}
	case testcases.Band:
		if p.Edge1 <= p.Edge0 {
			return false
		}
		addRect(p.Edge0, bbox.LLy, p.Edge1-p.Edge0, h)
		n++
	case testcases.Checker:
		cell := p.Period / 2
		i0 := int(math.Floor(bbox.LLx/cell)) - 1
		i1 := int(math.Ceil(bbox.URx/cell)) + 1
		j0 := int(math.Floor(bbox.LLy/cell)) - 1
		j1 := int(math.Ceil(bbox.URy/cell)) + 1
		for j := j0; j <= j1; j++ {
			for i := i0; i <= i1; i++ {
				if (i+j)&1 == 0 {
					continue
				}
				addRect(float64(i)*cell, float64(j)*cell, cell, cell)
				n++
			}
		}
	}
	return n > 0
}

// userBounds returns the user-space bounding box of the device canvas.
func userBounds(ctm matrix.Matrix, width, height int) (rect.Rect, bool) {
	corners := [][2]float64{
		{0, 0},
		{float64(width), 0},
		{0, float64(height)},
		{float64(width), float64(height)},
	}
	var bbox rect.Rect
	for i, c := range corners {
		s, ok := antialias.NewSample(ctm, c[0], c[1])
		if !ok {
			return rect.Rect{}, false
		}
		if i == 0 {
			bbox = rect.Rect{LLx: s.P.X, LLy: s.P.Y, URx: s.P.X, URy: s.P.Y}
			continue
		}
		bbox.LLx = min(bbox.LLx, s.P.X)
		bbox.LLy = min(bbox.LLy, s.P.Y)
		bbox.URx = max(bbox.URx, s.P.X)
		bbox.URy = max(bbox.URy, s.P.Y)
	}
	return bbox, true
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
