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

// Command patterndemo renders all test patterns to PNG files, either
// antialiased or point sampled, for visual inspection.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/antialias"
	"seehuhn.de/go/antialias/testcases"
	"seehuhn.de/go/geom/rect"
)

var (
	outDir  = flag.String("out", "demo", "output directory")
	scale   = flag.Int("scale", 4, "magnification factor of the output images")
	aliased = flag.Bool("aliased", false, "point sample the patterns instead of filtering")
	verbose = flag.Bool("v", false, "log every file written")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	n, err := run(logger)
	if err != nil {
		logger.Error("patterndemo failed", "err", err)
		os.Exit(1)
	}
	logger.Info("done", "images", n, "dir", *outDir)
}

func run(logger *slog.Logger) (int, error) {
	if *scale < 1 {
		return 0, fmt.Errorf("invalid scale %d", *scale)
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return 0, err
	}

	s := antialias.NewShader(rect.Rect{})
	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			img := render(s, tc, *aliased)

			fname := filepath.Join(*outDir, name+".png")
			if err := writePNG(fname, magnify(img, *scale)); err != nil {
				return n, fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("wrote image", "file", fname, "width", tc.Width, "height", tc.Height)
			n++
		}
	}
	return n, nil
}

// render shades a test case into a grayscale image.
func render(s *antialias.Shader, tc testcases.TestCase, aliased bool) *image.Gray {
	s.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	s.CTM = tc.Matrix()

	f := tc.Pattern.Filtered
	if aliased {
		f = func(sm *antialias.Sample) float64 {
			return tc.Pattern.At(sm.P)
		}
	}

	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	s.Shade(f, func(y, xMin int, values []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, v := range values {
			row[i] = byte(max(0, min(255, int(v*256))))
		}
	})
	return img
}

// magnify scales img up by an integer factor without smoothing, so that
// individual pixels stay visible.
func magnify(img *image.Gray, factor int) image.Image {
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
