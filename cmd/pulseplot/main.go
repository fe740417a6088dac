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

// Command pulseplot plots a pulse train together with its box-filtered
// versions for a range of filter widths.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/antialias"
)

var (
	out     = flag.String("o", "pulsetrain.png", "output file (.png, .svg or .pdf)")
	edge    = flag.Float64("edge", 0.5, "edge position as a fraction of the period")
	period  = flag.Float64("period", 1, "period of the pulse train")
	xMin    = flag.Float64("x0", 0, "left end of the plot range")
	xMax    = flag.Float64("x1", 3, "right end of the plot range")
	samples = flag.Int("n", 1200, "number of points per curve")
)

// widths are the filter widths plotted, in units of the period.
var widths = []float64{0.1, 0.5, 1, 2.5}

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(); err != nil {
		logger.Error("pulseplot failed", "err", err)
		os.Exit(1)
	}
	logger.Info("plot written", "file", *out)
}

func run() error {
	switch {
	case !(*period > 0):
		return fmt.Errorf("invalid period %g", *period)
	case *edge < 0 || *edge > 1:
		return fmt.Errorf("invalid edge %g", *edge)
	case !(*xMax > *xMin):
		return fmt.Errorf("empty plot range [%g, %g]", *xMin, *xMax)
	case *samples < 2:
		return fmt.Errorf("need at least 2 points, got %d", *samples)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Filtered pulse train (edge %g, period %g)", *edge, *period)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "value"
	p.Y.Min = -0.05
	p.Y.Max = 1.05

	train := antialias.PulseTrain{Edge: *edge, Period: *period}

	point := curve(train.At)
	pointLine, err := plotter.NewLine(point)
	if err != nil {
		return fmt.Errorf("point samples: %w", err)
	}
	pointLine.Width = vg.Points(1)
	pointLine.Color = color.Gray{Y: 128}
	p.Add(pointLine)
	p.Legend.Add("point sampled", pointLine)

	colors := generateColors(len(widths))
	for i, w := range widths {
		dx := w * *period
		pts := curve(func(x float64) float64 {
			return train.Filtered(x, dx)
		})
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("width %g: %w", w, err)
		}
		line.Width = vg.Points(1.5)
		line.Color = colors[i]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("dx = %g", dx), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(10*vg.Inch, 4*vg.Inch, *out); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// curve samples f on the plot range.
func curve(f func(x float64) float64) plotter.XYs {
	n := *samples
	pts := make(plotter.XYs, n)
	for i := range pts {
		x := *xMin + (*xMax-*xMin)*float64(i)/float64(n-1)
		pts[i] = plotter.XY{X: x, Y: f(x)}
	}
	return pts
}

// generateColors returns n colours spread around the hue circle.
func generateColors(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		h := float64(i) / float64(n)
		r, g, b := hueToRGB(h)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hueToRGB converts a hue in [0, 1) to a fully saturated colour.
func hueToRGB(h float64) (r, g, b uint8) {
	channel := func(v float64) uint8 {
		return uint8(min(max(v, 0), 1)*200 + 0.5)
	}
	r = channel(math.Abs(6*h-3) - 1)
	g = channel(2 - math.Abs(6*h-2))
	b = channel(2 - math.Abs(6*h-4))
	return r, g, b
}
