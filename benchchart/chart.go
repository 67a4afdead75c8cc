// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart draws benchmark summaries as PNG charts.
package benchchart

import (
	"errors"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// A Series is a line of points with a fixed marker style.
type Series struct {
	XYs   plotter.XYs
	Color color.Color
	Shape draw.GlyphDrawer
}

// Labels are the text decorations of a chart.
type Labels struct {
	Title, X, Y string
}

// Size is the rendered size of a chart.
type Size struct {
	Width, Height vg.Length
	DPI           int
}

var (
	// LineSize is the size of line and scatter charts.
	LineSize = Size{10 * vg.Inch, 6 * vg.Inch, 300}
	// BarSize is the size of bar charts.
	BarSize = Size{12 * vg.Inch, 6 * vg.Inch, 300}
)

// Colors used by the standard charts.
var (
	Blue   color.Color = rgb(0x1f, 0x77, 0xb4)
	Orange color.Color = rgb(0xff, 0xa5, 0x00)
	Green  color.Color = rgb(0x00, 0x80, 0x00)
	Red    color.Color = rgb(0xff, 0x00, 0x00)

	// BarColors are cycled across the bars of a bar chart.
	BarColors = []color.Color{rgb(0x34, 0x98, 0xdb), rgb(0x2e, 0xcc, 0x71), rgb(0xe7, 0x4c, 0x3c)}

	gridColor color.Color = color.NRGBA{0, 0, 0, 0x4c}
)

func rgb(r, g, b uint8) color.Color {
	return color.NRGBA{r, g, b, 0xff}
}

const (
	titleSize = 14
	labelSize = 12
	pointRad  = 4
)

var errNoPoints = errors.New("chart has no points")

func newPlot(l Labels) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = l.Title
	pl.Title.TextStyle.Font.Size = vg.Points(titleSize)
	pl.X.Label.Text = l.X
	pl.X.Label.TextStyle.Font.Size = vg.Points(labelSize)
	pl.Y.Label.Text = l.Y
	pl.Y.Label.TextStyle.Font.Size = vg.Points(labelSize)
	return pl
}

func addGrid(pl *plot.Plot, vertical bool) {
	grid := plotter.NewGrid()
	grid.Horizontal.Color = gridColor
	if vertical {
		grid.Vertical.Color = gridColor
	} else {
		grid.Vertical.Color = nil
	}
	pl.Add(grid)
}

// Line draws s as a line with a marker at each point.
func Line(l Labels, s Series) (*plot.Plot, error) {
	if len(s.XYs) == 0 {
		return nil, errNoPoints
	}
	pl := newPlot(l)
	addGrid(pl, true)

	line, points, err := plotter.NewLinePoints(s.XYs)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = s.Color
	line.LineStyle.Width = vg.Points(2)
	points.GlyphStyle.Color = s.Color
	points.GlyphStyle.Radius = vg.Points(pointRad)
	if s.Shape != nil {
		points.GlyphStyle.Shape = s.Shape
	}
	pl.Add(line, points)
	return pl, nil
}

// Fit draws xys as a scatter plot and overlays the curve f, evaluated
// at each x in xys, as a dashed line labeled fitLabel in the legend.
func Fit(l Labels, xys plotter.XYs, f func(x float64) float64, fitLabel string) (*plot.Plot, error) {
	if len(xys) == 0 {
		return nil, errNoPoints
	}
	pl := newPlot(l)
	addGrid(pl, true)

	points, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(6)
	points.GlyphStyle.Color = color.NRGBA{0x1f, 0x77, 0xb4, 0x99}

	fitted := make(plotter.XYs, len(xys))
	for i, xy := range xys {
		fitted[i] = plotter.XY{X: xy.X, Y: f(xy.X)}
	}
	line, err := plotter.NewLine(fitted)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = Red
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	pl.Add(points, line)
	pl.Legend.Add(fitLabel, line)
	pl.Legend.Top = true
	pl.Legend.Left = true
	pl.Legend.TextStyle.Font.Size = vg.Points(11)
	return pl, nil
}

// Bars draws one bar per name, colored by cycling through BarColors.
func Bars(l Labels, names []string, values []float64) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, errNoPoints
	}
	if len(names) != len(values) {
		return nil, errors.New("bar names and values differ in length")
	}
	pl := newPlot(l)
	addGrid(pl, false)

	w := vg.Points(60)
	for i, v := range values {
		b, err := plotter.NewBarChart(plotter.Values{v}, w)
		if err != nil {
			return nil, err
		}
		b.XMin = float64(i)
		b.Color = BarColors[i%len(BarColors)]
		b.LineStyle.Width = 0
		pl.Add(b)
	}
	pl.NominalX(names...)
	return pl, nil
}

// WritePNG renders pl at size sz and writes it to w as a PNG image.
func WritePNG(w io.Writer, pl *plot.Plot, sz Size) error {
	c := vgimg.NewWith(vgimg.UseWH(sz.Width, sz.Height), vgimg.UseDPI(sz.DPI), vgimg.UseBackgroundColor(color.White))
	pl.Draw(draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}
