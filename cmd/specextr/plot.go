package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// savePlot writes the profile ratio and its fitted trend to path. The image
// format follows the file extension.
func savePlot(path string, col int, xvals, ratio, trend []float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Spatial profile, column %d", col)
	p.X.Label.Text = "wavelength index"
	p.Y.Label.Text = "data / spectrum"

	pts := make(plotter.XYs, len(xvals))
	fit := make(plotter.XYs, len(xvals))
	for i, x := range xvals {
		pts[i].X, pts[i].Y = x, ratio[i]
		fit[i].X, fit[i].Y = x, trend[i]
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("ratio points: %w", err)
	}
	sc.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	sc.GlyphStyle.Radius = vg.Points(2)

	ln, err := plotter.NewLine(fit)
	if err != nil {
		return fmt.Errorf("trend line: %w", err)
	}
	ln.LineStyle.Color = color.RGBA{B: 200, A: 255}
	ln.LineStyle.Width = vg.Points(1.5)

	p.Add(plotter.NewGrid(), sc, ln)
	p.Legend.Add("data/spec", sc)
	p.Legend.Add("trend", ln)
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
