package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/section"
)

var (
	outlineColor = color.Black
	fillColor    = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	axisColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	curveColor   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
)

// ExportSectionDiagram draws the cross-section outline with its neutral axis
func ExportSectionDiagram(o section.Outline, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	rings := []plotter.XYer{toXYs(o.Outer)}
	for _, h := range o.Holes {
		rings = append(rings, toXYs(h))
	}
	shape, err := plotter.NewPolygon(rings...)
	if err != nil {
		return err
	}
	shape.Color = fillColor
	shape.LineStyle.Width = vg.Points(2)
	shape.LineStyle.Color = outlineColor
	p.Add(shape)

	// symmetric sections: the centroidal axis is at mid-depth
	minX, minY, maxX, maxY := o.Bounds()
	naY := (minY + maxY) / 2
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: minX - 20, Y: naY},
		{X: maxX + 20, Y: naY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = axisColor
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: maxX + 5, Y: naY}},
		Labels: []string{"N.A."},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	// keep the aspect ratio so slender sections look slender
	span := max(maxX-minX, maxY-minY) + 40
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// ExportMomentDiagram plots the bending moment diagram
func ExportMomentDiagram(pr *engine.Profile, filename string) error {
	_, m := pr.PeakMoment()
	return exportCurve(pr.X, pr.Moment,
		fmt.Sprintf("Bending Moment Diagram (peak %.1f N·m)", m),
		"Bending moment (N·m)", filename)
}

// ExportDeflectionDiagram plots the elastic curve, deflection drawn downward
func ExportDeflectionDiagram(pr *engine.Profile, filename string) error {
	down := make([]float64, len(pr.Deflection))
	for i, v := range pr.Deflection {
		down[i] = -v
	}
	_, d := pr.PeakDeflection()
	return exportCurve(pr.X, down,
		fmt.Sprintf("Elastic Curve (peak %.3f mm)", d),
		"Deflection (mm)", filename)
}

func exportCurve(xs, ys []float64, title, ylabel, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position along span (m)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = curveColor
	p.Add(line)

	baseline, err := plotter.NewLine(plotter.XYs{
		{X: xs[0], Y: 0},
		{X: xs[len(xs)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	baseline.LineStyle.Width = vg.Points(1)
	baseline.LineStyle.Color = color.Gray{Y: 128}
	p.Add(baseline)

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

func toXYs(poly section.Polygon) plotter.XYs {
	pts := make(plotter.XYs, len(poly))
	for i, v := range poly {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return pts
}

// save writes the plot in the format named by the extension; no extension means PNG
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
