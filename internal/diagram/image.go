package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gorsd/internal/geomech"
	"github.com/alexiusacademia/gorsd/internal/section"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Canvas limits for the section drawing
const (
	canvasWidth     = 6 * vg.Inch
	minCanvasHeight = 3 * vg.Inch
	maxCanvasHeight = 10 * vg.Inch
)

// ExportSectionDiagram exports the gallery cross-section to an image file.
// The format follows the file extension (png, svg, pdf); other extensions
// get a .png appended.
func ExportSectionDiagram(scene *section.SectionGeometry, metrics []geomech.Metric, filename string) error {
	p, width, height, err := newSectionPlot(scene, metrics)
	if err != nil {
		return err
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// WriteSectionDiagram renders the cross-section in the given format
// (png, svg or pdf) to w
func WriteSectionDiagram(scene *section.SectionGeometry, metrics []geomech.Metric, w io.Writer, format string) error {
	format = strings.ToLower(format)
	switch format {
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("unsupported diagram format %q", format)
	}

	p, width, height, err := newSectionPlot(scene, metrics)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// newSectionPlot draws every path of the scene as a line plot and sizes
// the canvas after the view window. gonum/plot has no aspect lock, so the
// window is widened to the canvas ratio instead.
func newSectionPlot(scene *section.SectionGeometry, metrics []geomech.Metric) (*plot.Plot, vg.Length, vg.Length, error) {
	if scene == nil {
		return nil, 0, 0, fmt.Errorf("no section to draw")
	}

	p := plot.New()
	p.Title.Text = scene.Title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, path := range scene.Paths(section.DefaultSamples) {
		xys := make(plotter.XYs, len(path.Points))
		for i, pt := range path.Points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}

		lineColor, err := parseColor(path.Style.Color)
		if err != nil {
			return nil, 0, 0, err
		}

		if path.Style.Fill {
			poly, err := plotter.NewPolygon(xys)
			if err != nil {
				return nil, 0, 0, err
			}
			poly.Color = lineColor
			poly.LineStyle.Color = lineColor
			poly.LineStyle.Width = vg.Points(path.Style.LineWidth)
			p.Add(poly)
			if path.Label != "" {
				p.Legend.Add(path.Label, poly)
			}
			continue
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, 0, 0, err
		}
		line.LineStyle.Width = vg.Points(path.Style.LineWidth)
		line.LineStyle.Color = lineColor
		if path.Style.LineStyle == section.LineDashed {
			line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		p.Add(line)
		if path.Label != "" {
			p.Legend.Add(path.Label, line)
		}
	}

	bounds := scene.Bounds
	width := canvasWidth
	height := canvasWidth
	if bounds.Width() > 0 {
		height = vg.Length(float64(canvasWidth) * bounds.Height() / bounds.Width())
	}
	if height < minCanvasHeight {
		height = minCanvasHeight
	}
	if height > maxCanvasHeight {
		height = maxCanvasHeight
	}
	if scene.EqualAspect {
		bounds = fitBounds(bounds, float64(height)/float64(width))
	}

	// Design values in the upper-left corner
	if len(metrics) > 0 {
		lineHeight := bounds.Height() * 0.06
		xys := make([]plotter.XY, len(metrics))
		texts := make([]string, len(metrics))
		for i, m := range metrics {
			xys[i] = plotter.XY{X: bounds.XMin + bounds.Width()*0.03, Y: bounds.YMax - float64(i+1)*lineHeight}
			texts[i] = fmt.Sprintf("%s = %s", m.Symbol, m.Text())
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
		if err != nil {
			return nil, 0, 0, err
		}
		p.Add(labels)
	}

	p.X.Min, p.X.Max = bounds.XMin, bounds.XMax
	p.Y.Min, p.Y.Max = bounds.YMin, bounds.YMax

	return p, width, height, nil
}

// fitBounds grows the window symmetrically so that height/width == ratio
func fitBounds(b section.Bounds, ratio float64) section.Bounds {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 || ratio <= 0 {
		return b
	}

	if h/w < ratio {
		extra := (w*ratio - h) / 2
		b.YMin -= extra
		b.YMax += extra
	} else {
		extra := (h/ratio - w) / 2
		b.XMin -= extra
		b.XMax += extra
	}
	return b
}

// parseColor converts a #rrggbb string
func parseColor(s string) (color.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
