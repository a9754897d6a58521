package section

import (
	"math"

	"github.com/alexiusacademia/gorsd/internal/geomech"
)

// Display attributes of the cross-section drawing
var (
	GalleryStyle = Style{Color: "#ff0000", LineStyle: LineSolid, LineWidth: 3}
	PlasticStyle = Style{Color: "#008000", LineStyle: LineDashed, LineWidth: 2}
)

const (
	// GalleryLabel is the legend entry of the excavation outline
	GalleryLabel = "Galería"

	// Title of the drawing
	Title = "Sección Transversal"

	// Margins of the view window around the scene (m)
	ViewMarginX      = 1.0
	ViewMarginBottom = 0.5
	ViewMarginTop    = 2.0
)

// Render builds the cross-section scene of a gallery and its plastic zone.
//
// The circle radius is taken from the result as is; the renderer never
// recomputes design values.
func Render(geometry geomech.GalleryGeometry, result *geomech.DesignResult) (*SectionGeometry, error) {
	if result == nil {
		return nil, &InvalidGeometryError{Shape: "circle", Field: "result", Value: math.NaN()}
	}

	checks := []struct {
		shape, field string
		value        float64
	}{
		{"gallery", "width", geometry.Width},
		{"gallery", "height", geometry.Height},
		{"circle", "radius", result.RadiusPlastic},
	}
	for _, c := range checks {
		if c.value < 0 || math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return nil, &InvalidGeometryError{Shape: c.shape, Field: c.field, Value: c.value}
		}
	}

	w, h := geometry.Width, geometry.Height
	rf := result.RadiusPlastic
	center := Point{X: 0, Y: h / 2}

	scene := &SectionGeometry{
		Title: Title,
		Shapes: []Shape{
			{
				Kind:   ShapeRectangle,
				Origin: Point{X: -w / 2, Y: 0},
				Width:  w,
				Height: h / 2,
				Style:  GalleryStyle,
				Label:  GalleryLabel,
			},
			{
				Kind:       ShapeArc,
				Origin:     center,
				Radius:     w / 2,
				StartAngle: 0,
				EndAngle:   math.Pi,
				Style:      GalleryStyle,
			},
			{
				Kind:   ShapeCircle,
				Origin: center,
				Radius: rf,
				Style:  PlasticStyle,
				Label:  result.PlasticLabel(),
			},
		},
		Bounds: Bounds{
			XMin: -rf - ViewMarginX,
			XMax: rf + ViewMarginX,
			YMin: -ViewMarginBottom,
			YMax: h + ViewMarginTop,
		},
		EqualAspect: true,
	}

	return scene, nil
}
