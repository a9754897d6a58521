package section

import "fmt"

// Point represents a 2D coordinate in the section plane.
// X is horizontal with the origin on the gallery axis, Y points upward
// with the origin on the gallery floor. Units are metres.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ShapeKind identifies a drawing primitive
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeArc       ShapeKind = "arc"
	ShapeCircle    ShapeKind = "circle"
)

// LineStyle of a shape outline
type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDashed LineStyle = "dashed"
)

// Style holds the display attributes of a shape
type Style struct {
	Color     string    `json:"color"` // #rrggbb
	LineStyle LineStyle `json:"line_style"`
	LineWidth float64   `json:"line_width"` // points
	Fill      bool      `json:"fill"`
}

// Shape is one primitive of the scene.
//
// For a rectangle, Origin is the lower-left corner and Width/Height its size.
// For arcs and circles, Origin is the centre; arcs span StartAngle to
// EndAngle (radians, counter-clockwise from +X).
type Shape struct {
	Kind   ShapeKind `json:"kind"`
	Origin Point     `json:"origin"`

	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Radius     float64 `json:"radius,omitempty"`
	StartAngle float64 `json:"start_angle,omitempty"`
	EndAngle   float64 `json:"end_angle,omitempty"`

	Style Style  `json:"style"`
	Label string `json:"label,omitempty"`
}

// Bounds is the visible window of the scene
type Bounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// Width of the window
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height of the window
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Contains reports whether p lies inside the window
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// SectionGeometry is a drawing-surface independent description of the
// gallery cross-section and its plastic zone
type SectionGeometry struct {
	Title  string  `json:"title"`
	Shapes []Shape `json:"shapes"`
	Bounds Bounds  `json:"bounds"`

	// EqualAspect requires one unit in X to be drawn as long as one unit in Y
	EqualAspect bool `json:"equal_aspect"`
}

// InvalidGeometryError reports degenerate shape parameters
type InvalidGeometryError struct {
	Shape string
	Field string
	Value float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid %s geometry: %s = %g", e.Shape, e.Field, e.Value)
}
