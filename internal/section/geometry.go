package section

import "math"

// DefaultSamples is the number of points used to trace curved outlines
const DefaultSamples = 100

// Points traces the outline of the shape.
// Rectangles return their four corners closed on the first one, arcs and
// circles n samples along the curve (circles are closed).
func (s Shape) Points(n int) []Point {
	if n < 2 {
		n = 2
	}

	switch s.Kind {
	case ShapeRectangle:
		x0, y0 := s.Origin.X, s.Origin.Y
		return []Point{
			{X: x0, Y: y0},
			{X: x0 + s.Width, Y: y0},
			{X: x0 + s.Width, Y: y0 + s.Height},
			{X: x0, Y: y0 + s.Height},
			{X: x0, Y: y0},
		}
	case ShapeArc:
		return arcPoints(s.Origin, s.Radius, s.StartAngle, s.EndAngle, n)
	case ShapeCircle:
		return arcPoints(s.Origin, s.Radius, 0, 2*math.Pi, n)
	}
	return nil
}

func arcPoints(c Point, r, start, end float64, n int) []Point {
	pts := make([]Point, n)
	step := (end - start) / float64(n-1)
	for i := 0; i < n; i++ {
		t := start + float64(i)*step
		pts[i] = Point{X: c.X + r*math.Cos(t), Y: c.Y + r*math.Sin(t)}
	}
	return pts
}

// Find returns the first shape of the given kind
func (g *SectionGeometry) Find(kind ShapeKind) (Shape, bool) {
	for _, s := range g.Shapes {
		if s.Kind == kind {
			return s, true
		}
	}
	return Shape{}, false
}

// PlasticZone returns the plastic zone circle
func (g *SectionGeometry) PlasticZone() (Shape, bool) {
	return g.Find(ShapeCircle)
}

// Outline returns the closed excavation boundary: the floor and walls of
// the rectangle followed by the arch traced with n samples
func (g *SectionGeometry) Outline(n int) []Point {
	rect, ok := g.Find(ShapeRectangle)
	if !ok {
		return nil
	}
	arch, ok := g.Find(ShapeArc)
	if !ok {
		return nil
	}

	x0, y0 := rect.Origin.X, rect.Origin.Y
	pts := []Point{
		{X: x0, Y: y0},
		{X: x0 + rect.Width, Y: y0},
	}
	// Arc starts at the right wall top and ends on the left one
	pts = append(pts, arch.Points(n)...)
	pts = append(pts, Point{X: x0, Y: y0})
	return pts
}

// Path is a polyline ready to be stroked
type Path struct {
	Points []Point
	Style  Style
	Label  string
}

// Paths flattens the scene into the polylines a drawing backend strokes.
// The rectangle and the arch are merged into the single closed boundary
// returned by Outline, drawn with the rectangle's style and label.
func (g *SectionGeometry) Paths(n int) []Path {
	outline := g.Outline(n)

	var paths []Path
	for _, shape := range g.Shapes {
		switch {
		case outline != nil && shape.Kind == ShapeRectangle:
			paths = append(paths, Path{Points: outline, Style: shape.Style, Label: shape.Label})
		case outline != nil && shape.Kind == ShapeArc:
		default:
			paths = append(paths, Path{Points: shape.Points(n), Style: shape.Style, Label: shape.Label})
		}
	}
	return paths
}

// OutlineArea is the area enclosed by the excavation boundary
func (g *SectionGeometry) OutlineArea(n int) float64 {
	area, _, _ := PolygonArea(g.Outline(n))
	return area
}

// PolygonArea computes the area and centroid of a closed polygon using
// the shoelace formula. The closing vertex may be repeated or omitted.
func PolygonArea(vertices []Point) (area, cx, cy float64) {
	n := len(vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
		signedArea += cross
		sumX += (vertices[i].X + vertices[j].X) * cross
		sumY += (vertices[i].Y + vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}
