package section

import (
	"math"
	"testing"
)

func TestOutlineMatchesGalleryArea(t *testing.T) {
	scene, res := defaultScene(t)

	outline := scene.Outline(2000)
	if len(outline) != 2003 {
		t.Fatalf("got %d outline points, want 2003", len(outline))
	}
	first, last := outline[0], outline[len(outline)-1]
	if first != last {
		t.Errorf("outline not closed: %+v != %+v", first, last)
	}

	area, cx, _ := PolygonArea(outline)
	if math.Abs(area-res.Area) > 1e-3 {
		t.Errorf("outline area = %.5f, want %.5f", area, res.Area)
	}
	if math.Abs(cx) > 1e-9 {
		t.Errorf("outline centroid x = %v, want 0", cx)
	}
}

func TestPaths(t *testing.T) {
	scene, res := defaultScene(t)

	paths := scene.Paths(DefaultSamples)
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want gallery and plastic zone", len(paths))
	}

	gallery := paths[0]
	if gallery.Label != GalleryLabel || gallery.Style != GalleryStyle {
		t.Errorf("gallery path = %q %+v", gallery.Label, gallery.Style)
	}
	if len(gallery.Points) != DefaultSamples+3 {
		t.Errorf("gallery path has %d points, want %d", len(gallery.Points), DefaultSamples+3)
	}
	if math.Abs(scene.OutlineArea(2000)-res.Area) > 1e-3 {
		t.Errorf("outline area = %.5f, want %.5f", scene.OutlineArea(2000), res.Area)
	}

	zone := paths[1]
	if zone.Style != PlasticStyle || zone.Label != res.PlasticLabel() {
		t.Errorf("plastic zone path = %q %+v", zone.Label, zone.Style)
	}

	// No springing edge: only the two wall tops lie on y = h/2
	var onSpringing int
	for _, p := range gallery.Points {
		if math.Abs(p.Y-2) < 1e-9 {
			onSpringing++
		}
	}
	if onSpringing != 2 {
		t.Errorf("%d boundary points on the springing line, want 2", onSpringing)
	}
}

func TestPolygonArea(t *testing.T) {
	square := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	area, cx, cy := PolygonArea(square)
	if area != 4 || cx != 1 || cy != 1 {
		t.Errorf("square: area=%v centroid=(%v, %v)", area, cx, cy)
	}

	// Clockwise order gives the same area and centroid
	cw := []Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	area, cx, cy = PolygonArea(cw)
	if area != 4 || cx != 1 || cy != 1 {
		t.Errorf("clockwise square: area=%v centroid=(%v, %v)", area, cx, cy)
	}

	if area, _, _ := PolygonArea(square[:2]); area != 0 {
		t.Errorf("degenerate polygon area = %v", area)
	}
}

func TestShapePoints(t *testing.T) {
	circle := Shape{Kind: ShapeCircle, Origin: Point{X: 1, Y: 2}, Radius: 3}
	pts := circle.Points(DefaultSamples)
	if len(pts) != DefaultSamples {
		t.Fatalf("got %d points", len(pts))
	}
	for i, p := range pts {
		d := math.Hypot(p.X-1, p.Y-2)
		if math.Abs(d-3) > 1e-12 {
			t.Fatalf("point %d at distance %v from centre", i, d)
		}
	}

	arc := Shape{Kind: ShapeArc, Radius: 2, StartAngle: 0, EndAngle: math.Pi}
	pts = arc.Points(3)
	if math.Abs(pts[1].X) > 1e-12 || math.Abs(pts[1].Y-2) > 1e-12 {
		t.Errorf("arc midpoint = %+v, want (0, 2)", pts[1])
	}

	rect := Shape{Kind: ShapeRectangle, Origin: Point{X: -1}, Width: 2, Height: 1}
	if got := len(rect.Points(DefaultSamples)); got != 5 {
		t.Errorf("rectangle has %d points, want 5", got)
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{XMin: -3, XMax: 3, YMin: -0.5, YMax: 6}
	if b.Width() != 6 || b.Height() != 6.5 {
		t.Errorf("size = %v x %v", b.Width(), b.Height())
	}
	if !b.Contains(Point{X: 0, Y: 0}) || b.Contains(Point{X: 4, Y: 0}) {
		t.Error("Contains")
	}
}
