package section

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/alexiusacademia/gorsd/internal/geomech"
)

func defaultScene(t *testing.T) (*SectionGeometry, *geomech.DesignResult) {
	t.Helper()
	in := geomech.DefaultInput()
	res, err := in.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	scene, err := Render(in.Geometry, res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return scene, res
}

func TestRenderDefault(t *testing.T) {
	scene, res := defaultScene(t)

	if len(scene.Shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(scene.Shapes))
	}

	rect := scene.Shapes[0]
	if rect.Kind != ShapeRectangle || rect.Origin != (Point{X: -2, Y: 0}) || rect.Width != 4 || rect.Height != 2 {
		t.Errorf("unexpected rectangle %+v", rect)
	}
	if rect.Style.Fill {
		t.Error("gallery outline must not be filled")
	}

	arc := scene.Shapes[1]
	if arc.Kind != ShapeArc || arc.Origin != (Point{X: 0, Y: 2}) || arc.Radius != 2 || arc.StartAngle != 0 || arc.EndAngle != math.Pi {
		t.Errorf("unexpected arc %+v", arc)
	}
	if arc.Style != rect.Style {
		t.Errorf("arc style %+v differs from rectangle %+v", arc.Style, rect.Style)
	}

	circle, ok := scene.PlasticZone()
	if !ok {
		t.Fatal("no plastic zone circle")
	}
	if circle.Radius != res.RadiusPlastic {
		t.Errorf("circle radius = %v, want exactly %v", circle.Radius, res.RadiusPlastic)
	}
	if circle.Origin != (Point{X: 0, Y: 2}) {
		t.Errorf("circle centre = %+v", circle.Origin)
	}
	if circle.Style.LineStyle != LineDashed {
		t.Errorf("circle line style = %q, want dashed", circle.Style.LineStyle)
	}
	if circle.Label != "Rf = 2.98m" {
		t.Errorf("circle label = %q", circle.Label)
	}

	want := Bounds{XMin: -res.RadiusPlastic - 1, XMax: res.RadiusPlastic + 1, YMin: -0.5, YMax: 6}
	if scene.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", scene.Bounds, want)
	}
	if !scene.EqualAspect {
		t.Error("equal aspect not requested")
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, _ := defaultScene(t)
	b, _ := defaultScene(t)
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated renders differ")
	}
}

func TestRenderInvalid(t *testing.T) {
	good := geomech.GalleryGeometry{Width: 4, Height: 4}
	tests := []struct {
		name     string
		geometry geomech.GalleryGeometry
		result   *geomech.DesignResult
		field    string
	}{
		{"nil result", good, nil, "result"},
		{"negative radius", good, &geomech.DesignResult{RadiusPlastic: -0.5}, "radius"},
		{"nan radius", good, &geomech.DesignResult{RadiusPlastic: math.NaN()}, "radius"},
		{"negative width", geomech.GalleryGeometry{Width: -1, Height: 4}, &geomech.DesignResult{RadiusPlastic: 3}, "width"},
		{"infinite height", geomech.GalleryGeometry{Width: 4, Height: math.Inf(1)}, &geomech.DesignResult{RadiusPlastic: 3}, "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := Render(tt.geometry, tt.result)
			if scene != nil {
				t.Errorf("expected no scene, got %+v", scene)
			}
			var geomErr *InvalidGeometryError
			if !errors.As(err, &geomErr) {
				t.Fatalf("expected InvalidGeometryError, got %v", err)
			}
			if geomErr.Field != tt.field {
				t.Errorf("field = %q, want %q", geomErr.Field, tt.field)
			}
		})
	}
}

func TestRenderZeroRadius(t *testing.T) {
	in := geomech.DefaultInput()
	in.Geometry.Width = 0
	res, err := in.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	scene, err := Render(in.Geometry, res)
	if err != nil {
		t.Fatalf("zero radius must render: %v", err)
	}
	if scene.Bounds.XMin != -1 || scene.Bounds.XMax != 1 {
		t.Errorf("bounds = %+v", scene.Bounds)
	}
}
