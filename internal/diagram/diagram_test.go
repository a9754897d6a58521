package diagram

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gorsd/internal/geomech"
	"github.com/alexiusacademia/gorsd/internal/section"
)

func defaultScene(t *testing.T) (*section.SectionGeometry, *geomech.DesignResult) {
	t.Helper()
	in := geomech.DefaultInput()
	res, err := in.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	scene, err := section.Render(in.Geometry, res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return scene, res
}

func TestExportSectionDiagram(t *testing.T) {
	scene, res := defaultScene(t)
	dir := t.TempDir()

	for _, name := range []string{"section.png", "section.svg", "out/section.pdf"} {
		filename := filepath.Join(dir, name)
		if err := ExportSectionDiagram(scene, res.Metrics(), filename); err != nil {
			t.Fatalf("export %s: %v", name, err)
		}
		info, err := os.Stat(filename)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	// Unknown extension falls back to png
	filename := filepath.Join(dir, "section.img")
	if err := ExportSectionDiagram(scene, nil, filename); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(filename + ".png"); err != nil {
		t.Errorf("png fallback not written: %v", err)
	}
}

func TestWriteSectionDiagram(t *testing.T) {
	scene, res := defaultScene(t)

	var buf bytes.Buffer
	if err := WriteSectionDiagram(scene, res.Metrics(), &buf, "SVG"); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an svg document")
	}

	buf.Reset()
	if err := WriteSectionDiagram(scene, nil, &buf, "png"); err != nil {
		t.Fatalf("write png: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a png image")
	}

	if err := WriteSectionDiagram(scene, nil, &buf, "bmp"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if err := WriteSectionDiagram(nil, nil, &buf, "png"); err == nil {
		t.Error("expected error for nil scene")
	}
}

func TestFitBounds(t *testing.T) {
	b := section.Bounds{XMin: -4, XMax: 4, YMin: -0.5, YMax: 6}

	wide := fitBounds(b, 0.5)
	if math.Abs(wide.Height()/wide.Width()-0.5) > 1e-12 {
		t.Errorf("ratio = %v, want 0.5", wide.Height()/wide.Width())
	}
	if wide.YMin != b.YMin || wide.YMax != b.YMax {
		t.Errorf("height changed: %+v", wide)
	}

	tall := fitBounds(b, 2)
	if math.Abs(tall.Height()/tall.Width()-2) > 1e-12 {
		t.Errorf("ratio = %v, want 2", tall.Height()/tall.Width())
	}
	if tall.XMin != b.XMin || tall.XMax != b.XMax {
		t.Errorf("width changed: %+v", tall)
	}
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#008000")
	if err != nil {
		t.Fatalf("parseColor: %v", err)
	}
	r, g, b, a := c.RGBA()
	if r != 0 || g>>8 != 0x80 || b != 0 || a>>8 != 0xff {
		t.Errorf("got %v %v %v %v", r, g, b, a)
	}

	if _, err := parseColor("green"); err == nil {
		t.Error("expected error for named color")
	}
}

func TestDrawASCIISection(t *testing.T) {
	scene, _ := defaultScene(t)
	out := DrawASCIISection(scene, 60)

	for _, want := range []string{"SECCIÓN TRANSVERSAL", "Galería", "Rf = 2.98m", string(outlineRune), string(dashRune), string(centerRune)} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q", want)
		}
	}

	// Every grid row has the same width
	var width int
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "  │") {
			continue
		}
		n := utf8.RuneCountInString(line)
		if width == 0 {
			width = n
		}
		if n != width {
			t.Fatalf("row width %d, want %d: %q", n, width, line)
		}
	}
	if width != 64 {
		t.Errorf("row width = %d, want 64", width)
	}

	if DrawASCIISection(nil, 60) != "" {
		t.Error("nil scene should draw nothing")
	}
}

func TestDrawASCIISectionSingleBoundary(t *testing.T) {
	scene, _ := defaultScene(t)
	out := DrawASCIISection(scene, 60)

	// The arch springing line is not an edge of the excavation
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "  │") || !strings.ContainsRune(line, centerRune) {
			continue
		}
		if n := strings.Count(line, string(outlineRune)); n > 4 {
			t.Errorf("springing row has %d outline cells: %q", n, line)
		}
	}

	if !strings.Contains(out, "Excavation area: 14.28 m²") {
		t.Errorf("area line missing:\n%s", out)
	}
}

func TestDrawASCIISectionTallGallery(t *testing.T) {
	in := geomech.DefaultInput()
	in.Geometry = geomech.GalleryGeometry{Width: 0.01, Height: 1e5}
	res, err := in.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	scene, err := section.Render(in.Geometry, res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := DrawASCIISection(scene, 60)

	var rows int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  │") {
			rows++
		}
	}
	if rows != 60 {
		t.Errorf("got %d grid rows, want 60", rows)
	}
	if len(out) > 64*1024 {
		t.Errorf("diagram is %d bytes", len(out))
	}
	if !strings.ContainsRune(out, outlineRune) {
		t.Error("gallery outline not drawn")
	}
}

func TestDensify(t *testing.T) {
	line := []section.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}

	pts := densify(line, 1, 100)
	if len(pts) != 11 {
		t.Fatalf("got %d points, want 11", len(pts))
	}
	for i := 1; i < len(pts); i++ {
		if d := pts[i].X - pts[i-1].X; math.Abs(d-1) > 1e-12 {
			t.Errorf("spacing %v at %d", d, i)
		}
	}

	if got := len(densify(line, 1e-9, 50)); got != 51 {
		t.Errorf("capped segment has %d points, want 51", got)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULTADOS", []string{"Sexc = 0.85 m", "σmax = 80.00 MPa"})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	width := utf8.RuneCountInString(lines[0])
	for _, line := range lines {
		if utf8.RuneCountInString(line) != width {
			t.Errorf("misaligned line %q", line)
		}
	}
}

func TestDrawSensitivity(t *testing.T) {
	points, err := geomech.Sweep(geomech.DefaultInput(), 20, 60, 9)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	out, err := DrawSensitivity(points, "rf")
	if err != nil {
		t.Fatalf("DrawSensitivity: %v", err)
	}
	if !strings.Contains(out, "rf vs σ1 from 20.0 to 60.0 MPa") {
		t.Errorf("caption missing:\n%s", out)
	}

	if _, err := DrawSensitivity(points, "bogus"); err == nil {
		t.Error("expected error for unknown quantity")
	}
	if _, err := DrawSensitivity(points[:1], "rf"); err == nil {
		t.Error("expected error for a single point")
	}
}
