package geomech

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.json")
	data := `{"terrain": {"sigma1": 40, "sigma_ci": 95}, "geometry": {"width": 3.5}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	in, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if in.Terrain.Sigma1 != 40 || in.Terrain.SigmaCI != 95 || in.Geometry.Width != 3.5 {
		t.Errorf("file values not applied: %+v", in)
	}
	if in.Terrain.Sigma2 != DefaultSigma2 || in.Terrain.GammaR != DefaultGammaR || in.Geometry.Height != DefaultHeight {
		t.Errorf("defaults not kept: %+v", in)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.json")
	if err := os.WriteFile(path, []byte(`{"terrain": {"sigma_ci": 0}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromFile(path)
	var inputErr *InvalidInputError
	if !errors.As(err, &inputErr) || inputErr.Field != "sigma_ci" {
		t.Fatalf("expected sigma_ci InvalidInputError, got %v", err)
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFieldsMatchDefaults(t *testing.T) {
	in := DefaultInput()
	want := map[string]float64{
		"sigma1":   in.Terrain.Sigma1,
		"sigma2":   in.Terrain.Sigma2,
		"sigma_ci": in.Terrain.SigmaCI,
		"gamma_r":  in.Terrain.GammaR,
		"width":    in.Geometry.Width,
		"height":   in.Geometry.Height,
	}
	if len(Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(Fields), len(want))
	}
	for _, f := range Fields {
		if f.Default != want[f.Name] {
			t.Errorf("%s default = %v, want %v", f.Name, f.Default, want[f.Name])
		}
	}
}
