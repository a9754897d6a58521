package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorsd/internal/geomech"
	"github.com/spf13/cobra"
)

// inputFlags binds the design input to command flags
type inputFlags struct {
	file  string
	input geomech.DesignInput
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	d := geomech.DefaultInput()
	flags := cmd.Flags()

	flags.StringVarP(&f.file, "file", "f", "", "Path to design input JSON file")

	// Terrain flags
	flags.Float64Var(&f.input.Terrain.Sigma1, "sigma1", d.Terrain.Sigma1, "Major principal stress σ1 (MPa)")
	flags.Float64Var(&f.input.Terrain.Sigma2, "sigma2", d.Terrain.Sigma2, "Minor principal stress σ2 (MPa)")
	flags.Float64Var(&f.input.Terrain.SigmaCI, "sigma-ci", d.Terrain.SigmaCI, "Intact rock strength σci (MPa)")
	flags.Float64Var(&f.input.Terrain.GammaR, "gamma-r", d.Terrain.GammaR, "Rock unit weight γr (kN/m³)")

	// Geometry flags
	flags.Float64VarP(&f.input.Geometry.Width, "width", "b", d.Geometry.Width, "Gallery width (m)")
	flags.Float64Var(&f.input.Geometry.Height, "height", d.Geometry.Height, "Gallery height (m)")
}

// resolve returns the file input, if any, with explicitly set flags applied on top
func (f *inputFlags) resolve(cmd *cobra.Command) (geomech.DesignInput, error) {
	if f.file == "" {
		return f.input, nil
	}

	in, err := geomech.LoadFromFile(f.file)
	if err != nil {
		return geomech.DesignInput{}, fmt.Errorf("loading %s: %w", f.file, err)
	}

	overrides := []struct {
		flag string
		dst  *float64
		src  float64
	}{
		{"sigma1", &in.Terrain.Sigma1, f.input.Terrain.Sigma1},
		{"sigma2", &in.Terrain.Sigma2, f.input.Terrain.Sigma2},
		{"sigma-ci", &in.Terrain.SigmaCI, f.input.Terrain.SigmaCI},
		{"gamma-r", &in.Terrain.GammaR, f.input.Terrain.GammaR},
		{"width", &in.Geometry.Width, f.input.Geometry.Width},
		{"height", &in.Geometry.Height, f.input.Geometry.Height},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = o.src
		}
	}

	return *in, nil
}
