package geomech

import (
	"encoding/json"
	"os"
)

// DefaultInput returns the values the design form starts with
func DefaultInput() DesignInput {
	return DesignInput{
		Terrain: TerrainParameters{
			Sigma1:  DefaultSigma1,
			Sigma2:  DefaultSigma2,
			SigmaCI: DefaultSigmaCI,
			GammaR:  DefaultGammaR,
		},
		Geometry: GalleryGeometry{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// FieldInfo documents one input field of the design form
type FieldInfo struct {
	Name    string  `json:"name"`
	Symbol  string  `json:"symbol"`
	Unit    string  `json:"unit"`
	Default float64 `json:"default"`
	Help    string  `json:"help"`
}

// Fields lists the input fields in form order
var Fields = []FieldInfo{
	{Name: "sigma1", Symbol: "σ1", Unit: "MPa", Default: DefaultSigma1, Help: "Major principal stress"},
	{Name: "sigma2", Symbol: "σ2", Unit: "MPa", Default: DefaultSigma2, Help: "Minor principal stress"},
	{Name: "sigma_ci", Symbol: "σci", Unit: "MPa", Default: DefaultSigmaCI, Help: "Intact rock strength"},
	{Name: "gamma_r", Symbol: "γr", Unit: "kN/m³", Default: DefaultGammaR, Help: "Rock unit weight"},
	{Name: "width", Symbol: "B", Unit: "m", Default: DefaultWidth, Help: "Gallery width"},
	{Name: "height", Symbol: "H", Unit: "m", Default: DefaultHeight, Help: "Gallery height"},
}

// LoadFromFile reads a design input from a JSON file.
// Fields missing from the file keep their default values.
func LoadFromFile(filepath string) (*DesignInput, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	input := DefaultInput()
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return &input, nil
}
