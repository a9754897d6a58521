package geomech

import (
	"fmt"
	"math"
)

// TerrainParameters holds the in-situ stress field and the rock properties
type TerrainParameters struct {
	Sigma1  float64 `json:"sigma1"`   // Major principal stress (MPa)
	Sigma2  float64 `json:"sigma2"`   // Minor principal stress (MPa)
	SigmaCI float64 `json:"sigma_ci"` // Uniaxial compressive strength of intact rock (MPa)
	GammaR  float64 `json:"gamma_r"`  // Unit weight of rock (kN/m³)
}

// GalleryGeometry describes the excavation cross-section: a rectangle of
// height Height/2 topped by a semicircular arch of radius Width/2
type GalleryGeometry struct {
	Width  float64 `json:"width"`  // m
	Height float64 `json:"height"` // m
}

// DesignInput groups everything a single calculation needs
type DesignInput struct {
	Terrain  TerrainParameters `json:"terrain"`
	Geometry GalleryGeometry   `json:"geometry"`
}

// DesignResult holds the derived support design parameters
type DesignResult struct {
	SigmaMax float64 `json:"sigma_max"` // Maximum tangential stress (MPa)
	Area     float64 `json:"area"`      // Gallery cross-section area (m²)

	RadiusEquivalent float64 `json:"radius_equivalent"` // a (m)
	RadiusPlastic    float64 `json:"radius_plastic"`    // Rf (m)

	ExcavationDisplacement float64 `json:"excavation_displacement"` // Sexc (m)
	BoltLoadWeight         float64 `json:"bolt_load_weight"`        // P (t)
	BoltLengthMin          float64 `json:"bolt_length_min"`         // Lp (m)

	// Degenerate is set when the plastic zone lies inside the equivalent
	// radius (Sexc < 0). The values are reported unchanged.
	Degenerate bool `json:"degenerate"`
}

// Metric is a formatted design value shown to the user
type Metric struct {
	Symbol    string  `json:"symbol"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Precision int     `json:"precision"`
}

// Text formats the value with its display precision and unit
func (m Metric) Text() string {
	return fmt.Sprintf("%.*f %s", m.Precision, m.Value, m.Unit)
}

// Metrics returns the three headline results: Sexc, P and Lp
func (r *DesignResult) Metrics() []Metric {
	return []Metric{
		{Symbol: "Sexc", Label: "Excavation displacement", Value: r.ExcavationDisplacement, Unit: "m", Precision: 2},
		{Symbol: "P", Label: "Bolt load weight", Value: r.BoltLoadWeight, Unit: "t", Precision: 1},
		{Symbol: "Lp", Label: "Minimum bolt length", Value: r.BoltLengthMin, Unit: "m", Precision: 2},
	}
}

// PlasticLabel is the annotation drawn next to the plastic zone circle
func (r *DesignResult) PlasticLabel() string {
	return fmt.Sprintf("Rf = %.2fm", r.RadiusPlastic)
}

// InvalidInputError reports an input that violates a precondition
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// NumericDomainError reports an intermediate value outside the real domain
type NumericDomainError struct {
	Quantity string
	Value    float64
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("%s out of domain: %g", e.Quantity, e.Value)
}

// Validate checks the preconditions of Compute
func (in DesignInput) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"sigma1", in.Terrain.Sigma1},
		{"sigma2", in.Terrain.Sigma2},
		{"sigma_ci", in.Terrain.SigmaCI},
		{"gamma_r", in.Terrain.GammaR},
		{"width", in.Geometry.Width},
		{"height", in.Geometry.Height},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidInputError{Field: f.name, Reason: "must be a finite number"}
		}
	}

	if in.Terrain.SigmaCI <= 0 {
		return &InvalidInputError{Field: "sigma_ci", Reason: "must be positive"}
	}
	if in.Geometry.Width < 0 {
		return &InvalidInputError{Field: "width", Reason: "must not be negative"}
	}
	if in.Geometry.Height < 0 {
		return &InvalidInputError{Field: "height", Reason: "must not be negative"}
	}
	if in.Terrain.GammaR < 0 {
		return &InvalidInputError{Field: "gamma_r", Reason: "must not be negative"}
	}
	return nil
}

// Value looks up a result quantity by its short name
// (sigma_max, a, rf, sexc, p, lp), case sensitive
func (r *DesignResult) Value(name string) (float64, error) {
	switch name {
	case "sigma_max":
		return r.SigmaMax, nil
	case "a":
		return r.RadiusEquivalent, nil
	case "rf":
		return r.RadiusPlastic, nil
	case "sexc":
		return r.ExcavationDisplacement, nil
	case "p":
		return r.BoltLoadWeight, nil
	case "lp":
		return r.BoltLengthMin, nil
	}
	return 0, &InvalidInputError{Field: "metric", Reason: fmt.Sprintf("unknown quantity %q", name)}
}
