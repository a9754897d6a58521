package geomech

import "math"

// Compute derives the support design parameters for a gallery.
//
// The gallery is replaced by a circle of equal area (radius a) and the
// plastic zone radius Rf follows from the ratio of the maximum boundary
// stress to the intact rock strength. The rock ring between a and Rf is
// the mass the bolts have to hold.
func Compute(terrain TerrainParameters, geometry GalleryGeometry) (*DesignResult, error) {
	in := DesignInput{Terrain: terrain, Geometry: geometry}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	result := &DesignResult{}

	// σmax = 3σ1 - σ2
	result.SigmaMax = StressConcentration*terrain.Sigma1 - terrain.Sigma2

	// Semicircular arch over a rectangle of height h/2
	r := geometry.Width / 2
	result.Area = math.Pi*r*r/2 + geometry.Width*(geometry.Height/2)
	if result.Area < 0 || !finite(result.Area) {
		return nil, &NumericDomainError{Quantity: "area", Value: result.Area}
	}
	result.RadiusEquivalent = math.Sqrt(result.Area / math.Pi)

	result.RadiusPlastic = result.RadiusEquivalent *
		(PlasticZoneIntercept + PlasticZoneSlope*result.SigmaMax/terrain.SigmaCI)
	if !finite(result.RadiusPlastic) {
		return nil, &NumericDomainError{Quantity: "radius_plastic", Value: result.RadiusPlastic}
	}

	result.ExcavationDisplacement = result.RadiusPlastic - result.RadiusEquivalent
	result.BoltLoadWeight = terrain.GammaR * geometry.Width * result.ExcavationDisplacement * BoltLoadFactor / BoltLoadDivisor
	result.BoltLengthMin = result.ExcavationDisplacement + EmbedmentMargin
	if !finite(result.BoltLoadWeight) {
		return nil, &NumericDomainError{Quantity: "bolt_load_weight", Value: result.BoltLoadWeight}
	}
	if !finite(result.BoltLengthMin) {
		return nil, &NumericDomainError{Quantity: "bolt_length_min", Value: result.BoltLengthMin}
	}

	// Plastic zone inside the opening: reported, not corrected
	result.Degenerate = result.ExcavationDisplacement < 0

	return result, nil
}

// Compute runs the calculation for the input
func (in DesignInput) Compute() (*DesignResult, error) {
	return Compute(in.Terrain, in.Geometry)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
