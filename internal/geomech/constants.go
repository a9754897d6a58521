package geomech

// Empirical constants of the plastic-zone design method.
// They come from the support design charts the method was calibrated
// against and must not be altered.

const (
	// Maximum tangential stress at the boundary of a circular opening
	// (Kirsch solution at the sidewall): σmax = 3σ1 - σ2
	StressConcentration = 3.0

	// Plastic zone radius: Rf = a (0.49 + 1.25 σmax/σci)
	// Empirical fit of the broken-rock radius around the opening.
	PlasticZoneIntercept = 0.49
	PlasticZoneSlope     = 1.25

	// Bolt load: P = γr · B · Sexc · 1.0 / 10
	// The divisor turns kN per metre of gallery into tonnes and the
	// factor is the partial safety factor applied by the method.
	BoltLoadFactor  = 1.0
	BoltLoadDivisor = 10.0

	// Minimum bolt length: Lp = Sexc + 1.0 m of anchorage beyond the plastic zone
	EmbedmentMargin = 1.0
)

// Default input values of the design form (MPa, kN/m³, m)
const (
	DefaultSigma1  = 32.0
	DefaultSigma2  = 16.0
	DefaultSigmaCI = 110.0
	DefaultGammaR  = 27.0
	DefaultWidth   = 4.0
	DefaultHeight  = 4.0
)
