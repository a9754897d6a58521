package geomech

import "fmt"

// SweepPoint is one evaluation of a sensitivity sweep
type SweepPoint struct {
	Sigma1 float64       `json:"sigma1"`
	Result *DesignResult `json:"result"`
}

// Sweep evaluates the design for steps evenly spaced values of σ1 in
// [from, to], keeping the rest of the input fixed. The first failing
// evaluation aborts the sweep.
func Sweep(in DesignInput, from, to float64, steps int) ([]SweepPoint, error) {
	if steps < 2 {
		return nil, &InvalidInputError{Field: "steps", Reason: "must be at least 2"}
	}
	if to <= from {
		return nil, &InvalidInputError{Field: "to", Reason: "must be greater than from"}
	}

	points := make([]SweepPoint, 0, steps)
	dx := (to - from) / float64(steps-1)
	for i := 0; i < steps; i++ {
		terrain := in.Terrain
		terrain.Sigma1 = from + float64(i)*dx
		if i == steps-1 {
			terrain.Sigma1 = to
		}

		res, err := Compute(terrain, in.Geometry)
		if err != nil {
			return nil, fmt.Errorf("sweep at sigma1=%.3f: %w", terrain.Sigma1, err)
		}
		points = append(points, SweepPoint{Sigma1: terrain.Sigma1, Result: res})
	}

	return points, nil
}
