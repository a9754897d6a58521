package diagram

import (
	"fmt"

	"github.com/alexiusacademia/gorsd/internal/geomech"
	"github.com/guptarohit/asciigraph"
)

// DrawSensitivity plots one result quantity (see geomech.DesignResult.Value)
// against σ1 along a sweep
func DrawSensitivity(points []geomech.SweepPoint, quantity string) (string, error) {
	if len(points) < 2 {
		return "", fmt.Errorf("sensitivity needs at least 2 points, got %d", len(points))
	}

	values := make([]float64, len(points))
	for i, p := range points {
		v, err := p.Result.Value(quantity)
		if err != nil {
			return "", err
		}
		values[i] = v
	}

	first, last := points[0].Sigma1, points[len(points)-1].Sigma1
	caption := fmt.Sprintf("%s vs σ1 from %.1f to %.1f MPa", quantity, first, last)

	return asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	), nil
}
