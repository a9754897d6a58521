package report

import (
	"time"

	"github.com/alexiusacademia/gorsd/internal/geomech"
)

// Title printed on every report
const Title = "GeoMinería Pro - Diseño de Sostenimiento"

// DegenerateNote explains a negative excavation displacement
const DegenerateNote = "Sexc < 0: the plastic zone lies inside the equivalent radius. " +
	"Values are reported unchanged; review the stress and strength inputs."

// Document is the content of a design report
type Document struct {
	Project string
	Author  string
	Date    time.Time

	Input  geomech.DesignInput
	Result *geomech.DesignResult

	// Diagram is an optional PNG of the cross-section
	Diagram []byte
}

// row is one line of a parameter table
type row struct {
	Label  string
	Symbol string
	Value  float64
	Unit   string
	Text   string
}

func inputRows(in geomech.DesignInput) []row {
	values := map[string]float64{
		"sigma1":   in.Terrain.Sigma1,
		"sigma2":   in.Terrain.Sigma2,
		"sigma_ci": in.Terrain.SigmaCI,
		"gamma_r":  in.Terrain.GammaR,
		"width":    in.Geometry.Width,
		"height":   in.Geometry.Height,
	}

	rows := make([]row, 0, len(geomech.Fields))
	for _, f := range geomech.Fields {
		rows = append(rows, row{Label: f.Help, Symbol: f.Name, Value: values[f.Name], Unit: f.Unit})
	}
	return rows
}

func resultRows(res *geomech.DesignResult) []row {
	rows := []row{
		{Label: "Maximum tangential stress", Symbol: "sigma_max", Value: res.SigmaMax, Unit: "MPa"},
		{Label: "Gallery area", Symbol: "A", Value: res.Area, Unit: "m²"},
		{Label: "Equivalent radius", Symbol: "a", Value: res.RadiusEquivalent, Unit: "m"},
		{Label: "Plastic zone radius", Symbol: "Rf", Value: res.RadiusPlastic, Unit: "m"},
	}
	for _, m := range res.Metrics() {
		rows = append(rows, row{Label: m.Label, Symbol: m.Symbol, Value: m.Value, Unit: m.Unit, Text: m.Text()})
	}
	return rows
}

func (d Document) date() time.Time {
	if d.Date.IsZero() {
		return time.Now()
	}
	return d.Date
}
