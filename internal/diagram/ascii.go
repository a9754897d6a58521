package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gorsd/internal/section"
)

// Terminal cells are about twice as tall as they are wide
const cellAspect = 2.0

// Grid limits
const (
	minCols       = 10
	maxCols       = 400
	minRows       = 5
	maxRowsPerCol = 1
)

const outlineAreaSamples = 1000

const (
	outlineRune = '█'
	dashRune    = '·'
	centerRune  = '+'
)

// DrawASCIISection rasterises the cross-section into a character grid
// cols characters wide, followed by a legend of the labelled shapes.
// Scenes taller than maxRowsPerCol·cols are drawn in a wider window.
func DrawASCIISection(scene *section.SectionGeometry, cols int) string {
	if scene == nil {
		return ""
	}
	if cols < minCols {
		cols = minCols
	}
	if cols > maxCols {
		cols = maxCols
	}

	b := scene.Bounds
	rows := cols / 2
	if b.Width() > 0 {
		rows = int(math.Round(float64(cols) * b.Height() / b.Width() / cellAspect))
	}
	if rows < minRows {
		rows = minRows
	}
	if maxRows := maxRowsPerCol * cols; rows > maxRows {
		rows = maxRows
	}
	if scene.EqualAspect {
		b = fitBounds(b, float64(rows)*cellAspect/float64(cols))
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	plotRune := func(p section.Point, r rune) {
		if !b.Contains(p) {
			return
		}
		col := int(math.Round((p.X - b.XMin) / b.Width() * float64(cols-1)))
		row := int(math.Round((b.YMax - p.Y) / b.Height() * float64(rows-1)))
		grid[row][col] = r
	}

	// Half a cell between samples, at most maxSegment samples per segment
	step := math.Min(b.Width()/float64(cols), b.Height()/float64(rows)) / 2
	maxSegment := 2 * (cols + rows)
	paths := scene.Paths(section.DefaultSamples)

	// Dashed paths first so the gallery outline stays on top
	for _, path := range paths {
		if path.Style.LineStyle != section.LineDashed {
			continue
		}
		for i, p := range densify(path.Points, step, maxSegment) {
			if (i/4)%2 == 0 {
				plotRune(p, dashRune)
			}
		}
	}
	for _, path := range paths {
		if path.Style.LineStyle == section.LineDashed {
			continue
		}
		for _, p := range densify(path.Points, step, maxSegment) {
			plotRune(p, outlineRune)
		}
	}
	if circle, ok := scene.PlasticZone(); ok {
		plotRune(circle.Origin, centerRune)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(scene.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", utf8.RuneCountInString(scene.Title))))
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for _, line := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(line)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	for _, shape := range scene.Shapes {
		if shape.Label == "" {
			continue
		}
		mark := string([]rune{outlineRune, outlineRune, outlineRune})
		if shape.Style.LineStyle == section.LineDashed {
			mark = string([]rune{dashRune, dashRune, dashRune})
		}
		sb.WriteString(fmt.Sprintf("  %s = %s\n", mark, shape.Label))
	}
	sb.WriteString(fmt.Sprintf("  %c   = Plastic zone centre\n", centerRune))
	if area := scene.OutlineArea(outlineAreaSamples); area > 0 {
		sb.WriteString(fmt.Sprintf("  Excavation area: %.2f m²\n", area))
	}
	sb.WriteString(fmt.Sprintf("  Window: x [%.2f, %.2f] m, y [%.2f, %.2f] m\n", b.XMin, b.XMax, b.YMin, b.YMax))

	return sb.String()
}

// densify resamples a polyline so consecutive points are at most step
// apart, capping every segment at limit points
func densify(pts []section.Point, step float64, limit int) []section.Point {
	if len(pts) < 2 || !(step > 0) {
		return pts
	}
	out := make([]section.Point, 0, len(pts))
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		n := int(math.Ceil(math.Hypot(b.X-a.X, b.Y-a.Y) / step))
		if n < 1 {
			n = 1
		}
		if n > limit {
			n = limit
		}
		for k := 0; k < n; k++ {
			t := float64(k) / float64(n)
			out = append(out, section.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
		}
	}
	return append(out, pts[len(pts)-1])
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
