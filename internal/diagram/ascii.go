package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/section"
)

// Terminal plot size in characters
const (
	PlotWidth  = 60
	PlotHeight = 12
)

// DrawMomentDiagram plots M(x) along the span
func DrawMomentDiagram(p *engine.Profile) string {
	x, m := p.PeakMoment()
	caption := fmt.Sprintf("Bending moment (N·m), peak %.1f at x = %.3f m", m, x)
	return plotLine(p.Moment, caption)
}

// DrawDeflectionDiagram plots the elastic curve, downward deflection below the axis
func DrawDeflectionDiagram(p *engine.Profile) string {
	down := make([]float64, len(p.Deflection))
	for i, v := range p.Deflection {
		down[i] = -v
	}
	x, d := p.PeakDeflection()
	caption := fmt.Sprintf("Deflection (mm), peak %.3f at x = %.3f m", d, x)
	return plotLine(down, caption)
}

func plotLine(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Width(PlotWidth),
		asciigraph.Height(PlotHeight),
		asciigraph.Offset(4),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	) + "\n"
}

// DrawSectionOutline rasterizes the cross-section into a character grid.
// Solid material is shaded, holes are left blank.
func DrawSectionOutline(o section.Outline, widthChars int) string {
	minX, minY, maxX, maxY := o.Bounds()
	w, h := maxX-minX, maxY-minY
	if widthChars < 4 || w <= 0 || h <= 0 {
		return ""
	}
	// terminal cells are roughly twice as tall as wide
	heightChars := max(2, int(math.Round(float64(widthChars)*h/w/2)))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for row := 0; row < heightChars; row++ {
		y := maxY - (float64(row)+0.5)*h/float64(heightChars)
		sb.WriteString("  │")
		for col := 0; col < widthChars; col++ {
			x := minX + (float64(col)+0.5)*w/float64(widthChars)
			if o.Contains(section.Point{X: x, Y: y}) {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("│")
		if row == heightChars/2 {
			sb.WriteString(" ◄─ N.A.")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("  %.1f mm × %.1f mm\n", w, h))
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-fills s to n runes; %-*s counts bytes and misaligns "mm⁴"
func pad(s string, n int) string {
	return s + strings.Repeat(" ", max(0, n-utf8.RuneCountInString(s)))
}
