package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/load"
	"github.com/alexiusacademia/gobend/internal/material"
	"github.com/alexiusacademia/gobend/internal/section"
)

func profile(t *testing.T) *engine.Profile {
	t.Helper()
	p, err := engine.SampleProfile(engine.Case{
		Geometry: section.Rectangular{Width: 50, Height: 100},
		Load:     load.Point{Magnitude: 10000, Position: 1.5},
		Material: material.Steel,
		Span:     3,
		Support:  load.SimplySupported,
	}, engine.DefaultStations)
	require.NoError(t, err)
	return p
}

func TestDrawDiagrams(t *testing.T) {
	p := profile(t)

	m := DrawMomentDiagram(p)
	assert.Contains(t, m, "Bending moment (N·m)")
	assert.Contains(t, m, "7500.0")

	d := DrawDeflectionDiagram(p)
	assert.Contains(t, d, "Deflection (mm)")
	assert.Greater(t, strings.Count(d, "\n"), PlotHeight)
}

func TestDrawSectionOutline(t *testing.T) {
	o, err := section.HollowRectangular{OuterWidth: 50, OuterHeight: 100, WallThickness: 10}.Outline()
	require.NoError(t, err)
	s := DrawSectionOutline(o, 20)

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	// 20 wide, 100/50 tall, halved for the cell aspect
	require.Len(t, lines, 2+20+1)
	mid := lines[11]
	assert.True(t, strings.HasPrefix(mid, "  │████    "), "walls then void: %q", mid)
	assert.Contains(t, s, "50.0 mm × 100.0 mm")

	assert.Empty(t, DrawSectionOutline(section.Outline{}, 20))
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("Section", []string{"I = 4166666.67 mm⁴", "S = 83333.33 mm³"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 5)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "%q", l)
	}
}

func TestExportImages(t *testing.T) {
	dir := t.TempDir()
	p := profile(t)

	require.NoError(t, ExportMomentDiagram(p, filepath.Join(dir, "moment.png")))
	require.NoError(t, ExportDeflectionDiagram(p, filepath.Join(dir, "out", "deflection.svg")))

	o, err := section.IBeam{Height: 200, FlangeWidth: 100, FlangeThickness: 10, WebThickness: 6}.Outline()
	require.NoError(t, err)
	require.NoError(t, ExportSectionDiagram(o, "I-Beam", filepath.Join(dir, "section")))

	for _, name := range []string{"moment.png", "out/deflection.svg", "section.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}
