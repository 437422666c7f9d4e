package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobend/internal/diagram"
	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/section"
	"github.com/alexiusacademia/gobend/internal/units"
)

func request() engine.Request {
	return engine.Request{
		Section:       "rectangular",
		SectionParams: map[string]float64{"width": 50, "height": 100},
		Load:          "distributed",
		LoadParams:    map[string]float64{"intensity": 5000},
		Material:      engine.MaterialInput{Name: "steel"},
		Span:          3,
	}
}

func result(t *testing.T) *engine.Result {
	t.Helper()
	r, err := engine.Analyze(request())
	require.NoError(t, err)
	return r
}

func TestRowsMetric(t *testing.T) {
	r := result(t)
	rows := ResultRows(r, units.Metric)
	assert.Equal(t, "5625.00 N·m", rows[1].String())
	assert.Equal(t, "67.50 MPa", rows[2].String())
	assert.Equal(t, "6.328 mm", rows[3].String())
	assert.Equal(t, "0.270", rows[4].String())
	assert.Equal(t, "39.25 kg/m", rows[5].String())

	s := SectionRows(r, units.Metric)
	assert.Equal(t, "mm⁴", s[0].Unit)
	assert.Equal(t, "5000.00 mm²", s[2].String())
}

func TestRowsImperial(t *testing.T) {
	r := result(t)
	s := SectionRows(r, units.Imperial)
	assert.InDelta(t, r.MomentOfInertia/(25.4*25.4*25.4*25.4), s[0].Value, 1e-9)
	assert.Equal(t, "in⁴", s[0].Unit)

	rows := ResultRows(r, units.Imperial)
	assert.InDelta(t, 67.5/units.MegapascalsPerKsi, rows[2].Value, 1e-9)
	assert.Equal(t, "ksi", rows[2].Unit)
	assert.InDelta(t, 6.328125/25.4, rows[3].Value, 1e-9)

	m := MaterialRows(r, units.Imperial)
	assert.InDelta(t, 200/units.GigapascalsPerKsi, m[0].Value, 1e-6)
}

func TestPropertyRows(t *testing.T) {
	rows := PropertyRows(section.Properties{MomentOfInertia: 1e6, SectionModulus: 2e4, Area: 1200, Depth: 100}, units.Metric)
	require.Len(t, rows, 4)
	assert.Equal(t, "100.00 mm", rows[3].String())

	rows = PropertyRows(section.Properties{Area: 645.16}, units.Imperial)
	require.Len(t, rows, 3)
	assert.Equal(t, "1.00 in²", rows[2].String())
}

func TestWritePDF(t *testing.T) {
	c, err := engine.New(nil).Resolve(request())
	require.NoError(t, err)
	r, err := engine.AnalyzeCase(c)
	require.NoError(t, err)
	p, err := engine.SampleProfile(c, engine.DefaultStations)
	require.NoError(t, err)
	img := filepath.Join(t.TempDir(), "moment.png")
	require.NoError(t, diagram.ExportMomentDiagram(p, img))

	var buf bytes.Buffer
	err = Write(&buf, Report{
		Project: "Garage",
		Author:  "gobend",
		Date:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Units:   units.Metric,
		Result:  r,
		Images:  []string{img},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDFErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Report{}))

	err := Write(&buf, Report{Result: result(t), Images: []string{filepath.Join(t.TempDir(), "missing.png")}})
	assert.Error(t, err)
}
