package casefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobend/internal/engine"
)

const yamlCases = `
units: metric
support: simply_supported
cases:
  - name: joist
    section: rectangular
    section_params: {width: 50, height: 100}
    load: distributed
    load_params: {intensity: 5000}
    material: {name: steel}
    span: 3
  - section: circular
    section_params: {diameter: 100}
    load: point
    load_params: {magnitude: 1000, position: 2}
    material: {name: aluminum}
    span: 2
    support: cantilever
`

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCases), 0o644))

	f, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, f.Cases, 2)

	joist := f.Cases[0]
	assert.Equal(t, "joist", joist.Name)
	assert.Equal(t, "metric", joist.Units)
	assert.Equal(t, "simply_supported", joist.Support)
	assert.Equal(t, 100.0, joist.SectionParams["height"])

	r, err := engine.Analyze(joist.Request)
	require.NoError(t, err)
	assert.InDelta(t, 5625, r.MaxBendingMoment, 1e-9)

	second := f.Cases[1]
	assert.Equal(t, "case 2", second.Name)
	assert.Equal(t, "cantilever", second.Support)
}

func TestParseSingleJSON(t *testing.T) {
	data := []byte(`{
		"section": "i_beam",
		"section_params": {"height": 200, "flange_width": 100, "flange_thickness": 10, "web_thickness": 6},
		"load": "moment",
		"load_params": {"magnitude": 15000},
		"material": {"elastic_modulus": 200, "yield_strength": 250},
		"span": 3,
		"units": "metric"
	}`)
	f, err := Parse(data, "json")
	require.NoError(t, err)
	require.Len(t, f.Cases, 1)
	assert.Equal(t, "i_beam", f.Cases[0].Section)

	r, err := engine.Analyze(f.Cases[0].Request)
	require.NoError(t, err)
	assert.InDelta(t, 15000, r.MaxBendingMoment, 1e-9)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{}`), "json")
	assert.ErrorIs(t, err, ErrNoCases)

	_, err = Parse([]byte(`section: rectangular`), "toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Parse([]byte(`{"cases": [`), "json")
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "yaml", Format("a/b.YML"))
	assert.Equal(t, "yaml", Format("b.yaml"))
	assert.Equal(t, "json", Format("b.json"))
	assert.Equal(t, "", Format("b.xlsx"))
}
