package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	names := []string{}
	for _, p := range c.List() {
		require.NoError(t, p.Validate(), p.Name)
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"aluminum", "steel", "wood"}, names)

	steel, err := c.Lookup("Steel")
	require.NoError(t, err)
	assert.Equal(t, 200.0, steel.ElasticModulus)

	_, err = c.Lookup("titanium")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestCatalogAdd(t *testing.T) {
	var c Catalog
	require.NoError(t, c.Add(Properties{Name: " Titanium ", ElasticModulus: 114, YieldStrength: 880, Density: 4430}))
	p, err := c.Lookup("titanium")
	require.NoError(t, err)
	assert.Equal(t, "titanium", p.Name)

	err = c.Add(Properties{Name: "bad", ElasticModulus: 0, YieldStrength: 10})
	assert.ErrorIs(t, err, ErrInvalidMaterial)

	err = c.Add(Properties{ElasticModulus: 1, YieldStrength: 1})
	assert.ErrorIs(t, err, ErrInvalidMaterial)
}

func TestValidate(t *testing.T) {
	bad := []Properties{
		{ElasticModulus: -200, YieldStrength: 250},
		{ElasticModulus: math.NaN(), YieldStrength: 250},
		{ElasticModulus: 200, YieldStrength: 0},
		{ElasticModulus: 200, YieldStrength: 250, Density: -1},
	}
	for _, p := range bad {
		assert.ErrorIs(t, p.Validate(), ErrInvalidMaterial, "%#v", p)
	}

	p, err := Custom(210, 355, 0)
	require.NoError(t, err)
	assert.Equal(t, "custom", p.Name)

	_, err = Custom(0, 355, 0)
	assert.ErrorIs(t, err, ErrInvalidMaterial)
}
