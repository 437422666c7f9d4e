package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"point":            KindPoint,
		"point-load":       KindPoint,
		"Distributed-Load": KindDistributed,
		"udl":              KindDistributed,
		"moment":           KindMoment,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("torsion")
	assert.ErrorIs(t, err, ErrUnknownLoad)
}

func TestParseSupport(t *testing.T) {
	s, err := ParseSupport("")
	require.NoError(t, err)
	assert.Equal(t, SimplySupported, s)

	s, err = ParseSupport("simply-supported")
	require.NoError(t, err)
	assert.Equal(t, SimplySupported, s)

	s, err = ParseSupport("Cantilever")
	require.NoError(t, err)
	assert.Equal(t, Cantilever, s)

	_, err = ParseSupport("fixed-fixed")
	assert.ErrorIs(t, err, ErrUnknownSupport)
}

func TestFromParams(t *testing.T) {
	c, err := FromParams(KindPoint, map[string]float64{"force": 10000, "distance": 1})
	require.NoError(t, err)
	assert.Equal(t, Point{Magnitude: 10000, Position: 1}, c)

	c, err = FromParams(KindDistributed, map[string]float64{"loadIntensity": 5000})
	require.NoError(t, err)
	assert.Equal(t, Distributed{Intensity: 5000}, c)

	c, err = FromParams(KindMoment, map[string]float64{"moment": 15000})
	require.NoError(t, err)
	assert.Equal(t, Moment{Magnitude: 15000}, c)

	_, err = FromParams(KindPoint, map[string]float64{"magnitude": 1})
	assert.ErrorIs(t, err, ErrIncompleteLoadCase)

	_, err = FromParams(Kind("wind"), nil)
	assert.ErrorIs(t, err, ErrUnknownLoad)
}

func TestFromParamsDuplicateField(t *testing.T) {
	for range 20 {
		_, err := FromParams(KindPoint, map[string]float64{"force": 1, "magnitude": 2, "position": 1})
		require.ErrorIs(t, err, ErrDuplicateField)
	}
	_, err := Normalize(KindDistributed, map[string]float64{"w": 1, "loadIntensity": 2})
	assert.ErrorIs(t, err, ErrDuplicateField)

	p, err := Normalize(KindMoment, map[string]float64{"M0": 3})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"magnitude": 3}, p)
}

func TestDefaultsAreValid(t *testing.T) {
	for _, k := range Kinds {
		c, err := FromParams(k, Defaults(k))
		require.NoError(t, err)
		assert.NoError(t, c.Validate(DefaultSpan), k)
		for f := range Fields[k] {
			assert.Contains(t, Defaults(k), f)
		}
	}
}
