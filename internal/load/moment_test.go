package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestPeakMomentDistributed(t *testing.T) {
	for _, w := range []float64{1, 250, 5000, 1e5} {
		for _, L := range []float64{0.5, 3, 12} {
			m, err := PeakMoment(Distributed{Intensity: w}, L, SimplySupported)
			require.NoError(t, err)
			assert.True(t, scalar.EqualWithinRel(m, w*L*L/8, 1e-12))
		}
	}
}

func TestScenarioDistributed(t *testing.T) {
	m, err := PeakMoment(Distributed{Intensity: 5000}, 3, SimplySupported)
	require.NoError(t, err)
	assert.InDelta(t, 5625, m, 1e-9)
}

func TestPeakMomentAppliedIndependentOfSpan(t *testing.T) {
	for _, L := range []float64{0.1, 2, 50} {
		for _, s := range []Support{SimplySupported, Cantilever} {
			m, err := PeakMoment(Moment{Magnitude: 15000}, L, s)
			require.NoError(t, err)
			assert.Equal(t, 15000.0, m)
		}
	}
}

func TestPeakMomentPoint(t *testing.T) {
	m, err := PeakMoment(Point{Magnitude: 10000, Position: 1}, 3, SimplySupported)
	require.NoError(t, err)
	assert.InDelta(t, 10000*1*2/3.0, m, 1e-9)

	// midspan gives P·L/4
	m, err = PeakMoment(Point{Magnitude: 10000, Position: 1.5}, 3, SimplySupported)
	require.NoError(t, err)
	assert.InDelta(t, 7500, m, 1e-9)

	// a load on the support produces no bending
	m, err = PeakMoment(Point{Magnitude: 10000, Position: 0}, 3, SimplySupported)
	require.NoError(t, err)
	assert.Zero(t, m)
}

func TestPeakMomentCantilever(t *testing.T) {
	m, err := PeakMoment(Point{Magnitude: 2000, Position: 2}, 2, Cantilever)
	require.NoError(t, err)
	assert.InDelta(t, 4000, m, 1e-9)

	m, err = PeakMoment(Distributed{Intensity: 1000}, 2, Cantilever)
	require.NoError(t, err)
	assert.InDelta(t, 2000, m, 1e-9)
}

func TestPeakMomentIncomplete(t *testing.T) {
	cases := []struct {
		c    Case
		span float64
	}{
		{Distributed{Intensity: 5000}, 0},
		{Distributed{Intensity: 5000}, -3},
		{Distributed{}, 3},
		{Point{Magnitude: 100, Position: 4}, 3},
		{Point{Magnitude: 100, Position: -0.1}, 3},
		{Point{Position: 1}, 3},
		{Moment{Magnitude: -1}, 3},
		{nil, 3},
	}
	for _, c := range cases {
		_, err := PeakMoment(c.c, c.span, SimplySupported)
		assert.ErrorIs(t, err, ErrIncompleteLoadCase, "%#v span=%v", c.c, c.span)
	}

	_, err := PeakMoment(Moment{Magnitude: 1}, 1, Support("propped"))
	assert.ErrorIs(t, err, ErrUnknownSupport)
}

func TestMomentAtPeaksMatch(t *testing.T) {
	cases := []Case{
		Point{Magnitude: 10000, Position: 1},
		Point{Magnitude: 10000, Position: 3},
		Distributed{Intensity: 5000},
		Moment{Magnitude: 15000},
	}
	const L = 3.0
	const n = 3000
	for _, s := range []Support{SimplySupported, Cantilever} {
		for _, c := range cases {
			peak, err := PeakMoment(c, L, s)
			require.NoError(t, err)

			var sampled float64
			for i := 0; i <= n; i++ {
				m, err := MomentAt(c, L, s, L*float64(i)/n)
				require.NoError(t, err)
				sampled = max(sampled, m)
			}
			assert.InDelta(t, peak, sampled, peak*1e-6+1e-9, "%s %#v", s, c)
		}
	}
}

func TestMomentAtEnds(t *testing.T) {
	m, err := MomentAt(Distributed{Intensity: 5000}, 3, SimplySupported, 0)
	require.NoError(t, err)
	assert.Zero(t, m)
	m, err = MomentAt(Distributed{Intensity: 5000}, 3, SimplySupported, 10)
	require.NoError(t, err)
	assert.Zero(t, m, "x is clamped to the span")

	m, err = MomentAt(Distributed{Intensity: 5000}, 3, Cantilever, 3)
	require.NoError(t, err)
	assert.Zero(t, m, "free end")
}
