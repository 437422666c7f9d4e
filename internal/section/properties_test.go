package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func within(t *testing.T, got, want, rel float64, msg string) {
	t.Helper()
	assert.True(t, scalar.EqualWithinRel(got, want, rel), "%s: got %.6g want %.6g", msg, got, want)
}

func TestRectangularIdentity(t *testing.T) {
	for _, w := range []float64{0.5, 12, 50, 300} {
		for _, h := range []float64{1, 25, 100, 910} {
			p, err := Rectangular{Width: w, Height: h}.Properties()
			require.NoError(t, err)
			within(t, p.MomentOfInertia, w*h*h*h/12, 1e-12, "I")
			within(t, p.SectionModulus, 2*p.MomentOfInertia/h, 1e-12, "S")
			within(t, p.Area, w*h, 1e-12, "A")
		}
	}
}

func TestCircularIdentity(t *testing.T) {
	for _, d := range []float64{1, 10, 100, 2500} {
		p, err := Circular{Diameter: d}.Properties()
		require.NoError(t, err)
		within(t, p.MomentOfInertia, math.Pi*math.Pow(d, 4)/64, 1e-12, "I")
		within(t, p.SectionModulus, p.MomentOfInertia/(d/2), 1e-12, "S")
	}
}

func TestScenarioRectangular(t *testing.T) {
	p, err := ComputeProperties(Rectangular{Width: 50, Height: 100})
	require.NoError(t, err)
	within(t, p.MomentOfInertia, 4166667, 0.005, "I")
	within(t, p.SectionModulus, 83333, 0.005, "S")
}

func TestScenarioCircular(t *testing.T) {
	p, err := ComputeProperties(Circular{Diameter: 100})
	require.NoError(t, err)
	within(t, p.MomentOfInertia, 4908739, 0.005, "I")
	within(t, p.SectionModulus, 98175, 0.005, "S")
}

func TestIBeam(t *testing.T) {
	// 200 x 100 with 10 mm flanges and a 6 mm web
	p, err := IBeam{Height: 200, FlangeWidth: 100, FlangeThickness: 10, WebThickness: 6}.Properties()
	require.NoError(t, err)
	want := 100*math.Pow(200, 3)/12 - 94*math.Pow(180, 3)/12
	within(t, p.MomentOfInertia, want, 1e-12, "I")
	within(t, p.SectionModulus, want/100, 1e-12, "S")
	within(t, p.Area, 2*100*10+180*6, 1e-12, "A")
}

func TestHollowApproachesSolid(t *testing.T) {
	solidC, _ := Circular{Diameter: 100}.Properties()
	solidR, _ := Rectangular{Width: 50, Height: 100}.Properties()

	var prev float64
	for _, tw := range []float64{0.01, 1, 5, 10, 25, 40, 49.99} {
		hc, err := HollowCircular{OuterDiameter: 100, WallThickness: tw}.Properties()
		require.NoError(t, err)
		// removing less material leaves more stiffness
		assert.Greater(t, hc.MomentOfInertia, prev, "t=%v", tw)
		assert.Less(t, hc.MomentOfInertia, solidC.MomentOfInertia)
		prev = hc.MomentOfInertia
	}
	within(t, prev, solidC.MomentOfInertia, 1e-6, "hollow circular at t -> d/2")

	prev = 0
	for _, tw := range []float64{0.01, 1, 5, 10, 20, 24, 24.99} {
		hr, err := HollowRectangular{OuterWidth: 50, OuterHeight: 100, WallThickness: tw}.Properties()
		require.NoError(t, err)
		assert.Greater(t, hr.MomentOfInertia, prev, "t=%v", tw)
		assert.Greater(t, hr.SectionModulus, 0.0)
		assert.Less(t, hr.MomentOfInertia, solidR.MomentOfInertia)
		prev = hr.MomentOfInertia
	}
	within(t, prev, solidR.MomentOfInertia, 1e-3, "hollow rectangular at t -> b/2")

	thin, _ := HollowCircular{OuterDiameter: 100, WallThickness: 1e-6}.Properties()
	assert.Less(t, thin.MomentOfInertia/solidC.MomentOfInertia, 1e-6)
}

func TestMissingHeight(t *testing.T) {
	_, err := ComputeProperties(Rectangular{Width: 50})
	require.ErrorIs(t, err, ErrIncompleteGeometry)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "height", verr.Field)
	assert.Contains(t, err.Error(), "height")

	_, err = ComputeProperties(nil)
	assert.ErrorIs(t, err, ErrIncompleteGeometry)

	_, err = ComputeProperties(Circular{Diameter: math.NaN()})
	assert.ErrorIs(t, err, ErrIncompleteGeometry)
}

func TestShapeInvariants(t *testing.T) {
	cases := []Geometry{
		HollowRectangular{OuterWidth: 50, OuterHeight: 100, WallThickness: 25},
		HollowCircular{OuterDiameter: 100, WallThickness: 50},
		IBeam{Height: 20, FlangeWidth: 100, FlangeThickness: 10, WebThickness: 6},
		IBeam{Height: 200, FlangeWidth: 100, FlangeThickness: 10, WebThickness: 100},
	}
	for _, g := range cases {
		_, err := g.Properties()
		assert.ErrorIs(t, err, ErrInvalidGeometry, "%#v", g)
		assert.NotErrorIs(t, err, ErrIncompleteGeometry)
	}
}

func TestTBeamUnimplemented(t *testing.T) {
	g := TBeam{Height: 200, FlangeWidth: 100, FlangeThickness: 10, WebThickness: 6}
	require.NoError(t, g.Validate())
	_, err := ComputeProperties(g)
	assert.ErrorIs(t, err, ErrUnimplemented)
	_, err = g.Outline()
	assert.ErrorIs(t, err, ErrUnimplemented)
}

func TestPropertiesOverflow(t *testing.T) {
	cases := []Geometry{
		Rectangular{Width: 50, Height: 1e120},
		Circular{Diameter: 1e100},
		HollowRectangular{OuterWidth: 1e120, OuterHeight: 1e120, WallThickness: 1},
		HollowCircular{OuterDiameter: 1e100, WallThickness: 1},
		IBeam{Height: 1e120, FlangeWidth: 1e119, FlangeThickness: 1, WebThickness: 1},
	}
	for _, g := range cases {
		p, err := ComputeProperties(g)
		assert.ErrorIs(t, err, ErrInvalidGeometry, "%#v", g)
		assert.Equal(t, Properties{}, p)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, g.Shape(), verr.Shape)
	}

	// large but representable
	p, err := Rectangular{Width: 1e10, Height: 1e90}.Properties()
	require.NoError(t, err)
	assert.False(t, math.IsInf(p.MomentOfInertia, 0))
}
