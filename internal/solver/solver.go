package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gobend/internal/load"
	"github.com/alexiusacademia/gobend/internal/material"
	"github.com/alexiusacademia/gobend/internal/section"
	"github.com/alexiusacademia/gobend/internal/units"
)

// ErrDivisionByZero is returned when a zero section modulus or moment of inertia
// would have to carry a nonzero moment or load.
var ErrDivisionByZero = errors.New("division by zero")

// ErrOutOfRange is returned when a stress or deflection does not fit in a float64
var ErrOutOfRange = errors.New("result out of range")

var sqrt3 = math.Sqrt(3)

// Input collects everything the solver combines. Values are canonical:
// properties in mm, moment in N·m, span in m, modulus in GPa.
type Input struct {
	Properties section.Properties
	Moment     float64 // peak bending moment (N·m)
	Load       load.Case
	Span       float64 // m
	Modulus    float64 // E (GPa)
	Support    load.Support
}

// Output holds peak stress and deflection
type Output struct {
	MaxStress     float64 `json:"max_stress"`     // MPa
	MaxDeflection float64 `json:"max_deflection"` // mm
}

// Solve computes the peak bending stress σ = M/S and the peak elastic deflection
// of the span for the load case and support condition.
func Solve(in Input) (Output, error) {
	stress, err := Stress(in.Moment, in.Properties.SectionModulus)
	if err != nil {
		return Output{}, err
	}
	defl, err := MaxDeflection(in)
	if err != nil {
		return Output{}, err
	}
	if !isFinite(stress) || !isFinite(defl) {
		return Output{}, fmt.Errorf("%w: stress %g MPa, deflection %g mm", ErrOutOfRange, stress, defl)
	}
	return Output{MaxStress: stress, MaxDeflection: defl}, nil
}

// Stress returns M (N·m) over S (mm³) in MPa.
// A zero modulus is only accepted when the moment is zero as well.
func Stress(moment, modulus float64) (float64, error) {
	if !(modulus > 0) {
		if moment == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: section modulus is %g mm³ under a %g N·m moment", ErrDivisionByZero, modulus, moment)
	}
	return units.NewtonMetersToNewtonMillimeters(moment) / modulus, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// MaxDeflection returns the peak deflection magnitude in mm
func MaxDeflection(in Input) (float64, error) {
	c, err := prepare(in)
	if err != nil {
		return 0, err
	}
	return c.divide(c.peak())
}

// DeflectionAt returns the deflection magnitude (mm) at x meters from the x = 0 support
func DeflectionAt(in Input, x float64) (float64, error) {
	c, err := prepare(in)
	if err != nil {
		return 0, err
	}
	xmm := units.MetersToMillimeters(min(max(x, 0), in.Span))
	return c.divide(c.at(xmm))
}

// curve holds a load case in N and mm so the beam table formulas apply directly
type curve struct {
	support load.Support
	kind    load.Kind
	p       float64 // N, N/mm or N·mm depending on kind
	a       float64 // point position (mm)
	l       float64 // span (mm)
	ei      float64 // E·I (N·mm²)
}

func prepare(in Input) (curve, error) {
	if in.Load == nil {
		return curve{}, load.ErrIncompleteLoadCase
	}
	if err := in.Load.Validate(in.Span); err != nil {
		return curve{}, err
	}
	if !(in.Modulus > 0) || math.IsInf(in.Modulus, 0) {
		return curve{}, fmt.Errorf("%w: elastic modulus must be positive, got %g GPa", material.ErrInvalidMaterial, in.Modulus)
	}
	if in.Support != load.SimplySupported && in.Support != load.Cantilever {
		return curve{}, fmt.Errorf("%w: %q", load.ErrUnknownSupport, in.Support)
	}

	c := curve{
		support: in.Support,
		kind:    in.Load.Kind(),
		l:       units.MetersToMillimeters(in.Span),
		ei:      units.GigapascalsToMegapascals(in.Modulus) * in.Properties.MomentOfInertia,
	}
	switch lc := in.Load.(type) {
	case load.Point:
		c.p = lc.Magnitude
		c.a = units.MetersToMillimeters(lc.Position)
	case load.Distributed:
		c.p = units.NewtonsPerMeterToNewtonsPerMillimeter(lc.Intensity)
	case load.Moment:
		c.p = units.NewtonMetersToNewtonMillimeters(lc.Magnitude)
	default:
		return curve{}, fmt.Errorf("%w: %T", load.ErrUnknownLoad, in.Load)
	}
	return c, nil
}

// divide turns an E·I-free numerator into a deflection
func (c curve) divide(num float64) (float64, error) {
	if !(c.ei > 0) {
		if num == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: moment of inertia is zero under a nonzero load", ErrDivisionByZero)
	}
	return num / c.ei, nil
}

// peak returns E·I·δmax
//
//	simply supported  point  P·b·(L²−b²)^1.5/(9√3·L), b = min(a, L−a)
//	                  UDL    5·w·L⁴/384
//	                  moment M0·L²/(9√3)
//	cantilever        point  P·a²·(3L−a)/6
//	                  UDL    w·L⁴/8
//	                  moment M0·L²/2
func (c curve) peak() float64 {
	L := c.l
	if c.support == load.Cantilever {
		switch c.kind {
		case load.KindPoint:
			return c.p * c.a * c.a * (3*L - c.a) / 6
		case load.KindDistributed:
			return c.p * math.Pow(L, 4) / 8
		case load.KindMoment:
			return c.p * L * L / 2
		}
		return 0
	}
	switch c.kind {
	case load.KindPoint:
		b := math.Min(c.a, L-c.a)
		return c.p * b * math.Pow(L*L-b*b, 1.5) / (9 * sqrt3 * L)
	case load.KindDistributed:
		return 5 * c.p * math.Pow(L, 4) / 384
	case load.KindMoment:
		return c.p * L * L / (9 * sqrt3)
	}
	return 0
}

// at returns E·I·v(x) for x in mm
func (c curve) at(x float64) float64 {
	L, a := c.l, c.a
	if c.support == load.Cantilever {
		switch c.kind {
		case load.KindPoint:
			if x <= a {
				return c.p * x * x * (3*a - x) / 6
			}
			return c.p * a * a * (3*x - a) / 6
		case load.KindDistributed:
			return c.p * x * x * (6*L*L - 4*L*x + x*x) / 24
		case load.KindMoment:
			return c.p * x * x / 2
		}
		return 0
	}
	switch c.kind {
	case load.KindPoint:
		b := L - a
		if x <= a {
			return c.p * b * x * (L*L - b*b - x*x) / (6 * L)
		}
		return c.p * a * (L - x) * (2*L*x - x*x - a*a) / (6 * L)
	case load.KindDistributed:
		return c.p * x * (L*L*L - 2*L*x*x + x*x*x) / 24
	case load.KindMoment:
		return c.p * x * (L - x) * (2*L - x) / (6 * L)
	}
	return 0
}
