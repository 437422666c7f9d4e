package engine

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gobend/internal/load"
	"github.com/alexiusacademia/gobend/internal/section"
	"github.com/alexiusacademia/gobend/internal/solver"
)

// DefaultStations is the number of sample points used for diagrams
const DefaultStations = 101

var errStations = errors.New("profile needs at least 2 stations")

// Profile samples the bending moment and elastic curve along the span
type Profile struct {
	X          []float64 `json:"x"`          // m from the x = 0 support
	Moment     []float64 `json:"moment"`     // N·m
	Deflection []float64 `json:"deflection"` // mm
}

// SampleProfile evaluates c at n evenly spaced stations from 0 to the span
func SampleProfile(c Case, n int) (*Profile, error) {
	if n < 2 {
		return nil, errStations
	}
	if err := c.Material.Validate(); err != nil {
		return nil, err
	}
	props, err := section.ComputeProperties(c.Geometry)
	if err != nil {
		return nil, err
	}
	if err := c.Load.Validate(c.Span); err != nil {
		return nil, err
	}

	p := &Profile{
		X:          floats.Span(make([]float64, n), 0, c.Span),
		Moment:     make([]float64, n),
		Deflection: make([]float64, n),
	}
	in := solver.Input{
		Properties: props,
		Load:       c.Load,
		Span:       c.Span,
		Modulus:    c.Material.ElasticModulus,
		Support:    c.Support,
	}
	for i, x := range p.X {
		if p.Moment[i], err = load.MomentAt(c.Load, c.Span, c.Support, x); err != nil {
			return nil, err
		}
		if p.Deflection[i], err = solver.DeflectionAt(in, x); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// PeakMoment returns the largest sampled moment and its position
func (p *Profile) PeakMoment() (x, m float64) {
	i := floats.MaxIdx(p.Moment)
	return p.X[i], p.Moment[i]
}

// PeakDeflection returns the largest sampled deflection and its position
func (p *Profile) PeakDeflection() (x, d float64) {
	i := floats.MaxIdx(p.Deflection)
	return p.X[i], p.Deflection[i]
}

// SampleMoment evaluates only the bending moment of a load over a span.
// The returned profile has no deflection.
func SampleMoment(lc load.Case, span float64, support load.Support, n int) (*Profile, error) {
	if n < 2 {
		return nil, errStations
	}
	if lc == nil {
		return nil, load.ErrIncompleteLoadCase
	}
	if err := lc.Validate(span); err != nil {
		return nil, err
	}
	p := &Profile{
		X:      floats.Span(make([]float64, n), 0, span),
		Moment: make([]float64, n),
	}
	for i, x := range p.X {
		m, err := load.MomentAt(lc, span, support, x)
		if err != nil {
			return nil, err
		}
		p.Moment[i] = m
	}
	return p, nil
}
