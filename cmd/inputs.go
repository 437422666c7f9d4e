package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/load"
	"github.com/alexiusacademia/gobend/internal/material"
	"github.com/alexiusacademia/gobend/internal/section"
	"github.com/alexiusacademia/gobend/internal/units"
)

// Dimension flags, named after the section fields with dashes
var dimensionFlags = []struct {
	name  string
	usage string
}{
	{"width", "Rectangle width (mm | in)"},
	{"height", "Overall depth of rectangle or I-beam (mm | in)"},
	{"diameter", "Circle diameter (mm | in)"},
	{"outer-width", "Hollow rectangle outer width (mm | in)"},
	{"outer-height", "Hollow rectangle outer height (mm | in)"},
	{"outer-diameter", "Hollow circle outer diameter (mm | in)"},
	{"wall-thickness", "Hollow section wall thickness (mm | in)"},
	{"flange-width", "I-beam flange width (mm | in)"},
	{"flange-thickness", "I-beam flange thickness (mm | in)"},
	{"web-thickness", "I-beam web thickness (mm | in)"},
}

type sectionInput struct {
	shape string
	dims  map[string]*float64
}

func addSectionFlags(c *cobra.Command) *sectionInput {
	in := &sectionInput{dims: make(map[string]*float64)}
	c.Flags().StringVarP(&in.shape, "shape", "s", string(section.ShapeRectangular),
		"Cross-section: rectangular, circular, hollow_rectangular, hollow_circular, i_beam, t_beam")
	for _, f := range dimensionFlags {
		in.dims[f.name] = c.Flags().Float64(f.name, 0, f.usage)
	}
	return in
}

// params returns the dimensions given on the command line. With none given,
// the calculator's starting dimensions for the shape are used.
func (in *sectionInput) params(c *cobra.Command, system units.System) (map[string]float64, error) {
	p := make(map[string]float64)
	for name, v := range in.dims {
		if c.Flags().Changed(name) {
			p[strings.ReplaceAll(name, "-", "_")] = *v
		}
	}
	if len(p) > 0 {
		return p, nil
	}
	shape, err := section.ParseShape(in.shape)
	if err != nil {
		return nil, err
	}
	for k, v := range section.Defaults(shape) {
		if p[k], err = units.FromCanonical(v, units.LengthSmall, system); err != nil {
			return nil, err
		}
	}
	return p, nil
}

type loadInput struct {
	kind      string
	magnitude float64
	position  float64
	intensity float64
	span      float64
}

var loadFlagNames = []string{"magnitude", "position", "intensity"}

func addLoadFlags(c *cobra.Command) *loadInput {
	in := &loadInput{}
	c.Flags().StringVarP(&in.kind, "load", "l", string(load.KindDistributed), "Load case: point, distributed or moment")
	c.Flags().Float64VarP(&in.magnitude, "magnitude", "P", 0, "Point force (N | lb) or end moment (N·m | lb·in)")
	c.Flags().Float64VarP(&in.position, "position", "a", 0, "Point load distance from the x = 0 support (m | in)")
	c.Flags().Float64VarP(&in.intensity, "intensity", "w", 0, "Distributed load intensity (N/m | lb/in)")
	c.Flags().Float64VarP(&in.span, "span", "L", 0, "Beam span (m | in), default 3 m")
	return in
}

// params returns the load fields given on the command line, or the
// calculator's starting values for the load case when none are given
func (in *loadInput) params(c *cobra.Command, system units.System) (map[string]float64, error) {
	values := map[string]float64{"magnitude": in.magnitude, "position": in.position, "intensity": in.intensity}
	p := make(map[string]float64)
	for _, name := range loadFlagNames {
		if c.Flags().Changed(name) {
			p[name] = values[name]
		}
	}
	if len(p) > 0 {
		return p, nil
	}
	kind, err := load.ParseKind(in.kind)
	if err != nil {
		return nil, err
	}
	for k, v := range load.Defaults(kind) {
		if p[k], err = units.FromCanonical(v, load.Fields[kind][k], system); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (in *loadInput) spanValue(c *cobra.Command, system units.System) (float64, error) {
	if c.Flags().Changed("span") {
		return in.span, nil
	}
	return units.FromCanonical(load.DefaultSpan, units.LengthSpan, system)
}

type materialInput struct {
	name    string
	modulus float64
	yield   float64
	density float64
}

func addMaterialFlags(c *cobra.Command) *materialInput {
	in := &materialInput{}
	c.Flags().StringVarP(&in.name, "material", "m", "", "Catalog material (default from config, see 'gobend materials')")
	c.Flags().Float64VarP(&in.modulus, "modulus", "E", 0, "Custom elastic modulus (GPa | ksi); overrides --material")
	c.Flags().Float64Var(&in.yield, "yield-strength", 0, "Custom yield strength (MPa | ksi), default 250 MPa")
	c.Flags().Float64Var(&in.density, "density", 0, "Custom density (kg/m³ | lb/ft³)")
	return in
}

func (in *materialInput) input(c *cobra.Command, system units.System) (engine.MaterialInput, error) {
	if !c.Flags().Changed("modulus") {
		name := in.name
		if name == "" {
			name = appConfig.Material
		}
		return engine.MaterialInput{Name: name}, nil
	}
	fy := in.yield
	if !c.Flags().Changed("yield-strength") {
		var err error
		if fy, err = units.FromCanonical(material.Steel.YieldStrength, units.Stress, system); err != nil {
			return engine.MaterialInput{}, err
		}
	}
	return engine.MaterialInput{ElasticModulus: in.modulus, YieldStrength: fy, Density: in.density}, nil
}

// beamInput gathers every flag an analysis needs
type beamInput struct {
	section  *sectionInput
	load     *loadInput
	material *materialInput
}

func addBeamFlags(c *cobra.Command) *beamInput {
	return &beamInput{
		section:  addSectionFlags(c),
		load:     addLoadFlags(c),
		material: addMaterialFlags(c),
	}
}

func (b *beamInput) request(c *cobra.Command) (engine.Request, error) {
	system, err := units.ParseSystem(unitSystem())
	if err != nil {
		return engine.Request{}, err
	}
	req := engine.Request{
		Section: b.section.shape,
		Load:    b.load.kind,
		Units:   string(system),
		Support: supportCondition(),
	}
	if req.SectionParams, err = b.section.params(c, system); err != nil {
		return engine.Request{}, err
	}
	if req.LoadParams, err = b.load.params(c, system); err != nil {
		return engine.Request{}, err
	}
	if req.Span, err = b.load.spanValue(c, system); err != nil {
		return engine.Request{}, err
	}
	if req.Material, err = b.material.input(c, system); err != nil {
		return engine.Request{}, err
	}
	return req, nil
}
