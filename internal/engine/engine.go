package engine

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gobend/internal/load"
	"github.com/alexiusacademia/gobend/internal/material"
	"github.com/alexiusacademia/gobend/internal/section"
	"github.com/alexiusacademia/gobend/internal/solver"
	"github.com/alexiusacademia/gobend/internal/units"
)

// Disclaimer accompanies every result wherever it is rendered
const Disclaimer = "Results are estimates from closed-form elastic beam theory and are not suitable for safety-critical use or structural certification."

// Assumptions lists the modelling assumptions shown with results
var Assumptions = []string{
	"Linear elastic material behavior",
	"Small deflections relative to beam dimensions",
	"No stress concentrations at supports or load points",
	"Single statically determinate span, bending about the major axis only",
}

// MaterialInput selects a catalog material by Name, or describes a custom one.
// Custom values are in the request's unit system (GPa/MPa/kg/m³ or ksi/ksi/lb/ft³).
type MaterialInput struct {
	Name           string  `json:"name,omitempty" yaml:"name,omitempty"`
	ElasticModulus float64 `json:"elastic_modulus,omitempty" yaml:"elastic_modulus,omitempty"`
	YieldStrength  float64 `json:"yield_strength,omitempty" yaml:"yield_strength,omitempty"`
	Density        float64 `json:"density,omitempty" yaml:"density,omitempty"`
}

// Request is the raw input of one analysis: shape and load tags with numeric
// field maps, a material, a span and the unit system all values are expressed in.
type Request struct {
	Section       string             `json:"section" yaml:"section"`
	SectionParams map[string]float64 `json:"section_params" yaml:"section_params"`
	Load          string             `json:"load" yaml:"load"`
	LoadParams    map[string]float64 `json:"load_params" yaml:"load_params"`
	Material      MaterialInput      `json:"material" yaml:"material"`
	Span          float64            `json:"span" yaml:"span"`
	Units         string             `json:"units,omitempty" yaml:"units,omitempty"`
	Support       string             `json:"support,omitempty" yaml:"support,omitempty"`
}

// Case is a fully resolved analysis in canonical units
type Case struct {
	Geometry section.Geometry
	Load     load.Case
	Material material.Properties
	Span     float64 // m
	Support  load.Support
}

// Result is the outcome of one analysis; all values are canonical
type Result struct {
	Section  section.Shape       `json:"section"`
	Load     load.Kind           `json:"load"`
	Support  load.Support        `json:"support"`
	Material material.Properties `json:"material"`
	Span     float64             `json:"span"` // m

	MomentOfInertia  float64 `json:"moment_of_inertia"`  // mm⁴
	SectionModulus   float64 `json:"section_modulus"`    // mm³
	Area             float64 `json:"area"`               // mm²
	MaxBendingMoment float64 `json:"max_bending_moment"` // N·m
	MaxStress        float64 `json:"max_stress"`         // MPa
	MaxDeflection    float64 `json:"max_deflection"`     // mm

	// StressRatio is max stress over yield strength, informational only
	StressRatio float64 `json:"stress_ratio"`
	// MassPerLength is area × density (kg/m), zero when density is unknown
	MassPerLength float64 `json:"mass_per_length"`

	Disclaimer string `json:"disclaimer"`
}

// Engine analyzes beams against a material catalog. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	catalog *material.Catalog
}

// New returns an engine resolving material names against catalog.
// A nil catalog uses the built-in reference materials.
func New(catalog *material.Catalog) *Engine {
	if catalog == nil {
		catalog = material.DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

// Catalog returns the catalog the engine resolves names against
func (e *Engine) Catalog() *material.Catalog {
	return e.catalog
}

// Analyze converts, validates and solves req
func (e *Engine) Analyze(req Request) (*Result, error) {
	c, err := e.Resolve(req)
	if err != nil {
		return nil, err
	}
	return AnalyzeCase(c)
}

// Analyze runs req against the built-in catalog
func Analyze(req Request) (*Result, error) {
	return New(nil).Analyze(req)
}

// Resolve converts req into canonical units and builds the typed case
func (e *Engine) Resolve(req Request) (Case, error) {
	system, err := units.ParseSystem(req.Units)
	if err != nil {
		return Case{}, err
	}
	support, err := load.ParseSupport(req.Support)
	if err != nil {
		return Case{}, err
	}

	geom, err := ResolveSection(req.Section, req.SectionParams, system)
	if err != nil {
		return Case{}, err
	}
	lc, err := ResolveLoad(req.Load, req.LoadParams, system)
	if err != nil {
		return Case{}, err
	}

	span, err := units.ToCanonical(req.Span, units.LengthSpan, system)
	if err != nil {
		return Case{}, err
	}

	mat, err := e.resolveMaterial(req.Material, system)
	if err != nil {
		return Case{}, err
	}

	return Case{
		Geometry: geom,
		Load:     lc,
		Material: mat,
		Span:     span,
		Support:  support,
	}, nil
}

// ResolveSection builds a canonical geometry from a shape tag and dimensions in system units
func ResolveSection(shapeTag string, params map[string]float64, system units.System) (section.Geometry, error) {
	shape, err := section.ParseShape(shapeTag)
	if err != nil {
		return nil, err
	}
	dims, err := convertSection(shape, params, system)
	if err != nil {
		return nil, err
	}
	return section.FromParams(shape, dims)
}

// ResolveLoad builds a canonical load case from a load tag and fields in system units
func ResolveLoad(kindTag string, params map[string]float64, system units.System) (load.Case, error) {
	kind, err := load.ParseKind(kindTag)
	if err != nil {
		return nil, err
	}
	lp, err := convertLoad(kind, params, system)
	if err != nil {
		return nil, err
	}
	return load.FromParams(kind, lp)
}

func convertSection(shape section.Shape, params map[string]float64, system units.System) (map[string]float64, error) {
	known := make(map[string]bool)
	for _, f := range section.Fields[shape] {
		known[f] = true
	}
	out := make(map[string]float64, len(params))
	norm, err := section.Normalize(shape, params)
	if err != nil {
		return nil, err
	}
	for k, v := range norm {
		if !known[k] {
			return nil, fmt.Errorf("%w: %s has no dimension %q", units.ErrInvalidUnitKind, shape, k)
		}
		c, err := units.ToCanonical(v, units.LengthSmall, system)
		if err != nil {
			return nil, err
		}
		out[k] = c
	}
	return out, nil
}

func convertLoad(kind load.Kind, params map[string]float64, system units.System) (map[string]float64, error) {
	out := make(map[string]float64, len(params))
	norm, err := load.Normalize(kind, params)
	if err != nil {
		return nil, err
	}
	for k, v := range norm {
		qk, ok := load.Fields[kind][k]
		if !ok {
			return nil, fmt.Errorf("%w: %s load has no field %q", units.ErrInvalidUnitKind, kind, k)
		}
		c, err := units.ToCanonical(v, qk, system)
		if err != nil {
			return nil, err
		}
		out[k] = c
	}
	return out, nil
}

func (e *Engine) resolveMaterial(in MaterialInput, system units.System) (material.Properties, error) {
	if in.Name != "" && !strings.EqualFold(in.Name, "custom") {
		return e.catalog.Lookup(in.Name)
	}
	em, err := units.ToCanonical(in.ElasticModulus, units.Modulus, system)
	if err != nil {
		return material.Properties{}, err
	}
	fy, err := units.ToCanonical(in.YieldStrength, units.Stress, system)
	if err != nil {
		return material.Properties{}, err
	}
	rho, err := units.ToCanonical(in.Density, units.Density, system)
	if err != nil {
		return material.Properties{}, err
	}
	return material.Custom(em, fy, rho)
}

// AnalyzeCase computes section properties, peak moment, stress and deflection for c.
// Every call derives everything from its input.
func AnalyzeCase(c Case) (*Result, error) {
	if err := c.Material.Validate(); err != nil {
		return nil, err
	}
	props, err := section.ComputeProperties(c.Geometry)
	if err != nil {
		return nil, err
	}
	m, err := load.PeakMoment(c.Load, c.Span, c.Support)
	if err != nil {
		return nil, err
	}
	out, err := solver.Solve(solver.Input{
		Properties: props,
		Moment:     m,
		Load:       c.Load,
		Span:       c.Span,
		Modulus:    c.Material.ElasticModulus,
		Support:    c.Support,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Section:          c.Geometry.Shape(),
		Load:             c.Load.Kind(),
		Support:          c.Support,
		Material:         c.Material,
		Span:             c.Span,
		MomentOfInertia:  props.MomentOfInertia,
		SectionModulus:   props.SectionModulus,
		Area:             props.Area,
		MaxBendingMoment: m,
		MaxStress:        out.MaxStress,
		MaxDeflection:    out.MaxDeflection,
		StressRatio:      out.MaxStress / c.Material.YieldStrength,
		MassPerLength:    units.SquareMillimetersToSquareMeters(props.Area) * c.Material.Density,
		Disclaimer:       Disclaimer,
	}, nil
}
