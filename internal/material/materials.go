package material

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	ErrInvalidMaterial = errors.New("invalid material")
	ErrUnknownMaterial = errors.New("unknown material")
)

// Properties holds the elastic constants of a beam material
type Properties struct {
	Name           string  `json:"name" yaml:"name"`
	Description    string  `json:"description,omitempty" yaml:"description,omitempty"`
	ElasticModulus float64 `json:"elastic_modulus" yaml:"elastic_modulus"`     // E (GPa)
	YieldStrength  float64 `json:"yield_strength" yaml:"yield_strength"`       // fy (MPa)
	Density        float64 `json:"density,omitempty" yaml:"density,omitempty"` // kg/m³, 0 if unknown
}

// DefaultModulus is the elastic modulus (GPa) assumed when none is given
const DefaultModulus = 200.0

// Validate requires E > 0, fy > 0 and a non-negative density
func (p Properties) Validate() error {
	if !(p.ElasticModulus > 0) || math.IsInf(p.ElasticModulus, 0) {
		return fmt.Errorf("%w: elastic modulus must be positive, got %g GPa", ErrInvalidMaterial, p.ElasticModulus)
	}
	if !(p.YieldStrength > 0) || math.IsInf(p.YieldStrength, 0) {
		return fmt.Errorf("%w: yield strength must be positive, got %g MPa", ErrInvalidMaterial, p.YieldStrength)
	}
	if p.Density < 0 || math.IsNaN(p.Density) {
		return fmt.Errorf("%w: density must not be negative, got %g kg/m³", ErrInvalidMaterial, p.Density)
	}
	return nil
}

// Reference materials
var (
	Steel = Properties{
		Name:           "steel",
		Description:    "Structural steel A36",
		ElasticModulus: 200,
		YieldStrength:  250,
		Density:        7850,
	}
	Aluminum = Properties{
		Name:           "aluminum",
		Description:    "Aluminum 6061-T6",
		ElasticModulus: 69,
		YieldStrength:  276,
		Density:        2700,
	}
	Wood = Properties{
		Name:           "wood",
		Description:    "Douglas-fir, bending strength used as yield",
		ElasticModulus: 13.1,
		YieldStrength:  40,
		Density:        530,
	}
)

// Catalog is a named set of materials. The zero value is empty; use DefaultCatalog.
type Catalog struct {
	entries map[string]Properties
}

// DefaultCatalog returns the built-in reference materials
func DefaultCatalog() *Catalog {
	c := &Catalog{entries: make(map[string]Properties)}
	for _, p := range []Properties{Steel, Aluminum, Wood} {
		c.entries[p.Name] = p
	}
	return c
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add validates p and adds or replaces it under its name
func (c *Catalog) Add(p Properties) error {
	p.Name = key(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: material name is required", ErrInvalidMaterial)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	if c.entries == nil {
		c.entries = make(map[string]Properties)
	}
	c.entries[p.Name] = p
	return nil
}

// Lookup finds a material by name, case-insensitively
func (c *Catalog) Lookup(name string) (Properties, error) {
	p, ok := c.entries[key(name)]
	if !ok {
		return Properties{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return p, nil
}

// List returns the materials sorted by name
func (c *Catalog) List() []Properties {
	out := make([]Properties, 0, len(c.entries))
	for _, p := range c.entries {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Custom builds a user-entered material. Density may be zero.
func Custom(modulusGPa, yieldMPa, density float64) (Properties, error) {
	p := Properties{
		Name:           "custom",
		ElasticModulus: modulusGPa,
		YieldStrength:  yieldMPa,
		Density:        density,
	}
	if err := p.Validate(); err != nil {
		return Properties{}, err
	}
	return p, nil
}
