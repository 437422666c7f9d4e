package section

import (
	"errors"
	"fmt"
	"strings"
)

// Shape identifies a cross-section family
type Shape string

const (
	ShapeRectangular       Shape = "rectangular"
	ShapeCircular          Shape = "circular"
	ShapeHollowRectangular Shape = "hollow_rectangular"
	ShapeHollowCircular    Shape = "hollow_circular"
	ShapeIBeam             Shape = "i_beam"
	ShapeTBeam             Shape = "t_beam"
)

// Shapes lists every recognized shape in selection order
var Shapes = []Shape{
	ShapeIBeam,
	ShapeRectangular,
	ShapeCircular,
	ShapeHollowRectangular,
	ShapeHollowCircular,
	ShapeTBeam,
}

var (
	ErrIncompleteGeometry = errors.New("incomplete geometry")
	ErrInvalidGeometry    = errors.New("invalid geometry")
	ErrUnimplemented      = errors.New("shape not implemented")
	ErrUnknownShape       = errors.New("unknown shape")
)

// ParseShape accepts the canonical tags as well as hyphenated or spaced forms
// ("i-beam", "Hollow Rectangular").
func ParseShape(s string) (Shape, error) {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	if norm == "ibeam" {
		norm = string(ShapeIBeam)
	}
	if norm == "tbeam" {
		norm = string(ShapeTBeam)
	}
	for _, sh := range Shapes {
		if string(sh) == norm {
			return sh, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Label returns a display name for the shape
func (s Shape) Label() string {
	switch s {
	case ShapeRectangular:
		return "Rectangular"
	case ShapeCircular:
		return "Circular"
	case ShapeHollowRectangular:
		return "Hollow Rectangular"
	case ShapeHollowCircular:
		return "Hollow Circular"
	case ShapeIBeam:
		return "I-Beam"
	case ShapeTBeam:
		return "T-Beam"
	}
	return string(s)
}

// Geometry is a cross-section of one shape family. All dimensions are in mm.
// Values are immutable; each analysis builds its own.
type Geometry interface {
	Shape() Shape
	// Validate checks that every dimension is present and the shape invariants hold
	Validate() error
	// Properties computes the bending properties about the major horizontal axis
	Properties() (Properties, error)
	// Outline returns the section boundary for drawing and numerical checks
	Outline() (Outline, error)
}

// Properties holds the geometric bending properties of a section
type Properties struct {
	MomentOfInertia float64 `json:"moment_of_inertia"` // mm⁴
	SectionModulus  float64 `json:"section_modulus"`   // mm³
	Area            float64 `json:"area"`              // mm²
	Depth           float64 `json:"depth"`             // overall depth (mm)
}

// Rectangular is a solid rectangle of Width × Height
type Rectangular struct {
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// Circular is a solid round bar
type Circular struct {
	Diameter float64 `json:"diameter"` // mm
}

// HollowRectangular is a rectangular tube with uniform wall thickness
type HollowRectangular struct {
	OuterWidth    float64 `json:"outer_width"`    // mm
	OuterHeight   float64 `json:"outer_height"`   // mm
	WallThickness float64 `json:"wall_thickness"` // mm
}

// HollowCircular is a round tube
type HollowCircular struct {
	OuterDiameter float64 `json:"outer_diameter"` // mm
	WallThickness float64 `json:"wall_thickness"` // mm
}

// IBeam is a doubly symmetric I-section
//
//	    b = flange width
//	 ┌───────────────┐ ─┬─ tf
//	 └─────┐   ┌─────┘
//	       │tw │            h
//	 ┌─────┘   └─────┐
//	 └───────────────┘ ─┴─
type IBeam struct {
	Height          float64 `json:"height"`           // h (mm)
	FlangeWidth     float64 `json:"flange_width"`     // b (mm)
	FlangeThickness float64 `json:"flange_thickness"` // tf (mm)
	WebThickness    float64 `json:"web_thickness"`    // tw (mm)
}

// TBeam is recognized but has no property formula.
// Properties and Outline return ErrUnimplemented.
type TBeam struct {
	Height          float64 `json:"height"`
	FlangeWidth     float64 `json:"flange_width"`
	FlangeThickness float64 `json:"flange_thickness"`
	WebThickness    float64 `json:"web_thickness"`
}

func (Rectangular) Shape() Shape       { return ShapeRectangular }
func (Circular) Shape() Shape          { return ShapeCircular }
func (HollowRectangular) Shape() Shape { return ShapeHollowRectangular }
func (HollowCircular) Shape() Shape    { return ShapeHollowCircular }
func (IBeam) Shape() Shape             { return ShapeIBeam }
func (TBeam) Shape() Shape             { return ShapeTBeam }

// ValidationError reports the offending dimension of a section.
// It unwraps to ErrIncompleteGeometry or ErrInvalidGeometry.
type ValidationError struct {
	Shape Shape
	Field string
	msg   string
	kind  error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s: %s", e.Shape, e.kind, e.msg)
	}
	return fmt.Sprintf("%s: %s: %s %s", e.Shape, e.kind, e.Field, e.msg)
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

func missing(shape Shape, field string) error {
	return &ValidationError{Shape: shape, Field: field, msg: "must be present and positive", kind: ErrIncompleteGeometry}
}

func invalid(shape Shape, msg string) error {
	return &ValidationError{Shape: shape, msg: msg, kind: ErrInvalidGeometry}
}

func duplicate(shape Shape, field string) error {
	return &ValidationError{Shape: shape, Field: field, msg: "is given more than once", kind: ErrInvalidGeometry}
}
