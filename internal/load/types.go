package load

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gobend/internal/units"
)

// Kind identifies a load case
type Kind string

const (
	KindPoint       Kind = "point"
	KindDistributed Kind = "distributed"
	KindMoment      Kind = "moment"
)

// Kinds lists every load case
var Kinds = []Kind{KindPoint, KindDistributed, KindMoment}

// Support is the boundary condition of the span
type Support string

const (
	// SimplySupported is a pin at x = 0 and a roller at x = L
	SimplySupported Support = "simply_supported"
	// Cantilever is fixed at x = 0 and free at x = L
	Cantilever Support = "cantilever"
)

var (
	ErrIncompleteLoadCase = errors.New("incomplete load case")
	ErrUnknownLoad        = errors.New("unknown load case")
	ErrUnknownSupport     = errors.New("unknown support condition")
	ErrDuplicateField     = errors.New("load field given more than once")
)

// Case is a single load applied to the span. Values are canonical:
// N for forces, N/m for line loads, N·m for moments, m for positions.
type Case interface {
	Kind() Kind
	// Validate checks the load against the span it is applied to
	Validate(span float64) error
}

// Point is a concentrated force at Position from the x = 0 support
type Point struct {
	Magnitude float64 `json:"magnitude"` // N
	Position  float64 `json:"position"`  // m from the left (or fixed) support
}

// Distributed is a uniform line load over the whole span
type Distributed struct {
	Intensity float64 `json:"intensity"` // N/m
}

// Moment is a concentrated couple. On a simple span it acts at the x = 0 support;
// on a cantilever at the free end.
type Moment struct {
	Magnitude float64 `json:"magnitude"` // N·m
}

func (Point) Kind() Kind       { return KindPoint }
func (Distributed) Kind() Kind { return KindDistributed }
func (Moment) Kind() Kind      { return KindMoment }

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func checkSpan(span float64) error {
	if !positive(span) {
		return fmt.Errorf("%w: span must be positive, got %g", ErrIncompleteLoadCase, span)
	}
	return nil
}

// Validate requires a positive magnitude and 0 <= position <= span
func (p Point) Validate(span float64) error {
	if err := checkSpan(span); err != nil {
		return err
	}
	if !positive(p.Magnitude) {
		return fmt.Errorf("%w: point magnitude must be positive", ErrIncompleteLoadCase)
	}
	if math.IsNaN(p.Position) || p.Position < 0 || p.Position > span {
		return fmt.Errorf("%w: point position %g m outside span [0, %g]", ErrIncompleteLoadCase, p.Position, span)
	}
	return nil
}

// Validate requires a positive intensity
func (d Distributed) Validate(span float64) error {
	if err := checkSpan(span); err != nil {
		return err
	}
	if !positive(d.Intensity) {
		return fmt.Errorf("%w: distributed intensity must be positive", ErrIncompleteLoadCase)
	}
	return nil
}

// Validate requires a positive moment
func (m Moment) Validate(span float64) error {
	if err := checkSpan(span); err != nil {
		return err
	}
	if !positive(m.Magnitude) {
		return fmt.Errorf("%w: moment magnitude must be positive", ErrIncompleteLoadCase)
	}
	return nil
}

// ParseKind accepts the canonical tags and the web form names ("point-load")
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point", "point-load", "point_load", "concentrated":
		return KindPoint, nil
	case "distributed", "distributed-load", "distributed_load", "udl", "uniform":
		return KindDistributed, nil
	case "moment", "couple":
		return KindMoment, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLoad, s)
}

// ParseSupport defaults to SimplySupported on empty input
func ParseSupport(s string) (Support, error) {
	switch strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s))) {
	case "", "simply_supported", "simple", "simply":
		return SimplySupported, nil
	case "cantilever", "fixed_free":
		return Cantilever, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSupport, s)
}

// Label returns a display name
func (s Support) Label() string {
	switch s {
	case SimplySupported:
		return "Simply supported"
	case Cantilever:
		return "Cantilever"
	}
	return string(s)
}

// Label returns a display name
func (k Kind) Label() string {
	switch k {
	case KindPoint:
		return "Point Load"
	case KindDistributed:
		return "Distributed Load"
	case KindMoment:
		return "Applied Moment"
	}
	return string(k)
}

// Fields maps each load parameter to the quantity kind used for unit conversion
var Fields = map[Kind]map[string]units.Kind{
	KindPoint: {
		"magnitude": units.Force,
		"position":  units.LengthSpan,
	},
	KindDistributed: {
		"intensity": units.DistributedLoad,
	},
	KindMoment: {
		"magnitude": units.Moment,
	},
}

var aliases = map[Kind]map[string]string{
	KindPoint:       {"force": "magnitude", "distance": "position"},
	KindDistributed: {"load_intensity": "intensity", "loadintensity": "intensity", "magnitude": "intensity", "w": "intensity"},
	KindMoment:      {"moment": "magnitude", "m0": "magnitude"},
}

// Normalize maps the web form names ("force", "distance", "loadIntensity") onto canonical keys.
// Two keys naming the same field ("force" and "magnitude") are rejected.
func Normalize(kind Kind, params map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(params))
	for k, v := range params {
		key := strings.ToLower(strings.TrimSpace(k))
		if a, ok := aliases[kind][key]; ok {
			key = a
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: %s load %q", ErrDuplicateField, kind, key)
		}
		out[key] = v
	}
	return out, nil
}

// FromParams builds a load case from canonical values; it does not validate against a span
func FromParams(kind Kind, params map[string]float64) (Case, error) {
	p, err := Normalize(kind, params)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindPoint:
		pos, ok := p["position"]
		if !ok {
			return nil, fmt.Errorf("%w: point position is required", ErrIncompleteLoadCase)
		}
		return Point{Magnitude: p["magnitude"], Position: pos}, nil
	case KindDistributed:
		return Distributed{Intensity: p["intensity"]}, nil
	case KindMoment:
		return Moment{Magnitude: p["magnitude"]}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLoad, kind)
}

// Defaults returns the canonical starting values of the calculator form
func Defaults(kind Kind) map[string]float64 {
	switch kind {
	case KindPoint:
		return map[string]float64{"magnitude": 10000, "position": 1}
	case KindDistributed:
		return map[string]float64{"intensity": 5000}
	case KindMoment:
		return map[string]float64{"magnitude": 15000}
	}
	return nil
}

// DefaultSpan is the beam length (m) the calculator form starts from
const DefaultSpan = 3.0
