package units

import (
	"errors"
	"fmt"
	"strings"
)

// System identifies the unit system user input is expressed in
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// Kind identifies the physical quantity a value represents.
// The converter never guesses a kind from a field name; callers pass it explicitly.
type Kind string

const (
	LengthSmall     Kind = "length_small"     // section dimensions: in -> mm
	LengthSpan      Kind = "length_span"      // beam span and load position: in -> m
	Force           Kind = "force"            // lb -> N
	DistributedLoad Kind = "distributed_load" // lb/in -> N/m
	Moment          Kind = "moment"           // lb·in -> N·m
	Modulus         Kind = "modulus"          // ksi -> GPa
	Stress          Kind = "stress"           // ksi -> MPa
	Density         Kind = "density"          // lb/ft³ -> kg/m³
)

// Imperial to canonical conversion factors
const (
	MillimetersPerInch       = 25.4
	NewtonsPerPound          = 4.44822
	NewtonsPerMeterPerLbIn   = 175.127  // 4.44822 N/lb × 39.37 in/m
	NewtonMetersPerPoundInch = 0.112985 // 1 lb·in
	GigapascalsPerKsi        = 0.00689476
	MegapascalsPerKsi        = 6.89476
	KgPerCubicMeterPerLbFt3  = 16.0185
)

var (
	ErrInvalidUnitKind   = errors.New("invalid unit kind")
	ErrInvalidUnitSystem = errors.New("invalid unit system")
)

// Kinds lists every recognized quantity kind
var Kinds = []Kind{LengthSmall, LengthSpan, Force, DistributedLoad, Moment, Modulus, Stress, Density}

// ParseSystem accepts "metric"/"si" and "imperial"/"us"; empty defaults to metric
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric", "si":
		return Metric, nil
	case "imperial", "us":
		return Imperial, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUnitSystem, s)
}

// factor returns the multiplier taking an imperial value of kind k to canonical units
func factor(k Kind) (float64, error) {
	switch k {
	case LengthSmall:
		return MillimetersPerInch, nil
	case LengthSpan:
		return MillimetersPerInch / MillimetersPerMeter, nil
	case Force:
		return NewtonsPerPound, nil
	case DistributedLoad:
		return NewtonsPerMeterPerLbIn, nil
	case Moment:
		return NewtonMetersPerPoundInch, nil
	case Modulus:
		return GigapascalsPerKsi, nil
	case Stress:
		return MegapascalsPerKsi, nil
	case Density:
		return KgPerCubicMeterPerLbFt3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnitKind, k)
}

// ToCanonical converts value of the given kind from system into canonical units
// (mm, m, N, N/m, N·m, GPa, MPa, kg/m³).
func ToCanonical(value float64, kind Kind, system System) (float64, error) {
	f, err := factor(kind)
	if err != nil {
		return 0, err
	}
	switch system {
	case Metric:
		return value, nil
	case Imperial:
		return value * f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnitSystem, system)
}

// FromCanonical is the inverse of ToCanonical
func FromCanonical(value float64, kind Kind, system System) (float64, error) {
	f, err := factor(kind)
	if err != nil {
		return 0, err
	}
	switch system {
	case Metric:
		return value, nil
	case Imperial:
		return value / f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnitSystem, system)
}

// MustFromCanonical is FromCanonical for a kind and system known to be valid.
// It panics otherwise.
func MustFromCanonical(value float64, kind Kind, system System) float64 {
	v, err := FromCanonical(value, kind, system)
	if err != nil {
		panic(err)
	}
	return v
}

// Symbol returns the display unit for kind in system
func Symbol(kind Kind, system System) string {
	imperial := system == Imperial
	switch kind {
	case LengthSmall:
		if imperial {
			return "in"
		}
		return "mm"
	case LengthSpan:
		if imperial {
			return "in"
		}
		return "m"
	case Force:
		if imperial {
			return "lb"
		}
		return "N"
	case DistributedLoad:
		if imperial {
			return "lb/in"
		}
		return "N/m"
	case Moment:
		if imperial {
			return "lb·in"
		}
		return "N·m"
	case Modulus:
		if imperial {
			return "ksi"
		}
		return "GPa"
	case Stress:
		if imperial {
			return "ksi"
		}
		return "MPa"
	case Density:
		if imperial {
			return "lb/ft³"
		}
		return "kg/m³"
	}
	return ""
}
