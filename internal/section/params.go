package section

import (
	"fmt"
	"strings"
)

// Fields lists the dimension keys each shape reads from a parameter map
var Fields = map[Shape][]string{
	ShapeRectangular:       {"width", "height"},
	ShapeCircular:          {"diameter"},
	ShapeHollowRectangular: {"outer_width", "outer_height", "wall_thickness"},
	ShapeHollowCircular:    {"outer_diameter", "wall_thickness"},
	ShapeIBeam:             {"height", "flange_width", "flange_thickness", "web_thickness"},
	ShapeTBeam:             {"height", "flange_width", "flange_thickness", "web_thickness"},
}

// aliases maps the camelCase web form field names onto canonical keys
var aliases = map[Shape]map[string]string{
	ShapeHollowRectangular: {"thickness": "wall_thickness"},
	ShapeHollowCircular:    {"thickness": "wall_thickness"},
	ShapeIBeam:             {"width": "flange_width"},
	ShapeTBeam:             {"width": "flange_width"},
}

// normalizeKey folds "outerWidth", "outer-width" and "outer_width" together
func normalizeKey(k string) string {
	var sb strings.Builder
	for i, r := range k {
		switch {
		case r == '-' || r == ' ':
			sb.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FieldName returns the canonical field name of key for shape
func FieldName(shape Shape, key string) string {
	k := normalizeKey(key)
	if a, ok := aliases[shape][k]; ok {
		return a
	}
	return k
}

// Normalize returns params keyed by the canonical field names of shape.
// Unknown keys are kept so callers can report them. Two keys naming the
// same field ("width" and "flange_width" on an I-beam) are rejected.
func Normalize(shape Shape, params map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(params))
	for k, v := range params {
		key := FieldName(shape, k)
		if _, dup := out[key]; dup {
			return nil, duplicate(shape, key)
		}
		out[key] = v
	}
	return out, nil
}

// FromParams builds a Geometry from a shape tag and a numeric field map (mm).
// Absent fields are left at zero and rejected by Validate; no value is substituted.
func FromParams(shape Shape, params map[string]float64) (Geometry, error) {
	p, err := Normalize(shape, params)
	if err != nil {
		return nil, err
	}
	var g Geometry
	switch shape {
	case ShapeRectangular:
		g = Rectangular{Width: p["width"], Height: p["height"]}
	case ShapeCircular:
		g = Circular{Diameter: p["diameter"]}
	case ShapeHollowRectangular:
		g = HollowRectangular{OuterWidth: p["outer_width"], OuterHeight: p["outer_height"], WallThickness: p["wall_thickness"]}
	case ShapeHollowCircular:
		g = HollowCircular{OuterDiameter: p["outer_diameter"], WallThickness: p["wall_thickness"]}
	case ShapeIBeam:
		g = IBeam{Height: p["height"], FlangeWidth: p["flange_width"], FlangeThickness: p["flange_thickness"], WebThickness: p["web_thickness"]}
	case ShapeTBeam:
		g = TBeam{Height: p["height"], FlangeWidth: p["flange_width"], FlangeThickness: p["flange_thickness"], WebThickness: p["web_thickness"]}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Defaults returns the starting dimensions (mm) of the calculator form per shape
func Defaults(shape Shape) map[string]float64 {
	switch shape {
	case ShapeIBeam, ShapeTBeam:
		return map[string]float64{"height": 200, "flange_width": 100, "flange_thickness": 10, "web_thickness": 6}
	case ShapeRectangular:
		return map[string]float64{"width": 50, "height": 100}
	case ShapeCircular:
		return map[string]float64{"diameter": 100}
	case ShapeHollowRectangular:
		return map[string]float64{"outer_width": 50, "outer_height": 100, "wall_thickness": 5}
	case ShapeHollowCircular:
		return map[string]float64{"outer_diameter": 100, "wall_thickness": 5}
	}
	return nil
}
