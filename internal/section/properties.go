package section

import (
	"math"
)

// ComputeProperties derives moment of inertia and section modulus from g.
// A nil geometry is incomplete.
func ComputeProperties(g Geometry) (Properties, error) {
	if g == nil {
		return Properties{}, ErrIncompleteGeometry
	}
	return g.Properties()
}

// finite rejects properties that overflowed float64 (+Inf, or NaN from Inf − Inf)
func finite(shape Shape, p Properties) (Properties, error) {
	for _, v := range []float64{p.MomentOfInertia, p.SectionModulus, p.Area} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Properties{}, invalid(shape, "dimensions are too large to compute properties")
		}
	}
	return p, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Validate checks the rectangle dimensions
func (r Rectangular) Validate() error {
	if !positive(r.Width) {
		return missing(ShapeRectangular, "width")
	}
	if !positive(r.Height) {
		return missing(ShapeRectangular, "height")
	}
	return nil
}

// Properties: I = b·h³/12, S = I/(h/2)
func (r Rectangular) Properties() (Properties, error) {
	if err := r.Validate(); err != nil {
		return Properties{}, err
	}
	i := r.Width * math.Pow(r.Height, 3) / 12
	return finite(ShapeRectangular, Properties{
		MomentOfInertia: i,
		SectionModulus:  i / (r.Height / 2),
		Area:            r.Width * r.Height,
		Depth:           r.Height,
	})
}

// Validate checks the diameter
func (c Circular) Validate() error {
	if !positive(c.Diameter) {
		return missing(ShapeCircular, "diameter")
	}
	return nil
}

// Properties: I = π·d⁴/64, S = I/(d/2)
func (c Circular) Properties() (Properties, error) {
	if err := c.Validate(); err != nil {
		return Properties{}, err
	}
	i := math.Pi * math.Pow(c.Diameter, 4) / 64
	return finite(ShapeCircular, Properties{
		MomentOfInertia: i,
		SectionModulus:  i / (c.Diameter / 2),
		Area:            math.Pi * c.Diameter * c.Diameter / 4,
		Depth:           c.Diameter,
	})
}

// Validate checks the tube dimensions; the wall must be thinner than half the smaller side
func (h HollowRectangular) Validate() error {
	if !positive(h.OuterWidth) {
		return missing(ShapeHollowRectangular, "outer_width")
	}
	if !positive(h.OuterHeight) {
		return missing(ShapeHollowRectangular, "outer_height")
	}
	if !positive(h.WallThickness) {
		return missing(ShapeHollowRectangular, "wall_thickness")
	}
	if h.WallThickness >= math.Min(h.OuterWidth, h.OuterHeight)/2 {
		return invalid(ShapeHollowRectangular, "wall_thickness must be less than half the smaller outer dimension")
	}
	return nil
}

// Properties: I = [B·H³ − (B−2t)(H−2t)³]/12, S = I/(H/2)
func (h HollowRectangular) Properties() (Properties, error) {
	if err := h.Validate(); err != nil {
		return Properties{}, err
	}
	t := h.WallThickness
	bi, hi := h.OuterWidth-2*t, h.OuterHeight-2*t
	i := (h.OuterWidth*math.Pow(h.OuterHeight, 3) - bi*math.Pow(hi, 3)) / 12
	return finite(ShapeHollowRectangular, Properties{
		MomentOfInertia: i,
		SectionModulus:  i / (h.OuterHeight / 2),
		Area:            h.OuterWidth*h.OuterHeight - bi*hi,
		Depth:           h.OuterHeight,
	})
}

// Validate checks the tube dimensions
func (h HollowCircular) Validate() error {
	if !positive(h.OuterDiameter) {
		return missing(ShapeHollowCircular, "outer_diameter")
	}
	if !positive(h.WallThickness) {
		return missing(ShapeHollowCircular, "wall_thickness")
	}
	if h.WallThickness >= h.OuterDiameter/2 {
		return invalid(ShapeHollowCircular, "wall_thickness must be less than half the outer diameter")
	}
	return nil
}

// Properties: I = π·[D⁴ − (D−2t)⁴]/64, S = I/(D/2)
func (h HollowCircular) Properties() (Properties, error) {
	if err := h.Validate(); err != nil {
		return Properties{}, err
	}
	d := h.OuterDiameter
	di := d - 2*h.WallThickness
	i := math.Pi * (math.Pow(d, 4) - math.Pow(di, 4)) / 64
	return finite(ShapeHollowCircular, Properties{
		MomentOfInertia: i,
		SectionModulus:  i / (d / 2),
		Area:            math.Pi * (d*d - di*di) / 4,
		Depth:           d,
	})
}

// Validate checks the I-section proportions: 2·tf < h and tw < b
func (b IBeam) Validate() error {
	if !positive(b.Height) {
		return missing(ShapeIBeam, "height")
	}
	if !positive(b.FlangeWidth) {
		return missing(ShapeIBeam, "flange_width")
	}
	if !positive(b.FlangeThickness) {
		return missing(ShapeIBeam, "flange_thickness")
	}
	if !positive(b.WebThickness) {
		return missing(ShapeIBeam, "web_thickness")
	}
	if 2*b.FlangeThickness >= b.Height {
		return invalid(ShapeIBeam, "flanges (2·flange_thickness) must be shallower than height")
	}
	if b.WebThickness >= b.FlangeWidth {
		return invalid(ShapeIBeam, "web_thickness must be less than flange_width")
	}
	return nil
}

// Properties uses the thin-wall subtraction: I = b·h³/12 − (b−tw)(h−2tf)³/12, S = I/(h/2)
func (b IBeam) Properties() (Properties, error) {
	if err := b.Validate(); err != nil {
		return Properties{}, err
	}
	web := b.Height - 2*b.FlangeThickness
	i := b.FlangeWidth*math.Pow(b.Height, 3)/12 - (b.FlangeWidth-b.WebThickness)*math.Pow(web, 3)/12
	return finite(ShapeIBeam, Properties{
		MomentOfInertia: i,
		SectionModulus:  i / (b.Height / 2),
		Area:            b.FlangeWidth*b.Height - (b.FlangeWidth-b.WebThickness)*web,
		Depth:           b.Height,
	})
}

// Validate checks the T-section dimensions are present
func (b TBeam) Validate() error {
	if !positive(b.Height) {
		return missing(ShapeTBeam, "height")
	}
	if !positive(b.FlangeWidth) {
		return missing(ShapeTBeam, "flange_width")
	}
	if !positive(b.FlangeThickness) {
		return missing(ShapeTBeam, "flange_thickness")
	}
	if !positive(b.WebThickness) {
		return missing(ShapeTBeam, "web_thickness")
	}
	return nil
}

func (TBeam) Properties() (Properties, error) {
	return Properties{}, ErrUnimplemented
}
