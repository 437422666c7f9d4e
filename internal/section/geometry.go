package section

import (
	"math"
)

// circleSegments is the number of edges used to approximate round outlines
const circleSegments = 360

// Point represents a 2D coordinate in the section plane.
// Y points upward; the origin sits at the bottom-left of the bounding box.
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Polygon is a simple closed polygon; the closing edge is implied
type Polygon []Point

// Outline is a section boundary with optional holes
type Outline struct {
	Outer Polygon
	Holes []Polygon
}

// signedArea returns the shoelace area, positive for counter-clockwise polygons
func (p Polygon) signedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

// Area returns the enclosed area (mm²)
func (p Polygon) Area() float64 {
	return math.Abs(p.signedArea())
}

// Contains reports whether pt lies inside p (even-odd rule)
func (p Polygon) Contains(pt Point) bool {
	in := false
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				in = !in
			}
		}
	}
	return in
}

// moments returns the area and first and second moments of area about the X axis
// (y = 0), signs normalized so that area is positive.
func (p Polygon) moments() (area, qx, ix float64) {
	n := len(p)
	if n < 3 {
		return 0, 0, 0
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p[i].X*p[j].Y - p[j].X*p[i].Y
		area += cross
		qx += (p[i].Y + p[j].Y) * cross
		ix += (p[i].Y*p[i].Y + p[i].Y*p[j].Y + p[j].Y*p[j].Y) * cross
	}
	area /= 2
	qx /= 6
	ix /= 12
	if area < 0 {
		area, qx, ix = -area, -qx, -ix
	}
	return area, qx, ix
}

// Bounds returns the bounding box of the outer boundary
func (o Outline) Bounds() (minX, minY, maxX, maxY float64) {
	if len(o.Outer) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = o.Outer[0].X, o.Outer[0].X
	minY, maxY = o.Outer[0].Y, o.Outer[0].Y
	for _, v := range o.Outer {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// Contains reports whether pt lies in solid material
func (o Outline) Contains(pt Point) bool {
	if !o.Outer.Contains(pt) {
		return false
	}
	for _, h := range o.Holes {
		if h.Contains(pt) {
			return false
		}
	}
	return true
}

// Area returns the net area (outer minus holes)
func (o Outline) Area() float64 {
	a := o.Outer.Area()
	for _, h := range o.Holes {
		a -= h.Area()
	}
	return a
}

// Properties integrates the outline numerically: net area, centroidal moment of
// inertia about the horizontal axis and the elastic section modulus to the farthest fiber.
func (o Outline) Properties() Properties {
	area, qx, ix := o.Outer.moments()
	for _, h := range o.Holes {
		ha, hq, hi := h.moments()
		area -= ha
		qx -= hq
		ix -= hi
	}
	if area <= 0 {
		return Properties{}
	}
	cy := qx / area
	ic := ix - area*cy*cy

	_, minY, _, maxY := o.Bounds()
	c := math.Max(maxY-cy, cy-minY)
	props := Properties{
		MomentOfInertia: ic,
		Area:            area,
		Depth:           maxY - minY,
	}
	if c > 0 {
		props.SectionModulus = ic / c
	}
	return props
}

func rectangle(x0, y0, w, h float64) Polygon {
	return Polygon{
		{X: x0, Y: y0},
		{X: x0 + w, Y: y0},
		{X: x0 + w, Y: y0 + h},
		{X: x0, Y: y0 + h},
	}
}

func circle(cx, cy, r float64) Polygon {
	p := make(Polygon, circleSegments)
	for i := range p {
		th := 2 * math.Pi * float64(i) / circleSegments
		p[i] = Point{X: cx + r*math.Cos(th), Y: cy + r*math.Sin(th)}
	}
	return p
}

// Outline of the rectangle
func (r Rectangular) Outline() (Outline, error) {
	if err := r.Validate(); err != nil {
		return Outline{}, err
	}
	return Outline{Outer: rectangle(0, 0, r.Width, r.Height)}, nil
}

// Outline approximates the circle with a regular polygon
func (c Circular) Outline() (Outline, error) {
	if err := c.Validate(); err != nil {
		return Outline{}, err
	}
	r := c.Diameter / 2
	return Outline{Outer: circle(r, r, r)}, nil
}

// Outline of the tube with its inner void as a hole
func (h HollowRectangular) Outline() (Outline, error) {
	if err := h.Validate(); err != nil {
		return Outline{}, err
	}
	t := h.WallThickness
	return Outline{
		Outer: rectangle(0, 0, h.OuterWidth, h.OuterHeight),
		Holes: []Polygon{rectangle(t, t, h.OuterWidth-2*t, h.OuterHeight-2*t)},
	}, nil
}

// Outline of the round tube
func (h HollowCircular) Outline() (Outline, error) {
	if err := h.Validate(); err != nil {
		return Outline{}, err
	}
	r := h.OuterDiameter / 2
	return Outline{
		Outer: circle(r, r, r),
		Holes: []Polygon{circle(r, r, r-h.WallThickness)},
	}, nil
}

// Outline traces the I-section counter-clockwise from the bottom-left corner
func (b IBeam) Outline() (Outline, error) {
	if err := b.Validate(); err != nil {
		return Outline{}, err
	}
	w, h, tf, tw := b.FlangeWidth, b.Height, b.FlangeThickness, b.WebThickness
	xl := (w - tw) / 2
	xr := xl + tw
	return Outline{Outer: Polygon{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: tf},
		{X: xr, Y: tf},
		{X: xr, Y: h - tf},
		{X: w, Y: h - tf},
		{X: w, Y: h},
		{X: 0, Y: h},
		{X: 0, Y: h - tf},
		{X: xl, Y: h - tf},
		{X: xl, Y: tf},
		{X: 0, Y: tf},
	}}, nil
}

func (TBeam) Outline() (Outline, error) {
	return Outline{}, ErrUnimplemented
}
