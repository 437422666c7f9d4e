package load

import (
	"fmt"
)

// PeakMoment returns the maximum bending moment (N·m) of c over a span of L meters.
//
//	simply supported:  point P·a·(L−a)/L    distributed w·L²/8    moment M0
//	cantilever:        point P·a            distributed w·L²/2    moment M0
//
// The sign convention is dropped; the result is a magnitude.
func PeakMoment(c Case, span float64, support Support) (float64, error) {
	if c == nil {
		return 0, ErrIncompleteLoadCase
	}
	if err := c.Validate(span); err != nil {
		return 0, err
	}
	L := span

	switch support {
	case SimplySupported:
		switch lc := c.(type) {
		case Point:
			a := lc.Position
			return lc.Magnitude * a * (L - a) / L, nil
		case Distributed:
			return lc.Intensity * L * L / 8, nil
		case Moment:
			return lc.Magnitude, nil
		}
	case Cantilever:
		switch lc := c.(type) {
		case Point:
			return lc.Magnitude * lc.Position, nil
		case Distributed:
			return lc.Intensity * L * L / 2, nil
		case Moment:
			return lc.Magnitude, nil
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSupport, support)
	}
	return 0, fmt.Errorf("%w: %T", ErrUnknownLoad, c)
}

// MomentAt returns the bending moment magnitude (N·m) at x meters from the x = 0 support.
// x is clamped to [0, L].
func MomentAt(c Case, span float64, support Support, x float64) (float64, error) {
	if c == nil {
		return 0, ErrIncompleteLoadCase
	}
	if err := c.Validate(span); err != nil {
		return 0, err
	}
	L := span
	x = min(max(x, 0), L)

	switch support {
	case SimplySupported:
		switch lc := c.(type) {
		case Point:
			a := lc.Position
			if x <= a {
				return lc.Magnitude * (L - a) * x / L, nil
			}
			return lc.Magnitude * a * (L - x) / L, nil
		case Distributed:
			return lc.Intensity * x * (L - x) / 2, nil
		case Moment:
			return lc.Magnitude * (1 - x/L), nil
		}
	case Cantilever:
		switch lc := c.(type) {
		case Point:
			if x <= lc.Position {
				return lc.Magnitude * (lc.Position - x), nil
			}
			return 0, nil
		case Distributed:
			return lc.Intensity * (L - x) * (L - x) / 2, nil
		case Moment:
			return lc.Magnitude, nil
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSupport, support)
	}
	return 0, fmt.Errorf("%w: %T", ErrUnknownLoad, c)
}
