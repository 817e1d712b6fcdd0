// Package easing models the cubic-bezier timing functions shown in the
// easing visualizer.
package easing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Control point limits. x is a time fraction, y may overshoot to allow
// back and elastic curves.
const (
	MinY = -0.5
	MaxY = 1.5
)

// Point is a control point in the unit square.
type Point struct {
	X, Y float64
}

// Curve is a cubic-bezier timing function from (0,0) to (1,1).
type Curve struct {
	P1, P2 Point
}

// Preset is a named curve.
type Preset struct {
	Name  string
	Curve Curve
}

// Default is the curve of the CSS "ease" keyword.
var Default = Curve{P1: Point{0.25, 0.1}, P2: Point{0.25, 1}}

var presets = []Preset{
	{"ease", Default},
	{"linear", Curve{Point{0, 0}, Point{1, 1}}},
	{"ease-in", Curve{Point{0.42, 0}, Point{1, 1}}},
	{"ease-out", Curve{Point{0, 0}, Point{0.58, 1}}},
	{"ease-in-out", Curve{Point{0.42, 0}, Point{0.58, 1}}},
	{"ease-in-back", Curve{Point{0.6, -0.28}, Point{0.735, 0.045}}},
	{"ease-out-back", Curve{Point{0.175, 0.885}, Point{0.32, 1.275}}},
	{"ease-in-out-back", Curve{Point{0.68, -0.55}, Point{0.265, 1.55}}},
}

// Presets returns the named curves in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Lookup returns the preset named name.
func Lookup(name string) (Curve, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p.Curve, true
		}
	}
	return Curve{}, false
}

// Clamp limits a control point to x in [0,1] and y in [MinY,MaxY].
func Clamp(p Point) Point {
	return Point{
		X: math.Max(0, math.Min(1, p.X)),
		Y: math.Max(MinY, math.Min(MaxY, p.Y)),
	}
}

// Clamped returns c with both control points clamped.
func (c Curve) Clamped() Curve {
	return Curve{P1: Clamp(c.P1), P2: Clamp(c.P2)}
}

// Move shifts control point 1 or 2 by (dx, dy) and clamps the result.
func (c Curve) Move(which int, dx, dy float64) Curve {
	switch which {
	case 1:
		c.P1 = Clamp(Point{c.P1.X + dx, c.P1.Y + dy})
	case 2:
		c.P2 = Clamp(Point{c.P2.X + dx, c.P2.Y + dy})
	}
	return c
}

// String formats the curve as a CSS value with two decimals per number.
func (c Curve) String() string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
		fixed(c.P1.X), fixed(c.P1.Y), fixed(c.P2.X), fixed(c.P2.Y))
}

// Declaration returns the curve as a transition-timing-function declaration.
func (c Curve) Declaration() string {
	return "transition-timing-function: " + c.String() + ";"
}

func fixed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// Parse reads a cubic-bezier(...) value or a preset name.
func Parse(s string) (Curve, error) {
	s = strings.TrimSpace(s)
	if c, ok := Lookup(s); ok {
		return c, nil
	}
	inner, ok := strings.CutPrefix(s, "cubic-bezier(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return Curve{}, fmt.Errorf("not a timing function: %q", s)
	}
	parts := strings.Split(strings.TrimSuffix(inner, ")"), ",")
	if len(parts) != 4 {
		return Curve{}, fmt.Errorf("cubic-bezier needs 4 numbers, got %d", len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Curve{}, fmt.Errorf("cubic-bezier argument %d: %w", i+1, err)
		}
		v[i] = f
	}
	if v[0] < 0 || v[0] > 1 || v[2] < 0 || v[2] > 1 {
		return Curve{}, fmt.Errorf("cubic-bezier x values must be within [0, 1]")
	}
	return Curve{Point{v[0], v[1]}, Point{v[2], v[3]}}, nil
}

// bezier evaluates one coordinate of the curve at parameter s.
func bezier(a, b, s float64) float64 {
	u := 1 - s
	return 3*u*u*s*a + 3*u*s*s*b + s*s*s
}

func bezierDeriv(a, b, s float64) float64 {
	u := 1 - s
	return 3*u*u*a + 6*u*s*(b-a) + 3*s*s*(1-b)
}

// Sample returns the animation progress at time fraction t in [0,1].
func (c Curve) Sample(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return bezier(c.P1.Y, c.P2.Y, c.solveX(t))
}

// solveX finds the curve parameter whose x equals t. Newton first, then
// bisection when the slope is too flat.
func (c Curve) solveX(t float64) float64 {
	const eps = 1e-7
	s := t
	for range 8 {
		x := bezier(c.P1.X, c.P2.X, s) - t
		if math.Abs(x) < eps {
			return s
		}
		d := bezierDeriv(c.P1.X, c.P2.X, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x / d
	}
	lo, hi := 0.0, 1.0
	s = t
	for range 64 {
		x := bezier(c.P1.X, c.P2.X, s)
		if math.Abs(x-t) < eps {
			return s
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}
