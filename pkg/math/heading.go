// pkg/math/heading.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

// Headings are expressed in degrees, 0 = north, increasing clockwise.

// NormalizeHeading returns an equivalent heading in [0, 360).
func NormalizeHeading(h float64) float64 {
	h = gomath.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// VectorFromHeading returns the unit direction vector for a heading in the
// north-up frame: +x east, +y north. North maps to (0,1) and east to (1,0).
func VectorFromHeading(h float64) [2]float64 {
	r := Radians(h)
	return [2]float64{gomath.Sin(r), gomath.Cos(r)}
}

// HeadingFromVector returns the heading of a vector in the north-up frame.
func HeadingFromVector(v [2]float64) float64 {
	return NormalizeHeading(Degrees(gomath.Atan2(v[0], v[1])))
}
