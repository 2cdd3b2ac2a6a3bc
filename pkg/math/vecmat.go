// pkg/math/vecmat.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

// Operations on 2D vectors represented as [2]float64; following the usual
// convention, index 0 is x and index 1 is y.

func Add2f(a [2]float64, b [2]float64) [2]float64 {
	return [2]float64{a[0] + b[0], a[1] + b[1]}
}

func Sub2f(a [2]float64, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

func Scale2f(v [2]float64, s float64) [2]float64 {
	return [2]float64{v[0] * s, v[1] * s}
}

func Length2f(v [2]float64) float64 {
	return gomath.Hypot(v[0], v[1])
}

func Distance2f(a [2]float64, b [2]float64) float64 {
	return Length2f(Sub2f(a, b))
}

func Normalize2f(v [2]float64) [2]float64 {
	l := Length2f(v)
	if l == 0 {
		return [2]float64{0, 0}
	}
	return Scale2f(v, 1/l)
}

// CirclePoints returns the vertices for a unit circle at the origin with n
// segments; the first point is at the top of the circle and the rest
// proceed clockwise.
func CirclePoints(nsegs int) [][2]float64 {
	circle := make([][2]float64, 0, nsegs)
	for d := 0; d < nsegs; d++ {
		angle := Radians(float64(d) / float64(nsegs) * 360)
		circle = append(circle, [2]float64{gomath.Sin(angle), gomath.Cos(angle)})
	}
	return circle
}
