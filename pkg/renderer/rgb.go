// pkg/renderer/rgb.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"github.com/shridharbhandiwad/C2/pkg/math"
)

type RGB struct {
	R, G, B float32
}

func LerpRGB(x float32, a, b RGB) RGB {
	lerp := func(x, a, b float32) float32 { return (1-x)*a + x*b }
	return RGB{R: lerp(x, a.R, b.R), G: lerp(x, a.G, b.G), B: lerp(x, a.B, b.B)}
}

func (r RGB) Equals(other RGB) bool {
	return r.R == other.R && r.G == other.G && r.B == other.B
}

func (r RGB) Scale(v float32) RGB {
	return RGB{R: r.R * v, G: r.G * v, B: r.B * v}
}

// RGBFromHex converts a packed integer color value to an RGB where the low
// 8 bits give blue, the next 8 give green, and then the next 8 give red.
func RGBFromHex(c int) RGB {
	r, g, b := (c>>16)&255, (c>>8)&255, c&255
	return RGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

func RGBFromUInt8(r uint8, g uint8, b uint8) RGB {
	return RGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

// UInt8 returns the color as 8-bit components, clamping out-of-range
// values.
func (r RGB) UInt8() (uint8, uint8, uint8) {
	c := func(v float32) uint8 { return uint8(math.Clamp(v, 0, 1)*255 + 0.5) }
	return c(r.R), c(r.G), c(r.B)
}
