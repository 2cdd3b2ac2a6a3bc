// pkg/radar/transform.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"github.com/shridharbhandiwad/C2/pkg/math"
)

// mapMarginPixels is held back from the viewport half-extent to reserve
// space for labels at the edges.
const mapMarginPixels = 20

// MapRadius returns the pixel half-extent that anchors all scaling: half
// the shorter viewport dimension, less the label margin. It is not
// positive for degenerate viewports.
func MapRadius(width, height int) float64 {
	return float64(min(width, height))/2 - mapMarginPixels
}

// ScopeTransform maps between geographic coordinates and screen pixels for
// one view state; it is rebuilt each frame from the current ViewState.
// Screen coordinates have their origin at the top left with y increasing
// downward, so north is negated on the way through.
type ScopeTransform struct {
	center        math.Point2LL
	width, height float64
	scale         float64 // pixels per meter
}

// GetScopeTransform returns the transform for the given view state. It
// returns false for a degenerate viewport (MapRadius not positive) or a
// non-positive range; the caller must skip painting that frame rather than
// proceed with a meaningless scale.
func GetScopeTransform(vs ViewState) (ScopeTransform, bool) {
	radius := MapRadius(vs.Width, vs.Height)
	if radius <= 0 || vs.RangeM <= 0 {
		return ScopeTransform{}, false
	}

	return ScopeTransform{
		center: vs.Center,
		width:  float64(vs.Width),
		height: float64(vs.Height),
		scale:  radius / vs.RangeM,
	}, true
}

// ScreenFromLL transforms a geographic position to screen pixel
// coordinates.
func (t *ScopeTransform) ScreenFromLL(p math.Point2LL) [2]float64 {
	m := math.LocalMetersFromLL(p, t.center)
	return [2]float64{t.width/2 + m[0]*t.scale, t.height/2 - m[1]*t.scale}
}

// LLFromScreen transforms a screen pixel position to geographic
// coordinates; it is the exact inverse of ScreenFromLL.
func (t *ScopeTransform) LLFromScreen(p [2]float64) math.Point2LL {
	m := [2]float64{(p[0] - t.width/2) / t.scale, -(p[1] - t.height/2) / t.scale}
	return math.LLFromLocalMeters(m, t.center)
}

// PixelsPerMeter returns the uniform ground-distance scale of the view.
func (t *ScopeTransform) PixelsPerMeter() float64 {
	return t.scale
}
