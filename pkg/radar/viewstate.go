// pkg/radar/viewstate.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	gomath "math"

	"github.com/shridharbhandiwad/C2/pkg/math"
)

const (
	MinZoom = 1.0
	MaxZoom = 20.0

	MinRangeM = 100.0
	MaxRangeM = 50000.0

	// Number of zoom steps per halving of the range scale; a tuning
	// constant for how fast the 1-20 dial moves through the range extent.
	zoomStepsPerOctave = 2.5
)

// ViewState holds the map view: the geographic center, the 1-20 zoom dial,
// the derived ground range, and the viewport size in pixels. Zoom and
// RangeM are two projections of one logical value; every mutation goes
// through the Scope so that RangeM == ZoomToRangeScale(Zoom) always holds.
type ViewState struct {
	Center math.Point2LL
	Zoom   float64
	RangeM float64 // half-extent of the view along its shorter dimension
	Width  int
	Height int
}

// ZoomToRangeScale converts a map zoom level (1-20) to the range scale in
// meters: the ground distance from the view center to the nearer viewport
// edge. Higher zoom means a smaller range: zoom 1 is 50 km, each
// zoomStepsPerOctave levels halve it.
func ZoomToRangeScale(zoom float64) float64 {
	r := MaxRangeM / gomath.Pow(2, (zoom-MinZoom)/zoomStepsPerOctave)
	return math.Clamp(r, MinRangeM, MaxRangeM)
}

// RangeScaleToZoom is the algebraic inverse of ZoomToRangeScale, exposed
// so external range controls can stay synchronized with the zoom dial
// without re-deriving the formula.
func RangeScaleToZoom(rangeM float64) float64 {
	z := MinZoom + gomath.Log2(MaxRangeM/rangeM)*zoomStepsPerOctave
	return math.Clamp(z, MinZoom, MaxZoom)
}
