// pkg/radar/grid.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	gomath "math"

	"github.com/shridharbhandiwad/C2/pkg/math"
)

// The coordinate grid adapts its spacing to the current range so that the
// number of visible lines stays roughly constant as the user zooms.
const (
	// Rough number of grid lines wanted across the view half-extent.
	gridTargetLines = 5

	// Lines generated per axis; enough to cover the viewport with the
	// grid anchored to absolute coordinates.
	gridLineCount = 12
)

// GridLine is one grid line given by its two geographic endpoints; they
// are projected to the screen at draw time.
type GridLine struct {
	P0, P1 math.Point2LL
}

// GridSpacing returns the grid line spacing in degrees for the given range
// scale, rounded up to a power-of-ten multiple so that spacing never
// drifts to illegible fractions under continuous zoom. It returns false if
// the computed raw spacing is non-positive or non-finite; such a value
// must not reach Log10.
func GridSpacing(rangeM float64) (float64, bool) {
	raw := rangeM / math.MetersPerDegreeLatitude / gridTargetLines
	if raw <= 0 || gomath.IsInf(raw, 0) || gomath.IsNaN(raw) {
		return 0, false
	}

	magnitude := gomath.Pow(10, gomath.Floor(gomath.Log10(raw)))
	return gomath.Ceil(raw/magnitude) * magnitude, true
}

// GridLines returns the latitude and longitude grid lines for the given
// view center and range, anchored to absolute geographic coordinates: the
// grid snaps as the center crosses a spacing boundary rather than swimming
// during a pan. An empty slice is returned on degenerate spacing so the
// frame just skips the grid.
func GridLines(center math.Point2LL, rangeM float64) []GridLine {
	spacing, ok := GridSpacing(rangeM)
	if !ok {
		return nil
	}

	startLat := gomath.Floor(center.Latitude()/spacing)*spacing - spacing*gridTargetLines
	startLon := gomath.Floor(center.Longitude()/spacing)*spacing - spacing*gridTargetLines

	lines := make([]GridLine, 0, 2*gridLineCount)
	for i := 0; i < gridLineCount; i++ {
		lat := startLat + float64(i)*spacing
		lines = append(lines, GridLine{
			P0: math.Point2LL{startLon, lat},
			P1: math.Point2LL{startLon + spacing*gridLineCount, lat},
		})
	}
	for i := 0; i < gridLineCount; i++ {
		lon := startLon + float64(i)*spacing
		lines = append(lines, GridLine{
			P0: math.Point2LL{lon, startLat},
			P1: math.Point2LL{lon, startLat + spacing*gridLineCount},
		})
	}
	return lines
}
