// pkg/radar/overlay.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"fmt"

	"github.com/shridharbhandiwad/C2/pkg/math"
	"github.com/shridharbhandiwad/C2/pkg/renderer"
	"github.com/shridharbhandiwad/C2/pkg/util"
)

const (
	// Defended-area ring radii, in meters on the ground.
	criticalZoneRadiusM = 500.0
	warningZoneRadiusM  = 1500.0

	// Track symbol half-size in pixels.
	trackSymbolPixels         = 8.0
	selectedTrackSymbolPixels = 12.0

	// Velocity vector length per unit speed, in pixels.
	velocityVectorScale = 0.5

	// Tracks slower than this draw no velocity vector; it would just be
	// noise on stationary returns.
	minVelocityVectorSpeed = 1.0

	crosshairArmPixels = 10.0
)

// ColorScheme holds the fixed display colors that are not per-track (track
// colors come from Classification.Color).
type ColorScheme struct {
	Background   renderer.RGB
	Grid         renderer.RGB
	Crosshair    renderer.RGB
	Text         renderer.RGB
	CriticalZone renderer.RGB
	WarningZone  renderer.RGB
}

func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Background:   renderer.RGBFromUInt8(30, 40, 50),
		Grid:         renderer.RGBFromUInt8(60, 70, 80),
		Crosshair:    renderer.RGBFromHex(0xffffff),
		Text:         renderer.RGBFromHex(0xffffff),
		CriticalZone: renderer.RGBFromHex(0xff0000),
		WarningZone:  renderer.RGBFromHex(0xffff00),
	}
}

// velocityVector returns the screen-space velocity indicator segment for a
// track with the given speed and heading, relative to the symbol position.
// The y component is negated since screen y grows downward. Returns false
// for near-stationary tracks.
func velocityVector(speedMPS, headingDeg float64) ([2]float64, bool) {
	if speedMPS <= minVelocityVectorSpeed {
		return [2]float64{}, false
	}
	dir := math.VectorFromHeading(headingDeg)
	return [2]float64{dir[0] * speedMPS * velocityVectorScale,
		-dir[1] * speedMPS * velocityVectorScale}, true
}

// diamondPoints returns the four vertices of a track diamond centered at p
// with the given half-size in pixels.
func diamondPoints(p [2]float64, size float64) [][2]float64 {
	return util.MapSlice([][2]float64{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
		func(d [2]float64) [2]float64 { return math.Add2f(p, math.Scale2f(d, size)) })
}

func (s *Scope) drawGrid(tf *ScopeTransform, ld *renderer.ColoredLinesDrawBuilder) {
	for _, line := range GridLines(s.view.Center, s.view.RangeM) {
		ld.AddLine(tf.ScreenFromLL(line.P0), tf.ScreenFromLL(line.P1), s.colors.Grid)
	}
}

// drawDefendedArea draws the two concentric protection-zone rings around
// the view center, converting their fixed ground radii to pixels with the
// same scale as the projection.
func (s *Scope) drawDefendedArea(tf *ScopeTransform, ld *renderer.ColoredLinesDrawBuilder) {
	center := tf.ScreenFromLL(s.view.Center)
	scale := tf.PixelsPerMeter()

	ld.AddCircle(center, criticalZoneRadiusM*scale, 90, s.colors.CriticalZone)
	ld.AddCircle(center, warningZoneRadiusM*scale, 90, s.colors.WarningZone)
}

func (s *Scope) drawTracks(tf *ScopeTransform, ld *renderer.ColoredLinesDrawBuilder, td *renderer.TextDrawBuilder) {
	for _, trk := range s.tracks.VisibleTracks() {
		if trk.State == TrackDropped {
			continue
		}

		pw := tf.ScreenFromLL(trk.Position)
		color := trk.Classification.Color()

		selected := trk.ID == s.selectedTrack
		size := util.Select(selected, selectedTrackSymbolPixels, trackSymbolPixels)
		if selected {
			// Brighten the selection toward white on top of the larger symbol.
			color = renderer.LerpRGB(0.3, color, renderer.RGBFromHex(0xffffff))
		}
		ld.AddLineLoop(color, diamondPoints(pw, size))

		if v, ok := velocityVector(trk.SpeedMPS, trk.HeadingDeg); ok {
			ld.AddLine(pw, math.Add2f(pw, v), color)
		}

		td.AddText(trk.ID, [2]float64{pw[0] + size + 5, pw[1] + 4}, s.colors.Text)
	}
}

func (s *Scope) drawCrosshair(ld *renderer.ColoredLinesDrawBuilder) {
	cx, cy := float64(s.view.Width)/2, float64(s.view.Height)/2
	ld.AddLine([2]float64{cx - crosshairArmPixels, cy}, [2]float64{cx + crosshairArmPixels, cy}, s.colors.Crosshair)
	ld.AddLine([2]float64{cx, cy - crosshairArmPixels}, [2]float64{cx, cy + crosshairArmPixels}, s.colors.Crosshair)
}

// drawStatusText puts the center coordinates and range readout in the
// lower-left corner.
func (s *Scope) drawStatusText(td *renderer.TextDrawBuilder) {
	var rangeStr string
	if s.view.RangeM >= 1000 {
		rangeStr = fmt.Sprintf("Range: %.1f km", s.view.RangeM/1000)
	} else {
		rangeStr = fmt.Sprintf("Range: %.0f m", s.view.RangeM)
	}

	status := fmt.Sprintf("Lat: %.4f  Lon: %.4f  %s",
		s.view.Center.Latitude(), s.view.Center.Longitude(), rangeStr)
	td.AddText(status, [2]float64{10, float64(s.view.Height) - 10}, s.colors.Text)
}
