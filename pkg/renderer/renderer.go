// pkg/renderer/renderer.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

// Canvas abstracts the painting substrate that actually puts pixels (or
// terminal cells, or GL vertices) on the screen. The map core only ever
// emits screen-space geometry through this interface; it never draws
// directly. Coordinates are pixels with the origin at the top left and y
// increasing downward.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)

	DrawLine(p0, p1 [2]float64, color RGB)
	DrawText(s string, p [2]float64, color RGB)

	// Clear erases the canvas to its background color; called once at the
	// start of each frame.
	Clear()

	// Flush presents everything drawn since the last Clear.
	Flush()
}
