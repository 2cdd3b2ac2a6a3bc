// cmd/c2scope/canvas.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	gomath "math"

	"github.com/gdamore/tcell/v2"

	"github.com/shridharbhandiwad/C2/pkg/renderer"
)

// termCanvas adapts a tcell screen to the renderer.Canvas interface; one
// terminal cell is one pixel. Lines are rasterized with Bresenham's
// algorithm since the terminal gives us no primitives beyond SetContent.
type termCanvas struct {
	screen     tcell.Screen
	background renderer.RGB
}

func newTermCanvas(screen tcell.Screen, background renderer.RGB) *termCanvas {
	return &termCanvas{screen: screen, background: background}
}

func tcellColor(c renderer.RGB) tcell.Color {
	r, g, b := c.UInt8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c *termCanvas) style(color renderer.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(color)).Background(tcellColor(c.background))
}

func (c *termCanvas) Size() (int, int) {
	return c.screen.Size()
}

func (c *termCanvas) Clear() {
	c.screen.Fill(' ', c.style(c.background))
}

func (c *termCanvas) Flush() {
	c.screen.Show()
}

func (c *termCanvas) DrawLine(p0, p1 [2]float64, color renderer.RGB) {
	x0, y0 := int(gomath.Round(p0[0])), int(gomath.Round(p0[1]))
	x1, y1 := int(gomath.Round(p1[0])), int(gomath.Round(p1[1]))

	st := c.style(color)
	glyph := lineGlyph(x1-x0, y1-y0)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.screen.SetContent(x0, y0, glyph, nil, st)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *termCanvas) DrawText(s string, p [2]float64, color renderer.RGB) {
	x, y := int(gomath.Round(p[0])), int(gomath.Round(p[1]))
	st := c.style(color)
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

// lineGlyph picks a box-drawing rune that roughly matches the line's
// slope so that grids and rings read cleanly at cell resolution.
func lineGlyph(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
