// pkg/renderer/builders.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"sync"

	"github.com/shridharbhandiwad/C2/pkg/math"
)

///////////////////////////////////////////////////////////////////////////
// DrawBuilders

// The *DrawBuilder types accumulate a number of independent things of the
// same type to draw and then hand them to a Canvas all together; drawing
// code builds up a frame's geometry without needing access to the Canvas
// itself.

// ColoredLinesDrawBuilder accumulates line segments with per-segment
// colors.
type ColoredLinesDrawBuilder struct {
	p     [][2]float64
	color []RGB
}

// Reset resets the internal arrays used for accumulating lines,
// maintaining the initial allocations.
func (l *ColoredLinesDrawBuilder) Reset() {
	l.p = l.p[:0]
	l.color = l.color[:0]
}

func (l *ColoredLinesDrawBuilder) AddLine(p0, p1 [2]float64, color RGB) {
	l.p = append(l.p, p0, p1)
	l.color = append(l.color, color)
}

// AddLineLoop adds lines that connect each successive pair of points, with
// the last vertex connecting back to the first.
func (l *ColoredLinesDrawBuilder) AddLineLoop(color RGB, p [][2]float64) {
	for i := range p {
		l.AddLine(p[i], p[(i+1)%len(p)], color)
	}
}

// AddCircle adds lines that draw the outline of a circle of the given
// radius in pixels centered at p. The nsegs parameter specifies the
// tessellation rate for the circle.
func (l *ColoredLinesDrawBuilder) AddCircle(p [2]float64, radius float64, nsegs int, color RGB) {
	circle := math.CirclePoints(nsegs)

	for i := 0; i < nsegs; i++ {
		p0 := math.Add2f(p, math.Scale2f(circle[i], radius))
		p1 := math.Add2f(p, math.Scale2f(circle[(i+1)%nsegs], radius))
		l.AddLine(p0, p1, color)
	}
}

// GenerateCommands draws the accumulated lines on the provided Canvas.
func (l *ColoredLinesDrawBuilder) GenerateCommands(c Canvas) {
	for i := 0; i < len(l.color); i++ {
		c.DrawLine(l.p[2*i], l.p[2*i+1], l.color[i])
	}
}

var linesBuilderPool = sync.Pool{New: func() any { return &ColoredLinesDrawBuilder{} }}

func GetColoredLinesDrawBuilder() *ColoredLinesDrawBuilder {
	return linesBuilderPool.Get().(*ColoredLinesDrawBuilder)
}

func ReturnColoredLinesDrawBuilder(l *ColoredLinesDrawBuilder) {
	l.Reset()
	linesBuilderPool.Put(l)
}

///////////////////////////////////////////////////////////////////////////

// TextDrawBuilder accumulates text strings to be drawn with their
// positions and colors.
type TextDrawBuilder struct {
	text  []string
	p     [][2]float64
	color []RGB
}

func (t *TextDrawBuilder) Reset() {
	t.text = t.text[:0]
	t.p = t.p[:0]
	t.color = t.color[:0]
}

func (t *TextDrawBuilder) AddText(s string, p [2]float64, color RGB) {
	t.text = append(t.text, s)
	t.p = append(t.p, p)
	t.color = append(t.color, color)
}

func (t *TextDrawBuilder) GenerateCommands(c Canvas) {
	for i := range t.text {
		c.DrawText(t.text[i], t.p[i], t.color[i])
	}
}

var textBuilderPool = sync.Pool{New: func() any { return &TextDrawBuilder{} }}

func GetTextDrawBuilder() *TextDrawBuilder {
	return textBuilderPool.Get().(*TextDrawBuilder)
}

func ReturnTextDrawBuilder(t *TextDrawBuilder) {
	t.Reset()
	textBuilderPool.Put(t)
}
