// pkg/radar/transform_test.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"testing"

	"github.com/shridharbhandiwad/C2/pkg/math"
)

func TestTransformRoundTrip(t *testing.T) {
	centers := []math.Point2LL{
		{-118.2437, 34.0522},
		{77.5946, 12.9716},
		{0, 0},
	}
	viewports := [][2]int{{800, 600}, {600, 800}, {1920, 1080}, {200, 100}}
	rangesM := []float64{100, 1000, 5000, 50000}

	for _, center := range centers {
		for _, vp := range viewports {
			for _, rangeM := range rangesM {
				vs := ViewState{Center: center, Zoom: RangeScaleToZoom(rangeM), RangeM: rangeM,
					Width: vp[0], Height: vp[1]}
				tf, ok := GetScopeTransform(vs)
				if !ok {
					t.Fatalf("unexpected degenerate transform for viewport %v", vp)
				}

				// Probe points offset from the center by fractions of the
				// view extent.
				for _, f := range [][2]float64{{0, 0}, {0.5, 0.5}, {-0.3, 0.8}, {1, -1}} {
					p := math.LLFromLocalMeters([2]float64{f[0] * rangeM, f[1] * rangeM}, center)
					back := tf.LLFromScreen(tf.ScreenFromLL(p))
					if math.Abs(back[0]-p[0]) > 1e-6 || math.Abs(back[1]-p[1]) > 1e-6 {
						t.Errorf("center %v viewport %v range %v: %v round-tripped to %v",
							center, vp, rangeM, p, back)
					}
				}
			}
		}
	}
}

func TestTransformOrientation(t *testing.T) {
	center := math.Point2LL{-118.2437, 34.0522}
	vs := ViewState{Center: center, Zoom: 10, RangeM: 5000, Width: 800, Height: 600}
	tf, ok := GetScopeTransform(vs)
	if !ok {
		t.Fatal("unexpected degenerate transform")
	}

	pc := tf.ScreenFromLL(center)
	if pc[0] != 400 || pc[1] != 300 {
		t.Errorf("view center should project to the viewport center, got %v", pc)
	}

	// North of center is up the screen (smaller y), east is right.
	north := tf.ScreenFromLL(math.LLFromLocalMeters([2]float64{0, 1000}, center))
	if north[1] >= pc[1] {
		t.Errorf("north projected downward: %v vs %v", north, pc)
	}
	east := tf.ScreenFromLL(math.LLFromLocalMeters([2]float64{1000, 0}, center))
	if east[0] <= pc[0] {
		t.Errorf("east projected leftward: %v vs %v", east, pc)
	}
}

func TestDegenerateViewport(t *testing.T) {
	center := math.Point2LL{-118.2437, 34.0522}
	for _, vp := range [][2]int{{0, 0}, {-10, 400}, {800, 0}, {40, 40}, {40, 800}} {
		vs := ViewState{Center: center, Zoom: 10, RangeM: 5000, Width: vp[0], Height: vp[1]}
		if _, ok := GetScopeTransform(vs); ok {
			t.Errorf("viewport %v: expected transform to be refused", vp)
		}
	}

	// 40x800 leaves a radius of exactly zero; one more pixel gives a
	// half-pixel radius, which is accepted.
	vs := ViewState{Center: center, Zoom: 10, RangeM: 5000, Width: 41, Height: 800}
	if _, ok := GetScopeTransform(vs); !ok {
		t.Errorf("41x800 viewport should produce a transform")
	}

	// A corrupted range must be refused as well.
	vs = ViewState{Center: center, Zoom: 10, RangeM: 0, Width: 800, Height: 600}
	if _, ok := GetScopeTransform(vs); ok {
		t.Errorf("zero range should refuse the transform")
	}
}

func TestPixelsPerMeter(t *testing.T) {
	vs := ViewState{Center: math.Point2LL{0, 0}, Zoom: 10, RangeM: 1000, Width: 800, Height: 600}
	tf, ok := GetScopeTransform(vs)
	if !ok {
		t.Fatal("unexpected degenerate transform")
	}
	// min(800,600)/2 - 20 = 280 pixels over 1000 m.
	if math.Abs(tf.PixelsPerMeter()-0.28) > 1e-9 {
		t.Errorf("expected 0.28 px/m, got %v", tf.PixelsPerMeter())
	}
}
