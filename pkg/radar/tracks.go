// pkg/radar/tracks.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"github.com/shridharbhandiwad/C2/pkg/math"
	"github.com/shridharbhandiwad/C2/pkg/renderer"
)

// Classification is the threat assessment of a track.
type Classification int

const (
	Unknown Classification = iota
	Pending
	Friendly
	Neutral
	Hostile
	NumClassifications
)

func (c Classification) String() string {
	switch c {
	case Pending:
		return "Pending"
	case Friendly:
		return "Friendly"
	case Neutral:
		return "Neutral"
	case Hostile:
		return "Hostile"
	default:
		return "Unknown"
	}
}

// Color returns the display color for a classification. The mapping is
// fixed; anything unclassified or out of range renders green.
func (c Classification) Color() renderer.RGB {
	switch c {
	case Hostile:
		return renderer.RGB{R: 1, G: 0, B: 0}
	case Friendly:
		return renderer.RGB{R: 0, G: 1, B: 1}
	case Pending:
		return renderer.RGB{R: 1, G: 1, B: 0}
	case Neutral:
		return renderer.RGB{R: 0.5, G: 0.5, B: 0.5}
	default:
		return renderer.RGB{R: 0, G: 1, B: 0}
	}
}

type TrackState int

const (
	TrackActive TrackState = iota
	TrackDropped
)

// Track is the core's read-only view of one tracked object. The
// authoritative store lives outside the core; Tracks are value snapshots,
// never mutated here.
type Track struct {
	ID             string
	Position       math.Point2LL
	AltitudeM      float64
	SpeedMPS       float64
	HeadingDeg     float64 // 0 = north, increasing clockwise
	Classification Classification
	State          TrackState
}

// TrackView is the read-only snapshot interface the core uses to place
// track symbols; it deliberately provides no mutation so that the external
// store remains the single owner.
type TrackView interface {
	// VisibleTracks returns the live (non-dropped) tracks.
	VisibleTracks() []Track

	// Track looks up a track by id.
	Track(id string) (Track, bool)
}
