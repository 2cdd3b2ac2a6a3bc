// cmd/c2scope/sim.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shridharbhandiwad/C2/pkg/feed"
	"github.com/shridharbhandiwad/C2/pkg/math"
	"github.com/shridharbhandiwad/C2/pkg/radar"
)

const simUpdateInterval = 500 * time.Millisecond

// simTrack is one synthetic aircraft: it flies a heading at a fixed
// speed, with a little jitter so that tracks wander around the scope.
type simTrack struct {
	id             string
	pos            math.Point2LL
	altitudeM      float64
	speedMPS       float64
	headingDeg     float64
	classification radar.Classification
}

// runSimulator generates track updates around the given center until the
// context is canceled, sending them on updates. It only writes to the
// channel; the receiver owns the store.
func runSimulator(ctx context.Context, center math.Point2LL, ntracks int,
	updates chan<- feed.TrackUpdate) {
	tracks := make([]*simTrack, ntracks)
	for i := range tracks {
		// Spawn inside the default view, away from the exact center.
		r := 1000 + rand.Float64()*4000
		bearing := rand.Float64() * 360
		offset := math.Scale2f(math.VectorFromHeading(bearing), r)

		tracks[i] = &simTrack{
			id:             fmt.Sprintf("UAV-%02d", i+1),
			pos:            math.LLFromLocalMeters(offset, center),
			altitudeM:      50 + rand.Float64()*250,
			speedMPS:       5 + rand.Float64()*25,
			headingDeg:     rand.Float64() * 360,
			classification: radar.Classification(rand.IntN(int(radar.NumClassifications))),
		}
	}

	ticker := time.NewTicker(simUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			for _, trk := range tracks {
				trk.step(center, simUpdateInterval.Seconds())
				select {
				case updates <- trk.update(t):
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func (t *simTrack) step(center math.Point2LL, dt float64) {
	t.headingDeg = math.NormalizeHeading(t.headingDeg + 10*(rand.Float64()-0.5))

	// Turn back toward the center once a track strays too far out, so
	// the simulation stays on screen indefinitely.
	offset := math.LocalMetersFromLL(t.pos, center)
	if math.Length2f(offset) > 8000 {
		inbound := math.HeadingFromVector(math.Scale2f(offset, -1))
		t.headingDeg = math.NormalizeHeading(inbound + 30*(rand.Float64()-0.5))
	}

	move := math.Scale2f(math.VectorFromHeading(t.headingDeg), t.speedMPS*dt)
	t.pos = math.LLFromLocalMeters(move, t.pos)
}

func (t *simTrack) update(now time.Time) feed.TrackUpdate {
	return feed.TrackUpdate{
		ID:             t.id,
		Latitude:       t.pos.Latitude(),
		Longitude:      t.pos.Longitude(),
		AltitudeM:      t.altitudeM,
		SpeedMPS:       t.speedMPS,
		HeadingDeg:     t.headingDeg,
		Classification: int(t.classification),
		Time:           now,
	}
}
