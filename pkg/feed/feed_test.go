// pkg/feed/feed_test.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package feed

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/shridharbhandiwad/C2/pkg/radar"
)

func testUpdates() []TrackUpdate {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []TrackUpdate{
		{ID: "UAV-1", Latitude: 34.0522, Longitude: -118.2437, AltitudeM: 120,
			SpeedMPS: 18, HeadingDeg: 270, Classification: int(radar.Hostile), Time: t0},
		{ID: "UAV-2", Latitude: 34.06, Longitude: -118.25, AltitudeM: 80,
			SpeedMPS: 0, HeadingDeg: 0, Classification: int(radar.Pending), Time: t0.Add(time.Second)},
		{ID: "UAV-1", Latitude: 34.0525, Longitude: -118.2441, AltitudeM: 121,
			SpeedMPS: 19, HeadingDeg: 268, Classification: int(radar.Hostile), Time: t0.Add(2 * time.Second)},
		{ID: "UAV-2", Dropped: true, Time: t0.Add(3 * time.Second)},
	}
}

// updatesEqual compares updates field by field; Time is compared by
// instant since decoding doesn't preserve the location.
func updatesEqual(a, b TrackUpdate) bool {
	at, bt := a.Time, b.Time
	a.Time, b.Time = time.Time{}, time.Time{}
	return a == b && at.Equal(bt)
}

func TestCodecRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, u := range testUpdates() {
		if err := enc.Write(u); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i, want := range testUpdates() {
		got, err := dec.Next()
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		if !updatesEqual(got, want) {
			t.Errorf("update %d: got %+v, want %+v", i, got, want)
		}
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Errorf("expected io.EOF at end of stream, got %v", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	dec := NewDecoder(bytes.NewReader([]byte{0xc1, 0xff, 0x00, 0x17}))
	if _, err := dec.Next(); err == nil || err == io.EOF {
		t.Errorf("expected a decode error, got %v", err)
	}
}

func TestReplayRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.replay")

	w, err := CreateReplay(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, u := range testUpdates() {
		if err := w.Write(u); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	r, err := OpenReplay(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	var got []TrackUpdate
	for {
		u, err := r.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("next: %v", err)
		}
		got = append(got, u)
	}

	want := testUpdates()
	if len(got) != len(want) {
		t.Fatalf("got %d updates, want %d", len(got), len(want))
	}
	for i := range want {
		if !updatesEqual(got[i], want[i]) {
			t.Errorf("update %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTrackConversion(t *testing.T) {
	u := testUpdates()[0]
	trk := u.Track()
	if trk.ID != "UAV-1" || trk.State != radar.TrackActive {
		t.Errorf("unexpected track %+v", trk)
	}
	if trk.Position.Latitude() != u.Latitude || trk.Position.Longitude() != u.Longitude {
		t.Errorf("position mismatch: %v vs (%v, %v)", trk.Position, u.Latitude, u.Longitude)
	}
	if trk.Classification != radar.Hostile {
		t.Errorf("classification mismatch: %v", trk.Classification)
	}
}
