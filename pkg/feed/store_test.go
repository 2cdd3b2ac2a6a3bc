// pkg/feed/store_test.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package feed

import (
	"bytes"
	"testing"
	"time"

	"github.com/shridharbhandiwad/C2/pkg/radar"
)

func newTestStore() (*Store, *radar.EventsSubscription) {
	es := radar.NewEventStream(nil)
	sub := es.Subscribe()
	return NewStore(DefaultCapacity, DefaultTrackTTL, es), sub
}

func eventsOfType(events []radar.Event, ty radar.EventType) []radar.Event {
	var matched []radar.Event
	for _, ev := range events {
		if ev.Type == ty {
			matched = append(matched, ev)
		}
	}
	return matched
}

func TestStoreLifecycleEvents(t *testing.T) {
	s, sub := newTestStore()
	updates := testUpdates()

	s.Apply(updates[0]) // UAV-1 first report
	s.Apply(updates[1]) // UAV-2 first report
	s.Apply(updates[2]) // UAV-1 refresh
	s.Apply(updates[3]) // UAV-2 dropped

	events := sub.Get()
	if added := eventsOfType(events, radar.TrackAddedEvent); len(added) != 2 {
		t.Errorf("expected 2 TrackAdded events, got %v", added)
	}
	mod := eventsOfType(events, radar.TrackModifiedEvent)
	if len(mod) != 1 || mod[0].TrackID != "UAV-1" {
		t.Errorf("expected one TrackModified for UAV-1, got %v", mod)
	}
	dropped := eventsOfType(events, radar.TrackDroppedEvent)
	if len(dropped) != 1 || dropped[0].TrackID != "UAV-2" {
		t.Errorf("expected one TrackDropped for UAV-2, got %v", dropped)
	}

	if s.Len() != 1 {
		t.Errorf("expected 1 live track, got %d", s.Len())
	}
	if trk, ok := s.Track("UAV-1"); !ok || trk.AltitudeM != 121 {
		t.Errorf("UAV-1 should hold the refreshed state, got %+v ok %v", trk, ok)
	}
	if _, ok := s.Track("UAV-2"); ok {
		t.Errorf("UAV-2 should be gone after the drop")
	}
}

func TestStoreRemoveUnknown(t *testing.T) {
	s, sub := newTestStore()

	s.Remove("NO-SUCH-TRACK")
	s.Apply(TrackUpdate{ID: "GHOST", Dropped: true, Time: time.Now()})

	if events := sub.Get(); len(events) != 0 {
		t.Errorf("removing unknown tracks should post nothing, got %v", events)
	}
}

func TestStoreClear(t *testing.T) {
	s, sub := newTestStore()
	for _, u := range testUpdates()[:2] {
		s.Apply(u)
	}
	sub.Get() // discard the adds

	s.Clear()

	events := sub.Get()
	if len(events) != 1 || events[0].Type != radar.TracksClearedEvent {
		t.Errorf("expected a single TracksCleared event, got %v", events)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store after Clear, got %d tracks", s.Len())
	}
}

func TestStoreConcurrentClear(t *testing.T) {
	s, _ := newTestStore()

	// Drop-triggered evictions run concurrently with Clear's suppression
	// flag; the race detector checks the flag's synchronization.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			s.Apply(TrackUpdate{ID: "T1", Latitude: 34, Longitude: -118, Time: time.Now()})
			s.Apply(TrackUpdate{ID: "T1", Dropped: true, Time: time.Now()})
		}
	}()
	for i := 0; i < 100; i++ {
		s.Clear()
	}
	<-done

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d tracks", s.Len())
	}
}

func TestStoreVisibleTracksSorted(t *testing.T) {
	s, _ := newTestStore()
	t0 := time.Now()
	for _, id := range []string{"C3", "A1", "B2"} {
		s.Apply(TrackUpdate{ID: id, Latitude: 34, Longitude: -118, Time: t0})
	}

	tracks := s.VisibleTracks()
	if len(tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(tracks))
	}
	for i, want := range []string{"A1", "B2", "C3"} {
		if tracks[i].ID != want {
			t.Errorf("track %d: got %q, want %q", i, tracks[i].ID, want)
		}
	}
}

func TestStoreCapacityEviction(t *testing.T) {
	es := radar.NewEventStream(nil)
	sub := es.Subscribe()
	s := NewStore(2, DefaultTrackTTL, es)

	t0 := time.Now()
	for _, id := range []string{"A1", "B2", "C3"} {
		s.Apply(TrackUpdate{ID: id, Latitude: 34, Longitude: -118, Time: t0})
	}

	// The oldest track is evicted to make room for the third.
	if _, ok := s.Track("A1"); ok {
		t.Errorf("A1 should have been evicted")
	}
	dropped := eventsOfType(sub.Get(), radar.TrackDroppedEvent)
	if len(dropped) != 1 || dropped[0].TrackID != "A1" {
		t.Errorf("expected TrackDropped for A1, got %v", dropped)
	}
}

func TestStoreReadFrom(t *testing.T) {
	s, _ := newTestStore()

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, u := range testUpdates() {
		if err := enc.Write(u); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}

	if err := s.ReadFrom(NewDecoder(&buf)); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 live track after replaying the stream, got %d", s.Len())
	}
}
