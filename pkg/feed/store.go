// pkg/feed/store.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package feed

import (
	"errors"
	"io"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/shridharbhandiwad/C2/pkg/radar"
	"github.com/shridharbhandiwad/C2/pkg/util"
)

const (
	// Tracks that have not been updated for this long are considered
	// stale and dropped automatically.
	DefaultTrackTTL = 30 * time.Second

	DefaultCapacity = 512
)

// Store is the authoritative track store. It holds the most recent state
// of each track, expires tracks that stop updating, and posts lifecycle
// events to the radar event stream; the map core reads it through
// radar.TrackView and never mutates it.
type Store struct {
	tracks *expirable.LRU[string, radar.Track]
	events *radar.EventStream

	// Suppresses per-track drop events while Clear purges the cache;
	// atomic since the cache's expiry goroutine also calls onEvict.
	clearing atomic.Bool
}

var _ radar.TrackView = (*Store)(nil)

// NewStore returns a Store that drops tracks after ttl without updates
// and holds at most capacity tracks (oldest dropped first beyond that).
func NewStore(capacity int, ttl time.Duration, es *radar.EventStream) *Store {
	s := &Store{events: es}
	s.tracks = expirable.NewLRU(capacity, s.onEvict, ttl)
	return s
}

// onEvict is called by the cache for expired or capacity-evicted entries
// (possibly from its expiry goroutine; the event stream serializes
// internally).
func (s *Store) onEvict(id string, trk radar.Track) {
	if !s.clearing.Load() {
		s.events.Post(radar.Event{Type: radar.TrackDroppedEvent, TrackID: id})
	}
}

// Apply folds one update into the store and posts the corresponding
// lifecycle event. A Dropped update for an unknown id is a no-op.
func (s *Store) Apply(u TrackUpdate) {
	if u.Dropped {
		// Removal posts TrackDropped via onEvict if the track was known.
		s.tracks.Remove(u.ID)
		return
	}

	exists := s.tracks.Contains(u.ID)
	s.tracks.Add(u.ID, u.Track())

	ty := util.Select(exists, radar.TrackModifiedEvent, radar.TrackAddedEvent)
	s.events.Post(radar.Event{Type: ty, TrackID: u.ID})
}

// Remove drops the track with the given id; removing an unknown id is a
// no-op, not an error.
func (s *Store) Remove(id string) {
	s.tracks.Remove(id)
}

// Clear drops all tracks and posts a single TracksCleared event.
func (s *Store) Clear() {
	s.clearing.Store(true)
	s.tracks.Purge()
	s.clearing.Store(false)
	s.events.Post(radar.Event{Type: radar.TracksClearedEvent})
}

func (s *Store) Len() int {
	return s.tracks.Len()
}

// VisibleTracks returns the live tracks, ordered by id so successive
// snapshots are stable for callers that iterate.
func (s *Store) VisibleTracks() []radar.Track {
	tracks := util.FilterSlice(s.tracks.Values(),
		func(trk radar.Track) bool { return trk.State == radar.TrackActive })
	slices.SortFunc(tracks, func(a, b radar.Track) int { return strings.Compare(a.ID, b.ID) })
	return tracks
}

func (s *Store) Track(id string) (radar.Track, bool) {
	return s.tracks.Get(id)
}

// ReadFrom applies updates from the decoder until the stream ends; a
// clean io.EOF is not reported as an error.
func (s *Store) ReadFrom(d *Decoder) error {
	for {
		u, err := d.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		s.Apply(u)
	}
}
