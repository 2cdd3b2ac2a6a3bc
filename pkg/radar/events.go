// pkg/radar/events.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/shridharbhandiwad/C2/pkg/log"
	"github.com/shridharbhandiwad/C2/pkg/math"
)

// EventStream provides a basic pub/sub event interface that allows any
// part of the system to post an event to the stream and other parts to
// subscribe and receive messages from the stream. It carries view-state
// changes, track lifecycle notifications, and pointer interactions between
// the map core and its host.
type EventStream struct {
	mu            sync.Mutex
	lg            *log.Logger
	events        []Event
	lastCompact   time.Time
	subscriptions map[*EventsSubscription]interface{}
}

type EventsSubscription struct {
	stream *EventStream
	// offset is offset in the EventStream stream array up to which the
	// subscriber has consumed events so far.
	offset int
	source string
}

func NewEventStream(lg *log.Logger) *EventStream {
	return &EventStream{
		lg:            lg,
		subscriptions: make(map[*EventsSubscription]interface{}),
	}
}

// Subscribe registers a new subscriber to the stream and returns an
// EventsSubscription that can be used to get the events that have been
// posted since the last call to Get.
func (e *EventStream) Subscribe() *EventsSubscription {
	// Record the subscriber's callsite, so that we can more easily debug
	// subscribers that aren't consuming events.
	_, fn, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", fn, line)

	sub := &EventsSubscription{
		stream: e,
		offset: len(e.events),
		source: source,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.subscriptions[sub] = nil
	return sub
}

// Unsubscribe removes a subscriber from the subscriber list.
func (e *EventsSubscription) Unsubscribe() {
	e.stream.mu.Lock()
	defer e.stream.mu.Unlock()

	if _, ok := e.stream.subscriptions[e]; !ok {
		e.stream.lg.Errorf("Attempted to unsubscribe invalid subscription: %+v", e)
	}
	delete(e.stream.subscriptions, e)
	e.stream = nil
}

// Post adds an event to the event stream.
func (e *EventStream) Post(event Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lg.Debug("posted event", slog.Any("event", event))

	// Ignore the event if no one's paying attention.
	if len(e.subscriptions) > 0 {
		e.events = append(e.events, event)
	}
}

// Get returns all of the events from the stream since the last time Get
// was called for this subscription. Note that events posted before an
// EventsSubscription was created are never reported to it.
func (e *EventsSubscription) Get() []Event {
	e.stream.mu.Lock()
	defer e.stream.mu.Unlock()

	if _, ok := e.stream.subscriptions[e]; !ok {
		e.stream.lg.Errorf("Attempted to get with unregistered subscription: %+v", e)
		return nil
	}

	events := e.stream.events[e.offset:]
	e.offset = len(e.stream.events)

	if time.Since(e.stream.lastCompact) > 1*time.Second {
		e.stream.compact()
		e.stream.lastCompact = time.Now()
	}

	return events
}

// compact reclaims storage for events that all subscribers have seen; it
// is called periodically so that EventStream memory usage doesn't grow
// without bound.
func (e *EventStream) compact() {
	minOffset := len(e.events)
	for sub := range e.subscriptions {
		if sub.offset < minOffset {
			minOffset = sub.offset
		}
	}

	if len(e.events) > 1000 {
		e.lg.Warnf("EventStream length %d", len(e.events))
	}

	if minOffset > cap(e.events)/2 {
		n := len(e.events) - minOffset

		copy(e.events, e.events[minOffset:])
		e.events = e.events[:n]

		for sub := range e.subscriptions {
			sub.offset -= minOffset
		}
	}
}

///////////////////////////////////////////////////////////////////////////

type EventType int

const (
	CenterChangedEvent EventType = iota
	ZoomChangedEvent
	TrackSelectedEvent
	MapClickedEvent
	TrackAddedEvent
	TrackModifiedEvent
	TrackDroppedEvent
	TracksClearedEvent
	NumEventTypes
)

func (t EventType) String() string {
	return []string{"CenterChanged", "ZoomChanged", "TrackSelected", "MapClicked",
		"TrackAdded", "TrackModified", "TrackDropped", "TracksCleared"}[t]
}

// Event is a tagged union over EventType: Pos is set for CenterChanged and
// MapClicked, Zoom for ZoomChanged, and TrackID for the track events
// (empty TrackID on TrackSelected reports a deselection).
type Event struct {
	Type    EventType
	TrackID string
	Pos     math.Point2LL
	Zoom    float64
}

func (e *Event) String() string {
	switch e.Type {
	case CenterChangedEvent, MapClickedEvent:
		return fmt.Sprintf("%s: pos %s", e.Type, e.Pos.DDString())
	case ZoomChangedEvent:
		return fmt.Sprintf("%s: zoom %.2f", e.Type, e.Zoom)
	default:
		return fmt.Sprintf("%s: track %q", e.Type, e.TrackID)
	}
}

func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("type", e.Type.String())}
	if e.TrackID != "" {
		attrs = append(attrs, slog.String("track", e.TrackID))
	}
	if !e.Pos.IsZero() {
		attrs = append(attrs, slog.String("pos", e.Pos.DDString()))
	}
	return slog.GroupValue(attrs...)
}
