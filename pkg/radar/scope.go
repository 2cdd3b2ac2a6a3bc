// pkg/radar/scope.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"log/slog"

	"github.com/shridharbhandiwad/C2/pkg/log"
	"github.com/shridharbhandiwad/C2/pkg/math"
	"github.com/shridharbhandiwad/C2/pkg/renderer"
)

// Pixel distance within which a click selects a track rather than
// reporting a map click.
const clickDistancePixels = 20

// Wheel ticks are scaled by this much on the zoom dial.
const wheelZoomStep = 0.5

// Scope is the tactical map view: it owns the view state and track
// selection, reads tracks through a TrackView snapshot, and emits
// screen-space geometry to a renderer.Canvas each frame.
//
// All Scope methods must be called from a single goroutine (normally the
// host's event loop): the Zoom/RangeM duality is not atomic across its two
// fields, and mutators post to the event stream only after the view state
// is fully consistent, so concurrent callers would observe torn states.
type Scope struct {
	view          ViewState
	colors        ColorScheme
	selectedTrack string

	tracks    TrackView
	events    *EventStream
	eventsSub *EventsSubscription

	// Invoked after every mutation; the host schedules a repaint.
	redrawRequested func()

	lg *log.Logger
}

func NewScope(center math.Point2LL, zoom float64, tracks TrackView, es *EventStream, lg *log.Logger) *Scope {
	s := &Scope{
		view: ViewState{
			Center: center,
			Zoom:   math.Clamp(zoom, MinZoom, MaxZoom),
		},
		colors:    DefaultColorScheme(),
		tracks:    tracks,
		events:    es,
		eventsSub: es.Subscribe(),
		lg:        lg,
	}
	s.view.RangeM = ZoomToRangeScale(s.view.Zoom)
	return s
}

// SetRedrawCallback registers the host's repaint trigger; a nil callback
// is allowed and makes redraw requests no-ops.
func (s *Scope) SetRedrawCallback(cb func()) {
	s.redrawRequested = cb
}

func (s *Scope) requestRedraw() {
	if s.redrawRequested != nil {
		s.redrawRequested()
	}
}

///////////////////////////////////////////////////////////////////////////
// Mutators

// SetCenter replaces the view center verbatim; geographic validity is the
// caller's responsibility.
func (s *Scope) SetCenter(pos math.Point2LL) {
	s.setCenter(pos, true)
}

// SetCenterSilent performs the same mutation as SetCenter without firing
// the change notification; it is for updates driven by an external source
// of truth that must not echo back to it.
func (s *Scope) SetCenterSilent(pos math.Point2LL) {
	s.setCenter(pos, false)
}

func (s *Scope) setCenter(pos math.Point2LL, notify bool) {
	s.view.Center = pos
	if notify {
		s.events.Post(Event{Type: CenterChangedEvent, Pos: pos})
	}
	s.requestRedraw()
}

// SetZoom clamps the zoom to its valid bounds and updates the derived
// range scale before any notification fires; out-of-range values are
// clamped rather than rejected so continuous wheel input never errors.
func (s *Scope) SetZoom(zoom float64) {
	s.setZoom(zoom, true)
}

// SetZoomSilent is SetZoom without the change notification.
func (s *Scope) SetZoomSilent(zoom float64) {
	s.setZoom(zoom, false)
}

func (s *Scope) setZoom(zoom float64, notify bool) {
	s.view.Zoom = math.Clamp(zoom, MinZoom, MaxZoom)
	s.view.RangeM = ZoomToRangeScale(s.view.Zoom)
	if notify {
		s.events.Post(Event{Type: ZoomChangedEvent, Zoom: s.view.Zoom})
	}
	s.requestRedraw()
}

// SetViewportSize records the viewport dimensions used by the transform.
func (s *Scope) SetViewportSize(width, height int) {
	s.view.Width, s.view.Height = width, height
	s.requestRedraw()
}

// Pan converts a screen-space drag delta in pixels to a center update. The
// scale is re-derived from MapRadius and the range (never from the zoom
// dial directly) so panning stays consistent with the projection whatever
// the zoom-to-range formula does. The signs make dragging feel like
// dragging the map: the world follows the cursor.
func (s *Scope) Pan(delta [2]float64) {
	radius := MapRadius(s.view.Width, s.view.Height)
	if radius <= 0 || s.view.RangeM <= 0 {
		return
	}
	scale := radius / s.view.RangeM // pixels per meter

	// Meters the world moved under the cursor: drag right moves the
	// visible world left, so the center moves the other way; screen y is
	// inverted relative to north.
	mx := -delta[0] / scale
	my := delta[1] / scale

	dLat := my / math.MetersPerDegreeLatitude
	dLon := mx / math.MetersPerDegreeLongitude(s.view.Center.Latitude())

	s.setCenter(math.Add2LL(s.view.Center, math.Point2LL{dLon, dLat}), true)
}

// Wheel applies mouse wheel ticks to the zoom dial.
func (s *Scope) Wheel(ticks float64) {
	s.SetZoom(s.view.Zoom + ticks*wheelZoomStep)
}

// Click handles a non-pan pointer interaction at the given screen
// position: the nearest track within clickDistancePixels is selected;
// otherwise the geographic position under the pointer is reported as a map
// click.
func (s *Scope) Click(p [2]float64) {
	tf, ok := GetScopeTransform(s.view)
	if !ok {
		return
	}

	clickedID := ""
	clickedDistance := float64(clickDistancePixels)
	for _, trk := range s.tracks.VisibleTracks() {
		pw := tf.ScreenFromLL(trk.Position)
		if d := math.Distance2f(pw, p); d < clickedDistance {
			clickedID = trk.ID
			clickedDistance = d
		}
	}

	if clickedID != "" {
		s.SelectTrack(clickedID)
	} else {
		s.events.Post(Event{Type: MapClickedEvent, Pos: tf.LLFromScreen(p)})
	}
}

// SelectTrack selects the track with the given id; selecting an id not
// present in the store is a no-op, and an empty id clears the selection.
func (s *Scope) SelectTrack(id string) {
	if id != "" {
		if _, ok := s.tracks.Track(id); !ok {
			return
		}
	}
	s.selectedTrack = id
	s.events.Post(Event{Type: TrackSelectedEvent, TrackID: id})
	s.requestRedraw()
}

///////////////////////////////////////////////////////////////////////////
// Track lifecycle pass-throughs
//
// The external store remains the source of truth for tracks; these exist
// for hosts that call the Scope directly rather than posting store events.
// Both paths keep the selection consistent with the store.

func (s *Scope) TrackAdded(id string) {
	s.requestRedraw()
}

func (s *Scope) TrackUpdated(id string) {
	s.requestRedraw()
}

// TrackRemoved clears the selection if the removed track was selected;
// removing an id that was never selected (or never present) is a no-op.
func (s *Scope) TrackRemoved(id string) {
	if s.selectedTrack == id {
		s.selectedTrack = ""
	}
	s.requestRedraw()
}

func (s *Scope) ClearTracks() {
	s.selectedTrack = ""
	s.requestRedraw()
}

///////////////////////////////////////////////////////////////////////////
// Accessors

func (s *Scope) Center() math.Point2LL { return s.view.Center }

func (s *Scope) Zoom() float64 { return s.view.Zoom }

func (s *Scope) RangeM() float64 { return s.view.RangeM }

// SelectedTrack returns the selected track id, empty if none.
func (s *Scope) SelectedTrack() string { return s.selectedTrack }

// ViewState returns a copy of the current view state.
func (s *Scope) ViewState() ViewState { return s.view }

func (s *Scope) SetColorScheme(colors ColorScheme) {
	s.colors = colors
	s.requestRedraw()
}

///////////////////////////////////////////////////////////////////////////
// Drawing

// processEvents consumes store notifications so that dropping or clearing
// tracks also drops a matching selection.
func (s *Scope) processEvents() {
	for _, event := range s.eventsSub.Get() {
		switch event.Type {
		case TrackDroppedEvent:
			if s.selectedTrack == event.TrackID {
				s.selectedTrack = ""
			}
		case TracksClearedEvent:
			s.selectedTrack = ""
		}
	}
}

// Draw renders one frame onto the canvas: grid, defended-area rings,
// tracks with velocity vectors, center crosshair, and the status line. On
// a degenerate viewport the frame is skipped entirely.
func (s *Scope) Draw(c renderer.Canvas) {
	s.processEvents()

	s.view.Width, s.view.Height = c.Size()
	tf, ok := GetScopeTransform(s.view)
	if !ok {
		s.lg.Debug("skipping frame", slog.Int("width", s.view.Width), slog.Int("height", s.view.Height))
		return
	}

	c.Clear()

	ld := renderer.GetColoredLinesDrawBuilder()
	defer renderer.ReturnColoredLinesDrawBuilder(ld)
	td := renderer.GetTextDrawBuilder()
	defer renderer.ReturnTextDrawBuilder(td)

	s.drawGrid(&tf, ld)
	s.drawDefendedArea(&tf, ld)
	s.drawTracks(&tf, ld, td)
	s.drawCrosshair(ld)
	s.drawStatusText(td)

	ld.GenerateCommands(c)
	td.GenerateCommands(c)

	c.Flush()
}
