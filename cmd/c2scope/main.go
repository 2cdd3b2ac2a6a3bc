// cmd/c2scope/main.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// c2scope is a terminal host for the tactical map core: it wires the
// track store and the scope together and runs the event loop, feeding
// pointer and key input to the scope and drawing frames into a tcell
// screen. Tracks come from a replay file or from a built-in simulator.

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/shridharbhandiwad/C2/pkg/feed"
	"github.com/shridharbhandiwad/C2/pkg/log"
	"github.com/shridharbhandiwad/C2/pkg/math"
	"github.com/shridharbhandiwad/C2/pkg/radar"
)

var (
	logLevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir     = flag.String("logdir", "", "log file directory")
	configFile = flag.String("config", "", "path of the config file")
	replayFile = flag.String("replay", "", "play back the given replay file instead of the simulator")
	recordFile = flag.String("record", "", "record all track updates to the given replay file")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	config := LoadOrMakeDefaultConfig(*configFile, lg)
	if *replayFile != "" {
		config.ReplayFile = *replayFile
	}

	if err := run(config, lg); err != nil {
		fmt.Fprintf(os.Stderr, "c2scope: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(*configFile, lg); err != nil {
		lg.Errorf("unable to save config: %v", err)
	}
}

func run(config *Config, lg *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	colors := radar.DefaultColorScheme()
	canvas := newTermCanvas(screen, colors.Background)

	eventStream := radar.NewEventStream(lg)
	store := feed.NewStore(config.TrackCapacity, config.TrackTTL(), eventStream)
	scope := radar.NewScope(config.Center(), config.Zoom, store, eventStream, lg)

	width, height := screen.Size()
	scope.SetViewportSize(width, height)

	// Carry the final view into the config saved at exit.
	defer func() {
		c := scope.Center()
		config.CenterLatitude, config.CenterLongitude = c.Latitude(), c.Longitude()
		config.Zoom = scope.Zoom()
	}()

	needRedraw := true
	scope.SetRedrawCallback(func() { needRedraw = true })

	var recorder *feed.ReplayWriter
	if *recordFile != "" {
		if recorder, err = feed.CreateReplay(*recordFile); err != nil {
			return err
		}
		defer recorder.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan feed.TrackUpdate, 64)
	if config.ReplayFile != "" {
		go func() {
			if err := playReplay(ctx, config.ReplayFile, updates); err != nil {
				lg.Errorf("%s: %v", config.ReplayFile, err)
			}
		}()
	} else {
		go runSimulator(ctx, config.Center(), config.SimTracks, updates)
	}

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	// Readout of the last click or selection, drawn along the top edge.
	readoutSub := eventStream.Subscribe()
	readout := ""

	// Drag state: a press that never pans is a click on release.
	var mouseDown, dragged bool
	var lastMouse [2]float64

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				scope.SetViewportSize(w, h)
				screen.Sync()

			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q'):
					close(quit)
					return nil
				case ev.Key() == tcell.KeyRune && (ev.Rune() == '+' || ev.Rune() == '='):
					scope.SetZoom(scope.Zoom() + 1)
				case ev.Key() == tcell.KeyRune && (ev.Rune() == '-' || ev.Rune() == '_'):
					scope.SetZoom(scope.Zoom() - 1)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'c':
					scope.SetCenter(config.Center())
				}

			case *tcell.EventMouse:
				x, y := ev.Position()
				p := [2]float64{float64(x), float64(y)}
				buttons := ev.Buttons()
				switch {
				case buttons&tcell.WheelUp != 0:
					scope.Wheel(1)
				case buttons&tcell.WheelDown != 0:
					scope.Wheel(-1)
				case buttons&tcell.Button2 != 0:
					scope.Click(p)
				case buttons&tcell.Button1 != 0:
					if mouseDown {
						if delta := math.Sub2f(p, lastMouse); delta != ([2]float64{}) {
							scope.Pan(delta)
							dragged = true
						}
					} else {
						mouseDown, dragged = true, false
					}
					lastMouse = p
				default:
					if mouseDown {
						mouseDown = false
						if !dragged {
							scope.Click(p)
						}
					}
				}
			}

		case u := <-updates:
			store.Apply(u)
			if recorder != nil {
				if err := recorder.Write(u); err != nil {
					lg.Errorf("%s: %v", *recordFile, err)
					recorder = nil
				}
			}
			needRedraw = true
		}

		for _, ev := range readoutSub.Get() {
			switch ev.Type {
			case radar.MapClickedEvent:
				readout = fmt.Sprintf("Click: %s  %.0f m from center",
					ev.Pos.DDString(), math.DistanceM(ev.Pos, scope.Center()))
				needRedraw = true
			case radar.TrackSelectedEvent:
				if ev.TrackID == "" {
					readout = ""
				} else {
					readout = "Selected: " + ev.TrackID
				}
				needRedraw = true
			}
		}

		if needRedraw {
			needRedraw = false
			scope.Draw(canvas)
			if readout != "" {
				canvas.DrawText(readout, [2]float64{1, 0}, colors.Text)
				canvas.Flush()
			}
		}
	}
}

// playReplay feeds the recorded updates to the receiver, pacing them by
// their recorded timestamps.
func playReplay(ctx context.Context, path string, updates chan<- feed.TrackUpdate) error {
	r, err := feed.OpenReplay(path)
	if err != nil {
		return err
	}
	defer r.Close()

	var last time.Time
	for {
		u, err := r.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if !last.IsZero() {
			if wait := u.Time.Sub(last); wait > 0 {
				select {
				case <-time.After(min(wait, 5*time.Second)):
				case <-ctx.Done():
					return nil
				}
			}
		}
		last = u.Time

		select {
		case updates <- u:
		case <-ctx.Done():
			return nil
		}
	}
}
