// pkg/feed/feed.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package feed supplies tracks to the map core: it decodes track updates
// from a wire or replay stream and maintains the authoritative track
// store that the core reads through its snapshot interface.
package feed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/shridharbhandiwad/C2/pkg/radar"
)

// TrackUpdate is one record of the track wire format: a full snapshot of
// one track's state at Time. A Dropped update removes the track.
type TrackUpdate struct {
	ID             string    `msgpack:"id"`
	Latitude       float64   `msgpack:"lat"`
	Longitude      float64   `msgpack:"lon"`
	AltitudeM      float64   `msgpack:"alt"`
	SpeedMPS       float64   `msgpack:"spd"`
	HeadingDeg     float64   `msgpack:"hdg"`
	Classification int       `msgpack:"cls"`
	Dropped        bool      `msgpack:"drop"`
	Time           time.Time `msgpack:"t"`
}

// Track converts the update to the core's track value.
func (u TrackUpdate) Track() radar.Track {
	return radar.Track{
		ID:             u.ID,
		Position:       [2]float64{u.Longitude, u.Latitude},
		AltitudeM:      u.AltitudeM,
		SpeedMPS:       u.SpeedMPS,
		HeadingDeg:     u.HeadingDeg,
		Classification: radar.Classification(u.Classification),
		State:          radar.TrackActive,
	}
}

///////////////////////////////////////////////////////////////////////////
// Wire codec

type Decoder struct {
	dec *msgpack.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: msgpack.NewDecoder(r)}
}

// Next returns the next update from the stream; io.EOF reports a clean
// end of stream.
func (d *Decoder) Next() (TrackUpdate, error) {
	var u TrackUpdate
	if err := d.dec.Decode(&u); err != nil {
		if errors.Is(err, io.EOF) {
			return TrackUpdate{}, io.EOF
		}
		return TrackUpdate{}, fmt.Errorf("decoding track update: %w", err)
	}
	return u, nil
}

type Encoder struct {
	enc *msgpack.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: msgpack.NewEncoder(w)}
}

func (e *Encoder) Write(u TrackUpdate) error {
	return e.enc.Encode(u)
}

///////////////////////////////////////////////////////////////////////////
// Replay files
//
// A replay file is a zstd-compressed stream of msgpack track updates;
// replays feed the map exactly like a live source.

type ReplayReader struct {
	*Decoder
	f  *os.File
	zr *zstd.Decoder
}

func OpenReplay(path string) (*ReplayReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	zr, err := zstd.NewReader(bufio.NewReader(f), zstd.WithDecoderConcurrency(0))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &ReplayReader{Decoder: NewDecoder(zr), f: f, zr: zr}, nil
}

func (r *ReplayReader) Close() error {
	r.zr.Close()
	return r.f.Close()
}

type ReplayWriter struct {
	*Encoder
	f  *os.File
	zw *zstd.Encoder
}

func CreateReplay(path string) (*ReplayWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &ReplayWriter{Encoder: NewEncoder(zw), f: f, zw: zw}, nil
}

func (w *ReplayWriter) Close() error {
	if err := w.zw.Close(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
