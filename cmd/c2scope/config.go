// cmd/c2scope/config.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"os"
	"path"
	"time"

	"github.com/brunoga/deep"

	"github.com/shridharbhandiwad/C2/pkg/log"
	"github.com/shridharbhandiwad/C2/pkg/math"
)

type Config struct {
	Version int

	// Initial view.
	CenterLatitude  float64
	CenterLongitude float64
	Zoom            float64

	// Track store.
	TrackTTLSeconds int
	TrackCapacity   int

	// Path of a replay file to play back at startup; empty runs the
	// built-in simulator instead.
	ReplayFile string

	SimTracks int
}

var defaultConfig = Config{
	Version:         1,
	CenterLatitude:  34.0522,
	CenterLongitude: -118.2437,
	Zoom:            10,
	TrackTTLSeconds: 30,
	TrackCapacity:   512,
	SimTracks:       6,
}

func (c *Config) Center() math.Point2LL {
	return math.Point2LL{c.CenterLongitude, c.CenterLatitude}
}

func (c *Config) TrackTTL() time.Duration {
	return time.Duration(c.TrackTTLSeconds) * time.Second
}

func configFilePath(lg *log.Logger) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		lg.Errorf("Unable to find user config dir: %v", err)
		dir = "."
	}

	dir = path.Join(dir, "C2")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		lg.Errorf("%s: unable to make directory for config file: %v", dir, err)
	}

	return path.Join(dir, "c2scope.json")
}

// LoadOrMakeDefaultConfig reads the config file, filling in defaults for
// everything it doesn't set; a missing file just gives the defaults.
func LoadOrMakeDefaultConfig(fn string, lg *log.Logger) *Config {
	if fn == "" {
		fn = configFilePath(lg)
	}
	lg.Infof("Loading config from: %s", fn)

	config := deep.MustCopy(defaultConfig)

	if b, err := os.ReadFile(fn); err != nil {
		lg.Infof("%s: no config file; using defaults", fn)
	} else if err := json.Unmarshal(b, &config); err != nil {
		lg.Errorf("%s: configuration file is corrupt: %v", fn, err)
		config = deep.MustCopy(defaultConfig)
	}

	if config.TrackTTLSeconds <= 0 {
		config.TrackTTLSeconds = defaultConfig.TrackTTLSeconds
	}
	if config.TrackCapacity <= 0 {
		config.TrackCapacity = defaultConfig.TrackCapacity
	}
	config.Version = 1

	return &config
}

func (c *Config) Save(fn string, lg *log.Logger) error {
	if fn == "" {
		fn = configFilePath(lg)
	}
	lg.Infof("Saving config to: %s", fn)

	b, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0o600)
}
