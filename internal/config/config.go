// Package config loads process settings for the Terminal Infiltration
// binaries from the environment, with command-line flags taking precedence.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

// Settings holds the tunables a player or operator may override.
type Settings struct {
	MissionDuration float64 `env:"TI_MISSION_DURATION" envDefault:"60"`
	Objectives      int     `env:"TI_OBJECTIVES"       envDefault:"5"`
	EventInterval   float64 `env:"TI_EVENT_INTERVAL"   envDefault:"5"`
	MaxDetection    float64 `env:"TI_MAX_DETECTION"    envDefault:"100"`
	Seed            int64   `env:"TI_SEED"`
	WindowScale     float64 `env:"TI_WINDOW_SCALE"     envDefault:"1"`
	Audio           bool    `env:"TI_AUDIO"            envDefault:"true"`
	Verbose         bool    `env:"TI_VERBOSE"`
}

// Parse reads the environment into Settings and then applies any flags in
// args. Flag defaults are the environment values, so an unset flag keeps them.
func Parse(fs *flag.FlagSet, args []string) (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Float64Var(&s.MissionDuration, "duration", s.MissionDuration, "mission length in seconds")
	fs.IntVar(&s.Objectives, "objectives", s.Objectives, "successful hacks needed to win")
	fs.Float64Var(&s.EventInterval, "event-interval", s.EventInterval, "seconds between random events")
	fs.Float64Var(&s.MaxDetection, "max-detection", s.MaxDetection, "detection level that fails the mission")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "RNG seed (0 picks one from the clock)")
	fs.Float64Var(&s.WindowScale, "scale", s.WindowScale, "window scale factor")
	fs.BoolVar(&s.Audio, "audio", s.Audio, "play sound cues")
	fs.BoolVar(&s.Verbose, "verbose", s.Verbose, "record per-tick detection samples in the mission log")
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// MissionConfig applies the settings over the default mission tuning and
// validates the result.
func (s Settings) MissionConfig() (mission.Config, error) {
	cfg := mission.DefaultConfig()
	cfg.MissionDuration = s.MissionDuration
	cfg.ObjectivesNeeded = s.Objectives
	cfg.EventInterval = s.EventInterval
	cfg.MaxDetection = s.MaxDetection
	if err := cfg.Validate(); err != nil {
		return mission.Config{}, fmt.Errorf("mission settings: %w", err)
	}
	return cfg, nil
}

// Scale returns the window scale, falling back to 1 for non-positive values.
func (s Settings) Scale() float64 {
	if s.WindowScale <= 0 {
		return 1
	}
	return s.WindowScale
}
