// Package audio plays short synthesized cues for mission events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

// Cue identifies one sound.
type Cue int

const (
	CueHackSuccess Cue = iota
	CueHackFailed
	CueEventAlarm
	CueSystemOffline
	CueMissionSuccess
	CueMissionFailed
)

func (c Cue) String() string {
	switch c {
	case CueHackSuccess:
		return "hack_success"
	case CueHackFailed:
		return "hack_failed"
	case CueEventAlarm:
		return "event_alarm"
	case CueSystemOffline:
		return "system_offline"
	case CueMissionSuccess:
		return "mission_success"
	case CueMissionFailed:
		return "mission_failed"
	default:
		return "unknown"
	}
}

type note struct {
	freq float64 // Hz; 0 is a rest
	dur  time.Duration
}

// notes returns the melody for c.
func (c Cue) notes() []note {
	switch c {
	case CueHackSuccess:
		return []note{{880, 60 * time.Millisecond}, {1318.51, 90 * time.Millisecond}}
	case CueHackFailed:
		return []note{{220, 120 * time.Millisecond}, {164.81, 160 * time.Millisecond}}
	case CueEventAlarm:
		return []note{{660, 80 * time.Millisecond}, {0, 40 * time.Millisecond}, {660, 80 * time.Millisecond}}
	case CueSystemOffline:
		return []note{{440, 50 * time.Millisecond}, {330, 70 * time.Millisecond}}
	case CueMissionSuccess:
		return []note{{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 220 * time.Millisecond}}
	case CueMissionFailed:
		return []note{{392, 150 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {196, 300 * time.Millisecond}}
	default:
		return nil
	}
}

// cueStreamer renders c as a finite streamer at the given volume (0..1).
func cueStreamer(rate beep.SampleRate, c Cue, volume float64) (beep.Streamer, error) {
	var parts []beep.Streamer
	for _, n := range c.notes() {
		if n.freq <= 0 {
			parts = append(parts, beep.Silence(rate.N(n.dur)))
			continue
		}
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(rate.N(n.dur), tone))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// newVolume wraps s at a linear volume. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CueForEntry maps a mission log entry to the cue it should trigger.
func CueForEntry(e mission.SimLogEntry) (Cue, bool) {
	switch e.Category {
	case "hack":
		switch e.Key {
		case "success":
			return CueHackSuccess, true
		case "failed":
			return CueHackFailed, true
		}
	case "event":
		if e.Key == "start" {
			return CueEventAlarm, true
		}
	case "system":
		if e.Key == "cameras_offline" || e.Key == "lights_offline" {
			return CueSystemOffline, true
		}
	case "mission":
		switch e.Key {
		case mission.OutcomeSuccess.String():
			return CueMissionSuccess, true
		case mission.OutcomeDetected.String(), mission.OutcomeTimeout.String():
			return CueMissionFailed, true
		}
	}
	return 0, false
}

// Watcher tails a mission log and reports the cues recorded since the last
// call. A log that was reset belongs to a new mission and is read from the
// start.
type Watcher struct {
	gen  int
	next int
}

// Poll returns the cues for entries added since the previous poll.
func (w *Watcher) Poll(sl *mission.SimLog) []Cue {
	if g := sl.Generation(); g != w.gen || sl.Len() < w.next {
		w.gen = g
		w.next = 0
	}
	var out []Cue
	for _, e := range sl.Since(w.next) {
		if c, ok := CueForEntry(e); ok {
			out = append(out, c)
		}
	}
	w.next = sl.Len()
	return out
}
