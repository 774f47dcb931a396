// Package hud holds presentation rules shared by the desktop and terminal
// frontends: meter thresholds, pulsing, and cooldown captions.
package hud

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

const (
	// DetectionWarn is the detection ratio at which the meter starts to pulse.
	DetectionWarn = 0.6
	// TimeWarn is the time ratio at or below which the clock pulses.
	TimeWarn = 0.3

	pulsePeriod    = 0.6
	pulseAmplitude = 0.45
)

// Pulse returns the blend weight of a warning pulse at ui time t, in
// [0, pulseAmplitude].
func Pulse(t float64) float64 {
	return 0.5 * (1 + math.Sin(2*math.Pi*t/pulsePeriod)) * pulseAmplitude
}

// Blend moves c toward target by w in [0,1].
func Blend(c, target color.RGBA, w float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		v := float64(a) + (float64(b)-float64(a))*w
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return color.RGBA{mix(c.R, target.R), mix(c.G, target.G), mix(c.B, target.B), c.A}
}

// DetectionRatio returns detection as a fraction of the maximum.
func DetectionRatio(snap mission.Snapshot) float64 {
	return ratio(snap.Detection, snap.MaxDetection)
}

// TimeRatio returns the remaining time as a fraction of the mission length.
func TimeRatio(snap mission.Snapshot) float64 {
	return ratio(snap.TimeRemaining, snap.MissionDuration)
}

// DetectionCritical reports whether the detection meter should pulse.
func DetectionCritical(snap mission.Snapshot) bool {
	return snap.State == mission.StatePlaying && DetectionRatio(snap) >= DetectionWarn
}

// TimeCritical reports whether the mission clock should pulse.
func TimeCritical(snap mission.Snapshot) bool {
	return snap.State == mission.StatePlaying && TimeRatio(snap) <= TimeWarn
}

func ratio(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, v/max))
}

// CooldownLabel returns the caption for a cooling action, e.g. "3s", or ""
// when it is ready. Seconds round up so a caption never reads 0s.
func CooldownLabel(cd mission.CooldownView) string {
	if cd.Ready {
		return ""
	}
	return fmt.Sprintf("%ds", int(math.Ceil(cd.Remaining)))
}

// TextBar draws a meter of the given width with block characters.
func TextBar(frac float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(math.Max(0, math.Min(1, frac)) * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// TrackCells returns the cell index of a patrol position on a track of n
// cells, and the cell range covering the choke window.
func TrackCells(pos, chokeMin, chokeMax float64, n int) (guard, from, to int) {
	if n <= 0 {
		return 0, 0, 0
	}
	clamp := func(i int) int {
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
	return clamp(int(pos * float64(n))), clamp(int(math.Ceil(chokeMin * float64(n)))), clamp(int(chokeMax*float64(n)) - 1)
}
