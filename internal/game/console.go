package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

const (
	consoleMaxEntries = 60
	consoleLineHeight = 15
	consoleFontSize   = 12
)

// ConsoleLog is a ring buffer of mission log entries rendered as the
// terminal's console.
type ConsoleLog struct {
	entries []mission.SimLogEntry
	head    int
	count   int
	gen     int // SimLog generation the console is following
	next    int // index of the first SimLog entry not yet copied
}

// NewConsoleLog creates a console with a fixed capacity.
func NewConsoleLog() *ConsoleLog {
	return &ConsoleLog{entries: make([]mission.SimLogEntry, consoleMaxEntries)}
}

// Add appends an entry, overwriting the oldest when full.
func (c *ConsoleLog) Add(e mission.SimLogEntry) {
	c.entries[c.head] = e
	c.head = (c.head + 1) % consoleMaxEntries
	if c.count < consoleMaxEntries {
		c.count++
	}
}

// Clear drops every entry.
func (c *ConsoleLog) Clear() {
	c.head = 0
	c.count = 0
}

// Sync copies entries recorded since the previous call. A log that was reset
// belongs to a new mission, so the console starts over. Per-tick detection
// samples are skipped.
func (c *ConsoleLog) Sync(sl *mission.SimLog) {
	if g := sl.Generation(); g != c.gen || sl.Len() < c.next {
		c.gen = g
		c.next = 0
		c.Clear()
	}
	for _, e := range sl.Since(c.next) {
		if e.Category == "detection" {
			continue
		}
		c.Add(e)
	}
	c.next = sl.Len()
}

// Recent returns entries in chronological order (oldest first).
func (c *ConsoleLog) Recent() []mission.SimLogEntry {
	result := make([]mission.SimLogEntry, c.count)
	for i := 0; i < c.count; i++ {
		idx := (c.head - c.count + i + consoleMaxEntries) % consoleMaxEntries
		result[i] = c.entries[idx]
	}
	return result
}

func categoryColor(cat string) color.RGBA {
	switch cat {
	case "hack":
		return colGreen
	case "guard":
		return colRed
	case "event":
		return colYellow
	case "system":
		return colCyan
	default:
		return colLightGray
	}
}

// Draw renders the newest entries that fit in the panel, newest at the bottom.
func (c *ConsoleLog) Draw(dst *ebiten.Image, f *Fonts, x, y, w, h float64) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 10, G: 12, B: 10, A: 240}, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, color.RGBA{R: 50, G: 80, B: 50, A: 255}, false)
	f.Draw(dst, "CONSOLE", fontBold, consoleFontSize, x+8, y+4, colGreen)

	entries := c.Recent()
	maxVisible := int((h - 24) / consoleLineHeight)
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	ty := y + 22
	for _, e := range entries {
		line := fmt.Sprintf("[%05.1f] %-4s %s", e.Time, e.Subject, e.Value)
		if e.Value == "" {
			line = fmt.Sprintf("[%05.1f] %-4s %s", e.Time, e.Subject, e.Key)
		}
		vector.FillRect(dst, float32(x+5), float32(ty+4), 3, 6, categoryColor(e.Category), false)
		f.Draw(dst, line, fontMono, consoleFontSize, x+12, ty, colLightGray)
		ty += consoleLineHeight
	}
}
