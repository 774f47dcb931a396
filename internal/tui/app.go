// Package tui is the terminal frontend: it renders a mission session with
// tcell and maps keys to session triggers.
package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Terminal-Infiltration/internal/audio"
	"github.com/Garsondee/Terminal-Infiltration/internal/hud"
	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

const (
	frameInterval = 16 * time.Millisecond
	maxStepDT     = 0.1
	barWidth      = 40
	consoleLines  = 5
)

// CuePlayer receives the sound cues raised by each frame.
type CuePlayer interface {
	PlayAll(cues []audio.Cue)
}

// App owns the terminal screen for one session.
type App struct {
	screen  tcell.Screen
	session *mission.Session
	sound   CuePlayer
	watcher audio.Watcher
	logger  *log.Logger

	uiTime float64
}

// New creates an App drawing to an initialised screen. sound may be nil.
func New(screen tcell.Screen, session *mission.Session, sound CuePlayer, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &App{screen: screen, session: session, sound: sound, logger: logger}
}

// Run polls input and advances the session until the player quits or ctx is
// cancelled. The caller owns the screen and finalises it afterwards.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go a.pollEvents(events, done)

	last := time.Now()
	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.Update(dt)
			a.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised, closing
// events, or until done is closed.
func (a *App) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one input event. It returns false when the player asked
// to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.confirm()
		case tcell.KeyRune:
			r := ev.Rune()
			switch {
			case r == 'q':
				return false
			case r == ' ':
				a.confirm()
			case r >= '1' && r <= '4':
				act := mission.Actions()[r-'1']
				if !a.session.Trigger(mission.TriggerFor(act)) {
					a.logger.Printf("%s ignored", act)
				}
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// confirm starts a mission from the menu or leaves an end screen.
func (a *App) confirm() {
	switch a.session.State() {
	case mission.StateMenu:
		a.session.Trigger(mission.TriggerStart)
	case mission.StateSuccess, mission.StateFailure:
		a.session.Trigger(mission.TriggerAcknowledge)
	}
}

// Update advances the session by dt seconds of wall-clock time, split into
// ticks of at most maxStepDT.
func (a *App) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	a.uiTime += dt
	a.session.Advance(dt, maxStepDT)
	if cues := a.watcher.Poll(a.session.Log()); len(cues) > 0 && a.sound != nil {
		a.sound.PlayAll(cues)
	}
}

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleInfo    = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleChoke   = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleTrack   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleAlerted = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Draw renders the current frame.
func (a *App) Draw() {
	a.screen.Clear()
	snap := a.session.Snapshot()
	a.text(2, 0, styleTitle, "TERMINAL INFILTRATION")
	switch snap.State {
	case mission.StateMenu:
		a.drawMenu()
	case mission.StatePlaying:
		a.drawPlaying(snap)
	default:
		a.drawEnd(snap)
	}
	a.screen.Show()
}

func (a *App) drawMenu() {
	lines := []string{
		"Hack the facility terminals before security finds you.",
		"",
		"[1] Disable Cams   cameras offline, detection drops",
		"[2] Cut Lights     lights offline, detection drops",
		"[3] Distraction    calls off alerted guards",
		"[4] Hack System    secure an objective, riskier as detection rises",
		"",
		"Guards are most dangerous inside the red choke zone.",
		"",
		"[Enter] START MISSION    [q] quit",
	}
	for i, l := range lines {
		a.text(2, 2+i, styleText, l)
	}
}

func (a *App) drawPlaying(snap mission.Snapshot) {
	pulse := a.uiTime
	timeStyle := styleInfo
	if hud.TimeCritical(snap) && hud.Pulse(pulse) > 0.225 {
		timeStyle = styleWarn.Bold(true)
	}
	a.text(2, 2, styleText, "TIME     ")
	a.text(11, 2, timeStyle, hud.TextBar(hud.TimeRatio(snap), barWidth))
	a.text(12+barWidth, 2, styleText, fmt.Sprintf("%ds", int(snap.TimeRemaining)))

	detStyle := styleWarn
	if hud.DetectionCritical(snap) {
		detStyle = styleBad
		if hud.Pulse(pulse) > 0.225 {
			detStyle = styleBad.Bold(true).Reverse(true)
		}
	}
	a.text(2, 3, styleText, "DETECT   ")
	a.text(11, 3, detStyle, hud.TextBar(hud.DetectionRatio(snap), barWidth))
	a.text(12+barWidth, 3, styleText, fmt.Sprintf("%d/%.0f", int(snap.Detection), snap.MaxDetection))

	a.text(2, 4, styleText, fmt.Sprintf("OBJECTIVES %d/%d    HACK CHANCE %d%%",
		snap.Progress, snap.ObjectivesNeeded, int(snap.HackChance*100)))

	a.system(2, 6, "CAMERAS", snap.CamerasOffline, snap.CameraOutage)
	a.system(30, 6, "LIGHTS", snap.LightsOffline, snap.LightsOutage)

	for i, g := range snap.Guards {
		a.track(2, 8+i, g, snap.ChokeMin, snap.ChokeMax)
	}
	row := 9 + len(snap.Guards)

	if ev := snap.Event; ev != nil {
		a.text(2, row, styleWarn.Bold(true), fmt.Sprintf("! %s (%ds)", ev.Label, int(ev.TimeLeft+0.999)))
	}
	row++
	for _, f := range snap.Feedback {
		a.text(2, row, toneStyle(f.Tone), f.Text)
		row++
	}

	row = 13 + len(snap.Guards)
	x := 2
	for i, cd := range snap.Cooldowns {
		st := styleGood
		if !cd.Ready {
			st = styleDim
		}
		label := fmt.Sprintf("[%d] %s", i+1, cd.Action.Title())
		if c := hud.CooldownLabel(cd); c != "" {
			label += " " + c
		}
		a.text(x, row, st, label)
		x += len(label) + 3
	}

	entries := a.session.Log().Entries()
	start := len(entries) - consoleLines
	if start < 0 {
		start = 0
	}
	for i, e := range entries[start:] {
		a.text(2, row+2+i, styleDim, e.String())
	}
}

func (a *App) system(x, y int, name string, offline bool, left float64) {
	if offline {
		a.text(x, y, styleGood, fmt.Sprintf("%s OFFLINE (%ds)", name, int(left+0.999)))
		return
	}
	a.text(x, y, styleBad, name+" ONLINE")
}

func (a *App) track(x, y int, g mission.GuardView, chokeMin, chokeMax float64) {
	a.text(x, y, styleText, g.Label)
	gi, from, to := hud.TrackCells(g.Position, chokeMin, chokeMax, barWidth)
	for i := 0; i < barWidth; i++ {
		r, st := '─', styleTrack
		if i >= from && i <= to {
			r, st = '═', styleChoke
		}
		if i == gi {
			r, st = '●', styleText
			if g.Alerted {
				r, st = '!', styleAlerted
			}
		}
		a.screen.SetContent(x+4+i, y, r, nil, st)
	}
	if g.Alerted {
		a.text(x+5+barWidth, y, styleAlerted, "ALERT")
	}
}

func (a *App) drawEnd(snap mission.Snapshot) {
	d := snap.Debrief
	if d == nil {
		return
	}
	st := styleBad.Bold(true)
	if d.Outcome == mission.OutcomeSuccess {
		st = styleGood.Bold(true)
	}
	a.text(2, 2, st, d.Title())
	a.text(2, 3, styleDim, d.Description)
	for i, l := range d.Lines() {
		a.text(2, 5+i, styleText, l)
	}
	a.text(2, 9, styleText, fmt.Sprintf("Hacks: %d attempted, %d failed   Peak detection: %.0f",
		d.HacksAttempted, d.HacksFailed, d.PeakDetection))
	a.text(2, 11, styleInfo, "[Enter] RETURN TO MENU    [q] quit")
}

func (a *App) text(x, y int, st tcell.Style, s string) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func toneStyle(t mission.Tone) tcell.Style {
	switch t {
	case mission.TonePositive:
		return styleGood
	case mission.ToneNegative:
		return styleBad
	default:
		return styleInfo
	}
}
