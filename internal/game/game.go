package game

import (
	"image/color"
	"io"
	"log"
	"time"

	"github.com/Garsondee/Terminal-Infiltration/internal/audio"
	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

const (
	screenWidth  = 1000
	screenHeight = 700

	// maxStepDT is the longest single session tick; slower frames are split.
	maxStepDT  = 0.1
	noticeTime = 2.0
)

var (
	colBlack     = color.RGBA{A: 255}
	colWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colRed       = color.RGBA{R: 255, A: 255}
	colGreen     = color.RGBA{G: 255, A: 255}
	colBlue      = color.RGBA{B: 255, A: 255}
	colYellow    = color.RGBA{R: 255, G: 255, A: 255}
	colCyan      = color.RGBA{G: 200, B: 220, A: 255}
	colGray      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	colLightGray = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	colDarkGray  = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	colDarkBlue  = color.RGBA{B: 100, A: 255}
	colDarkGreen = color.RGBA{G: 100, A: 255}
	colChoke     = color.RGBA{R: 120, G: 30, B: 30, A: 255}
	colTimeWarn  = color.RGBA{R: 255, G: 200, B: 40, A: 255}
)

// CuePlayer receives the sound cues raised by each frame.
type CuePlayer interface {
	PlayAll(cues []audio.Cue)
}

// Options configures a Game.
type Options struct {
	Sound  CuePlayer   // nil plays nothing
	Logger *log.Logger // nil discards
}

// Game is the desktop frontend. It implements ebiten.Game around a session.
type Game struct {
	session *mission.Session
	sound   CuePlayer
	watcher audio.Watcher
	logger  *log.Logger
	fonts   *Fonts
	console *ConsoleLog

	actionButtons [mission.ActionCount]*Button
	confirmButton *Button

	mouseX, mouseY float64
	uiTime         float64
	last           time.Time
	now            func() time.Time

	notice     string
	noticeLeft float64
}

// New creates the desktop frontend for session.
func New(session *mission.Session, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	g := &Game{
		session:       session,
		sound:         opts.Sound,
		logger:        logger,
		fonts:         LoadFonts(logger),
		console:       NewConsoleLog(),
		confirmButton: NewButton(screenWidth/2-100, screenHeight/2+100, 200, 50, "START MISSION", colDarkGreen, colGreen),
		now:           time.Now,
	}
	const (
		buttonY       = 450
		buttonWidth   = 140
		buttonHeight  = 50
		buttonSpacing = 160
		buttonStartX  = 100
	)
	for i, a := range mission.Actions() {
		base, hover := colDarkBlue, colBlue
		if a == mission.ActionHack {
			base, hover = colDarkGreen, colGreen
		}
		g.actionButtons[a] = NewButton(buttonStartX+float64(i)*buttonSpacing, buttonY, buttonWidth, buttonHeight, a.Title(), base, hover)
	}
	g.last = g.now()
	return g
}

// Update advances the session by the wall-clock time since the last frame.
func (g *Game) Update() error {
	dt := g.frameDT()
	g.handleInput()
	g.step(dt)
	return nil
}

// frameDT returns the wall-clock seconds since the previous call.
func (g *Game) frameDT() float64 {
	now := g.now()
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return dt
}

// step ticks the session and the presentation state by dt seconds.
func (g *Game) step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.uiTime += dt
	g.session.Advance(dt, maxStepDT)

	snap := g.session.Snapshot()
	for i, b := range g.actionButtons {
		b.Update(dt, g.mouseX, g.mouseY, snap.Ready(mission.Action(i)))
	}
	g.confirmButton.Update(dt, g.mouseX, g.mouseY, snap.State != mission.StatePlaying)
	if g.noticeLeft > 0 {
		g.noticeLeft -= dt
	}

	g.console.Sync(g.session.Log())
	if cues := g.watcher.Poll(g.session.Log()); len(cues) > 0 && g.sound != nil {
		g.sound.PlayAll(cues)
	}
}

// trigger forwards a frontend input to the session and animates the matching
// button when it took effect.
func (g *Game) trigger(t mission.Trigger) bool {
	if !g.session.Trigger(t) {
		return false
	}
	if a, ok := t.Action(); ok {
		g.actionButtons[a].Press()
	} else {
		g.confirmButton.Press()
	}
	return true
}

// confirm starts a mission from the menu or leaves an end screen.
func (g *Game) confirm() bool {
	switch g.session.State() {
	case mission.StateMenu:
		return g.trigger(mission.TriggerStart)
	case mission.StateSuccess, mission.StateFailure:
		return g.trigger(mission.TriggerAcknowledge)
	}
	return false
}

func (g *Game) showNotice(msg string) {
	g.notice = msg
	g.noticeLeft = noticeTime
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// WindowSize returns the default window size at the given scale.
func WindowSize(scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return int(screenWidth * scale), int(screenHeight * scale)
}
