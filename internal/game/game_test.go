package game

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/Terminal-Infiltration/internal/audio"
	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }
func (r fixedRand) Intn(int) int     { return 0 }

type recordingPlayer struct {
	cues []audio.Cue
}

func (p *recordingPlayer) PlayAll(cues []audio.Cue) { p.cues = append(p.cues, cues...) }

func newTestGame(t *testing.T, rng mission.Rand) (*Game, *recordingPlayer) {
	t.Helper()
	s, err := mission.NewSession(mission.DefaultConfig(), rng, mission.NewSimLog(false))
	if err != nil {
		t.Fatal(err)
	}
	p := &recordingPlayer{}
	return New(s, Options{Sound: p}), p
}

func centre(b *Button) (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

func TestGame_ConfirmStartsAndReturns(t *testing.T) {
	g, _ := newTestGame(t, fixedRand(0.5))
	if !g.confirm() {
		t.Fatal("expected confirm to start the mission")
	}
	if st := g.session.State(); st != mission.StatePlaying {
		t.Fatalf("expected Playing, got %s", st)
	}
	if g.confirm() {
		t.Fatal("expected confirm to do nothing while playing")
	}

	for i := 0; i < 700; i++ {
		g.step(maxStepDT)
	}
	if st := g.session.State(); st != mission.StateFailure {
		t.Fatalf("expected the idle mission to fail, got %s", st)
	}
	if !g.confirm() {
		t.Fatal("expected confirm to leave the end screen")
	}
	if st := g.session.State(); st != mission.StateMenu {
		t.Fatalf("expected Menu, got %s", st)
	}
}

func TestGame_ClickActionTriggersButtonUnderCursor(t *testing.T) {
	g, p := newTestGame(t, fixedRand(0))
	g.confirm()

	x, y := centre(g.actionButtons[mission.ActionHack])
	if !g.clickAction(x, y) {
		t.Fatal("expected the hack click to take effect")
	}
	if g.session.Progress() != 1 {
		t.Fatalf("expected progress 1, got %d", g.session.Progress())
	}
	if g.actionButtons[mission.ActionHack].pressTimer <= 0 {
		t.Fatal("expected the hack button to animate")
	}
	if g.clickAction(x, y) {
		t.Fatal("expected a cooling action to be ignored")
	}
	if g.clickAction(50, 50) {
		t.Fatal("expected a click off the buttons to do nothing")
	}

	g.step(1.0 / 60)
	found := false
	for _, c := range p.cues {
		if c == audio.CueHackSuccess {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a hack success cue, got %v", p.cues)
	}
}

func TestGame_StepKeepsWallClockPace(t *testing.T) {
	g, _ := newTestGame(t, fixedRand(0.5))
	g.confirm()
	before := g.session.TimeRemaining()
	g.step(5)
	if got := before - g.session.TimeRemaining(); got < 4.999 || got > 5.001 {
		t.Fatalf("expected 5s to pass, got %.3f", got)
	}
	if f := g.session.Snapshot().Frame; f < int(5/maxStepDT) {
		t.Fatalf("expected the frame split into %.1fs ticks, got %d ticks", maxStepDT, f)
	}
}

func TestGame_UpdateUsesWallClock(t *testing.T) {
	g, _ := newTestGame(t, fixedRand(0.5))
	g.confirm()
	base := time.Unix(1000, 0)
	g.last = base
	g.now = func() time.Time { return base.Add(50 * time.Millisecond) }

	before := g.session.TimeRemaining()
	g.step(g.frameDT())
	if got := before - g.session.TimeRemaining(); got < 0.049 || got > 0.051 {
		t.Fatalf("expected 0.05s to pass, got %.3f", got)
	}
}

func TestGame_ConsoleFollowsMissionLog(t *testing.T) {
	g, _ := newTestGame(t, fixedRand(0))
	g.confirm()
	g.trigger(mission.TriggerFor(mission.ActionDisableCameras))
	g.step(1.0 / 60)

	var keys []string
	for _, e := range g.console.Recent() {
		keys = append(keys, e.Category+"/"+e.Key)
	}
	joined := strings.Join(keys, " ")
	if !strings.Contains(joined, "mission/start") || !strings.Contains(joined, "system/cameras_offline") {
		t.Fatalf("expected console to mirror the log, got %s", joined)
	}
}

func TestGame_CopyDebrief(t *testing.T) {
	g, _ := newTestGame(t, fixedRand(0.5))
	var copied string
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	if g.copyDebrief() {
		t.Fatal("expected nothing to copy before a mission ends")
	}

	g.confirm()
	for i := 0; i < 700; i++ {
		g.step(maxStepDT)
	}
	if !g.copyDebrief() {
		t.Fatal("expected the debrief to be copied")
	}
	if !strings.Contains(copied, "Objectives Completed") {
		t.Fatalf("expected debrief text on the clipboard, got %q", copied)
	}
	if g.noticeLeft <= 0 || !strings.Contains(g.notice, "copied") {
		t.Fatalf("expected a copied notice, got %q", g.notice)
	}

	writeClipboard = func(string) error { return errors.New("no display") }
	if g.copyDebrief() {
		t.Fatal("expected a clipboard failure to report false")
	}
	if !strings.Contains(g.notice, "not available") {
		t.Fatalf("expected a failure notice, got %q", g.notice)
	}
}

func TestWindowSize(t *testing.T) {
	if w, h := WindowSize(1); w != screenWidth || h != screenHeight {
		t.Fatalf("expected %dx%d, got %dx%d", screenWidth, screenHeight, w, h)
	}
	if w, h := WindowSize(1.5); w != 1500 || h != 1050 {
		t.Fatalf("expected 1500x1050, got %dx%d", w, h)
	}
	if w, _ := WindowSize(0); w != screenWidth {
		t.Fatalf("expected fallback to scale 1, got width %d", w)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g, _ := newTestGame(t, fixedRand(0.5))
	if w, h := g.Layout(320, 200); w != screenWidth || h != screenHeight {
		t.Fatalf("expected fixed layout, got %dx%d", w, h)
	}
}
