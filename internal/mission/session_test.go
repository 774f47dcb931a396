package mission

import (
	"math"
	"strings"
	"testing"
)

func TestNewSession_StartsInMenu(t *testing.T) {
	s, err := NewSession(DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != StateMenu {
		t.Fatalf("expected menu, got %s", s.State())
	}
	if len(s.Guards()) != 3 {
		t.Fatalf("expected 3 guards, got %d", len(s.Guards()))
	}
}

func TestNewSession_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MissionDuration = 0
	cfg.GuardPeriods = nil
	_, err := NewSession(cfg, nil, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"mission duration", "at least one guard"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestTick_IgnoredOutsidePlayingOrNonPositive(t *testing.T) {
	s, _ := NewSession(DefaultConfig(), alwaysFail, nil)
	s.Tick(1)
	if s.TimeRemaining() != 60 || s.Detection() != 0 {
		t.Fatal("tick in the menu changed state")
	}
	s.Start()
	s.Tick(0)
	s.Tick(-1)
	if s.TimeRemaining() != 60 || s.frame != 0 {
		t.Fatal("non-positive dt changed state")
	}
}

func TestStart_IgnoredWhilePlaying(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.Tick(1)
	if s.Start() {
		t.Fatal("Start should be ignored while playing")
	}
	if s.TimeRemaining() != 59 {
		t.Fatalf("mission clock was reset: %.2f", s.TimeRemaining())
	}
}

func TestFailure_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MissionDuration = 3
	s := newPlaying(t, cfg, alwaysFail)
	for i := 0; i < 3; i++ {
		s.Tick(1)
	}
	if s.State() != StateFailure {
		t.Fatalf("expected failure, got %s", s.State())
	}
	if d := s.Debrief(); d == nil || d.Outcome != OutcomeTimeout {
		t.Fatalf("expected timeout debrief, got %+v", d)
	}
}

func TestFailure_Detected(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.detection = 99.5
	s.Tick(1)
	if s.State() != StateFailure {
		t.Fatalf("expected failure, got %s", s.State())
	}
	d := s.Debrief()
	if d.Outcome != OutcomeDetected || d.FinalDetection != 100 {
		t.Fatalf("expected detected at 100, got %s at %.2f", d.Outcome, d.FinalDetection)
	}
	if d.Title() != "MISSION FAILED" {
		t.Fatalf("unexpected title %q", d.Title())
	}
}

func TestSuccess_WinsOverSimultaneousFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ObjectivesNeeded = 1
	s := newPlaying(t, cfg, alwaysPass)
	s.Perform(ActionHack)
	s.detection = 100
	s.timeRemaining = 0.5
	s.Tick(1)

	if s.State() != StateSuccess {
		t.Fatalf("expected success, got %s", s.State())
	}
	if s.Debrief().Outcome != OutcomeSuccess || s.Debrief().Title() != "MISSION SUCCESS" {
		t.Fatalf("unexpected debrief %+v", s.Debrief())
	}
}

func TestTick_StopsAfterMissionEnds(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.detection = 100
	s.Tick(0.1)
	remaining := s.TimeRemaining()
	s.Tick(5)
	if s.TimeRemaining() != remaining {
		t.Fatal("ticks after the mission ended changed state")
	}
	if s.Perform(ActionHack) {
		t.Fatal("actions after the mission ended should be ignored")
	}
}

func TestAcknowledge_ReturnsToMenu(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	if s.Acknowledge() {
		t.Fatal("acknowledge should be ignored while playing")
	}
	s.detection = 100
	s.Tick(0.1)
	if !s.Trigger(TriggerAcknowledge) {
		t.Fatal("acknowledge should leave the end screen")
	}
	if s.State() != StateMenu {
		t.Fatalf("expected menu, got %s", s.State())
	}
}

func TestStart_ResetsEveryField(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	guards := s.Guards()
	s.Perform(ActionDisableCameras)
	s.Perform(ActionHack)
	s.injectEvent(EventScan)
	s.Tick(0.5)
	s.detection = 100
	s.Tick(0.1)
	s.Acknowledge()

	if !s.Trigger(TriggerStart) {
		t.Fatal("start should fire from the menu")
	}
	snap := s.Snapshot()
	if snap.Detection != 0 || snap.Progress != 0 || snap.TimeRemaining != 60 {
		t.Fatalf("meters not reset: %+v", snap)
	}
	if snap.CamerasOffline || snap.LightsOffline {
		t.Fatal("systems should be back online")
	}
	for _, cd := range snap.Cooldowns {
		if !cd.Ready {
			t.Fatalf("%s still cooling down", cd.Action)
		}
	}
	if snap.Event != nil || len(snap.Feedback) != 0 || snap.Debrief != nil {
		t.Fatal("event, feedback and debrief should be cleared")
	}
	for i, g := range s.Guards() {
		if g != guards[i] || g.Alerted() {
			t.Fatalf("guard %d not reset in place", i)
		}
	}
	if s.Log().CountCategory("mission", "start") != 1 || s.Log().Len() != 1 {
		t.Fatalf("log should only hold the new start entry\n%s", s.Log().Format())
	}
}

func TestFeedback_ExpiresOldestFirst(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.pushFeedback("first", ToneInfo)
	s.Tick(1)
	s.pushFeedback("second", ToneInfo)

	fb := s.Snapshot().Feedback
	if len(fb) != 2 || fb[0].Text != "first" || fb[1].Text != "second" {
		t.Fatalf("unexpected order %+v", fb)
	}
	s.Tick(1.6)
	fb = s.Snapshot().Feedback
	if len(fb) != 1 || fb[0].Text != "second" {
		t.Fatalf("expected only second to survive, got %+v", fb)
	}
	s.Tick(1)
	if len(s.Snapshot().Feedback) != 0 {
		t.Fatal("every message should have expired")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.injectEvent(EventSweep)
	snap := s.Snapshot()
	snap.Event.TimeLeft = -1
	snap.Guards[0].Alerted = true
	if s.Event().TimeLeft == -1 || s.Guards()[0].Alerted() {
		t.Fatal("mutating the snapshot changed the session")
	}
}

func TestOutage_LogsSystemRestore(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.Perform(ActionCutLights)
	for i := 0; i < 7; i++ {
		s.Tick(1)
	}
	if s.LightsOffline() {
		t.Fatal("lights should be back after 6s")
	}
	if s.Log().CountCategory("system", "lights_online") != 1 {
		t.Fatalf("expected one lights_online entry\n%s", s.Log().Format())
	}
}

func TestAdvance_SplitsLongFramesAtWallClockPace(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.Advance(1.0, 0.1)

	if got := s.TimeRemaining(); math.Abs(got-59) > 1e-9 {
		t.Fatalf("expected 59s left, got %.6f", got)
	}
	if f := s.Snapshot().Frame; f < 10 || f > 11 {
		t.Fatalf("expected about 10 ticks, got %d", f)
	}
}

func TestAdvance_StopsWhenMissionEnds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MissionDuration = 1
	s := newPlaying(t, cfg, alwaysFail)
	s.Advance(30, 0.1)

	if s.State() != StateFailure {
		t.Fatalf("expected failure, got %s", s.State())
	}
	if f := s.Snapshot().Frame; f > 11 {
		t.Fatalf("expected ticking to stop at the end, got %d ticks", f)
	}
}
