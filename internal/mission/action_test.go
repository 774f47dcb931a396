package mission

import (
	"math"
	"testing"
)

func TestPerform_IgnoredOutsidePlaying(t *testing.T) {
	s, err := NewSession(DefaultConfig(), alwaysPass, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range Actions() {
		if s.Perform(a) {
			t.Fatalf("%s should be ignored in the menu", a)
		}
	}
	if s.Progress() != 0 || s.Detection() != 0 {
		t.Fatal("ignored actions must not change state")
	}
}

func TestDisableCameras_RelievesAndTakesSystemOffline(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.detection = 30
	if !s.Perform(ActionDisableCameras) {
		t.Fatal("expected cameras action to fire")
	}
	if s.Detection() != 15 {
		t.Fatalf("expected detection 15, got %.2f", s.Detection())
	}
	if !s.CamerasOffline() {
		t.Fatal("cameras should be offline")
	}
	if s.camerasOffline.Remaining() != 8 {
		t.Fatalf("expected 8s outage, got %.2f", s.camerasOffline.Remaining())
	}
	if s.Cooldown(ActionDisableCameras).Remaining() != 7 {
		t.Fatalf("expected 7s cooldown, got %.2f", s.Cooldown(ActionDisableCameras).Remaining())
	}
	if !s.Log().HasEntry("system", "cameras_offline", "") {
		t.Fatal("expected a cameras_offline log entry")
	}
}

func TestCutLights_FloorsAtZero(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.detection = 4
	s.Perform(ActionCutLights)
	if s.Detection() != 0 {
		t.Fatalf("expected detection floored at 0, got %.2f", s.Detection())
	}
	if !s.LightsOffline() {
		t.Fatal("lights should be offline")
	}
	if s.Cooldown(ActionCutLights).Remaining() != 5 {
		t.Fatalf("expected 5s cooldown, got %.2f", s.Cooldown(ActionCutLights).Remaining())
	}
}

func TestDistraction_ClearsAlerts(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.detection = 50
	for _, g := range s.Guards() {
		g.alerted = true
	}
	s.Perform(ActionDistraction)
	for _, g := range s.Guards() {
		if g.Alerted() {
			t.Fatalf("%s still alerted after distraction", g.Label())
		}
	}
	if s.Detection() != 30 {
		t.Fatalf("expected detection 30, got %.2f", s.Detection())
	}
	if s.Cooldown(ActionDistraction).Remaining() != 10 {
		t.Fatalf("expected 10s cooldown, got %.2f", s.Cooldown(ActionDistraction).Remaining())
	}
}

func TestPerform_IgnoredWhileCoolingDown(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	s.detection = 60
	if !s.Perform(ActionDistraction) {
		t.Fatal("first use should fire")
	}
	before := s.Detection()
	if s.Perform(ActionDistraction) {
		t.Fatal("second use should be ignored while cooling down")
	}
	if s.Detection() != before {
		t.Fatalf("ignored action changed detection %.2f → %.2f", before, s.Detection())
	}
	if !s.Log().HasEntry("action", "denied", "") {
		t.Fatal("expected verbose denied entry")
	}
}

func TestActions_NeverPushDetectionBelowZero(t *testing.T) {
	for _, a := range Actions() {
		s := newPlaying(t, DefaultConfig(), alwaysPass)
		s.Perform(a)
		if s.Detection() < 0 {
			t.Fatalf("%s pushed detection below zero: %.2f", a, s.Detection())
		}
	}
}

func TestHack_GuaranteedSuccess(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysPass)
	if !s.Perform(ActionHack) {
		t.Fatal("expected hack to fire")
	}
	if s.Progress() != 1 {
		t.Fatalf("expected progress 1, got %d", s.Progress())
	}
	if s.Detection() != 0 {
		t.Fatalf("expected detection to stay 0, got %.2f", s.Detection())
	}
	if s.Cooldown(ActionHack).Remaining() != 2.0 {
		t.Fatalf("expected 2.0s cooldown, got %.2f", s.Cooldown(ActionHack).Remaining())
	}
	fb := s.Snapshot().Feedback
	if len(fb) != 1 || fb[0].Text != "HACK SUCCESSFUL" || fb[0].Tone != TonePositive {
		t.Fatalf("unexpected feedback %+v", fb)
	}
	if lh := s.LastHack(); lh == nil || !lh.Success {
		t.Fatalf("expected successful LastHack, got %+v", lh)
	}
}

func TestHack_SuccessRelievesDetection(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysPass)
	s.detection = 40
	s.Perform(ActionHack)
	if s.Detection() != 35 {
		t.Fatalf("expected detection 35, got %.2f", s.Detection())
	}
	if d := s.LastHack().Delta; d != -5 {
		t.Fatalf("expected delta -5, got %.2f", d)
	}
}

func TestHack_GuaranteedFailurePenalty(t *testing.T) {
	cases := []struct {
		detection float64
		penalty   float64
	}{
		{10, 8},
		{40, 10},
		{60, 11},
		{80, 12},
		{99, 12},
	}
	for _, tc := range cases {
		s := newPlaying(t, DefaultConfig(), alwaysFail)
		s.detection = tc.detection
		s.Perform(ActionHack)
		want := math.Min(100, tc.detection+tc.penalty)
		if s.Detection() != want {
			t.Fatalf("detection %.0f: expected %.2f after failed hack, got %.2f", tc.detection, want, s.Detection())
		}
		if s.Progress() != 0 {
			t.Fatalf("failed hack must not add progress, got %d", s.Progress())
		}
		if s.Cooldown(ActionHack).Remaining() != 3.5 {
			t.Fatalf("expected 3.5s cooldown, got %.2f", s.Cooldown(ActionHack).Remaining())
		}
		fb := s.Snapshot().Feedback
		if len(fb) != 1 || fb[0].Text != "HACK FAILED" || fb[0].Tone != ToneNegative {
			t.Fatalf("unexpected feedback %+v", fb)
		}
	}
}

func TestHackChance_Floor(t *testing.T) {
	s := newPlaying(t, DefaultConfig(), alwaysFail)
	cases := map[float64]float64{0: 1, 40: 0.5, 68: 0.15, 80: 0.15, 100: 0.15}
	for d, want := range cases {
		s.detection = d
		if got := s.HackChance(); math.Abs(got-want) > 1e-9 {
			t.Fatalf("detection %.0f: expected chance %.2f, got %.4f", d, want, got)
		}
	}
}

func TestHackPenalty_Capped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Actions.Hack.PenaltyBase = 18
	s := newPlaying(t, cfg, alwaysFail)
	s.detection = 80
	if got := s.HackPenalty(); got != 20 {
		t.Fatalf("expected penalty capped at 20, got %.2f", got)
	}
}

func TestHack_ProgressNeverExceedsObjectives(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ObjectivesNeeded = 2
	s := newPlaying(t, cfg, alwaysPass)
	for i := 0; i < 5; i++ {
		s.Perform(ActionHack)
		s.cooldowns[ActionHack].Reset()
	}
	if s.Progress() != 2 {
		t.Fatalf("expected progress capped at 2, got %d", s.Progress())
	}
}

func TestTriggerMapping(t *testing.T) {
	for _, a := range Actions() {
		got, ok := TriggerFor(a).Action()
		if !ok || got != a {
			t.Fatalf("TriggerFor(%s) round trip gave %s, %v", a, got, ok)
		}
	}
	if _, ok := TriggerStart.Action(); ok {
		t.Fatal("start is not an action trigger")
	}
	if _, ok := TriggerAcknowledge.Action(); ok {
		t.Fatal("acknowledge is not an action trigger")
	}
}
