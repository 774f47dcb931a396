package mission

import "math"

// Action is a player-triggered support action.
type Action int

const (
	ActionDisableCameras Action = iota
	ActionCutLights
	ActionDistraction
	ActionHack

	// ActionCount is the number of actions.
	ActionCount
)

func (a Action) String() string {
	switch a {
	case ActionDisableCameras:
		return "disable_cameras"
	case ActionCutLights:
		return "cut_lights"
	case ActionDistraction:
		return "distraction"
	case ActionHack:
		return "hack"
	default:
		return "unknown"
	}
}

// Title returns the button caption for a.
func (a Action) Title() string {
	switch a {
	case ActionDisableCameras:
		return "Disable Cams"
	case ActionCutLights:
		return "Cut Lights"
	case ActionDistraction:
		return "Distraction"
	case ActionHack:
		return "Hack System"
	default:
		return "?"
	}
}

// Actions lists every action in button order.
func Actions() []Action {
	return []Action{ActionDisableCameras, ActionCutLights, ActionDistraction, ActionHack}
}

// HackResult is the outcome of a resolved hack attempt.
type HackResult struct {
	Chance  float64
	Roll    float64
	Success bool
	Delta   float64 // signed change applied to detection
}

// Perform resolves a. It returns false, changing nothing, when the mission is
// not being played or the action is still cooling down.
func (s *Session) Perform(a Action) bool {
	if s.state != StatePlaying || a < 0 || a >= ActionCount {
		return false
	}
	if !s.cooldowns[a].Ready() {
		s.log.AddVerbose(s.frame, s.elapsed, a.String(), "action", "denied",
			"cooling down", s.cooldowns[a].Remaining())
		return false
	}
	s.stats.actionsUsed[a]++

	tbl := s.cfg.Actions
	switch a {
	case ActionDisableCameras:
		s.camerasOffline.Start(tbl.Cameras.Outage)
		s.relieve(tbl.Cameras.Relief)
		s.cooldowns[a].Start(tbl.Cameras.Cooldown)
		s.log.Add(s.frame, s.elapsed, a.String(), "system", "cameras_offline",
			"cameras offline", tbl.Cameras.Outage)
	case ActionCutLights:
		s.lightsOffline.Start(tbl.Lights.Outage)
		s.relieve(tbl.Lights.Relief)
		s.cooldowns[a].Start(tbl.Lights.Cooldown)
		s.log.Add(s.frame, s.elapsed, a.String(), "system", "lights_offline",
			"lights offline", tbl.Lights.Outage)
	case ActionDistraction:
		for _, g := range s.guards {
			g.alerted = false
		}
		s.relieve(tbl.Distraction.Relief)
		s.cooldowns[a].Start(tbl.Distraction.Cooldown)
	case ActionHack:
		s.resolveHack()
	}
	s.log.Add(s.frame, s.elapsed, a.String(), "action", "used", a.Title(), s.detection)
	return true
}

// HackChance returns the current probability that a hack succeeds.
func (s *Session) HackChance() float64 {
	h := s.cfg.Actions.Hack
	return math.Max(h.MinChance, 1.0-s.detection/h.ChanceDivisor)
}

// HackPenalty returns the detection a failed hack would add right now.
func (s *Session) HackPenalty() float64 {
	h := s.cfg.Actions.Hack
	return math.Min(h.PenaltyCap, math.Floor(h.PenaltyBase+s.detection*h.PenaltySlope))
}

func (s *Session) resolveHack() HackResult {
	h := s.cfg.Actions.Hack
	res := HackResult{Chance: s.HackChance(), Roll: s.rng.Float64()}
	s.stats.hacksAttempted++

	before := s.detection
	if res.Roll < res.Chance {
		res.Success = true
		s.progress++
		if s.progress > s.cfg.ObjectivesNeeded {
			s.progress = s.cfg.ObjectivesNeeded
		}
		s.relieve(h.SuccessRelief)
		s.cooldowns[ActionHack].Start(h.SuccessCooldown)
		s.pushFeedback("HACK SUCCESSFUL", TonePositive)
		s.log.Add(s.frame, s.elapsed, "hack", "hack", "success",
			"objective secured", float64(s.progress))
	} else {
		penalty := s.HackPenalty()
		s.detection = math.Min(s.cfg.MaxDetection, s.detection+penalty)
		s.stats.hacksFailed++
		s.cooldowns[ActionHack].Start(h.FailureCooldown)
		s.pushFeedback("HACK FAILED", ToneNegative)
		s.log.Add(s.frame, s.elapsed, "hack", "hack", "failed",
			"intrusion flagged", penalty)
	}
	res.Delta = s.detection - before
	s.lastHack = &res
	return res
}

// relieve lowers detection by amount, never below zero.
func (s *Session) relieve(amount float64) {
	s.detection = math.Max(0, s.detection-amount)
}
