package mission

import "math"

// drift returns the passive detection growth for a tick of dt seconds.
// Outage multipliers compose on the same base.
func (s *Session) drift(dt float64) float64 {
	d := s.cfg.Drift
	base := d.Rate * dt
	if s.CamerasOffline() {
		base *= d.CamerasOffMul
	}
	if s.LightsOffline() {
		base *= d.LightsOffMul
	}
	return base
}

// spotChance returns the per-tick chance that a guard inside the choke window
// spots the agent.
func (s *Session) spotChance() float64 {
	c := s.cfg.Choke
	chance := c.BaseChance
	if !s.LightsOffline() {
		chance *= c.LightsOnMul
	}
	if !s.CamerasOffline() {
		chance *= c.CamerasOnMul
	}
	return chance
}

// inChoke reports whether a patrol position lies strictly inside the window.
func (c ChokeConfig) inChoke(pos float64) bool {
	return pos > c.WindowMin && pos < c.WindowMax
}

// accumulate applies one tick of drift, guard checks and event pressure.
// Clamping happens once the whole tick has been applied.
func (s *Session) accumulate(dt float64) {
	s.detection += s.drift(dt)

	chance := s.spotChance()
	for _, g := range s.guards {
		if !s.cfg.Choke.inChoke(g.Position()) {
			if g.alerted {
				g.alerted = false
				s.log.AddVerbose(s.frame, s.elapsed, g.Label(), "guard", "stand_down",
					"left choke point", g.Position())
			}
			continue
		}
		if s.rng.Float64() < chance {
			if !g.alerted {
				s.stats.guardAlerts++
			}
			g.alerted = true
			s.detection += s.cfg.Choke.AlertBump
			s.log.Add(s.frame, s.elapsed, g.Label(), "guard", "alert",
				"spotted movement at choke point", g.Position())
		}
	}

	if ev := s.event; ev != nil {
		s.detection += ev.DPS * dt
		ev.TimeLeft -= dt
		if ev.TimeLeft <= 0 {
			s.event = nil
			s.log.Add(s.frame, s.elapsed, "--", "event", "end", ev.Label, 0)
		}
	}
}

// clampDetection bounds the meter to [0, MaxDetection].
func (s *Session) clampDetection() {
	s.detection = math.Max(0, math.Min(s.detection, s.cfg.MaxDetection))
}
