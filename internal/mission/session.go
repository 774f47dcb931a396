package mission

import (
	"fmt"
	"math"
)

// State is the top-level mission state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateSuccess
	StateFailure
)

func (st State) String() string {
	switch st {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Trigger is a discrete input delivered by a frontend.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerDisableCameras
	TriggerCutLights
	TriggerDistraction
	TriggerHack
	TriggerAcknowledge
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerAcknowledge:
		return "acknowledge"
	default:
		if a, ok := t.Action(); ok {
			return a.String()
		}
		return "unknown"
	}
}

// Action maps an action trigger to its Action.
func (t Trigger) Action() (Action, bool) {
	switch t {
	case TriggerDisableCameras:
		return ActionDisableCameras, true
	case TriggerCutLights:
		return ActionCutLights, true
	case TriggerDistraction:
		return ActionDistraction, true
	case TriggerHack:
		return ActionHack, true
	default:
		return 0, false
	}
}

// TriggerFor returns the trigger that performs a.
func TriggerFor(a Action) Trigger {
	return Trigger(int(a) + int(TriggerDisableCameras))
}

// missionStats feeds the debrief.
type missionStats struct {
	hacksAttempted int
	hacksFailed    int
	actionsUsed    [ActionCount]int
	eventsSeen     int
	guardAlerts    int
	peakDetection  float64
}

// Session owns every piece of simulation state for one player. It is not safe
// for concurrent use; frontends call it from their frame loop only.
type Session struct {
	cfg Config
	rng Rand
	log *SimLog

	state   State
	frame   int
	elapsed float64

	timeRemaining float64
	detection     float64
	progress      int

	cooldowns      [ActionCount]CooldownTimer
	camerasOffline CooldownTimer
	lightsOffline  CooldownTimer

	guards     []*Guard
	event      *ActiveEvent
	eventTimer float64
	feedback   []Feedback

	stats    missionStats
	lastHack *HackResult
	debrief  *Debrief
}

// NewSession creates a session in the menu state. cfg must be valid.
func NewSession(cfg Config, rng Rand, log *SimLog) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mission config: %w", err)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	if log == nil {
		log = NewSimLog(false)
	}
	s := &Session{
		cfg:           cfg,
		rng:           rng,
		log:           log,
		timeRemaining: cfg.MissionDuration,
	}
	s.guards = make([]*Guard, len(cfg.GuardPeriods))
	for i, p := range cfg.GuardPeriods {
		s.guards[i] = NewGuard(i+1, p)
	}
	return s, nil
}

// Config returns the session's tuning.
func (s *Session) Config() Config { return s.cfg }

// Log returns the session's event log.
func (s *Session) Log() *SimLog { return s.log }

// State returns the current mission state.
func (s *Session) State() State { return s.state }

// Detection returns the current detection level.
func (s *Session) Detection() float64 { return s.detection }

// Progress returns the number of objectives secured.
func (s *Session) Progress() int { return s.progress }

// TimeRemaining returns the seconds left on the mission clock.
func (s *Session) TimeRemaining() float64 { return s.timeRemaining }

// Guards returns the patrol units. Callers must not mutate them.
func (s *Session) Guards() []*Guard { return s.guards }

// Event returns the active event, or nil.
func (s *Session) Event() *ActiveEvent { return s.event }

// Cooldown returns the timer gating a.
func (s *Session) Cooldown(a Action) *CooldownTimer { return &s.cooldowns[a] }

// CamerasOffline reports whether the cameras are disabled.
func (s *Session) CamerasOffline() bool { return !s.camerasOffline.Ready() }

// LightsOffline reports whether the lights are cut.
func (s *Session) LightsOffline() bool { return !s.lightsOffline.Ready() }

// LastHack returns the most recent hack resolution, or nil.
func (s *Session) LastHack() *HackResult { return s.lastHack }

// Debrief returns the end-of-mission report once the mission has ended.
func (s *Session) Debrief() *Debrief { return s.debrief }

// Trigger dispatches a frontend input. It reports whether the input changed
// any state; invalid or ineligible triggers are ignored.
func (s *Session) Trigger(t Trigger) bool {
	switch t {
	case TriggerStart:
		return s.Start()
	case TriggerAcknowledge:
		return s.Acknowledge()
	default:
		a, ok := t.Action()
		if !ok {
			return false
		}
		return s.Perform(a)
	}
}

// Start moves Menu → Playing and resets every piece of mission state.
func (s *Session) Start() bool {
	if s.state != StateMenu {
		return false
	}
	s.reset()
	s.state = StatePlaying
	s.log.Add(s.frame, s.elapsed, "--", "mission", "start",
		fmt.Sprintf("objectives=%d duration=%.0fs", s.cfg.ObjectivesNeeded, s.cfg.MissionDuration), 0)
	return true
}

// Acknowledge returns from an end screen to the menu.
func (s *Session) Acknowledge() bool {
	if s.state != StateSuccess && s.state != StateFailure {
		return false
	}
	s.state = StateMenu
	s.log.Add(s.frame, s.elapsed, "--", "mission", "acknowledge", "back to menu", 0)
	return true
}

func (s *Session) reset() {
	s.log.Reset()
	s.frame = 0
	s.elapsed = 0
	s.timeRemaining = s.cfg.MissionDuration
	s.detection = 0
	s.progress = 0
	for i := range s.cooldowns {
		s.cooldowns[i].Reset()
	}
	s.camerasOffline.Reset()
	s.lightsOffline.Reset()
	for _, g := range s.guards {
		g.reset(s.rng)
	}
	s.event = nil
	s.eventTimer = 0
	s.feedback = s.feedback[:0]
	s.stats = missionStats{}
	s.lastHack = nil
	s.debrief = nil
}

// Tick advances the mission by dt seconds of wall-clock time. It does nothing
// outside the Playing state or for non-positive dt.
func (s *Session) Tick(dt float64) {
	if s.state != StatePlaying || dt <= 0 {
		return
	}
	s.frame++
	s.elapsed += dt
	s.timeRemaining = math.Max(0, s.timeRemaining-dt)

	for i := range s.cooldowns {
		s.cooldowns[i].Tick(dt)
	}
	s.tickOutage(&s.camerasOffline, dt, "cameras_online", "cameras back online")
	s.tickOutage(&s.lightsOffline, dt, "lights_online", "lights back online")
	for _, g := range s.guards {
		g.Tick(dt)
	}

	s.accumulate(dt)
	s.schedule(dt)
	s.tickFeedback(dt)
	s.clampDetection()

	if s.detection > s.stats.peakDetection {
		s.stats.peakDetection = s.detection
	}
	s.log.AddVerbose(s.frame, s.elapsed, "--", "detection", "level",
		fmt.Sprintf("%.2f", s.detection), s.detection)

	s.evaluate()
}

// Advance ticks the session through dt seconds in steps of at most maxStep,
// so a slow frame keeps wall-clock pace without one oversized tick. It stops
// early once the mission ends.
func (s *Session) Advance(dt, maxStep float64) {
	if maxStep <= 0 {
		s.Tick(dt)
		return
	}
	for dt > 0 && s.state == StatePlaying {
		step := math.Min(dt, maxStep)
		s.Tick(step)
		dt -= step
	}
}

func (s *Session) tickOutage(t *CooldownTimer, dt float64, key, msg string) {
	if t.Ready() {
		return
	}
	t.Tick(dt)
	if t.Ready() {
		s.log.Add(s.frame, s.elapsed, "--", "system", key, msg, 0)
	}
}

// evaluate applies the end conditions. Objective completion wins over a
// simultaneous detection or timeout failure.
func (s *Session) evaluate() {
	switch {
	case s.progress >= s.cfg.ObjectivesNeeded:
		s.finish(StateSuccess, OutcomeSuccess)
	case s.detection >= s.cfg.MaxDetection:
		s.finish(StateFailure, OutcomeDetected)
	case s.timeRemaining <= 0:
		s.finish(StateFailure, OutcomeTimeout)
	}
}

func (s *Session) finish(st State, outcome Outcome) {
	s.state = st
	d := s.buildDebrief(outcome)
	s.debrief = &d
	s.log.Add(s.frame, s.elapsed, "--", "mission", outcome.String(), d.Description, s.detection)
}
