package mission

// CooldownView is the renderer's copy of one action timer.
type CooldownView struct {
	Action    Action
	Remaining float64
	Ready     bool
}

// GuardView is the renderer's copy of one guard.
type GuardView struct {
	ID       int
	Label    string
	Position float64
	Alerted  bool
	InChoke  bool
}

// Snapshot is a read-only copy of the session for one frame.
type Snapshot struct {
	State   State
	Frame   int
	Elapsed float64

	TimeRemaining    float64
	MissionDuration  float64
	Detection        float64
	MaxDetection     float64
	Progress         int
	ObjectivesNeeded int
	HackChance       float64

	CamerasOffline bool
	CameraOutage   float64
	LightsOffline  bool
	LightsOutage   float64

	Cooldowns [ActionCount]CooldownView
	Guards    []GuardView
	Event     *ActiveEvent
	Feedback  []Feedback
	Debrief   *Debrief

	ChokeMin float64
	ChokeMax float64
}

// Snapshot copies the state a renderer or policy needs. Mutating the result
// never affects the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:            s.state,
		Frame:            s.frame,
		Elapsed:          s.elapsed,
		TimeRemaining:    s.timeRemaining,
		MissionDuration:  s.cfg.MissionDuration,
		Detection:        s.detection,
		MaxDetection:     s.cfg.MaxDetection,
		Progress:         s.progress,
		ObjectivesNeeded: s.cfg.ObjectivesNeeded,
		HackChance:       s.HackChance(),
		CamerasOffline:   s.CamerasOffline(),
		CameraOutage:     s.camerasOffline.Remaining(),
		LightsOffline:    s.LightsOffline(),
		LightsOutage:     s.lightsOffline.Remaining(),
		ChokeMin:         s.cfg.Choke.WindowMin,
		ChokeMax:         s.cfg.Choke.WindowMax,
	}
	for i := range s.cooldowns {
		snap.Cooldowns[i] = CooldownView{
			Action:    Action(i),
			Remaining: s.cooldowns[i].Remaining(),
			Ready:     s.cooldowns[i].Ready(),
		}
	}
	snap.Guards = make([]GuardView, len(s.guards))
	for i, g := range s.guards {
		snap.Guards[i] = GuardView{
			ID:       g.ID,
			Label:    g.Label(),
			Position: g.Position(),
			Alerted:  g.alerted,
			InChoke:  s.cfg.Choke.inChoke(g.Position()),
		}
	}
	if s.event != nil {
		ev := *s.event
		snap.Event = &ev
	}
	if len(s.feedback) > 0 {
		snap.Feedback = append([]Feedback(nil), s.feedback...)
	}
	if s.debrief != nil {
		d := *s.debrief
		snap.Debrief = &d
	}
	return snap
}

// Ready reports whether a can be used in this snapshot.
func (snap Snapshot) Ready(a Action) bool {
	return snap.State == StatePlaying && snap.Cooldowns[a].Ready
}

// AlertedGuards counts alerted guards.
func (snap Snapshot) AlertedGuards() int {
	n := 0
	for _, g := range snap.Guards {
		if g.Alerted {
			n++
		}
	}
	return n
}
