package mission

// EventKind identifies one entry of the random event catalog.
type EventKind int

const (
	EventSweep EventKind = iota
	EventShiftChange
	EventScan
	EventRouteAdjust

	// EventKindCount is the number of catalog entries.
	EventKindCount
)

func (k EventKind) String() string {
	switch k {
	case EventSweep:
		return "sweep"
	case EventShiftChange:
		return "shift_change"
	case EventScan:
		return "scan"
	case EventRouteAdjust:
		return "route_adjust"
	default:
		return "unknown"
	}
}

// EventSpec describes a catalog entry. The one-time bump is drawn uniformly
// from [InstantMin, InstantMax] when the event fires.
type EventSpec struct {
	Label      string
	Duration   float64
	InstantMin int
	InstantMax int
	DPS        float64
}

func defaultEventCatalog() [EventKindCount]EventSpec {
	return [EventKindCount]EventSpec{
		EventSweep:       {Label: "Security sweep initiated", Duration: 6.0, InstantMin: 5, InstantMax: 12, DPS: 1.0},
		EventShiftChange: {Label: "Guard shift change", Duration: 8.0, DPS: 0.5},
		EventScan:        {Label: "System scan detected", Duration: 5.0, InstantMin: 8, InstantMax: 16, DPS: 1.5},
		EventRouteAdjust: {Label: "Patrol route adjusted", Duration: 10.0, DPS: 0.3},
	}
}

// ActiveEvent is the modifier currently raising detection.
type ActiveEvent struct {
	Kind     EventKind
	Label    string
	DPS      float64
	Duration float64
	TimeLeft float64
	Instant  float64 // bump applied when the event fired
}

// schedule advances the event clock and, once per interval, replaces the
// active event with a fresh draw from the catalog.
func (s *Session) schedule(dt float64) {
	s.eventTimer += dt
	if s.eventTimer < s.cfg.EventInterval {
		return
	}
	s.eventTimer = 0
	s.injectEvent(EventKind(s.rng.Intn(int(EventKindCount))))
}

// injectEvent starts ev, applying its one-time bump immediately.
func (s *Session) injectEvent(kind EventKind) {
	if kind < 0 || kind >= EventKindCount {
		return
	}
	spec := s.cfg.Events[kind]
	instant := spec.InstantMin
	if spec.InstantMax > spec.InstantMin {
		instant += s.rng.Intn(spec.InstantMax - spec.InstantMin + 1)
	}
	if s.event != nil {
		s.log.Add(s.frame, s.elapsed, "--", "event", "replaced", s.event.Label, s.event.TimeLeft)
	}
	s.event = &ActiveEvent{
		Kind:     kind,
		Label:    spec.Label,
		DPS:      spec.DPS,
		Duration: spec.Duration,
		TimeLeft: spec.Duration,
		Instant:  float64(instant),
	}
	s.detection += float64(instant)
	s.stats.eventsSeen++
	s.log.Add(s.frame, s.elapsed, "--", "event", "start", spec.Label, float64(instant))
}
