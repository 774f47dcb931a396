package mission

// defaultFrameStep is one frame at 60 FPS.
const defaultFrameStep = 1.0 / 60.0

// TestSim is a headless mission harness used by tests and the headless
// report. It drives a Session with a scripted policy at a fixed frame step,
// with no renderer attached.
type TestSim struct {
	Session  *Session
	SimLog   *SimLog
	Reporter *MissionReporter

	cfg    Config
	rng    Rand
	policy Policy
	step   float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptConfig    simOptionKind = iota // replace the whole config, applied first
	simOptInfra                          // config tweaks, rng, log, frame step
	simOptBehaviour                      // policy
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the default mission tuning.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithGuards replaces the guard roster with the given patrol periods.
func WithGuards(periods ...float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.GuardPeriods = append([]float64(nil), periods...)
	}}
}

// WithObjectives sets how many hacks the mission needs.
func WithObjectives(n int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.ObjectivesNeeded = n
	}}
}

// WithMissionDuration sets the mission clock in seconds.
func WithMissionDuration(seconds float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.MissionDuration = seconds
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = NewRand(seed)
	}}
}

// WithRand installs an explicit random source, e.g. a fixed one.
func WithRand(rng Rand) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rng
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithFrameStep sets the dt used by RunTicks and RunFor.
func WithFrameStep(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		if dt > 0 {
			ts.step = dt
		}
	}}
}

// WithPolicy installs the scripted player.
func WithPolicy(p Policy) SimOption {
	return SimOption{simOptBehaviour, func(ts *TestSim) {
		ts.policy = p
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes
// (config, infrastructure, behaviour) and starts the mission. It panics on an
// invalid config, which only tests and the report tool can produce.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:    DefaultConfig(),
		SimLog: NewSimLog(false),
		rng:    NewRand(1),
		policy: IdlePolicy,
		step:   defaultFrameStep,
	}
	for _, kind := range []simOptionKind{simOptConfig, simOptInfra, simOptBehaviour} {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(ts)
			}
		}
	}
	s, err := NewSession(ts.cfg, ts.rng, ts.SimLog)
	if err != nil {
		panic(err)
	}
	ts.Session = s
	ts.Reporter = NewMissionReporter(1, reportWindowSeconds)
	s.Start()
	return ts
}

// Step runs one frame: the policy acts, then the session ticks by dt.
func (ts *TestSim) Step(dt float64) {
	if ts.Session.State() != StatePlaying {
		return
	}
	if a, ok := ts.policy.Decide(ts.Session.Snapshot()); ok {
		ts.Session.Perform(a)
	}
	ts.Session.Tick(dt)
	ts.Reporter.Observe(ts.Session.Snapshot())
}

// RunTicks advances up to n frames, stopping early when the mission ends.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n && ts.Session.State() == StatePlaying; i++ {
		ts.Step(ts.step)
	}
}

// RunFor advances by seconds of simulated time at the frame step.
func (ts *TestSim) RunFor(seconds float64) {
	ts.RunTicks(int(seconds/ts.step + 0.5))
}

// RunToEnd plays until the mission ends or maxSeconds have passed.
func (ts *TestSim) RunToEnd(maxSeconds float64) *Debrief {
	ts.RunFor(maxSeconds)
	return ts.Session.Debrief()
}

// RunUntil advances up to maxTicks, stopping early if predicate returns true.
// Returns the frame at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks && ts.Session.State() == StatePlaying; i++ {
		ts.Step(ts.step)
		if predicate(ts) {
			return ts.Session.frame
		}
	}
	return -1
}

// Snapshot returns the current session snapshot.
func (ts *TestSim) Snapshot() Snapshot {
	return ts.Session.Snapshot()
}
