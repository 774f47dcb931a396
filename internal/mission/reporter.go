package mission

// reportWindowSeconds is the default sliding window for recent-pressure reports.
const reportWindowSeconds = 10.0

// Sample captures the mission at one point in time.
type Sample struct {
	Time           float64
	Detection      float64
	Progress       int
	AlertedGuards  int
	CamerasOffline bool
	LightsOffline  bool
	HasEvent       bool
	Event          EventKind
}

// WindowReport summarises the samples inside a time window.
type WindowReport struct {
	SampleCount      int
	FromTime         float64
	ToTime           float64
	AvgDetection     float64
	PeakDetection    float64
	AvgAlertedGuards float64
	CameraOutage     float64 // share of samples with cameras offline
	LightsOutage     float64
	EventPressure    float64 // share of samples with an active event
}

// MissionReporter samples snapshots at a fixed simulated interval and can
// summarise any trailing window.
type MissionReporter struct {
	history  []Sample
	interval float64
	window   float64
	nextAt   float64
}

// NewMissionReporter samples every interval seconds and summarises the last
// window seconds. Non-positive values fall back to one sample per second over
// a ten second window.
func NewMissionReporter(interval, window float64) *MissionReporter {
	if interval <= 0 {
		interval = 1
	}
	if window <= 0 {
		window = reportWindowSeconds
	}
	return &MissionReporter{interval: interval, window: window}
}

// Observe records snap when the next sample is due.
func (r *MissionReporter) Observe(snap Snapshot) {
	if snap.State != StatePlaying && snap.Debrief == nil {
		return
	}
	if snap.Elapsed < r.nextAt {
		return
	}
	for r.nextAt <= snap.Elapsed {
		r.nextAt += r.interval
	}
	s := Sample{
		Time:           snap.Elapsed,
		Detection:      snap.Detection,
		Progress:       snap.Progress,
		AlertedGuards:  snap.AlertedGuards(),
		CamerasOffline: snap.CamerasOffline,
		LightsOffline:  snap.LightsOffline,
	}
	if snap.Event != nil {
		s.HasEvent = true
		s.Event = snap.Event.Kind
	}
	r.history = append(r.history, s)
}

// Reset forgets all samples.
func (r *MissionReporter) Reset() {
	r.history = r.history[:0]
	r.nextAt = 0
}

// History returns every recorded sample.
func (r *MissionReporter) History() []Sample {
	return r.history
}

// WindowSummary summarises the trailing window, or nil with no samples.
func (r *MissionReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}
	to := r.history[len(r.history)-1].Time
	return r.Summarize(to-r.window, to)
}

// Summarize reports on samples with from < Time <= to.
func (r *MissionReporter) Summarize(from, to float64) *WindowReport {
	rep := &WindowReport{FromTime: from, ToTime: to}
	if rep.FromTime < 0 {
		rep.FromTime = 0
	}
	for _, s := range r.history {
		if s.Time <= from || s.Time > to {
			continue
		}
		rep.SampleCount++
		rep.AvgDetection += s.Detection
		if s.Detection > rep.PeakDetection {
			rep.PeakDetection = s.Detection
		}
		rep.AvgAlertedGuards += float64(s.AlertedGuards)
		if s.CamerasOffline {
			rep.CameraOutage++
		}
		if s.LightsOffline {
			rep.LightsOutage++
		}
		if s.HasEvent {
			rep.EventPressure++
		}
	}
	if rep.SampleCount > 0 {
		n := float64(rep.SampleCount)
		rep.AvgDetection /= n
		rep.AvgAlertedGuards /= n
		rep.CameraOutage /= n
		rep.LightsOutage /= n
		rep.EventPressure /= n
	}
	return rep
}
